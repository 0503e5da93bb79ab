// Package main writes the standalone method legend shared across benchmark
// figure rows.
package main

import (
	"flag"
	"log"
	"strings"

	"github.com/stereoglue/bench.report/internal/figure"
	"github.com/stereoglue/bench.report/internal/report"
)

func main() {
	out := flag.String("out", "legend.png", "Output image path")
	ncol := flag.Int("ncol", figure.DefaultLegendColumns, "Legend columns")
	methods := flag.String("methods", "", "Comma-separated method ids (default: every method with a display name)")
	flag.Parse()

	var ids []string
	if *methods != "" {
		for _, id := range strings.Split(*methods, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	}

	entries, err := report.MethodLegend(ids)
	if err != nil {
		log.Fatalf("Failed to build legend: %v", err)
	}
	if err := figure.ExportLegend(*out, entries, *ncol); err != nil {
		log.Fatalf("Failed to export legend: %v", err)
	}
	log.Printf("Legend with %d entries written to %s", len(entries), *out)
}
