// Package main renders styled benchmark charts from StereoGlue result
// exports: a themed chart image, a standalone legend image, and optionally
// an interactive HTML page. Results come from a JSON export or from the
// run database the harness writes.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gonum.org/v1/plot/vg"

	"github.com/stereoglue/bench.report/internal/figure"
	"github.com/stereoglue/bench.report/internal/report"
	"github.com/stereoglue/bench.report/internal/results"
	"github.com/stereoglue/bench.report/internal/style"
	"github.com/stereoglue/bench.report/internal/version"
)

// Config holds the chart rendering options.
type Config struct {
	ResultsFile string
	DBFile      string
	RunID       string
	Dataset     string
	Metric      string
	ListRuns    bool
	Store       bool
	Summary     bool
	Version     bool

	OutputDir string
	Name      string
	Title     string
	XLabel    string
	YLabel    string
	Width     float64
	Height    float64
	Format    string
	Columns   int
	NoLegend  bool
	HTML      bool
}

func main() {
	cfg := parseFlags()

	if cfg.Version {
		fmt.Println(version.String())
		return
	}

	if cfg.ResultsFile == "" && cfg.DBFile == "" {
		log.Fatal("either a results file (-results) or a run database (-db) is required")
	}

	var db *results.DB
	if cfg.DBFile != "" {
		var err error
		db, err = results.OpenDB(cfg.DBFile)
		if err != nil {
			log.Fatalf("Failed to open run database: %v", err)
		}
		defer db.Close()
	}

	if cfg.ListRuns {
		if db == nil {
			log.Fatal("-list requires a run database (-db)")
		}
		listRuns(db)
		return
	}

	rs := loadResults(cfg, db)

	if cfg.Store {
		if db == nil || cfg.ResultsFile == "" {
			log.Fatal("-store needs both -results and -db")
		}
		runID, err := db.InsertRun(rs)
		if err != nil {
			log.Fatalf("Failed to store run: %v", err)
		}
		log.Printf("Stored run %s", runID)
	}

	if cfg.Summary {
		printSummary(rs)
	}

	if cfg.OutputDir != "" {
		if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
			log.Fatalf("Failed to create output directory: %v", err)
		}
	}

	name := cfg.Name
	if name == "" {
		name = defaultName(rs)
	}
	title := cfg.Title
	if title == "" {
		title = fmt.Sprintf("%s (%s)", rs.Dataset, rs.Metric)
	}
	xlabel, ylabel := rs.XLabel, rs.YLabel
	if cfg.XLabel != "" {
		xlabel = cfg.XLabel
	}
	if cfg.YLabel != "" {
		ylabel = cfg.YLabel
	}

	chart := report.NewChart(title, xlabel, ylabel)
	skipped, err := chart.AddMethodSet(rs)
	if err != nil {
		log.Fatalf("Failed to build chart: %v", err)
	}
	for _, id := range skipped {
		log.Printf("Warning: no styling for method %q; series not drawn", id)
	}
	if len(skipped) == len(rs.Series) {
		log.Fatal("No charted methods in result set")
	}

	chartPath := filepath.Join(cfg.OutputDir, name+"."+cfg.Format)
	if err := chart.Save(vg.Length(cfg.Width)*vg.Inch, vg.Length(cfg.Height)*vg.Inch, chartPath); err != nil {
		log.Fatalf("Failed to save chart: %v", err)
	}
	log.Printf("Chart written to %s", chartPath)

	if !cfg.NoLegend {
		legendPath := filepath.Join(cfg.OutputDir, name+"_legend."+cfg.Format)
		if err := chart.ExportLegend(legendPath, cfg.Columns); err != nil {
			log.Fatalf("Failed to export legend: %v", err)
		}
		log.Printf("Legend written to %s", legendPath)
	}

	if cfg.HTML {
		htmlPath := filepath.Join(cfg.OutputDir, name+".html")
		if err := writeHTMLReport(htmlPath, title, rs); err != nil {
			log.Fatalf("Failed to render HTML report: %v", err)
		}
		log.Printf("HTML report written to %s", htmlPath)
	}
}

func parseFlags() Config {
	cfg := Config{}

	flag.StringVar(&cfg.ResultsFile, "results", "", "Path to a results JSON export")
	flag.StringVar(&cfg.DBFile, "db", "", "Path to the benchmark run database")
	flag.StringVar(&cfg.RunID, "run", "", "Run id to load from the database")
	flag.StringVar(&cfg.Dataset, "dataset", "", "Dataset to pick the latest run for")
	flag.StringVar(&cfg.Metric, "metric", "", "Metric to pick the latest run for")
	flag.BoolVar(&cfg.ListRuns, "list", false, "List stored runs and exit")
	flag.BoolVar(&cfg.Store, "store", false, "Store the loaded results file into the run database")
	flag.BoolVar(&cfg.Summary, "summary", false, "Print per-method AUC before rendering")
	flag.BoolVar(&cfg.Version, "version", false, "Print version and exit")

	flag.StringVar(&cfg.OutputDir, "out", "", "Output directory for rendered files")
	flag.StringVar(&cfg.Name, "name", "", "Base name for output files (default from dataset and metric)")
	flag.StringVar(&cfg.Title, "title", "", "Chart title (default from dataset and metric)")
	flag.StringVar(&cfg.XLabel, "xlabel", "", "X axis label (default from the results)")
	flag.StringVar(&cfg.YLabel, "ylabel", "", "Y axis label (default from the results)")
	flag.Float64Var(&cfg.Width, "width", 6, "Chart width in inches")
	flag.Float64Var(&cfg.Height, "height", 4, "Chart height in inches")
	flag.StringVar(&cfg.Format, "format", "png", "Image format: eps, jpg, pdf, png, svg, tif")
	flag.IntVar(&cfg.Columns, "ncol", figure.DefaultLegendColumns, "Legend columns")
	flag.BoolVar(&cfg.NoLegend, "no-legend", false, "Skip the standalone legend image")
	flag.BoolVar(&cfg.HTML, "html", false, "Also render an interactive HTML chart")

	flag.Parse()
	return cfg
}

func loadResults(cfg Config, db *results.DB) *results.ResultSet {
	if cfg.ResultsFile != "" {
		rs, err := results.Load(cfg.ResultsFile)
		if err != nil {
			log.Fatalf("Failed to load results: %v", err)
		}
		return rs
	}

	runID := cfg.RunID
	if runID == "" {
		if cfg.Dataset == "" || cfg.Metric == "" {
			log.Fatal("loading from the database needs -run, or -dataset and -metric")
		}
		var err error
		runID, err = db.LatestRun(cfg.Dataset, cfg.Metric)
		if err != nil {
			log.Fatalf("Failed to find run: %v", err)
		}
	}

	rs, err := db.LoadRun(runID)
	if err != nil {
		log.Fatalf("Failed to load run: %v", err)
	}
	return rs
}

func listRuns(db *results.DB) {
	runs, err := db.ListRuns()
	if err != nil {
		log.Fatalf("Failed to list runs: %v", err)
	}
	if len(runs) == 0 {
		fmt.Println("no runs recorded")
		return
	}
	for _, r := range runs {
		fmt.Printf("%s  %s  %s/%s\n", r.RunID, r.Created.Format(time.RFC3339), r.Dataset, r.Metric)
	}
}

func printSummary(rs *results.ResultSet) {
	summary, err := rs.AUCSummary()
	if err != nil {
		log.Fatalf("Failed to summarise results: %v", err)
	}
	for _, m := range summary {
		name := m.Method
		if label, ok := style.DisplayName(m.Method); ok {
			name = label
		}
		fmt.Printf("%-32s %.4f\n", name, m.AUC)
	}
}

func writeHTMLReport(path, title string, rs *results.ResultSet) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := report.WriteHTML(f, title, rs); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// defaultName derives an output base name like "phototourism_auc-10" from
// the result set.
func defaultName(rs *results.ResultSet) string {
	return sanitizeName(rs.Dataset + "_" + rs.Metric)
}

// sanitizeName makes a safe file name from dataset and metric strings.
// Characters outside ASCII letters, digits, dot, underscore and dash become
// a dash, runs of them collapse to one, and the result is trimmed and
// capped so derived names stay usable as paths.
func sanitizeName(s string) string {
	const maxLen = 128
	var b strings.Builder
	lastDash := false
	for _, r := range s {
		if b.Len() >= maxLen {
			break
		}
		switch {
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastDash = false
		case r == '.' || r == '_' || r == '-':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteRune('-')
				lastDash = true
			}
		}
	}
	out := strings.Trim(b.String(), ".-_")
	if out == "" {
		return "chart"
	}
	return out
}
