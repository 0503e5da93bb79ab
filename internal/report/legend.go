package report

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"

	"github.com/stereoglue/bench.report/internal/figure"
	"github.com/stereoglue/bench.report/internal/style"
)

// MethodLegend builds legend entries for the given method ids without any
// chart data behind them, styled exactly as AddMethod would style the real
// series. With no ids it covers every method that has a display name, in
// table order. It backs the standalone legend images reused across figure
// rows.
func MethodLegend(ids []string) ([]figure.LegendEntry, error) {
	if len(ids) == 0 {
		ids = style.MethodIDs()
	}

	entries := make([]figure.LegendEntry, 0, len(ids))
	for i, id := range ids {
		label, ok := style.DisplayName(id)
		if !ok {
			return nil, fmt.Errorf("unknown method %q", id)
		}
		marker, ok := style.MethodMarker(id)
		if !ok {
			return nil, fmt.Errorf("no marker assigned to method %q", id)
		}
		col, ok := style.MethodColor(id)
		if !ok {
			col = style.PaletteColor(i)
		}

		line := &plotter.Line{
			LineStyle: draw.LineStyle{Color: col, Width: lineWidth},
		}
		scatter := &plotter.Scatter{
			GlyphStyle: draw.GlyphStyle{Color: col, Radius: glyphRadius, Shape: marker.Glyph()},
		}
		entries = append(entries, figure.LegendEntry{
			Label:  label,
			Thumbs: []plot.Thumbnailer{line, scatter},
		})
	}
	return entries, nil
}
