// Package report assembles styled benchmark charts from result sets, as
// static images for the paper and as interactive HTML for the report pages.
package report

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/stereoglue/bench.report/internal/figure"
	"github.com/stereoglue/bench.report/internal/results"
	"github.com/stereoglue/bench.report/internal/style"
)

const (
	lineWidth   = vg.Points(1)
	glyphRadius = vg.Points(3)
)

// Chart is a themed benchmark plot plus the legend entries collected for
// the series added to it. The legend is not drawn on the chart itself; it
// is exported separately so one legend can serve a whole figure row.
type Chart struct {
	plot    *plot.Plot
	entries []figure.LegendEntry
	series  int
}

// NewChart returns an empty chart with the house theme applied.
func NewChart(title, xlabel, ylabel string) *Chart {
	p := plot.New()
	figure.Stylize(p)
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	return &Chart{plot: p}
}

// AddMethod plots a method curve styled by the shared tables: its assigned
// marker, its assigned colour, and its display name in the legend. Methods
// without a colour assignment cycle through the palette in plot order.
func (c *Chart) AddMethod(id string, pts plotter.XYs) error {
	label, ok := style.DisplayName(id)
	if !ok {
		return fmt.Errorf("unknown method %q", id)
	}
	return c.AddMethodAs(id, label, pts)
}

// AddMethodAs plots a method curve under an explicit legend label. It is
// the way to chart runs that carry styling but no display name, like the
// per-feature AC-RANSAC runs.
func (c *Chart) AddMethodAs(id, label string, pts plotter.XYs) error {
	marker, ok := style.MethodMarker(id)
	if !ok {
		return fmt.Errorf("no marker assigned to method %q", id)
	}
	col, ok := style.MethodColor(id)
	if !ok {
		col = style.PaletteColor(c.series)
	}
	return c.addSeries(label, pts, col, marker.Glyph())
}

// AddSampler plots a sampler curve. Samplers share one glyph; colour alone
// tells them apart.
func (c *Chart) AddSampler(name string, pts plotter.XYs) error {
	col, ok := style.SamplerColor(name)
	if !ok {
		return fmt.Errorf("unknown sampler %q", name)
	}
	return c.addSeries(name, pts, col, draw.CircleGlyph{})
}

// AddScoring plots a scoring-function curve. GaU and ML carry a colour but
// no marker of their own and fall back to the circle.
func (c *Chart) AddScoring(name string, pts plotter.XYs) error {
	col, ok := style.ScoringColor(name)
	if !ok {
		return fmt.Errorf("unknown scoring function %q", name)
	}
	var glyph draw.GlyphDrawer = draw.CircleGlyph{}
	if marker, ok := style.ScoringMarker(name); ok {
		glyph = marker.Glyph()
	}
	return c.addSeries(name, pts, col, glyph)
}

// AddMethodSet adds the result set's curve for every method with a display
// name, in table order rather than file order so related methods stay
// adjacent in the legend. Series whose method id has no display name are
// not drawn; their ids are returned so the caller can decide whether that
// is a data problem.
func (c *Chart) AddMethodSet(rs *results.ResultSet) ([]string, error) {
	added := make(map[string]bool)
	for _, id := range style.MethodIDs() {
		s, ok := rs.MethodSeries(id)
		if !ok {
			continue
		}
		if err := c.AddMethod(id, toXYs(s.Points)); err != nil {
			return nil, err
		}
		added[id] = true
	}

	var skipped []string
	for _, s := range rs.Series {
		if !added[s.Method] {
			skipped = append(skipped, s.Method)
		}
	}
	return skipped, nil
}

func (c *Chart) addSeries(label string, pts plotter.XYs, col color.Color, glyph draw.GlyphDrawer) error {
	if len(pts) == 0 {
		return fmt.Errorf("series %q has no points", label)
	}

	line, scatter, err := plotter.NewLinePoints(pts)
	if err != nil {
		return fmt.Errorf("failed to build series %q: %w", label, err)
	}
	line.Color = col
	line.Width = lineWidth
	scatter.GlyphStyle = draw.GlyphStyle{Color: col, Radius: glyphRadius, Shape: glyph}

	c.plot.Add(line, scatter)
	c.entries = append(c.entries, figure.LegendEntry{
		Label:  label,
		Thumbs: []plot.Thumbnailer{line, scatter},
	})
	c.series++
	return nil
}

// Plot exposes the underlying plot for callers that need to adjust axis
// ranges or tick marks before saving.
func (c *Chart) Plot() *plot.Plot { return c.plot }

// LegendEntries returns one entry per added series, in plot order.
func (c *Chart) LegendEntries() []figure.LegendEntry {
	return append([]figure.LegendEntry(nil), c.entries...)
}

// Save writes the chart to a file, with the format chosen by extension.
func (c *Chart) Save(width, height vg.Length, path string) error {
	if err := c.plot.Save(width, height, path); err != nil {
		return fmt.Errorf("failed to save chart: %w", err)
	}
	return nil
}

// ExportLegend writes the chart's legend as a standalone image laid out in
// ncol columns.
func (c *Chart) ExportLegend(path string, ncol int) error {
	return figure.ExportLegend(path, c.entries, ncol)
}

func toXYs(pts []results.Point) plotter.XYs {
	xys := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		xys[i] = plotter.XY{X: pt.X, Y: pt.Y}
	}
	return xys
}
