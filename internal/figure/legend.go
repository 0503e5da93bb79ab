package figure

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// DefaultLegendColumns is the column count used when ExportLegend is
// called with ncol <= 0. Six columns lay the full method set out in the
// wide banner format the comparison figures share.
const DefaultLegendColumns = 6

// legendMargin pads the legend content away from the image edge.
const legendMargin = vg.Points(4)

// LegendEntry pairs a series label with the thumbnails drawn in front of
// it. Chart builders record one entry per series as each series is added,
// in plot order.
type LegendEntry struct {
	Label  string
	Thumbs []plot.Thumbnailer
}

// ExportLegend writes a standalone legend image to path, sized to exactly
// fit the entries. Entries fill columns top to bottom, ncol columns wide
// (DefaultLegendColumns when ncol <= 0). The image format follows the file
// extension, as plot.Plot.Save does. An existing file is overwritten.
//
// The legend is drawn on a private styled surface so its look matches the
// charts it belongs to.
func ExportLegend(path string, entries []LegendEntry, ncol int) error {
	if len(entries) == 0 {
		return errors.New("export legend: no entries")
	}
	if ncol <= 0 {
		ncol = DefaultLegendColumns
	}
	if ncol > len(entries) {
		ncol = len(entries)
	}

	// A blank plot provides the styled backdrop and an initialised text
	// style for measurement. It has no data axes, so ticks are cleared to
	// keep the grid off the legend panel.
	p := plot.New()
	p.HideAxes()
	Stylize(p)
	p.X.Tick.Marker = plot.ConstantTicks(nil)
	p.Y.Tick.Marker = plot.ConstantTicks(nil)

	lay := layoutLegend(p.Legend.TextStyle, p.Legend.ThumbnailWidth, entries, ncol)
	w, h := lay.size()

	format := strings.ToLower(filepath.Ext(path))
	if format != "" {
		format = format[1:]
	}
	c, err := draw.NewFormattedCanvas(w, h, format)
	if err != nil {
		return fmt.Errorf("export legend: %w", err)
	}

	dc := draw.New(c)
	p.Draw(dc)
	lay.draw(dc)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export legend: %w", err)
	}
	defer f.Close()

	if _, err := c.WriteTo(f); err != nil {
		return fmt.Errorf("export legend: write %s: %w", path, err)
	}
	return nil
}

// legendLayout holds the measured geometry of a columnar legend.
type legendLayout struct {
	sty    text.Style
	thumbW vg.Length
	gap    vg.Length // between a thumbnail and its label
	colGap vg.Length // between columns
	entryH vg.Length
	rows   int
	cols   [][]LegendEntry
	colWs  []vg.Length
}

// layoutLegend chunks entries into ncol columns, filling each column top
// to bottom, and measures every cell with the given text style.
func layoutLegend(sty text.Style, thumbW vg.Length, entries []LegendEntry, ncol int) legendLayout {
	lay := legendLayout{
		sty:    sty,
		thumbW: thumbW,
		gap:    sty.Rectangle(" ").Max.X,
		colGap: 2 * sty.Font.Size,
		rows:   (len(entries) + ncol - 1) / ncol,
	}

	for _, e := range entries {
		if h := sty.Rectangle(e.Label).Max.Y; h > lay.entryH {
			lay.entryH = h
		}
	}

	for start := 0; start < len(entries); start += lay.rows {
		end := start + lay.rows
		if end > len(entries) {
			end = len(entries)
		}
		col := entries[start:end]

		var labelW vg.Length
		for _, e := range col {
			if w := sty.Rectangle(e.Label).Max.X; w > labelW {
				labelW = w
			}
		}
		lay.cols = append(lay.cols, col)
		lay.colWs = append(lay.colWs, thumbW+lay.gap+labelW)
	}
	return lay
}

// size returns the tight image size for the layout, in canvas units.
func (lay legendLayout) size() (w, h vg.Length) {
	w = 2 * legendMargin
	for i, cw := range lay.colWs {
		if i > 0 {
			w += lay.colGap
		}
		w += cw
	}
	h = vg.Length(lay.rows)*lay.entryH + 2*legendMargin
	return w, h
}

// draw renders every legend cell onto the canvas.
func (lay legendLayout) draw(dc draw.Canvas) {
	descent := lay.sty.FontExtents().Descent

	x := dc.Min.X + legendMargin
	for i, col := range lay.cols {
		y := dc.Max.Y - legendMargin - lay.entryH
		for _, e := range col {
			for _, t := range e.Thumbs {
				t.Thumbnail(&draw.Canvas{
					Canvas: dc.Canvas,
					Rectangle: vg.Rectangle{
						Min: vg.Point{X: x, Y: y},
						Max: vg.Point{X: x + lay.thumbW, Y: y + lay.entryH},
					},
				})
			}
			yoffs := (lay.entryH-lay.sty.Rectangle(e.Label).Max.Y)/2 + descent
			dc.FillText(lay.sty, vg.Point{X: x + lay.thumbW + lay.gap, Y: y + yoffs}, e.Label)
			y -= lay.entryH
		}
		x += lay.colWs[i] + lay.colGap
	}
}
