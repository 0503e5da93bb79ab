// Package figure applies the house look to benchmark charts and exports
// standalone legend images. The styling mirrors the published StereoGlue
// comparison figures: a light grey data panel on a white page, white grid
// lines, and no axis frame.
package figure

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// panelGray is the data-panel background shared by every styled chart.
var panelGray = color.RGBA{R: 0xe6, G: 0xe6, B: 0xe6, A: 0xff} // #E6E6E6

// Stylize applies the house chart look to a plot: white page, grey data
// panel, solid white grid lines at the major ticks, no axis frame, and
// tick marks reduced to their labels.
//
// Plotters render in the order they are added, so call Stylize before
// adding data series to keep the panel and grid underneath them.
func Stylize(p *plot.Plot) {
	p.BackgroundColor = color.White

	p.Add(panel{})

	grid := plotter.NewGrid()
	grid.Vertical.Color = color.White
	grid.Vertical.Width = vg.Points(1)
	grid.Vertical.Dashes = nil
	grid.Horizontal.Color = color.White
	grid.Horizontal.Width = vg.Points(1)
	grid.Horizontal.Dashes = nil
	p.Add(grid)

	// No frame around the data panel.
	p.X.LineStyle.Width = 0
	p.Y.LineStyle.Width = 0

	// Keep the tick labels, drop the notches.
	p.X.Tick.Length = 0
	p.Y.Tick.Length = 0
}

// panel fills the data area of a plot with the panel colour. It draws
// before any series, standing in for an axes background.
type panel struct{}

// Plot implements the plot.Plotter interface.
func (panel) Plot(c draw.Canvas, _ *plot.Plot) {
	c.SetColor(panelGray)
	c.Fill(c.Rectangle.Path())
}
