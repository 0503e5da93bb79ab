package style

import (
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Marker identifies the glyph drawn at each data point of a series.
type Marker string

// Marker shapes. Circle, square, triangle-up, plus and cross map onto the
// stock vg/draw glyphs; the remaining shapes are drawn by the glyph types
// in this file.
const (
	MarkerCircle        Marker = "circle"
	MarkerSquare        Marker = "square"
	MarkerTriangleUp    Marker = "triangle-up"
	MarkerTriangleDown  Marker = "triangle-down"
	MarkerTriangleLeft  Marker = "triangle-left"
	MarkerPlus          Marker = "plus"
	MarkerCross         Marker = "cross"
	MarkerDiamond       Marker = "diamond"
	MarkerStar          Marker = "star"
	MarkerCircledCircle Marker = "circled-circle"
	MarkerDotCircle     Marker = "dot-circle"
)

// Valid reports whether m is one of the known marker shapes.
func (m Marker) Valid() bool {
	switch m {
	case MarkerCircle, MarkerSquare, MarkerTriangleUp, MarkerTriangleDown,
		MarkerTriangleLeft, MarkerPlus, MarkerCross, MarkerDiamond,
		MarkerStar, MarkerCircledCircle, MarkerDotCircle:
		return true
	}
	return false
}

// Glyph resolves the marker to a drawable glyph. Unknown markers fall back
// to a circle so a stale settings file cannot blank out a series.
func (m Marker) Glyph() draw.GlyphDrawer {
	switch m {
	case MarkerSquare:
		return draw.BoxGlyph{}
	case MarkerTriangleUp:
		return draw.PyramidGlyph{}
	case MarkerTriangleDown:
		return TriangleDownGlyph{}
	case MarkerTriangleLeft:
		return TriangleLeftGlyph{}
	case MarkerPlus:
		return draw.PlusGlyph{}
	case MarkerCross:
		return draw.CrossGlyph{}
	case MarkerDiamond:
		return DiamondGlyph{}
	case MarkerStar:
		return StarGlyph{}
	case MarkerCircledCircle:
		return CircledCircleGlyph{}
	case MarkerDotCircle:
		return DotCircleGlyph{}
	}
	return draw.CircleGlyph{}
}

const (
	sin30 = vg.Length(0.5)
	cos30 = vg.Length(0.8660254037844386)
)

// TriangleDownGlyph is a glyph that draws a filled downward triangle.
type TriangleDownGlyph struct{}

// DrawGlyph implements the GlyphDrawer interface.
func (TriangleDownGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	r := sty.Radius
	var p vg.Path
	p.Move(vg.Point{X: pt.X, Y: pt.Y - r})
	p.Line(vg.Point{X: pt.X - r*cos30, Y: pt.Y + r*sin30})
	p.Line(vg.Point{X: pt.X + r*cos30, Y: pt.Y + r*sin30})
	p.Close()
	c.Fill(p)
}

// TriangleLeftGlyph is a glyph that draws a filled leftward triangle.
type TriangleLeftGlyph struct{}

// DrawGlyph implements the GlyphDrawer interface.
func (TriangleLeftGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	r := sty.Radius
	var p vg.Path
	p.Move(vg.Point{X: pt.X - r, Y: pt.Y})
	p.Line(vg.Point{X: pt.X + r*sin30, Y: pt.Y + r*cos30})
	p.Line(vg.Point{X: pt.X + r*sin30, Y: pt.Y - r*cos30})
	p.Close()
	c.Fill(p)
}

// DiamondGlyph is a glyph that draws a filled rhombus.
type DiamondGlyph struct{}

// DrawGlyph implements the GlyphDrawer interface.
func (DiamondGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	r := sty.Radius
	var p vg.Path
	p.Move(vg.Point{X: pt.X, Y: pt.Y + r})
	p.Line(vg.Point{X: pt.X + r, Y: pt.Y})
	p.Line(vg.Point{X: pt.X, Y: pt.Y - r})
	p.Line(vg.Point{X: pt.X - r, Y: pt.Y})
	p.Close()
	c.Fill(p)
}

// StarGlyph is a glyph that draws a filled five-pointed star.
type StarGlyph struct{}

// DrawGlyph implements the GlyphDrawer interface.
func (StarGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	outer := sty.Radius
	inner := outer * 0.382
	var p vg.Path
	for i := 0; i < 10; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		ang := math.Pi/2 + float64(i)*math.Pi/5
		v := vg.Point{
			X: pt.X + r*vg.Length(math.Cos(ang)),
			Y: pt.Y + r*vg.Length(math.Sin(ang)),
		}
		if i == 0 {
			p.Move(v)
		} else {
			p.Line(v)
		}
	}
	p.Close()
	c.Fill(p)
}

// CircledCircleGlyph is a glyph that draws two concentric circle outlines.
type CircledCircleGlyph struct{}

// DrawGlyph implements the GlyphDrawer interface.
func (CircledCircleGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	c.SetLineStyle(draw.LineStyle{Color: sty.Color, Width: vg.Points(0.5)})
	var outer vg.Path
	outer.Move(vg.Point{X: pt.X + sty.Radius, Y: pt.Y})
	outer.Arc(pt, sty.Radius, 0, 2*math.Pi)
	outer.Close()
	c.Stroke(outer)
	var in vg.Path
	in.Move(vg.Point{X: pt.X + sty.Radius/2, Y: pt.Y})
	in.Arc(pt, sty.Radius/2, 0, 2*math.Pi)
	in.Close()
	c.Stroke(in)
}

// DotCircleGlyph is a glyph that draws a circle outline around a centre dot.
type DotCircleGlyph struct{}

// DrawGlyph implements the GlyphDrawer interface.
func (DotCircleGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	draw.RingGlyph{}.DrawGlyph(c, sty, pt)
	dot := sty
	dot.Radius = sty.Radius / 3
	draw.CircleGlyph{}.DrawGlyph(c, dot, pt)
}
