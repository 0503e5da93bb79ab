package style

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Tab10 is the 10-colour qualitative palette shared by every chart. The
// method, sampler and scoring tables reference colours by index into it.
var Tab10 = [10]color.RGBA{
	{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}, // #1f77b4 blue
	{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff}, // #ff7f0e orange
	{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff}, // #2ca02c green
	{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}, // #d62728 red
	{R: 0x94, G: 0x67, B: 0xbd, A: 0xff}, // #9467bd purple
	{R: 0x8c, G: 0x56, B: 0x4b, A: 0xff}, // #8c564b brown
	{R: 0xe3, G: 0x77, B: 0xc2, A: 0xff}, // #e377c2 pink
	{R: 0x7f, G: 0x7f, B: 0x7f, A: 0xff}, // #7f7f7f grey
	{R: 0xbc, G: 0xbd, B: 0x22, A: 0xff}, // #bcbd22 olive
	{R: 0x17, G: 0xbe, B: 0xcf, A: 0xff}, // #17becf cyan
}

// PaletteColor returns the palette entry for an index, cycling when more
// series are plotted than the palette has colours.
func PaletteColor(i int) color.RGBA {
	if i < 0 {
		i = -i
	}
	return Tab10[i%len(Tab10)]
}

// Hex formats a colour as "#rrggbb" for renderers that take CSS colours.
func Hex(c color.Color) string {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		// Fully transparent colours carry no channel information.
		return "#000000"
	}
	return cf.Hex()
}

// HexToColor parses a "#rrggbb" string into a colour. Used when chart
// settings files override series colours.
func HexToColor(s string) (color.RGBA, error) {
	cf, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parse colour %q: %w", s, err)
	}
	r, g, b := cf.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
