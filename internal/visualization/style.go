// Package visualization renders simulation results as PNG or SVG figures.
// It only reads results; every figure takes an explicit Style.
package visualization

import (
	"image/color"

	"gonum.org/v1/plot/vg"
)

// Style controls figure appearance. It is passed to every plot call.
type Style struct {
	Palette   []color.Color
	LogScale  bool // Log capital axis; falls back to linear for non-positive data
	Width     vg.Length
	Height    vg.Length
	TitleSize vg.Length
	LabelSize vg.Length
	Marker    vg.Length // Glyph radius for event markers
	Point     vg.Length // Glyph radius for population scatter points
}

// DefaultStyle returns a wide figure with a log capital axis and the usual
// ten-color categorical palette.
func DefaultStyle() Style {
	return Style{
		Palette: []color.Color{
			color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
			color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
			color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
			color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
			color.RGBA{R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
			color.RGBA{R: 0x8c, G: 0x56, B: 0x4b, A: 0xff},
			color.RGBA{R: 0xe3, G: 0x77, B: 0xc2, A: 0xff},
			color.RGBA{R: 0x7f, G: 0x7f, B: 0x7f, A: 0xff},
			color.RGBA{R: 0xbc, G: 0xbd, B: 0x22, A: 0xff},
			color.RGBA{R: 0x17, G: 0xbe, B: 0xcf, A: 0xff},
		},
		LogScale:  true,
		Width:     10 * vg.Inch,
		Height:    4 * vg.Inch,
		TitleSize: vg.Points(16),
		LabelSize: vg.Points(14),
		Marker:    vg.Points(5),
		Point:     vg.Points(1.5),
	}
}

// color returns palette entry i, cycling through the palette.
func (s Style) color(i int) color.Color {
	if len(s.Palette) == 0 {
		return color.Black
	}
	return s.Palette[i%len(s.Palette)]
}
