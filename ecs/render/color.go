package render

import (
	"fmt"
	"image/color"

	"github.com/mazznoer/csscolorparser"
)

// ParseColor parses any CSS color string, including "transparent".
func ParseColor(s string) (color.NRGBA, error) {
	c, err := csscolorparser.Parse(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("render: parse color %q: %w", s, err)
	}
	r, g, b, a := c.RGBA255()
	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}

// HueColor returns the opaque color for a hue in degrees at saturation s and
// value v.
func HueColor(hue, s, v float64) color.NRGBA {
	r, g, b, _ := csscolorparser.FromHsv(hue, s, v, 1).RGBA255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}
