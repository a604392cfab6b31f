package canvaslib

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1] and is not premultiplied.
type RGBA struct {
	R, G, B, A float64
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R*255 + 0.5)),
		G: uint8(clamp255(c.G*255 + 0.5)),
		B: uint8(clamp255(c.B*255 + 0.5)),
		A: uint8(clamp255(c.A*255 + 0.5)),
	}
}

// premultiplied returns the color as premultiplied 8-bit RGBA, the pixel
// format of a Surface.
func (c RGBA) premultiplied() color.RGBA {
	return color.RGBAModel.Convert(c.Color()).(color.RGBA)
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return RGBA{
		R: float64(n.R) / 0xffff,
		G: float64(n.G) / 0xffff,
		B: float64(n.B) / 0xffff,
		A: float64(n.A) / 0xffff,
	}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without a
// leading '#'. Malformed input yields opaque black.
func Hex(hex string) RGBA {
	c, err := parseHex(strings.TrimPrefix(hex, "#"))
	if err != nil {
		return Black
	}
	return c
}

// ParseColor parses a CSS color string as accepted by a canvas fill or
// stroke style: hex notation, rgb()/rgba() functional notation, the keyword
// "transparent", or a CSS color name.
func ParseColor(s string) (RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "":
		return RGBA{}, fmt.Errorf("canvaslib: empty color")
	case s == "transparent":
		return Transparent, nil
	case strings.HasPrefix(s, "#"):
		return parseHex(s[1:])
	case strings.HasPrefix(s, "rgb"):
		return parseFunctional(s)
	}
	if c, ok := colornames.Map[s]; ok {
		return FromColor(c), nil
	}
	return RGBA{}, fmt.Errorf("canvaslib: unknown color %q", s)
}

func parseHex(hex string) (RGBA, error) {
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGBA{}, fmt.Errorf("canvaslib: bad hex color %q: %w", hex, err)
	}

	var r, g, b, a uint64
	a = 255
	switch len(hex) {
	case 3:
		r, g, b = (v>>8)&0xf*17, (v>>4)&0xf*17, v&0xf*17
	case 4:
		r, g, b, a = (v>>12)&0xf*17, (v>>8)&0xf*17, (v>>4)&0xf*17, v&0xf*17
	case 6:
		r, g, b = (v>>16)&0xff, (v>>8)&0xff, v&0xff
	case 8:
		r, g, b, a = (v>>24)&0xff, (v>>16)&0xff, (v>>8)&0xff, v&0xff
	default:
		return RGBA{}, fmt.Errorf("canvaslib: bad hex color length %q", hex)
	}

	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, nil
}

// parseFunctional parses "rgb(r, g, b)" and "rgba(r, g, b, a)". Channels are
// 0-255 numbers or percentages; alpha is 0-1 or a percentage.
func parseFunctional(s string) (RGBA, error) {
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return RGBA{}, fmt.Errorf("canvaslib: bad color %q", s)
	}
	name := s[:open]
	if name != "rgb" && name != "rgba" {
		return RGBA{}, fmt.Errorf("canvaslib: unknown color function %q", name)
	}

	fields := strings.FieldsFunc(s[open+1:len(s)-1], func(r rune) bool {
		return r == ',' || r == ' ' || r == '/'
	})
	if len(fields) != 3 && len(fields) != 4 {
		return RGBA{}, fmt.Errorf("canvaslib: bad color %q", s)
	}

	var ch [4]float64
	ch[3] = 1
	for i, f := range fields {
		scale := 255.0
		if i == 3 {
			scale = 1
		}
		if strings.HasSuffix(f, "%") {
			f = strings.TrimSuffix(f, "%")
			scale = 100
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return RGBA{}, fmt.Errorf("canvaslib: bad color channel %q: %w", f, err)
		}
		ch[i] = clamp01(v / scale)
	}
	return RGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
}

func clamp01(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	}
	return x
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Transparent = RGBA{}
)
