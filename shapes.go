package canvaslib

import "math"

// Style selects how a helper shape is painted once its path is built.
// Empty color strings and a zero LineWidth mean "not supplied".
type Style struct {
	// Fill is a CSS color. When set, the shape is filled with it.
	Fill string
	// Stroke is a CSS color. When set, the shape is stroked with it.
	Stroke string
	// LineWidth, when non-zero, replaces the line width before stroking.
	LineWidth float64
}

// Paint fills the current path when style has a fill color, then strokes it
// when style has a stroke color, applying a non-zero LineWidth first. The
// styles it sets stay in effect.
//
//	ctx.RoundRect(10, 10, 80, 40, 8).Paint(canvaslib.Style{Fill: "gold"})
func (c *Context) Paint(style Style) {
	if style.Fill != "" {
		c.SetFillStyle(style.Fill)
		c.Fill()
	}
	if style.Stroke != "" {
		if style.LineWidth != 0 {
			c.SetLineWidth(style.LineWidth)
		}
		c.SetStrokeStyle(style.Stroke)
		c.Stroke()
	}
}

// RoundRect replaces the current path with a rectangle whose corners are
// rounded with radius r. When the rectangle is too narrow or too short for
// the radius, r is reduced to half the width, then to half the height.
// It does not paint; call Fill or Stroke afterwards.
func (c *Context) RoundRect(x, y, w, h, r float64) *Context {
	if w < 2*r {
		r = w / 2
	}
	if h < 2*r {
		r = h / 2
	}
	c.BeginPath()
	c.MoveTo(x+r, y)
	c.ArcTo(x+w, y, x+w, y+h, r)
	c.ArcTo(x+w, y+h, x, y+h, r)
	c.ArcTo(x, y+h, x, y, r)
	c.ArcTo(x, y, x+w, y, r)
	c.ClosePath()
	return c
}

// Circle replaces the current path with a circle of radius r centred on
// (x, y) and paints it.
func (c *Context) Circle(x, y, r float64, style Style) {
	c.BeginPath()
	c.Arc(x, y, r, 0, 2*math.Pi, false)
	c.ClosePath()
	c.Paint(style)
}

// Ellipse replaces the current path with an ellipse centred on (x, y) and
// paints it. r1 and r2 are the horizontal and vertical extents across the
// whole ellipse: they are halved before use.
func (c *Context) Ellipse(x, y, r1, r2 float64, style Style) {
	c.BeginPath()
	r1 /= 2
	r2 /= 2
	c.MoveTo(x, y-r2)
	c.BezierCurveTo(x+r1, y-r2, x+r1, y+r2, x, y+r2)
	c.BezierCurveTo(x-r1, y+r2, x-r1, y-r2, x, y-r2)
	c.ClosePath()
	c.Paint(style)
}
