package canvaslib

import "math"

// VaryingWidthLine replaces the current path with a line from (x1, y1) to
// (x2, y2) whose width grows linearly from w1 to w2, then paints it.
//
// With rounded set, each end is capped by a half circle of that end's
// width. Coincident endpoints produce neither a path nor paint, and the
// current path is left as it was.
func (c *Context) VaryingWidthLine(x1, y1, x2, y2, w1, w2 float64, style Style, rounded bool) {
	a, b := Pt(x1, y1), Pt(x2, y2)
	length := a.Distance(b)
	if length == 0 {
		return
	}
	w1 /= 2
	w2 /= 2

	// Unit normal of the line, scaled to each end's half width.
	n := b.Sub(a).Mul(1 / length).Perp()
	s1x, s1y := n.X*w1, n.Y*w1
	s2x, s2y := n.X*w2, n.Y*w2

	c.BeginPath()
	c.MoveTo(x1+s1x, y1+s1y)
	if rounded {
		angle := math.Atan2(s1y, s1x)
		c.Arc(x1, y1, w1, angle, angle+math.Pi, false)
		c.LineTo(x2-s2x, y2-s2y)
		c.Arc(x2, y2, w2, angle+math.Pi, angle, false)
	} else {
		c.LineTo(x1-s1x, y1-s1y)
		c.LineTo(x2-s2x, y2-s2y)
		c.LineTo(x2+s2x, y2+s2y)
	}
	c.ClosePath()
	c.Paint(style)
}

// VarLine draws a straight-ended line of varying width.
func (c *Context) VarLine(x1, y1, x2, y2, w1, w2 float64, style Style) {
	c.VaryingWidthLine(x1, y1, x2, y2, w1, w2, style, false)
}

// VarLineRounded draws a line of varying width with rounded ends.
func (c *Context) VarLineRounded(x1, y1, x2, y2, w1, w2 float64, style Style) {
	c.VaryingWidthLine(x1, y1, x2, y2, w1, w2, style, true)
}
