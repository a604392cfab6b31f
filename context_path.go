package canvaslib

import "math"

// BeginPath discards the current path.
func (c *Context) BeginPath() {
	c.path.Clear()
}

// MoveTo starts a new subpath at (x, y).
func (c *Context) MoveTo(x, y float64) {
	c.path.MoveTo(c.device(x, y))
}

// LineTo adds a line to (x, y). Without a current point it behaves like
// MoveTo.
func (c *Context) LineTo(x, y float64) {
	if !c.path.HasCurrentPoint() {
		c.MoveTo(x, y)
		return
	}
	c.path.LineTo(c.device(x, y))
}

// QuadraticCurveTo adds a quadratic Bezier curve with control point
// (cpx, cpy) ending at (x, y).
func (c *Context) QuadraticCurveTo(cpx, cpy, x, y float64) {
	c.ensureSubpath(cpx, cpy)
	c.path.QuadTo(c.device(cpx, cpy), c.device(x, y))
}

// BezierCurveTo adds a cubic Bezier curve with control points (cp1x, cp1y)
// and (cp2x, cp2y) ending at (x, y).
func (c *Context) BezierCurveTo(cp1x, cp1y, cp2x, cp2y, x, y float64) {
	c.ensureSubpath(cp1x, cp1y)
	c.path.CubicTo(c.device(cp1x, cp1y), c.device(cp2x, cp2y), c.device(x, y))
}

// Rect adds a closed rectangular subpath.
func (c *Context) Rect(x, y, w, h float64) {
	c.MoveTo(x, y)
	c.path.LineTo(c.device(x+w, y))
	c.path.LineTo(c.device(x+w, y+h))
	c.path.LineTo(c.device(x, y+h))
	c.path.Close()
}

// ClosePath closes the current subpath with a straight line back to its
// start.
func (c *Context) ClosePath() {
	c.path.Close()
}

// Arc adds a circular arc centred on (x, y) from startAngle to endAngle
// (radians, measured clockwise from the positive x axis in device space).
// The arc is joined to the current point by a straight line.
//
// As on a canvas, a clockwise sweep of 2*pi or more draws a full circle;
// otherwise the end angle is brought into the sweep direction. A negative
// radius adds nothing.
func (c *Context) Arc(x, y, r, startAngle, endAngle float64, counterclockwise bool) {
	if r < 0 || math.IsNaN(r) {
		return
	}

	sweep := arcSweep(startAngle, endAngle, counterclockwise)
	start := Pt(x+r*math.Cos(startAngle), y+r*math.Sin(startAngle))
	if c.path.HasCurrentPoint() {
		c.path.LineTo(c.state.matrix.TransformPoint(start))
	} else {
		c.path.MoveTo(c.state.matrix.TransformPoint(start))
	}
	c.arcSegments(Pt(x, y), r, startAngle, sweep)
}

// ArcTo adds an arc of radius r tangent to the line from the current point
// to (x1, y1) and to the line from (x1, y1) to (x2, y2), joined to the
// current point by a straight line. When r is zero or the points are
// collinear it adds a line to (x1, y1). A negative radius adds nothing.
func (c *Context) ArcTo(x1, y1, x2, y2, r float64) {
	if r < 0 || math.IsNaN(r) {
		return
	}
	if !c.path.HasCurrentPoint() {
		c.MoveTo(x1, y1)
		return
	}

	p0 := c.state.matrix.Invert().TransformPoint(c.path.CurrentPoint())
	p1 := Pt(x1, y1)
	p2 := Pt(x2, y2)

	v1 := p0.Sub(p1)
	v2 := p2.Sub(p1)
	cross := v1.X*v2.Y - v1.Y*v2.X
	if r == 0 || v1.Length() == 0 || v2.Length() == 0 || math.Abs(cross) < 1e-9 {
		c.LineTo(x1, y1)
		return
	}

	u1, u2 := v1.Normalize(), v2.Normalize()
	// theta is the angle at p1 between the two lines.
	theta := math.Acos(math.Max(-1, math.Min(1, u1.X*u2.X+u1.Y*u2.Y)))
	tangent := r / math.Tan(theta/2)
	t1 := p1.Add(u1.Mul(tangent))
	t2 := p1.Add(u2.Mul(tangent))
	center := p1.Add(u1.Add(u2).Normalize().Mul(r / math.Sin(theta/2)))

	start := math.Atan2(t1.Y-center.Y, t1.X-center.X)
	end := math.Atan2(t2.Y-center.Y, t2.X-center.X)
	sweep := math.Remainder(end-start, 2*math.Pi)

	c.path.LineTo(c.state.matrix.TransformPoint(t1))
	c.arcSegments(center, r, start, sweep)
}

// arcSweep returns the signed sweep of a canvas arc.
func arcSweep(start, end float64, ccw bool) float64 {
	const twoPi = 2 * math.Pi
	if !ccw {
		if end-start >= twoPi {
			return twoPi
		}
		return math.Mod(math.Mod(end-start, twoPi)+twoPi, twoPi)
	}
	if start-end >= twoPi {
		return -twoPi
	}
	return -math.Mod(math.Mod(start-end, twoPi)+twoPi, twoPi)
}

// arcSegments appends cubic segments of at most a quarter turn each,
// starting at the current point which must already lie on the arc.
func (c *Context) arcSegments(center Point, r, start, sweep float64) {
	if sweep == 0 || r == 0 {
		return
	}

	const maxAngle = math.Pi / 2
	n := int(math.Ceil(math.Abs(sweep)/maxAngle - 1e-9))
	step := sweep / float64(n)
	m := c.state.matrix

	for i := 0; i < n; i++ {
		a1 := start + float64(i)*step
		a2 := a1 + step
		alpha := math.Sin(step) * (math.Sqrt(4+3*math.Tan(step/2)*math.Tan(step/2)) - 1) / 3

		sin1, cos1 := math.Sincos(a1)
		sin2, cos2 := math.Sincos(a2)
		p1 := Pt(center.X+r*cos1, center.Y+r*sin1)
		p2 := Pt(center.X+r*cos2, center.Y+r*sin2)
		c1 := Pt(p1.X-alpha*r*sin1, p1.Y+alpha*r*cos1)
		c2 := Pt(p2.X+alpha*r*sin2, p2.Y-alpha*r*cos2)

		c.path.CubicTo(m.TransformPoint(c1), m.TransformPoint(c2), m.TransformPoint(p2))
	}
}

// ensureSubpath moves to (x, y) when the path has no current point.
func (c *Context) ensureSubpath(x, y float64) {
	if !c.path.HasCurrentPoint() {
		c.MoveTo(x, y)
	}
}

// device maps user coordinates through the current transform.
func (c *Context) device(x, y float64) Point {
	return c.state.matrix.TransformPoint(Pt(x, y))
}
