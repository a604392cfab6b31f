// Package raster turns device-space paths into coverage masks.
//
// Curves are flattened to polylines by recursive subdivision, and polygons
// are scan converted by golang.org/x/image/vector, which accumulates signed
// area per pixel. Overlapping polygons of the same orientation therefore
// saturate instead of cancelling, which is what the stroker relies on.
package raster

import "math"

// DefaultTolerance is the maximum distance, in device pixels, between a
// curve and its flattened polyline.
const DefaultTolerance = 0.1

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// Lerp performs linear interpolation between two points.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Mul scales p by s.
func (p Point) Mul(s float64) Point { return Point{X: p.X * s, Y: p.Y * s} }

// Dot returns the dot product.
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

// Cross returns the z component of the 3D cross product.
func (p Point) Cross(q Point) float64 { return p.X*q.Y - p.Y*q.X }

// Length returns the vector length.
func (p Point) Length() float64 { return math.Hypot(p.X, p.Y) }

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 { return p.Sub(q).Length() }

// Element is one path command.
type Element interface {
	isElement()
}

// MoveTo starts a new subpath.
type MoveTo struct{ Point Point }

// LineTo adds a straight segment.
type LineTo struct{ Point Point }

// QuadTo adds a quadratic Bezier segment.
type QuadTo struct{ Control, Point Point }

// CubicTo adds a cubic Bezier segment.
type CubicTo struct{ Control1, Control2, Point Point }

// Close closes the current subpath.
type Close struct{}

func (MoveTo) isElement()  {}
func (LineTo) isElement()  {}
func (QuadTo) isElement()  {}
func (CubicTo) isElement() {}
func (Close) isElement()   {}

// Polyline is a flattened subpath.
type Polyline struct {
	Points []Point
	Closed bool
}

// Flatten converts path elements into polylines, one per subpath.
// A subpath that consists of a single point is kept so that strokers can
// decide whether to draw caps for it.
func Flatten(elements []Element, tolerance float64) []Polyline {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	var (
		out     []Polyline
		cur     *Polyline
		current Point
	)
	begin := func(p Point) {
		out = append(out, Polyline{Points: []Point{p}})
		cur = &out[len(out)-1]
	}
	ensure := func() {
		if cur == nil {
			begin(current)
		}
	}

	for _, elem := range elements {
		switch e := elem.(type) {
		case MoveTo:
			begin(e.Point)
			current = e.Point
		case LineTo:
			ensure()
			cur.Points = append(cur.Points, e.Point)
			current = e.Point
		case QuadTo:
			ensure()
			flattenQuadratic(current, e.Control, e.Point, tolerance, &cur.Points)
			current = e.Point
		case CubicTo:
			ensure()
			flattenCubic(current, e.Control1, e.Control2, e.Point, tolerance, &cur.Points)
			current = e.Point
		case Close:
			if cur == nil {
				continue
			}
			cur.Closed = true
			// A new segment after Close starts from the subpath start.
			current = cur.Points[0]
			cur = nil
		}
	}
	return out
}

// flattenQuadratic recursively subdivides a quadratic Bezier curve,
// appending every point after p0.
func flattenQuadratic(p0, p1, p2 Point, tolerance float64, points *[]Point) {
	flattenQuadraticRec(p0, p1, p2, tolerance, points, 0)
}

func flattenQuadraticRec(p0, p1, p2 Point, tolerance float64, points *[]Point, depth int) {
	if depth >= maxDepth || distanceToLine(p1, p0, p2) < tolerance {
		*points = append(*points, p2)
		return
	}

	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := q0.Lerp(q1, 0.5)

	flattenQuadraticRec(p0, q0, q2, tolerance, points, depth+1)
	flattenQuadraticRec(q2, q1, p2, tolerance, points, depth+1)
}

// maxDepth bounds subdivision for degenerate or non-finite input.
const maxDepth = 16

func flattenCubic(p0, p1, p2, p3 Point, tolerance float64, points *[]Point) {
	flattenCubicRec(p0, p1, p2, p3, tolerance, points, 0)
}

func flattenCubicRec(p0, p1, p2, p3 Point, tolerance float64, points *[]Point, depth int) {
	d := math.Max(distanceToLine(p1, p0, p3), distanceToLine(p2, p0, p3))
	if depth >= maxDepth || d < tolerance {
		*points = append(*points, p3)
		return
	}

	// de Casteljau split at t = 0.5
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)

	flattenCubicRec(p0, q0, r0, s, tolerance, points, depth+1)
	flattenCubicRec(s, r1, q2, p3, tolerance, points, depth+1)
}

// distanceToLine returns the distance from p to the segment (a, b).
func distanceToLine(p, a, b Point) float64 {
	ab := b.Sub(a)
	abLen := ab.Length()
	if abLen < 1e-10 {
		return p.Distance(a)
	}

	t := p.Sub(a).Dot(ab) / (abLen * abLen)
	switch {
	case t < 0:
		return p.Distance(a)
	case t > 1:
		return p.Distance(b)
	}
	return p.Distance(a.Add(ab.Mul(t)))
}
