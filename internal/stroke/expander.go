package stroke

import (
	"math"

	"github.com/gogpu/canvaslib/internal/raster"
)

type point = raster.Point

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt ends the stroke flat at the endpoint.
	LineCapButt LineCap = iota
	// LineCapRound adds a half disc beyond the endpoint.
	LineCapRound
	// LineCapSquare extends the stroke by half its width.
	LineCapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter extends the outer edges to a sharp point.
	LineJoinMiter LineJoin = iota
	// LineJoinRound fills a disc at the vertex.
	LineJoinRound
	// LineJoinBevel cuts the corner with a straight edge.
	LineJoinBevel
)

// Style defines the style for stroke expansion.
type Style struct {
	Width      float64
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64
}

// DefaultStyle returns the canvas defaults: width 1, butt caps, miter joins
// and a miter limit of 10.
func DefaultStyle() Style {
	return Style{
		Width:      1,
		Cap:        LineCapButt,
		Join:       LineJoinMiter,
		MiterLimit: 10,
	}
}

// Expander converts stroked polylines into fill polygons.
type Expander struct {
	style     Style
	tolerance float64
}

// NewExpander creates an expander for the given style.
func NewExpander(style Style) *Expander {
	return &Expander{style: style, tolerance: raster.DefaultTolerance}
}

// SetTolerance sets the maximum deviation used when approximating round caps
// and joins. Non-positive values are ignored.
func (e *Expander) SetTolerance(tolerance float64) {
	if tolerance > 0 {
		e.tolerance = tolerance
	}
}

// Expand returns the closed polygons whose union is the stroke outline.
func (e *Expander) Expand(lines []raster.Polyline) []raster.Polyline {
	hw := e.style.Width / 2
	if !(hw > 0) || math.IsInf(hw, 0) {
		return nil
	}

	var out []raster.Polyline
	emit := func(pts ...point) {
		out = append(out, oriented(pts))
	}

	for _, line := range lines {
		pts := dedupe(line.Points, line.Closed)
		closed := line.Closed && len(pts) >= 3

		if len(pts) == 1 {
			e.expandDot(pts[0], hw, emit)
			continue
		}

		n := len(pts) - 1
		if closed {
			n = len(pts)
		}
		for i := 0; i < n; i++ {
			a, b := pts[i], pts[(i+1)%len(pts)]
			nv := normal(a, b).Mul(hw)
			emit(a.Add(nv), b.Add(nv), b.Sub(nv), a.Sub(nv))
		}

		for i := 0; i < len(pts); i++ {
			if !closed && (i == 0 || i == len(pts)-1) {
				continue
			}
			prev := pts[(i-1+len(pts))%len(pts)]
			next := pts[(i+1)%len(pts)]
			e.join(prev, pts[i], next, hw, emit)
		}

		if !closed {
			e.addCap(pts[0], pts[1], hw, emit)
			e.addCap(pts[len(pts)-1], pts[len(pts)-2], hw, emit)
		}
	}
	return out
}

// expandDot handles a zero-length subpath: round and square caps still
// paint, butt caps paint nothing.
func (e *Expander) expandDot(p point, hw float64, emit func(...point)) {
	switch e.style.Cap {
	case LineCapRound:
		emit(disc(p, hw, e.tolerance)...)
	case LineCapSquare:
		emit(point{X: p.X - hw, Y: p.Y - hw}, point{X: p.X + hw, Y: p.Y - hw},
			point{X: p.X + hw, Y: p.Y + hw}, point{X: p.X - hw, Y: p.Y + hw})
	}
}

// addCap adds the cap at end, where from is the neighbouring point.
func (e *Expander) addCap(end, from point, hw float64, emit func(...point)) {
	switch e.style.Cap {
	case LineCapRound:
		emit(disc(end, hw, e.tolerance)...)
	case LineCapSquare:
		d := unit(end.Sub(from)).Mul(hw)
		nv := normal(from, end).Mul(hw)
		emit(end.Add(nv), end.Add(nv).Add(d), end.Sub(nv).Add(d), end.Sub(nv))
	}
}

// join fills the wedge on the outer side of the corner at p.
func (e *Expander) join(prev, p, next point, hw float64, emit func(...point)) {
	d0 := unit(p.Sub(prev))
	d1 := unit(next.Sub(p))
	cross := d0.Cross(d1)
	dot := d0.Dot(d1)
	if math.Abs(cross) < 1e-12 && dot > 0 {
		return
	}

	if e.style.Join == LineJoinRound {
		emit(disc(p, hw, e.tolerance)...)
		return
	}

	// The outer side is opposite to the turn direction.
	side := 1.0
	if cross > 0 {
		side = -1
	}
	o0 := p.Add(perp(d0).Mul(side * hw))
	o1 := p.Add(perp(d1).Mul(side * hw))

	if e.style.Join == LineJoinMiter {
		// cos(turn/2) = sin(interior/2); the miter length over the line width
		// is its reciprocal.
		half := math.Sqrt((1 + dot) / 2)
		if half > 1e-12 && 1/half <= e.style.MiterLimit {
			bis := unit(perp(d0).Add(perp(d1))).Mul(side * hw / half)
			emit(p, o0, p.Add(bis), o1)
			return
		}
	}
	emit(p, o0, o1)
}

func perp(v point) point { return point{X: -v.Y, Y: v.X} }

func unit(v point) point {
	l := v.Length()
	if l == 0 {
		return point{}
	}
	return v.Mul(1 / l)
}

func normal(a, b point) point { return perp(unit(b.Sub(a))) }

// disc approximates a circle with a polygon whose edges stay within
// tolerance of the true circle.
func disc(c point, r, tolerance float64) []point {
	n := 8
	if r > tolerance {
		n = int(math.Ceil(math.Pi / math.Acos(1-tolerance/r)))
	}
	n = max(8, min(n, 256))
	pts := make([]point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = point{X: c.X + r*math.Cos(a), Y: c.Y + r*math.Sin(a)}
	}
	return pts
}

// dedupe drops consecutive duplicate points, and the closing duplicate of a
// closed polyline.
func dedupe(pts []point, closed bool) []point {
	out := make([]point, 0, len(pts))
	for _, p := range pts {
		if len(out) > 0 && out[len(out)-1].Distance(p) < 1e-9 {
			continue
		}
		out = append(out, p)
	}
	if closed && len(out) > 1 && out[0].Distance(out[len(out)-1]) < 1e-9 {
		out = out[:len(out)-1]
	}
	return out
}

// oriented returns pts as a closed polyline with non-negative signed area.
func oriented(pts []point) raster.Polyline {
	var area float64
	for i := range pts {
		j := (i + 1) % len(pts)
		area += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	if area < 0 {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}
	return raster.Polyline{Points: pts, Closed: true}
}
