package raster

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestFlatten_Lines(t *testing.T) {
	elems := []Element{
		MoveTo{Point{0, 0}},
		LineTo{Point{10, 0}},
		LineTo{Point{10, 10}},
		Close{},
		MoveTo{Point{20, 20}},
		LineTo{Point{30, 20}},
	}

	got := Flatten(elems, DefaultTolerance)
	want := []Polyline{
		{Points: []Point{{0, 0}, {10, 0}, {10, 10}}, Closed: true},
		{Points: []Point{{20, 20}, {30, 20}}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Flatten mismatch (-want +got):\n%s", diff)
	}
}

func TestFlatten_LineAfterCloseStartsAtSubpathStart(t *testing.T) {
	elems := []Element{
		MoveTo{Point{1, 1}},
		LineTo{Point{5, 1}},
		Close{},
		LineTo{Point{1, 5}},
	}

	got := Flatten(elems, DefaultTolerance)
	if len(got) != 2 {
		t.Fatalf("got %d polylines, want 2", len(got))
	}
	want := []Point{{1, 1}, {1, 5}}
	if diff := cmp.Diff(want, got[1].Points); diff != "" {
		t.Errorf("second polyline mismatch (-want +got):\n%s", diff)
	}
}

func TestFlatten_CubicStaysOnCurve(t *testing.T) {
	// Quarter circle approximation of radius 50.
	const k = 0.5522847498307936 * 50
	elems := []Element{
		MoveTo{Point{50, 0}},
		CubicTo{Point{50, k}, Point{k, 50}, Point{0, 50}},
	}

	got := Flatten(elems, 0.05)
	if len(got) != 1 {
		t.Fatalf("got %d polylines, want 1", len(got))
	}
	pts := got[0].Points
	if len(pts) < 8 {
		t.Errorf("only %d points, expected a finer subdivision", len(pts))
	}
	for _, p := range pts {
		r := math.Hypot(p.X, p.Y)
		if math.Abs(r-50) > 0.1 {
			t.Errorf("point %v at radius %.3f, want ~50", p, r)
		}
	}
	last := pts[len(pts)-1]
	if diff := cmp.Diff(Point{0, 50}, last, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("last point mismatch (-want +got):\n%s", diff)
	}
}

func TestRasterizer_FillSquare(t *testing.T) {
	r := NewRasterizer(10, 10)
	mask := r.Fill([]Polyline{{
		Points: []Point{{2, 2}, {8, 2}, {8, 8}, {2, 8}},
	}})
	if mask == nil {
		t.Fatal("Fill returned nil mask")
	}

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			a := mask.AlphaAt(x, y).A
			inside := x >= 2 && x < 8 && y >= 2 && y < 8
			if inside && a != 255 {
				t.Errorf("(%d,%d) coverage %d, want 255", x, y, a)
			}
			if !inside && a != 0 {
				t.Errorf("(%d,%d) coverage %d, want 0", x, y, a)
			}
		}
	}
}

func TestRasterizer_HalfPixelCoverage(t *testing.T) {
	r := NewRasterizer(4, 1)
	mask := r.Fill([]Polyline{{
		Points: []Point{{0, 0}, {1.5, 0}, {1.5, 1}, {0, 1}},
	}})
	if got := mask.AlphaAt(1, 0).A; got < 120 || got > 135 {
		t.Errorf("half covered pixel = %d, want ~128", got)
	}
}

func TestRasterizer_OverlapSaturates(t *testing.T) {
	square := Polyline{Points: []Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}}}
	r := NewRasterizer(4, 4)
	mask := r.Fill([]Polyline{square, square})
	if got := mask.AlphaAt(1, 1).A; got != 255 {
		t.Errorf("overlap coverage = %d, want 255", got)
	}
}

func TestRasterizer_Empty(t *testing.T) {
	if NewRasterizer(0, 5).Fill([]Polyline{{Points: []Point{{0, 0}, {1, 0}, {1, 1}}}}) != nil {
		t.Error("zero-width target should give nil mask")
	}
	if NewRasterizer(5, 5).Fill(nil) != nil {
		t.Error("no polygons should give nil mask")
	}
	if NewRasterizer(5, 5).Fill([]Polyline{{Points: []Point{{0, 0}, {3, 3}}}}) != nil {
		t.Error("two-point polygon should give nil mask")
	}
}
