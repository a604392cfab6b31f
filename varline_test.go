package canvaslib

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// columnCoverage returns the summed alpha of column x in pixels.
func columnCoverage(s *Surface, x int) float64 {
	sum := 0
	for y := 0; y < s.Height(); y++ {
		sum += int(s.PixelAt(x, y).A)
	}
	return float64(sum) / 255
}

func TestContext_VarLineExtents(t *testing.T) {
	s := NewSurface(100, 100)
	ctx := NewContext(s)
	ctx.VarLine(10, 50, 90, 50, 4, 20, Style{Fill: "#000"})

	// The width grows linearly from 4 at x=10 to 20 at x=90; a column's
	// coverage equals the width at its centre.
	for _, x := range []int{10, 11, 30, 50, 70, 89} {
		want := 4 + 16*(float64(x)+0.5-10)/80
		if got := columnCoverage(s, x); math.Abs(got-want) > 0.05 {
			t.Errorf("column %d coverage = %.3f, want %.3f", x, got, want)
		}
	}
	for _, x := range []int{9, 90} {
		if got := columnCoverage(s, x); got != 0 {
			t.Errorf("column %d coverage = %.3f, want 0", x, got)
		}
	}
}

func TestContext_VarLinePath(t *testing.T) {
	ctx := NewContext(NewSurface(100, 100))
	ctx.VarLine(10, 50, 90, 50, 4, 20, Style{})

	want := []PathElement{
		MoveTo{Pt(10, 52)},
		LineTo{Pt(10, 48)},
		LineTo{Pt(90, 40)},
		LineTo{Pt(90, 60)},
		Close{},
	}
	if diff := cmp.Diff(want, ctx.Path().Elements(), approx); diff != "" {
		t.Errorf("path (-want +got):\n%s", diff)
	}
}

func TestContext_VarLineRounded(t *testing.T) {
	straight := NewSurface(100, 100)
	NewContext(straight).VarLine(10, 50, 90, 50, 4, 20, Style{Fill: "#000"})

	rounded := NewSurface(100, 100)
	ctx := NewContext(rounded)
	ctx.VarLineRounded(10, 50, 90, 50, 4, 20, Style{Fill: "#000"})

	// Same body between the ends.
	for _, x := range []int{30, 50, 70} {
		if a, b := columnCoverage(straight, x), columnCoverage(rounded, x); math.Abs(a-b) > 0.05 {
			t.Errorf("column %d: straight %.3f, rounded %.3f", x, a, b)
		}
	}

	// Half discs past each end.
	tests := []struct {
		x, y int
		want uint8
	}{
		{9, 49, 255},  // inside the start cap, radius 2
		{9, 50, 255},  // inside the start cap, radius 2
		{96, 50, 255}, // inside the end cap, radius 10
		{98, 42, 0},   // beyond the end cap
		{6, 50, 0},    // beyond the start cap
	}
	for _, tt := range tests {
		if got := rounded.PixelAt(tt.x, tt.y).A; got != tt.want {
			t.Errorf("rounded alpha at (%d,%d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
		if got := straight.PixelAt(tt.x, tt.y).A; got != 0 {
			t.Errorf("straight alpha at (%d,%d) = %d, want 0", tt.x, tt.y, got)
		}
	}

	elems := ctx.Path().Elements()
	if diff := cmp.Diff(PathElement(MoveTo{Pt(10, 52)}), elems[0], approx); diff != "" {
		t.Errorf("first element (-want +got):\n%s", diff)
	}
	if _, ok := elems[len(elems)-1].(Close); !ok {
		t.Errorf("last element = %T, want Close", elems[len(elems)-1])
	}
}

func TestContext_VaryingWidthLineDegenerate(t *testing.T) {
	for _, rounded := range []bool{false, true} {
		s := NewSurface(20, 20)
		ctx := NewContext(s)
		ctx.VaryingWidthLine(5, 5, 5, 5, 4, 8, Style{Fill: "red", Stroke: "blue", LineWidth: 3}, rounded)

		if !ctx.Path().IsEmpty() {
			t.Errorf("rounded=%v: coincident endpoints should build no path", rounded)
		}
		if !s.Equal(NewSurface(20, 20)) {
			t.Errorf("rounded=%v: coincident endpoints should not paint", rounded)
		}
		if ctx.LineWidth() != 1 || ctx.FillColor() != Black {
			t.Errorf("rounded=%v: style should be untouched", rounded)
		}
	}
}

func TestContext_VarLineDiagonal(t *testing.T) {
	s := NewSurface(100, 100)
	ctx := NewContext(s)
	ctx.VarLine(20, 20, 80, 80, 10, 10, Style{Stroke: "red", LineWidth: 2})

	if ctx.LineWidth() != 2 || ctx.StrokeColor() != Red {
		t.Error("stroke style should be applied by the paint contract")
	}
	// Outline only: the middle of the band stays empty.
	if got := s.PixelAt(50, 50).A; got != 0 {
		t.Errorf("band centre alpha = %d, want 0", got)
	}
	// Edge of the band: 5 away from the axis, perpendicular direction.
	ex := 50 + 5/math.Sqrt2
	ey := 50 - 5/math.Sqrt2
	if got := s.PixelAt(int(ex), int(ey)).A; got == 0 {
		t.Errorf("band edge alpha at (%d,%d) = 0, want stroked", int(ex), int(ey))
	}
}
