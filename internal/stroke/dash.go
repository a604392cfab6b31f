package stroke

import (
	"math"

	"github.com/gogpu/canvaslib/internal/raster"
)

// Dash is a dash pattern: alternating dash and gap lengths, starting with
// a dash. Array must have an even number of non-negative entries.
type Dash struct {
	Array []float64

	// Offset is how far into the pattern each subpath starts.
	Offset float64
}

// PatternLength returns the length of one pattern cycle.
func (d Dash) PatternLength() float64 {
	var total float64
	for _, l := range d.Array {
		total += l
	}
	return total
}

// IsDashed reports whether the pattern breaks lines at all. A pattern whose
// lengths sum to zero draws solid lines.
func (d Dash) IsDashed() bool {
	return len(d.Array) > 0 && d.PatternLength() > 0
}

// NormalizedOffset returns the offset reduced to [0, PatternLength).
func (d Dash) NormalizedOffset() float64 {
	total := d.PatternLength()
	if total <= 0 {
		return 0
	}
	offset := math.Mod(d.Offset, total)
	if offset < 0 {
		offset += total
	}
	return offset
}

// Scale returns the pattern with every length and the offset multiplied
// by factor.
func (d Dash) Scale(factor float64) Dash {
	scaled := make([]float64, len(d.Array))
	for i, l := range d.Array {
		scaled[i] = l * factor
	}
	return Dash{Array: scaled, Offset: d.Offset * factor}
}

// Apply splits lines into the dash intervals of the pattern. The pattern
// restarts at the offset on every subpath. Each dash is returned as an open
// polyline so it receives caps; dashes that cross a vertex keep the vertex
// and are joined there. Lines are returned unchanged when d is not dashed.
func (d Dash) Apply(lines []raster.Polyline) []raster.Polyline {
	if !d.IsDashed() {
		return lines
	}

	var out []raster.Polyline
	for _, line := range lines {
		pts := line.Points
		if line.Closed && len(pts) > 1 {
			pts = append(pts[:len(pts):len(pts)], pts[0])
		}
		if len(pts) < 2 {
			continue
		}

		idx, remaining := d.start()
		on := idx%2 == 0
		var dash []point
		if on {
			dash = []point{pts[0]}
		}

		for i := 1; i < len(pts); i++ {
			a, b := pts[i-1], pts[i]
			seg := a.Distance(b)
			pos := 0.0
			for seg-pos > remaining {
				pos += remaining
				p := a.Lerp(b, pos/seg)
				if on {
					out = append(out, raster.Polyline{Points: append(dash, p)})
					dash = nil
				} else {
					dash = []point{p}
				}
				on = !on
				idx = (idx + 1) % len(d.Array)
				remaining = d.Array[idx]
			}
			remaining -= seg - pos
			if on {
				dash = append(dash, b)
			}
		}
		if !on && remaining == 0 && d.Array[(idx+1)%len(d.Array)] == 0 {
			// A gap ending exactly at the end is followed by a zero-length
			// dash, which still gets caps.
			end := pts[len(pts)-1]
			dash = []point{end, end}
			on = true
		}
		if on && len(dash) > 1 {
			out = append(out, raster.Polyline{Points: dash})
		}
	}
	return out
}

// start returns the pattern entry the offset falls in and how much of that
// entry is left. An offset landing exactly on a zero-length entry stops
// there, so the entry is not skipped.
func (d Dash) start() (int, float64) {
	off := d.NormalizedOffset()
	idx := 0
	for off > d.Array[idx] || (off == d.Array[idx] && d.Array[idx] > 0) {
		off -= d.Array[idx]
		idx = (idx + 1) % len(d.Array)
	}
	return idx, d.Array[idx] - off
}
