package canvaslib

import "math"

// SetLineDash sets the dash pattern used by Stroke as alternating dash and
// gap lengths in user units, starting with a dash. An odd number of
// lengths is repeated to make the count even, so [5] behaves as [5, 5].
// Calling it with no lengths restores solid lines. A list containing a
// negative or non-finite length is ignored.
//
//	ctx.SetLineDash(6, 3)
//	ctx.Rect(10, 10, 80, 40)
//	ctx.Stroke()
func (c *Context) SetLineDash(lengths ...float64) {
	for _, l := range lengths {
		if l < 0 || math.IsNaN(l) || math.IsInf(l, 0) {
			Logger().Debug("canvaslib: ignored line dash", "lengths", lengths)
			return
		}
	}

	n := len(lengths)
	if n%2 != 0 {
		n *= 2
	}
	pattern := make([]float64, n)
	for i := range pattern {
		pattern[i] = lengths[i%len(lengths)]
	}
	c.state.dash.Array = pattern
}

// LineDash returns a copy of the current dash pattern, already made even.
// It is empty for solid lines.
func (c *Context) LineDash() []float64 {
	return append([]float64{}, c.state.dash.Array...)
}

// SetLineDashOffset sets how far into the dash pattern each subpath starts.
// Non-finite values are ignored.
func (c *Context) SetLineDashOffset(offset float64) {
	if math.IsNaN(offset) || math.IsInf(offset, 0) {
		return
	}
	c.state.dash.Offset = offset
}

// LineDashOffset returns the current dash offset.
func (c *Context) LineDashOffset() float64 {
	return c.state.dash.Offset
}
