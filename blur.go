package canvaslib

import "math"

// Blur softens the whole surface by drawing attenuated, shifted copies of
// it over itself. Every offset (i, j) within radius/2 of the origin, except
// the origin, receives one copy whose alpha is intensity scaled by the
// linear falloff of Attenuate. An even radius is bumped to the next odd
// value; radius <= 0 does nothing.
//
// Small radii (2 to 14) and intensities below 0.1 give the intended soft
// look. Drawing state, including the transform, is restored afterwards.
func (c *Context) Blur(radius int, intensity float64) {
	if radius <= 0 {
		return
	}
	if radius%2 == 0 {
		radius++
	}

	c.Save()
	defer c.Restore()
	c.ResetTransform()
	c.SetCompositeOperation(CompositeSourceOver)

	snapshot := CopySurface(c.surface)
	half := radius / 2

	passes := 0
	for i := 0; i < radius; i++ {
		for j := 0; j < radius; j++ {
			x, y := float64(i-half), float64(j-half)
			d := math.Hypot(x, y)
			if d == 0 || d > float64(half) {
				continue
			}
			alpha := intensity * Attenuate(x, y, 0, 0, float64(half))
			if alpha <= 0 {
				continue
			}
			// Intensities above 1 saturate.
			c.state.globalAlpha = math.Min(alpha, 1)
			c.DrawImage(snapshot, x, y)
			passes++
		}
	}
	Logger().Debug("canvaslib: blur", "radius", radius, "intensity", intensity, "passes", passes)
}

// Attenuate returns the linear falloff 1 - d/r of the point (x, y) at
// distance d from (cx, cy). It is zero at the centre and beyond r.
func Attenuate(x, y, cx, cy, r float64) float64 {
	d := math.Hypot(x-cx, y-cy)
	if d == 0 || d > r {
		return 0
	}
	return 1 - d/r
}
