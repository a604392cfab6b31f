package raster

import (
	"image"
	"image/draw"

	"golang.org/x/image/vector"
)

// Rasterizer produces anti-aliased coverage masks for a fixed-size target.
// It reuses one vector.Rasterizer between calls; it is not safe for
// concurrent use.
type Rasterizer struct {
	width, height int
	z             *vector.Rasterizer
}

// NewRasterizer creates a rasterizer for a width x height target.
func NewRasterizer(width, height int) *Rasterizer {
	return &Rasterizer{width: width, height: height}
}

// Fill returns the coverage of the given polygons. Every polyline is treated
// as closed. Coverage is the absolute accumulated winding clamped to one,
// which matches the non-zero rule for simple and consistently oriented
// shapes. It returns nil when the target is empty or nothing was drawn.
func (r *Rasterizer) Fill(polys []Polyline) *image.Alpha {
	if r.width <= 0 || r.height <= 0 {
		return nil
	}

	drawn := false
	for _, pl := range polys {
		if len(pl.Points) < 3 {
			continue
		}
		if !drawn {
			r.reset()
			drawn = true
		}
		p0 := pl.Points[0]
		r.z.MoveTo(float32(p0.X), float32(p0.Y))
		for _, p := range pl.Points[1:] {
			r.z.LineTo(float32(p.X), float32(p.Y))
		}
		r.z.ClosePath()
	}
	if !drawn {
		return nil
	}

	mask := image.NewAlpha(image.Rect(0, 0, r.width, r.height))
	r.z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

func (r *Rasterizer) reset() {
	if r.z == nil {
		r.z = vector.NewRasterizer(r.width, r.height)
	} else {
		r.z.Reset(r.width, r.height)
	}
	r.z.DrawOp = draw.Src
}
