package canvaslib

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/canvaslib/internal/blend"
)

// DrawImage draws img with its top-left corner at (dx, dy) in user space,
// at its natural size. A *Surface may be passed directly.
func (c *Context) DrawImage(img image.Image, dx, dy float64) {
	b := img.Bounds()
	c.DrawImageScaled(img, dx, dy, float64(b.Dx()), float64(b.Dy()))
}

// DrawImageScaled draws img into the rectangle (dx, dy, dw, dh) in user
// space. The image goes through the current transform, global alpha and
// composite operation. Pure integer translations are copied directly;
// anything else is resampled, bilinearly when image smoothing is enabled
// and by nearest neighbour otherwise.
func (c *Context) DrawImageScaled(img image.Image, dx, dy, dw, dh float64) {
	if s, ok := img.(*Surface); ok {
		img = s.img
	}
	b := img.Bounds()
	if b.Empty() || dw == 0 || dh == 0 || c.width == 0 || c.height == 0 {
		return
	}

	sw, sh := float64(b.Dx()), float64(b.Dy())
	m := c.state.matrix.
		Multiply(Translate(dx, dy)).
		Multiply(Scale(dw/sw, dh/sh)).
		Multiply(Translate(-float64(b.Min.X), -float64(b.Min.Y)))

	dst := c.surface.img
	if m.IsTranslation() && isWhole(m.C) && isWhole(m.F) {
		off := image.Pt(int(m.C), int(m.F))
		blend.Image(dst, toRGBA(img), off, c.alpha255(), c.state.compositeOp)
		return
	}

	var interp draw.Interpolator = draw.NearestNeighbor
	if c.state.smoothing {
		interp = draw.BiLinear
	}
	tmp := image.NewRGBA(dst.Rect)
	s2d := f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F}
	interp.Transform(tmp, s2d, img, b, draw.Src, nil)
	blend.Image(dst, tmp, image.Point{}, c.alpha255(), c.state.compositeOp)
}

// toRGBA returns img as premultiplied RGBA with the same bounds, converting
// only when needed.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)
	return rgba
}

func isWhole(v float64) bool {
	return v == math.Trunc(v) && math.Abs(v) < math.MaxInt32
}
