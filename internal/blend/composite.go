package blend

import (
	"image"
	"image/color"
)

// Solid composites the premultiplied color c onto dst through a coverage
// mask. A nil mask means full coverage. The mask, when present, must share
// dst's bounds. Opacity scales the source alpha (255 = unchanged).
func Solid(dst *image.RGBA, mask *image.Alpha, c color.RGBA, opacity uint8, mode Mode) {
	fn := Get(mode)
	b := dst.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		di := dst.PixOffset(b.Min.X, y)
		mi := 0
		if mask != nil {
			mi = mask.PixOffset(b.Min.X, y)
		}
		for x := b.Min.X; x < b.Max.X; x, di = x+1, di+4 {
			cov := opacity
			if mask != nil {
				cov = mulDiv255(mask.Pix[mi], opacity)
				mi++
			}
			if cov == 0 && mode.Bounded() {
				continue
			}
			p := dst.Pix[di : di+4 : di+4]
			p[0], p[1], p[2], p[3] = fn(
				mulDiv255(c.R, cov), mulDiv255(c.G, cov), mulDiv255(c.B, cov), mulDiv255(c.A, cov),
				p[0], p[1], p[2], p[3])
		}
	}
}

// Image composites src onto dst with src's bounds translated by off.
// Destination pixels outside the translated source see a transparent source:
// bounded modes leave them alone, unbounded modes clear or keep them as their
// formula dictates.
func Image(dst, src *image.RGBA, off image.Point, opacity uint8, mode Mode) {
	fn := Get(mode)
	area := dst.Bounds()
	placed := src.Bounds().Add(off)
	if mode.Bounded() {
		area = area.Intersect(placed)
	}
	for y := area.Min.Y; y < area.Max.Y; y++ {
		di := dst.PixOffset(area.Min.X, y)
		for x := area.Min.X; x < area.Max.X; x, di = x+1, di+4 {
			var sr, sg, sb, sa byte
			if (image.Point{X: x, Y: y}).In(placed) {
				si := src.PixOffset(x-off.X, y-off.Y)
				s := src.Pix[si : si+4 : si+4]
				sr, sg, sb, sa = s[0], s[1], s[2], s[3]
				if opacity != 255 {
					sr, sg, sb, sa = mulDiv255(sr, opacity), mulDiv255(sg, opacity),
						mulDiv255(sb, opacity), mulDiv255(sa, opacity)
				}
			}
			p := dst.Pix[di : di+4 : di+4]
			p[0], p[1], p[2], p[3] = fn(sr, sg, sb, sa, p[0], p[1], p[2], p[3])
		}
	}
}
