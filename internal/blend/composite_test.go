package blend

import (
	"image"
	"image/color"
	"testing"
)

func filled(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestSolid_MaskCoverage(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 3, 1))
	mask := image.NewAlpha(dst.Bounds())
	mask.Pix[0] = 255
	mask.Pix[1] = 128
	mask.Pix[2] = 0

	Solid(dst, mask, color.RGBA{R: 255, A: 255}, 255, SourceOver)

	if got := dst.RGBAAt(0, 0); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("full coverage pixel = %v", got)
	}
	if got := dst.RGBAAt(1, 0); got != (color.RGBA{R: 128, A: 128}) {
		t.Errorf("half coverage pixel = %v", got)
	}
	if got := dst.RGBAAt(2, 0); got != (color.RGBA{}) {
		t.Errorf("zero coverage pixel = %v", got)
	}
}

func TestSolid_Opacity(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 1, 1))
	Solid(dst, nil, color.RGBA{G: 255, A: 255}, 51, SourceOver)
	if got := dst.RGBAAt(0, 0); got != (color.RGBA{G: 51, A: 51}) {
		t.Errorf("pixel = %v, want G=51 A=51", got)
	}
}

func TestSolid_UnboundedClearsOutsideMask(t *testing.T) {
	dst := filled(2, 1, color.RGBA{B: 255, A: 255})
	mask := image.NewAlpha(dst.Bounds())
	mask.Pix[0] = 255

	Solid(dst, mask, color.RGBA{A: 255}, 255, DestinationIn)

	if got := dst.RGBAAt(0, 0); got != (color.RGBA{B: 255, A: 255}) {
		t.Errorf("covered pixel = %v, want kept", got)
	}
	if got := dst.RGBAAt(1, 0); got != (color.RGBA{}) {
		t.Errorf("uncovered pixel = %v, want cleared", got)
	}
}

func TestImage_Offset(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	src := filled(2, 2, color.RGBA{R: 255, A: 255})

	Image(dst, src, image.Pt(1, 2), 255, SourceOver)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			inside := x >= 1 && x < 3 && y >= 2 && y < 4
			got := dst.RGBAAt(x, y)
			if inside && got.A != 255 {
				t.Errorf("(%d,%d) = %v, want opaque", x, y, got)
			}
			if !inside && got.A != 0 {
				t.Errorf("(%d,%d) = %v, want transparent", x, y, got)
			}
		}
	}
}

func TestImage_NegativeOffsetClips(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src := filled(2, 2, color.RGBA{R: 255, A: 255})

	Image(dst, src, image.Pt(-1, -1), 255, SourceOver)

	if got := dst.RGBAAt(0, 0); got.A != 255 {
		t.Errorf("(0,0) = %v, want opaque", got)
	}
	if got := dst.RGBAAt(1, 1); got.A != 0 {
		t.Errorf("(1,1) = %v, want transparent", got)
	}
}

func TestImage_ExactCopy(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for i := range src.Pix {
		src.Pix[i] = byte(i * 7)
	}
	// Keep the data valid premultiplied color.
	for i := 0; i < len(src.Pix); i += 4 {
		a := src.Pix[i+3]
		for k := 0; k < 3; k++ {
			if src.Pix[i+k] > a {
				src.Pix[i+k] = a
			}
		}
	}

	dst := image.NewRGBA(src.Bounds())
	Image(dst, src, image.Point{}, 255, SourceOver)

	for i := range src.Pix {
		if dst.Pix[i] != src.Pix[i] {
			t.Fatalf("Pix[%d] = %d, want %d", i, dst.Pix[i], src.Pix[i])
		}
	}
}
