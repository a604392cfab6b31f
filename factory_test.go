package canvaslib

import (
	"image"
	"image/color"
	"testing"
)

// patterned returns a surface whose pixels cover a spread of valid
// premultiplied values, including partial alpha.
func patterned(w, h int) *Surface {
	s := NewSurface(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a := uint8((x*37 + y*11) % 256)
			s.img.SetRGBA(x, y, color.RGBA{R: a, G: a / 2, B: a / 3, A: a})
		}
	}
	return s
}

func TestCopySurface(t *testing.T) {
	src := patterned(17, 9)
	dst := CopySurface(src)

	if dst == src {
		t.Fatal("CopySurface returned the source")
	}
	if !dst.Equal(src) {
		t.Fatal("copy differs from source")
	}

	dst.SetPixel(0, 0, White)
	if src.PixelAt(0, 0) == dst.PixelAt(0, 0) {
		t.Error("copy shares pixels with source")
	}
}

func TestCopySurface_Empty(t *testing.T) {
	dst := CopySurface(NewSurface(0, 3))
	if dst.Width() != 0 || dst.Height() != 3 {
		t.Errorf("size = %dx%d, want 0x3", dst.Width(), dst.Height())
	}
}

func TestContext_BuildCopy(t *testing.T) {
	src := patterned(5, 5)
	ctx := NewContext(src)
	ctx.Translate(2, 2)
	ctx.SetGlobalAlpha(0.2)

	if !ctx.BuildCopy().Equal(src) {
		t.Error("BuildCopy should ignore the context state and copy exactly")
	}
}

func TestSurfaceFromImage(t *testing.T) {
	img := solid(64, 64, opaqueRed)

	tests := []struct {
		name          string
		opts          []ImageOption
		wantW, wantH  int
		wantSmoothing bool
	}{
		{
			name:          "default",
			wantW:         64,
			wantH:         64,
			wantSmoothing: true,
		},
		{
			name:          "scale 2 with smoothing",
			opts:          []ImageOption{WithScale(2), WithSmoothing(true), WithContextOptions(WithImageSmoothing(false))},
			wantW:         128,
			wantH:         128,
			wantSmoothing: true,
		},
		{
			name:          "scale 2 without smoothing",
			opts:          []ImageOption{WithScale(2), WithSmoothing(false)},
			wantW:         128,
			wantH:         128,
			wantSmoothing: false,
		},
		{
			name:          "scale 1 leaves smoothing untouched",
			opts:          []ImageOption{WithScale(1), WithSmoothing(true), WithContextOptions(WithImageSmoothing(false))},
			wantW:         64,
			wantH:         64,
			wantSmoothing: false,
		},
		{
			name:          "fractional scale truncates",
			opts:          []ImageOption{WithScale(0.33)},
			wantW:         21,
			wantH:         21,
			wantSmoothing: true,
		},
		{
			name:          "zero scale means one",
			opts:          []ImageOption{WithScale(0)},
			wantW:         64,
			wantH:         64,
			wantSmoothing: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := surfaceFromImage(img, tt.opts...)
			s := ctx.Surface()
			if s.Width() != tt.wantW || s.Height() != tt.wantH {
				t.Fatalf("size = %dx%d, want %dx%d", s.Width(), s.Height(), tt.wantW, tt.wantH)
			}
			if ctx.ImageSmoothing() != tt.wantSmoothing {
				t.Errorf("smoothing = %v, want %v", ctx.ImageSmoothing(), tt.wantSmoothing)
			}
			// A uniform image stays uniform whatever the scale.
			for _, p := range []image.Point{{0, 0}, {s.Width() / 2, s.Height() / 2}, {s.Width() - 1, s.Height() - 1}} {
				if got := s.PixelAt(p.X, p.Y); got != opaqueRed {
					t.Errorf("pixel %v = %v, want red", p, got)
				}
			}
		})
	}
}

func TestSurfaceFromImage_Pixels(t *testing.T) {
	src := patterned(6, 4)
	if !SurfaceFromImage(src).Equal(src) {
		t.Error("unscaled SurfaceFromImage should copy exactly")
	}

	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(0, 0, opaqueRed)
	img.SetRGBA(1, 0, opaqueBlue)
	s := SurfaceFromImage(img, WithScale(3), WithSmoothing(false))
	for x := 0; x < 6; x++ {
		want := opaqueRed
		if x >= 3 {
			want = opaqueBlue
		}
		for y := 0; y < 3; y++ {
			if got := s.PixelAt(x, y); got != want {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}
