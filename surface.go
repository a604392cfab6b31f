package canvaslib

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
)

// Surface is a fixed-size raster of premultiplied RGBA pixels. Its
// dimensions never change; its pixels are written by the contexts bound to
// it.
//
// Surface implements image.Image and draw.Image, so it can be encoded,
// drawn with image/draw, or passed back into DrawImage.
type Surface struct {
	img *image.RGBA
}

// NewSurface allocates a transparent surface with the given pixel
// dimensions. Negative dimensions are treated as zero.
func NewSurface(width, height int) *Surface {
	return &Surface{img: image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))}
}

// Width returns the width of the surface.
func (s *Surface) Width() int {
	return s.img.Rect.Dx()
}

// Height returns the height of the surface.
func (s *Surface) Height() int {
	return s.img.Rect.Dy()
}

// RGBA returns the backing image. Writes to it are writes to the surface.
func (s *Surface) RGBA() *image.RGBA {
	return s.img
}

// Pix returns the raw premultiplied RGBA bytes, 4 per pixel, row major.
func (s *Surface) Pix() []uint8 {
	return s.img.Pix
}

// PixelAt returns the premultiplied color of a pixel; transparent outside
// the surface.
func (s *Surface) PixelAt(x, y int) color.RGBA {
	return s.img.RGBAAt(x, y)
}

// SetPixel sets a pixel from a straight-alpha color. Out of range
// coordinates are ignored.
func (s *Surface) SetPixel(x, y int, c RGBA) {
	s.img.SetRGBA(x, y, c.premultiplied())
}

// Clear fills the entire surface with a color.
func (s *Surface) Clear(c RGBA) {
	p := c.premultiplied()
	pix := s.img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i+0] = p.R
		pix[i+1] = p.G
		pix[i+2] = p.B
		pix[i+3] = p.A
	}
}

// Equal reports whether two surfaces have the same size and identical
// pixels.
func (s *Surface) Equal(other *Surface) bool {
	if s.img.Rect != other.img.Rect {
		return false
	}
	return bytes.Equal(s.img.Pix, other.img.Pix)
}

// EncodePNG writes the surface as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, s.img); err != nil {
		return fmt.Errorf("canvaslib: encode png: %w", err)
	}
	return nil
}

// SavePNG saves the surface to a PNG file.
func (s *Surface) SavePNG(path string) (err error) {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("canvaslib: save png: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("canvaslib: save png: %w", cerr)
		}
	}()
	return s.EncodePNG(f)
}

// At implements the image.Image interface.
func (s *Surface) At(x, y int) color.Color {
	return s.img.At(x, y)
}

// Set implements the draw.Image interface.
func (s *Surface) Set(x, y int, c color.Color) {
	s.img.Set(x, y, c)
}

// Bounds implements the image.Image interface.
func (s *Surface) Bounds() image.Rectangle {
	return s.img.Rect
}

// ColorModel implements the image.Image interface.
func (s *Surface) ColorModel() color.Model {
	return color.RGBAModel
}
