package canvaslib

import "image"

// ImageOption configures SurfaceFromImage.
type ImageOption func(*imageOptions)

type imageOptions struct {
	scale     float64
	smoothing bool
	context   []ContextOption
}

// WithScale sets the factor applied to the image dimensions. Zero leaves the
// default of 1.
func WithScale(scale float64) ImageOption {
	return func(o *imageOptions) {
		if scale != 0 {
			o.scale = scale
		}
	}
}

// WithSmoothing selects whether a scaled image is interpolated. It has no
// effect at scale 1. The default is true.
func WithSmoothing(enabled bool) ImageOption {
	return func(o *imageOptions) {
		o.smoothing = enabled
	}
}

// WithContextOptions passes options to the context used to draw the image.
func WithContextOptions(opts ...ContextOption) ImageOption {
	return func(o *imageOptions) {
		o.context = append(o.context, opts...)
	}
}

// CopySurface returns a new surface with the size and pixels of src.
func CopySurface(src *Surface) *Surface {
	dst := NewSurface(src.Width(), src.Height())
	NewContext(dst).DrawImage(src, 0, 0)
	return dst
}

// SurfaceFromImage returns a new surface holding img, optionally scaled.
// The surface measures the image dimensions times the scale, truncated to
// whole pixels, and the image is stretched to fill it.
func SurfaceFromImage(img image.Image, opts ...ImageOption) *Surface {
	return surfaceFromImage(img, opts...).Surface()
}

// surfaceFromImage does the work of SurfaceFromImage and returns the
// context that drew the image.
func surfaceFromImage(img image.Image, opts ...ImageOption) *Context {
	o := imageOptions{scale: 1, smoothing: true}
	for _, opt := range opts {
		opt(&o)
	}

	b := img.Bounds()
	w := int(float64(b.Dx()) * o.scale)
	h := int(float64(b.Dy()) * o.scale)
	ctx := NewContext(NewSurface(w, h), o.context...)
	if o.scale != 1 {
		ctx.SetImageSmoothing(o.smoothing)
	}
	ctx.DrawImageScaled(img, 0, 0, float64(ctx.Width()), float64(ctx.Height()))

	Logger().Debug("canvaslib: surface from image",
		"src", b.Size(), "scale", o.scale, "width", ctx.Width(), "height", ctx.Height())
	return ctx
}
