package canvaslib

import "github.com/gogpu/canvaslib/internal/raster"

// ContextOption configures a Context during creation.
//
// Example:
//
//	// Default settings
//	ctx := canvaslib.NewContext(surface)
//
//	// Pixel-art friendly context
//	ctx := canvaslib.NewContext(surface, canvaslib.WithImageSmoothing(false))
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	tolerance float64
	smoothing bool
}

// defaultOptions returns the default context options.
func defaultOptions() contextOptions {
	return contextOptions{
		tolerance: raster.DefaultTolerance,
		smoothing: true,
	}
}

// WithTolerance sets the maximum deviation, in device pixels, between a
// curve and the polyline used to rasterize it. Non-positive values are
// ignored.
func WithTolerance(tolerance float64) ContextOption {
	return func(o *contextOptions) {
		if tolerance > 0 {
			o.tolerance = tolerance
		}
	}
}

// WithImageSmoothing sets the initial image smoothing flag. Smoothing
// selects bilinear rather than nearest-neighbour sampling when images are
// scaled or transformed. The default is true.
func WithImageSmoothing(enabled bool) ContextOption {
	return func(o *contextOptions) {
		o.smoothing = enabled
	}
}
