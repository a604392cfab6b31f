// Package canvaslib provides helper drawing primitives on top of a small
// software canvas.
//
// # Overview
//
// canvaslib pairs a canvas-like 2D drawing context with the helpers that
// usually get written around one: rounded rectangles, circles, ellipses,
// lines of varying width, a cheap box blur and shadow silhouettes. The
// drawing context follows the HTML canvas model: a current path built in
// user space, a paint state saved and restored on a stack, global alpha and
// Porter-Duff composite operations.
//
// # Quick Start
//
//	import "github.com/gogpu/canvaslib"
//
//	surface := canvaslib.NewSurface(256, 256)
//	ctx := canvaslib.NewContext(surface)
//
//	ctx.RoundRect(16, 16, 224, 224, 24)
//	ctx.SetFillStyle("#fafafa")
//	ctx.Fill()
//
//	ctx.Circle(128, 128, 64, canvaslib.Style{Fill: "tomato", Stroke: "#333", LineWidth: 4})
//	ctx.VarLineRounded(40, 220, 216, 220, 2, 16, canvaslib.Style{Fill: "steelblue"})
//	ctx.Blur(3, 0.05)
//
//	surface.SavePNG("out.png")
//
// # Surfaces
//
// A Surface is a fixed-size grid of premultiplied RGBA pixels that
// implements image.Image and draw.Image. NewSurface, CopySurface and
// SurfaceFromImage create them; a Context draws on exactly one.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, 0 is right, increasing angles turn clockwise on screen
//
// # Rendering
//
// Paths are flattened to polylines and rasterized with anti-aliasing by
// golang.org/x/image/vector. Strokes are expanded into polygons first.
// Scaled or transformed images are resampled with golang.org/x/image/draw.
package canvaslib

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
