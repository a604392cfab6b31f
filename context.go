package canvaslib

import (
	"image"
	"math"

	"github.com/gogpu/canvaslib/internal/blend"
	"github.com/gogpu/canvaslib/internal/raster"
	"github.com/gogpu/canvaslib/internal/stroke"
)

// Context is a stateful drawing handle bound to one Surface.
// It maintains the current path, the paint state and a save/restore stack,
// in the manner of an HTML canvas 2D context.
//
// A Context is not safe for concurrent use.
type Context struct {
	surface *Surface

	// Dimensions of the bound surface, fixed at construction.
	width  int
	height int

	path  *Path
	state drawState
	stack []drawState

	tolerance float64
	raster    *raster.Rasterizer
}

// drawState is the part of a Context saved by Save and restored by Restore.
type drawState struct {
	matrix      Matrix
	fill        RGBA
	stroke      RGBA
	lineWidth   float64
	lineCap     LineCap
	lineJoin    LineJoin
	miterLimit  float64
	dash        stroke.Dash
	globalAlpha float64
	compositeOp CompositeOp
	smoothing   bool
}

// NewContext binds a new drawing context to surface.
//
//	surface := canvaslib.NewSurface(320, 200)
//	ctx := canvaslib.NewContext(surface)
//	ctx.Circle(160, 100, 40, canvaslib.Style{Fill: "#09c"})
func NewContext(surface *Surface, opts ...ContextOption) *Context {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	w, h := surface.Width(), surface.Height()
	def := stroke.DefaultStyle()
	return &Context{
		surface:   surface,
		width:     w,
		height:    h,
		path:      NewPath(),
		tolerance: options.tolerance,
		raster:    raster.NewRasterizer(w, h),
		stack:     make([]drawState, 0, 8),
		state: drawState{
			matrix:      Identity(),
			fill:        Black,
			stroke:      Black,
			lineWidth:   def.Width,
			lineCap:     def.Cap,
			lineJoin:    def.Join,
			miterLimit:  def.MiterLimit,
			globalAlpha: 1,
			compositeOp: CompositeSourceOver,
			smoothing:   options.smoothing,
		},
	}
}

// Surface returns the surface this context draws on.
func (c *Context) Surface() *Surface {
	return c.surface
}

// Width returns the width of the bound surface.
func (c *Context) Width() int {
	return c.width
}

// Height returns the height of the bound surface.
func (c *Context) Height() int {
	return c.height
}

// Path returns a copy of the current path in device coordinates.
func (c *Context) Path() *Path {
	return c.path.Clone()
}

// Save pushes the current drawing state onto the stack.
func (c *Context) Save() {
	c.stack = append(c.stack, c.state)
}

// Restore pops the last saved drawing state. It does nothing when the stack
// is empty.
func (c *Context) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// SetFillStyle sets the fill color from a CSS color string. Strings that do
// not parse are ignored and the previous color is kept.
func (c *Context) SetFillStyle(style string) {
	col, err := ParseColor(style)
	if err != nil {
		Logger().Debug("canvaslib: ignored fill style", "style", style, "err", err)
		return
	}
	c.state.fill = col
}

// SetStrokeStyle sets the stroke color from a CSS color string. Strings that
// do not parse are ignored and the previous color is kept.
func (c *Context) SetStrokeStyle(style string) {
	col, err := ParseColor(style)
	if err != nil {
		Logger().Debug("canvaslib: ignored stroke style", "style", style, "err", err)
		return
	}
	c.state.stroke = col
}

// SetFillColor sets the fill color.
func (c *Context) SetFillColor(col RGBA) {
	c.state.fill = col
}

// SetStrokeColor sets the stroke color.
func (c *Context) SetStrokeColor(col RGBA) {
	c.state.stroke = col
}

// FillColor returns the current fill color.
func (c *Context) FillColor() RGBA {
	return c.state.fill
}

// StrokeColor returns the current stroke color.
func (c *Context) StrokeColor() RGBA {
	return c.state.stroke
}

// SetLineWidth sets the stroke width in user units. Zero, negative and
// non-finite values are ignored.
func (c *Context) SetLineWidth(width float64) {
	if width > 0 && !math.IsInf(width, 0) {
		c.state.lineWidth = width
	}
}

// LineWidth returns the current stroke width.
func (c *Context) LineWidth() float64 {
	return c.state.lineWidth
}

// SetLineCap sets the line cap style.
func (c *Context) SetLineCap(lineCap LineCap) {
	c.state.lineCap = lineCap
}

// SetLineJoin sets the line join style.
func (c *Context) SetLineJoin(join LineJoin) {
	c.state.lineJoin = join
}

// SetMiterLimit sets the miter limit for line joins. Non-positive values are
// ignored.
func (c *Context) SetMiterLimit(limit float64) {
	if limit > 0 {
		c.state.miterLimit = limit
	}
}

// SetGlobalAlpha sets the opacity applied to everything drawn. Values
// outside [0, 1] are ignored.
func (c *Context) SetGlobalAlpha(alpha float64) {
	if alpha >= 0 && alpha <= 1 {
		c.state.globalAlpha = alpha
	}
}

// GlobalAlpha returns the current global alpha.
func (c *Context) GlobalAlpha() float64 {
	return c.state.globalAlpha
}

// SetCompositeOperation sets the operator used to combine drawing with the
// surface.
func (c *Context) SetCompositeOperation(op CompositeOp) {
	c.state.compositeOp = op
}

// CompositeOperation returns the current compositing operator.
func (c *Context) CompositeOperation() CompositeOp {
	return c.state.compositeOp
}

// SetImageSmoothing enables or disables interpolation when images are
// scaled or transformed.
func (c *Context) SetImageSmoothing(enabled bool) {
	c.state.smoothing = enabled
}

// ImageSmoothing reports whether image smoothing is enabled.
func (c *Context) ImageSmoothing() bool {
	return c.state.smoothing
}

// SetTransform replaces the current transformation matrix.
func (c *Context) SetTransform(m Matrix) {
	c.state.matrix = m
}

// ResetTransform sets the current transformation to identity.
func (c *Context) ResetTransform() {
	c.state.matrix = Identity()
}

// GetTransform returns the current transformation matrix.
func (c *Context) GetTransform() Matrix {
	return c.state.matrix
}

// Transform multiplies the current transformation by m.
func (c *Context) Transform(m Matrix) {
	c.state.matrix = c.state.matrix.Multiply(m)
}

// Translate applies a translation to the current transformation.
func (c *Context) Translate(x, y float64) {
	c.Transform(Translate(x, y))
}

// Scale applies a scale to the current transformation.
func (c *Context) Scale(x, y float64) {
	c.Transform(Scale(x, y))
}

// Rotate applies a rotation (radians) to the current transformation.
func (c *Context) Rotate(angle float64) {
	c.Transform(Rotate(angle))
}

// Fill fills the current path with the fill color using the non-zero rule.
// Open subpaths are closed implicitly. The path is kept.
func (c *Context) Fill() {
	c.paintPolygons(c.path.flatten(c.tolerance), c.state.fill)
}

// Stroke strokes the current path with the stroke color and style. The
// line width and dash pattern are scaled by the current transformation.
// The path is kept.
func (c *Context) Stroke() {
	style := stroke.Style{
		Width:      c.state.lineWidth * c.state.matrix.ScaleFactor(),
		Cap:        c.state.lineCap,
		Join:       c.state.lineJoin,
		MiterLimit: c.state.miterLimit,
	}
	lines := c.path.flatten(c.tolerance)
	if c.state.dash.IsDashed() {
		lines = c.state.dash.Scale(c.state.matrix.ScaleFactor()).Apply(lines)
	}
	e := stroke.NewExpander(style)
	e.SetTolerance(c.tolerance)
	c.paintPolygons(e.Expand(lines), c.state.stroke)
}

// FillRect fills a rectangle without touching the current path.
func (c *Context) FillRect(x, y, w, h float64) {
	c.paintPolygons(c.rectPath(x, y, w, h).flatten(c.tolerance), c.state.fill)
}

// ClearRect makes the pixels of a rectangle transparent. It ignores global
// alpha and the composite operation.
func (c *Context) ClearRect(x, y, w, h float64) {
	mask := c.raster.Fill(c.rectPath(x, y, w, h).flatten(c.tolerance))
	if mask == nil {
		return
	}
	blend.Solid(c.surface.img, mask, Black.premultiplied(), 255, blend.DestinationOut)
}

func (c *Context) rectPath(x, y, w, h float64) *Path {
	m := c.state.matrix
	p := NewPath()
	p.MoveTo(m.TransformPoint(Pt(x, y)))
	p.LineTo(m.TransformPoint(Pt(x+w, y)))
	p.LineTo(m.TransformPoint(Pt(x+w, y+h)))
	p.LineTo(m.TransformPoint(Pt(x, y+h)))
	p.Close()
	return p
}

// paintPolygons composites col through the coverage of polys using the
// current global alpha and composite operation.
func (c *Context) paintPolygons(polys []raster.Polyline, col RGBA) {
	op := c.state.compositeOp
	mask := c.raster.Fill(polys)
	if mask == nil {
		if op.Bounded() {
			return
		}
		// Nothing covered, but unbounded operators still act on every pixel.
		mask = image.NewAlpha(c.surface.img.Rect)
	}
	blend.Solid(c.surface.img, mask, col.premultiplied(), c.alpha255(), op)
}

// alpha255 returns the global alpha as a byte.
func (c *Context) alpha255() uint8 {
	return uint8(clamp255(c.state.globalAlpha*255 + 0.5))
}
