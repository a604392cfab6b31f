package canvaslib

// DefaultShadowColor is the color BuildShadow uses when none is given.
const DefaultShadowColor = "#333"

// BuildShadow returns a new surface of the context's size that holds col
// wherever this context's surface has alpha, and is transparent elsewhere.
// Partial alpha is kept, so the silhouette stays anti-aliased. An empty
// color selects DefaultShadowColor.
//
// The result is typically drawn offset under the original to make a drop
// shadow, or over it to make a highlight.
func (c *Context) BuildShadow(col string) *Surface {
	if col == "" {
		col = DefaultShadowColor
	}
	shadow := NewSurface(c.width, c.height)
	sc := NewContext(shadow)
	sc.SetFillStyle(col)
	sc.FillRect(0, 0, float64(shadow.Width()), float64(shadow.Height()))
	sc.SetCompositeOperation(CompositeDestinationIn)
	sc.DrawImage(c.surface, 0, 0)
	return shadow
}

// BuildCopy returns a copy of the context's surface.
func (c *Context) BuildCopy() *Surface {
	return CopySurface(c.surface)
}
