package canvaslib

import (
	"github.com/gogpu/canvaslib/internal/blend"
	"github.com/gogpu/canvaslib/internal/stroke"
)

// CompositeOp is a Porter-Duff compositing operator, named after the canvas
// globalCompositeOperation keywords.
type CompositeOp = blend.Mode

// Compositing operators.
const (
	CompositeSourceOver      = blend.SourceOver
	CompositeSourceIn        = blend.SourceIn
	CompositeSourceOut       = blend.SourceOut
	CompositeSourceAtop      = blend.SourceAtop
	CompositeDestinationOver = blend.DestinationOver
	CompositeDestinationIn   = blend.DestinationIn
	CompositeDestinationOut  = blend.DestinationOut
	CompositeDestinationAtop = blend.DestinationAtop
	CompositeLighter         = blend.Lighter
	CompositeCopy            = blend.Copy
	CompositeXor             = blend.Xor
)

// ParseCompositeOp returns the operator for a keyword such as
// "destination-in". The boolean is false for unknown keywords.
func ParseCompositeOp(name string) (CompositeOp, bool) {
	return blend.Parse(name)
}

// LineCap specifies the shape of line endpoints.
type LineCap = stroke.LineCap

// Line caps.
const (
	LineCapButt   = stroke.LineCapButt
	LineCapRound  = stroke.LineCapRound
	LineCapSquare = stroke.LineCapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin = stroke.LineJoin

// Line joins.
const (
	LineJoinMiter = stroke.LineJoinMiter
	LineJoinRound = stroke.LineJoinRound
	LineJoinBevel = stroke.LineJoinBevel
)
