package main

import (
	"log/slog"

	"github.com/gogpu/canvaslib"
)

const labelColor = "#222"

// render draws sc and returns the finished surface. The shapes are drawn on
// their own layer so that blur and shadow apply to them and not to the
// background.
func render(sc *scene, labels bool) (*canvaslib.Surface, error) {
	layer := canvaslib.NewSurface(sc.Width, sc.Height)
	ctx := canvaslib.NewContext(layer)
	for _, sh := range sc.Shapes {
		drawShape(ctx, sh)
	}
	if sc.Blur != nil {
		ctx.Blur(sc.Blur.Radius, sc.Blur.Intensity)
	}

	out := canvaslib.NewSurface(sc.Width, sc.Height)
	octx := canvaslib.NewContext(out)
	if sc.Background != "" {
		octx.SetFillStyle(sc.Background)
		octx.FillRect(0, 0, float64(sc.Width), float64(sc.Height))
	}
	if sc.Shadow != nil {
		octx.DrawImage(ctx.BuildShadow(sc.Shadow.Color), sc.Shadow.DX, sc.Shadow.DY)
	}
	octx.DrawImage(layer, 0, 0)

	if labels {
		lb, err := newLabeler(labelSize)
		if err != nil {
			return nil, err
		}
		octx.SetFillStyle(labelColor)
		for _, sh := range sc.Shapes {
			if sh.Label == "" {
				continue
			}
			x, y := labelAnchor(sh)
			x -= lb.width(sh.Label) / 2
			if err := lb.draw(octx, x, y, sh.Label); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

func drawShape(ctx *canvaslib.Context, sh shape) {
	style := canvaslib.Style{Fill: sh.Fill, Stroke: sh.Stroke, LineWidth: sh.LineWidth}
	slog.Debug("draw shape", "kind", sh.Kind, "label", sh.Label)

	switch sh.Kind {
	case kindRoundRect:
		ctx.RoundRect(sh.X, sh.Y, sh.W, sh.H, sh.R).Paint(style)
	case kindCircle:
		ctx.Circle(sh.X, sh.Y, sh.R, style)
	case kindEllipse:
		ctx.Ellipse(sh.X, sh.Y, sh.R1, sh.R2, style)
	case kindVarLine:
		ctx.VaryingWidthLine(sh.X, sh.Y, sh.X2, sh.Y2, sh.W1, sh.W2, style, sh.Rounded)
	}
}

// labelAnchor returns the point a label is centred on: the horizontal
// middle of the shape, one line below its lowest edge.
func labelAnchor(sh shape) (float64, float64) {
	switch sh.Kind {
	case kindRoundRect:
		return sh.X + sh.W/2, sh.Y + sh.H + 14
	case kindCircle:
		return sh.X, sh.Y + sh.R + 14
	case kindEllipse:
		return sh.X, sh.Y + sh.R2/2 + 14
	default:
		return (sh.X + sh.X2) / 2, max(sh.Y, sh.Y2) + max(sh.W1, sh.W2)/2 + 14
	}
}
