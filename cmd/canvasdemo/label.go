package main

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/canvaslib"
)

// labelSize is the label font size in pixels per em.
const labelSize = 13

// labeler shapes label text with HarfBuzz and fills the glyph outlines
// through a canvaslib context. It is not safe for concurrent use.
type labeler struct {
	face   *font.Face
	glyphs *sfnt.Font
	shaper shaping.HarfbuzzShaper
	buf    sfnt.Buffer
	size   float64
}

func newLabeler(size float64) (*labeler, error) {
	face, err := font.ParseTTF(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("parsing label font: %w", err)
	}
	glyphs, err := sfnt.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing label outlines: %w", err)
	}
	return &labeler{face: face, glyphs: glyphs, size: size}, nil
}

// shape returns the positioned glyphs of text, in visual order.
func (l *labeler) shape(text string) []shaping.Glyph {
	text = normalizeLabel(text)
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}
	out := l.shaper.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: labelDirection(text),
		Face:      l.face,
		Size:      fixed.Int26_6(l.size * 64),
		Script:    labelScript(runes),
		Language:  language.NewLanguage("en"),
	})
	return out.Glyphs
}

// width returns the advance of the shaped text in pixels.
func (l *labeler) width(text string) float64 {
	var w float64
	for _, g := range l.shape(text) {
		w += fixedToFloat(g.Advance)
	}
	return w
}

// draw fills text with the context's fill style, with the baseline origin
// at (x, y).
func (l *labeler) draw(ctx *canvaslib.Context, x, y float64, text string) error {
	ppem := fixed.Int26_6(l.size * 64)
	pen := x

	ctx.BeginPath()
	for _, g := range l.shape(text) {
		gx := pen + fixedToFloat(g.XOffset)
		gy := y - fixedToFloat(g.YOffset)
		pen += fixedToFloat(g.Advance)

		segs, err := l.glyphs.LoadGlyph(&l.buf, sfnt.GlyphIndex(g.GlyphID), ppem, nil)
		if err != nil {
			return fmt.Errorf("loading glyph %d: %w", g.GlyphID, err)
		}
		for _, s := range segs {
			p := func(i int) (float64, float64) {
				return gx + fixedToFloat(s.Args[i].X), gy + fixedToFloat(s.Args[i].Y)
			}
			switch s.Op {
			case sfnt.SegmentOpMoveTo:
				ctx.MoveTo(p(0))
			case sfnt.SegmentOpLineTo:
				ctx.LineTo(p(0))
			case sfnt.SegmentOpQuadTo:
				cx, cy := p(0)
				ex, ey := p(1)
				ctx.QuadraticCurveTo(cx, cy, ex, ey)
			case sfnt.SegmentOpCubeTo:
				c1x, c1y := p(0)
				c2x, c2y := p(1)
				ex, ey := p(2)
				ctx.BezierCurveTo(c1x, c1y, c2x, c2y, ex, ey)
			}
		}
	}
	ctx.Fill()
	return nil
}

// normalizeLabel composes combining sequences so that "e" followed by a
// combining acute maps to the single precomposed glyph of the font.
func normalizeLabel(text string) string {
	return norm.NFC.String(text)
}

// labelDirection returns right-to-left when the whole label resolves to a
// single right-to-left run.
func labelDirection(text string) di.Direction {
	if text == "" {
		return di.DirectionLTR
	}
	var p bidi.Paragraph
	if _, err := p.SetString(text, bidi.DefaultDirection(bidi.LeftToRight)); err != nil {
		return di.DirectionLTR
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() != 1 {
		return di.DirectionLTR
	}
	run := ordering.Run(0)
	if run.Direction() == bidi.RightToLeft {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// labelScript returns the script of the first non-space rune.
func labelScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
