// Package ebitenrender paints render.List display lists with ebiten.
package ebitenrender

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/gamesnippets/internal/application/render"
	"golang.org/x/image/font/basicfont"
)

// Painter draws display lists using a scaled bitmap font.
// It also serves as the scenes' render.Metrics.
type Painter struct {
	face  *text.GoXFace
	scale float64
}

// NewPainter creates a painter. fontScale <= 0 means 1.
func NewPainter(fontScale float64) *Painter {
	if fontScale <= 0 {
		fontScale = 1
	}
	return &Painter{
		face:  text.NewGoXFace(basicfont.Face7x13),
		scale: fontScale,
	}
}

// TextWidth returns the advance of s in screen pixels
func (p *Painter) TextWidth(s string) float64 {
	return text.Advance(s, p.face) * p.scale
}

// LineHeight returns the line height in screen pixels
func (p *Painter) LineHeight() float64 {
	m := p.face.Metrics()
	return (m.HAscent + m.HDescent + m.HLineGap) * p.scale
}

// Paint replays the list onto dst in order
func (p *Painter) Paint(dst *ebiten.Image, l *render.List) {
	for _, c := range l.Commands() {
		switch c.Op {
		case render.OpClear:
			dst.Fill(c.Color)

		case render.OpFillRect:
			r := c.Rect
			vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c.Color, false)

		case render.OpStrokeRect:
			// StrokeRect centers the line on the edge; keep it inside r
			r := c.Rect.Inset(c.Thickness / 2)
			vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), float32(c.Thickness), c.Color, false)

		case render.OpText:
			op := &text.DrawOptions{}
			op.GeoM.Scale(p.scale, p.scale)
			op.GeoM.Translate(c.X, c.Y)
			op.ColorScale.ScaleWithColor(c.Color)
			text.Draw(dst, c.Text, p.face, op)
		}
	}
}
