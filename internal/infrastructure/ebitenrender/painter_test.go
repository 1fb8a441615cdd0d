package ebitenrender

import (
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/younwookim/gamesnippets/internal/application/render"
)

func TestPainter_Metrics(t *testing.T) {
	p := NewPainter(1)
	assert.Equal(t, 7.0, p.TextWidth("a"))
	assert.Equal(t, 70.0, p.TextWidth("abcdefghij"))
	assert.Equal(t, 0.0, p.TextWidth(""))
	assert.Greater(t, p.LineHeight(), 0.0)

	scaled := NewPainter(2)
	assert.Equal(t, 2*p.TextWidth("hello"), scaled.TextWidth("hello"))
	assert.Equal(t, 2*p.LineHeight(), scaled.LineHeight())
}

func TestNewPainter_DefaultScale(t *testing.T) {
	assert.Equal(t, 1.0, NewPainter(0).scale)
	assert.Equal(t, 1.0, NewPainter(-3).scale)
}

func TestPainter_Paint(t *testing.T) {
	p := NewPainter(1.5)
	l := render.NewList()
	maroon := color.RGBA{R: 190, G: 33, B: 55, A: 255}
	l.Clear(color.RGBA{R: 245, G: 245, B: 245, A: 255})
	l.FillRect(render.Rect{X: 10, Y: 10, W: 50, H: 20}, maroon)
	l.StrokeRect(render.Rect{X: 5, Y: 5, W: 100, H: 100}, 3, maroon)
	l.Text("hello", 20, 20, maroon)

	img := ebiten.NewImage(320, 240)
	assert.NotPanics(t, func() {
		p.Paint(img, l)
	})
}
