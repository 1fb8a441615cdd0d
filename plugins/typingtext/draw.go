package main

import (
	"image/color"

	"github.com/younwookim/gamesnippets/internal/application/render"
	"github.com/younwookim/gamesnippets/internal/application/scene"
	"github.com/younwookim/gamesnippets/internal/scenes/typingtext"
)

var (
	rayWhite = color.RGBA{R: 245, G: 245, B: 245, A: 255}
	white    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	maroon   = color.RGBA{R: 190, G: 33, B: 55, A: 255}
	gray     = color.RGBA{R: 130, G: 130, B: 130, A: 255}
)

// Layout in design pixels, scaled by unit. A 20px line is one unit.
const (
	margin        = 25
	reservedBelow = 250
	border        = 3
	padding       = 5
	barHeight     = 50
	barBottom     = 25
	barPress      = 5
	labelAbove    = 100
	designLine    = 20
)

const skipHint = "hold space to skip"

type layout struct {
	container render.Rect
	textArea  render.Rect
	bar       render.Rect
	labelY    float64
	unit      float64
}

func computeLayout(ctx *scene.Context) layout {
	w, h := float64(ctx.ScreenWidth), float64(ctx.ScreenHeight)
	u := 1.0
	if ctx.Metrics != nil && ctx.Metrics.LineHeight() > 0 {
		u = ctx.Metrics.LineHeight() / designLine
	}

	container := render.Rect{X: margin * u, Y: margin * u, W: w - 2*margin*u, H: h - reservedBelow*u}
	barW := w / 3
	bar := render.Rect{X: w/2 - barW/2, Y: h - barHeight*u - barBottom*u, W: barW, H: barHeight * u}

	return layout{
		container: container,
		textArea: render.Rect{
			X: container.X + padding*u,
			Y: container.Y + padding*u,
			W: container.W - padding*u,
			H: container.H - padding*u,
		},
		bar:    bar,
		labelY: bar.Y - labelAbove*u,
		unit:   u,
	}
}

func draw(ctx *scene.Context, st *typingtext.State, skipHeld bool) {
	c := ctx.Canvas
	l := computeLayout(ctx)

	c.Clear(rayWhite)
	c.StrokeRect(l.container, border*l.unit, maroon)
	if ctx.Metrics != nil {
		c.TextBox(ctx.Metrics, st.Text.Visible(), l.textArea, gray)
	}

	bar := l.bar
	fill := rayWhite
	if skipHeld {
		bar = bar.Offset(0, barPress*l.unit)
		fill = white
	}
	c.FillRect(bar, fill)
	c.StrokeRect(bar, border*l.unit, maroon)

	if ctx.Metrics == nil {
		return
	}
	m := ctx.Metrics
	w := float64(ctx.ScreenWidth)

	if !st.Text.Finished() {
		c.Text(skipHint, bar.X+bar.W/2-m.TextWidth(skipHint)/2, bar.Y+bar.H/2-m.LineHeight()/2, gray)
	}

	label := st.Settings.SkipMode.Label()
	c.Text(label, w/2-m.TextWidth(label)/2, l.labelY, gray)
}
