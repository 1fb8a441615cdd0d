// Package game adapts the scene host to ebiten's game loop.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/gamesnippets/internal/application/hotreload"
	"github.com/younwookim/gamesnippets/internal/application/input"
	"github.com/younwookim/gamesnippets/internal/application/render"
	"github.com/younwookim/gamesnippets/internal/application/replay"
	"github.com/younwookim/gamesnippets/internal/application/scene"
)

// InputSource supplies the input for one tick
type InputSource interface {
	GetInput() input.State
}

// Painter draws a recorded display list
type Painter interface {
	Paint(dst *ebiten.Image, l *render.List)
}

// Game implements ebiten.Game and drives one scene host.
type Game struct {
	host    *hotreload.Host
	ctx     *scene.Context
	input   InputSource
	painter Painter
	screenW int
	screenH int
	dt      float64
	frames  int

	recorder *replay.Recorder
	replayer *replay.Replayer
}

// New creates a new Game around host. ctx must be the context the host
// was created with.
func New(host *hotreload.Host, ctx *scene.Context, src InputSource, painter Painter) *Game {
	if ctx.Canvas == nil {
		ctx.Canvas = render.NewList()
	}
	return &Game{
		host:    host,
		ctx:     ctx,
		input:   src,
		painter: painter,
		screenW: ctx.ScreenWidth,
		screenH: ctx.ScreenHeight,
		dt:      1.0 / 60.0, // Default to 60 FPS
	}
}

// Update runs one host frame.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	in, dt := input.State{}, g.dt
	if g.replayer != nil {
		var ok bool
		if in, dt, ok = g.replayer.GetInput(); !ok {
			return ebiten.Termination
		}
	} else if g.input != nil {
		in = g.input.GetInput()
	}

	if g.recorder != nil {
		g.recorder.RecordFrame(in, dt)
	}
	if in.IsPressed(input.KeyEscape) {
		return ebiten.Termination
	}

	g.ctx.Input = in
	g.ctx.Canvas.Reset()
	g.host.Frame(dt, in.IsPressed(input.KeyF5))
	g.frames++
	return nil
}

// Draw paints the display list recorded by the last Update.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.painter != nil {
		g.painter.Paint(screen, g.ctx.Canvas)
	}
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT sets the delta time used for updates.
// Useful for testing or custom frame rates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// SetRecorder records every frame's input to rec
func (g *Game) SetRecorder(rec *replay.Recorder) {
	g.recorder = rec
}

// SetReplayer replaces live input with recorded frames. The game ends
// when the recording runs out.
func (g *Game) SetReplayer(r *replay.Replayer) {
	g.replayer = r
}

// Frames returns the number of frames run
func (g *Game) Frames() int {
	return g.frames
}
