package main

import (
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/gamesnippets/internal/application/game"
	"github.com/younwookim/gamesnippets/internal/application/system"
	"github.com/younwookim/gamesnippets/internal/infrastructure/config"
	"github.com/younwookim/gamesnippets/internal/infrastructure/ebitenrender"
)

func runWindow(cfg *config.HostConfig, assets fs.FS, opts sessionOptions) error {
	d := cfg.Display
	painter := ebitenrender.NewPainter(d.FontScale)

	s, err := newSession(cfg, assets, painter, d.ScreenWidth, d.ScreenHeight, opts)
	if err != nil {
		return err
	}
	defer s.Close()

	g := game.New(s.host, s.ctx, system.NewInputSystem(), painter)
	g.SetDT(1 / float64(d.Framerate))
	s.attach(g)

	// Set up ebiten
	scale := d.Scale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowSize(int(float64(d.ScreenWidth)*scale), int(float64(d.ScreenHeight)*scale))
	ebiten.SetWindowTitle(d.Title)
	ebiten.SetTPS(d.Framerate)

	// Returns nil on ebiten.Termination
	return ebiten.RunGame(g)
}
