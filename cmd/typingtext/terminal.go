package main

import (
	"errors"
	"io/fs"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/gamesnippets/internal/application/game"
	"github.com/younwookim/gamesnippets/internal/application/input"
	"github.com/younwookim/gamesnippets/internal/infrastructure/config"
	"github.com/younwookim/gamesnippets/internal/infrastructure/termrender"
)

// trackedInput snapshots a key tracker once per tick
type trackedInput struct {
	tracker *termrender.KeyTracker
}

func (t trackedInput) GetInput() input.State {
	return t.tracker.Snapshot(time.Now())
}

func runTerminal(cfg *config.HostConfig, assets fs.FS, opts sessionOptions) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	painter := termrender.NewPainter(screen)
	w, h := painter.Size()

	s, err := newSession(cfg, assets, termrender.Metrics{}, w, h, opts)
	if err != nil {
		return err
	}
	defer s.Close()

	frame := time.Duration(cfg.Terminal.FrameMillis) * time.Millisecond
	if frame <= 0 {
		frame = 16 * time.Millisecond
	}
	tracker := termrender.NewKeyTracker(time.Duration(cfg.Terminal.HoldMillis) * time.Millisecond)

	g := game.New(s.host, s.ctx, trackedInput{tracker: tracker}, nil)
	g.SetDT(frame.Seconds())
	s.attach(g)

	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				tracker.Handle(ev, time.Now())
			case *tcell.EventResize:
				s.ctx.ScreenWidth, s.ctx.ScreenHeight = ev.Size()
				screen.Sync()
			}

		case <-ticker.C:
			if err := g.Update(); err != nil {
				if errors.Is(err, ebiten.Termination) {
					return nil
				}
				return err
			}
			painter.Paint(s.ctx.Canvas)
		}
	}
}
