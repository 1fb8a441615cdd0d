// Package sound plays short keystroke clicks for typing events.
package sound

import (
	"io"
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/younwookim/gamesnippets/internal/domain/typing"
	"github.com/younwookim/gamesnippets/internal/infrastructure/config"
)

const sampleRate = beep.SampleRate(44100)

// Player implements scene.Sound on top of the beep speaker.
// Without an audio device it stays silent.
type Player struct {
	cfg    config.AudioConfig
	rate   beep.SampleRate
	play   func(...beep.Streamer)
	close  func()
	logger *log.Logger
}

// NewPlayer initializes the speaker. A failed init is logged and leaves
// the player silent.
func NewPlayer(cfg config.AudioConfig, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	p := &Player{cfg: cfg, rate: sampleRate, logger: logger}
	if !cfg.Enabled {
		return p
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		// Non-fatal, the demo runs without sound
		logger.Printf("audio initialization failed: %v", err)
		return p
	}
	p.play = speaker.Play
	p.close = speaker.Close
	return p
}

// Enabled reports whether clicks reach a speaker
func (p *Player) Enabled() bool {
	return p.play != nil
}

// Play queues the click for ev
func (p *Player) Play(ev typing.Event) {
	if p.play == nil {
		return
	}
	if s := p.click(ev); s != nil {
		p.play(s)
	}
}

func (p *Player) click(ev typing.Event) beep.Streamer {
	var freq float64
	switch ev {
	case typing.EventLetter, typing.EventFix:
		freq = p.cfg.KeyFrequency
	case typing.EventTypo:
		freq = p.cfg.TypoFrequency
	case typing.EventBackspace:
		freq = p.cfg.BackspaceFrequency
	default:
		return nil
	}

	tone, err := generators.SineTone(p.rate, freq)
	if err != nil {
		p.logger.Printf("%s click: %v", ev, err)
		return nil
	}

	d := time.Duration(p.cfg.ClickMillis) * time.Millisecond
	return &effects.Volume{
		Streamer: beep.Take(p.rate.N(d), tone),
		Base:     2,
		Volume:   p.cfg.Volume,
	}
}

// Close shuts the speaker down
func (p *Player) Close() {
	if p.close != nil {
		p.close()
	}
	p.play, p.close = nil, nil
}
