package main

import (
	"io"
	"io/fs"
	"log"
	"math/rand"
	"time"

	"github.com/younwookim/gamesnippets/internal/application/game"
	"github.com/younwookim/gamesnippets/internal/application/hotreload"
	"github.com/younwookim/gamesnippets/internal/application/render"
	"github.com/younwookim/gamesnippets/internal/application/replay"
	"github.com/younwookim/gamesnippets/internal/application/scene"
	"github.com/younwookim/gamesnippets/internal/infrastructure/config"
	"github.com/younwookim/gamesnippets/internal/infrastructure/procstat"
	"github.com/younwookim/gamesnippets/internal/infrastructure/sound"
)

const sceneName = "typingtext"

// autoRecord as the -record value saves to a timestamped file
const autoRecord = "auto"

type sessionOptions struct {
	Seed   int64
	Record string
	Replay string
	Opener hotreload.Opener
	Output io.Writer
}

// session is everything a frontend needs to run the scene host
type session struct {
	host     *hotreload.Host
	ctx      *scene.Context
	player   *sound.Player
	logger   *log.Logger
	seed     int64
	recorder *replay.Recorder
	replayer *replay.Replayer
	record   string
}

func newSession(cfg *config.HostConfig, assets fs.FS, metrics render.Metrics, w, h int, opts sessionOptions) (*session, error) {
	out := opts.Output
	if out == nil {
		out = io.Discard
	}
	s := &session{
		logger: log.New(out, "", log.LstdFlags),
		record: opts.Record,
	}

	// Initialize seeded RNG for deterministic randomness
	s.seed = opts.Seed
	if opts.Replay != "" {
		data, err := replay.LoadReplay(opts.Replay)
		if err != nil {
			return nil, err
		}
		s.replayer = replay.NewReplayer(*data)
		s.seed = s.replayer.Seed()
		s.logger.Printf("Replaying %s (%d frames, seed: %d)", opts.Replay, s.replayer.TotalFrames(), s.seed)
	}
	if s.seed == 0 {
		s.seed = time.Now().UnixNano()
	}
	if s.record == autoRecord {
		s.record = replay.GenerateFilename()
	}
	if s.record != "" {
		s.recorder = replay.NewRecorder(s.seed, sceneName)
		s.logger.Printf("Recording enabled: %s (seed: %d)", s.record, s.seed)
	}

	s.player = sound.NewPlayer(cfg.Audio, log.New(out, "[audio] ", log.LstdFlags))
	var snd scene.Sound = s.player
	if !s.player.Enabled() {
		snd = scene.Silent{}
	}

	s.ctx = &scene.Context{
		ScreenWidth:  w,
		ScreenHeight: h,
		Canvas:       render.NewList(),
		Metrics:      metrics,
		Rand:         rand.New(rand.NewSource(s.seed)),
		Sound:        snd,
		Assets:       assets,
		Logger:       log.New(out, "[scene] ", log.LstdFlags),
	}

	loader := hotreload.NewLoader(hotreload.Config{
		Library:     cfg.Reload.Library,
		Staging:     cfg.Reload.Staging,
		Symbol:      cfg.Reload.Symbol,
		DebugSuffix: cfg.Reload.DebugSuffix,
	}, opts.Opener, log.New(out, "[reload] ", log.LstdFlags))

	s.host = hotreload.NewHost(loader, s.ctx, cfg.Reload.PollInterval)
	s.host.OnReload = func(kind hotreload.ReloadKind, ls *hotreload.LoadedScene) {
		s.logMemory(kind.String()+" reload", ls.Valid)
	}
	s.logMemory("initial load", s.host.Current().Valid)
	return s, nil
}

// logMemory reports process memory; every plugin load stays mapped
func (s *session) logMemory(event string, valid bool) {
	mem, err := procstat.Current()
	if err != nil {
		s.logger.Printf("memory: %v", err)
		return
	}
	s.logger.Printf("%s, valid=%t: %s", event, valid, mem)
}

// attach wires recording and playback into g
func (s *session) attach(g *game.Game) {
	if s.recorder != nil {
		g.SetRecorder(s.recorder)
	}
	if s.replayer != nil {
		g.SetReplayer(s.replayer)
	}
}

// Close shuts the scene down and saves the recording
func (s *session) Close() {
	s.host.Close()
	s.player.Close()

	if s.replayer != nil && s.replayer.Done() {
		s.logger.Printf("Replay finished (%d frames)", s.replayer.TotalFrames())
	}

	if s.recorder == nil {
		return
	}
	if err := s.recorder.Save(s.record); err != nil {
		s.logger.Printf("Failed to save recording: %v", err)
		return
	}
	s.logger.Printf("Recording saved: %s (%d frames)", s.record, s.recorder.FrameCount())
}
