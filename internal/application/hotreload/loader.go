// Package hotreload loads a scene from a dynamically loaded module and
// swaps it at runtime when the module file changes on disk.
package hotreload

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/younwookim/gamesnippets/internal/application/scene"
)

// Config locates a scene module
type Config struct {
	Library     string // build output, watched for changes
	Staging     string // staging path template; each load gets its own copy
	Symbol      string // entry point, usually scene.EntryPoint
	DebugSuffix string // optional companion file: Library+DebugSuffix
}

// LoadedScene is one load of a scene module.
// It exclusively owns its module handle.
type LoadedScene struct {
	module        Module
	stagedFiles   []string
	LastWriteTime time.Time
	Valid         bool
	Functions     scene.Scene
}

// Loader performs loads, unloads and change checks for one module
type Loader struct {
	cfg        Config
	opener     Opener
	logger     *log.Logger
	generation int
}

// NewLoader creates a loader. A nil logger discards diagnostics.
func NewLoader(cfg Config, opener Opener, logger *log.Logger) *Loader {
	if cfg.Symbol == "" {
		cfg.Symbol = scene.EntryPoint
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Loader{cfg: cfg, opener: opener, logger: logger}
}

// Load stages and opens the module. It never fails: on any error the
// returned scene is invalid and runs scene.Noop.
func (l *Loader) Load() *LoadedScene {
	s := &LoadedScene{Functions: scene.Noop{}}

	info, err := os.Stat(l.cfg.Library)
	if err != nil {
		l.logger.Printf("load %s: %v", l.cfg.Library, err)
		return s
	}

	if err := l.open(s); err != nil {
		l.logger.Printf("load %s: %v", l.cfg.Library, err)
		removeFiles(s.stagedFiles)
		s.stagedFiles = nil
		return s
	}

	// Only a good load records the mtime, so a broken build is retried on
	// the next poll
	s.LastWriteTime = info.ModTime()
	l.logger.Printf("loaded %s (modified %s)", l.cfg.Library, s.LastWriteTime.Format(time.TimeOnly))
	return s
}

func (l *Loader) open(s *LoadedScene) error {
	l.generation++
	staged := stagingPath(l.cfg.Staging, l.generation)

	n, err := copyFile(l.cfg.Library, staged)
	if err != nil {
		return err
	}
	s.stagedFiles = append(s.stagedFiles, staged)
	l.logger.Printf("staged %s -> %s (%s)", l.cfg.Library, staged, humanize.Bytes(uint64(n)))

	if l.cfg.DebugSuffix != "" {
		debug := l.cfg.Library + l.cfg.DebugSuffix
		if _, err := os.Stat(debug); err == nil {
			if _, err := copyFile(debug, staged+l.cfg.DebugSuffix); err != nil {
				return err
			}
			s.stagedFiles = append(s.stagedFiles, staged+l.cfg.DebugSuffix)
		}
	}

	mod, err := l.opener.Open(staged)
	if err != nil {
		return fmt.Errorf("failed to open module: %w", err)
	}

	fns, err := resolve(mod, l.cfg.Symbol)
	if err != nil {
		_ = mod.Close()
		return err
	}

	s.module = mod
	s.Functions = fns
	s.Valid = true
	return nil
}

// Unload releases the module and leaves s running scene.Noop.
// Safe on nil, invalid or already unloaded scenes.
func (l *Loader) Unload(s *LoadedScene) {
	if s == nil {
		return
	}
	if s.module != nil {
		if err := s.module.Close(); err != nil {
			l.logger.Printf("unload %s: %v", l.cfg.Library, err)
		}
		s.module = nil
	}
	removeFiles(s.stagedFiles)
	s.stagedFiles = nil
	s.Functions = scene.Noop{}
	s.Valid = false
}

// Changed reports whether the library's modification time differs from the
// one recorded in s. A missing library is reported as unchanged.
func (l *Loader) Changed(s *LoadedScene) bool {
	info, err := os.Stat(l.cfg.Library)
	if err != nil {
		return false
	}
	return !info.ModTime().Equal(s.LastWriteTime)
}

// PollAndReload replaces s with a fresh load when the library changed or
// force is set. It returns s unchanged and false otherwise. The old module
// is always unloaded before the new one loads, so a failed reload yields an
// invalid scene rather than the stale one.
//
// A forced reload of an unchanged library keeps the open module and only
// resolves the entry point again: a Go plugin cannot be opened twice.
func (l *Loader) PollAndReload(s *LoadedScene, force bool) (*LoadedScene, bool) {
	changed := l.Changed(s)
	if !force && !changed {
		return s, false
	}

	if !changed && s.module != nil {
		return l.reresolve(s), true
	}

	l.Unload(s)
	return l.Load(), true
}

// reresolve moves s's module into a new LoadedScene and looks up the entry
// point again. s is left invalid and running scene.Noop.
func (l *Loader) reresolve(s *LoadedScene) *LoadedScene {
	next := &LoadedScene{
		module:        s.module,
		stagedFiles:   s.stagedFiles,
		LastWriteTime: s.LastWriteTime,
		Functions:     scene.Noop{},
	}
	s.module = nil
	s.stagedFiles = nil
	s.Functions = scene.Noop{}
	s.Valid = false

	fns, err := resolve(next.module, l.cfg.Symbol)
	if err != nil {
		l.logger.Printf("reload %s: %v", l.cfg.Library, err)
		l.Unload(next)
		next.LastWriteTime = time.Time{}
		return next
	}

	next.Functions = fns
	next.Valid = true
	l.logger.Printf("reused %s (unchanged since %s)", l.cfg.Library, next.LastWriteTime.Format(time.TimeOnly))
	return next
}
