package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/younwookim/gamesnippets/internal/domain/typing"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation error
var ErrInvalid = errors.New("invalid config")

// Loader loads configuration files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadHost loads host.json on top of DefaultHostConfig
func (l *Loader) LoadHost() (*HostConfig, error) {
	data, err := fs.ReadFile(l.fsys, "host.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read host.json: %w", err)
	}

	cfg := DefaultHostConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse host.json: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("host.json: %w", err)
	}

	return &cfg, nil
}

// LoadTyping loads typing.yaml on top of DefaultTypingConfig
func (l *Loader) LoadTyping() (*TypingConfig, error) {
	data, err := fs.ReadFile(l.fsys, "typing.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read typing.yaml: %w", err)
	}

	cfg := DefaultTypingConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse typing.yaml: %w", err)
	}
	if _, err := cfg.Settings(); err != nil {
		return nil, fmt.Errorf("typing.yaml: %w", err)
	}

	return &cfg, nil
}

// Validate checks the host config for values the host cannot run with
func (c *HostConfig) Validate() error {
	if c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0 {
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalid, c.Display.ScreenWidth, c.Display.ScreenHeight)
	}
	if c.Display.Framerate <= 0 {
		return fmt.Errorf("%w: framerate %d", ErrInvalid, c.Display.Framerate)
	}
	if c.Reload.Library == "" || c.Reload.Staging == "" {
		return fmt.Errorf("%w: reload.library and reload.staging are required", ErrInvalid)
	}
	if c.Reload.Library == c.Reload.Staging {
		return fmt.Errorf("%w: staging path must differ from the library path", ErrInvalid)
	}
	return nil
}

// Settings converts the config into typing settings
func (c *TypingConfig) Settings() (typing.Settings, error) {
	mode, ok := typing.ParseSkipMode(c.SkipMode)
	if !ok {
		return typing.Settings{}, fmt.Errorf("%w: skipMode %q", ErrInvalid, c.SkipMode)
	}
	if c.CharsPerSecond <= 0 {
		return typing.Settings{}, fmt.Errorf("%w: charsPerSecond %v", ErrInvalid, c.CharsPerSecond)
	}
	if c.FastForwardFactor <= 0 {
		return typing.Settings{}, fmt.Errorf("%w: fastForwardFactor %v", ErrInvalid, c.FastForwardFactor)
	}
	if c.TypoChance < 0 || c.MaxTypoDistance < 0 {
		return typing.Settings{}, fmt.Errorf("%w: typoChance and maxTypoDistance must not be negative", ErrInvalid)
	}

	return typing.Settings{
		CharsPerSecond:    c.CharsPerSecond,
		SkipMode:          mode,
		FastForwardFactor: c.FastForwardFactor,
		TypoChance:        c.TypoChance,
		MaxTypoDistance:   c.MaxTypoDistance,
		JitterScale:       c.JitterScale,
		TypoPause:         c.TypoPause,
		FixPause:          c.FixPause,
	}, nil
}
