// Package typingtext holds the scene data of the typing text scene.
//
// The scene's behavior lives in the plugin under plugins/typingtext and is
// replaced on every reload. This package must stay identical between
// reloads: the host keeps a *State across soft reloads, and every build of
// the plugin has to agree on its layout.
package typingtext

import (
	"github.com/younwookim/gamesnippets/internal/application/scene"
	"github.com/younwookim/gamesnippets/internal/domain/typing"
	"github.com/younwookim/gamesnippets/internal/infrastructure/config"
)

// State is the data the typing scene keeps between frames
type State struct {
	Text     *typing.Text
	Settings typing.Settings
}

// New creates scene data from typing.yaml in ctx.Assets. A missing or
// invalid file falls back to the built-in paragraph and settings.
func New(ctx *scene.Context) *State {
	cfg := config.DefaultTypingConfig()

	if ctx.Assets != nil {
		loaded, err := config.NewFSLoader(ctx.Assets, "").LoadTyping()
		switch {
		case err != nil:
			logf(ctx, "using built-in text: %v", err)
		default:
			cfg = *loaded
		}
	}

	settings, err := cfg.Settings()
	if err != nil {
		logf(ctx, "using default settings: %v", err)
		settings = typing.DefaultSettings()
	}

	return &State{
		Text:     typing.NewText(cfg.Text, settings.TypingDelay()),
		Settings: settings,
	}
}

func logf(ctx *scene.Context, format string, args ...any) {
	if ctx.Logger != nil {
		ctx.Logger.Printf(format, args...)
	}
}
