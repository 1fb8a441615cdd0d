package main

import (
	"github.com/younwookim/gamesnippets/internal/application/input"
	"github.com/younwookim/gamesnippets/internal/application/scene"
	"github.com/younwookim/gamesnippets/internal/domain/typing"
	"github.com/younwookim/gamesnippets/internal/scenes/typingtext"
)

type typingScene struct{}

func (typingScene) Init(ctx *scene.Context) scene.Data {
	st := typingtext.New(ctx)
	logf(ctx, "init: %d letters, %s", st.Text.Len(), st.Settings.SkipMode)
	return st
}

func (typingScene) Update(ctx *scene.Context, data scene.Data, dt float64) {
	st, ok := data.(*typingtext.State)
	if !ok || st == nil {
		return
	}

	in := ctx.Input
	if in.IsPressed(input.KeyR) {
		st.Text.Reset()
	}
	if in.IsPressed(input.KeyTab) {
		st.Settings.SkipMode = st.Settings.SkipMode.Toggle()
	}

	skipHeld := in.IsDown(input.KeySpace)
	st.Settings.Apply(st.Text, skipHeld)

	if ctx.Rand != nil {
		ev := st.Text.Process(dt, st.Settings, ctx.Rand)
		if ev != typing.EventNone && ctx.Sound != nil {
			ctx.Sound.Play(ev)
		}
	}

	if ctx.Canvas != nil {
		draw(ctx, st, skipHeld)
	}
}

func (typingScene) Destroy(ctx *scene.Context, data scene.Data) {
	if st, ok := data.(*typingtext.State); ok && st != nil {
		logf(ctx, "destroy at %d/%d", st.Text.Cursor(), st.Text.Len())
	}
}

func logf(ctx *scene.Context, format string, args ...any) {
	if ctx.Logger != nil {
		ctx.Logger.Printf(format, args...)
	}
}
