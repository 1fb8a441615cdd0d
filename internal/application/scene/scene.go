// Package scene defines the lifecycle contract of a hot-swappable scene.
//
// A scene is a unit of per-frame behavior with three operations: Init
// creates its state, Update advances and draws it once per frame, and
// Destroy releases it. Scenes are usually built as Go plugins and loaded by
// the hotreload package, so everything crossing this boundary lives in
// packages shared by the host and the plugin.
package scene

import (
	"io/fs"
	"log"
	"math/rand"

	"github.com/younwookim/gamesnippets/internal/application/input"
	"github.com/younwookim/gamesnippets/internal/application/render"
	"github.com/younwookim/gamesnippets/internal/domain/typing"
)

// EntryPoint is the exported symbol every scene plugin must provide.
// Its value must be a func() Scene.
const EntryPoint = "SceneFunctions"

// Data is scene-owned state. The host stores it and passes it back but
// never looks inside.
type Data any

// Scene is the lifecycle contract between the host and a loaded scene.
type Scene interface {
	// Init creates fresh scene state.
	Init(ctx *Context) Data

	// Update advances the scene by dt seconds and records this frame's
	// draw calls on ctx.Canvas.
	Update(ctx *Context, data Data, dt float64)

	// Destroy releases data. It is called exactly once per Init.
	Destroy(ctx *Context, data Data)
}

// Sound plays feedback for typing events
type Sound interface {
	Play(ev typing.Event)
}

// Context is supplied by the host and shared by every scene it loads.
// Scenes read it and draw through it but never own it.
type Context struct {
	ScreenWidth  int
	ScreenHeight int

	// Refreshed by the host every frame
	Input  input.State
	Canvas *render.List

	Metrics render.Metrics
	Rand    *rand.Rand // process-wide, seeded once at startup
	Sound   Sound
	Assets  fs.FS
	Logger  *log.Logger
}

// Noop is the scene used when no module could be loaded.
// Init returns nil and Update/Destroy do nothing.
type Noop struct{}

func (Noop) Init(*Context) Data { return nil }

func (Noop) Update(*Context, Data, float64) {}

func (Noop) Destroy(*Context, Data) {}

// Silent is a Sound that plays nothing
type Silent struct{}

func (Silent) Play(typing.Event) {}
