package hotreload

import (
	"github.com/younwookim/gamesnippets/internal/application/scene"
)

// DefaultPollInterval is how often the library file is checked, in seconds
const DefaultPollInterval = 1.0

// ReloadKind describes what a frame did to the active scene
type ReloadKind int

const (
	ReloadNone ReloadKind = iota
	ReloadSoft            // module swapped, scene data kept
	ReloadHard            // module swapped, scene data destroyed and re-created
)

// String returns the string representation of the reload kind
func (k ReloadKind) String() string {
	switch k {
	case ReloadNone:
		return "None"
	case ReloadSoft:
		return "Soft"
	case ReloadHard:
		return "Hard"
	default:
		return "Unknown"
	}
}

// Host owns the active scene and its data and drives them once per frame
type Host struct {
	loader   *Loader
	ctx      *scene.Context
	current  *LoadedScene
	data     scene.Data
	live     bool // data came from a valid module's Init
	interval float64
	elapsed  float64
	closed   bool

	// OnReload is called after every reload, if set
	OnReload func(kind ReloadKind, s *LoadedScene)
}

// NewHost loads the module and initializes scene data
func NewHost(loader *Loader, ctx *scene.Context, interval float64) *Host {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	h := &Host{
		loader:   loader,
		ctx:      ctx,
		interval: interval,
	}
	h.current = loader.Load()
	h.initData()
	return h
}

func (h *Host) initData() {
	h.data = h.current.Functions.Init(h.ctx)
	h.live = h.current.Valid
}

// Current returns the active scene
func (h *Host) Current() *LoadedScene {
	return h.current
}

// Data returns the active scene data
func (h *Host) Data() scene.Data {
	return h.data
}

// Frame runs one frame: a reload check when due (or forced), then exactly
// one Update of the active scene
func (h *Host) Frame(dt float64, forceReload bool) ReloadKind {
	if h.closed {
		return ReloadNone
	}

	kind := h.poll(dt, forceReload)
	h.current.Functions.Update(h.ctx, h.data, dt)
	return kind
}

func (h *Host) poll(dt float64, force bool) ReloadKind {
	if dt > 0 {
		h.elapsed += dt
	}
	if !force && h.elapsed < h.interval {
		return ReloadNone
	}
	h.elapsed = 0

	next, reloaded := h.loader.PollAndReload(h.current, force)
	if !reloaded {
		return ReloadNone
	}
	h.current = next

	kind := ReloadSoft
	switch {
	case force:
		kind = ReloadHard
		h.current.Functions.Destroy(h.ctx, h.data)
		h.initData()
	case !h.live && h.current.Valid:
		// Nothing worth keeping was ever created; start the scene properly
		h.initData()
	}

	h.loader.logger.Printf("%s reload (valid=%t)", kind, h.current.Valid)
	if h.OnReload != nil {
		h.OnReload(kind, h.current)
	}
	return kind
}

// Close destroys the scene data and unloads the module. Only the first
// call has any effect.
func (h *Host) Close() {
	if h.closed {
		return
	}
	h.closed = true
	h.current.Functions.Destroy(h.ctx, h.data)
	h.data = nil
	h.loader.Unload(h.current)
}
