package hotreload

import (
	"errors"
	"fmt"

	"github.com/younwookim/gamesnippets/internal/application/scene"
)

var (
	// ErrSymbolNotFound is returned when a module lacks the entry point
	ErrSymbolNotFound = errors.New("entry point not found")
	// ErrBadEntryPoint is returned when the entry point has the wrong type or returns nil
	ErrBadEntryPoint = errors.New("entry point has wrong signature")
	// ErrPluginsUnsupported is returned by the plugin opener on platforms without Go plugins
	ErrPluginsUnsupported = errors.New("go plugins are not supported on this platform")
)

// Module is a loaded unit of code
type Module interface {
	// Lookup resolves an exported symbol
	Lookup(symbol string) (any, error)
	// Close releases the module handle
	Close() error
}

// Opener loads modules from files
type Opener interface {
	Open(path string) (Module, error)
}

// OpenerFunc adapts a function to Opener
type OpenerFunc func(path string) (Module, error)

// Open calls f(path)
func (f OpenerFunc) Open(path string) (Module, error) {
	return f(path)
}

// resolve looks up the entry point and calls it to obtain the scene
func resolve(mod Module, symbol string) (scene.Scene, error) {
	sym, err := mod.Lookup(symbol)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSymbolNotFound, symbol, err)
	}

	entry, ok := sym.(func() scene.Scene)
	if !ok {
		return nil, fmt.Errorf("%w: %s is %T, want func() scene.Scene", ErrBadEntryPoint, symbol, sym)
	}

	fns := entry()
	if fns == nil {
		return nil, fmt.Errorf("%w: %s returned nil", ErrBadEntryPoint, symbol)
	}
	return fns, nil
}
