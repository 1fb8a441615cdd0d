//go:build (linux || darwin || freebsd) && cgo

package hotreload

import "plugin"

// PluginOpener opens modules built with -buildmode=plugin.
//
// A plugin can be opened only once per process and Go never unmaps it, so
// every load must use a fresh staging path and Close only drops the handle.
// Each build must have its own package path (see package scenebuild) and
// use the same versions of the shared packages as the host.
type PluginOpener struct{}

// Open loads the plugin at path
func (PluginOpener) Open(path string) (Module, error) {
	p, err := plugin.Open(path)
	if err != nil {
		return nil, err
	}
	return &pluginModule{p: p}, nil
}

type pluginModule struct {
	p *plugin.Plugin
}

func (m *pluginModule) Lookup(symbol string) (any, error) {
	if m.p == nil {
		return nil, ErrSymbolNotFound
	}
	sym, err := m.p.Lookup(symbol)
	if err != nil {
		return nil, err
	}
	return sym, nil
}

func (m *pluginModule) Close() error {
	m.p = nil
	return nil
}
