//go:build !((linux || darwin || freebsd) && cgo)

package hotreload

// PluginOpener reports that plugins are unavailable on this platform, so
// the host always runs the no-op scene.
type PluginOpener struct{}

// Open always fails with ErrPluginsUnsupported
func (PluginOpener) Open(path string) (Module, error) {
	return nil, ErrPluginsUnsupported
}
