// Package input defines a frontend-independent snapshot of key state.
package input

// Key identifies a key the scenes and host react to
type Key uint8

const (
	KeySpace Key = iota
	KeyTab
	KeyR
	KeyF5
	KeyEscape
	keyCount
)

// String returns the key name
func (k Key) String() string {
	switch k {
	case KeySpace:
		return "Space"
	case KeyTab:
		return "Tab"
	case KeyR:
		return "R"
	case KeyF5:
		return "F5"
	case KeyEscape:
		return "Escape"
	default:
		return "Unknown"
	}
}

// Keys returns every known key
func Keys() []Key {
	keys := make([]Key, 0, keyCount)
	for k := Key(0); k < keyCount; k++ {
		keys = append(keys, k)
	}
	return keys
}

// KeySet is a bitmask of keys
type KeySet uint32

// With returns the set with k added
func (s KeySet) With(k Key) KeySet {
	return s | 1<<k
}

// Has reports whether k is in the set
func (s KeySet) Has(k Key) bool {
	return s&(1<<k) != 0
}

// State holds the input for one frame
type State struct {
	Down    KeySet // held this frame
	Pressed KeySet // went down this frame
}

// IsDown reports whether k is held
func (s State) IsDown(k Key) bool {
	return s.Down.Has(k)
}

// IsPressed reports whether k went down this frame
func (s State) IsPressed(k Key) bool {
	return s.Pressed.Has(k)
}
