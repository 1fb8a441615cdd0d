package termrender

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/younwookim/gamesnippets/internal/application/input"
)

// DefaultHold covers the usual delay before a terminal starts auto-repeating
const DefaultHold = 550 * time.Millisecond

// KeyTracker derives held keys from key events. Terminals only report key
// presses and their auto-repeats, so a key counts as held until hold has
// passed since its last event.
type KeyTracker struct {
	hold    time.Duration
	last    map[input.Key]time.Time
	pressed input.KeySet
}

// NewKeyTracker creates a tracker. hold <= 0 means DefaultHold.
func NewKeyTracker(hold time.Duration) *KeyTracker {
	if hold <= 0 {
		hold = DefaultHold
	}
	return &KeyTracker{hold: hold, last: make(map[input.Key]time.Time)}
}

// MapKey translates a tcell key event to a known key
func MapKey(ev *tcell.EventKey) (input.Key, bool) {
	switch ev.Key() {
	case tcell.KeyTab:
		return input.KeyTab, true
	case tcell.KeyF5:
		return input.KeyF5, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.KeyEscape, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return input.KeySpace, true
		case 'r', 'R':
			return input.KeyR, true
		}
	}
	return 0, false
}

// Handle records a key event received at now. It reports whether the
// event was one of the known keys.
func (t *KeyTracker) Handle(ev *tcell.EventKey, now time.Time) bool {
	k, ok := MapKey(ev)
	if !ok {
		return false
	}
	if !t.held(k, now) {
		t.pressed = t.pressed.With(k)
	}
	t.last[k] = now
	return true
}

func (t *KeyTracker) held(k input.Key, now time.Time) bool {
	last, ok := t.last[k]
	return ok && now.Sub(last) <= t.hold
}

// Snapshot returns the input for a frame at now and clears the pressed set
func (t *KeyTracker) Snapshot(now time.Time) input.State {
	st := input.State{Pressed: t.pressed}
	for k := range t.last {
		if t.held(k, now) {
			st.Down = st.Down.With(k)
		}
	}
	// A tap shorter than a frame still counts as down for that frame
	st.Down |= t.pressed
	t.pressed = 0
	return st
}
