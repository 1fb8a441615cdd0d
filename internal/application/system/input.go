// Package system contains the ebiten-facing systems run by the game loop.
package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/gamesnippets/internal/application/input"
)

// keyMap binds frontend-independent keys to ebiten keys
var keyMap = map[input.Key]ebiten.Key{
	input.KeySpace:  ebiten.KeySpace,
	input.KeyTab:    ebiten.KeyTab,
	input.KeyR:      ebiten.KeyR,
	input.KeyF5:     ebiten.KeyF5,
	input.KeyEscape: ebiten.KeyEscape,
}

// InputSystem polls the keyboard once per tick
type InputSystem struct {
	isDown      func(ebiten.Key) bool
	justPressed func(ebiten.Key) bool
}

// NewInputSystem creates an input system reading ebiten's key state
func NewInputSystem() *InputSystem {
	return &InputSystem{
		isDown:      ebiten.IsKeyPressed,
		justPressed: inpututil.IsKeyJustPressed,
	}
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() input.State {
	var st input.State
	for k, ek := range keyMap {
		if s.isDown(ek) {
			st.Down = st.Down.With(k)
		}
		if s.justPressed(ek) {
			st.Pressed = st.Pressed.With(k)
		}
	}
	return st
}
