package typing

// SkipMode selects what holding the skip key does
type SkipMode int

const (
	SkipFastForward SkipMode = iota
	SkipJumpToEnd
)

// String returns the string representation of the skip mode
func (m SkipMode) String() string {
	switch m {
	case SkipFastForward:
		return "FastForward"
	case SkipJumpToEnd:
		return "JumpToEnd"
	default:
		return "Unknown"
	}
}

// Label returns the text shown above the skip control
func (m SkipMode) Label() string {
	switch m {
	case SkipFastForward:
		return "Mode: Fast Forward"
	case SkipJumpToEnd:
		return "Mode: Jump to End"
	default:
		return "Mode: ?"
	}
}

// Toggle returns the other skip mode
func (m SkipMode) Toggle() SkipMode {
	if m == SkipFastForward {
		return SkipJumpToEnd
	}
	return SkipFastForward
}

// ParseSkipMode converts a config value ("jump", "fast_forward") to a SkipMode
func ParseSkipMode(s string) (SkipMode, bool) {
	switch s {
	case "jump", "jump_to_end", "JumpToEnd":
		return SkipJumpToEnd, true
	case "fast_forward", "fastforward", "FastForward":
		return SkipFastForward, true
	default:
		return SkipJumpToEnd, false
	}
}

// Settings configures typing speed, skip behavior and typo simulation
type Settings struct {
	CharsPerSecond    float64
	SkipMode          SkipMode
	FastForwardFactor float64 // delay divisor while fast-forwarding

	// Typo simulation
	TypoChance      int     // a typo happens when Intn(TypoChance+1) == 0
	MaxTypoDistance int     // wrong letter is correct+[0, MaxTypoDistance]
	JitterScale     float64 // per-letter jitter in units of TypingDelay
	TypoPause       float64 // pause after a typo, in units of TypingDelay
	FixPause        float64 // pause after the backspace, in units of TypingDelay
}

// DefaultSettings returns the settings the demo ships with
func DefaultSettings() Settings {
	return Settings{
		CharsPerSecond:    20,
		SkipMode:          SkipJumpToEnd,
		FastForwardFactor: 5,
		TypoChance:        30,
		MaxTypoDistance:   5,
		JitterScale:       0.6,
		TypoPause:         3,
		FixPause:          2,
	}
}

// TypingDelay returns the base delay between steps in seconds
func (s Settings) TypingDelay() float64 {
	if s.CharsPerSecond <= 0 {
		return 0
	}
	return 1 / s.CharsPerSecond
}

// Apply sets the text's delay for this frame.
// While skip is held the text either jumps to the end or types faster.
func (s Settings) Apply(t *Text, skipHeld bool) {
	t.TypingDelay = s.TypingDelay()
	if !skipHeld {
		return
	}

	switch s.SkipMode {
	case SkipJumpToEnd:
		t.JumpToEnd()
	case SkipFastForward:
		if s.FastForwardFactor > 0 {
			t.TypingDelay /= s.FastForwardFactor
		}
	}
}
