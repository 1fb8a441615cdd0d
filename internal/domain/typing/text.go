// Package typing implements the typing animation: a source text revealed
// one letter at a time, with occasional simulated typos that are backspaced
// and corrected.
package typing

// Rand is the random source used for jitter and typo draws.
// *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Text holds the animation state of one paragraph
type Text struct {
	state State

	source    []byte
	workspace []byte
	cursor    int

	hadTypo       bool
	correctLetter byte

	// TypingDelay is the base delay between steps; Settings.Apply sets it every frame
	TypingDelay  float64
	timer        float64
	nextModifier float64
}

// NewText creates a text that will reveal source. An empty source is finished immediately.
func NewText(source string, delay float64) *Text {
	t := &Text{
		source:      []byte(source),
		workspace:   []byte(source),
		TypingDelay: delay,
	}
	if len(t.source) == 0 {
		t.state = StateFinished
	}
	return t
}

// State returns the current animation state
func (t *Text) State() State {
	return t.state
}

// Cursor returns the number of visible bytes
func (t *Text) Cursor() int {
	return t.cursor
}

// Len returns the length of the source text
func (t *Text) Len() int {
	return len(t.source)
}

// HadTypo reports whether the last step corrected a typo
func (t *Text) HadTypo() bool {
	return t.hadTypo
}

// Visible returns the currently revealed text
func (t *Text) Visible() string {
	return string(t.workspace[:t.cursor])
}

// Finished reports whether the whole source is revealed
func (t *Text) Finished() bool {
	return t.state == StateFinished
}

// Reset starts the animation over. Workspace bytes past the cursor are stale
// but never shown.
func (t *Text) Reset() {
	t.cursor = 0
	t.state = StateChooseLetter
	t.hadTypo = false
}

// JumpToEnd reveals the whole source at once, discarding any pending typo
func (t *Text) JumpToEnd() {
	copy(t.workspace, t.source)
	t.cursor = len(t.source)
	t.state = StateFinished
}

// Process advances the animation by dt seconds and takes at most one step
func (t *Text) Process(dt float64, s Settings, rng Rand) Event {
	if dt < 0 {
		dt = 0
	}
	defer func() { t.timer += dt }()

	if t.state == StateChooseLetter && t.cursor >= len(t.source) {
		t.state = StateFinished
	}
	if t.state == StateFinished {
		return EventNone
	}

	if t.timer < t.TypingDelay+t.nextModifier {
		return EventNone
	}

	// The previous step's typo flag only suppresses this step's typo draw
	suppressTypo := t.hadTypo
	t.timer = 0
	t.hadTypo = false

	switch t.state {
	case StateChooseLetter:
		return t.chooseLetter(s, rng, suppressTypo)

	case StateDeleteTypo:
		t.cursor--
		t.nextModifier = t.TypingDelay * s.FixPause
		t.state = StateFixTypo
		return EventBackspace

	case StateFixTypo:
		t.workspace[t.cursor] = t.correctLetter
		t.cursor++
		t.state = StateChooseLetter
		t.hadTypo = true
		return EventFix
	}

	return EventNone
}

func (t *Text) chooseLetter(s Settings, rng Rand, suppressTypo bool) Event {
	t.correctLetter = t.source[t.cursor]
	t.cursor++
	t.nextModifier = float64(rng.Intn(3)-1) * (t.TypingDelay * s.JitterScale)

	distance := 0
	isTypo := false
	if !suppressTypo {
		distance = rng.Intn(max(s.MaxTypoDistance, 0) + 1)
		isTypo = rng.Intn(max(s.TypoChance, 0) + 1) == 0
	}

	if isTypo {
		t.workspace[t.cursor-1] = t.correctLetter + byte(distance)
		t.nextModifier = t.TypingDelay * s.TypoPause
		t.state = StateDeleteTypo
		return EventTypo
	}

	t.workspace[t.cursor-1] = t.correctLetter
	if t.cursor >= len(t.source) {
		t.state = StateFinished
	}
	return EventLetter
}
