package typing

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedRand returns queued values first, then fallback (clamped to n-1)
type scriptedRand struct {
	queue    []int
	fallback int
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.queue) > 0 {
		v := r.queue[0]
		r.queue = r.queue[1:]
		return v
	}
	if r.fallback >= n {
		return n - 1
	}
	return r.fallback
}

// noTypos never draws a typo and never jitters
func noTypos() *scriptedRand {
	return &scriptedRand{fallback: 1}
}

// fire calls Process with a large dt until a step happens
func fire(t *testing.T, text *Text, s Settings, rng Rand) Event {
	t.Helper()
	for i := 0; i < 3; i++ {
		if ev := text.Process(1.0, s, rng); ev != EventNone {
			return ev
		}
	}
	t.Fatalf("no step fired (state=%s cursor=%d)", text.State(), text.Cursor())
	return EventNone
}

func TestText_TwoLettersNoTypo(t *testing.T) {
	s := DefaultSettings()
	text := NewText("ab", s.TypingDelay())
	rng := noTypos()

	assert.Equal(t, EventLetter, fire(t, text, s, rng))
	assert.Equal(t, 1, text.Cursor())
	assert.Equal(t, StateChooseLetter, text.State())

	assert.Equal(t, EventLetter, fire(t, text, s, rng))
	assert.Equal(t, 2, text.Cursor())
	assert.Equal(t, StateFinished, text.State())
	assert.Equal(t, "ab", text.Visible())
}

func TestText_ForcedTypoIsCorrected(t *testing.T) {
	s := DefaultSettings()
	text := NewText("ab", s.TypingDelay())
	// jitter index 1 (no jitter), typo distance 1, typo draw 0 (typo)
	rng := &scriptedRand{queue: []int{1, 1, 0}, fallback: 1}

	assert.Equal(t, EventTypo, fire(t, text, s, rng))
	assert.Equal(t, "b", text.Visible())
	assert.Equal(t, 1, text.Cursor())
	assert.Equal(t, StateDeleteTypo, text.State())

	assert.Equal(t, EventBackspace, fire(t, text, s, rng))
	assert.Equal(t, 0, text.Cursor())
	assert.Equal(t, StateFixTypo, text.State())

	assert.Equal(t, EventFix, fire(t, text, s, rng))
	assert.Equal(t, "a", text.Visible())
	assert.Equal(t, 1, text.Cursor())
	assert.Equal(t, StateChooseLetter, text.State())
	assert.True(t, text.HadTypo())

	// The step right after a correction draws no typo, even if the source would
	rng.queue = []int{1}
	assert.Equal(t, EventLetter, fire(t, text, s, rng))
	assert.False(t, text.HadTypo())
	assert.Equal(t, "ab", text.Visible())
	assert.Equal(t, StateFinished, text.State())
}

func TestText_TypoOnLastLetterStillFinishes(t *testing.T) {
	s := DefaultSettings()
	text := NewText("a", s.TypingDelay())
	rng := &scriptedRand{queue: []int{1, 2, 0}, fallback: 1}

	assert.Equal(t, EventTypo, fire(t, text, s, rng))
	assert.Equal(t, "c", text.Visible())
	assert.Equal(t, EventBackspace, fire(t, text, s, rng))
	assert.Equal(t, EventFix, fire(t, text, s, rng))

	text.Process(1.0, s, rng)
	assert.Equal(t, StateFinished, text.State())
	assert.Equal(t, "a", text.Visible())
}

func TestText_EmptySource(t *testing.T) {
	s := DefaultSettings()
	text := NewText("", s.TypingDelay())
	assert.Equal(t, StateFinished, text.State())

	assert.NotPanics(t, func() {
		for i := 0; i < 5; i++ {
			assert.Equal(t, EventNone, text.Process(1.0, s, noTypos()))
		}
	})
	assert.Equal(t, 0, text.Cursor())

	// Reset on an empty source must not read past the end either
	text.Reset()
	assert.Equal(t, StateChooseLetter, text.State())
	assert.NotPanics(t, func() {
		assert.Equal(t, EventNone, text.Process(1.0, s, noTypos()))
	})
	assert.Equal(t, StateFinished, text.State())
}

func TestText_NoStepBeforeDelay(t *testing.T) {
	s := DefaultSettings()
	text := NewText("abc", s.TypingDelay())
	rng := noTypos()

	// First call only accumulates
	assert.Equal(t, EventNone, text.Process(0.01, s, rng))
	assert.Equal(t, EventNone, text.Process(0.01, s, rng))
	assert.Equal(t, EventNone, text.Process(0.01, s, rng))
	assert.Equal(t, 0, text.Cursor())

	// 0.03 + 0.03 >= 0.05
	text.Process(0.03, s, rng)
	assert.Equal(t, EventLetter, text.Process(0.0, s, rng))
	assert.Equal(t, 1, text.Cursor())
}

func TestText_NegativeDeltaIsClamped(t *testing.T) {
	s := DefaultSettings()
	text := NewText("abc", s.TypingDelay())

	text.Process(-10, s, noTypos())
	text.Process(0.06, s, noTypos())
	assert.Equal(t, EventLetter, text.Process(0, s, noTypos()))
}

func TestText_Reset(t *testing.T) {
	s := DefaultSettings()
	tests := []struct {
		name  string
		steps int
	}{
		{"fresh", 0},
		{"midway", 3},
		{"finished", 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := NewText("hello", s.TypingDelay())
			for i := 0; i < tt.steps; i++ {
				text.Process(1.0, s, noTypos())
			}

			text.Reset()
			assert.Equal(t, 0, text.Cursor())
			assert.Equal(t, StateChooseLetter, text.State())
			assert.Equal(t, "", text.Visible())

			text.Reset()
			assert.Equal(t, 0, text.Cursor())
			assert.Equal(t, StateChooseLetter, text.State())
		})
	}
}

func TestText_JumpToEndDiscardsTypo(t *testing.T) {
	s := DefaultSettings()
	text := NewText("abc", s.TypingDelay())
	rng := &scriptedRand{queue: []int{1, 3, 0}, fallback: 1}

	require.Equal(t, EventTypo, fire(t, text, s, rng))
	require.Equal(t, "d", text.Visible())

	text.JumpToEnd()
	assert.Equal(t, "abc", text.Visible())
	assert.Equal(t, StateFinished, text.State())
	assert.Equal(t, EventNone, text.Process(1.0, s, rng))
}

func TestText_RandomRunsTerminate(t *testing.T) {
	const source = "Lorem ipsum odor amet, consectetuer adipiscing elit."
	s := DefaultSettings()
	s.TypoChance = 3 // plenty of typos

	for seed := int64(0); seed < 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		text := NewText(source, s.TypingDelay())

		firings := 0
		prevHadTypo := false
		for i := 0; i < 10_000 && !text.Finished(); i++ {
			ev := text.Process(1.0, s, rng)
			require.LessOrEqual(t, text.Cursor(), text.Len(), "seed %d", seed)
			require.GreaterOrEqual(t, text.Cursor(), 0, "seed %d", seed)
			if ev == EventNone {
				continue
			}
			firings++
			require.False(t, prevHadTypo && text.HadTypo(), "hadTypo on consecutive firings (seed %d)", seed)
			prevHadTypo = text.HadTypo()
		}

		require.True(t, text.Finished(), "seed %d did not finish", seed)
		assert.Equal(t, source, text.Visible(), "seed %d", seed)
		assert.GreaterOrEqual(t, firings, len(source))
	}
}

func TestText_FixedSeedIsDeterministic(t *testing.T) {
	s := DefaultSettings()
	s.TypoChance = 2

	run := func() []Event {
		rng := rand.New(rand.NewSource(7))
		text := NewText("deterministic", s.TypingDelay())
		var events []Event
		for !text.Finished() {
			if ev := text.Process(1.0, s, rng); ev != EventNone {
				events = append(events, ev)
			}
		}
		return events
	}

	assert.Equal(t, run(), run())
}
