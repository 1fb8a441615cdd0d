package typing

// State represents the current step of the typing animation
type State int

const (
	StateChooseLetter State = iota
	StateDeleteTypo
	StateFixTypo
	StateFinished
)

// String returns the string representation of the animation state
func (s State) String() string {
	switch s {
	case StateChooseLetter:
		return "ChooseLetter"
	case StateDeleteTypo:
		return "DeleteTypo"
	case StateFixTypo:
		return "FixTypo"
	case StateFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// Event reports what a Process call did to the visible text
type Event int

const (
	EventNone      Event = iota
	EventLetter          // a correct letter appeared
	EventTypo            // a wrong letter appeared
	EventBackspace       // the wrong letter was removed
	EventFix             // the correct letter replaced the typo
)

// String returns the string representation of the event
func (e Event) String() string {
	switch e {
	case EventNone:
		return "None"
	case EventLetter:
		return "Letter"
	case EventTypo:
		return "Typo"
	case EventBackspace:
		return "Backspace"
	case EventFix:
		return "Fix"
	default:
		return "Unknown"
	}
}
