package state

// Popup holds the popup visibility flag. The zero value is hidden.
type Popup struct {
	Shown bool
}

// Input is a decoded event as far as the popup state machine cares.
type Input int

const (
	InputOther Input = iota
	InputToggle
	InputQuit
)

func (i Input) String() string {
	switch i {
	case InputToggle:
		return "toggle"
	case InputQuit:
		return "quit"
	default:
		return "other"
	}
}

// Toggle returns the popup with its visibility flipped.
func (p Popup) Toggle() Popup {
	return Popup{Shown: !p.Shown}
}

// Step applies one input and reports whether the loop should stop. Quit
// leaves the flag untouched.
func (p Popup) Step(in Input) (Popup, bool) {
	switch in {
	case InputQuit:
		return p, true
	case InputToggle:
		return p.Toggle(), false
	default:
		return p, false
	}
}

func (p Popup) String() string {
	if p.Shown {
		return "popup_shown"
	}
	return "popup_hidden"
}
