package menu

import "fmt"

// ItemsPerPage is the number of real options shown on one page.
const ItemsPerPage = 6

// InputMode selects which input modality drives a menu.
type InputMode int

const (
	KeyPress InputMode = iota
	Scrollable
	Both
)

func (m InputMode) String() string {
	switch m {
	case KeyPress:
		return "KeyPress"
	case Scrollable:
		return "Scrollable"
	case Both:
		return "Both"
	default:
		return fmt.Sprintf("InputMode(%d)", int(m))
	}
}

// ParseInputMode maps the config value to an InputMode. Unknown names fall back to KeyPress.
func ParseInputMode(s string) InputMode {
	switch s {
	case "Scrollable":
		return Scrollable
	case "Both":
		return Both
	default:
		return KeyPress
	}
}

// PostSelect is applied after a leaf option's callback has run.
type PostSelect int

const (
	PostSelectClose PostSelect = iota
	PostSelectReset
	PostSelectNothing
)

// State is the lifecycle state of a menu instance.
type State int

const (
	StateClosed State = iota
	StateOpening
	StateOpen
	StateSuspended
	StateAwaitingCalibration
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "Closed"
	case StateOpening:
		return "Opening"
	case StateOpen:
		return "Open"
	case StateSuspended:
		return "Suspended"
	case StateAwaitingCalibration:
		return "AwaitingCalibration"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// NavButton is a synthesized selectable entry that is not part of the option list.
type NavButton int

const (
	NavNone NavButton = iota
	NavBack
	NavNext
	NavExit
	NavCalibrate
)

// Key is the digit bound to the button.
func (n NavButton) Key() int {
	switch n {
	case NavBack:
		return 7
	case NavNext:
		return 8
	case NavExit:
		return 9
	case NavCalibrate:
		return 0
	default:
		return -1
	}
}

func navForKey(key int) NavButton {
	switch key {
	case 7:
		return NavBack
	case 8:
		return NavNext
	case 9:
		return NavExit
	case 0:
		return NavCalibrate
	default:
		return NavNone
	}
}

// Event is a host lifecycle notification.
type Event int

const (
	EventRoundStart Event = iota
	EventRoundEnd
	EventDisconnect
	EventViewInvalidate
)

func (e Event) String() string {
	switch e {
	case EventRoundStart:
		return "RoundStart"
	case EventRoundEnd:
		return "RoundEnd"
	case EventDisconnect:
		return "Disconnect"
	case EventViewInvalidate:
		return "ViewInvalidate"
	default:
		return fmt.Sprintf("Event(%d)", int(e))
	}
}

// Position is the per-player offset of the menu panel.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}
