package terminal

import "github.com/gdamore/tcell/v2"

// EventKind distinguishes input event categories
type EventKind uint8

const (
	EventNone EventKind = iota
	EventKey
	EventResize
	EventPointer
	EventClosed // Screen finalized while polling
)

// Event is a terminal input event
type Event struct {
	Kind EventKind

	// Key event fields
	Key  tcell.Key
	Rune rune
	Mod  tcell.ModMask

	// Resize event fields
	Width  int
	Height int

	// Pointer report fields
	X, Y   int
	Button MouseButton
	Action MouseAction
}

// MouseButton identifies the button a pointer report refers to
type MouseButton uint8

const (
	ButtonNone MouseButton = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
	ButtonWheelUp
	ButtonWheelDown
)

// MouseAction is the button transition carried by a pointer report
type MouseAction uint8

const (
	ActionMove MouseAction = iota
	ActionPress
	ActionRelease
)

// String returns human-readable button name
func (b MouseButton) String() string {
	switch b {
	case ButtonLeft:
		return "Left"
	case ButtonMiddle:
		return "Middle"
	case ButtonRight:
		return "Right"
	case ButtonWheelUp:
		return "WheelUp"
	case ButtonWheelDown:
		return "WheelDown"
	default:
		return "None"
	}
}

// String returns human-readable action name
func (a MouseAction) String() string {
	switch a {
	case ActionPress:
		return "Press"
	case ActionRelease:
		return "Release"
	default:
		return "Move"
	}
}
