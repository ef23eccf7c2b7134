package terminal

import (
	"errors"

	"github.com/gdamore/tcell/v2"
)

// ErrClaimed is returned when a second context tries to own the screen
var ErrClaimed = errors.New("terminal: screen already claimed")

// Cell is one character cell in a surface or the composite buffer.
// A zero Rune marks the cell untouched; compositing skips it, so a parent
// surface can layer decorations over its children without erasing them.
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Screen owns the terminal resource and the composite back buffer.
// Acquisition enables raw input, mouse reporting with motion, and hides
// the cursor; Fini restores all of it and is safe to call more than once.
type Screen struct {
	tc  tcell.Screen
	sim tcell.SimulationScreen

	simW, simH int

	width  int
	height int
	cells  []Cell

	surfaces []*Surface
	buttons  tcell.ButtonMask

	fill tcell.Style

	claimed     bool
	initialized bool
	finalized   bool
}

// New creates a Screen over the process terminal
func New() (*Screen, error) {
	tc, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Screen{tc: tc, fill: tcell.StyleDefault}, nil
}

// NewSimulation creates a Screen over tcell's simulation backend, sized
// w x h after Init. It drives the same code paths as a tty screen; tests
// use the returned SimulationScreen to change geometry or inject input.
func NewSimulation(w, h int) (*Screen, tcell.SimulationScreen) {
	sim := tcell.NewSimulationScreen("UTF-8")
	return &Screen{tc: sim, sim: sim, simW: w, simH: h, fill: tcell.StyleDefault}, sim
}

// Claim marks the screen as owned by a context. Exactly one owner may be
// live at a time; Fini releases the claim.
func (s *Screen) Claim() error {
	if s.claimed {
		return ErrClaimed
	}
	s.claimed = true
	return nil
}

// Init acquires the terminal. Idempotent; failure is fatal to the caller
func (s *Screen) Init() error {
	if s.initialized {
		return nil
	}
	if err := s.tc.Init(); err != nil {
		return err
	}
	if s.sim != nil && s.simW > 0 {
		s.sim.SetSize(s.simW, s.simH)
	}
	s.tc.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents | tcell.MouseMotionEvents)
	s.tc.HideCursor()
	s.tc.Clear()
	s.width, s.height = s.tc.Size()
	s.cells = make([]Cell, s.width*s.height)
	s.initialized = true
	s.finalized = false
	return nil
}

// Fini restores the terminal unconditionally. Safe to call multiple times
func (s *Screen) Fini() {
	if !s.initialized || s.finalized {
		s.claimed = false
		return
	}
	s.tc.DisableMouse()
	s.tc.Fini()
	s.finalized = true
	s.initialized = false
	s.claimed = false
}

// Size returns the current terminal dimensions
func (s *Screen) Size() (int, int) {
	return s.tc.Size()
}

// UpdateSize re-queries backend geometry and reallocates the composite
// buffer when it changed. Called from the resize path only
func (s *Screen) UpdateSize() (int, int) {
	w, h := s.tc.Size()
	if w != s.width || h != s.height {
		s.width, s.height = w, h
		s.cells = make([]Cell, w*h)
	}
	return w, h
}

// PollEvent blocks until the next input event
func (s *Screen) PollEvent() Event {
	for {
		if ev, ok := s.translate(s.tc.PollEvent()); ok {
			return ev
		}
	}
}

// HasPending reports whether input is already queued. One input wake can
// carry several pointer reports; callers drain them before rendering
func (s *Screen) HasPending() bool {
	return s.tc.HasPendingEvent()
}

// translate maps a backend event onto the flat Event type
func (s *Screen) translate(tev tcell.Event) (Event, bool) {
	switch tev := tev.(type) {
	case *tcell.EventKey:
		return Event{Kind: EventKey, Key: tev.Key(), Rune: tev.Rune(), Mod: tev.Modifiers()}, true
	case *tcell.EventResize:
		w, h := s.UpdateSize()
		return Event{Kind: EventResize, Width: w, Height: h}, true
	case *tcell.EventMouse:
		x, y := tev.Position()
		return s.translateMouse(x, y, tev.Buttons()), true
	case nil:
		return Event{Kind: EventClosed}, true
	}
	// Paste, focus and other backend events are ignored
	return Event{}, false
}

// translateMouse derives the button transition from consecutive masks
func (s *Screen) translateMouse(x, y int, btns tcell.ButtonMask) Event {
	ev := Event{Kind: EventPointer, X: x, Y: y, Button: ButtonNone, Action: ActionMove}

	// Wheel events are instantaneous, never held
	if btns&tcell.WheelUp != 0 {
		ev.Button, ev.Action = ButtonWheelUp, ActionPress
		return ev
	}
	if btns&tcell.WheelDown != 0 {
		ev.Button, ev.Action = ButtonWheelDown, ActionPress
		return ev
	}

	held := btns & (tcell.Button1 | tcell.Button2 | tcell.Button3)
	pressed := held &^ s.buttons
	released := s.buttons &^ held
	s.buttons = held

	switch {
	case pressed != 0:
		ev.Action = ActionPress
		ev.Button = buttonFor(pressed)
	case released != 0:
		ev.Action = ActionRelease
		ev.Button = buttonFor(released)
	}
	return ev
}

// buttonFor maps a tcell mask bit to a MouseButton.
// Button1 is the primary (left) button, Button2 secondary (right)
func buttonFor(mask tcell.ButtonMask) MouseButton {
	switch {
	case mask&tcell.Button1 != 0:
		return ButtonLeft
	case mask&tcell.Button2 != 0:
		return ButtonRight
	case mask&tcell.Button3 != 0:
		return ButtonMiddle
	}
	return ButtonNone
}

// NewSurface allocates a surface and registers it for compositing
func (s *Screen) NewSurface(w, h, x, y int) *Surface {
	sf := &Surface{screen: s, x: x, y: y, w: w, h: h, cells: make([]Cell, w*h)}
	s.surfaces = append(s.surfaces, sf)
	return sf
}

// removeSurface detaches a surface from the composite list, by identity
func (s *Screen) removeSurface(sf *Surface) {
	for i, cand := range s.surfaces {
		if cand == sf {
			s.surfaces = append(s.surfaces[:i], s.surfaces[i+1:]...)
			return
		}
	}
}

// Invalidate clears the composite buffer before a full traversal.
// The renderer calls it exactly once per frame
func (s *Screen) Invalidate() {
	clear(s.cells)
}

// Flush commits the composite buffer to the terminal in one Show
func (s *Screen) Flush() {
	if !s.initialized || s.finalized {
		return
	}
	for i, c := range s.cells {
		x := i % s.width
		y := i / s.width
		if c.Rune == 0 {
			s.tc.SetContent(x, y, ' ', nil, s.fill)
			continue
		}
		s.tc.SetContent(x, y, c.Rune, nil, c.Style)
	}
	s.tc.Show()
}

// Sync forces a full terminal redraw
func (s *Screen) Sync() {
	if !s.initialized || s.finalized {
		return
	}
	s.tc.Sync()
}
