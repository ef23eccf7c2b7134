package terminal

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newTestScreen(t *testing.T, w, h int) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	s, sim := NewSimulation(w, h)
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(s.Fini)
	return s, sim
}

func TestClaimExclusive(t *testing.T) {
	s, _ := NewSimulation(80, 24)
	if err := s.Claim(); err != nil {
		t.Fatalf("first Claim: %v", err)
	}
	if err := s.Claim(); !errors.Is(err, ErrClaimed) {
		t.Errorf("second Claim = %v, want ErrClaimed", err)
	}
	s.Fini()
	if err := s.Claim(); err != nil {
		t.Errorf("Claim after Fini: %v", err)
	}
}

func TestFiniIdempotent(t *testing.T) {
	s, _ := NewSimulation(80, 24)
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	s.Fini()
	s.Fini() // must not panic or touch the backend again
}

func TestUpdateSizeRealloc(t *testing.T) {
	s, sim := newTestScreen(t, 80, 24)
	if w, h := s.Size(); w != 80 || h != 24 {
		t.Fatalf("Size = %dx%d, want 80x24", w, h)
	}

	sim.SetSize(100, 30)
	ev, ok := s.translate(tcell.NewEventResize(100, 30))
	if !ok || ev.Kind != EventResize {
		t.Fatalf("translate resize = %+v, %v", ev, ok)
	}
	if ev.Width != 100 || ev.Height != 30 {
		t.Errorf("resize event = %dx%d, want 100x30", ev.Width, ev.Height)
	}
	if len(s.cells) != 100*30 {
		t.Errorf("composite buffer = %d cells, want %d", len(s.cells), 100*30)
	}
}

func TestTranslateKey(t *testing.T) {
	s, _ := newTestScreen(t, 80, 24)
	ev, ok := s.translate(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	if !ok || ev.Kind != EventKey {
		t.Fatalf("translate key = %+v, %v", ev, ok)
	}
	if ev.Key != tcell.KeyRune || ev.Rune != 'q' {
		t.Errorf("key event = %v %q", ev.Key, ev.Rune)
	}
}

func TestTranslateClosed(t *testing.T) {
	s, _ := newTestScreen(t, 80, 24)
	ev, ok := s.translate(nil)
	if !ok || ev.Kind != EventClosed {
		t.Errorf("translate(nil) = %+v, %v, want EventClosed", ev, ok)
	}
}

func TestMouseTransitions(t *testing.T) {
	s := &Screen{}
	steps := []struct {
		btns   tcell.ButtonMask
		button MouseButton
		action MouseAction
	}{
		{tcell.Button1, ButtonLeft, ActionPress},
		{tcell.Button1, ButtonNone, ActionMove}, // held, no transition
		{tcell.ButtonNone, ButtonLeft, ActionRelease},
		{tcell.ButtonNone, ButtonNone, ActionMove},
		{tcell.WheelUp, ButtonWheelUp, ActionPress}, // wheel never latches
		{tcell.ButtonNone, ButtonNone, ActionMove},
		{tcell.Button3, ButtonMiddle, ActionPress},
		{tcell.ButtonNone, ButtonMiddle, ActionRelease},
		{tcell.Button2, ButtonRight, ActionPress},
		{tcell.ButtonNone, ButtonRight, ActionRelease},
	}
	for i, step := range steps {
		ev := s.translateMouse(3, 4, step.btns)
		if ev.Kind != EventPointer || ev.X != 3 || ev.Y != 4 {
			t.Fatalf("step %d: event = %+v", i, ev)
		}
		if ev.Button != step.button || ev.Action != step.action {
			t.Errorf("step %d: got %v/%v, want %v/%v",
				i, ev.Button, ev.Action, step.button, step.action)
		}
	}
}
