package ui

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/patchbay/terminal"
)

func newTestContext(t *testing.T, w, h int) (*ScreenContext, tcell.SimulationScreen) {
	t.Helper()
	scr, sim := terminal.NewSimulation(w, h)
	ctx, err := NewScreenContext(scr)
	if err != nil {
		t.Fatalf("NewScreenContext: %v", err)
	}
	t.Cleanup(ctx.Close)
	return ctx, sim
}

// Pointer gesture helpers driving the classification path directly
func press(c *ScreenContext, x, y int) {
	c.handlePointer(terminal.Event{Kind: terminal.EventPointer, X: x, Y: y,
		Button: terminal.ButtonLeft, Action: terminal.ActionPress})
}

func release(c *ScreenContext, x, y int) {
	c.handlePointer(terminal.Event{Kind: terminal.EventPointer, X: x, Y: y,
		Button: terminal.ButtonLeft, Action: terminal.ActionRelease})
}

func pmove(c *ScreenContext, x, y int) {
	c.handlePointer(terminal.Event{Kind: terminal.EventPointer, X: x, Y: y,
		Button: terminal.ButtonNone, Action: terminal.ActionMove})
}

func TestContextExclusive(t *testing.T) {
	ctx, _ := newTestContext(t, 80, 24)
	if _, err := NewScreenContext(ctx.Screen()); !errors.Is(err, terminal.ErrClaimed) {
		t.Errorf("second context on claimed screen = %v, want ErrClaimed", err)
	}
}

func TestContextCloseIdempotent(t *testing.T) {
	scr, _ := terminal.NewSimulation(80, 24)
	ctx, err := NewScreenContext(scr)
	if err != nil {
		t.Fatalf("NewScreenContext: %v", err)
	}
	ctx.Close()
	ctx.Close()
	if ctx.running {
		t.Errorf("running after Close")
	}
}

func TestContextSizeSnapshot(t *testing.T) {
	ctx, _ := newTestContext(t, 80, 24)
	if w, h := ctx.Size(); w != 80 || h != 24 {
		t.Errorf("Size = %dx%d, want 80x24", w, h)
	}
}

func TestDelChildReleasesTree(t *testing.T) {
	ctx, _ := newTestContext(t, 80, 24)
	theme := DefaultTheme()
	parent := NewBox(ctx.Screen(), 10, 5, 0, 0, false, theme.Border)
	child := NewBox(ctx.Screen(), 4, 3, 2, 1, false, theme.Border)
	parent.AddChild(child)
	ctx.AddChild(parent)

	ctx.DelChild(parent)
	if len(ctx.Children()) != 0 {
		t.Errorf("children after DelChild = %d", len(ctx.Children()))
	}
	// Removing an element that is not a root child is a no-op
	ctx.DelChild(parent)
}
