package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/patchbay/terminal"
)

// Run drives the frame loop: block on input, classify, dispatch, render.
// The loop never blocks inside rendering or dispatch — handlers run to
// completion synchronously. It exits on a quit key, a closed screen, or
// Stop
func (c *ScreenContext) Run() {
	c.running = true
	c.Render()
	for c.running {
		ev := c.screen.PollEvent()
		c.handleEvent(ev)
		if !c.running {
			return
		}
		c.Render()
	}
}

// handleEvent classifies one input token. Malformed or unrecognized
// tokens are ignored; nothing in the steady-state loop is fatal
func (c *ScreenContext) handleEvent(ev terminal.Event) {
	switch ev.Kind {
	case terminal.EventClosed:
		c.running = false

	case terminal.EventKey:
		if isQuit(ev) {
			c.running = false
		}
		// Keyboard focus is out of scope; other keys fall through

	case terminal.EventResize:
		c.UpdateDimensions()
		c.bus.Publish(EventResize, &Event{Kind: EventResize, Width: c.width, Height: c.height})

	case terminal.EventPointer:
		c.handlePointer(ev)
		// One input wake can carry several queued pointer reports; drain
		// them all before the next render
		for c.screen.HasPending() {
			next := c.screen.PollEvent()
			if next.Kind == terminal.EventPointer {
				c.handlePointer(next)
				continue
			}
			c.handleEvent(next)
		}
	}
}

// handlePointer dispatches one pointer report: Mousemove always, then
// target resolution + Mousedown on press, Mouseup then Click on release.
// Click is derived, always paired with release at identical coordinates
func (c *ScreenContext) handlePointer(ev terminal.Event) {
	c.pointer.X, c.pointer.Y = ev.X, ev.Y
	c.bus.Publish(EventMousemove, &Event{Kind: EventMousemove, Pointer: &c.pointer})

	if ev.Button != terminal.ButtonLeft && ev.Action != terminal.ActionMove {
		return
	}

	switch ev.Action {
	case terminal.ActionPress:
		if h, ok := hitTest(c.children, ev.X, ev.Y); ok {
			c.pointer.Element = h.Element
			c.pointer.OffsetX, c.pointer.OffsetY = h.OffsetX, h.OffsetY
		} else {
			c.pointer.Element = nil
		}
		c.bus.Publish(EventMousedown, &Event{Kind: EventMousedown, Pointer: &c.pointer})

	case terminal.ActionRelease:
		c.bus.Publish(EventMouseup, &Event{Kind: EventMouseup, Pointer: &c.pointer})
		c.bus.Publish(EventClick, &Event{Kind: EventClick, Pointer: &c.pointer})
		c.pointer.Element = nil
	}
}

// isQuit recognizes the loop's quit tokens
func isQuit(ev terminal.Event) bool {
	return ev.Key == tcell.KeyCtrlC ||
		ev.Key == tcell.KeyEscape ||
		(ev.Key == tcell.KeyRune && ev.Rune == 'q')
}
