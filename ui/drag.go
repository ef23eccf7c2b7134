package ui

// MakeDraggable wires offset-preserving drag for a leaf element: while
// the element is the resolved pointer target, each Mousemove relocates
// its surface to pointer minus the grab offset recorded at Mousedown.
// The flag is re-checked per event, so clearing it suspends dragging
// without unsubscribing. Composite widgets implement their own drag so
// their sub-elements move in lockstep
func MakeDraggable(c *ScreenContext, e *Element) *Subscription {
	e.Flags |= FlagDraggable
	return c.bus.Subscribe(EventMousemove, func(ev *Event) {
		p := ev.Pointer
		if p == nil || p.Element != e || e.Flags&FlagDraggable == 0 {
			return
		}
		e.surface.Move(p.X-p.OffsetX, p.Y-p.OffsetY)
	})
}
