package ui

import "github.com/lixenwraith/patchbay/terminal"

// ScreenContext owns the terminal resource, the screen geometry snapshot,
// the running flag, the root composition, and the event bus. Exactly one
// context may be live per screen; Close must run on every exit path so
// terminal state is never left corrupted
type ScreenContext struct {
	screen *terminal.Screen

	width  int
	height int

	running  bool
	children []*Element
	bus      *EventBus
	pointer  PointerState
}

// NewScreenContext acquires the terminal: raw input, mouse reporting,
// cursor hidden, geometry cached. Acquisition failure is fatal and
// surfaced before any element exists
func NewScreenContext(scr *terminal.Screen) (*ScreenContext, error) {
	if err := scr.Claim(); err != nil {
		return nil, err
	}
	if err := scr.Init(); err != nil {
		scr.Fini()
		return nil, err
	}
	w, h := scr.Size()
	return &ScreenContext{
		screen: scr,
		width:  w,
		height: h,
		bus:    NewEventBus(),
	}, nil
}

// Close releases the terminal unconditionally and is idempotent. Callers
// defer it immediately after construction
func (c *ScreenContext) Close() {
	c.running = false
	c.screen.Fini()
}

// Bus returns the context's event bus
func (c *ScreenContext) Bus() *EventBus {
	return c.bus
}

// Screen returns the owned terminal screen
func (c *ScreenContext) Screen() *terminal.Screen {
	return c.screen
}

// Size returns the cached screen geometry. The cache changes only on the
// resize path, so consumers see one consistent snapshot per frame
func (c *ScreenContext) Size() (int, int) {
	return c.width, c.height
}

// Pointer returns the context's shared pointer state
func (c *ScreenContext) Pointer() *PointerState {
	return &c.pointer
}

// Children returns the root composition list
func (c *ScreenContext) Children() []*Element {
	return c.children
}

// AddChild appends an element to the root composition
func (c *ScreenContext) AddChild(e *Element) {
	c.children = append(c.children, e)
}

// DelChild removes an element by identity, releasing its surfaces
// cascading. No-op if the element is not a root child
func (c *ScreenContext) DelChild(e *Element) {
	for i, cand := range c.children {
		if cand == e {
			c.children = append(c.children[:i], c.children[i+1:]...)
			e.release()
			return
		}
	}
}

// UpdateDimensions re-queries geometry. Called only from the resize path
func (c *ScreenContext) UpdateDimensions() {
	c.width, c.height = c.screen.UpdateSize()
}

// Stop requests loop termination at the next iteration
func (c *ScreenContext) Stop() {
	c.running = false
}
