package ui

// EventKind enumerates the kinds the engine publishes
type EventKind uint8

const (
	EventResize EventKind = iota
	EventMousemove
	EventMousedown
	EventMouseup
	EventClick
)

// String returns human-readable kind name
func (k EventKind) String() string {
	switch k {
	case EventResize:
		return "Resize"
	case EventMousemove:
		return "Mousemove"
	case EventMousedown:
		return "Mousedown"
	case EventMouseup:
		return "Mouseup"
	case EventClick:
		return "Click"
	}
	return "Unknown"
}

// PointerState is the shared pointer payload: position in screen cells,
// the grab offset inside the current target, and the target element
// itself. The element reference is identity-only; the composition tree
// owns lifetime
type PointerState struct {
	X, Y             int
	OffsetX, OffsetY int
	Element          *Element
}

// Event is the payload handed to handlers. Pointer kinds carry the
// context's PointerState by pointer, so a handler's mutation is visible
// to the handlers dispatched after it
type Event struct {
	Kind EventKind

	// Resize fields
	Width  int
	Height int

	// Pointer kinds only
	Pointer *PointerState
}

// Handler processes one published event. Handlers must not panic; the
// bus provides no error channel
type Handler func(*Event)

// Subscription is the caller-opaque token identifying one registration.
// It is the registration record itself, so subscribing the same handler
// twice yields two distinct tokens and unsubscribing removes exactly the
// registration the token came from
type Subscription struct {
	kind EventKind
	fn   Handler
}

// EventBus maps event kinds to ordered subscriber lists. One bus per
// ScreenContext; handlers are closures into elements and must not
// outlive the elements they capture — a caller responsibility the bus
// does not enforce
type EventBus struct {
	handlers map[EventKind][]*Subscription
}

// NewEventBus creates an empty bus
func NewEventBus() *EventBus {
	return &EventBus{handlers: make(map[EventKind][]*Subscription)}
}

// Subscribe appends a handler for kind and returns its token
func (b *EventBus) Subscribe(kind EventKind, fn Handler) *Subscription {
	sub := &Subscription{kind: kind, fn: fn}
	b.handlers[kind] = append(b.handlers[kind], sub)
	return sub
}

// Unsubscribe removes the matching registration. No-op, not an error,
// when the token is absent
func (b *EventBus) Unsubscribe(kind EventKind, sub *Subscription) {
	subs := b.handlers[kind]
	for i, cand := range subs {
		if cand == sub {
			b.handlers[kind] = append(subs[:i], subs[i+1:]...)
			return
		}
	}
}

// Publish invokes every registered handler for kind in subscription
// order. Dispatch iterates a snapshot: an unsubscribe performed inside a
// handler takes effect from the next publish and never disturbs the
// in-flight iteration. No subscribers is a silent no-op
func (b *EventBus) Publish(kind EventKind, ev *Event) {
	subs := b.handlers[kind]
	if len(subs) == 0 {
		return
	}
	snapshot := make([]*Subscription, len(subs))
	copy(snapshot, subs)
	for _, sub := range snapshot {
		sub.fn(ev)
	}
}

// HandlerCount returns the number of registrations for kind
func (b *EventBus) HandlerCount(kind EventKind) int {
	return len(b.handlers[kind])
}
