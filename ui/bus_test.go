package ui

import "testing"

func TestPublishOrder(t *testing.T) {
	bus := NewEventBus()
	var order []int
	for i := 1; i <= 3; i++ {
		i := i
		bus.Subscribe(EventClick, func(*Event) { order = append(order, i) })
	}
	bus.Publish(EventClick, &Event{Kind: EventClick})
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("dispatch order = %v, want [1 2 3]", order)
	}
}

func TestUnsubscribeIsolation(t *testing.T) {
	bus := NewEventBus()
	var a, b int
	subA := bus.Subscribe(EventClick, func(*Event) { a++ })
	bus.Subscribe(EventClick, func(*Event) { b++ })

	bus.Unsubscribe(EventClick, subA)
	bus.Publish(EventClick, &Event{Kind: EventClick})
	if a != 0 || b != 1 {
		t.Errorf("after unsubscribe: a=%d b=%d, want 0 1", a, b)
	}
}

func TestUnsubscribeAbsentToken(t *testing.T) {
	bus := NewEventBus()
	sub := bus.Subscribe(EventClick, func(*Event) {})
	bus.Unsubscribe(EventClick, sub)
	bus.Unsubscribe(EventClick, sub) // already removed, silent no-op
	bus.Unsubscribe(EventResize, sub)
	if bus.HandlerCount(EventClick) != 0 {
		t.Errorf("count = %d, want 0", bus.HandlerCount(EventClick))
	}
}

func TestDuplicateHandlerDistinctTokens(t *testing.T) {
	bus := NewEventBus()
	n := 0
	fn := func(*Event) { n++ }
	sub1 := bus.Subscribe(EventClick, fn)
	sub2 := bus.Subscribe(EventClick, fn)
	if sub1 == sub2 {
		t.Fatalf("duplicate subscription returned the same token")
	}

	bus.Publish(EventClick, &Event{Kind: EventClick})
	if n != 2 {
		t.Fatalf("calls = %d, want 2", n)
	}

	bus.Unsubscribe(EventClick, sub1)
	n = 0
	bus.Publish(EventClick, &Event{Kind: EventClick})
	if n != 1 {
		t.Errorf("calls after removing one = %d, want 1", n)
	}
}

func TestPublishNoSubscribers(t *testing.T) {
	bus := NewEventBus()
	bus.Publish(EventMouseup, &Event{Kind: EventMouseup}) // must not panic
}

func TestPayloadSharedAcrossHandlers(t *testing.T) {
	bus := NewEventBus()
	bus.Subscribe(EventResize, func(ev *Event) { ev.Width = 7 })
	var seen int
	bus.Subscribe(EventResize, func(ev *Event) { seen = ev.Width })
	bus.Publish(EventResize, &Event{Kind: EventResize, Width: 1})
	if seen != 7 {
		t.Errorf("second handler saw Width=%d, want 7", seen)
	}
}

func TestUnsubscribeDuringDispatch(t *testing.T) {
	bus := NewEventBus()
	var calls []string
	var subB *Subscription
	bus.Subscribe(EventClick, func(*Event) {
		calls = append(calls, "a")
		bus.Unsubscribe(EventClick, subB)
	})
	subB = bus.Subscribe(EventClick, func(*Event) { calls = append(calls, "b") })

	// In-flight dispatch iterates a snapshot
	bus.Publish(EventClick, &Event{Kind: EventClick})
	if len(calls) != 2 {
		t.Fatalf("first publish calls = %v", calls)
	}
	bus.Publish(EventClick, &Event{Kind: EventClick})
	if len(calls) != 3 || calls[2] != "a" {
		t.Errorf("second publish calls = %v, want [a b a]", calls)
	}
}
