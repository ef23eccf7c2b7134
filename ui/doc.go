// Package ui is the composable render/event engine.
//
// Core abstraction is Element, a node in a composition tree: a kind tag,
// a capability flag set, a drawing surface, and owned children. Widget
// behavior is composed from sub-elements and handlers registered on the
// context's EventBus, never from type hierarchies.
//
// A ScreenContext owns the terminal resource, the root composition, and
// the bus. Its Run loop blocks on input, classifies it into resize and
// pointer events, resolves the pointer target by depth-first first-match
// hit-testing, publishes to subscribers, and renders the whole tree with
// one flush per frame. Everything is single-threaded and cooperative:
// handlers run to completion before the next input read, so their
// mutations are atomic with respect to the frame.
//
// Usage pattern:
//
//	scr, _ := terminal.New()
//	ctx, err := ui.NewScreenContext(scr)
//	if err != nil { ... }
//	defer ctx.Close()
//
//	node := ui.NewConnectableNode(ctx, "alpha", 20, 6, 5, 3, ui.DefaultTheme())
//	ctx.AddChild(node.Elem())
//
//	ctx.Run()
package ui
