package ui

import "github.com/lixenwraith/patchbay/terminal"

// Kind tags an element for dispatch decisions during hit-testing.
// It carries no polymorphic behavior
type Kind uint8

const (
	KindBox Kind = iota
	KindText
	KindButton
	KindLine
	KindNode
)

// String returns human-readable kind name
func (k Kind) String() string {
	switch k {
	case KindBox:
		return "Box"
	case KindText:
		return "Text"
	case KindButton:
		return "Button"
	case KindLine:
		return "Line"
	case KindNode:
		return "Node"
	}
	return "Unknown"
}

// Flags is the element capability set, checked by value
type Flags uint8

const (
	FlagNone      Flags = 0
	FlagDraggable Flags = 1 << 0
)

// Element is a node in the composition tree. A child belongs to exactly
// one parent's composition for its lifetime, and its surface is never
// shared with another live element. Handlers that need to notify an
// ancestor go through the bus; elements hold no parent pointer.
type Element struct {
	kind     Kind
	Flags    Flags
	surface  *terminal.Surface
	children []*Element

	// Widget points back at the composite widget this element belongs to,
	// when one exists. Identity lookups only, never lifetime control.
	Widget any

	draw func(*Element)
}

// newElement wires a concrete element around an allocated surface
func newElement(kind Kind, sf *terminal.Surface, draw func(*Element)) *Element {
	return &Element{kind: kind, surface: sf, draw: draw}
}

// Type returns the fixed tag established at construction
func (e *Element) Type() Kind {
	return e.kind
}

// Surface returns the element's drawing surface handle
func (e *Element) Surface() *terminal.Surface {
	return e.surface
}

// Children returns the ordered composition list
func (e *Element) Children() []*Element {
	return e.children
}

// AddChild appends to the composition list, taking ownership
func (e *Element) AddChild(c *Element) {
	e.children = append(e.children, c)
}

// RemoveChild drops a child by identity, releasing its surfaces
// cascading. No-op if the child is not in the composition
func (e *Element) RemoveChild(c *Element) {
	for i, cand := range e.children {
		if cand == c {
			e.children = append(e.children[:i], e.children[i+1:]...)
			c.release()
			return
		}
	}
}

// release frees the element's surface and every descendant's
func (e *Element) release() {
	for _, c := range e.children {
		c.release()
	}
	e.children = nil
	e.surface.Release()
}

// Render draws the element's own content and refreshes its surface into
// the frame's composite buffer. Elements never flush individually; the
// renderer commits once per frame
func (e *Element) Render() {
	if e.draw != nil {
		e.draw(e)
	}
	e.surface.Refresh()
}
