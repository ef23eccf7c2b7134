package ui

// Hit is a resolved hit-test target and the pointer offset inside its
// rectangle. The offset preserves the grab point across a drag
type Hit struct {
	Element          *Element
	OffsetX, OffsetY int
}

// hitTest finds the topmost element containing (x, y): depth-first,
// children before parent, first match wins. A match in a descendant
// short-circuits remaining siblings and ancestors by early return.
// Only Box, Text, Button and Node elements are candidates; lines are
// never hit-tested. Containment is inclusive of all four edges:
// [origin, origin+size] on both axes
func hitTest(elems []*Element, x, y int) (Hit, bool) {
	for _, e := range elems {
		if len(e.children) > 0 {
			if h, ok := hitTest(e.children, x, y); ok {
				return h, true
			}
		}
		switch e.kind {
		case KindBox, KindText, KindButton, KindNode:
		default:
			continue
		}
		ox, oy := e.surface.Origin()
		w, h := e.surface.Size()
		if x >= ox && x <= ox+w && y >= oy && y <= oy+h {
			return Hit{Element: e, OffsetX: x - ox, OffsetY: y - oy}, true
		}
	}
	return Hit{}, false
}
