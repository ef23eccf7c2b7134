package ui

// Render draws the whole composition: one invalidate before the
// traversal, one flush after, regardless of tree size. Per-widget
// flushing would flicker
func (c *ScreenContext) Render() {
	c.screen.Invalidate()
	renderTree(c.children)
	c.screen.Flush()
}

// renderTree walks depth-first, children before the element's own render,
// so a composite widget's decorations layer over its structural
// sub-elements. Every element renders exactly once per traversal
func renderTree(elems []*Element) {
	for _, e := range elems {
		if len(e.children) > 0 {
			renderTree(e.children)
		}
		e.Render()
	}
}
