package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/patchbay/terminal"
)

// Line is a rule between two screen points: the transient rubber-band of
// an in-progress connect gesture, or a finalized connector. Line elements
// are never hit candidates, so an active rubber-band does not occlude the
// element under the pointer
type Line struct {
	Element *Element

	x0, y0 int
	x1, y1 int
	Style  tcell.Style
}

// NewLine creates a line element spanning (x0,y0)-(x1,y1) in screen cells
func NewLine(scr *terminal.Screen, x0, y0, x1, y1 int, style tcell.Style) *Line {
	l := &Line{x0: x0, y0: y0, x1: x1, y1: y1, Style: style}
	minX, minY, w, h := l.bounds()
	l.Element = newElement(KindLine, scr.NewSurface(w, h, minX, minY), func(e *Element) {
		s := e.Surface()
		ox, oy := s.Origin()
		s.Clear()
		s.DrawLine(l.x0-ox, l.y0-oy, l.x1-ox, l.y1-oy, l.Style)
	})
	l.Element.Widget = l
	return l
}

// Start returns the line origin in screen cells
func (l *Line) Start() (int, int) {
	return l.x0, l.y0
}

// End returns the line endpoint in screen cells
func (l *Line) End() (int, int) {
	return l.x1, l.y1
}

// SetStart moves the line origin, reshaping the surface immediately
func (l *Line) SetStart(x, y int) {
	l.x0, l.y0 = x, y
	l.reshape()
}

// SetEnd moves the line endpoint, reshaping the surface immediately
func (l *Line) SetEnd(x, y int) {
	l.x1, l.y1 = x, y
	l.reshape()
}

// reshape fits the surface to the line's bounding rectangle
func (l *Line) reshape() {
	minX, minY, w, h := l.bounds()
	sf := l.Element.Surface()
	sf.Move(minX, minY)
	sf.Resize(w, h)
}

// bounds returns the bounding rectangle covering both endpoints
func (l *Line) bounds() (minX, minY, w, h int) {
	minX, minY = l.x0, l.y0
	if l.x1 < minX {
		minX = l.x1
	}
	if l.y1 < minY {
		minY = l.y1
	}
	w = l.x0 - l.x1
	if w < 0 {
		w = -w
	}
	h = l.y0 - l.y1
	if h < 0 {
		h = -h
	}
	return minX, minY, w + 1, h + 1
}
