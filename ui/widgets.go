package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/patchbay/terminal"
)

// NewBox creates an empty bordered box element
func NewBox(scr *terminal.Screen, w, h, x, y int, draggable bool, style tcell.Style) *Element {
	e := newElement(KindBox, scr.NewSurface(w, h, x, y), func(e *Element) {
		s := e.Surface()
		s.Clear()
		s.DrawBorder(terminal.LineSingle, style)
	})
	if draggable {
		e.Flags |= FlagDraggable
	}
	return e
}

// Label is a borderless text element. Text is mutable; the next frame
// picks the change up without extra bookkeeping
type Label struct {
	Element *Element

	Text       string
	OffX, OffY int
	Style      tcell.Style
}

// NewLabel creates a text element rendering Text line by line
func NewLabel(scr *terminal.Screen, text string, w, h, x, y int, style tcell.Style) *Label {
	l := &Label{Text: text, Style: style}
	l.Element = newElement(KindText, scr.NewSurface(w, h, x, y), func(e *Element) {
		s := e.Surface()
		s.Clear()
		for i, line := range strings.Split(l.Text, "\n") {
			s.DrawText(l.OffX, l.OffY+i, line, l.Style)
		}
	})
	l.Element.Widget = l
	return l
}

// Button is a bordered box with a centered label. Activation is composed
// on the bus via OnClick, not built into the element
type Button struct {
	Element *Element

	Label string
	Style tcell.Style
	Fill  tcell.Style
}

// NewButton creates a button element
func NewButton(scr *terminal.Screen, label string, w, h, x, y int, theme Theme) *Button {
	b := &Button{Label: label, Style: theme.Button, Fill: theme.ButtonFill}
	b.Element = newElement(KindButton, scr.NewSurface(w, h, x, y), func(e *Element) {
		s := e.Surface()
		sw, sh := s.Size()
		s.Fill(b.Fill)
		s.DrawBorder(terminal.LineSingle, b.Style)
		s.DrawText((sw-len(b.Label))/2, sh/2, b.Label, b.Style)
	})
	b.Element.Widget = b
	return b
}

// OnClick subscribes fn to Click events that resolve to this button
func (b *Button) OnClick(c *ScreenContext, fn func()) *Subscription {
	return c.bus.Subscribe(EventClick, func(ev *Event) {
		if ev.Pointer != nil && ev.Pointer.Element == b.Element {
			fn()
		}
	})
}
