package ui

import "github.com/lixenwraith/patchbay/terminal"

// NodeState tracks the connectable node's interaction machine
type NodeState uint8

const (
	NodeIdle     NodeState = iota // no connector gesture, not dragging
	NodeDragging                  // pointer is repositioning the node
	NodeDrawing                   // rubber-band line follows the pointer
)

// String returns human-readable state name
func (s NodeState) String() string {
	switch s {
	case NodeDragging:
		return "Dragging"
	case NodeDrawing:
		return "Drawing"
	}
	return "Idle"
}

// Connection is a finalized connector between two nodes. The line element
// lives in the source node's composition (a child has exactly one
// parent); both endpoints list the connection so either can detach it
type Connection struct {
	From *ConnectableNode
	To   *ConnectableNode
	Line *Line
}

// ConnectableNode is a draggable, labeled box with a close control and a
// connector handle. Pressing the handle starts a rubber-band line that
// follows the pointer; releasing over another node promotes it into a
// permanent connector; pressing over empty space discards it. All of its
// behavior is composed from bus handlers — the engine knows nothing about
// nodes beyond the Node kind tag
type ConnectableNode struct {
	ctx   *ScreenContext
	theme Theme

	frame  *Element // KindNode, draggable
	close  *Element
	handle *Element

	title string
	x, y  int
	w, h  int

	hover bool
	state NodeState
	line  *Line // rubber-band; nil unless state == NodeDrawing
	conns []*Connection

	subs []*Subscription

	// OnConnect, when set, fires after a connection is finalized with
	// this node as either endpoint
	OnConnect func(*Connection)
}

// NewConnectableNode creates a node and registers its handlers on the
// context's bus. The caller attaches the element with ctx.AddChild
func NewConnectableNode(ctx *ScreenContext, title string, w, h, x, y int, theme Theme) *ConnectableNode {
	n := &ConnectableNode{
		ctx:   ctx,
		theme: theme,
		title: title,
		x:     x,
		y:     y,
		w:     w,
		h:     h,
	}

	scr := ctx.Screen()
	n.frame = newElement(KindNode, scr.NewSurface(w, h, x, y), n.drawFrame)
	n.frame.Flags |= FlagDraggable
	n.frame.Widget = n

	n.close = newElement(KindButton, scr.NewSurface(1, 1, x+w-2, y+1), func(e *Element) {
		e.Surface().SetCell(0, 0, '✕', n.theme.Close)
	})
	n.close.Widget = n

	n.handle = newElement(KindButton, scr.NewSurface(1, 1, x+w-2, y+h/2), func(e *Element) {
		e.Surface().SetCell(0, 0, '◉', n.theme.Handle)
	})
	n.handle.Widget = n

	n.frame.AddChild(n.close)
	n.frame.AddChild(n.handle)

	bus := ctx.Bus()
	n.subs = []*Subscription{
		bus.Subscribe(EventMousedown, n.onMousedown),
		bus.Subscribe(EventMousemove, n.onMousemove),
		bus.Subscribe(EventMouseup, n.onMouseup),
		bus.Subscribe(EventClick, n.onClick),
	}
	return n
}

// Elem returns the node's root element for composition
func (n *ConnectableNode) Elem() *Element {
	return n.frame
}

// Title returns the node's label
func (n *ConnectableNode) Title() string {
	return n.title
}

// Position returns the node's top-left corner in screen cells
func (n *ConnectableNode) Position() (int, int) {
	return n.x, n.y
}

// State returns the current interaction state
func (n *ConnectableNode) State() NodeState {
	return n.state
}

// Connections returns the finalized connections touching this node
func (n *ConnectableNode) Connections() []*Connection {
	return n.conns
}

// drawFrame renders border and title. The interior stays untouched so
// the close control, handle and lines composited earlier show through
func (n *ConnectableNode) drawFrame(e *Element) {
	s := e.Surface()
	s.Clear()
	style := n.theme.NodeBorder
	if n.hover {
		style = n.theme.NodeHover
	}
	s.DrawBorder(terminal.LineSingle, style)
	if n.w > 4 {
		s.DrawText(2, 0, " "+n.title+" ", n.theme.NodeTitle)
	}
}

// handleOrigin returns the connector handle position in screen cells
func (n *ConnectableNode) handleOrigin() (int, int) {
	return n.handle.Surface().Origin()
}

// onMousedown starts a connector from the handle, or discards an active
// one when the press resolves to no element ("clicked empty space")
func (n *ConnectableNode) onMousedown(ev *Event) {
	p := ev.Pointer
	switch {
	case p.Element == n.handle && n.line == nil:
		// Origin fixed at the current pointer position
		n.line = NewLine(n.ctx.Screen(), p.X, p.Y, p.X, p.Y, n.theme.RubberBand)
		n.frame.AddChild(n.line.Element)
		n.state = NodeDrawing

	case n.line != nil && p.Element == nil:
		n.frame.RemoveChild(n.line.Element)
		n.line = nil
		n.state = NodeIdle
	}
}

// onMousemove advances the rubber-band toward the pointer and implements
// the drag transition: while this node is the resolved target, position
// follows pointer minus the grab offset, and every sub-element relocates
// in lockstep
func (n *ConnectableNode) onMousemove(ev *Event) {
	p := ev.Pointer

	ox, oy := n.frame.Surface().Origin()
	fw, fh := n.frame.Surface().Size()
	n.hover = p.X >= ox && p.X <= ox+fw && p.Y >= oy && p.Y <= oy+fh

	if n.line != nil && p.Element == nil {
		n.line.SetEnd(p.X, p.Y)
	}

	if p.Element == n.frame {
		if n.state != NodeDrawing {
			n.state = NodeDragging
		}
		n.MoveTo(p.X-p.OffsetX, p.Y-p.OffsetY)
	}
}

// onMouseup finalizes the connect gesture: the release position is
// re-resolved against the tree (the same resolve-compare-commit shape as
// dragging), and releasing over a different node commits the rubber-band
// into a permanent connector recorded in both nodes' connection lists.
// Releasing over empty space or a non-node element leaves the line
// rubber-banding; cancel is the mousedown-over-empty-space path
func (n *ConnectableNode) onMouseup(ev *Event) {
	p := ev.Pointer

	if n.state == NodeDragging {
		n.state = NodeIdle
	}
	if n.line == nil || n.state != NodeDrawing {
		return
	}

	h, ok := hitTest(n.ctx.Children(), p.X, p.Y)
	if !ok {
		return
	}
	peer := nodeOf(h.Element)
	if peer == nil || peer == n {
		return
	}

	line := n.line
	n.line = nil
	n.state = NodeIdle

	line.Style = n.theme.Line
	sx, sy := n.handleOrigin()
	ex, ey := peer.handleOrigin()
	line.SetStart(sx, sy)
	line.SetEnd(ex, ey)

	conn := &Connection{From: n, To: peer, Line: line}
	n.conns = append(n.conns, conn)
	peer.conns = append(peer.conns, conn)

	if n.OnConnect != nil {
		n.OnConnect(conn)
	}
	if peer.OnConnect != nil {
		peer.OnConnect(conn)
	}
}

// onClick deletes the node when its close control is the click target
func (n *ConnectableNode) onClick(ev *Event) {
	if ev.Pointer.Element == n.close {
		n.Delete()
	}
}

// MoveTo repositions the node: frame, close control, handle and every
// attached connector move immediately, so the next render reflects the
// new geometry without extra bookkeeping
func (n *ConnectableNode) MoveTo(x, y int) {
	n.x, n.y = x, y
	n.frame.Surface().Move(x, y)
	n.close.Surface().Move(x+n.w-2, y+1)
	n.handle.Surface().Move(x+n.w-2, y+n.h/2)
	n.retether()
}

// retether re-anchors finalized connectors to both handles
func (n *ConnectableNode) retether() {
	for _, conn := range n.conns {
		sx, sy := conn.From.handleOrigin()
		ex, ey := conn.To.handleOrigin()
		conn.Line.SetStart(sx, sy)
		conn.Line.SetEnd(ex, ey)
	}
}

// Delete removes the node from the root composition, detaches its
// connections from both endpoints, and unsubscribes its handlers
func (n *ConnectableNode) Delete() {
	for _, conn := range n.conns {
		if conn.From != n {
			// Peer owns the line element; drop it from the peer's tree
			conn.From.frame.RemoveChild(conn.Line.Element)
		}
		peer := conn.From
		if peer == n {
			peer = conn.To
		}
		peer.dropConn(conn)
	}
	n.conns = nil
	n.line = nil

	for _, sub := range n.subs {
		n.ctx.Bus().Unsubscribe(sub.kind, sub)
	}
	n.subs = nil

	// Releases the frame's surface and every descendant's, including
	// lines this node owns
	n.ctx.DelChild(n.frame)
}

// dropConn removes a connection by identity
func (n *ConnectableNode) dropConn(conn *Connection) {
	for i, cand := range n.conns {
		if cand == conn {
			n.conns = append(n.conns[:i], n.conns[i+1:]...)
			return
		}
	}
}

// nodeOf resolves the node a hit element belongs to, nil for anything
// else. Identity only; every element of a node carries the back-reference
func nodeOf(e *Element) *ConnectableNode {
	if e == nil {
		return nil
	}
	if n, ok := e.Widget.(*ConnectableNode); ok {
		return n
	}
	return nil
}
