package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// LineType specifies box drawing character style
type LineType uint8

const (
	LineSingle  LineType = iota // ┌─┐│└┘
	LineDouble                  // ╔═╗║╚╝
	LineRounded                 // ╭─╮│╰╯
	LineHeavy                   // ┏━┓┃┗┛
)

// Box drawing character sets indexed by LineType
var boxChars = [...][6]rune{
	LineSingle:  {'┌', '─', '┐', '│', '└', '┘'},
	LineDouble:  {'╔', '═', '╗', '║', '╚', '╝'},
	LineRounded: {'╭', '─', '╮', '│', '╰', '╯'},
	LineHeavy:   {'┏', '━', '┓', '┃', '┗', '┛'},
}

const (
	boxTL = 0 // top-left
	boxH  = 1 // horizontal
	boxTR = 2 // top-right
	boxV  = 3 // vertical
	boxBL = 4 // bottom-left
	boxBR = 5 // bottom-right
)

// Surface is a movable rectangular drawing region, the opaque handle the
// composition tree hangs elements on. Drawing mutates the surface's own
// cells; nothing reaches the terminal until Refresh + Screen.Flush.
// A surface belongs to exactly one live element for its lifetime.
type Surface struct {
	screen *Screen
	x, y   int
	w, h   int
	cells  []Cell
}

// Origin returns the surface position in screen cells
func (sf *Surface) Origin() (int, int) {
	return sf.x, sf.y
}

// Size returns the surface dimensions
func (sf *Surface) Size() (int, int) {
	return sf.w, sf.h
}

// Move relocates the surface. Takes effect at the next Refresh
func (sf *Surface) Move(x, y int) {
	sf.x, sf.y = x, y
}

// Resize changes dimensions and clears content
func (sf *Surface) Resize(w, h int) {
	if w == sf.w && h == sf.h {
		sf.Clear()
		return
	}
	sf.w, sf.h = w, h
	sf.cells = make([]Cell, w*h)
}

// Release detaches the surface from its screen. The handle must not be
// drawn to afterwards
func (sf *Surface) Release() {
	sf.screen.removeSurface(sf)
	sf.cells = nil
}

// Clear resets every cell to untouched (transparent)
func (sf *Surface) Clear() {
	clear(sf.cells)
}

// Fill paints every cell with a space in the given style
func (sf *Surface) Fill(style tcell.Style) {
	for i := range sf.cells {
		sf.cells[i] = Cell{Rune: ' ', Style: style}
	}
}

// SetCell sets a single cell with bounds checking
func (sf *Surface) SetCell(x, y int, ch rune, style tcell.Style) {
	if x < 0 || x >= sf.w || y < 0 || y >= sf.h {
		return
	}
	sf.cells[y*sf.w+x] = Cell{Rune: ch, Style: style}
}

// DrawText renders text at an offset, truncating at the surface edge.
// Wide runes occupy their full advance
func (sf *Surface) DrawText(x, y int, s string, style tcell.Style) {
	if y < 0 || y >= sf.h {
		return
	}
	col := x
	for _, ch := range s {
		if col >= sf.w {
			break
		}
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if col >= 0 {
			sf.SetCell(col, y, ch, style)
			if w == 2 && col+1 < sf.w {
				sf.SetCell(col+1, y, ' ', style)
			}
		}
		col += w
	}
}

// DrawBorder draws a border around the surface edge
func (sf *Surface) DrawBorder(line LineType, style tcell.Style) {
	if sf.w < 2 || sf.h < 2 {
		return
	}
	if line >= LineType(len(boxChars)) {
		line = LineSingle
	}
	chars := boxChars[line]

	sf.SetCell(0, 0, chars[boxTL], style)
	sf.SetCell(sf.w-1, 0, chars[boxTR], style)
	sf.SetCell(0, sf.h-1, chars[boxBL], style)
	sf.SetCell(sf.w-1, sf.h-1, chars[boxBR], style)

	for x := 1; x < sf.w-1; x++ {
		sf.SetCell(x, 0, chars[boxH], style)
		sf.SetCell(x, sf.h-1, chars[boxH], style)
	}
	for y := 1; y < sf.h-1; y++ {
		sf.SetCell(0, y, chars[boxV], style)
		sf.SetCell(sf.w-1, y, chars[boxV], style)
	}
}

// DrawHLine draws a horizontal rule across the surface at row y
func (sf *Surface) DrawHLine(y int, line LineType, style tcell.Style) {
	if line >= LineType(len(boxChars)) {
		line = LineSingle
	}
	ch := boxChars[line][boxH]
	for x := 0; x < sf.w; x++ {
		sf.SetCell(x, y, ch, style)
	}
}

// DrawVLine draws a vertical rule down the surface at column x
func (sf *Surface) DrawVLine(x int, line LineType, style tcell.Style) {
	if line >= LineType(len(boxChars)) {
		line = LineSingle
	}
	ch := boxChars[line][boxV]
	for y := 0; y < sf.h; y++ {
		sf.SetCell(x, y, ch, style)
	}
}

// DrawLine draws a rule between two points in surface coordinates.
// Axis-aligned runs use box characters, everything else a diagonal rule
func (sf *Surface) DrawLine(x0, y0, x1, y1 int, style tcell.Style) {
	ch := lineRune(x1-x0, y1-y0)

	// Bresenham
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		sf.SetCell(x0, y0, ch, style)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// lineRune picks the rule character for a line's overall direction
func lineRune(dx, dy int) rune {
	switch {
	case dy == 0:
		return '─'
	case dx == 0:
		return '│'
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}

// Refresh blits the surface cells into the screen's composite buffer,
// clipped to screen bounds. Untouched cells are skipped so earlier
// surfaces show through. Surfaces never commit to the terminal themselves
func (sf *Surface) Refresh() {
	s := sf.screen
	for ly := 0; ly < sf.h; ly++ {
		ay := sf.y + ly
		if ay < 0 || ay >= s.height {
			continue
		}
		for lx := 0; lx < sf.w; lx++ {
			ax := sf.x + lx
			if ax < 0 || ax >= s.width {
				continue
			}
			c := sf.cells[ly*sf.w+lx]
			if c.Rune == 0 {
				continue
			}
			s.cells[ay*s.width+ax] = c
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
