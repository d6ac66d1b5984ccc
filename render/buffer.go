package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
)

// Buffer is a cell grid composed off-screen and flushed to a tcell screen in one pass
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a buffer with the specified dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *Buffer) Resize(width, height int) {
	size := max(width, 0) * max(height, 0)
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = max(width, 0)
	b.height = max(height, 0)
	b.Clear()
}

// Size returns the buffer dimensions
func (b *Buffer) Size() (int, int) {
	return b.width, b.height
}

// Clear resets all cells to blank on the background color
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Style: StyleDefault}
	// Exponential copy
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set writes one grapheme at (x, y); a double-width grapheme also claims x+1
func (b *Buffer) Set(x, y int, text string, style tcell.Style) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx] = Cell{Text: text, Style: style}
	if lipgloss.Width(text) > 1 && x+1 < b.width {
		b.cells[idx+1] = Cell{Style: style, cont: true}
	}
}

// Fill paints a rectangle with a single grapheme
func (b *Buffer) Fill(x, y, w, h int, text string, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			b.Set(col, row, text, style)
		}
	}
}

// Text writes s starting at (x, y) and returns the number of columns used
// Zero-width runes join the preceding cell; writing stops at maxWidth columns when maxWidth > 0
func (b *Buffer) Text(x, y int, s string, style tcell.Style, maxWidth int) int {
	col := 0
	last := -1
	for _, r := range s {
		w := lipgloss.Width(string(r))
		if w == 0 {
			if last >= 0 && b.inBounds(last, y) {
				b.cells[y*b.width+last].Text += string(r)
			}
			continue
		}
		if maxWidth > 0 && col+w > maxWidth {
			break
		}
		b.Set(x+col, y, string(r), style)
		last = x + col
		col += w
	}
	return col
}

// Box draws a single-line frame with its top-left corner at (x, y)
func (b *Buffer) Box(x, y, w, h int, style tcell.Style) {
	if w < 2 || h < 2 {
		return
	}
	for col := x + 1; col < x+w-1; col++ {
		b.Set(col, y, "─", style)
		b.Set(col, y+h-1, "─", style)
	}
	for row := y + 1; row < y+h-1; row++ {
		b.Set(x, row, "│", style)
		b.Set(x+w-1, row, "│", style)
	}
	b.Set(x, y, "┌", style)
	b.Set(x+w-1, y, "┐", style)
	b.Set(x, y+h-1, "└", style)
	b.Set(x+w-1, y+h-1, "┘", style)
}

// Cell returns the cell at (x, y), zero Cell when out of bounds
func (b *Buffer) Cell(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// Row returns the visible text of row y, blanks as spaces
func (b *Buffer) Row(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	for x := 0; x < b.width; x++ {
		c := b.cells[y*b.width+x]
		switch {
		case c.cont:
		case c.Text == "":
			sb.WriteByte(' ')
		default:
			sb.WriteString(c.Text)
		}
	}
	return sb.String()
}

// Contains reports whether any row contains s
func (b *Buffer) Contains(s string) bool {
	for y := 0; y < b.height; y++ {
		if strings.Contains(b.Row(y), s) {
			return true
		}
	}
	return false
}

// Flush writes the buffer to screen; continuation columns are left to the wide grapheme before them
func (b *Buffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			if c.cont {
				continue
			}
			if c.Text == "" {
				screen.SetContent(x, y, ' ', nil, c.Style)
				continue
			}
			runes := []rune(c.Text)
			screen.SetContent(x, y, runes[0], runes[1:], c.Style)
		}
	}
}
