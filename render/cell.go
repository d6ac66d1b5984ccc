package render

import "github.com/gdamore/tcell/v2"

// Cell is one terminal column of the render buffer
// Text holds a grapheme (base rune plus combining runes); wide graphemes own the next column as a continuation
type Cell struct {
	Text  string
	Style tcell.Style
	cont  bool
}
