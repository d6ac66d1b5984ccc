package core

// Grid is the playable area, Width x Height cells
type Grid struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// NewGrid derives a square grid from board and cell edge lengths
func NewGrid(boardSize, cellSize int) Grid {
	if cellSize <= 0 {
		return Grid{}
	}
	n := boardSize / cellSize
	return Grid{Width: n, Height: n}
}

// InBounds reports whether p lies inside the grid
func (g Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells returns the total number of cells
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Center returns the middle cell, rounding toward the bottom-right
func (g Grid) Center() Position {
	return Position{X: g.Width / 2, Y: g.Height / 2}
}
