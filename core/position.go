package core

// Position indexes a cell of the board grid
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Step returns the neighbouring cell one unit away in dir
func (p Position) Step(dir Direction) Position {
	dx, dy := dir.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// IsOccupiedBySnake reports whether any segment equals p
func IsOccupiedBySnake(p Position, segments []Position) bool {
	for _, s := range segments {
		if s == p {
			return true
		}
	}
	return false
}
