package engine

import (
	"fmt"

	"github.com/lixenwraith/health-snake/core"
)

// Collision classifies the outcome of a move
type Collision uint8

const (
	CollisionNone Collision = iota
	CollisionWall
	CollisionSelf
)

// String returns the collision name
func (c Collision) String() string {
	switch c {
	case CollisionNone:
		return "none"
	case CollisionWall:
		return "wall"
	case CollisionSelf:
		return "self"
	default:
		return "unknown"
	}
}

// MarshalText encodes the collision by name
func (c Collision) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a collision name
func (c *Collision) UnmarshalText(b []byte) error {
	for k := CollisionNone; k <= CollisionSelf; k++ {
		if k.String() == string(b) {
			*c = k
			return nil
		}
	}
	return fmt.Errorf("unknown collision %q", b)
}

// Snake is the player-controlled body, head at index 0
type Snake struct {
	segments []core.Position
	heading  core.Direction // direction of the last executed move
	pending  core.Direction // direction applied by the next move
}

// NewSnake creates a single-segment snake at start facing heading
func NewSnake(start core.Position, heading core.Direction) *Snake {
	return &Snake{
		segments: []core.Position{start},
		heading:  heading,
		pending:  heading,
	}
}

// Head returns the head position
func (s *Snake) Head() core.Position {
	return s.segments[0]
}

// Len returns the number of segments
func (s *Snake) Len() int {
	return len(s.segments)
}

// Segments returns a copy of the body, head first
func (s *Snake) Segments() []core.Position {
	out := make([]core.Position, len(s.segments))
	copy(out, s.segments)
	return out
}

// Heading returns the direction of the last executed move
func (s *Snake) Heading() core.Direction {
	return s.heading
}

// Pending returns the direction the next move will take
func (s *Snake) Pending() core.Direction {
	return s.pending
}

// Turn requests a direction for the next move
// The exact reverse of the last executed heading is ignored, not queued
func (s *Snake) Turn(dir core.Direction) bool {
	if dir == s.heading.Opposite() {
		return false
	}
	s.pending = dir
	return true
}

// Move advances the head one cell in the pending direction
// Wall and self collisions leave the body untouched; the self check runs against the pre-move body
func (s *Snake) Move(grid core.Grid) (core.Position, Collision) {
	next := s.Head().Step(s.pending)

	if !grid.InBounds(next) {
		return next, CollisionWall
	}
	if core.IsOccupiedBySnake(next, s.segments) {
		return next, CollisionSelf
	}

	// Constant-size translation: shift body toward the tail, dropping the last segment
	copy(s.segments[1:], s.segments[:len(s.segments)-1])
	s.segments[0] = next
	s.heading = s.pending
	return next, CollisionNone
}

// Grow appends a duplicate of the tail, separated naturally by the next move
func (s *Snake) Grow() {
	s.segments = append(s.segments, s.segments[len(s.segments)-1])
}
