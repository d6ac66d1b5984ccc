package engine

import "fmt"

// SessionState is the lifecycle phase of a game session
type SessionState uint8

const (
	StateIdle SessionState = iota
	StateRunning
	StatePaused
	StateGameOver
)

// String returns the name of the state
func (s SessionState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRunning:
		return "Running"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// MarshalText encodes the state by name
func (s SessionState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a state name
func (s *SessionState) UnmarshalText(b []byte) error {
	for st := StateIdle; st <= StateGameOver; st++ {
		if st.String() == string(b) {
			*s = st
			return nil
		}
	}
	return fmt.Errorf("unknown session state %q", b)
}

var validTransitions = map[SessionState][]SessionState{
	StateIdle:     {StateRunning},
	StateRunning:  {StateRunning, StatePaused, StateGameOver, StateIdle},
	StatePaused:   {StateRunning, StateIdle},
	StateGameOver: {StateRunning, StateIdle},
}

// CanTransition checks whether moving from one state to another is allowed
func CanTransition(from, to SessionState) bool {
	for _, s := range validTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
