package engine

import "fmt"

// EventType represents the type of session event
type EventType int

const (
	// EventSessionStarted signals a fresh session
	// Trigger: StartGame | Consumer: audio, spectators
	EventSessionStarted EventType = iota

	// EventTick signals one simulation step advanced the snake
	// Trigger: Tick while Running without popup | Consumer: spectators
	EventTick

	// EventItemCollected signals the head reached an item
	// Trigger: Tick | Consumer: audio, spectators | Item: collected item
	EventItemCollected

	// EventPaused and EventResumed signal the pause toggle
	EventPaused
	EventResumed

	// EventPopupClosed signals the fact popup was acknowledged and ticking resumes
	EventPopupClosed

	// EventGameOver signals a wall or self collision
	// Trigger: Tick | Consumer: audio, report, spectators | Cause: collision kind
	EventGameOver

	// EventReturnedToMenu signals the session was discarded
	EventReturnedToMenu

	// EventDifficultyChanged signals a new level selection for the next session
	EventDifficultyChanged
)

// String returns the event name
func (e EventType) String() string {
	switch e {
	case EventSessionStarted:
		return "session_started"
	case EventTick:
		return "tick"
	case EventItemCollected:
		return "item_collected"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	case EventPopupClosed:
		return "popup_closed"
	case EventGameOver:
		return "game_over"
	case EventReturnedToMenu:
		return "returned_to_menu"
	case EventDifficultyChanged:
		return "difficulty_changed"
	default:
		return "unknown"
	}
}

// MarshalText encodes the event type by name
func (e EventType) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText decodes an event type name
func (e *EventType) UnmarshalText(b []byte) error {
	for t := EventSessionStarted; t <= EventDifficultyChanged; t++ {
		if t.String() == string(b) {
			*e = t
			return nil
		}
	}
	return fmt.Errorf("unknown event type %q", b)
}

// Event is emitted after each session state change, outside the session lock
type Event struct {
	Type       EventType  `json:"type"`
	SessionID  string     `json:"session_id"`
	Tick       uint64     `json:"tick"`
	Score      int        `json:"score"`
	Collected  int        `json:"collected"`
	Difficulty Difficulty `json:"difficulty"`
	Item       *Item      `json:"item,omitempty"`
	Cause      Collision  `json:"cause,omitempty"`
}

// Listener receives session events
// Listeners run synchronously on the goroutine that caused the event and may call back into the session
type Listener func(Event)
