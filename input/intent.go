package input

import (
	"github.com/lixenwraith/health-snake/core"
	"github.com/lixenwraith/health-snake/engine"
)

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // q, Esc, Ctrl+C
	IntentToggleMute // Ctrl+S
	IntentResize     // Terminal resize event

	// Gameplay
	IntentTurn        // Arrows, h/j/k/l, w/a/s/d
	IntentPause       // Space, p
	IntentConfirm     // Enter: start from menu or game over, close popup while playing
	IntentMenu        // m
	IntentDifficulty  // 1, 2, 3
	IntentToggleDebug // F2
)

// Intent is one resolved action with its payload
type Intent struct {
	Type       IntentType
	Direction  core.Direction
	Difficulty engine.Difficulty
}

// String returns the action name of the intent type
func (t IntentType) String() string {
	switch t {
	case IntentQuit:
		return "quit"
	case IntentToggleMute:
		return "toggle_mute"
	case IntentResize:
		return "resize"
	case IntentTurn:
		return "turn"
	case IntentPause:
		return "pause"
	case IntentConfirm:
		return "confirm"
	case IntentMenu:
		return "menu"
	case IntentDifficulty:
		return "difficulty"
	case IntentToggleDebug:
		return "toggle_debug"
	default:
		return "none"
	}
}
