package input

import (
	"github.com/lixenwraith/health-snake/core"
	"github.com/lixenwraith/health-snake/engine"
)

// actionRegistry maps canonical action names to intents
// Used by the keymap config loader to resolve action strings to bindings
var actionRegistry map[string]Intent

func init() {
	actionRegistry = buildActionRegistry()
}

func buildActionRegistry() map[string]Intent {
	return map[string]Intent{
		// Unbind sentinel
		"none": {},

		// System
		"quit":         {Type: IntentQuit},
		"toggle_mute":  {Type: IntentToggleMute},
		"toggle_debug": {Type: IntentToggleDebug},

		// Steering
		"turn_up":    {Type: IntentTurn, Direction: core.DirUp},
		"turn_down":  {Type: IntentTurn, Direction: core.DirDown},
		"turn_left":  {Type: IntentTurn, Direction: core.DirLeft},
		"turn_right": {Type: IntentTurn, Direction: core.DirRight},

		// Session
		"pause":   {Type: IntentPause},
		"confirm": {Type: IntentConfirm},
		"menu":    {Type: IntentMenu},

		// Difficulty selection
		"difficulty_easy":   {Type: IntentDifficulty, Difficulty: engine.DifficultyEasy},
		"difficulty_medium": {Type: IntentDifficulty, Difficulty: engine.DifficultyMedium},
		"difficulty_hard":   {Type: IntentDifficulty, Difficulty: engine.DifficultyHard},
	}
}

// ActionNames returns every bindable action name
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		names = append(names, name)
	}
	return names
}
