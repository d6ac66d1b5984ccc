package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/health-snake/core"
	"github.com/lixenwraith/health-snake/engine"
)

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, function keys)
	SpecialKeys map[tcell.Key]Intent

	// Printable rune bindings
	Runes map[rune]Intent
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyCtrlC:  {Type: IntentQuit},
			tcell.KeyEscape: {Type: IntentQuit},
			tcell.KeyCtrlS:  {Type: IntentToggleMute},
			tcell.KeyF2:     {Type: IntentToggleDebug},
			tcell.KeyEnter:  {Type: IntentConfirm},
			tcell.KeyUp:     {Type: IntentTurn, Direction: core.DirUp},
			tcell.KeyDown:   {Type: IntentTurn, Direction: core.DirDown},
			tcell.KeyLeft:   {Type: IntentTurn, Direction: core.DirLeft},
			tcell.KeyRight:  {Type: IntentTurn, Direction: core.DirRight},
		},
		Runes: map[rune]Intent{
			'q': {Type: IntentQuit},
			' ': {Type: IntentPause},
			'p': {Type: IntentPause},
			'm': {Type: IntentMenu},
			'1': {Type: IntentDifficulty, Difficulty: engine.DifficultyEasy},
			'2': {Type: IntentDifficulty, Difficulty: engine.DifficultyMedium},
			'3': {Type: IntentDifficulty, Difficulty: engine.DifficultyHard},
			'k': {Type: IntentTurn, Direction: core.DirUp},
			'j': {Type: IntentTurn, Direction: core.DirDown},
			'h': {Type: IntentTurn, Direction: core.DirLeft},
			'l': {Type: IntentTurn, Direction: core.DirRight},
			'w': {Type: IntentTurn, Direction: core.DirUp},
			's': {Type: IntentTurn, Direction: core.DirDown},
			'a': {Type: IntentTurn, Direction: core.DirLeft},
			'd': {Type: IntentTurn, Direction: core.DirRight},
		},
	}
}

// Resolve maps a terminal event to an intent, IntentNone when unbound
func (kt *KeyTable) Resolve(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyRune {
			return kt.Runes[ev.Rune()]
		}
		return kt.SpecialKeys[ev.Key()]
	}
	return Intent{}
}

// Merge applies non-nil override sections onto a copy of the table
// An override bound to "none" removes the key
func (kt *KeyTable) Merge(override *KeyTable) *KeyTable {
	out := &KeyTable{
		SpecialKeys: make(map[tcell.Key]Intent, len(kt.SpecialKeys)),
		Runes:       make(map[rune]Intent, len(kt.Runes)),
	}
	for k, v := range kt.SpecialKeys {
		out.SpecialKeys[k] = v
	}
	for r, v := range kt.Runes {
		out.Runes[r] = v
	}
	if override == nil {
		return out
	}
	for k, v := range override.SpecialKeys {
		if v.Type == IntentNone {
			delete(out.SpecialKeys, k)
			continue
		}
		out.SpecialKeys[k] = v
	}
	for r, v := range override.Runes {
		if v.Type == IntentNone {
			delete(out.Runes, r)
			continue
		}
		out.Runes[r] = v
	}
	return out
}
