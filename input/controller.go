package input

import (
	"log/slog"

	"github.com/lixenwraith/health-snake/core"
	"github.com/lixenwraith/health-snake/engine"
)

// Session is the subset of engine.Session driven by player input
type Session interface {
	StartGame() error
	Turn(dir core.Direction)
	TogglePause()
	ClosePopup()
	ReturnToMenu()
	SetDifficulty(d engine.Difficulty)
	Snapshot() engine.Snapshot
}

// Controller applies intents to a session
// Enter is context dependent: it dismisses an open popup, otherwise starts a game from the menu or game over screen
type Controller struct {
	session Session

	// OnToggleMute and OnToggleDebug are invoked for the matching intents when set
	OnToggleMute  func()
	OnToggleDebug func()
}

// NewController creates a controller over session
func NewController(session Session) *Controller {
	return &Controller{session: session}
}

// Apply executes one intent, returning true when the application should exit
func (c *Controller) Apply(in Intent) (quit bool) {
	switch in.Type {
	case IntentQuit:
		return true
	case IntentTurn:
		c.session.Turn(in.Direction)
	case IntentPause:
		c.session.TogglePause()
	case IntentConfirm:
		snap := c.session.Snapshot()
		switch {
		case snap.PopupVisible():
			c.session.ClosePopup()
		case snap.State == engine.StateIdle || snap.State == engine.StateGameOver:
			if err := c.session.StartGame(); err != nil {
				slog.Warn("start refused", "error", err)
			}
		}
	case IntentMenu:
		c.session.ReturnToMenu()
	case IntentDifficulty:
		c.session.SetDifficulty(in.Difficulty)
	case IntentToggleMute:
		if c.OnToggleMute != nil {
			c.OnToggleMute()
		}
	case IntentToggleDebug:
		if c.OnToggleDebug != nil {
			c.OnToggleDebug()
		}
	}
	return false
}
