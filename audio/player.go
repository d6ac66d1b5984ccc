package audio

import (
	"sync/atomic"

	"github.com/lixenwraith/health-snake/engine"
)

//go:generate go tool mockgen -destination=./mocks/player_mock.go -package=mocks . Player

// Player plays gameplay cues
type Player interface {
	PlayCollect(points int)
	PlayGameOver()
	PlayPause(paused bool)
	PlayStart()
}

// Feedback maps session events to sound cues
type Feedback struct {
	player  Player
	enabled atomic.Bool
}

// NewFeedback creates enabled feedback over player
func NewFeedback(player Player) *Feedback {
	f := &Feedback{player: player}
	f.enabled.Store(true)
	return f
}

// SetEnabled turns cue playback on or off
func (f *Feedback) SetEnabled(on bool) {
	f.enabled.Store(on)
}

// Enabled reports whether cues are played
func (f *Feedback) Enabled() bool {
	return f.enabled.Load()
}

// Handle is an engine.Listener
func (f *Feedback) Handle(ev engine.Event) {
	if f.player == nil || !f.enabled.Load() {
		return
	}
	switch ev.Type {
	case engine.EventSessionStarted:
		f.player.PlayStart()
	case engine.EventItemCollected:
		points := 0
		if ev.Item != nil {
			points = ev.Item.Points
		}
		f.player.PlayCollect(points)
	case engine.EventGameOver:
		f.player.PlayGameOver()
	case engine.EventPaused:
		f.player.PlayPause(true)
	case engine.EventResumed:
		f.player.PlayPause(false)
	}
}
