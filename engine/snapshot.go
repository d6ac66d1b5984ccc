package engine

import (
	"time"

	"github.com/lixenwraith/health-snake/core"
)

// Popup is the fact overlay that gates ticking until dismissed
type Popup struct {
	Title string `json:"title"`
	Item  Item   `json:"item"`
}

// Snapshot is a read-only copy of session state for presentation layers
type Snapshot struct {
	SessionID    string          `json:"session_id"`
	State        SessionState    `json:"state"`
	Tick         uint64          `json:"tick"`
	Grid         core.Grid       `json:"grid"`
	Snake        []core.Position `json:"snake"`
	Heading      core.Direction  `json:"heading"`
	Items        []Item          `json:"items"`
	Score        int             `json:"score"`
	Collected    int             `json:"collected"`
	Progress     float64         `json:"progress"`
	Popup        *Popup          `json:"popup,omitempty"`
	RecentFacts  []FactEntry     `json:"recent_facts"`
	Difficulty   Difficulty      `json:"difficulty"`
	Selected     Difficulty      `json:"selected_difficulty"`
	TickInterval time.Duration   `json:"tick_interval"`
	Compatible   bool            `json:"compatible"`
	EndCause     Collision       `json:"end_cause,omitempty"`
}

// PopupVisible reports whether the fact popup is open
func (s Snapshot) PopupVisible() bool {
	return s.Popup != nil
}

// DifficultyText names the active tick period
func (s Snapshot) DifficultyText() string {
	return DifficultyText(s.TickInterval)
}

// CollectionProgress returns percent of the collection goal reached, capped at 100
func CollectionProgress(collected, goal int) float64 {
	if goal <= 0 {
		return 100
	}
	p := float64(collected) / float64(goal) * 100
	if p > 100 {
		return 100
	}
	return p
}
