// Package report collects finished sessions and renders an end-of-run summary
package report

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lixenwraith/health-snake/engine"
)

// Outcome records how a session ended
type Outcome string

const (
	OutcomeWall      Outcome = "hit wall"
	OutcomeSelf      Outcome = "hit self"
	OutcomeMenu      Outcome = "left to menu"
	OutcomeRestarted Outcome = "restarted"
	OutcomeQuit      Outcome = "quit"
)

// Entry is one played session
type Entry struct {
	SessionID  string
	Difficulty engine.Difficulty
	Score      int
	Collected  int
	Ticks      uint64
	Outcome    Outcome
	Started    time.Time
	Duration   time.Duration
}

// Recorder turns engine events into entries; safe for concurrent listeners
type Recorder struct {
	mu      sync.Mutex
	now     func() time.Time
	open    *Entry
	entries []Entry
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{now: time.Now}
}

// Listener returns the engine listener feeding the recorder
func (r *Recorder) Listener() engine.Listener {
	return r.Handle
}

// Handle consumes one engine event
func (r *Recorder) Handle(ev engine.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch ev.Type {
	case engine.EventSessionStarted:
		if r.open != nil {
			r.closeLocked(OutcomeRestarted)
		}
		r.open = &Entry{
			SessionID:  ev.SessionID,
			Difficulty: ev.Difficulty,
			Started:    r.now(),
		}
	case engine.EventTick, engine.EventItemCollected:
		r.updateLocked(ev)
	case engine.EventGameOver:
		r.updateLocked(ev)
		if ev.Cause == engine.CollisionSelf {
			r.closeLocked(OutcomeSelf)
		} else {
			r.closeLocked(OutcomeWall)
		}
	case engine.EventReturnedToMenu:
		r.updateLocked(ev)
		r.closeLocked(OutcomeMenu)
	}
}

// Finish closes a session still in progress at shutdown
func (r *Recorder) Finish() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closeLocked(OutcomeQuit)
}

// Entries returns finished sessions in play order
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

func (r *Recorder) updateLocked(ev engine.Event) {
	if r.open == nil || ev.SessionID != r.open.SessionID {
		return
	}
	r.open.Score = ev.Score
	r.open.Collected = ev.Collected
	r.open.Ticks = ev.Tick
}

func (r *Recorder) closeLocked(o Outcome) {
	if r.open == nil {
		return
	}
	r.open.Outcome = o
	r.open.Duration = r.now().Sub(r.open.Started).Round(time.Second)
	r.entries = append(r.entries, *r.open)
	r.open = nil
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4ecdc4"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffd93d")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	bestStyle   = cellStyle.Foreground(lipgloss.Color("#6bcf7f"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4a4a6a"))
)

// Render formats entries as a summary table; empty input renders nothing
func Render(entries []Entry) string {
	if len(entries) == 0 {
		return ""
	}

	best := 0
	total := 0
	for i, e := range entries {
		if e.Score > entries[best].Score {
			best = i
		}
		total += e.Score
	}

	rows := make([][]string, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			e.Difficulty.String(),
			fmt.Sprintf("%d", e.Score),
			fmt.Sprintf("%d", e.Collected),
			e.Duration.String(),
			string(e.Outcome),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		BorderHeader(true).
		BorderRow(false).
		Headers("#", "Level", "Score", "Items", "Time", "Ended").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if row == best {
				return bestStyle
			}
			return cellStyle
		})

	var b strings.Builder
	b.WriteString(titleStyle.Render("Health Snake: session summary"))
	b.WriteString("\n")
	b.WriteString(t.Render())
	b.WriteString("\n")
	fmt.Fprintf(&b, "%d sessions, best score %d, total %d\n", len(entries), entries[best].Score, total)
	return b.String()
}
