package engine

import (
	"github.com/lixenwraith/health-snake/catalog"
	"github.com/lixenwraith/health-snake/core"
)

// Item is a catalog fact bound to a board position
type Item struct {
	ID       uint64        `json:"id"`
	Position core.Position `json:"position"`
	catalog.Fact
}

// FactEntry is one line of the recent facts log
type FactEntry struct {
	Category catalog.Category `json:"category"`
	Glyph    string           `json:"glyph"`
	Message  string           `json:"message"`
}

// RecentFacts is a bounded log of collected facts, most recent first
type RecentFacts struct {
	entries  []FactEntry
	capacity int
}

// NewRecentFacts creates an empty log holding at most capacity entries
func NewRecentFacts(capacity int) *RecentFacts {
	return &RecentFacts{
		entries:  make([]FactEntry, 0, capacity+1),
		capacity: capacity,
	}
}

// Push records an entry at the front, evicting the oldest beyond capacity
func (r *RecentFacts) Push(e FactEntry) {
	r.entries = append(r.entries, FactEntry{})
	copy(r.entries[1:], r.entries)
	r.entries[0] = e
	if len(r.entries) > r.capacity {
		r.entries = r.entries[:r.capacity]
	}
}

// Entries returns a copy of the log, most recent first
func (r *RecentFacts) Entries() []FactEntry {
	out := make([]FactEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of entries
func (r *RecentFacts) Len() int {
	return len(r.entries)
}

// Reset clears the log
func (r *RecentFacts) Reset() {
	r.entries = r.entries[:0]
}
