package engine

import (
	"sync/atomic"

	"golang.org/x/exp/rand"

	"github.com/lixenwraith/health-snake/catalog"
	"github.com/lixenwraith/health-snake/constants"
	"github.com/lixenwraith/health-snake/core"
	"github.com/lixenwraith/health-snake/status"
)

// Generator stocks the board with catalog items
type Generator struct {
	grid  core.Grid
	facts []catalog.Fact
	rng   *rand.Rand

	nextID uint64

	statGenerated *atomic.Int64
	statFallbacks *atomic.Int64
}

// NewGenerator creates a generator over facts with a deterministic seed
func NewGenerator(grid core.Grid, facts []catalog.Fact, seed uint64, reg *status.Registry) *Generator {
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Generator{
		grid:          grid,
		facts:         facts,
		rng:           rand.New(rand.NewSource(seed)),
		statGenerated: reg.Ints.Get("engine.items_generated"),
		statFallbacks: reg.Ints.Get("engine.placement_fallbacks"),
	}
}

// Generate creates count items, each a uniformly random fact at a sampled position
// Duplicate facts across items are permitted
func (g *Generator) Generate(count int, snake []core.Position) []Item {
	if len(g.facts) == 0 || count <= 0 {
		return nil
	}
	items := make([]Item, 0, count)
	for i := 0; i < count; i++ {
		fact := g.facts[g.rng.Intn(len(g.facts))]
		pos, _ := g.Place(snake)
		g.nextID++
		items = append(items, Item{ID: g.nextID, Position: pos, Fact: fact})
	}
	g.statGenerated.Add(int64(len(items)))
	return items
}

// Place draws random cells, rejecting those under the snake
// After MaxPlacementAttempts the last draw is accepted even if occupied; ok reports a free cell
func (g *Generator) Place(snake []core.Position) (pos core.Position, ok bool) {
	for attempt := 0; attempt < constants.MaxPlacementAttempts; attempt++ {
		pos = core.Position{
			X: g.rng.Intn(g.grid.Width),
			Y: g.rng.Intn(g.grid.Height),
		}
		if !core.IsOccupiedBySnake(pos, snake) {
			return pos, true
		}
	}
	g.statFallbacks.Add(1)
	return pos, false
}
