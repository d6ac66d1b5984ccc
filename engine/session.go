package engine

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/lixenwraith/health-snake/catalog"
	"github.com/lixenwraith/health-snake/constants"
	"github.com/lixenwraith/health-snake/core"
	"github.com/lixenwraith/health-snake/status"
)

// ErrIncompatibleDevice is returned by StartGame when the device probe failed
var ErrIncompatibleDevice = errors.New("device not compatible")

// Options configures a Session
type Options struct {
	Grid         core.Grid
	Facts        []catalog.Fact
	Seed         uint64 // 0 seeds from the time provider
	Compatible   bool
	Difficulty   Difficulty
	TimeProvider TimeProvider
	Metrics      *status.Registry
	Start        *core.Position // nil uses the default start cell
}

// Session owns one game: snake, items, score, popup and the tick scheduler
// All operations serialize on a single mutex; events are delivered after it is released
type Session struct {
	mu sync.Mutex

	id    string
	state SessionState
	grid  core.Grid
	start core.Position

	generator *Generator
	snake     *Snake
	items     []Item
	score     int
	collected int
	tick      uint64
	popup     *Popup
	recent    *RecentFacts
	endCause  Collision

	selected   Difficulty
	active     Difficulty
	period     time.Duration
	compatible bool

	scheduler *ClockScheduler
	run       uint64 // incremented per StartGame, guards late ticks of a replaced run

	listeners []Listener

	statTicks       *atomic.Int64
	statSkipped     *atomic.Int64
	statMoves       *atomic.Int64
	statCollections *atomic.Int64
	statSessions    *atomic.Int64
	statGameOvers   *atomic.Int64
	statState       *status.AtomicString
}

// NewSession creates an Idle session
func NewSession(opts Options) *Session {
	if opts.Grid.Width <= 0 || opts.Grid.Height <= 0 {
		opts.Grid = core.NewGrid(constants.BoardSize, constants.CellSize)
	}
	if opts.Facts == nil {
		opts.Facts = catalog.Default()
	}
	if opts.TimeProvider == nil {
		opts.TimeProvider = NewMonotonicTimeProvider()
	}
	if opts.Metrics == nil {
		opts.Metrics = status.NewRegistry()
	}
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(opts.TimeProvider.Now().UnixNano())
	}

	start := opts.Grid.Center()
	if opts.Start != nil {
		start = *opts.Start
	}

	reg := opts.Metrics
	s := &Session{
		state:           StateIdle,
		grid:            opts.Grid,
		start:           start,
		generator:       NewGenerator(opts.Grid, opts.Facts, seed, reg),
		snake:           NewSnake(start, core.DirRight),
		recent:          NewRecentFacts(constants.RecentFactsCap),
		selected:        opts.Difficulty,
		active:          opts.Difficulty,
		period:          opts.Difficulty.Interval(),
		compatible:      opts.Compatible,
		scheduler:       NewClockScheduler(opts.TimeProvider),
		statTicks:       reg.Ints.Get("engine.ticks"),
		statSkipped:     reg.Ints.Get("engine.ticks_skipped"),
		statMoves:       reg.Ints.Get("engine.moves"),
		statCollections: reg.Ints.Get("engine.collections"),
		statSessions:    reg.Ints.Get("engine.sessions"),
		statGameOvers:   reg.Ints.Get("engine.game_overs"),
		statState:       reg.Strings.Get("engine.state"),
	}
	s.statState.Store(s.state.String())
	return s
}

// Subscribe registers a listener for all subsequent events
func (s *Session) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Copy on write so dispatch can iterate without the lock
	next := make([]Listener, len(s.listeners), len(s.listeners)+1)
	copy(next, s.listeners)
	s.listeners = append(next, l)
}

// StartGame resets all per-session state and starts ticking at the selected difficulty
func (s *Session) StartGame() error {
	s.mu.Lock()
	if !s.compatible {
		s.mu.Unlock()
		return ErrIncompatibleDevice
	}
	if !CanTransition(s.state, StateRunning) {
		from := s.state
		s.mu.Unlock()
		return errors.Errorf("cannot start from %s", from)
	}

	s.id = uuid.NewString()
	s.snake = NewSnake(s.start, core.DirRight)
	s.items = s.items[:0]
	s.score = 0
	s.collected = 0
	s.tick = 0
	s.popup = nil
	s.endCause = CollisionNone
	s.recent.Reset()
	s.items = append(s.items, s.generator.Generate(constants.InitialItems, s.snake.segments)...)

	s.active = s.selected
	s.period = s.active.Interval()
	s.setStateLocked(StateRunning)
	s.statSessions.Add(1)

	s.run++
	run := s.run
	s.scheduler.Start(s.period, func() { s.tickRun(run) })

	ev := s.eventLocked(EventSessionStarted)
	items := len(s.items)
	listeners := s.listeners
	s.mu.Unlock()

	slog.Info("session started", "session", ev.SessionID, "difficulty", ev.Difficulty.String(), "items", items)
	dispatch(listeners, ev)
	return nil
}

// Tick advances the simulation one step
// No-op unless Running with no popup; also invoked directly by tests
func (s *Session) Tick() {
	s.mu.Lock()
	events := s.tickLocked()
	listeners := s.listeners
	s.mu.Unlock()
	dispatch(listeners, events...)
}

// tickRun is the scheduler callback; ticks from a replaced run are dropped
func (s *Session) tickRun(run uint64) {
	s.mu.Lock()
	if run != s.run {
		s.mu.Unlock()
		return
	}
	events := s.tickLocked()
	listeners := s.listeners
	s.mu.Unlock()
	dispatch(listeners, events...)
}

func (s *Session) tickLocked() []Event {
	if s.state != StateRunning || s.popup != nil {
		s.statSkipped.Add(1)
		return nil
	}
	s.tick++
	s.statTicks.Add(1)

	_, collision := s.snake.Move(s.grid)
	if collision != CollisionNone {
		s.endCause = collision
		s.setStateLocked(StateGameOver)
		s.scheduler.Stop()
		s.statGameOvers.Add(1)
		ev := s.eventLocked(EventGameOver)
		ev.Cause = collision
		slog.Info("game over", "session", s.id, "cause", collision.String(), "score", s.score, "collected", s.collected)
		return []Event{ev}
	}
	s.statMoves.Add(1)

	events := make([]Event, 0, 2)
	events = append(events, s.eventLocked(EventTick))

	head := s.snake.Head()
	for i := range s.items {
		if s.items[i].Position != head {
			continue
		}
		item := s.items[i]
		s.items = append(s.items[:i], s.items[i+1:]...)

		s.score += item.Points
		s.collected++
		s.recent.Push(FactEntry{
			Category: item.Category,
			Glyph:    item.Glyph,
			Message:  item.Message,
		})
		s.snake.Grow()
		s.popup = &Popup{Title: item.Title(), Item: item}
		s.statCollections.Add(1)

		ev := s.eventLocked(EventItemCollected)
		ev.Item = &item
		events = append(events, ev)
		break
	}

	if len(s.items) < constants.ItemFloor {
		s.items = append(s.items, s.generator.Generate(1, s.snake.segments)...)
	}
	return events
}

// Turn requests a heading change for the next move
// Ignored unless Running; the reverse of the current heading is dropped
func (s *Session) Turn(dir core.Direction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateRunning {
		return
	}
	s.snake.Turn(dir)
}

// TogglePause flips between Running and Paused
// The scheduler keeps firing; paused ticks are skipped
func (s *Session) TogglePause() {
	s.mu.Lock()
	var ev Event
	switch s.state {
	case StateRunning:
		s.setStateLocked(StatePaused)
		ev = s.eventLocked(EventPaused)
	case StatePaused:
		s.setStateLocked(StateRunning)
		ev = s.eventLocked(EventResumed)
	default:
		s.mu.Unlock()
		return
	}
	listeners := s.listeners
	s.mu.Unlock()
	dispatch(listeners, ev)
}

// ClosePopup hides the fact popup; no-op when none is shown
func (s *Session) ClosePopup() {
	s.mu.Lock()
	if s.popup == nil {
		s.mu.Unlock()
		return
	}
	s.popup = nil
	ev := s.eventLocked(EventPopupClosed)
	listeners := s.listeners
	s.mu.Unlock()
	dispatch(listeners, ev)
}

// ReturnToMenu discards the current session and returns to Idle
func (s *Session) ReturnToMenu() {
	s.mu.Lock()
	if !CanTransition(s.state, StateIdle) {
		s.mu.Unlock()
		return
	}
	s.scheduler.Stop()
	s.run++
	ev := s.eventLocked(EventReturnedToMenu)
	s.popup = nil
	s.setStateLocked(StateIdle)
	listeners := s.listeners
	s.mu.Unlock()
	dispatch(listeners, ev)
}

// SetDifficulty selects the level used by the next StartGame
func (s *Session) SetDifficulty(d Difficulty) {
	s.mu.Lock()
	if s.selected == d {
		s.mu.Unlock()
		return
	}
	s.selected = d
	ev := s.eventLocked(EventDifficultyChanged)
	ev.Difficulty = d
	listeners := s.listeners
	s.mu.Unlock()
	dispatch(listeners, ev)
}

// Difficulty returns the level selected for the next session
func (s *Session) Difficulty() Difficulty {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

// SetCompatible updates the device compatibility flag
func (s *Session) SetCompatible(ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.compatible = ok
}

// Compatible reports the device compatibility flag
func (s *Session) Compatible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.compatible
}

// State returns the lifecycle state
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Scheduler exposes the tick scheduler for inspection
func (s *Session) Scheduler() *ClockScheduler {
	return s.scheduler
}

// Stop cancels ticking and waits for the scheduler goroutine; safe to call repeatedly
// A StartGame racing Stop may begin a fresh run, which Stop does not wait for
// Must not be called from a listener
func (s *Session) Stop() {
	s.mu.Lock()
	s.scheduler.Stop()
	s.run++
	s.mu.Unlock()
	s.scheduler.Wait()
}

// Snapshot returns a copy of the session for rendering
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		SessionID:    s.id,
		State:        s.state,
		Tick:         s.tick,
		Grid:         s.grid,
		Snake:        s.snake.Segments(),
		Heading:      s.snake.Heading(),
		Items:        s.itemsSnapshot(),
		Score:        s.score,
		Collected:    s.collected,
		Progress:     CollectionProgress(s.collected, constants.CollectionGoal),
		RecentFacts:  s.recent.Entries(),
		Difficulty:   s.active,
		Selected:     s.selected,
		TickInterval: s.period,
		Compatible:   s.compatible,
		EndCause:     s.endCause,
	}
	if s.popup != nil {
		p := *s.popup
		snap.Popup = &p
	}
	return snap
}

func (s *Session) itemsSnapshot() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Session) setStateLocked(next SessionState) {
	s.state = next
	s.statState.Store(next.String())
}

func (s *Session) eventLocked(t EventType) Event {
	return Event{
		Type:       t,
		SessionID:  s.id,
		Tick:       s.tick,
		Score:      s.score,
		Collected:  s.collected,
		Difficulty: s.active,
	}
}

func dispatch(listeners []Listener, events ...Event) {
	for _, ev := range events {
		for _, l := range listeners {
			l(ev)
		}
	}
}
