package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/health-snake/core"
)

// ClockScheduler drives a callback on a fixed period
// Each run owns its ticker and stop channel; a newer Start invalidates older runs
// Ticks never overlap: the callback runs on the run's single goroutine
type ClockScheduler struct {
	timeProvider TimeProvider

	mu         sync.Mutex
	generation uint64
	stopChan   chan struct{}
	running    bool
	period     time.Duration

	// done channels of run goroutines that have not exited, keyed by generation
	live map[uint64]chan struct{}

	tickCount atomic.Uint64
}

// NewClockScheduler creates an idle scheduler on the given time source
func NewClockScheduler(tp TimeProvider) *ClockScheduler {
	if tp == nil {
		tp = NewMonotonicTimeProvider()
	}
	return &ClockScheduler{timeProvider: tp, live: make(map[uint64]chan struct{})}
}

// Start cancels any previous run and begins invoking fn every period
func (cs *ClockScheduler) Start(period time.Duration, fn func()) {
	cs.mu.Lock()
	cs.stopLocked()

	cs.generation++
	gen := cs.generation
	stop := make(chan struct{})
	cs.stopChan = stop
	cs.running = true
	cs.period = period
	ticker := cs.timeProvider.NewTicker(period)
	done := make(chan struct{})
	cs.live[gen] = done
	cs.mu.Unlock()

	core.Go(func() {
		cs.loop(gen, stop, done, ticker, fn)
	})
}

// Stop cancels the active run; safe when idle and from inside the callback
// Does not wait for the run goroutine, use Wait for that
func (cs *ClockScheduler) Stop() {
	cs.mu.Lock()
	cs.stopLocked()
	cs.mu.Unlock()
}

// Wait blocks until every run started before the call has exited
// Runs started concurrently with Wait are not waited for
// Must not be called from inside the callback
func (cs *ClockScheduler) Wait() {
	cs.mu.Lock()
	pending := make([]chan struct{}, 0, len(cs.live))
	for _, done := range cs.live {
		pending = append(pending, done)
	}
	cs.mu.Unlock()

	for _, done := range pending {
		<-done
	}
}

// Running reports whether a run is active
func (cs *ClockScheduler) Running() bool {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.running
}

// Period returns the period of the active or most recent run
func (cs *ClockScheduler) Period() time.Duration {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.period
}

// TickCount returns the total callbacks invoked across all runs
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

func (cs *ClockScheduler) stopLocked() {
	if cs.running {
		close(cs.stopChan)
		cs.running = false
	}
}

// isCurrent reports whether gen is still the active run
func (cs *ClockScheduler) isCurrent(gen uint64) bool {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.running && cs.generation == gen
}

func (cs *ClockScheduler) loop(gen uint64, stop <-chan struct{}, done chan struct{}, ticker Ticker, fn func()) {
	defer func() {
		ticker.Stop()
		cs.mu.Lock()
		delete(cs.live, gen)
		cs.mu.Unlock()
		close(done)
	}()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C():
			// Stop may race with a ready tick; re-check ownership before running
			if !cs.isCurrent(gen) {
				return
			}
			cs.tickCount.Add(1)
			fn()
		}
	}
}
