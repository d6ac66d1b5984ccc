package engine

import (
	"sync"
	"time"
)

// MockTimeProvider provides a controllable time source for testing
// Tickers created from it fire only when Advance crosses their deadline
type MockTimeProvider struct {
	mu          sync.Mutex
	currentTime time.Time
	tickers     []*MockTicker
}

// NewMockTimeProvider creates a new mock time provider with the given start time
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{
		currentTime: startTime,
	}
}

// Now returns the current mocked time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.currentTime
}

// SetTime sets the mocked time without firing tickers
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
}

// NewTicker registers a manual ticker with the first deadline one period from now
func (m *MockTimeProvider) NewTicker(d time.Duration) Ticker {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := &MockTicker{
		ch:     make(chan time.Time),
		done:   make(chan struct{}),
		period: d,
		next:   m.currentTime.Add(d),
	}
	m.tickers = append(m.tickers, t)
	return t
}

// ActiveTickers returns the number of tickers not yet stopped
func (m *MockTimeProvider) ActiveTickers() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.tickers {
		if !t.isStopped() {
			n++
		}
	}
	return n
}

// Advance moves time forward by d, delivering every tick whose deadline was crossed
// Each delivery blocks until the receiver takes it or the ticker is stopped
// Must be called from a single test goroutine
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	m.currentTime = m.currentTime.Add(d)
	now := m.currentTime
	tickers := make([]*MockTicker, len(m.tickers))
	copy(tickers, m.tickers)
	m.mu.Unlock()

	for _, t := range tickers {
		for !t.next.After(now) && !t.isStopped() {
			select {
			case t.ch <- t.next:
			case <-t.done:
			}
			t.next = t.next.Add(t.period)
		}
	}
}

// MockTicker is a ticker fired by MockTimeProvider.Advance
type MockTicker struct {
	ch       chan time.Time
	done     chan struct{}
	stopOnce sync.Once
	period   time.Duration
	next     time.Time
}

// C returns the tick channel
func (t *MockTicker) C() <-chan time.Time { return t.ch }

// Stop releases any pending delivery, safe to call repeatedly
func (t *MockTicker) Stop() {
	t.stopOnce.Do(func() { close(t.done) })
}

func (t *MockTicker) isStopped() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}
