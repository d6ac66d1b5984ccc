package status

import (
	"strings"
	"sync"
	"sync/atomic"
	"testing"
)

func TestMetricMapGetCachesPointer(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()
	a := m.Get("engine.ticks")
	b := m.Get("engine.ticks")
	if a != b {
		t.Fatal("Expected same pointer for repeated Get")
	}
	a.Add(3)
	if b.Load() != 3 {
		t.Errorf("Expected 3, got %d", b.Load())
	}
	if m.Count() != 1 {
		t.Errorf("Expected 1 metric, got %d", m.Count())
	}
}

func TestMetricMapConcurrentGet(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Get("shared").Add(1)
		}()
	}
	wg.Wait()
	if got := m.Get("shared").Load(); got != 32 {
		t.Errorf("Expected 32, got %d", got)
	}
}

func TestRangeSorted(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()
	m.Get("b")
	m.Get("c")
	m.Get("a")

	var keys []string
	m.Range(func(key string, _ *atomic.Int64) {
		keys = append(keys, key)
	})
	if strings.Join(keys, ",") != "a,b,c" {
		t.Errorf("Expected sorted keys, got %v", keys)
	}
}

func TestAtomicStringTruncation(t *testing.T) {
	var s AtomicString
	if s.Load() != "" {
		t.Error("Zero value should be empty")
	}
	s.Store(strings.Repeat("é", 40)) // 2 bytes per rune
	got := s.Load()
	if len(got) > MaxStringLen {
		t.Errorf("Expected at most %d bytes, got %d", MaxStringLen, len(got))
	}
	if !strings.HasPrefix(strings.Repeat("é", 40), got) {
		t.Error("Truncation split a rune")
	}
}

func TestRegistryExport(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("engine.moves").Store(7)
	r.Strings.Get("engine.state").Store("RUNNING")

	out := r.Export()
	if out["engine.moves"] != int64(7) {
		t.Errorf("Unexpected moves %v", out["engine.moves"])
	}
	if out["engine.state"] != "RUNNING" {
		t.Errorf("Unexpected state %v", out["engine.state"])
	}
	if r.TotalCount() != 2 {
		t.Errorf("Expected 2 metrics, got %d", r.TotalCount())
	}
}
