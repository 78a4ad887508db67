package sink

import (
	"errors"
	"testing"
)

func TestMemory_RecordsLinesAndCounts(t *testing.T) {
	m := NewMemory(true)
	if err := m.Open(); err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	if err := m.WriteLine([]byte("first\n")); err != nil {
		t.Fatalf("WriteLine() error = %v", err)
	}
	if err := m.WriteLine([]byte("second\n")); err != nil {
		t.Fatalf("WriteLine() error = %v", err)
	}
	m.IncrementDropped()

	lines := m.Lines()
	if len(lines) != 2 || lines[0] != "first\n" || lines[1] != "second\n" {
		t.Errorf("Lines() = %q", lines)
	}

	stats := m.Stats()
	if stats.ProcessedTotal != 2 {
		t.Errorf("ProcessedTotal = %d, want 2", stats.ProcessedTotal)
	}
	if stats.DroppedTotal != 1 {
		t.Errorf("DroppedTotal = %d, want 1", stats.DroppedTotal)
	}
}

func TestMemory_LifecycleOrder(t *testing.T) {
	m := NewMemory(false)
	m.Open()
	m.Restore()
	m.Close()

	events := m.Events()
	want := []string{EventOpen, EventRestore, EventClose}
	if len(events) != len(want) {
		t.Fatalf("Events() = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event[%d] = %q, want %q", i, events[i], want[i])
		}
	}
}

func TestMemory_InjectedFailures(t *testing.T) {
	boom := errors.New("boom")

	m := NewMemory(false)
	m.OpenErr = boom
	if err := m.Open(); !errors.Is(err, boom) {
		t.Errorf("Open() error = %v, want %v", err, boom)
	}

	m = NewMemory(false)
	m.WriteErr = boom
	if err := m.WriteLine([]byte("x")); !errors.Is(err, boom) {
		t.Errorf("WriteLine() error = %v, want %v", err, boom)
	}
	if got := m.Stats().ProcessedTotal; got != 0 {
		t.Errorf("a failed write was counted: ProcessedTotal = %d", got)
	}
}

func TestStats_Counters(t *testing.T) {
	s := NewStats()
	s.IncrementProcessed()
	s.IncrementProcessed()
	s.IncrementDropped()

	if got := s.GetProcessed(); got != 2 {
		t.Errorf("GetProcessed() = %d, want 2", got)
	}
	if got := s.GetDropped(); got != 1 {
		t.Errorf("GetDropped() = %d, want 1", got)
	}

	snap := s.GetSnapshot()
	if snap.ProcessedTotal != 2 || snap.DroppedTotal != 1 {
		t.Errorf("GetSnapshot() = %+v", snap)
	}

	s.Reset()
	if s.GetProcessed() != 0 || s.GetDropped() != 0 {
		t.Error("Reset() did not zero the counters")
	}
}
