package sink

import "sync"

// Lifecycle event names recorded by the Memory sink.
const (
	EventOpen    = "open"
	EventRestore = "restore"
	EventClose   = "close"
)

// Memory is an in-memory sink for tests. It records every written line
// and the order of lifecycle calls, and supports injected failures for
// each operation.
type Memory struct {
	mu     sync.Mutex
	lines  []string
	events []string
	stats  *Stats

	colored bool
	opened  bool

	// Injectable failures
	OpenErr    error
	WriteErr   error
	RestoreErr error
	CloseErr   error
}

// NewMemory creates a memory sink. colored controls what Colored
// reports, so both the colored and the degraded formatter paths can be
// exercised.
func NewMemory(colored bool) *Memory {
	return &Memory{colored: colored, stats: NewStats()}
}

// Open records the open event.
func (m *Memory) Open() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.OpenErr != nil {
		return m.OpenErr
	}
	m.events = append(m.events, EventOpen)
	m.opened = true
	return nil
}

// WriteLine records p as one written chunk.
func (m *Memory) WriteLine(p []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.lines = append(m.lines, string(p))
	m.stats.IncrementProcessed()
	return nil
}

// Colored reports the value the sink was created with.
func (m *Memory) Colored() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.colored
}

// Restore records the restore event.
func (m *Memory) Restore() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.RestoreErr != nil {
		return m.RestoreErr
	}
	m.events = append(m.events, EventRestore)
	return nil
}

// Close records the close event.
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CloseErr != nil {
		return m.CloseErr
	}
	m.events = append(m.events, EventClose)
	m.opened = false
	return nil
}

// IncrementDropped counts a suppressed entry.
func (m *Memory) IncrementDropped() {
	m.stats.IncrementDropped()
}

// Stats returns a snapshot of the write counters.
func (m *Memory) Stats() Snapshot {
	return m.stats.GetSnapshot()
}

// Lines returns a copy of every chunk written so far.
func (m *Memory) Lines() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.lines))
	copy(out, m.lines)
	return out
}

// Events returns the lifecycle calls in the order they happened.
func (m *Memory) Events() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.events))
	copy(out, m.events)
	return out
}
