//go:build !windows

package sink

import (
	"os"
	"sync"

	"github.com/mattn/go-isatty"
)

// Console writes to the process's standard output. On POSIX systems a
// graphical process still inherits a usable stdout, so Open allocates
// nothing; Restore and Close are bookkeeping only and the stream is
// left exactly as found.
type Console struct {
	mu      sync.Mutex
	out     *os.File
	stats   *Stats
	colored bool
	opened  bool
}

// NewConsole creates the platform console sink.
func NewConsole() *Console {
	return &Console{out: os.Stdout, stats: NewStats()}
}

// Open marks the sink ready and probes whether stdout is a terminal
// that renders escape sequences.
func (c *Console) Open() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.opened {
		return nil
	}
	fd := c.out.Fd()
	c.colored = isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	c.opened = true
	return nil
}

// WriteLine writes p to standard output.
func (c *Console) WriteLine(p []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := c.out.Write(p)
	if err == nil {
		c.stats.IncrementProcessed()
	}
	return err
}

// Colored reports whether stdout renders escape sequences.
func (c *Console) Colored() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.colored
}

// Restore is a no-op: nothing about the inherited stream was changed.
func (c *Console) Restore() error {
	return nil
}

// Close is a no-op: the sink owns no resources.
func (c *Console) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.opened = false
	return nil
}

// IncrementDropped counts a suppressed entry.
func (c *Console) IncrementDropped() {
	c.stats.IncrementDropped()
}

// Stats returns a snapshot of the write counters.
func (c *Console) Stats() Snapshot {
	return c.stats.GetSnapshot()
}
