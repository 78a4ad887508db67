//go:build windows

package sink

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/mattn/go-colorable"
	"golang.org/x/sys/windows"
)

// AllocConsole and FreeConsole are not exported by x/sys/windows.
var (
	kernel32             = windows.NewLazySystemDLL("kernel32.dll")
	procAllocConsole     = kernel32.NewProc("AllocConsole")
	procFreeConsole      = kernel32.NewProc("FreeConsole")
	procGetConsoleWindow = kernel32.NewProc("GetConsoleWindow")
)

// Console owns the process's console output target. A GUI-subsystem
// binary usually starts without a console, so Open allocates one,
// reopens CONOUT$ as standard output and enables virtual-terminal
// processing so escape sequences render. Close releases exactly what
// Open created; a console inherited from the parent process is reused
// and left as found, apart from the display mode, which Restore puts
// back before Close runs.
type Console struct {
	mu        sync.Mutex
	out       *os.File
	w         io.Writer
	stats     *Stats
	colored   bool
	opened    bool
	allocated bool // console allocated by Open
	openedOut bool // CONOUT$ opened by Open
	savedMode uint32
	modeSaved bool
}

// NewConsole creates the platform console sink.
func NewConsole() *Console {
	return &Console{stats: NewStats()}
}

// Open acquires the console. Failure to allocate the console or to
// reopen standard output is feature-disabling and returned to the
// caller; failure to query or set the display mode only degrades the
// output to colorless text.
func (c *Console) Open() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.opened {
		return nil
	}

	if hwnd, _, _ := procGetConsoleWindow.Call(); hwnd == 0 {
		if ok, _, err := procAllocConsole.Call(); ok == 0 {
			return fmt.Errorf("allocate console: %w", err)
		}
		c.allocated = true
	}

	f, err := os.OpenFile("CONOUT$", os.O_RDWR, 0)
	if err != nil {
		if c.allocated {
			procFreeConsole.Call()
			c.allocated = false
		}
		return fmt.Errorf("open console output: %w", err)
	}
	c.out = f
	c.openedOut = true
	os.Stdout = f

	handle := windows.Handle(f.Fd())
	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		// No display mode to save or restore; plain text only.
		c.w = f
		c.opened = true
		return nil
	}
	c.savedMode = mode
	c.modeSaved = true

	if err := windows.SetConsoleMode(handle, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING); err != nil {
		// Legacy console: translate the escapes instead of losing color.
		c.w = colorable.NewColorable(f)
	} else {
		c.w = f
	}
	c.colored = true
	c.opened = true
	return nil
}

// WriteLine writes p to the console.
func (c *Console) WriteLine(p []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.w == nil {
		return fmt.Errorf("console not open")
	}
	_, err := c.w.Write(p)
	if err == nil {
		c.stats.IncrementProcessed()
	}
	return err
}

// Colored reports whether the console renders (or translates) escape
// sequences.
func (c *Console) Colored() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.colored
}

// Restore puts the saved display mode back. It must run before Close
// so the console handle is still valid.
func (c *Console) Restore() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.modeSaved || c.out == nil {
		return nil
	}
	c.modeSaved = false
	if err := windows.SetConsoleMode(windows.Handle(c.out.Fd()), c.savedMode); err != nil {
		return fmt.Errorf("restore console mode: %w", err)
	}
	return nil
}

// Close closes the standard output stream Open reopened and frees the
// console Open allocated. Both are attempted even if the first fails.
func (c *Console) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.opened {
		return nil
	}
	c.opened = false
	c.w = nil

	var firstErr error
	if c.openedOut && c.out != nil {
		if err := c.out.Close(); err != nil {
			firstErr = fmt.Errorf("close console output: %w", err)
		}
		c.openedOut = false
		c.out = nil
	}
	if c.allocated {
		if ok, _, err := procFreeConsole.Call(); ok == 0 && firstErr == nil {
			firstErr = fmt.Errorf("free console: %w", err)
		}
		c.allocated = false
	}
	return firstErr
}

// IncrementDropped counts a suppressed entry.
func (c *Console) IncrementDropped() {
	c.stats.IncrementDropped()
}

// Stats returns a snapshot of the write counters.
func (c *Console) Stats() Snapshot {
	return c.stats.GetSnapshot()
}
