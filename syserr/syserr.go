package syserr

import (
	"errors"
	"sync/atomic"
	"syscall"
)

// Code is an OS error code. Zero means no error is pending.
type Code uint32

// last is the pending OS error indicator.
var last atomic.Uint32

// Set stores code as the pending OS error.
func Set(code Code) {
	last.Store(uint32(code))
}

// Record extracts an OS error code from err's chain and stores it as
// the pending error. Errors that carry no OS code leave the indicator
// unchanged.
func Record(err error) {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		last.Store(uint32(errno))
	}
}

// Last returns the pending OS error code without clearing it.
func Last() Code {
	return Code(last.Load())
}

// Clear resets the pending OS error indicator.
func Clear() {
	last.Store(0)
}

// Message translates code to the operating system's human-readable
// message for it. Returns the empty string for code zero.
func Message(code Code) string {
	if code == 0 {
		return ""
	}
	return syscall.Errno(code).Error()
}
