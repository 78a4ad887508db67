//go:build windows

package syserr

import (
	"syscall"

	"golang.org/x/sys/windows"
)

// Capture returns the pending OS error code for hand-off to a log call.
// When nothing has been recorded explicitly, the calling thread's
// GetLastError value is consulted so call sites wrapping Windows API
// failures behave like native ones.
func Capture() Code {
	if code := Last(); code != 0 {
		return code
	}
	if err := windows.GetLastError(); err != nil {
		if errno, ok := err.(syscall.Errno); ok {
			return Code(errno)
		}
	}
	return 0
}
