//go:build !windows

package syserr

// Capture returns the pending OS error code for hand-off to a log call.
func Capture() Code {
	return Last()
}
