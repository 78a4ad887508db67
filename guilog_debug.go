//go:build !guilog_release

package guilog

import (
	"github.com/guilog/guilog/logger"
	"github.com/guilog/guilog/syserr"
)

// SetLogLevel updates the severity threshold of the process-wide
// logger. Effective immediately for subsequent calls.
func SetLogLevel(level Level) {
	logger.Default().SetLevel(level)
}

// Logf logs a message at the given level, annotated with the OS
// message for sysErr when it is non-zero. The pending OS error
// indicator is cleared whether or not the message passes the
// threshold.
func Logf(level Level, sysErr syserr.Code, format string, args ...any) {
	logger.Default().Logf(level, sysErr, format, args...)
}

// Tracef logs a trace message with the pending OS error code.
func Tracef(format string, args ...any) {
	logger.Default().Logf(Trace, syserr.Capture(), format, args...)
}

// Infof logs an info message with the pending OS error code.
func Infof(format string, args ...any) {
	logger.Default().Logf(Info, syserr.Capture(), format, args...)
}

// Warnf logs a warning message with the pending OS error code.
func Warnf(format string, args ...any) {
	logger.Default().Logf(Warn, syserr.Capture(), format, args...)
}

// Failf logs a failure message with the pending OS error code.
func Failf(format string, args ...any) {
	logger.Default().Logf(Fail, syserr.Capture(), format, args...)
}

// Shutdown restores the console display mode and releases whatever the
// logger allocated. Safe to call when nothing was ever logged.
func Shutdown() {
	logger.Shutdown()
}
