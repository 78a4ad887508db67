package logger

import (
	"sync"

	"github.com/guilog/guilog/core"
	"github.com/guilog/guilog/sink"
	"github.com/guilog/guilog/syserr"
)

var (
	defaultMu     sync.RWMutex
	defaultLogger *Logger
)

// newDefaultSink is a constructor seam so tests can substitute a fake
// console for the lazily-built default logger.
var newDefaultSink = func() sink.Sink {
	return sink.NewConsole()
}

// Default returns the process-wide logger, constructing it against the
// platform console on first use. Concurrent first calls construct
// exactly one instance (and therefore at most one console).
func Default() *Logger {
	defaultMu.RLock()
	l := defaultLogger
	defaultMu.RUnlock()
	if l != nil {
		return l
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLogger == nil {
		defaultLogger = NewBuilder().
			WithSink(newDefaultSink()).
			WithLevel(core.TraceLevel).
			Build()
	}
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Built reports whether the default logger has been constructed. It is
// how release-mode builds verify that no console was ever touched.
func Built() bool {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger != nil
}

// Shutdown closes the default logger if one was ever built and forgets
// it, restoring the console display mode before releasing the console.
func Shutdown() {
	defaultMu.Lock()
	l := defaultLogger
	defaultLogger = nil
	defaultMu.Unlock()
	if l != nil {
		l.Close()
	}
}

// Package-level convenience functions using the default logger

// SetLevel updates the default logger's severity threshold
func SetLevel(level Level) {
	Default().SetLevel(level)
}

// Logf logs a message at the specified level using the default logger
func Logf(level Level, sysErr syserr.Code, format string, args ...any) {
	Default().Logf(level, sysErr, format, args...)
}

// Tracef logs a trace message using the default logger
func Tracef(format string, args ...any) {
	Default().Tracef(format, args...)
}

// Infof logs an info message using the default logger
func Infof(format string, args ...any) {
	Default().Infof(format, args...)
}

// Warnf logs a warning message using the default logger
func Warnf(format string, args ...any) {
	Default().Warnf(format, args...)
}

// Failf logs a failure message using the default logger
func Failf(format string, args ...any) {
	Default().Failf(format, args...)
}
