package logger

import (
	"bytes"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/guilog/guilog/core"
	"github.com/guilog/guilog/formatter"
	"github.com/guilog/guilog/sink"
	"github.com/guilog/guilog/syserr"
)

// Logger is the logging engine
type Logger struct {
	mu              sync.Mutex
	buf             bytes.Buffer
	snk             sink.Sink
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	dropCounter     sink.DropCounter
	level           atomic.Int32
	disabled        bool
	closeOnce       sync.Once
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	snk   sink.Sink
	fmtr  formatter.Formatter
	level core.Level
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		level: core.TraceLevel, // Default: everything prints
	}
}

// WithSink sets the console sink
func (b *Builder) WithSink(s sink.Sink) *Builder {
	b.snk = s
	return b
}

// WithFormatter sets the formatter
func (b *Builder) WithFormatter(f formatter.Formatter) *Builder {
	b.fmtr = f
	return b
}

// WithLevel sets the severity threshold
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// Build creates the Logger instance and opens its sink. A sink that
// fails to open disables the logger: the failure is reported once via
// a blocking alert and the host application continues without logging.
func (b *Builder) Build() *Logger {
	l := &Logger{
		snk:       b.snk,
		formatter: b.fmtr,
	}
	l.level.Store(int32(b.level))

	if l.snk == nil {
		l.disabled = true
		return l
	}

	if err := l.snk.Open(); err != nil {
		sink.Alert("guilog: initialization failed", err.Error())
		l.disabled = true
		return l
	}

	// The default formatter is chosen after Open so it can follow the
	// console's actual color capability.
	if l.formatter == nil {
		l.formatter = formatter.NewText(formatter.Config{Color: l.snk.Colored()})
	}
	l.bufferFormatter, _ = l.formatter.(formatter.BufferFormatter)
	l.dropCounter, _ = l.snk.(sink.DropCounter)
	l.buf.Grow(256)
	return l
}

// Level returns the current severity threshold.
func (l *Logger) Level() core.Level {
	return core.Level(l.level.Load())
}

// SetLevel updates the severity threshold. Effective for calls that
// acquire the lock afterwards; calls already in flight are unaffected.
func (l *Logger) SetLevel(level core.Level) {
	l.level.Store(int32(level))
}

// Disabled reports whether the logger was put out of service by an
// initialization failure.
func (l *Logger) Disabled() bool {
	return l.disabled
}

// Logf is the single logging entry point. A call below the threshold
// (or on a disabled logger) writes nothing but still clears the
// pending OS error indicator, so a suppressed log cannot leak a stale
// code into a later, unrelated check. Otherwise the entry is stamped
// with the local wall-clock time, formatted, and written as one chunk:
// the application line plus, for a non-zero sysErr, the system line.
func (l *Logger) Logf(level core.Level, sysErr syserr.Code, format string, args ...any) {
	if l.disabled || !level.Valid() || level < l.Level() {
		syserr.Clear()
		if l.dropCounter != nil && !l.disabled && level.Valid() {
			l.dropCounter.IncrementDropped()
		}
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	entry := core.GetEntry()
	entry.Level = level
	entry.Message = fmt.Sprintf(format, args...)
	entry.SysErr = uint32(sysErr)

	if l.bufferFormatter != nil {
		l.buf.Reset()
		l.bufferFormatter.FormatEntry(entry, &l.buf)
		// A write failure never alters the caller's control flow.
		_ = l.snk.WriteLine(l.buf.Bytes())
	} else if data, err := l.formatter.Format(entry); err == nil {
		_ = l.snk.WriteLine(data)
	}

	core.PutEntry(entry)
	syserr.Clear()
}

// Tracef logs a trace message, forwarding the pending OS error code
func (l *Logger) Tracef(format string, args ...any) {
	l.Logf(core.TraceLevel, syserr.Capture(), format, args...)
}

// Infof logs an info message, forwarding the pending OS error code
func (l *Logger) Infof(format string, args ...any) {
	l.Logf(core.InfoLevel, syserr.Capture(), format, args...)
}

// Warnf logs a warning message, forwarding the pending OS error code
func (l *Logger) Warnf(format string, args ...any) {
	l.Logf(core.WarnLevel, syserr.Capture(), format, args...)
}

// Failf logs a failure message, forwarding the pending OS error code
func (l *Logger) Failf(format string, args ...any) {
	l.Logf(core.FailLevel, syserr.Capture(), format, args...)
}

// Stats returns the sink's write counters when the sink tracks them.
func (l *Logger) Stats() (sink.Snapshot, bool) {
	if sp, ok := l.snk.(sink.StatsProvider); ok {
		return sp.Stats(), true
	}
	return sink.Snapshot{}, false
}

// Close restores the console display mode and then releases the sink,
// in that order, so the restore still targets a valid handle. Teardown
// failures are reported via a blocking alert and never escalated; the
// first one is also returned for callers that want to inspect it.
// Close is idempotent.
func (l *Logger) Close() error {
	var firstErr error
	l.closeOnce.Do(func() {
		if l.snk == nil {
			return
		}
		if err := l.snk.Restore(); err != nil {
			sink.Alert("guilog: shutdown", err.Error())
			firstErr = err
		}
		if err := l.snk.Close(); err != nil {
			sink.Alert("guilog: shutdown", err.Error())
			if firstErr == nil {
				firstErr = err
			}
		}
	})
	return firstErr
}
