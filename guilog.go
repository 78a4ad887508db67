// Package guilog is a minimal leveled debug console logger for
// graphical applications.
//
// During development it gives the application a colored console: four
// ordered severities (Trace < Info < Warn < Fail), a lazily-allocated
// console on platforms where GUI processes start without one, and an
// optional second line carrying the operating system's message for a
// pending error code.
//
// The public surface is deliberately tiny: SetLogLevel plus one entry
// point per severity, all forwarding to a process-wide logger that is
// constructed on first use. Call Shutdown before the process exits so
// the console's display mode is restored and anything the logger
// allocated is released.
//
// Building with -tags guilog_release substitutes a null implementation:
// every call site compiles to an empty function, no singleton is
// constructed and no console is ever touched. Call sites do not change
// between the two modes.
package guilog

import "github.com/guilog/guilog/core"

// Level is the severity of a log call.
type Level = core.Level

const (
	// Trace for detailed debugging information
	Trace = core.TraceLevel
	// Info for general informational messages
	Info = core.InfoLevel
	// Warn for warning messages
	Warn = core.WarnLevel
	// Fail for failure messages
	Fail = core.FailLevel
)
