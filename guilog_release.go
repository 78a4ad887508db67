//go:build guilog_release

package guilog

import "github.com/guilog/guilog/syserr"

// Release builds compile every entry point to an empty function. The
// logger singleton is never constructed and no console is touched;
// call sites are identical to the debug build.

// SetLogLevel is a no-op in release builds.
func SetLogLevel(Level) {}

// Logf is a no-op in release builds.
func Logf(Level, syserr.Code, string, ...any) {}

// Tracef is a no-op in release builds.
func Tracef(string, ...any) {}

// Infof is a no-op in release builds.
func Infof(string, ...any) {}

// Warnf is a no-op in release builds.
func Warnf(string, ...any) {}

// Failf is a no-op in release builds.
func Failf(string, ...any) {}

// Shutdown is a no-op in release builds.
func Shutdown() {}
