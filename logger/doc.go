// Package logger is the engine behind guilog's public surface.
//
// A Logger is built once via the Builder and owns a console sink, a
// formatter, and an atomic severity threshold. Every log call runs
// synchronously on the calling goroutine; a single mutex serializes the
// level check, the formatting and the write, so the application line
// and its optional system line are never interleaved with another
// goroutine's output.
//
// The package maintains one lazily-built default instance reachable
// through Default. The first call constructs the platform console sink;
// concurrent first calls construct exactly one. SetDefault substitutes
// a custom instance, which is how tests point the engine at a fake
// console.
//
// A Logger whose sink failed to open is disabled: the failure is
// reported once via a blocking alert, after which every call is inert
// except that it still clears the pending OS error indicator. No error
// ever reaches the caller's control flow.
package logger
