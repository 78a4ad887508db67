// Package core defines the shared types used across the guilog module.
//
// It provides the Level type for severity filtering and the Entry type
// that represents a single log event, including the OS error code that
// was pending at the call site when the event was recorded.
//
// Entry objects are pooled via sync.Pool to keep the hot path
// allocation-free. Callers get an Entry with GetEntry and must
// return it with PutEntry once the sink has consumed it.
package core
