package logger

import "github.com/guilog/guilog/core"

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	TraceLevel = core.TraceLevel
	InfoLevel  = core.InfoLevel
	WarnLevel  = core.WarnLevel
	FailLevel  = core.FailLevel
)

// ParseLevel converts a string to a Level
func ParseLevel(s string) Level {
	return core.ParseLevel(s)
}
