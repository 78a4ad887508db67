package core

import "strings"

// Level represents the severity level of a log entry
type Level int8

const (
	// TraceLevel for detailed debugging information (default threshold)
	TraceLevel Level = iota
	// InfoLevel for general informational messages
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// FailLevel for failure messages
	FailLevel
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case TraceLevel:
		return "TRACE"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case FailLevel:
		return "FAIL"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether l is one of the four defined levels.
// Out-of-range levels are never written.
func (l Level) Valid() bool {
	return l >= TraceLevel && l <= FailLevel
}

// ParseLevel converts a string to a Level
func ParseLevel(s string) Level {
	switch strings.ToUpper(s) {
	case "TRACE":
		return TraceLevel
	case "INFO":
		return InfoLevel
	case "WARN", "WARNING":
		return WarnLevel
	case "FAIL", "FAILURE":
		return FailLevel
	default:
		return InfoLevel
	}
}
