package sink

// Sink is the capability interface for a console output target.
type Sink interface {
	// Open acquires or allocates the console and prepares it for
	// escape-coded output.
	Open() error

	// WriteLine writes one formatted line, or the contiguous pair of
	// lines belonging to one entry, to the console.
	WriteLine(p []byte) error

	// Colored reports whether the console renders escape sequences.
	Colored() bool

	// Restore puts the console's saved display mode back. Callers must
	// invoke it before Close so the restore still targets a valid
	// handle.
	Restore() error

	// Close releases the resources Open created. A console inherited
	// from the parent process is left untouched.
	Close() error
}

// StatsProvider is an optional interface for sinks that track
// write statistics.
type StatsProvider interface {
	Stats() Snapshot
}

// DropCounter is an optional interface for sinks that count entries
// suppressed by the severity threshold.
type DropCounter interface {
	IncrementDropped()
}
