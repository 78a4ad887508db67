package logger_test

import (
	"github.com/guilog/guilog/formatter"
	"github.com/guilog/guilog/logger"
	"github.com/guilog/guilog/sink"
	"github.com/guilog/guilog/syserr"
)

// Use the lazily-built default logger for quick, no-setup logging.
func Example() {
	logger.SetLevel(logger.InfoLevel)
	logger.Infof("window created: %dx%d", 1280, 720)
	logger.Warnf("vsync unavailable, falling back to %s", "timer")
}

// Create a custom Logger with the Builder pattern, pointed at a fake
// console sink.
func ExampleNewBuilder() {
	log := logger.NewBuilder().
		WithSink(sink.NewMemory(false)).
		WithFormatter(formatter.NewText(formatter.Config{})).
		WithLevel(logger.TraceLevel).
		Build()

	log.Tracef("renderer selected: %s", "d3d11")
	log.Close()
}

// Record a failed system call and let the next log call report it as a
// [SYS] line.
func ExampleLogger_Failf() {
	log := logger.NewBuilder().
		WithSink(sink.NewMemory(false)).
		WithFormatter(formatter.NewText(formatter.Config{})).
		Build()

	if err := loadShader(); err != nil {
		syserr.Record(err)
		log.Failf("shader load failed")
	}
	log.Close()
}

func loadShader() error { return nil }
