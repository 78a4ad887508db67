// Package benchmark holds throughput benchmarks for the logging hot
// path, including a comparison against zap writing to the same no-op
// target.
package benchmark

import "github.com/guilog/guilog/sink"

type noopSink struct{}

func newNoopSink() sink.Sink {
	return noopSink{}
}

func (noopSink) Open() error { return nil }

func (noopSink) WriteLine(p []byte) error {
	_ = len(p)
	return nil
}

func (noopSink) Colored() bool { return false }

func (noopSink) Restore() error { return nil }

func (noopSink) Close() error { return nil }
