package benchmark

import (
	"io"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/guilog/guilog/core"
	"github.com/guilog/guilog/formatter"
	"github.com/guilog/guilog/logger"
)

// ---------------------------------------------------------------------------
// Helpers – identical no-op sink for both frameworks
// ---------------------------------------------------------------------------

// newGuilogLogger returns a guilog logger that formats text into a
// no-op sink.
func newGuilogLogger() *logger.Logger {
	return logger.NewBuilder().
		WithSink(newNoopSink()).
		WithFormatter(formatter.NewText(formatter.Config{})).
		WithLevel(core.TraceLevel).
		Build()
}

// newZapLogger returns a zap.Logger that writes its console encoding
// to io.Discard.
func newZapLogger() *zap.Logger {
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	zc := zapcore.NewCore(enc, zapcore.AddSync(io.Discard), zap.DebugLevel)
	return zap.New(zc)
}

// ---------------------------------------------------------------------------
// Scenario 1 – message with one formatted argument
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_Formatted(b *testing.B) {
	b.Run("guilog", func(b *testing.B) {
		l := newGuilogLogger()
		defer l.Close()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Infof("frame %d presented", i)
		}
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger()
		defer l.Sync()
		s := l.Sugar()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			s.Infof("frame %d presented", i)
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 2 – call filtered out by the severity threshold
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_Filtered(b *testing.B) {
	b.Run("guilog", func(b *testing.B) {
		l := logger.NewBuilder().
			WithSink(newNoopSink()).
			WithFormatter(formatter.NewText(formatter.Config{})).
			WithLevel(core.FailLevel).
			Build()
		defer l.Close()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Logf(core.TraceLevel, 0, "filtered %d", i)
		}
	})

	b.Run("zap", func(b *testing.B) {
		enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		zc := zapcore.NewCore(enc, zapcore.AddSync(io.Discard), zap.ErrorLevel)
		s := zap.New(zc).Sugar()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			s.Debugf("filtered %d", i)
		}
	})
}
