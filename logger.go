package veclen

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with veclen-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithStrategy adds strategy and lane width fields to the logger.
func (l *Logger) WithStrategy(s Strategy) *Logger {
	return &Logger{
		Logger: l.Logger.With("strategy", s.String(), "lanes", s.LaneWidth()),
	}
}

// WithCount adds a vector count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("vectors", count),
	}
}

// LogAllocation logs the buffers backing a run.
func (l *Logger) LogAllocation(ctx context.Context, inputBytes, outputBytes int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "buffer allocation failed",
			"input_bytes", inputBytes,
			"output_bytes", outputBytes,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "buffers allocated",
			"input_bytes", inputBytes,
			"output_bytes", outputBytes,
		)
	}
}

// LogRun logs a completed benchmark run.
func (l *Logger) LogRun(ctx context.Context, r *Report) {
	l.InfoContext(ctx, "benchmark completed",
		"strategy", r.Strategy.String(),
		"accelerated", r.Accelerated,
		"isa", r.ISA.String(),
		"vectors", r.Vectors,
		"iterations", r.Iterations,
		"elapsed", r.Elapsed,
		"ns_per_vector", nsPerVector(r.Elapsed, r.Vectors*r.Iterations),
	)
}

func nsPerVector(d time.Duration, n int) float64 {
	if n == 0 {
		return 0
	}
	return float64(d.Nanoseconds()) / float64(n)
}
