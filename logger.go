package primestep

import (
	"context"
	"log/slog"
	"os"
	"time"

	"golang.org/x/time/rate"
)

// Logger wraps slog.Logger with sieve-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger

	// progress throttles scan progress records.
	progress *rate.Sometimes
}

func wrap(l *slog.Logger) *Logger {
	return &Logger{
		Logger:   l,
		progress: &rate.Sometimes{Interval: time.Second},
	}
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return wrap(slog.New(handler))
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	return wrap(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return wrap(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return wrap(slog.New(slog.DiscardHandler))
}

// LogExtend logs a table extension.
func (l *Logger) LogExtend(from, to uint64, elapsed time.Duration, err error) {
	if err != nil {
		l.Warn("extend failed",
			"from", from,
			"to", to,
			"error", err,
		)
		return
	}
	l.Debug("extend completed",
		"from", from,
		"to", to,
		"entries", to-from,
		"elapsed", elapsed,
	)
}

// LogStep logs a gapped-pair search.
func (l *Logger) LogStep(g, m, n int64, p Pair, err error) {
	if err != nil {
		l.Warn("step failed",
			"gap", g,
			"low", m,
			"high", n,
			"error", err,
		)
		return
	}
	l.Debug("step completed",
		"gap", g,
		"low", m,
		"high", n,
		"found", p.Found(),
		"first", p.First,
		"second", p.Second,
	)
}

// LogProgress records scan progress, at most once per second.
func (l *Logger) LogProgress(op string, at, high int64) {
	l.progress.Do(func() {
		l.Debug("scan progress",
			"op", op,
			"at", at,
			"high", high,
		)
	})
}

// LogBatch logs a batch of step queries.
func (l *Logger) LogBatch(ctx context.Context, count int, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "step batch failed",
			"count", count,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "step batch completed",
		"count", count,
		"elapsed", elapsed,
	)
}
