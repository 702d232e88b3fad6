package bench

import (
	"context"
	"log/slog"
	"os"
	"time"

	"golang.org/x/time/rate"
)

// DefaultProgressInterval is the minimum time between two progress lines.
const DefaultProgressInterval = time.Second

// Logger wraps slog.Logger with run-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
	progress *rate.Limiter
}

func newLogger(handler slog.Handler) *Logger {
	return &Logger{
		Logger:   slog.New(handler),
		progress: rate.NewLimiter(rate.Every(DefaultProgressInterval), 1),
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
	return newLogger(handler)
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	return newLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return newLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return newLogger(slog.DiscardHandler)
}

// WithProgressInterval returns a copy of l that emits at most one progress
// line per interval. A zero interval logs every pass.
func (l *Logger) WithProgressInterval(interval time.Duration) *Logger {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &Logger{
		Logger:   l.Logger,
		progress: rate.NewLimiter(limit, 1),
	}
}

// WithConfig adds the run name to the logger.
func (l *Logger) WithConfig(cfg Config) *Logger {
	return &Logger{
		Logger:   l.Logger.With("run", cfg.Name()),
		progress: l.progress,
	}
}

// LogProgress logs a finished pass, throttled to the progress interval.
func (l *Logger) LogProgress(ctx context.Context, pass, total int, d time.Duration) {
	if !l.progress.Allow() {
		return
	}
	l.DebugContext(ctx, "pass completed",
		"pass", pass,
		"total", total,
		"duration", d,
	)
}

// LogRun logs the outcome of a run.
func (l *Logger) LogRun(ctx context.Context, res *Result, err error) {
	if err != nil {
		l.ErrorContext(ctx, "run failed",
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "run completed",
		"size", res.Config.Size,
		"passes", len(res.Passes),
		"min", res.Min,
		"median", res.Median,
		"checksum", res.Checksum,
	)
}
