package vecspace

import (
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with vecspace-specific helpers.
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

// LogParse logs the outcome of a parse operation.
func (l *Logger) LogParse(count, dimension int, elapsed time.Duration, err error) {
	if err != nil {
		l.Error("parse failed",
			"records", count,
			"error", err,
		)
	} else {
		l.Debug("parse completed",
			"records", count,
			"dimension", dimension,
			"elapsed", elapsed,
		)
	}
}

// LogExport logs the outcome of an export operation.
func (l *Logger) LogExport(count, bytes int, err error) {
	if err != nil {
		l.Error("export failed",
			"records", count,
			"error", err,
		)
	} else {
		l.Debug("export completed",
			"records", count,
			"bytes", bytes,
		)
	}
}
