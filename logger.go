package phrasego

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with phrasego-specific context.
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

// WithPattern adds a pattern field to the logger.
func (l *Logger) WithPattern(pattern string) *Logger {
	return &Logger{
		Logger: l.Logger.With("pattern", pattern),
	}
}

// WithTextLen adds a text length field to the logger.
func (l *Logger) WithTextLen(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("text_len", n),
	}
}

// WithMaxDistance adds a tolerance field to the logger.
func (l *Logger) WithMaxDistance(md int) *Logger {
	return &Logger{
		Logger: l.Logger.With("max_distance", md),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogBuild logs an index build.
func (l *Logger) LogBuild(ctx context.Context, n int, algorithm string) {
	l.InfoContext(ctx, "index built",
		"text_len", n,
		"algorithm", algorithm,
	)
}

// LogSearch logs a single-pattern search.
func (l *Logger) LogSearch(ctx context.Context, patternLen, found int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "search failed",
			"pattern_len", patternLen,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "search completed",
			"pattern_len", patternLen,
			"found", found,
		)
	}
}

// LogGroupSearch logs a grouped proximity search.
func (l *Logger) LogGroupSearch(ctx context.Context, kind string, patterns, found int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "group search failed",
			"kind", kind,
			"patterns", patterns,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "group search completed",
			"kind", kind,
			"patterns", patterns,
			"found", found,
		)
	}
}

// LogExprSearch logs a boolean expression search.
func (l *Logger) LogExprSearch(ctx context.Context, expr string, found int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "expression search failed",
			"expr", expr,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "expression search completed",
			"expr", expr,
			"found", found,
		)
	}
}
