package space

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with the index's event helpers, so field names
// stay consistent.
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
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// enabled avoids building attributes for events nobody will see.
func (l *Logger) enabled() bool {
	return l.Enabled(context.Background(), slog.LevelDebug)
}

// LogSubdivide logs a leaf splitting into children.
func (l *Logger) LogSubdivide(bound fmt.Stringer, depthLimit, items int) {
	if !l.enabled() {
		return
	}
	l.Debug("subdivide",
		"bound", bound.String(),
		"depth_limit", depthLimit,
		"items", items,
	)
}

// LogMerge logs an internal node collapsing back into a leaf.
func (l *Logger) LogMerge(bound fmt.Stringer, depthLimit, items int) {
	if !l.enabled() {
		return
	}
	l.Debug("merge",
		"bound", bound.String(),
		"depth_limit", depthLimit,
		"items", items,
	)
}

// LogStaleDelete logs a delete that missed the child predicted from the
// item's position and had to search every child.
func (l *Logger) LogStaleDelete(handle uint32, depthLimit int) {
	if !l.enabled() {
		return
	}
	l.Debug("delete fell back to all children",
		"handle", handle,
		"depth_limit", depthLimit,
	)
}
