package diag

import (
	"context"
	"io"
	"log/slog"
)

// Logger wraps a *slog.Logger with the small vocabulary the extraction
// pipeline actually emits: stage transitions and running counters.
type Logger struct {
	base *slog.Logger
}

// New returns a Logger writing JSON-structured records to w at level.
// A nil level defaults to slog.LevelInfo.
func New(w io.Writer, level slog.Leveler) *Logger {
	if level == nil {
		level = slog.LevelInfo
	}

	return &Logger{base: slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))}
}

// Noop returns a Logger that discards everything, for callers that don't
// want diagnostics (the default for library callers of facewalk.Discover).
func Noop() *Logger {
	return &Logger{base: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// Stage records entry into a named pipeline stage (e.g. "filament-prune",
// "wedge-detach", "nesting").
func (l *Logger) Stage(name string) {
	l.base.LogAttrs(context.Background(), slog.LevelInfo, "stage", slog.String("name", name))
}

// Counter records a named running count (e.g. component count,
// detachment count, polygon count).
func (l *Logger) Counter(name string, n int) {
	l.base.LogAttrs(context.Background(), slog.LevelDebug, "counter", slog.String("name", name), slog.Int("value", n))
}
