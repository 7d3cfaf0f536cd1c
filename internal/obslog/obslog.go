// Package obslog provides the structured logger used across shamirvault.
// It wraps log/slog the way the teacher's internal/config/logging.go does:
// a small level enum, a single constructor, and an explicit Off level so
// a host application can silence logging entirely rather than redirecting
// it to io.Discard. No secret material is ever passed to a Logger method;
// callers pass byte counts, x-coordinates, and error kinds instead of
// secret or share content.
package obslog

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Level selects how much a Logger emits.
type Level int

const (
	// Off disables logging entirely; a Logger at this level is a no-op.
	Off Level = iota
	// Error logs only failures.
	Error
	// Debug logs failures plus step-by-step operational detail.
	Debug
)

// Logger is a thin wrapper over *slog.Logger that understands the Off
// level in addition to slog's own leveling.
type Logger struct {
	level Level
	slog  *slog.Logger
}

// New builds a Logger writing JSON lines to w at the given level. A nil w
// defaults to os.Stderr.
func New(level Level, w io.Writer) *Logger {
	if w == nil {
		w = os.Stderr
	}
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: toSlogLevel(level)})
	return &Logger{level: level, slog: slog.New(handler)}
}

// NullLogger returns a Logger at the Off level, suitable as a default
// when a host application does not wire in its own logger.
func NullLogger() *Logger {
	return &Logger{level: Off, slog: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func toSlogLevel(l Level) slog.Level {
	if l == Debug {
		return slog.LevelDebug
	}
	return slog.LevelError
}

// Errorf logs an error-level message with structured key/value pairs.
func (l *Logger) Errorf(msg string, kv ...any) {
	if l == nil || l.level == Off {
		return
	}
	l.slog.Log(context.Background(), slog.LevelError, msg, kv...)
}

// Debugf logs a debug-level message with structured key/value pairs. It
// is a no-op unless the Logger's level is Debug.
func (l *Logger) Debugf(msg string, kv ...any) {
	if l == nil || l.level != Debug {
		return
	}
	l.slog.Log(context.Background(), slog.LevelDebug, msg, kv...)
}
