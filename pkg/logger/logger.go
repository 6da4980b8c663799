package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/chainguard-dev/clog"
)

// ParseLevel converts a level name to its slog level. Unknown names fall
// back to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New creates a logger that writes text lines to w at the given level.
func New(w io.Writer, level string) *clog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	})
	return clog.New(handler)
}

// Setup creates the process logger on stderr. Commands install it into
// their context with clog.WithLogger so library code can retrieve it via
// clog.FromContext.
func Setup(level string) *clog.Logger {
	return New(os.Stderr, level)
}
