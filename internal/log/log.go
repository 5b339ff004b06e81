package log

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// BuildLogger returns a JSON logger on stderr at the given level
// ("debug", "info", "warn" or "error"; anything else means info).
func BuildLogger(level string) *slog.Logger {
	return NewLogger(os.Stderr, level)
}

func NewLogger(w io.Writer, level string) *slog.Logger {
	ops := &slog.HandlerOptions{
		AddSource: true,
		Level:     ParseLevel(level),
	}
	return slog.New(slog.NewJSONHandler(w, ops))
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func ErrAttr(err error) slog.Attr {
	return slog.Any("error", err)
}
