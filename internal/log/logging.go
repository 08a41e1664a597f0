// Package log builds the slog.Logger used by the command line tools.
package log

import (
	"io"
	"log/slog"
	"strings"
)

// LevelTrace is below Debug and enables per-frame pipeline output.
const LevelTrace slog.Level = -8

// ParseLevel maps a level name to a slog level. Unknown names mean info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "info", "":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Setup returns a text logger writing records at or above level to w and
// makes it the slog default.
func Setup(level string, w io.Writer) *slog.Logger {
	lvl := ParseLevel(level)
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: lvl,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey && a.Value.Any() == LevelTrace {
				a.Value = slog.StringValue("TRACE")
			}
			return a
		},
	}))
	slog.SetDefault(logger)
	return logger
}
