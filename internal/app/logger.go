package app

import (
	"io"
	"log/slog"
)

// newLogger creates and configures a new slog.Logger writing to w. It does
// not touch the global logger, so each App owns an isolated instance.
// Unknown level names fall back to info rather than failing startup; the
// cli package has already rejected levels a user typed by hand.
func newLogger(levelStr, formatStr string, w io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if formatStr == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}
