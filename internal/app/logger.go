package app

import (
	"io"
	"log/slog"
	"strings"
)

// DefaultLogLevel is used when no level, or an unrecognised one, is given.
const DefaultLogLevel = "warn"

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// newLogger builds an isolated slog.Logger writing to w. The global logger is
// left untouched. Format "json" selects the JSON handler, anything else text.
func newLogger(levelStr, formatStr string, w io.Writer) *slog.Logger {
	level, ok := logLevels[strings.ToLower(levelStr)]
	if !ok {
		level = logLevels[DefaultLogLevel]
	}
	opts := &slog.HandlerOptions{Level: level}

	switch formatStr {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts))
	default:
		return slog.New(slog.NewTextHandler(w, opts))
	}
}
