package logging

import (
	"log/slog"
	"os"
)

// New builds the process logger. JSON output is the default; text is kept
// for local runs.
func New(json bool, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if json {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(h)
}
