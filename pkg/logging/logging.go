// Package logging builds the diagnostic logger for a run.
package logging

import (
	"io"
	"log/slog"
)

// New creates a configured slog.Logger instance. It does not set the global
// logger, allowing for isolated logger instances. Verbose enables
// debug-level output; format selects the text or json handler.
func New(verbose bool, format string, w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler

	if format == "json" {
		handler = slog.NewJSONHandler(w, handlerOpts)
	} else {
		handler = slog.NewTextHandler(w, handlerOpts)
	}

	return slog.New(handler)
}
