// Package log builds the slog loggers of tagfreq.
//
// Logs go to stderr so that reports written to stdout stay clean. Without
// verbose only warnings and errors are logged, with verbose the parser and
// the report builder log their progress at debug level.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	slog.SetDefault(logger)
package log

import (
	"io"
	"log/slog"
)

// Level returns the minimum level for the verbose setting.
func Level(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

// NewLogger creates a text logger writing to w.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: Level(verbose),
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

// NewJSONLogger creates a logger writing one JSON object per record to w.
// Useful for structured log aggregation.
func NewJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: Level(verbose),
	}

	return slog.New(slog.NewJSONHandler(w, opts))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
