// Package logging builds the slog loggers used by the hanoi command.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// New returns a text logger for w. Timestamps are dropped since the log
// interleaves with an interactive session, and "error" is shortened to "err".
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: replaceAttr,
	}))
}

// NewStderr logs to stderr, keeping the puzzle transcript on stdout clean.
func NewStderr(level slog.Level) *slog.Logger {
	return New(os.Stderr, level)
}

func NewNop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func replaceAttr(groups []string, a slog.Attr) slog.Attr {
	if len(groups) > 0 {
		return a
	}
	switch a.Key {
	case slog.TimeKey:
		return slog.Attr{}
	case "error":
		a.Key = "err"
	}
	return a
}
