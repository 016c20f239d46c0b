// Package logging builds the debug logger. Logging is off unless
// DIFF2HTML_LOG_FILE names a file; records are appended to it as text.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

const FileEnv = "DIFF2HTML_LOG_FILE"

func New(w io.Writer) *slog.Logger {
	if w == nil {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// FromEnv returns a logger writing to $DIFF2HTML_LOG_FILE and a func that
// closes the file. A missing or unopenable path yields a discard logger.
func FromEnv() (*slog.Logger, func()) {
	path := strings.TrimSpace(os.Getenv(FileEnv))
	if path == "" {
		return New(nil), func() {}
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return New(nil), func() {}
	}
	return New(f), func() { _ = f.Close() }
}
