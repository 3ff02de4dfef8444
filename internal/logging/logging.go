// Package logging provides the best-effort session log.
//
// The interactive session must never die because a log line (or the log file
// itself) failed, so every constructor degrades to a no-op logger instead of
// returning an error.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Open appends to the session log at path. When the file cannot be opened
// the returned logger discards everything.
func Open(path string) *log.Logger {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return Discard()
	}
	return log.NewWithOptions(f, log.Options{
		Level:           log.InfoLevel,
		Formatter:       log.TextFormatter,
		ReportTimestamp: true,
		Prefix:          "tick",
	})
}

// Discard returns a logger that drops all output.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
