// Package logging configures the structured stderr logger used across the
// commands.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to os.Stderr at the given level. Valid levels
// are "debug", "info", "warn" and "error"; anything else falls back to info.
func New(level string) *log.Logger {
	return NewWithWriter(os.Stderr, level)
}

func NewWithWriter(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: false,
	})

	switch strings.ToLower(level) {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "warn", "warning":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}

	return logger
}

// Discard returns a logger that drops everything; used by tests and as a
// safe default for nil logger parameters.
func Discard() *log.Logger {
	return NewWithWriter(io.Discard, "error")
}
