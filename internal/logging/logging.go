package logging

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// New builds the root logger. format is "text" or "json"; unknown levels fall back to info.
func New(w io.Writer, level, format string) *log.Logger {
	opts := log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Level:           ParseLevel(level),
	}
	if format == "json" {
		opts.Formatter = log.JSONFormatter
		opts.TimeFormat = time.RFC3339
	}
	return log.NewWithOptions(w, opts)
}

func ParseLevel(level string) log.Level {
	l, err := log.ParseLevel(level)
	if err != nil {
		return log.InfoLevel
	}
	return l
}

// Discard is a logger for tests and callers that don't want output.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
