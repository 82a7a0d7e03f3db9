// Package logging builds the diagnostic logger used by the command layer.
package logging

import (
	"io"

	clog "github.com/charmbracelet/log"
)

const prefix = "master"

// New returns a logger writing to w. Debug output is only emitted when debug
// is true; warnings and errors are always shown.
func New(w io.Writer, debug bool) *clog.Logger {
	logger := clog.NewWithOptions(w, clog.Options{
		Prefix: prefix,
		Level:  clog.WarnLevel,
	})
	if debug {
		logger.SetLevel(clog.DebugLevel)
		logger.SetReportTimestamp(true)
	}

	return logger
}

// Discard is a logger that drops everything.
func Discard() *clog.Logger {
	return clog.NewWithOptions(io.Discard, clog.Options{Level: clog.FatalLevel})
}
