package ui

import (
	"io"

	"github.com/agentx-labs/new-component/internal/branding"
	"github.com/charmbracelet/log"
)

// NewLogger returns the diagnostic logger. Debug output is only emitted when
// verbose is set; warnings and errors always are.
func NewLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:  level,
		Prefix: branding.CLIName(),
	})
}

// DiscardLogger returns a logger that writes nowhere.
func DiscardLogger() *log.Logger {
	return log.New(io.Discard)
}
