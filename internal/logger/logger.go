// Package logger configures charmbracelet/log's default logger for the
// application. TUI programs own the terminal, so logs go to a file.
package logger

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
)

// Setup points the default logger at path and sets the level. The
// returned file must be closed by the caller on shutdown.
func Setup(path string, debug bool) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	log.SetOutput(f)
	log.SetReportTimestamp(true)
	if debug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}

	return f, nil
}

// New creates a prefixed logger sharing the default logger's output
func New(prefix string) *log.Logger {
	return log.Default().WithPrefix(prefix)
}
