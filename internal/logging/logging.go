// Package logging configures the diagnostic logger. The test report itself is
// printed by the ui package and never goes through here.
package logging

import (
	"io"

	log "github.com/sirupsen/logrus"
)

// New returns a logger writing plain text to out. Only warnings and errors are
// shown unless debug is set.
func New(out io.Writer, debug bool) *log.Logger {
	logger := log.New()
	logger.SetOutput(out)
	logger.SetFormatter(&log.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})

	logger.SetLevel(log.WarnLevel)
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// Discard returns a logger that drops everything, for tests and library use
func Discard() *log.Logger {
	logger := log.New()
	logger.SetOutput(io.Discard)
	return logger
}
