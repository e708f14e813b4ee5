package cli

import (
	"time"

	"shtest/internal/config"
)

// Flags holds command-line flags
type Flags struct {
	NameFilter string
	EnvFile    string
	Timeout    time.Duration
	Progress   bool
	Summary    bool
	Debug      bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		NameFilter: f.NameFilter,
		EnvFile:    f.EnvFile,
		Timeout:    f.Timeout,
		Progress:   f.Progress,
		Summary:    f.Summary,
		Debug:      f.Debug,
	}
}
