package config

import "time"

// Config holds all configuration for the application
type Config struct {
	// Directory holding the tests, exactly as given on the command line
	TestDir string

	// Execution settings
	Shell   string
	Suffix  string
	Timeout time.Duration

	// Optional dotenv file whose variables are passed to every test
	EnvFile string

	// Output settings
	LabelWidth int

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	NameFilter string
	EnvFile    string
	Timeout    time.Duration
	Progress   bool
	Summary    bool
	Debug      bool
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		TestDir:    DefaultTestDir,
		Shell:      DefaultShell,
		Suffix:     DefaultSuffix,
		LabelWidth: DefaultLabelWidth,
	}
}

// Load creates a config and applies flags
func Load(flags Flags) *Config {
	cfg := New()
	cfg.Apply(flags)
	return cfg
}

// Apply copies parsed flags into the config
func (c *Config) Apply(flags Flags) {
	c.Flags = flags

	if flags.EnvFile != "" {
		c.EnvFile = flags.EnvFile
	}
	if flags.Timeout > 0 {
		c.Timeout = flags.Timeout
	}
}

// GetTestDir returns the test directory, falling back to the default
func (c *Config) GetTestDir() string {
	if c.TestDir == "" {
		return DefaultTestDir
	}
	return c.TestDir
}
