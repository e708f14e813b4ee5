package config

const (
	// DefaultTestDir is used by helpers when no directory was given
	DefaultTestDir = "."
	// DefaultShell is the interpreter shell tests are run with
	DefaultShell = "sh"
	// DefaultSuffix marks a file as a shell script test
	DefaultSuffix = ".sh"
	// DefaultLabelWidth is the column width the test label is padded to
	DefaultLabelWidth = 25
)
