package domain

import "fmt"

// Kind tells the runner how a discovered file is executed
type Kind int

const (
	// KindUnknown is a regular file that is not a recognized test. It is never run.
	KindUnknown Kind = iota
	// KindShell is a shell script test, executed as "<shell> <name>"
	KindShell
)

// String returns a short name for the kind
func (k Kind) String() string {
	switch k {
	case KindShell:
		return "shell"
	default:
		return "unknown"
	}
}

// TestCase represents a regular file found directly inside the test directory
type TestCase struct {
	Dir  string // Directory as given on the command line
	Name string // File name, no directory part
	Kind Kind
}

// Label is the human readable "<dir>/<name>" form used in the report
func (tc TestCase) Label() string {
	return fmt.Sprintf("%s/%s", tc.Dir, tc.Name)
}

// IsShellTest reports whether the case is a shell script test
func (tc TestCase) IsShellTest() bool {
	return tc.Kind == KindShell
}
