package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"shtest/internal/exitcodes"
)

// UsageError reports a bad invocation: wrong arguments or an unknown flag
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

// TestsFailedError carries the aggregate exit code of a run with failures.
// The failures have already been reported, so it prints nothing.
type TestsFailedError struct {
	Code int
}

func (e *TestsFailedError) Error() string {
	return fmt.Sprintf("tests failed with exit code %d", e.Code)
}

// ExactArgs is cobra.ExactArgs returning a UsageError
func ExactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return &UsageError{Err: fmt.Errorf("expected exactly %d directory argument, got %d", n, len(args))}
		}
		return nil
	}
}

// FlagError wraps flag parsing failures as usage errors
func FlagError(cmd *cobra.Command, err error) error {
	return &UsageError{Err: err}
}

// ExitCode maps the error returned by command execution to a process status
func ExitCode(err error) int {
	if err == nil {
		return exitcodes.Success
	}

	var failed *TestsFailedError
	if errors.As(err, &failed) {
		return failed.Code
	}

	var usage *UsageError
	if errors.As(err, &usage) {
		return exitcodes.Usage
	}

	return exitcodes.RuntimeErr
}

// Report prints err for the user and returns the process exit status.
// Usage errors are followed by the usage text of the command that failed.
func Report(w io.Writer, cmd *cobra.Command, err error) int {
	code := ExitCode(err)
	if err == nil {
		return code
	}

	var failed *TestsFailedError
	if errors.As(err, &failed) {
		return code
	}

	fmt.Fprintf(w, "Error: %v\n", err)

	var usage *UsageError
	if errors.As(err, &usage) && cmd != nil {
		fmt.Fprint(w, cmd.UsageString())
	}
	return code
}
