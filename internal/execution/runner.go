package execution

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"shtest/internal/domain"
	"shtest/internal/ui"
)

// waitDelay bounds how long Run waits for output after the test was killed
const waitDelay = 2 * time.Second

// Command describes one test program invocation
type Command struct {
	Dir  string   // Working directory of the child
	Args []string // Program and arguments
	Env  []string // Full child environment; nil inherits the current one
}

// Runner executes a single test program and reports its outcome
type Runner struct {
	reporter *ui.Reporter
	logger   *log.Logger
}

// NewRunner creates a new Runner
func NewRunner(reporter *ui.Reporter, logger *log.Logger) *Runner {
	return &Runner{
		reporter: reporter,
		logger:   logger,
	}
}

// Run prints the label, runs the command to completion with its output
// captured, and prints PASS or FAIL. The returned error is only set when the
// program could not be started at all; a non-zero exit is a normal result.
func (r *Runner) Run(ctx context.Context, label string, command Command) (domain.ExecutionResult, error) {
	result := domain.ExecutionResult{Label: label}
	if len(command.Args) == 0 {
		return result, fmt.Errorf("no command given for %s", label)
	}

	r.reporter.Start(label)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, command.Args[0], command.Args[1:]...)
	cmd.Dir = command.Dir
	cmd.Env = command.Env
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	// Tests run in their own process group so a cancel also reaches anything
	// the script started; otherwise a grandchild keeps the output pipes open
	setProcessGroup(cmd)
	cmd.Cancel = func() error { return killProcessGroup(cmd) }
	cmd.WaitDelay = waitDelay

	r.logger.WithFields(log.Fields{
		"dir":  command.Dir,
		"args": command.Args,
	}).Debug("spawning test")

	start := time.Now()
	err := cmd.Run()
	result.Duration = time.Since(start)
	result.Stdout = stdout.Bytes()
	result.Stderr = stderr.Bytes()

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		result.ExitCode = 0
	case errors.As(err, &exitErr):
		result.ExitCode = exitStatus(exitErr)
	default:
		r.reporter.Abort()
		return result, fmt.Errorf("failed to run %s: %w", label, err)
	}

	r.logger.WithFields(log.Fields{
		"test":     label,
		"exit":     result.ExitCode,
		"duration": result.Duration.Round(time.Millisecond),
	}).Debug("test finished")

	r.reporter.Finish(result)
	return result, nil
}

// exitStatus converts a child's exit state to a non-negative code. A child
// killed by a signal reports 128+signal, as shells do.
func exitStatus(err *exec.ExitError) int {
	if code := err.ExitCode(); code >= 0 {
		return code
	}
	if status, ok := err.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		return 128 + int(status.Signal())
	}
	return 1
}
