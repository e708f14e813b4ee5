package domain

import "time"

// ExecutionResult represents the outcome of running one test program
type ExecutionResult struct {
	Label    string        // Label printed in the report
	ExitCode int           // Exit status; 128+signal when the child was killed
	Stdout   []byte        // Captured standard output
	Stderr   []byte        // Captured standard error
	Duration time.Duration // Time taken to execute
}

// Passed reports whether the test exited with status 0
func (r ExecutionResult) Passed() bool {
	return r.ExitCode == 0
}

// Aggregate tracks the outcome of one directory run.
// Code is the maximum of 0 and every exit code observed.
type Aggregate struct {
	Code     int
	Passed   int
	Failed   int
	Skipped  int
	Duration time.Duration
}

// Observe folds a single result into the aggregate. Code never decreases.
func (a *Aggregate) Observe(r ExecutionResult) {
	if r.Passed() {
		a.Passed++
	} else {
		a.Failed++
	}
	if r.ExitCode > a.Code {
		a.Code = r.ExitCode
	}
}

// Skip records a file that was discovered but not executed
func (a *Aggregate) Skip() {
	a.Skipped++
}
