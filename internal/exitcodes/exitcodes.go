// Package exitcodes defines the process exit statuses used by shtest.
package exitcodes

// A run that executes tests exits with the largest exit code reported by any
// test, so these constants only cover outcomes that are not test results:
//
// * Success (0): every executed test passed, or none were found
// * RuntimeErr (1): the harness itself failed (missing directory, shell not found)
// * Usage (2): wrong number of arguments or an unknown flag
const (
	Success    = 0 // All tests pass
	RuntimeErr = 1 // Harness failure
	Usage      = 2 // Bad invocation
)
