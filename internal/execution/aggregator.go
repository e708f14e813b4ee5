package execution

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"shtest/internal/config"
	"shtest/internal/discovery"
	"shtest/internal/domain"
)

// Progress receives updates after every executed test
type Progress interface {
	Update(passed, failed int)
	Finish()
}

// Aggregator discovers the tests in a directory and runs them one at a time
type Aggregator struct {
	config      *config.Config
	scanner     *discovery.Scanner
	filter      *discovery.Filter
	runner      *Runner
	logger      *log.Logger
	newProgress func(total int) Progress
}

// NewAggregator creates a new Aggregator
func NewAggregator(cfg *config.Config, scanner *discovery.Scanner, filter *discovery.Filter, runner *Runner, logger *log.Logger) *Aggregator {
	return &Aggregator{
		config:  cfg,
		scanner: scanner,
		filter:  filter,
		runner:  runner,
		logger:  logger,
	}
}

// SetProgress installs a factory called once the number of tests to run is known
func (a *Aggregator) SetProgress(newProgress func(total int) Progress) {
	a.newProgress = newProgress
}

// RunTests runs every shell test directly inside dir and returns the
// aggregate. Aggregate.Code is the largest exit code seen, or 0. A failing
// test never stops the run; an error is only returned when the directory
// cannot be listed or a test cannot be started.
//
// dir is never made the process working directory; each child gets it as its
// own working directory instead, so concurrent calls do not interfere.
func (a *Aggregator) RunTests(ctx context.Context, dir string) (domain.Aggregate, error) {
	var agg domain.Aggregate
	start := time.Now()

	env, err := a.config.ChildEnv()
	if err != nil {
		return agg, err
	}

	cases, err := a.scanner.Scan(dir)
	if err != nil {
		return agg, err
	}

	pattern := a.config.Flags.NameFilter
	var progress Progress
	if a.newProgress != nil {
		progress = a.newProgress(len(a.Runnable(cases)))
		defer progress.Finish()
	}

	for _, tc := range cases {
		switch tc.Kind {
		case domain.KindShell:
			if !a.filter.Match(tc.Name, pattern) {
				a.logger.WithField("test", tc.Name).Debug("excluded by filter")
				agg.Skip()
				continue
			}
			if err := ctx.Err(); err != nil {
				return agg, err
			}

			result, err := a.runShell(ctx, tc, env)
			if err != nil {
				return agg, err
			}
			agg.Observe(result)

			if progress != nil {
				progress.Update(agg.Passed, agg.Failed)
			}
		case domain.KindUnknown:
			// Not a test kind we can execute
			a.logger.WithField("file", tc.Name).Debug("not a recognized test")
			agg.Skip()
		}
	}

	agg.Duration = time.Since(start)
	return agg, nil
}

// Runnable returns the shell tests that pass the configured name filter
func (a *Aggregator) Runnable(cases []domain.TestCase) []domain.TestCase {
	var shell []domain.TestCase
	for _, tc := range cases {
		if tc.IsShellTest() {
			shell = append(shell, tc)
		}
	}
	return a.filter.FilterByName(shell, a.config.Flags.NameFilter)
}

func (a *Aggregator) runShell(ctx context.Context, tc domain.TestCase, env []string) (domain.ExecutionResult, error) {
	if a.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.config.Timeout)
		defer cancel()
	}

	return a.runner.Run(ctx, tc.Label(), Command{
		Dir:  tc.Dir,
		Args: []string{a.config.Shell, tc.Name},
		Env:  env,
	})
}
