package commands

import (
	"io"

	"github.com/spf13/cobra"

	"shtest/internal/cli"
	"shtest/internal/config"
	"shtest/internal/execution"
	"shtest/internal/ui"
)

// RunCommand handles the default command: run every test in a directory
type RunCommand struct {
	config     *config.Config
	aggregator *execution.Aggregator
	formatter  *ui.Formatter
	progressTo io.Writer
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	aggregator *execution.Aggregator,
	formatter *ui.Formatter,
	progressTo io.Writer,
) *RunCommand {
	return &RunCommand{
		config:     cfg,
		aggregator: aggregator,
		formatter:  formatter,
		progressTo: progressTo,
	}
}

// Execute runs the command. A run with failing tests returns a
// TestsFailedError carrying the largest exit code.
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	if rc.config.Flags.Progress {
		rc.aggregator.SetProgress(func(total int) execution.Progress {
			return ui.NewProgressBar(total, rc.progressTo)
		})
	}

	agg, err := rc.aggregator.RunTests(cmd.Context(), rc.config.GetTestDir())
	if err != nil {
		return err
	}

	if rc.config.Flags.Summary {
		rc.formatter.PrintSummary(agg)
	}

	if agg.Code != 0 {
		return &cli.TestsFailedError{Code: agg.Code}
	}
	return nil
}
