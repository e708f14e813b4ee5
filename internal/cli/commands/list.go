package commands

import (
	"github.com/spf13/cobra"

	"shtest/internal/config"
	"shtest/internal/discovery"
	"shtest/internal/execution"
	"shtest/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config     *config.Config
	scanner    *discovery.Scanner
	aggregator *execution.Aggregator
	formatter  *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	aggregator *execution.Aggregator,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:     cfg,
		scanner:    scanner,
		aggregator: aggregator,
		formatter:  formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	dir := lc.config.GetTestDir()
	cases, err := lc.scanner.Scan(dir)
	if err != nil {
		return err
	}

	lc.formatter.PrintTestList(dir, lc.aggregator.Runnable(cases))
	return nil
}
