package commands

import (
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"shtest/internal/cli"
	"shtest/internal/config"
	"shtest/internal/discovery"
	"shtest/internal/execution"
	"shtest/internal/logging"
	"shtest/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	Run  *RunCommand
	List *ListCommand

	logger *log.Logger
}

// NewCommands creates all commands with dependencies. The palette is decided
// by the caller, normally from whether out is a terminal.
func NewCommands(cfg *config.Config, out, errOut io.Writer, palette ui.Palette) *Commands {
	// Initialize dependencies
	logger := logging.New(errOut, false)
	scanner := discovery.NewScanner(cfg.Suffix, logger)
	filter := discovery.NewFilter()
	reporter := ui.NewReporter(out, errOut, palette, cfg.LabelWidth)
	runner := execution.NewRunner(reporter, logger)
	aggregator := execution.NewAggregator(cfg, scanner, filter, runner, logger)
	formatter := ui.NewFormatter(out, palette)

	return &Commands{
		Run:    NewRunCommand(cfg, aggregator, formatter, errOut),
		List:   NewListCommand(cfg, scanner, aggregator, formatter),
		logger: logger,
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	rootCmd.SetFlagErrorFunc(cli.FlagError)
	// "completion" is a directory name like any other
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// The root command runs the tests: shtest <directory>
	rootCmd.Args = cli.ExactArgs(1)
	rootCmd.RunE = c.Run.Execute
	rootCmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		c.apply(cfg, flags, args)
		return nil
	}
	rootCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Run only tests whose file name matches the pattern (supports wildcards, e.g. '*admin*')")
	rootCmd.Flags().StringVarP(&flags.EnvFile, "env-file", "e", "", "Dotenv file whose variables are passed to every test")
	rootCmd.Flags().DurationVar(&flags.Timeout, "timeout", 0, "Kill a test that runs longer than this (0 disables)")
	rootCmd.Flags().BoolVar(&flags.Progress, "progress", false, "Show a progress bar on stderr")
	rootCmd.Flags().BoolVar(&flags.Summary, "summary", false, "Print pass/fail/skip counts after the run")
	rootCmd.PersistentFlags().BoolVar(&flags.Debug, "debug", false, "Log discovery and execution details to stderr")

	// List command
	listCmd := &cobra.Command{
		Use:   "list <directory>",
		Short: "List discovered tests",
		Long:  "Scan a directory and list the shell tests it contains without executing them",
		Args:  cli.ExactArgs(1),
		RunE:  c.List.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			c.apply(cfg, flags, args)
			return nil
		},
	}
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter tests by name pattern (supports wildcards, e.g. '*admin*')")
	rootCmd.AddCommand(listCmd)
}

// apply updates config with flags after parsing
func (c *Commands) apply(cfg *config.Config, flags *cli.Flags, args []string) {
	cfg.Apply(flags.ToConfigFlags())
	cfg.TestDir = args[0]
	if flags.Debug {
		c.logger.SetLevel(log.DebugLevel)
	}
}
