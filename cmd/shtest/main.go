package main

import (
	"context"
	"os"
	"os/signal"

	"shtest/internal/cli"
	"shtest/internal/cli/commands"
	"shtest/internal/config"
	"shtest/internal/ui"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	os.Exit(run())
}

// run executes the command line and returns the process exit status
func run() int {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "shtest <directory>",
		Short: "Run the shell script tests in a directory",
		Long: `Run every *.sh file directly inside a directory with sh, print PASS or FAIL
for each, and exit with the largest exit code any test returned.

A directory named like a subcommand (list, help) needs a path prefix:
  shtest ./list`,
		Version: version,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Colors are decided once, from stdout
	palette := ui.DetectPalette(os.Stdout)

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg, os.Stdout, os.Stderr, palette)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Execute root command
	cmd, err := rootCmd.ExecuteContextC(ctx)
	return cli.Report(os.Stderr, cmd, err)
}
