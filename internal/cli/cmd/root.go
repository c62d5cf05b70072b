// Package cmd provides Cobra CLI commands for candle.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/candle/internal/cli"
	"github.com/bnema/candle/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "candle",
		Short: "A scrollable tiling layout engine",
		Long: `Candle - windows in columns on an endless strip, one strip per workspace.

Windows live in columns; columns sit side by side on a horizontally
scrollable strip; every workspace has its own strip and only one is shown
at a time. Opening a window never resizes the others, the view scrolls
instead.

Use 'candle tui' for the interactive terminal host, or 'candle layout'
to replay a list of operations and print the resulting geometry.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs":
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.Options{Interactive: cmd.Name() == "tui"})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo records the binary's build info and enables --version.
// Call it before Execute.
func SetBuildInfo(info build.Info) {
	buildInfo = info
	rootCmd.Version = info.Short()
	rootCmd.SetVersionTemplate("candle {{.Version}}\n")
}
