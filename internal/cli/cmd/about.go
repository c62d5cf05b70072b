package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/candle/internal/cli/styles"
)

var aboutShort bool

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show version and build information",
	Long:  `Show the logo with version, commit, build date and Go version. --short prints the version line only.`,
	RunE:  runAbout,
}

func init() {
	rootCmd.AddCommand(aboutCmd)
	aboutCmd.Flags().BoolVar(&aboutShort, "short", false, "print only the version and commit")
}

func runAbout(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	if aboutShort {
		fmt.Fprintln(cmd.OutOrStdout(), app.BuildInfo.Short())
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewAboutRenderer(app.Theme).Render(app.BuildInfo))
	return nil
}
