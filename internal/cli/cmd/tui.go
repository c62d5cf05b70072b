package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/candle/internal/cli/model"
	"github.com/bnema/candle/internal/config"
	"github.com/bnema/candle/internal/logging"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Run the interactive terminal host",
	Long: `Open a full screen terminal host for the layout engine.

Every window is a placeholder box. Press ? for the key bindings.
Logs go to the log file only (enable it with logging.enable_file_log).`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()
	defer logging.RecoverPanic(ctx)

	lm, err := app.NewLayoutManager()
	if err != nil {
		return err
	}

	m := model.NewLayoutModel(ctx, app.Theme, model.LayoutModelConfig{
		Manager: lm,
		Layout:  app.Config.Layout,
		Padding: app.Config.Viewport.Padding,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())

	// Appearance changes apply live; layout sizes need a restart.
	if app.ConfigManager != nil {
		app.ConfigManager.OnConfigChange(func(cfg *config.Config) {
			p.Send(model.ThemeChangedMsg{Appearance: cfg.Appearance})
		})
		if err := app.ConfigManager.Watch(); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("config watch disabled")
		}
	}

	logging.FromContext(ctx).Info().
		Int("workspaces", lm.WorkspaceCount()).
		Float64("default_column_width", lm.DefaultColumnWidth()).
		Msg("starting terminal host")

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run terminal host: %w", err)
	}
	return nil
}
