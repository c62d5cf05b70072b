// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"fmt"

	"github.com/bnema/candle/internal/cli/styles"
	"github.com/bnema/candle/internal/config"
	"github.com/bnema/candle/internal/domain/build"
	"github.com/bnema/candle/internal/domain/entity"
	"github.com/bnema/candle/internal/logging"
)

// Options tune how the App is assembled for a command.
type Options struct {
	// Interactive commands own the terminal: logs go to the log file only.
	Interactive bool
}

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme
	BuildInfo     build.Info

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp creates a new CLI application with all dependencies.
func NewApp(opts Options) (*App, error) {
	mgr, cfg, loadErr := loadConfig()

	theme := styles.NewTheme(cfg)

	logger, logCleanup, err := logging.NewWithFile(
		logging.Config{Level: logging.ParseLevel(cfg.Logging.Level), Format: cfg.Logging.Format, TimeFormat: "15:04:05"},
		logging.FileConfig{
			Enabled:       cfg.Logging.EnableFileLog,
			Dir:           cfg.Logging.LogDir,
			MaxSizeMB:     cfg.Logging.MaxSize,
			MaxBackups:    cfg.Logging.MaxBackups,
			MaxAgeDays:    cfg.Logging.MaxAge,
			Compress:      cfg.Logging.Compress,
			WriteToStderr: !opts.Interactive,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	ctx := logging.WithContext(context.Background(), logger)

	if loadErr != nil {
		logger.Warn().Err(loadErr).Msg("using default configuration")
	} else {
		logger.Debug().Str("config_file", mgr.GetConfigFile()).Msg("configuration loaded")
	}

	return &App{
		Config:        cfg,
		ConfigManager: mgr,
		Theme:         theme,
		ctx:           ctx,
		logCleanup:    logCleanup,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// NewLayoutManager builds a layout manager sized by the configuration.
func (a *App) NewLayoutManager() (*entity.LayoutManager, error) {
	return entity.NewLayoutManager(
		a.Config.Layout.Workspaces,
		entity.WithDefaultColumnWidth(a.Config.Layout.DefaultColumnWidth),
	)
}

// loadConfig loads configuration from standard locations. On failure the
// defaults are returned together with the error.
func loadConfig() (*config.Manager, *config.Config, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, config.DefaultConfig(), err
	}

	if err := mgr.Load(); err != nil {
		return mgr, config.DefaultConfig(), err
	}

	return mgr, mgr.Get(), nil
}
