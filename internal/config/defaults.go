package config

// Default configuration constants
const (
	// Layout defaults
	defaultWorkspaces     = 10
	defaultColumnWidth    = 50.0 // percent of a page
	defaultMinColumnWidth = 10.0
	defaultMaxColumnWidth = 100.0
	defaultResizeStep     = 10.0
	defaultScrollStep     = 25.0

	// Logging defaults
	defaultMaxLogSizeMB  = 10 // MB
	defaultMaxBackups    = 3  // backup files
	defaultMaxLogAgeDays = 7  // days
)

// getDefaultLogDir returns the default log directory, falls back to empty string on error
func getDefaultLogDir() string {
	logDir, err := GetLogDir()
	if err != nil {
		return ""
	}
	return logDir
}

// DefaultConfig returns the default configuration values for candle.
func DefaultConfig() *Config {
	return &Config{
		Layout: LayoutConfig{
			Workspaces:         defaultWorkspaces,
			DefaultColumnWidth: defaultColumnWidth,
			MinColumnWidth:     defaultMinColumnWidth,
			MaxColumnWidth:     defaultMaxColumnWidth,
			ResizeStep:         defaultResizeStep,
			ScrollStep:         defaultScrollStep,
		},
		Viewport: ViewportConfig{
			Padding: PaddingConfig{},
		},
		Appearance: AppearanceConfig{
			AccentColor: "#f5a97f",
			BorderColor: "#494d64",
			TextColor:   "#cad3f5",
			MutedColor:  "#6e738d",
		},
		Logging: LoggingConfig{
			Level:         "info",
			Format:        "console",
			EnableFileLog: false,
			LogDir:        getDefaultLogDir(),
			MaxSize:       defaultMaxLogSizeMB,
			MaxBackups:    defaultMaxBackups,
			MaxAge:        defaultMaxLogAgeDays,
			Compress:      true,
		},
	}
}
