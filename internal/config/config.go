// Package config provides configuration management for candle with Viper integration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// File permission constants
const (
	dirPerm  = 0755 // Standard directory permissions (rwxr-xr-x)
	filePerm = 0644 // Standard file permissions (rw-r--r--)
)

// Config represents the complete configuration for candle.
type Config struct {
	// Layout sizes the workspace/column model.
	Layout LayoutConfig `mapstructure:"layout" toml:"layout" json:"layout"`
	// Viewport describes the host container around the layout.
	Viewport ViewportConfig `mapstructure:"viewport" toml:"viewport" json:"viewport"`
	// Appearance styles the terminal host.
	Appearance AppearanceConfig `mapstructure:"appearance" toml:"appearance" json:"appearance"`
	Logging    LoggingConfig    `mapstructure:"logging" toml:"logging" json:"logging"`
}

// LayoutConfig holds layout-model configuration.
type LayoutConfig struct {
	// Workspaces is the fixed number of workspaces (at least 1).
	Workspaces int `mapstructure:"workspaces" toml:"workspaces" json:"workspaces" jsonschema:"minimum=1,maximum=100,default=10"`
	// DefaultColumnWidth is the width of new columns, in percent of one page.
	DefaultColumnWidth float64 `mapstructure:"default_column_width" toml:"default_column_width" json:"default_column_width" jsonschema:"exclusiveMinimum=0,default=50"`
	// MinColumnWidth and MaxColumnWidth bound interactive resizing.
	MinColumnWidth float64 `mapstructure:"min_column_width" toml:"min_column_width" json:"min_column_width" jsonschema:"exclusiveMinimum=0,default=10"`
	MaxColumnWidth float64 `mapstructure:"max_column_width" toml:"max_column_width" json:"max_column_width" jsonschema:"exclusiveMinimum=0,default=100"`
	// ResizeStep is the width change applied by one grow/shrink action.
	ResizeStep float64 `mapstructure:"resize_step" toml:"resize_step" json:"resize_step" jsonschema:"exclusiveMinimum=0,default=10"`
	// ScrollStep is the offset applied by one scroll action.
	ScrollStep float64 `mapstructure:"scroll_step" toml:"scroll_step" json:"scroll_step" jsonschema:"exclusiveMinimum=0,default=25"`
}

// ViewportConfig holds the host container geometry.
type ViewportConfig struct {
	Padding PaddingConfig `mapstructure:"padding" toml:"padding" json:"padding"`
}

// PaddingConfig is the inner padding of the container, in cells or pixels
// depending on the host.
type PaddingConfig struct {
	Top    float64 `mapstructure:"top" toml:"top" json:"top" jsonschema:"minimum=0"`
	Bottom float64 `mapstructure:"bottom" toml:"bottom" json:"bottom" jsonschema:"minimum=0"`
	Left   float64 `mapstructure:"left" toml:"left" json:"left" jsonschema:"minimum=0"`
	Right  float64 `mapstructure:"right" toml:"right" json:"right" jsonschema:"minimum=0"`
}

// AppearanceConfig holds terminal host colors as #rrggbb strings.
type AppearanceConfig struct {
	AccentColor string `mapstructure:"accent_color" toml:"accent_color" json:"accent_color" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	BorderColor string `mapstructure:"border_color" toml:"border_color" json:"border_color" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	TextColor   string `mapstructure:"text_color" toml:"text_color" json:"text_color" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	MutedColor  string `mapstructure:"muted_color" toml:"muted_color" json:"muted_color" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,default=info"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json,default=console"`

	// File output configuration
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	LogDir        string `mapstructure:"log_dir" toml:"log_dir" json:"log_dir"`
	MaxSize       int    `mapstructure:"max_size" toml:"max_size" json:"max_size" jsonschema:"minimum=1"`
	MaxBackups    int    `mapstructure:"max_backups" toml:"max_backups" json:"max_backups" jsonschema:"minimum=0"`
	MaxAge        int    `mapstructure:"max_age" toml:"max_age" json:"max_age" jsonschema:"minimum=0"`
	Compress      bool   `mapstructure:"compress" toml:"compress" json:"compress"`
}

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
	// skipNextReload is set by Save so the watcher does not re-read our own write.
	skipNextReload bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	// Configure Viper for TOML as default format
	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)

	// CANDLE_LAYOUT_WORKSPACES, CANDLE_LOGGING_LEVEL, ...
	v.SetEnvPrefix("CANDLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Short forms shared with the logging package.
	if err := v.BindEnv("logging.level", "CANDLE_LOG_LEVEL", "CANDLE_LOGGING_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind CANDLE_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "CANDLE_LOG_FORMAT", "CANDLE_LOGGING_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind CANDLE_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			if createErr := m.createDefaultConfig(); createErr != nil {
				configDir, _ := GetConfigDir()
				return fmt.Errorf(
					"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
					configDir,
					createErr,
				)
			}
			if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
				return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
			}
			return nil
		}
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configDir, _ := GetConfigDir()
			configFile = filepath.Join(configDir, "config.toml")
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

// normalizeConfig lower-cases enum-like strings and fills derived paths.
func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Level == "warning" {
		config.Logging.Level = "warn"
	}
	if config.Logging.LogDir == "" {
		config.Logging.LogDir = getDefaultLogDir()
	}
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	// Return a copy to prevent external modification
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// Save validates cfg, writes it to the config file and makes it current.
func (m *Manager) Save(cfg *Config) error {
	if err := Validate(cfg); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	path := m.viper.ConfigFileUsed()
	if path == "" {
		var err error
		if path, err = GetConfigFile(); err != nil {
			return err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := WriteConfigOrdered(cfg, path); err != nil {
		return err
	}

	saved := *cfg
	m.config = &saved
	if m.watching {
		m.skipNextReload = true
	}
	return nil
}

// createDefaultConfig writes the defaults as an ordered TOML file next to
// its JSON schema.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}
	if err := WriteConfigOrdered(DefaultConfig(), configFile); err != nil {
		return err
	}
	if _, err := GenerateSchemaFile(); err != nil {
		return err
	}
	m.viper.SetConfigFile(configFile)
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setLayoutDefaults(defaults)
	m.setViewportDefaults(defaults)
	m.setAppearanceDefaults(defaults)
	m.setLoggingDefaults(defaults)
}

func (m *Manager) setLayoutDefaults(defaults *Config) {
	m.viper.SetDefault("layout.workspaces", defaults.Layout.Workspaces)
	m.viper.SetDefault("layout.default_column_width", defaults.Layout.DefaultColumnWidth)
	m.viper.SetDefault("layout.min_column_width", defaults.Layout.MinColumnWidth)
	m.viper.SetDefault("layout.max_column_width", defaults.Layout.MaxColumnWidth)
	m.viper.SetDefault("layout.resize_step", defaults.Layout.ResizeStep)
	m.viper.SetDefault("layout.scroll_step", defaults.Layout.ScrollStep)
}

func (m *Manager) setViewportDefaults(defaults *Config) {
	m.viper.SetDefault("viewport.padding.top", defaults.Viewport.Padding.Top)
	m.viper.SetDefault("viewport.padding.bottom", defaults.Viewport.Padding.Bottom)
	m.viper.SetDefault("viewport.padding.left", defaults.Viewport.Padding.Left)
	m.viper.SetDefault("viewport.padding.right", defaults.Viewport.Padding.Right)
}

func (m *Manager) setAppearanceDefaults(defaults *Config) {
	m.viper.SetDefault("appearance.accent_color", defaults.Appearance.AccentColor)
	m.viper.SetDefault("appearance.border_color", defaults.Appearance.BorderColor)
	m.viper.SetDefault("appearance.text_color", defaults.Appearance.TextColor)
	m.viper.SetDefault("appearance.muted_color", defaults.Appearance.MutedColor)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.max_size", defaults.Logging.MaxSize)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age", defaults.Logging.MaxAge)
	m.viper.SetDefault("logging.compress", defaults.Logging.Compress)
}
