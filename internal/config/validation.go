package config

import (
	"fmt"
	"regexp"
	"strings"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLayout(config)...)
	validationErrors = append(validationErrors, validateViewport(config)...)
	validationErrors = append(validationErrors, validateAppearance(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

// Validate reports every invalid value of cfg in one error.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	return validateConfig(cfg)
}

func validateLayout(config *Config) []string {
	var validationErrors []string
	l := config.Layout
	if l.Workspaces < 1 {
		validationErrors = append(validationErrors, "layout.workspaces must be at least 1")
	}
	if l.DefaultColumnWidth <= 0 {
		validationErrors = append(validationErrors, "layout.default_column_width must be positive")
	}
	if l.MinColumnWidth <= 0 {
		validationErrors = append(validationErrors, "layout.min_column_width must be positive")
	}
	if l.MaxColumnWidth < l.MinColumnWidth {
		validationErrors = append(validationErrors, "layout.max_column_width must not be below layout.min_column_width")
	}
	if l.DefaultColumnWidth > 0 && l.MinColumnWidth > 0 && l.MaxColumnWidth >= l.MinColumnWidth &&
		(l.DefaultColumnWidth < l.MinColumnWidth || l.DefaultColumnWidth > l.MaxColumnWidth) {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"layout.default_column_width must be between %v and %v (got: %v)",
			l.MinColumnWidth, l.MaxColumnWidth, l.DefaultColumnWidth,
		))
	}
	if l.ResizeStep <= 0 {
		validationErrors = append(validationErrors, "layout.resize_step must be positive")
	}
	if l.ScrollStep <= 0 {
		validationErrors = append(validationErrors, "layout.scroll_step must be positive")
	}
	return validationErrors
}

func validateViewport(config *Config) []string {
	var validationErrors []string
	p := config.Viewport.Padding
	for name, v := range map[string]float64{"top": p.Top, "bottom": p.Bottom, "left": p.Left, "right": p.Right} {
		if v < 0 {
			validationErrors = append(validationErrors, fmt.Sprintf("viewport.padding.%s must be non-negative", name))
		}
	}
	return validationErrors
}

func validateAppearance(config *Config) []string {
	var validationErrors []string
	a := config.Appearance
	colors := []struct{ key, value string }{
		{"appearance.accent_color", a.AccentColor},
		{"appearance.border_color", a.BorderColor},
		{"appearance.text_color", a.TextColor},
		{"appearance.muted_color", a.MutedColor},
	}
	for _, c := range colors {
		if !hexColorPattern.MatchString(c.value) {
			validationErrors = append(validationErrors, fmt.Sprintf("%s must be a #rrggbb color (got: %q)", c.key, c.value))
		}
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level must be one of: trace, debug, info, warn, error (got: %s)", config.Logging.Level,
		))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.format must be one of: console, json (got: %s)", config.Logging.Format,
		))
	}
	if config.Logging.MaxSize < 1 {
		validationErrors = append(validationErrors, "logging.max_size must be at least 1")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	if config.Logging.MaxAge < 0 {
		validationErrors = append(validationErrors, "logging.max_age must be non-negative")
	}
	return validationErrors
}
