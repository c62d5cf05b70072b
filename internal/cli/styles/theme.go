// Package styles provides reusable lipgloss-based TUI components.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/candle/internal/config"
)

// Fixed status colors; the appearance section only covers the base palette.
const (
	errorColor   = lipgloss.Color("#ed8796")
	warningColor = lipgloss.Color("#eed49f")
	successColor = lipgloss.Color("#a6da95")
)

// Theme holds lipgloss colors and styles derived from config.
type Theme struct {
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Accent lipgloss.Color
	Border lipgloss.Color

	Error   lipgloss.Color
	Warning lipgloss.Color
	Success lipgloss.Color

	Title        lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style

	// Layout host
	Win           lipgloss.Style
	WinFocused    lipgloss.Style
	WorkspaceTab  lipgloss.Style
	WorkspaceCurr lipgloss.Style
	StatusBar     lipgloss.Style
}

// NewTheme creates a Theme from cfg. A nil cfg uses the default palette.
func NewTheme(cfg *config.Config) *Theme {
	if cfg == nil {
		return NewThemeFromAppearance(config.DefaultConfig().Appearance)
	}
	return NewThemeFromAppearance(cfg.Appearance)
}

// NewThemeFromAppearance creates a Theme from the appearance section. Empty
// colors take their default.
func NewThemeFromAppearance(a config.AppearanceConfig) *Theme {
	def := config.DefaultConfig().Appearance
	pick := func(v, fallback string) lipgloss.Color {
		if v == "" {
			return lipgloss.Color(fallback)
		}
		return lipgloss.Color(v)
	}

	t := &Theme{
		Text:    pick(a.TextColor, def.TextColor),
		Muted:   pick(a.MutedColor, def.MutedColor),
		Accent:  pick(a.AccentColor, def.AccentColor),
		Border:  pick(a.BorderColor, def.BorderColor),
		Error:   errorColor,
		Warning: warningColor,
		Success: successColor,
	}
	t.buildStyles()
	return t
}

func (t *Theme) buildStyles() {
	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }

	t.Title = fg(t.Text).Bold(true)
	t.Subtle = fg(t.Muted)
	t.Highlight = fg(t.Accent).Bold(true)
	t.ErrorStyle = fg(t.Error)
	t.WarningStyle = fg(t.Warning)
	t.SuccessStyle = fg(t.Success)

	t.Win = fg(t.Border)
	t.WinFocused = fg(t.Accent).Bold(true)
	t.WorkspaceTab = fg(t.Muted).Padding(0, 1)
	t.WorkspaceCurr = fg(t.Accent).Bold(true).Underline(true).Padding(0, 1)
	t.StatusBar = fg(t.Muted).
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(t.Border)
}
