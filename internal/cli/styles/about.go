package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/candle/internal/domain/build"
)

// Three columns, the middle one focused.
const aboutLogo = `┌─┐╔═╗┌─┐
│ │║ ║│ │
│ │║ ║├─┤
│ │║ ║│ │
└─┘╚═╝└─┘`

// AboutRenderer renders build info next to the candle logo.
type AboutRenderer struct {
	theme *Theme
}

func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

type aboutRow struct {
	icon, key, value string
}

// Render lays out the logo and one aligned row per build field. Builds
// that are not tagged releases get a dev marker after the version.
func (r *AboutRenderer) Render(info build.Info) string {
	version := r.theme.Highlight.Render(info.Version)
	if !info.IsRelease() {
		version += " " + r.theme.WarningStyle.Render("dev build")
	}

	rows := []aboutRow{
		{IconVersion, "Version", version},
		{IconGitBranch, "Commit", r.theme.Highlight.Render(info.Commit)},
		{IconCalendar, "Built", r.theme.Highlight.Render(info.BuildDate)},
		{IconGo, "Go", r.theme.Highlight.Render(info.GoVersion)},
	}

	icon := lipgloss.NewStyle().Foreground(r.theme.Accent)
	key := r.theme.Subtle.Width(9)
	lines := make([]string, 0, len(rows)+3)
	for _, row := range rows {
		lines = append(lines, icon.Render(row.icon)+" "+key.Render(row.key)+row.value)
	}
	lines = append(lines,
		"",
		icon.Render(IconGithub)+" "+r.theme.Subtle.Render(build.RepoURL()),
		icon.Render(IconHeart)+" "+r.theme.Subtle.Render("by ")+
			r.theme.Highlight.Render(strings.Join(build.Contributors(), ", ")),
	)

	logo := lipgloss.NewStyle().Foreground(r.theme.Accent).Bold(true).MarginTop(1).MarginLeft(2).Render(aboutLogo)
	return lipgloss.JoinHorizontal(lipgloss.Top, logo, "   ", strings.Join(lines, "\n"))
}
