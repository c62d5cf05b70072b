package styles

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/candle/internal/domain/entity"
)

// LayoutRenderer renders layout snapshots for the command line.
type LayoutRenderer struct {
	theme *Theme
}

// NewLayoutRenderer creates a new layout renderer with the given theme.
func NewLayoutRenderer(theme *Theme) *LayoutRenderer {
	return &LayoutRenderer{theme: theme}
}

// RenderTable renders every window of every non-empty workspace as a table row.
func (r *LayoutRenderer) RenderTable(snap *entity.LayoutSnapshot) string {
	var rows []table.Row
	for _, ws := range snap.Workspaces {
		for ci, col := range ws.Columns {
			for _, w := range col.Wins {
				marker := ""
				if w.Key == ws.ForceWin {
					marker = "*"
				}
				rows = append(rows, table.Row{
					strconv.Itoa(ws.Index),
					strconv.Itoa(ci),
					string(w.Key),
					formatUnits(w.Pos.X),
					formatUnits(w.Pos.Y),
					formatUnits(w.Pos.Width),
					formatUnits(w.Pos.Height),
					marker,
				})
			}
		}
	}
	if len(rows) == 0 {
		return r.theme.Subtle.Render("  no windows")
	}

	return NewStyledTable(r.theme, WinTableColumns(rows), rows).View()
}

// RenderSummary renders one line per workspace with its columns and scroll offset.
func (r *LayoutRenderer) RenderSummary(snap *entity.LayoutSnapshot) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	var sb strings.Builder
	for _, ws := range snap.Workspaces {
		if len(ws.Columns) == 0 && ws.Index != snap.CurrentWorkspace {
			continue
		}
		label := r.theme.Subtle.Render(fmt.Sprintf("workspace %d", ws.Index))
		if ws.Index == snap.CurrentWorkspace {
			label = r.theme.Highlight.Render(fmt.Sprintf("workspace %d", ws.Index))
		}
		widths := make([]string, 0, len(ws.Columns))
		for i, col := range ws.Columns {
			w := formatUnits(col.Width)
			if i == ws.ForceColumn {
				w = r.theme.Highlight.Render(w)
			}
			widths = append(widths, fmt.Sprintf("%s[%d]", w, len(col.Wins)))
		}
		sb.WriteString(fmt.Sprintf("  %s %s %s  %s\n",
			iconStyle.Render(IconColumns),
			label,
			strings.Join(widths, " "),
			r.theme.Subtle.Render("x="+formatUnits(ws.BaseX)),
		))
	}
	return sb.String()
}

func formatUnits(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
