package styles

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

const winKeyColumn = 2

// NewStyledTable creates an unfocused themed table sized to show every row.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row) table.Model {
	width := 0
	for _, c := range columns {
		width += c.Width + 2
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1),
		table.WithWidth(width),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Cell = s.Cell.Foreground(theme.Text)
	// Nothing is selectable in a static dump.
	s.Selected = s.Cell
	t.SetStyles(s)
	return t
}

// WinTableColumns returns the window table columns with the key column
// fitted to the longest key in rows. Full UUIDs need 36 cells.
func WinTableColumns(rows []table.Row) []table.Column {
	keyWidth := len("Key")
	for _, r := range rows {
		keyWidth = max(keyWidth, lipgloss.Width(r[winKeyColumn]))
	}
	return []table.Column{
		{Title: "WS", Width: 3},
		{Title: "Col", Width: 4},
		{Title: "Key", Width: min(keyWidth, 36)},
		{Title: "X", Width: 8},
		{Title: "Y", Width: 8},
		{Title: "W", Width: 8},
		{Title: "H", Width: 8},
		{Title: "", Width: 2},
	}
}
