package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// LayoutKeyMap defines keybindings for the layout host.
type LayoutKeyMap struct {
	Open        key.Binding
	OpenBelow   key.Binding
	OpenAbove   key.Binding
	OpenLeft    key.Binding
	Close       key.Binding
	Left        key.Binding
	Right       key.Binding
	Up          key.Binding
	Down        key.Binding
	MoveLeft    key.Binding
	MoveRight   key.Binding
	Grow        key.Binding
	Shrink      key.Binding
	ScrollLeft  key.Binding
	ScrollRight key.Binding
	Head        key.Binding
	Tail        key.Binding
	Workspace   key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k LayoutKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Close, k.Left, k.Right, k.Workspace, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k LayoutKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Open, k.OpenBelow, k.OpenAbove, k.OpenLeft, k.Close},
		{k.Left, k.Right, k.Up, k.Down},
		{k.MoveLeft, k.MoveRight, k.Grow, k.Shrink},
		{k.ScrollLeft, k.ScrollRight, k.Head, k.Tail},
		{k.Workspace, k.Help, k.Quit},
	}
}

// DefaultLayoutKeyMap returns the default layout keybindings.
func DefaultLayoutKeyMap() LayoutKeyMap {
	return LayoutKeyMap{
		Open: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "open right"),
		),
		OpenBelow: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "open below"),
		),
		OpenAbove: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "open above"),
		),
		OpenLeft: key.NewBinding(
			key.WithKeys("N"),
			key.WithHelp("N", "open left"),
		),
		Close: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "close"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("←/h", "focus left"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("→/l", "focus right"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "focus up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "focus down"),
		),
		MoveLeft: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "move column left"),
		),
		MoveRight: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "move column right"),
		),
		Grow: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "wider"),
		),
		Shrink: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "narrower"),
		),
		ScrollLeft: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "scroll left"),
		),
		ScrollRight: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "scroll right"),
		),
		Head: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "first column"),
		),
		Tail: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "last column"),
		),
		Workspace: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "workspace"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
