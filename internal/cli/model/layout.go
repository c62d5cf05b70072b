// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/candle/internal/application/usecase"
	"github.com/bnema/candle/internal/cli/styles"
	"github.com/bnema/candle/internal/config"
	"github.com/bnema/candle/internal/domain/entity"
	"github.com/bnema/candle/internal/logging"
)

// changeTracker counts the change batches published by the use case.
type changeTracker struct {
	batches int
	last    []entity.Change
}

// LayoutChanged implements port.LayoutObserver.
func (t *changeTracker) LayoutChanged(ctx context.Context, changes []entity.Change) {
	t.batches++
	t.last = changes
	log := logging.FromContext(ctx)
	if e := log.Trace(); e.Enabled() {
		kinds := make([]string, 0, len(changes))
		for _, c := range changes {
			kinds = append(kinds, c.Kind.String())
		}
		e.Strs("changes", kinds).Int("batch", t.batches).Msg("layout changed")
	}
}

// ThemeChangedMsg carries new appearance settings after a config reload.
type ThemeChangedMsg struct {
	Appearance config.AppearanceConfig
}

// LayoutModel is the Bubble Tea host for a LayoutManager. Every window is a
// placeholder box labelled with its content.
type LayoutModel struct {
	// UI components
	help help.Model
	keys styles.LayoutKeyMap

	// State
	width    int
	height   int
	opened   int
	status   string
	err      error
	quitting bool

	// Config
	layout  config.LayoutConfig
	padding config.PaddingConfig

	// Dependencies
	ctx     context.Context
	uc      *usecase.ManageLayoutUseCase
	tracker *changeTracker
	theme   *styles.Theme
}

// LayoutModelConfig holds configuration for the layout model.
type LayoutModelConfig struct {
	Manager *entity.LayoutManager
	Layout  config.LayoutConfig
	Padding config.PaddingConfig
}

// NewLayoutModel creates a new layout host model.
func NewLayoutModel(ctx context.Context, theme *styles.Theme, cfg LayoutModelConfig) LayoutModel {
	layoutCfg := cfg.Layout
	defaults := config.DefaultConfig().Layout
	if layoutCfg.ResizeStep <= 0 {
		layoutCfg.ResizeStep = defaults.ResizeStep
	}
	if layoutCfg.ScrollStep <= 0 {
		layoutCfg.ScrollStep = defaults.ScrollStep
	}

	tracker := &changeTracker{}
	uc := usecase.NewManageLayoutUseCase(cfg.Manager, tracker, usecase.ColumnLimits{
		Min: layoutCfg.MinColumnWidth,
		Max: layoutCfg.MaxColumnWidth,
	})

	h := styles.NewStyledHelp(theme)
	return LayoutModel{
		help:    h,
		keys:    styles.DefaultLayoutKeyMap(),
		width:   80,
		height:  24,
		layout:  layoutCfg,
		padding: cfg.Padding,
		ctx:     logging.WithComponent(ctx, "tui"),
		uc:      uc,
		tracker: tracker,
		theme:   theme,
	}
}

// Init implements tea.Model.
func (m LayoutModel) Init() tea.Cmd {
	m.syncViewport()
	return nil
}

// Update implements tea.Model.
func (m LayoutModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.syncViewport()
		return m, nil

	case ThemeChangedMsg:
		m.theme = styles.NewThemeFromAppearance(msg.Appearance)
		h := styles.NewStyledHelp(m.theme)
		h.Width = m.help.Width
		h.ShowAll = m.help.ShowAll
		m.help = h
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m LayoutModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.uc.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.syncViewport()

	case key.Matches(msg, m.keys.Open):
		m.open(usecase.PlaceRight)
	case key.Matches(msg, m.keys.OpenBelow):
		m.open(usecase.PlaceBelow)
	case key.Matches(msg, m.keys.OpenAbove):
		m.open(usecase.PlaceAbove)
	case key.Matches(msg, m.keys.OpenLeft):
		m.open(usecase.PlaceLeft)

	case key.Matches(msg, m.keys.Close):
		next, err := m.uc.CloseFocused(m.ctx)
		switch {
		case errors.Is(err, usecase.ErrNoFocusedWin):
			m.status = "nothing to close"
		case err != nil:
			m.err = err
		case next != nil:
			m.status = "closed, focus on " + label(next)
		default:
			m.status = "closed"
		}

	case key.Matches(msg, m.keys.Left):
		m.focus(usecase.NavLeft)
	case key.Matches(msg, m.keys.Right):
		m.focus(usecase.NavRight)
	case key.Matches(msg, m.keys.Up):
		m.focus(usecase.NavUp)
	case key.Matches(msg, m.keys.Down):
		m.focus(usecase.NavDown)

	case key.Matches(msg, m.keys.MoveLeft):
		m.moveColumn(usecase.NavLeft)
	case key.Matches(msg, m.keys.MoveRight):
		m.moveColumn(usecase.NavRight)

	case key.Matches(msg, m.keys.Grow):
		m.resize(m.layout.ResizeStep)
	case key.Matches(msg, m.keys.Shrink):
		m.resize(-m.layout.ResizeStep)

	case key.Matches(msg, m.keys.ScrollLeft):
		m.uc.Scroll(m.ctx, -m.layout.ScrollStep)
	case key.Matches(msg, m.keys.ScrollRight):
		m.uc.Scroll(m.ctx, m.layout.ScrollStep)
	case key.Matches(msg, m.keys.Head):
		m.uc.ScrollToHead(m.ctx)
	case key.Matches(msg, m.keys.Tail):
		m.uc.ScrollToTail(m.ctx)

	case key.Matches(msg, m.keys.Workspace):
		index, _ := strconv.Atoi(msg.String())
		if err := m.uc.SwitchWorkspace(m.ctx, index-1); err != nil {
			m.status = fmt.Sprintf("no workspace %d", index)
		} else {
			m.status = fmt.Sprintf("workspace %d", index)
		}
	}
	return m, nil
}

func (m *LayoutModel) open(placement usecase.Placement) {
	m.opened++
	win, err := m.uc.Open(m.ctx, usecase.OpenInput{
		Content:   fmt.Sprintf("win %d", m.opened),
		Width:     m.layout.DefaultColumnWidth,
		Placement: placement,
	})
	if err != nil {
		m.err = err
		return
	}
	m.status = fmt.Sprintf("opened %s %s", label(win), placement)
}

func (m *LayoutModel) focus(dir usecase.NavigateDirection) {
	win, err := m.uc.Focus(m.ctx, dir)
	switch {
	case err != nil:
		m.err = err
	case win == nil:
		m.status = "nothing " + string(dir)
	default:
		m.status = "focus on " + label(win)
	}
}

func (m *LayoutModel) moveColumn(dir usecase.NavigateDirection) {
	if err := m.uc.MoveColumn(m.ctx, dir); err != nil {
		if !errors.Is(err, usecase.ErrNoFocusedWin) {
			m.err = err
		}
		return
	}
	m.status = "column moved " + string(dir)
}

func (m *LayoutModel) resize(delta float64) {
	width, err := m.uc.ResizeColumn(m.ctx, delta)
	if err != nil {
		if !errors.Is(err, usecase.ErrNoFocusedWin) {
			m.err = err
		}
		return
	}
	m.status = "column width " + strconv.FormatFloat(width, 'f', -1, 64)
}

func label(w *entity.Win) string {
	if s, ok := w.Content().(string); ok {
		return s
	}
	return string(w.Key())
}

// syncViewport publishes the current layout area to the manager and
// recomputes positions.
func (m *LayoutModel) syncViewport() {
	w, h := m.areaSize()
	m.uc.SetViewport(m.ctx, entity.SizeInfo{
		Width:         float64(w),
		Height:        float64(h),
		PaddingTop:    m.padding.Top,
		PaddingBottom: m.padding.Bottom,
		PaddingLeft:   m.padding.Left,
		PaddingRight:  m.padding.Right,
	})
	m.uc.Relayout(m.ctx)
}

func (m LayoutModel) areaSize() (int, int) {
	h := m.height - lipgloss.Height(m.renderHeader()) - lipgloss.Height(m.renderFooter())
	if h < 0 {
		h = 0
	}
	return m.width, h
}

// View implements tea.Model.
func (m LayoutModel) View() string {
	if m.quitting {
		return ""
	}
	header := m.renderHeader()
	footer := m.renderFooter()
	w, h := m.areaSize()
	return lipgloss.JoinVertical(lipgloss.Left, header, m.renderArea(w, h), footer)
}

func (m LayoutModel) renderHeader() string {
	lm := m.uc.Manager()
	current := lm.CurrentWorkspace().SelfIndex()

	tabs := make([]string, 0, lm.WorkspaceCount())
	for _, ws := range lm.Workspaces() {
		name := strconv.Itoa(ws.SelfIndex() + 1)
		if ws.ColumnCount() > 0 {
			name += "•"
		}
		if ws.SelfIndex() == current {
			tabs = append(tabs, m.theme.WorkspaceCurr.Render(name))
		} else {
			tabs = append(tabs, m.theme.WorkspaceTab.Render(name))
		}
	}
	title := m.theme.Title.Render(" candle ")
	return lipgloss.JoinHorizontal(lipgloss.Top, title, strings.Join(tabs, ""))
}

func (m LayoutModel) renderFooter() string {
	ws := m.uc.Manager().CurrentWorkspace()
	wins := 0
	for _, col := range ws.Columns() {
		wins += col.WinCount()
	}

	parts := []string{
		fmt.Sprintf("cols %d", ws.ColumnCount()),
		fmt.Sprintf("wins %d", wins),
		"x=" + strconv.FormatFloat(ws.BaseX(), 'f', -1, 64),
		fmt.Sprintf("rev %d", m.tracker.batches),
	}
	status := m.theme.Subtle.Render(m.status)
	if m.err != nil {
		status = m.theme.ErrorStyle.Render(m.err.Error())
	}
	bar := m.theme.StatusBar.Width(m.width).Render(strings.Join(parts, "  ") + "  " + status)
	return lipgloss.JoinVertical(lipgloss.Left, bar, m.help.View(m.keys))
}

// renderArea draws the windows of the current workspace at their resolved
// frames.
func (m LayoutModel) renderArea(w, h int) string {
	cv := newCanvas(w, h)
	ws := m.uc.Manager().CurrentWorkspace()
	force := ws.ForceWin()
	for _, col := range ws.Columns() {
		for _, win := range col.Wins() {
			f := win.Frame(float64(w), float64(h))
			x0, y0 := round(f.X), round(f.Y)
			x1, y1 := round(f.X+f.W), round(f.Y+f.H)
			cv.box(x0, y0, x1-x0, y1-y0, label(win), win == force)
		}
	}
	if ws.ColumnCount() == 0 && h > 0 {
		hint := "empty workspace, press n to open a window"
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, m.theme.Subtle.Render(hint))
	}
	return cv.render(m.theme.Win, m.theme.WinFocused)
}
