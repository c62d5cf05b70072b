// Package entity contains the tiling layout model: a fixed row of
// workspaces, each holding an ordered row of columns, each holding an
// ordered stack of windows.
//
// The model is single-threaded. Every operation completes synchronously and
// callers embedding it in a concurrent host must serialize all calls against
// one LayoutManager.
package entity

import (
	"fmt"

	"github.com/google/uuid"
)

const (
	// DefaultMaxWorkspaceNum is the workspace count used by hosts that do not
	// configure one.
	DefaultMaxWorkspaceNum = 10
	// DefaultColumnWidth is the width given to columns created without one.
	DefaultColumnWidth = 50.0
)

// Option configures a LayoutManager.
type Option func(*LayoutManager)

// WithDefaultColumnWidth overrides the width used for new columns when the
// caller does not pass one. Values that are not finite and positive are ignored.
func WithDefaultColumnWidth(width float64) Option {
	return func(lm *LayoutManager) {
		if validWidth(width) {
			lm.defaultColumnWidth = width
		}
	}
}

// WithKeyGenerator replaces the UUID generator used for window keys.
func WithKeyGenerator(gen func() WinKey) Option {
	return func(lm *LayoutManager) {
		if gen != nil {
			lm.newKey = gen
		}
	}
}

// LayoutManager owns every workspace and tracks the active one.
type LayoutManager struct {
	workspaces         []*Workspace
	current            *Workspace
	sizeInfo           SizeInfo
	defaultColumnWidth float64
	newKey             func() WinKey

	subscribers []subscriber
	nextSubID   int
	pending     []Change
	depth       int
}

// NewLayoutManager creates maxWorkspaceNum workspaces indexed 0..n-1 and
// makes workspace 0 current.
func NewLayoutManager(maxWorkspaceNum int, opts ...Option) (*LayoutManager, error) {
	if maxWorkspaceNum < 1 {
		return nil, fmt.Errorf("%w: maxWorkspaceNum must be at least 1", ErrConfiguration)
	}
	lm := &LayoutManager{
		defaultColumnWidth: DefaultColumnWidth,
		newKey: func() WinKey {
			return WinKey(uuid.NewString())
		},
	}
	for _, opt := range opts {
		opt(lm)
	}

	lm.workspaces = make([]*Workspace, 0, maxWorkspaceNum)
	for i := 0; i < maxWorkspaceNum; i++ {
		ws, err := NewWorkspace(lm, i)
		if err != nil {
			return nil, err
		}
		lm.workspaces = append(lm.workspaces, ws)
	}
	lm.current = lm.workspaces[0]
	return lm, nil
}

// Workspaces returns the workspaces in index order. The slice is a copy.
func (lm *LayoutManager) Workspaces() []*Workspace {
	out := make([]*Workspace, len(lm.workspaces))
	copy(out, lm.workspaces)
	return out
}

// Workspace returns the workspace at index, or nil when out of range.
func (lm *LayoutManager) Workspace(index int) *Workspace {
	if index < 0 || index >= len(lm.workspaces) {
		return nil
	}
	return lm.workspaces[index]
}

// WorkspaceCount returns the fixed number of workspaces.
func (lm *LayoutManager) WorkspaceCount() int {
	return len(lm.workspaces)
}

// CurrentWorkspace returns the active workspace.
func (lm *LayoutManager) CurrentWorkspace() *Workspace {
	return lm.current
}

// ForceWin mirrors the current workspace's focused window.
func (lm *LayoutManager) ForceWin() *Win {
	return lm.current.ForceWin()
}

// ForceColumn mirrors the current workspace's focused column.
func (lm *LayoutManager) ForceColumn() *Column {
	return lm.current.ForceColumn()
}

// DefaultColumnWidth returns the width used for columns created without one.
func (lm *LayoutManager) DefaultColumnWidth() float64 {
	return lm.defaultColumnWidth
}

// SizeInfo returns the host container geometry.
func (lm *LayoutManager) SizeInfo() SizeInfo {
	return lm.sizeInfo
}

// SetSizeInfo replaces the host container geometry.
func (lm *LayoutManager) SetSizeInfo(si SizeInfo) {
	lm.mutate(func() {
		if lm.sizeInfo == si {
			return
		}
		lm.sizeInfo = si
		lm.emit(ChangeSizeInfo, -1)
	})
}

// WinList flattens every window in workspace, column, window order. It is
// rebuilt from the live tree on every call.
func (lm *LayoutManager) WinList() []*Win {
	var out []*Win
	for _, ws := range lm.workspaces {
		for _, col := range ws.columns {
			out = append(out, col.wins...)
		}
	}
	return out
}

// SwitchToWorkspace makes the workspace at index current.
func (lm *LayoutManager) SwitchToWorkspace(index int) error {
	if index < 0 || index >= len(lm.workspaces) {
		return fmt.Errorf("%w: workspace index out of range: %d", ErrRange, index)
	}
	lm.switchTo(lm.workspaces[index])
	return nil
}

// SwitchToWorkspaceRef makes ws current. ws must belong to this manager.
func (lm *LayoutManager) SwitchToWorkspaceRef(ws *Workspace) error {
	if ws == nil || ws.lm != lm || lm.Workspace(ws.selfIndex) != ws {
		return fmt.Errorf("%w: workspace index out of range", ErrRange)
	}
	lm.switchTo(ws)
	return nil
}

func (lm *LayoutManager) switchTo(ws *Workspace) {
	lm.mutate(func() {
		if lm.current == ws {
			return
		}
		lm.current = ws
		lm.emit(ChangeWorkspaceSwitched, ws.selfIndex)
		lm.emit(ChangeFocus, -1)
	})
}

// CalcSizeInfo is the placement pass. Inactive workspaces are stacked off
// screen in whole pages; inside a workspace columns are laid out left to
// right and every window of a column gets an equal share of its height.
func (lm *LayoutManager) CalcSizeInfo() {
	lm.mutate(func() {
		currentID := lm.current.selfIndex
		for _, ws := range lm.workspaces {
			ws.setBaseY(float64(ws.selfIndex-currentID) * PageSize)
			totalWidth := 0.0
			for _, col := range ws.columns {
				totalHeight := 0.0
				if n := len(col.wins); n > 0 {
					step := PageSize / float64(n)
					for _, win := range col.wins {
						win.UpdatePos(PosInfo{
							X:      totalWidth,
							Y:      totalHeight,
							Width:  col.width,
							Height: step,
						})
						totalHeight += step
					}
				}
				totalWidth += col.width
			}
			if len(ws.columns) > 0 {
				lm.emit(ChangeLayout, ws.selfIndex)
			}
		}
	})
}

// AddWin places a new window next to the focused one. With a focused
// window, a new column is opened directly to its right and width is not
// used. Without one, a column of the given width is appended to the current
// workspace and the new window becomes focused.
func (lm *LayoutManager) AddWin(src WinSource, width float64) (*Win, error) {
	var (
		win *Win
		err error
	)
	lm.mutate(func() {
		if force := lm.ForceWin(); force != nil {
			win, err = force.InsertWinAtRight(src, 0)
			return
		}
		if err = lm.checkSource(src); err != nil {
			return
		}
		col := lm.current.InsertColumnAtEnd(width)
		win, err = col.InsertWinAtEnd(src)
		if err != nil {
			return
		}
		win.SetAsForceWin()
	})
	return win, err
}

func (lm *LayoutManager) checkSource(src WinSource) error {
	if src.win != nil && src.win.lm != lm {
		return ErrForeignWin
	}
	return nil
}

func (lm *LayoutManager) resolveWidth(width float64) float64 {
	if validWidth(width) {
		return width
	}
	return lm.defaultColumnWidth
}

// ScrollToFitColumn delegates to the current workspace.
func (lm *LayoutManager) ScrollToFitColumn(target *Column) {
	lm.current.ScrollToFitColumn(target)
}

// ScrollToFitWin delegates to the current workspace.
func (lm *LayoutManager) ScrollToFitWin(win *Win) {
	lm.current.ScrollToFitWin(win)
}

// ScrollToForce delegates to the current workspace.
func (lm *LayoutManager) ScrollToForce() {
	lm.current.ScrollToForce()
}

// ScrollToHead delegates to the current workspace.
func (lm *LayoutManager) ScrollToHead() {
	lm.current.ScrollToHead()
}

// ScrollToTail delegates to the current workspace.
func (lm *LayoutManager) ScrollToTail() {
	lm.current.ScrollToTail()
}

// ScrollTo delegates to the current workspace.
func (lm *LayoutManager) ScrollTo(pos float64) {
	lm.current.ScrollTo(pos)
}

// ScrollLeft delegates to the current workspace.
func (lm *LayoutManager) ScrollLeft(length float64) {
	lm.current.ScrollLeft(length)
}

// ScrollRight delegates to the current workspace.
func (lm *LayoutManager) ScrollRight(length float64) {
	lm.current.ScrollRight(length)
}
