package entity

import (
	"fmt"
	"math"
)

// Workspace is one page of the layout: an ordered row of columns with at
// most one focused window.
type Workspace struct {
	lm          *LayoutManager
	selfIndex   int
	columns     []*Column
	forceWin    *Win
	forceColumn *Column
	baseX       float64
	baseY       float64
}

// NewWorkspace creates the workspace for slot selfIndex of lm. It fails when
// that slot is already populated. Registration is left to the manager.
func NewWorkspace(lm *LayoutManager, selfIndex int) (*Workspace, error) {
	if selfIndex < 0 {
		return nil, fmt.Errorf("%w: workspace index %d", ErrRange, selfIndex)
	}
	if lm.Workspace(selfIndex) != nil {
		return nil, fmt.Errorf("%w: %d", ErrOccupiedIndex, selfIndex)
	}
	return &Workspace{lm: lm, selfIndex: selfIndex}, nil
}

// SelfIndex returns the permanent index of the workspace.
func (ws *Workspace) SelfIndex() int { return ws.selfIndex }

// Manager returns the owning LayoutManager.
func (ws *Workspace) Manager() *LayoutManager { return ws.lm }

// Columns returns the columns left to right. The slice is a copy.
func (ws *Workspace) Columns() []*Column {
	out := make([]*Column, len(ws.columns))
	copy(out, ws.columns)
	return out
}

// Column returns the column at index, or nil when out of range.
func (ws *Workspace) Column(index int) *Column {
	if index < 0 || index >= len(ws.columns) {
		return nil
	}
	return ws.columns[index]
}

// ColumnCount returns the number of columns.
func (ws *Workspace) ColumnCount() int { return len(ws.columns) }

// ForceWin returns the focused window, or nil.
func (ws *Workspace) ForceWin() *Win { return ws.forceWin }

// ForceColumn returns the column holding the focused window, or nil.
func (ws *Workspace) ForceColumn() *Column { return ws.forceColumn }

// BaseX is the horizontal scroll offset.
func (ws *Workspace) BaseX() float64 { return ws.baseX }

// BaseY is the vertical page offset assigned by the placement pass.
func (ws *Workspace) BaseY() float64 { return ws.baseY }

// SetBaseY overrides the vertical page offset.
func (ws *Workspace) SetBaseY(v float64) {
	ws.lm.mutate(func() { ws.setBaseY(v) })
}

func (ws *Workspace) setBaseY(v float64) {
	if ws.baseY == v {
		return
	}
	ws.baseY = v
	ws.lm.emit(ChangeScroll, ws.selfIndex)
}

func (ws *Workspace) setBaseX(v float64) {
	if ws.baseX == v {
		return
	}
	ws.baseX = v
	ws.lm.emit(ChangeScroll, ws.selfIndex)
}

// ScrollLength is the sum of all column widths.
func (ws *Workspace) ScrollLength() float64 {
	total := 0.0
	for _, col := range ws.columns {
		total += col.width
	}
	return total
}

// InsertColumnAt inserts a new column at index (0 <= index <= len).
// A non-positive width selects the manager default.
func (ws *Workspace) InsertColumnAt(index int, width float64) (*Column, error) {
	if index < 0 || index > len(ws.columns) {
		return nil, fmt.Errorf("%w: column index %d (len %d)", ErrRange, index, len(ws.columns))
	}
	return ws.insertColumn(index, width), nil
}

// InsertColumnAtStart inserts a new leftmost column.
func (ws *Workspace) InsertColumnAtStart(width float64) *Column {
	return ws.insertColumn(0, width)
}

// InsertColumnAtEnd appends a new rightmost column.
func (ws *Workspace) InsertColumnAtEnd(width float64) *Column {
	return ws.insertColumn(len(ws.columns), width)
}

func (ws *Workspace) insertColumn(index int, width float64) *Column {
	col := newColumn(ws.lm.resolveWidth(width), ws)
	ws.lm.mutate(func() {
		ws.columns = append(ws.columns, nil)
		copy(ws.columns[index+1:], ws.columns[index:])
		ws.columns[index] = col
		ws.lm.emit(ChangeColumns, ws.selfIndex)
	})
	return col
}

func (ws *Workspace) columnIndex(col *Column) int {
	for i, c := range ws.columns {
		if c == col {
			return i
		}
	}
	return -1
}

func (ws *Workspace) removeColumnAt(index int) {
	ws.columns = append(ws.columns[:index], ws.columns[index+1:]...)
	ws.lm.emit(ChangeColumns, ws.selfIndex)
}

// SetForceWin focuses win, or clears focus when win is nil. forceColumn is
// always updated together with forceWin.
func (ws *Workspace) SetForceWin(win *Win) error {
	if win != nil {
		if win.Workspace() != ws {
			return fmt.Errorf("%w: win is not in workspace %d", ErrForeignWin, ws.selfIndex)
		}
		if win.column.winIndex(win) == -1 {
			return fmt.Errorf("%w: win was destroyed", ErrIllegalState)
		}
	}
	ws.lm.mutate(func() { ws.setForce(win) })
	return nil
}

func (ws *Workspace) setForce(win *Win) {
	var col *Column
	if win != nil {
		col = win.column
	}
	if ws.forceWin == win && ws.forceColumn == col {
		return
	}
	ws.forceWin = win
	ws.forceColumn = col
	ws.lm.emit(ChangeFocus, ws.selfIndex)
}

// ScrollTo sets baseX to pos clamped into [0, max(scrollLength-100, 0)].
// A NaN pos keeps the current offset.
func (ws *Workspace) ScrollTo(pos float64) {
	if math.IsNaN(pos) {
		pos = ws.baseX
	}
	limit := ws.ScrollLength() - PageSize
	if pos > limit {
		pos = limit
	}
	if pos < 0 {
		pos = 0
	}
	ws.lm.mutate(func() { ws.setBaseX(pos) })
}

// ScrollLeft scrolls towards the head by length.
func (ws *Workspace) ScrollLeft(length float64) {
	ws.ScrollTo(ws.baseX - length)
}

// ScrollRight scrolls towards the tail by length.
func (ws *Workspace) ScrollRight(length float64) {
	ws.ScrollTo(ws.baseX + length)
}

// ScrollToHead scrolls to the first column.
func (ws *Workspace) ScrollToHead() {
	ws.ScrollTo(0)
}

// ScrollToTail scrolls so the last column ends at the right edge.
func (ws *Workspace) ScrollToTail() {
	ws.ScrollTo(ws.ScrollLength() - PageSize)
}

// ScrollToFitColumn scrolls the minimum amount needed to bring target's
// whole interval into view. Columns outside this workspace are ignored.
func (ws *Workspace) ScrollToFitColumn(target *Column) {
	if target == nil {
		return
	}
	start := 0.0
	for _, col := range ws.columns {
		if col == target {
			end := start + col.width
			switch {
			case start < ws.baseX:
				ws.lm.mutate(func() { ws.setBaseX(start) })
			case end > ws.baseX+PageSize:
				ws.lm.mutate(func() { ws.setBaseX(end - PageSize) })
			}
			return
		}
		start += col.width
	}
}

// ScrollToFitWin scrolls win's column into view.
func (ws *Workspace) ScrollToFitWin(win *Win) {
	if win == nil {
		return
	}
	ws.ScrollToFitColumn(win.column)
}

// ScrollToForce scrolls the focused column into view, if any.
func (ws *Workspace) ScrollToForce() {
	if ws.forceColumn != nil {
		ws.ScrollToFitColumn(ws.forceColumn)
	}
}

// SwitchToSelf makes this workspace current in its manager.
func (ws *Workspace) SwitchToSelf() error {
	return ws.lm.SwitchToWorkspaceRef(ws)
}
