package entity

import (
	"fmt"
	"math"
)

// Column is a vertical stack of windows occupying one horizontal slot.
type Column struct {
	workspace *Workspace
	width     float64
	wins      []*Win
}

// validWidth reports whether width is a finite positive number.
func validWidth(width float64) bool {
	return width > 0 && !math.IsInf(width, 1)
}

func newColumn(width float64, ws *Workspace) *Column {
	return &Column{workspace: ws, width: width}
}

// Workspace returns the owning workspace.
func (c *Column) Workspace() *Workspace { return c.workspace }

// Width returns the column width in page-percentage units.
func (c *Column) Width() float64 { return c.width }

// SetWidth changes the column width.
func (c *Column) SetWidth(width float64) error {
	if !validWidth(width) {
		return fmt.Errorf("%w: %v", ErrInvalidWidth, width)
	}
	c.workspace.lm.mutate(func() {
		if c.width == width {
			return
		}
		c.width = width
		c.workspace.lm.emit(ChangeWidth, c.workspace.selfIndex)
	})
	return nil
}

// Wins returns the windows top to bottom. The slice is a copy.
func (c *Column) Wins() []*Win {
	out := make([]*Win, len(c.wins))
	copy(out, c.wins)
	return out
}

// Win returns the window at index, or nil when out of range.
func (c *Column) Win(index int) *Win {
	if index < 0 || index >= len(c.wins) {
		return nil
	}
	return c.wins[index]
}

// WinCount returns the number of windows.
func (c *Column) WinCount() int { return len(c.wins) }

// Index returns the column's position in its workspace.
func (c *Column) Index() int {
	idx := c.workspace.columnIndex(c)
	if idx == -1 {
		consistencyFault(ErrColumnNotInWorkspace, "column")
	}
	return idx
}

// InsertWinAt inserts a window at index (0 <= index <= len). Raw content is
// wrapped in a new Win; an existing Win is moved here.
func (c *Column) InsertWinAt(index int, src WinSource) (*Win, error) {
	lm := c.workspace.lm
	if err := lm.checkSource(src); err != nil {
		return nil, err
	}
	if index < 0 || index > len(c.wins) {
		return nil, fmt.Errorf("%w: win index %d (len %d)", ErrRange, index, len(c.wins))
	}

	var win *Win
	lm.mutate(func() {
		if src.win == nil {
			win = newWin(src.content, c)
			c.insertWin(index, win)
			return
		}
		win = src.win
		c.adopt(index, win)
	})
	return win, nil
}

// InsertWinAtStart inserts a window at the top of the column.
func (c *Column) InsertWinAtStart(src WinSource) (*Win, error) {
	return c.InsertWinAt(0, src)
}

// InsertWinAtEnd inserts a window at the bottom of the column.
func (c *Column) InsertWinAtEnd(src WinSource) (*Win, error) {
	return c.InsertWinAt(len(c.wins), src)
}

func (c *Column) insertWin(index int, win *Win) {
	c.wins = append(c.wins, nil)
	copy(c.wins[index+1:], c.wins[index:])
	c.wins[index] = win
	c.workspace.lm.emit(ChangeWins, c.workspace.selfIndex)
}

// adopt moves an existing window to index in this column.
func (c *Column) adopt(index int, win *Win) {
	from := win.column
	oldWs := from.workspace
	wasForce := oldWs.forceWin == win
	sameWs := oldWs == c.workspace

	if from == c {
		if i := c.winIndex(win); i != -1 {
			c.wins = append(c.wins[:i], c.wins[i+1:]...)
			if index > i {
				index--
			}
		}
	} else {
		win.unlink(!sameWs)
	}
	if index > len(c.wins) {
		index = len(c.wins)
	}

	win.column = c
	c.insertWin(index, win)
	if wasForce && sameWs {
		c.workspace.setForce(win)
	}
}

func (c *Column) winIndex(win *Win) int {
	for i, w := range c.wins {
		if w == win {
			return i
		}
	}
	return -1
}

// LeftColumn returns the neighbor on the left, or nil.
func (c *Column) LeftColumn() *Column {
	return c.workspace.Column(c.Index() - 1)
}

// RightColumn returns the neighbor on the right, or nil.
func (c *Column) RightColumn() *Column {
	return c.workspace.Column(c.Index() + 1)
}

// InsertColumnAtLeft inserts a new sibling column directly left of c.
func (c *Column) InsertColumnAtLeft(width float64) *Column {
	return c.workspace.insertColumn(c.Index(), width)
}

// InsertColumnAtRight inserts a new sibling column directly right of c.
func (c *Column) InsertColumnAtRight(width float64) *Column {
	return c.workspace.insertColumn(c.Index()+1, width)
}

// SwitchWithLeft swaps c with its left neighbor. No-op at the left edge.
func (c *Column) SwitchWithLeft() {
	idx := c.Index()
	if idx == 0 {
		return
	}
	c.swap(idx-1, idx)
}

// SwitchWithRight swaps c with its right neighbor. No-op at the right edge.
func (c *Column) SwitchWithRight() {
	idx := c.Index()
	if idx == len(c.workspace.columns)-1 {
		return
	}
	c.swap(idx, idx+1)
}

func (c *Column) swap(i, j int) {
	ws := c.workspace
	ws.lm.mutate(func() {
		ws.columns[i], ws.columns[j] = ws.columns[j], ws.columns[i]
		ws.lm.emit(ChangeColumns, ws.selfIndex)
	})
}

// Destroy removes the column from its workspace. Only empty columns can be
// destroyed; use RDestroy to take the windows with it.
func (c *Column) Destroy() error {
	if len(c.wins) > 0 {
		return fmt.Errorf("%w: cannot destroy a column that still has windows", ErrIllegalState)
	}
	idx := c.Index()
	c.workspace.lm.mutate(func() {
		c.workspace.removeColumnAt(idx)
	})
	return nil
}

// RDestroy destroys every window of the column and then the column itself.
func (c *Column) RDestroy() {
	c.workspace.lm.mutate(func() {
		if len(c.wins) == 0 {
			// An empty column cannot fail to destroy.
			_ = c.Destroy()
			return
		}
		for len(c.wins) > 0 {
			c.wins[0].Destroy()
		}
	})
}
