package entity

// WinKey is the stable identity of a window.
type WinKey string

// Content is the host-owned payload of a window. It is stored and handed
// back, never inspected.
type Content = any

// WinSource is what gets inserted into a column: either new content to wrap
// in a fresh Win, or an existing Win to move.
type WinSource struct {
	content Content
	win     *Win
}

// NewContent wraps raw content for insertion.
func NewContent(c Content) WinSource {
	return WinSource{content: c}
}

// ExistingWin moves an existing window on insertion.
func ExistingWin(w *Win) WinSource {
	return WinSource{win: w}
}

// Win is a single content slot inside a column.
type Win struct {
	lm      *LayoutManager
	key     WinKey
	content Content
	column  *Column
	pos     PosInfo
}

func newWin(content Content, column *Column) *Win {
	lm := column.workspace.lm
	return &Win{
		lm:      lm,
		key:     lm.newKey(),
		content: content,
		column:  column,
	}
}

// Key returns the window identity.
func (w *Win) Key() WinKey { return w.key }

// Content returns the host payload.
func (w *Win) Content() Content { return w.content }

// Column returns the owning column.
func (w *Win) Column() *Column { return w.column }

// Workspace returns the workspace of the owning column.
func (w *Win) Workspace() *Workspace { return w.column.workspace }

// IsForce reports whether w is the manager's focused window, which implies
// its workspace is current.
func (w *Win) IsForce() bool {
	return w.lm.ForceWin() == w
}

// Pos returns the position computed by the last placement pass.
func (w *Win) Pos() PosInfo { return w.pos }

// Index returns the window's position in its column.
func (w *Win) Index() int {
	idx := w.column.winIndex(w)
	if idx == -1 {
		consistencyFault(ErrWinNotInColumn, "win")
	}
	return idx
}

// AboveWin returns the window directly above, or nil.
func (w *Win) AboveWin() *Win {
	return w.column.Win(w.Index() - 1)
}

// BelowWin returns the window directly below, or nil.
func (w *Win) BelowWin() *Win {
	return w.column.Win(w.Index() + 1)
}

// LeftWin returns the top window of the left column, or nil.
func (w *Win) LeftWin() *Win {
	if left := w.column.LeftColumn(); left != nil {
		return left.Win(0)
	}
	return nil
}

// RightWin returns the top window of the right column, or nil.
func (w *Win) RightWin() *Win {
	if right := w.column.RightColumn(); right != nil {
		return right.Win(0)
	}
	return nil
}

// InsertWinAtAbove inserts into the same column directly above w.
func (w *Win) InsertWinAtAbove(src WinSource) (*Win, error) {
	return w.column.InsertWinAt(w.Index(), src)
}

// InsertWinAtBelow inserts into the same column directly below w.
func (w *Win) InsertWinAtBelow(src WinSource) (*Win, error) {
	return w.column.InsertWinAt(w.Index()+1, src)
}

// InsertWinAtLeft opens a new column left of w's column and puts the window
// there. w itself does not move.
func (w *Win) InsertWinAtLeft(src WinSource, width float64) (*Win, error) {
	if err := w.lm.checkSource(src); err != nil {
		return nil, err
	}
	var (
		win *Win
		err error
	)
	w.lm.mutate(func() {
		win, err = w.column.InsertColumnAtLeft(width).InsertWinAtEnd(src)
	})
	return win, err
}

// InsertWinAtRight opens a new column right of w's column and puts the
// window there. w itself does not move.
func (w *Win) InsertWinAtRight(src WinSource, width float64) (*Win, error) {
	if err := w.lm.checkSource(src); err != nil {
		return nil, err
	}
	var (
		win *Win
		err error
	)
	w.lm.mutate(func() {
		win, err = w.column.InsertColumnAtRight(width).InsertWinAtEnd(src)
	})
	return win, err
}

// Destroy removes w. When w holds its workspace's focus, focus moves to the
// first neighbor found above, below, left, right, or is cleared. A column
// left empty is destroyed as well.
func (w *Win) Destroy() {
	w.Index() // faults when w is no longer in its column
	w.lm.mutate(func() { w.unlink(true) })
}

// focusSuccessor picks the neighbor that inherits focus from w.
func (w *Win) focusSuccessor() *Win {
	if n := w.AboveWin(); n != nil {
		return n
	}
	if n := w.BelowWin(); n != nil {
		return n
	}
	if n := w.LeftWin(); n != nil {
		return n
	}
	return w.RightWin()
}

// unlink detaches w from its column, optionally handing its focus over, and
// destroys the column if it became empty. Windows already detached are left
// alone.
func (w *Win) unlink(transferFocus bool) {
	col := w.column
	idx := col.winIndex(w)
	if idx == -1 {
		return
	}
	ws := col.workspace
	if transferFocus && ws.forceWin == w {
		ws.setForce(w.focusSuccessor())
	}

	col.wins = append(col.wins[:idx], col.wins[idx+1:]...)
	ws.lm.emit(ChangeWins, ws.selfIndex)
	if len(col.wins) == 0 {
		// An empty column cannot fail to destroy.
		_ = col.Destroy()
	}
}

// UpdatePos stores the position computed by the placement pass.
func (w *Win) UpdatePos(pos PosInfo) {
	w.lm.mutate(func() {
		if w.pos == pos {
			return
		}
		w.pos = pos
		w.lm.emit(ChangeLayout, w.column.workspace.selfIndex)
	})
}

// PosStyle returns the CSS positioning descriptor for w.
func (w *Win) PosStyle() PosStyle {
	ws := w.column.workspace
	return newPosStyle(w.lm.sizeInfo, w.pos, ws.baseX, ws.baseY)
}

// Frame resolves PosStyle to pixels inside a container of the given size.
func (w *Win) Frame(containerW, containerH float64) Rect {
	ws := w.column.workspace
	return resolveFrame(w.lm.sizeInfo, w.pos, ws.baseX, ws.baseY, containerW, containerH)
}

// SetAsForceWin focuses w in its workspace.
func (w *Win) SetAsForceWin() *Win {
	w.Index() // faults when w was destroyed
	ws := w.column.workspace
	w.lm.mutate(func() { ws.setForce(w) })
	return w
}

// ScrollFit scrolls w's workspace so w's column is fully visible.
func (w *Win) ScrollFit() *Win {
	w.column.workspace.ScrollToFitWin(w)
	return w
}
