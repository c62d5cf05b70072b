package entity

// LayoutSnapshot is a read-only, JSON friendly view of a LayoutManager.
type LayoutSnapshot struct {
	CurrentWorkspace int                 `json:"current_workspace"`
	SizeInfo         SizeInfo            `json:"size_info"`
	Workspaces       []WorkspaceSnapshot `json:"workspaces"`
}

// WorkspaceSnapshot captures one workspace. Empty workspaces are kept so
// indices line up with the manager.
type WorkspaceSnapshot struct {
	Index       int              `json:"index"`
	BaseX       float64          `json:"base_x"`
	BaseY       float64          `json:"base_y"`
	ForceWin    WinKey           `json:"force_win,omitempty"`
	ForceColumn int              `json:"force_column"` // -1 when nothing is focused
	Columns     []ColumnSnapshot `json:"columns"`
}

// ColumnSnapshot captures a column and its windows.
type ColumnSnapshot struct {
	Width float64       `json:"width"`
	Wins  []WinSnapshot `json:"wins"`
}

// WinSnapshot captures a window. Content is not included.
type WinSnapshot struct {
	Key WinKey  `json:"key"`
	Pos PosInfo `json:"pos"`
}

// Snapshot copies the current state of the tree.
func (lm *LayoutManager) Snapshot() *LayoutSnapshot {
	snap := &LayoutSnapshot{
		CurrentWorkspace: lm.current.selfIndex,
		SizeInfo:         lm.sizeInfo,
		Workspaces:       make([]WorkspaceSnapshot, 0, len(lm.workspaces)),
	}
	for _, ws := range lm.workspaces {
		snap.Workspaces = append(snap.Workspaces, snapshotWorkspace(ws))
	}
	return snap
}

func snapshotWorkspace(ws *Workspace) WorkspaceSnapshot {
	out := WorkspaceSnapshot{
		Index:       ws.selfIndex,
		BaseX:       ws.baseX,
		BaseY:       ws.baseY,
		ForceColumn: -1,
		Columns:     make([]ColumnSnapshot, 0, len(ws.columns)),
	}
	if ws.forceWin != nil {
		out.ForceWin = ws.forceWin.key
	}
	for i, col := range ws.columns {
		if col == ws.forceColumn {
			out.ForceColumn = i
		}
		cs := ColumnSnapshot{
			Width: col.width,
			Wins:  make([]WinSnapshot, 0, len(col.wins)),
		}
		for _, w := range col.wins {
			cs.Wins = append(cs.Wins, WinSnapshot{Key: w.key, Pos: w.pos})
		}
		out.Columns = append(out.Columns, cs)
	}
	return out
}

// WinCount returns the number of windows in the snapshot's workspace.
func (s WorkspaceSnapshot) WinCount() int {
	n := 0
	for _, col := range s.Columns {
		n += len(col.Wins)
	}
	return n
}
