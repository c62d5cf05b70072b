package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/bnema/candle/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot(t *testing.T) {
	lm := newManager(t, 2)
	a, err := lm.AddWin(entity.NewContent("a"), 40)
	require.NoError(t, err)
	_, err = a.InsertWinAtBelow(entity.NewContent("b"))
	require.NoError(t, err)
	lm.CalcSizeInfo()

	snap := lm.Snapshot()

	assert.Equal(t, 0, snap.CurrentWorkspace)
	require.Len(t, snap.Workspaces, 2)

	ws0 := snap.Workspaces[0]
	assert.Equal(t, entity.WinKey("w1"), ws0.ForceWin)
	assert.Equal(t, 0, ws0.ForceColumn)
	require.Len(t, ws0.Columns, 1)
	assert.Equal(t, 40.0, ws0.Columns[0].Width)
	assert.Equal(t, []entity.WinSnapshot{
		{Key: "w1", Pos: entity.PosInfo{Width: 40, Height: 50}},
		{Key: "w2", Pos: entity.PosInfo{Y: 50, Width: 40, Height: 50}},
	}, ws0.Columns[0].Wins)
	assert.Equal(t, 2, ws0.WinCount())

	ws1 := snap.Workspaces[1]
	assert.Equal(t, 100.0, ws1.BaseY)
	assert.Equal(t, -1, ws1.ForceColumn)
	assert.Empty(t, ws1.ForceWin)
	assert.Empty(t, ws1.Columns)
}

func TestSnapshot_JSON(t *testing.T) {
	lm := newManager(t, 1)
	_, err := lm.AddWin(entity.NewContent("a"), 0)
	require.NoError(t, err)

	data, err := json.Marshal(lm.Snapshot())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.EqualValues(t, 0, decoded["current_workspace"])
	workspaces := decoded["workspaces"].([]any)
	require.Len(t, workspaces, 1)
	assert.Equal(t, "w1", workspaces[0].(map[string]any)["force_win"])
}
