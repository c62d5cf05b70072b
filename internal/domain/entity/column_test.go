package entity_test

import (
	"math"
	"testing"

	"github.com/bnema/candle/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumn_InsertWinAt(t *testing.T) {
	col := newManager(t, 1).CurrentWorkspace().InsertColumnAtEnd(0)

	b, err := col.InsertWinAt(0, entity.NewContent("b"))
	require.NoError(t, err)
	a, err := col.InsertWinAtStart(entity.NewContent("a"))
	require.NoError(t, err)
	d, err := col.InsertWinAtEnd(entity.NewContent("d"))
	require.NoError(t, err)
	c, err := col.InsertWinAt(2, entity.NewContent("c"))
	require.NoError(t, err)

	assert.Equal(t, []*entity.Win{a, b, c, d}, col.Wins())
	assert.Same(t, c, col.Win(2))
	assert.Equal(t, 2, c.Index())
	assert.Same(t, col, c.Column())
	assert.Equal(t, 4, col.WinCount())
	assert.Nil(t, col.Win(4))
}

func TestColumn_InsertWinAt_OutOfRange(t *testing.T) {
	col := newManager(t, 1).CurrentWorkspace().InsertColumnAtEnd(0)

	for _, idx := range []int{-1, 1} {
		w, err := col.InsertWinAt(idx, entity.NewContent("x"))
		assert.Nil(t, w)
		assert.ErrorIs(t, err, entity.ErrRange)
	}
	assert.Zero(t, col.WinCount())
}

func TestColumn_InsertExistingWinMoves(t *testing.T) {
	lm := newManager(t, 1)
	ws := lm.CurrentWorkspace()
	left := ws.InsertColumnAtEnd(0)
	right := ws.InsertColumnAtEnd(0)
	a, _ := left.InsertWinAtEnd(entity.NewContent("a"))
	b, _ := right.InsertWinAtEnd(entity.NewContent("b"))
	a.SetAsForceWin()

	moved, err := right.InsertWinAtStart(entity.ExistingWin(a))
	require.NoError(t, err)

	assert.Same(t, a, moved)
	assert.Equal(t, []*entity.Win{a, b}, right.Wins())
	assert.Same(t, right, a.Column())
	// left emptied and was cascaded away
	assert.Equal(t, []*entity.Column{right}, ws.Columns())
	assert.Same(t, a, ws.ForceWin())
	assert.Same(t, right, ws.ForceColumn())
}

func TestColumn_InsertExistingWinSameColumn(t *testing.T) {
	col := newManager(t, 1).CurrentWorkspace().InsertColumnAtEnd(0)
	a, _ := col.InsertWinAtEnd(entity.NewContent("a"))
	b, _ := col.InsertWinAtEnd(entity.NewContent("b"))
	c, _ := col.InsertWinAtEnd(entity.NewContent("c"))

	_, err := col.InsertWinAtEnd(entity.ExistingWin(a))
	require.NoError(t, err)
	assert.Equal(t, []*entity.Win{b, c, a}, col.Wins())

	_, err = col.InsertWinAtStart(entity.ExistingWin(a))
	require.NoError(t, err)
	assert.Equal(t, []*entity.Win{a, b, c}, col.Wins())
}

func TestColumn_InsertExistingWinAcrossWorkspaces(t *testing.T) {
	lm := newManager(t, 2)
	src := lm.Workspace(0).InsertColumnAtEnd(0)
	dst := lm.Workspace(1).InsertColumnAtEnd(0)
	a, _ := src.InsertWinAtEnd(entity.NewContent("a"))
	b, _ := src.InsertWinAtEnd(entity.NewContent("b"))
	a.SetAsForceWin()

	_, err := dst.InsertWinAtEnd(entity.ExistingWin(a))
	require.NoError(t, err)

	assert.Same(t, lm.Workspace(1), a.Workspace())
	assert.Same(t, b, lm.Workspace(0).ForceWin())
	assert.Nil(t, lm.Workspace(1).ForceWin())
}

func TestColumn_Neighbors(t *testing.T) {
	ws := newManager(t, 1).CurrentWorkspace()
	a := ws.InsertColumnAtEnd(0)
	b := ws.InsertColumnAtEnd(0)
	c := ws.InsertColumnAtEnd(0)

	assert.Nil(t, a.LeftColumn())
	assert.Same(t, b, a.RightColumn())
	assert.Same(t, a, b.LeftColumn())
	assert.Same(t, c, b.RightColumn())
	assert.Nil(t, c.RightColumn())
}

func TestColumn_InsertColumnAtLeftRight(t *testing.T) {
	ws := newManager(t, 1).CurrentWorkspace()
	mid := ws.InsertColumnAtEnd(0)

	l := mid.InsertColumnAtLeft(20)
	r := mid.InsertColumnAtRight(0)

	assert.Equal(t, []*entity.Column{l, mid, r}, ws.Columns())
	assert.Equal(t, 20.0, l.Width())
	assert.Equal(t, entity.DefaultColumnWidth, r.Width())
}

func TestColumn_SwitchWithNeighbors(t *testing.T) {
	ws := newManager(t, 1).CurrentWorkspace()
	a := ws.InsertColumnAtEnd(0)
	b := ws.InsertColumnAtEnd(0)
	c := ws.InsertColumnAtEnd(0)

	a.SwitchWithLeft()
	c.SwitchWithRight()
	assert.Equal(t, []*entity.Column{a, b, c}, ws.Columns())

	a.SwitchWithRight()
	assert.Equal(t, []*entity.Column{b, a, c}, ws.Columns())

	c.SwitchWithLeft()
	assert.Equal(t, []*entity.Column{b, c, a}, ws.Columns())
}

func TestColumn_SetWidth(t *testing.T) {
	col := newManager(t, 1).CurrentWorkspace().InsertColumnAtEnd(0)

	require.NoError(t, col.SetWidth(75))
	assert.Equal(t, 75.0, col.Width())

	assert.ErrorIs(t, col.SetWidth(0), entity.ErrInvalidWidth)
	assert.ErrorIs(t, col.SetWidth(-3), entity.ErrInvalidWidth)
	assert.ErrorIs(t, col.SetWidth(math.NaN()), entity.ErrInvalidWidth)
	assert.ErrorIs(t, col.SetWidth(math.Inf(1)), entity.ErrInvalidWidth)
	assert.ErrorIs(t, col.SetWidth(math.Inf(-1)), entity.ErrInvalidWidth)
	assert.Equal(t, 75.0, col.Width())
	assert.Equal(t, 75.0, col.Workspace().ScrollLength())
}

func TestColumn_Destroy(t *testing.T) {
	ws := newManager(t, 1).CurrentWorkspace()
	col := ws.InsertColumnAtEnd(0)
	w, _ := col.InsertWinAtEnd(entity.NewContent("w"))

	err := col.Destroy()
	require.ErrorIs(t, err, entity.ErrIllegalState)
	assert.Equal(t, 1, ws.ColumnCount())

	empty := ws.InsertColumnAtEnd(0)
	require.NoError(t, empty.Destroy())
	assert.Equal(t, []*entity.Column{col}, ws.Columns())

	w.Destroy()
	assert.Zero(t, ws.ColumnCount())
}

func TestColumn_RDestroy(t *testing.T) {
	for _, n := range []int{0, 1, 4} {
		lm := newManager(t, 1)
		ws := lm.CurrentWorkspace()
		keep := ws.InsertColumnAtEnd(0)
		kept, _ := keep.InsertWinAtEnd(entity.NewContent("keep"))
		col := ws.InsertColumnAtEnd(0)
		for i := 0; i < n; i++ {
			_, err := col.InsertWinAtEnd(entity.NewContent(i))
			require.NoError(t, err)
		}
		if n > 0 {
			col.Win(n - 1).SetAsForceWin()
		}

		col.RDestroy()

		assert.Equal(t, []*entity.Column{keep}, ws.Columns(), "n=%d", n)
		assert.Equal(t, []*entity.Win{kept}, lm.WinList(), "n=%d", n)
		if n > 0 {
			assert.Same(t, kept, ws.ForceWin(), "n=%d", n)
		}
	}
}

func TestColumn_IndexFaultWhenDetached(t *testing.T) {
	ws := newManager(t, 1).CurrentWorkspace()
	col := ws.InsertColumnAtEnd(0)
	require.NoError(t, col.Destroy())

	defer func() {
		r := recover()
		require.NotNil(t, r)
		cerr, ok := r.(*entity.ConsistencyError)
		require.True(t, ok)
		assert.ErrorIs(t, cerr, entity.ErrColumnNotInWorkspace)
		assert.NotErrorIs(t, cerr, entity.ErrWinNotInColumn)
	}()
	col.Index()
}
