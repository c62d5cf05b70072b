package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/candle/internal/application/port"
	"github.com/bnema/candle/internal/domain/entity"
	"github.com/bnema/candle/internal/logging"
)

// NavigateDirection indicates the direction for focus navigation.
type NavigateDirection string

const (
	NavLeft  NavigateDirection = "left"
	NavRight NavigateDirection = "right"
	NavUp    NavigateDirection = "up"
	NavDown  NavigateDirection = "down"
)

// Placement says where Open puts the new window relative to the focused one.
type Placement string

const (
	PlaceRight Placement = "right"
	PlaceBelow Placement = "below"
	PlaceAbove Placement = "above"
	PlaceLeft  Placement = "left"
)

var (
	ErrNoFocusedWin     = errors.New("no focused window")
	ErrInvalidDirection = errors.New("invalid direction")
	ErrInvalidPlacement = errors.New("invalid placement")
)

// ColumnLimits bounds interactive column resizing.
type ColumnLimits struct {
	Min float64
	Max float64
}

func (l ColumnLimits) clamp(width float64) float64 {
	if l.Max > 0 && width > l.Max {
		width = l.Max
	}
	if width < l.Min {
		width = l.Min
	}
	return width
}

// ManageLayoutUseCase drives a LayoutManager on behalf of a host. Every
// operation relays the changes it caused to the observer in one batch.
// Like the manager itself it is not safe for concurrent use.
type ManageLayoutUseCase struct {
	lm       *entity.LayoutManager
	observer port.LayoutObserver
	limits   ColumnLimits

	pending     []entity.Change
	unsubscribe func()
}

// NewManageLayoutUseCase creates a layout use case around lm. observer may be nil.
func NewManageLayoutUseCase(lm *entity.LayoutManager, observer port.LayoutObserver, limits ColumnLimits) *ManageLayoutUseCase {
	uc := &ManageLayoutUseCase{
		lm:       lm,
		observer: observer,
		limits:   limits,
	}
	uc.unsubscribe = lm.Subscribe(func(c entity.Change) {
		uc.pending = append(uc.pending, c)
	})
	return uc
}

// Close stops listening to the manager.
func (uc *ManageLayoutUseCase) Close() {
	if uc.unsubscribe != nil {
		uc.unsubscribe()
		uc.unsubscribe = nil
	}
}

// Manager returns the wrapped layout manager.
func (uc *ManageLayoutUseCase) Manager() *entity.LayoutManager {
	return uc.lm
}

// Focused returns the focused window of the current workspace, or nil.
func (uc *ManageLayoutUseCase) Focused() *entity.Win {
	return uc.lm.ForceWin()
}

// Snapshot returns a copy of the current layout.
func (uc *ManageLayoutUseCase) Snapshot() *entity.LayoutSnapshot {
	return uc.lm.Snapshot()
}

// publish hands the buffered changes to the observer.
func (uc *ManageLayoutUseCase) publish(ctx context.Context) {
	if len(uc.pending) == 0 {
		return
	}
	batch := uc.pending
	uc.pending = nil

	logging.FromContext(ctx).Trace().Int("changes", len(batch)).Msg("layout changed")
	if uc.observer != nil {
		uc.observer.LayoutChanged(ctx, batch)
	}
}

// OpenInput contains parameters for opening a window.
type OpenInput struct {
	Content entity.Content
	// Width of a newly created column; non-positive uses the manager default.
	Width     float64
	Placement Placement // defaults to PlaceRight
}

// Open inserts a new window next to the focused one, focuses it and scrolls
// it into view. Without a focused window every placement appends a column
// to the current workspace.
func (uc *ManageLayoutUseCase) Open(ctx context.Context, input OpenInput) (*entity.Win, error) {
	log := logging.FromContext(ctx)

	placement := input.Placement
	if placement == "" {
		placement = PlaceRight
	}
	log.Debug().
		Str("placement", string(placement)).
		Float64("width", input.Width).
		Int("workspace", uc.lm.CurrentWorkspace().SelfIndex()).
		Msg("opening window")

	src := entity.NewContent(input.Content)
	force := uc.lm.ForceWin()

	var (
		win *entity.Win
		err error
	)
	switch {
	case placement != PlaceRight && placement != PlaceBelow && placement != PlaceAbove && placement != PlaceLeft:
		return nil, fmt.Errorf("%w: %q", ErrInvalidPlacement, placement)
	case force == nil || placement == PlaceRight:
		win, err = uc.lm.AddWin(src, input.Width)
	case placement == PlaceBelow:
		win, err = force.InsertWinAtBelow(src)
	case placement == PlaceAbove:
		win, err = force.InsertWinAtAbove(src)
	default:
		win, err = force.InsertWinAtLeft(src, input.Width)
	}
	if err != nil {
		uc.publish(ctx)
		return nil, fmt.Errorf("open window: %w", err)
	}

	win.SetAsForceWin()
	uc.lm.CalcSizeInfo()
	win.ScrollFit()
	uc.publish(ctx)

	logging.FromContext(logging.WithWinKey(ctx, string(win.Key()))).Info().Msg("window opened")
	return win, nil
}

// CloseFocused destroys the focused window and returns the window that
// inherited focus, which may be nil.
func (uc *ManageLayoutUseCase) CloseFocused(ctx context.Context) (*entity.Win, error) {
	force := uc.lm.ForceWin()
	if force == nil {
		return nil, ErrNoFocusedWin
	}
	key := force.Key()

	force.Destroy()
	uc.lm.CalcSizeInfo()
	ws := uc.lm.CurrentWorkspace()
	// Re-clamp: the workspace may have become narrower than the offset.
	ws.ScrollTo(ws.BaseX())
	next := uc.lm.ForceWin()
	if next != nil {
		next.ScrollFit()
	}
	uc.publish(ctx)

	logging.FromContext(logging.WithWinKey(ctx, string(key))).Info().Msg("window closed")
	return next, nil
}

// Focus moves focus to the neighbor of the focused window in dir and
// returns it. At a boundary nothing changes and (nil, nil) is returned.
// With nothing focused, the first window of the current workspace is focused.
func (uc *ManageLayoutUseCase) Focus(ctx context.Context, dir NavigateDirection) (*entity.Win, error) {
	log := logging.FromContext(ctx)

	var neighbor func(*entity.Win) *entity.Win
	switch dir {
	case NavLeft:
		neighbor = (*entity.Win).LeftWin
	case NavRight:
		neighbor = (*entity.Win).RightWin
	case NavUp:
		neighbor = (*entity.Win).AboveWin
	case NavDown:
		neighbor = (*entity.Win).BelowWin
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidDirection, dir)
	}

	var target *entity.Win
	if force := uc.lm.ForceWin(); force != nil {
		target = neighbor(force)
	} else {
		target = firstWin(uc.lm.CurrentWorkspace())
	}
	if target == nil {
		log.Debug().Str("direction", string(dir)).Msg("no window in direction")
		return nil, nil
	}

	target.SetAsForceWin().ScrollFit()
	uc.publish(ctx)

	log.Debug().Str("direction", string(dir)).Str("win_key", string(target.Key())).Msg("focus moved")
	return target, nil
}

func firstWin(ws *entity.Workspace) *entity.Win {
	for _, col := range ws.Columns() {
		if col.WinCount() > 0 {
			return col.Win(0)
		}
	}
	return nil
}

// MoveColumn swaps the focused column with its left or right neighbor.
func (uc *ManageLayoutUseCase) MoveColumn(ctx context.Context, dir NavigateDirection) error {
	force := uc.lm.ForceWin()
	if force == nil {
		return ErrNoFocusedWin
	}
	col := force.Column()
	switch dir {
	case NavLeft:
		col.SwitchWithLeft()
	case NavRight:
		col.SwitchWithRight()
	default:
		return fmt.Errorf("%w: columns move left or right, got %q", ErrInvalidDirection, dir)
	}
	uc.lm.CalcSizeInfo()
	uc.lm.ScrollToForce()
	uc.publish(ctx)

	logging.FromContext(ctx).Debug().
		Str("direction", string(dir)).
		Int("column", col.Index()).
		Msg("column moved")
	return nil
}

// ResizeColumn changes the focused column width by delta, clamped to the
// configured limits, and returns the new width.
func (uc *ManageLayoutUseCase) ResizeColumn(ctx context.Context, delta float64) (float64, error) {
	force := uc.lm.ForceWin()
	if force == nil {
		return 0, ErrNoFocusedWin
	}
	col := force.Column()
	width := uc.limits.clamp(col.Width() + delta)
	if err := col.SetWidth(width); err != nil {
		return col.Width(), fmt.Errorf("resize column: %w", err)
	}
	uc.lm.CalcSizeInfo()
	ws := uc.lm.CurrentWorkspace()
	ws.ScrollTo(ws.BaseX())
	uc.lm.ScrollToForce()
	uc.publish(ctx)

	logging.FromContext(ctx).Debug().
		Float64("delta", delta).
		Float64("width", width).
		Msg("column resized")
	return width, nil
}

// SwitchWorkspace makes the workspace at index current.
func (uc *ManageLayoutUseCase) SwitchWorkspace(ctx context.Context, index int) error {
	if err := uc.lm.SwitchToWorkspace(index); err != nil {
		return fmt.Errorf("switch workspace: %w", err)
	}
	uc.lm.CalcSizeInfo()
	uc.publish(ctx)

	logging.FromContext(logging.WithWorkspace(ctx, index)).Debug().Msg("workspace switched")
	return nil
}

// Scroll moves the current workspace viewport by delta; negative scrolls
// towards the head.
func (uc *ManageLayoutUseCase) Scroll(ctx context.Context, delta float64) {
	if delta < 0 {
		uc.lm.ScrollLeft(-delta)
	} else {
		uc.lm.ScrollRight(delta)
	}
	uc.publish(ctx)
}

// ScrollToHead scrolls the current workspace to its first column.
func (uc *ManageLayoutUseCase) ScrollToHead(ctx context.Context) {
	uc.lm.ScrollToHead()
	uc.publish(ctx)
}

// ScrollToTail scrolls the current workspace to its last column.
func (uc *ManageLayoutUseCase) ScrollToTail(ctx context.Context) {
	uc.lm.ScrollToTail()
	uc.publish(ctx)
}

// SetViewport updates the host container geometry.
func (uc *ManageLayoutUseCase) SetViewport(ctx context.Context, si entity.SizeInfo) {
	uc.lm.SetSizeInfo(si)
	uc.publish(ctx)
}

// Relayout re-runs the placement pass.
func (uc *ManageLayoutUseCase) Relayout(ctx context.Context) {
	uc.lm.CalcSizeInfo()
	uc.publish(ctx)
}
