package cli

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/bnema/candle/internal/application/usecase"
	"github.com/bnema/candle/internal/domain/entity"
)

var (
	// ErrUnknownOp is returned for words the layout script does not know.
	ErrUnknownOp = errors.New("unknown layout operation")
	ErrNotFinite = errors.New("number must be finite")
)

// LayoutOp is one parsed step of a layout script.
type LayoutOp struct {
	Name string
	// Arg is the numeric argument of name=value steps.
	Arg float64
	// Width and Height are set by viewport=WxH.
	Width, Height float64
}

func (op LayoutOp) String() string {
	switch op.Name {
	case "ws", "scroll", "grow":
		return op.Name + "=" + strconv.FormatFloat(op.Arg, 'f', -1, 64)
	case "viewport":
		return fmt.Sprintf("viewport=%gx%g", op.Width, op.Height)
	}
	return op.Name
}

var bareOps = map[string]struct{}{
	"open": {}, "below": {}, "above": {}, "left": {}, "close": {},
	"focus-left": {}, "focus-right": {}, "focus-up": {}, "focus-down": {},
	"move-left": {}, "move-right": {}, "head": {}, "tail": {},
}

// ParseLayoutOps parses words such as "open", "ws=2" or "viewport=1920x1080".
// Workspace numbers are 1-based like the TUI keys.
func ParseLayoutOps(args []string) ([]LayoutOp, error) {
	ops := make([]LayoutOp, 0, len(args))
	for _, arg := range args {
		word := strings.ToLower(strings.TrimSpace(arg))
		name, value, hasValue := strings.Cut(word, "=")
		if !hasValue {
			if _, ok := bareOps[name]; !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnknownOp, arg)
			}
			ops = append(ops, LayoutOp{Name: name})
			continue
		}

		switch name {
		case "ws":
			n, err := strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("parse %q: workspace must be an integer: %w", arg, err)
			}
			ops = append(ops, LayoutOp{Name: name, Arg: float64(n)})
		case "scroll", "grow":
			n, err := parseFinite(value)
			if err != nil {
				return nil, fmt.Errorf("parse %q: %w", arg, err)
			}
			ops = append(ops, LayoutOp{Name: name, Arg: n})
		case "viewport":
			ws, hs, ok := strings.Cut(value, "x")
			if !ok {
				return nil, fmt.Errorf("parse %q: want WIDTHxHEIGHT", arg)
			}
			w, err := parseFinite(ws)
			if err != nil {
				return nil, fmt.Errorf("parse %q: %w", arg, err)
			}
			h, err := parseFinite(hs)
			if err != nil {
				return nil, fmt.Errorf("parse %q: %w", arg, err)
			}
			if w < 0 || h < 0 {
				return nil, fmt.Errorf("parse %q: viewport size must not be negative", arg)
			}
			ops = append(ops, LayoutOp{Name: name, Width: w, Height: h})
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownOp, arg)
		}
	}
	return ops, nil
}

// parseFinite rejects NaN and infinities, which strconv accepts.
func parseFinite(s string) (float64, error) {
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, fmt.Errorf("%w: %s", ErrNotFinite, s)
	}
	return n, nil
}

// RunLayoutOps applies ops in order. Focus moves that hit a boundary are
// not errors; anything else stops the script.
func RunLayoutOps(ctx context.Context, uc *usecase.ManageLayoutUseCase, ops []LayoutOp, padding entity.SizeInfo) error {
	opened := 0
	for i, op := range ops {
		if err := runLayoutOp(ctx, uc, op, padding, &opened); err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, op, err)
		}
	}
	return nil
}

func runLayoutOp(ctx context.Context, uc *usecase.ManageLayoutUseCase, op LayoutOp, padding entity.SizeInfo, opened *int) error {
	open := func(p usecase.Placement) error {
		*opened++
		_, err := uc.Open(ctx, usecase.OpenInput{Content: fmt.Sprintf("win %d", *opened), Placement: p})
		return err
	}

	switch op.Name {
	case "open":
		return open(usecase.PlaceRight)
	case "below":
		return open(usecase.PlaceBelow)
	case "above":
		return open(usecase.PlaceAbove)
	case "left":
		return open(usecase.PlaceLeft)
	case "close":
		_, err := uc.CloseFocused(ctx)
		return err
	case "focus-left", "focus-right", "focus-up", "focus-down":
		dir := usecase.NavigateDirection(strings.TrimPrefix(op.Name, "focus-"))
		_, err := uc.Focus(ctx, dir)
		return err
	case "move-left":
		return uc.MoveColumn(ctx, usecase.NavLeft)
	case "move-right":
		return uc.MoveColumn(ctx, usecase.NavRight)
	case "grow":
		_, err := uc.ResizeColumn(ctx, op.Arg)
		return err
	case "scroll":
		uc.Scroll(ctx, op.Arg)
	case "head":
		uc.ScrollToHead(ctx)
	case "tail":
		uc.ScrollToTail(ctx)
	case "ws":
		return uc.SwitchWorkspace(ctx, int(op.Arg)-1)
	case "viewport":
		si := padding
		si.Width = op.Width
		si.Height = op.Height
		uc.SetViewport(ctx, si)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOp, op.Name)
	}
	return nil
}
