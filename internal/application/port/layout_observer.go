package port

import (
	"context"

	"github.com/bnema/candle/internal/domain/entity"
)

// LayoutObserver is notified after each layout operation with the batch of
// changes it produced. Hosts re-render from it.
type LayoutObserver interface {
	LayoutChanged(ctx context.Context, changes []entity.Change)
}

// LayoutObserverFunc adapts a plain function to LayoutObserver.
type LayoutObserverFunc func(ctx context.Context, changes []entity.Change)

// LayoutChanged calls f.
func (f LayoutObserverFunc) LayoutChanged(ctx context.Context, changes []entity.Change) {
	f(ctx, changes)
}
