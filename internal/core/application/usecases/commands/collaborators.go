package commands

import (
	"context"

	"bookstore/internal/core/domain/model/actionlog"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"

	"golang.org/x/sync/errgroup"
)

// OrderNotifier sends the customer and admin messages for order events.
// Implementations never fail; delivery problems are theirs to log.
type OrderNotifier interface {
	OrderPlaced(ctx context.Context, o *order.Order)
	StatusChanged(ctx context.Context, o *order.Order)
}

// ActionRecorder appends to the action log. Implementations never fail.
type ActionRecorder interface {
	Record(ctx context.Context, actor *kernel.UUID, action actionlog.ActionType, details map[string]any)
}

// runAfterCommit runs the effects concurrently and waits for all of them.
// The effects see ctx's values but not its cancellation.
func runAfterCommit(ctx context.Context, effects ...func(ctx context.Context)) {
	detached := context.WithoutCancel(ctx)

	var g errgroup.Group
	for _, effect := range effects {
		g.Go(func() error {
			effect(detached)
			return nil
		})
	}
	_ = g.Wait()
}
