package ports

import (
	"context"
	"time"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add inserts the order row and all of its item rows.
	// Within a unit of work both land in the same transaction.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get loads an order with its items and current status.
	// A missing order is an error wrapping errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// UpdateStatus sets the status to `to` only if it is currently `from`,
	// as a single conditional write. It reports whether a row changed.
	UpdateStatus(ctx context.Context, id kernel.UUID, from, to order.Status, at time.Time) (bool, error)
}

// StatusCatalog resolves status names against the order_statuses table.
type StatusCatalog interface {
	// Resolve fails with an error wrapping errs.ErrObjectNotFound when the
	// status is not seeded.
	Resolve(ctx context.Context, status order.Status) error
}
