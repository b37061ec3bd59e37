package ports

import (
	"context"

	"bookstore/internal/core/domain/model/cart"
)

// CartStore persists a session's cart as an opaque blob.
type CartStore interface {
	// Load returns the stored cart, or a new empty one when the session has none.
	Load(ctx context.Context, sessionID string) (*cart.Cart, error)
	Save(ctx context.Context, sessionID string, c *cart.Cart) error
	// Claim atomically takes the cart out of the store. Concurrent callers
	// for one session see it at most once; the others get an empty cart.
	Claim(ctx context.Context, sessionID string) (*cart.Cart, error)
}
