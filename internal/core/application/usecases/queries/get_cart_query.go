// Package queries contains read-only operations over carts and orders.
package queries

import (
	"context"
	"errors"

	"bookstore/internal/core/domain/model/cart"
	"bookstore/internal/core/ports"
	"bookstore/internal/pkg/errs"
	"bookstore/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

// GetCartQuery reads the cart stored for a session.
type GetCartQuery struct {
	sessionID string

	guard guard.ConstructorGuard
}

func NewGetCartQuery(sessionID string) (GetCartQuery, error) {
	if sessionID == "" {
		return GetCartQuery{}, errs.NewValueIsRequiredError("session id")
	}
	return GetCartQuery{sessionID: sessionID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

func (q GetCartQuery) SessionID() string {
	return q.sessionID
}

type GetCartQueryHandler struct {
	carts ports.CartStore
}

func NewGetCartQueryHandler(carts ports.CartStore) GetCartQueryHandler {
	return GetCartQueryHandler{carts: carts}
}

// Handle returns an empty cart for a session that has none.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (*cart.Cart, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.carts.Load(ctx, query.SessionID())
}
