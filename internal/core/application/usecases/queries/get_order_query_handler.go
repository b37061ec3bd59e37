package queries

import (
	"context"
	"errors"
	"fmt"

	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/core/ports"
	"bookstore/internal/pkg/errs"
)

// GetOrderQueryHandler returns an order to admins, to the registered user who
// placed it, or to a guest holding a token issued for it. Anyone else gets
// order.ErrOrderNotFound, the same as for a missing order.
type GetOrderQueryHandler struct {
	orders ports.OrderRepository
	tokens ports.GuestTokenIssuer
}

func NewGetOrderQueryHandler(orders ports.OrderRepository, tokens ports.GuestTokenIssuer) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders, tokens: tokens}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, fmt.Errorf("%w: %w", order.ErrOrderNotFound, err)
	}
	if err != nil {
		return nil, errs.NewPersistenceError("load order", err)
	}

	if !h.canSee(query.Caller(), o) {
		return nil, fmt.Errorf("%w: %s", order.ErrOrderNotFound, query.OrderID())
	}

	return o, nil
}

func (h GetOrderQueryHandler) canSee(caller Caller, o *order.Order) bool {
	if caller.IsAdmin {
		return true
	}
	if caller.UserID != nil && o.IsOwnedBy(*caller.UserID) {
		return true
	}
	if caller.GuestToken == "" {
		return false
	}

	orderID, err := h.tokens.Verify(caller.GuestToken)
	return err == nil && orderID.IsEqual(o.ID())
}
