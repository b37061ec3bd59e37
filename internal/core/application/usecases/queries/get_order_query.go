package queries

import (
	"errors"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// Caller is who is asking. A guest has neither UserID nor IsAdmin and may
// carry the token handed out when their order was placed.
type Caller struct {
	UserID     *kernel.UUID
	IsAdmin    bool
	GuestToken string
}

// GetOrderQuery loads one order on behalf of a caller.
//
// Example:
//
//	query, _ := NewGetOrderQuery(orderID, Caller{GuestToken: token})
//	o, err := handler.Handle(ctx, query)
//	if errors.Is(err, order.ErrOrderNotFound) {
//	    // missing, or not visible to this caller
//	}
type GetOrderQuery struct {
	orderID kernel.UUID
	caller  Caller

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID, caller Caller) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, caller: caller, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q GetOrderQuery) Caller() Caller {
	return q.caller
}
