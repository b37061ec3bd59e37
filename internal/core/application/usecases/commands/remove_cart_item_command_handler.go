package commands

import (
	"context"

	"bookstore/internal/core/domain/model/cart"
	"bookstore/internal/core/ports"
)

type RemoveCartItemCommandHandler struct {
	carts ports.CartStore
}

func NewRemoveCartItemCommandHandler(carts ports.CartStore) *RemoveCartItemCommandHandler {
	return &RemoveCartItemCommandHandler{carts: carts}
}

// Handle returns the cart without the line, or cart.ErrItemNotFound.
func (h *RemoveCartItemCommandHandler) Handle(ctx context.Context, cmd RemoveCartItemCommand) (*cart.Cart, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	c, err := h.carts.Load(ctx, cmd.SessionID())
	if err != nil {
		return nil, err
	}

	if err = c.RemoveItem(cmd.BookID()); err != nil {
		return nil, err
	}

	if err = h.carts.Save(ctx, cmd.SessionID(), c); err != nil {
		return nil, err
	}

	return c, nil
}
