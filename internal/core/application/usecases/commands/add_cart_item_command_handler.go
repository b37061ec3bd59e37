package commands

import (
	"context"
	"errors"

	"bookstore/internal/core/domain/model/cart"
	"bookstore/internal/core/ports"
	"bookstore/internal/pkg/errs"
)

// AddCartItemCommandHandler loads the session cart, adds the book at its
// current price and stores the cart back.
//
// Example:
//
//	cmd, _ := NewAddCartItemCommand(sessionID, bookID, 2)
//	c, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, cart.ErrStockExceeded) {
//	    // show "only N left"
//	}
type AddCartItemCommandHandler struct {
	carts ports.CartStore
	books ports.BookRepository
}

func NewAddCartItemCommandHandler(carts ports.CartStore, books ports.BookRepository) *AddCartItemCommandHandler {
	return &AddCartItemCommandHandler{carts: carts, books: books}
}

// Handle returns the updated cart. A missing book is ErrBookUnavailable.
func (h *AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) (*cart.Cart, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	c, err := h.carts.Load(ctx, cmd.SessionID())
	if err != nil {
		return nil, err
	}

	b, err := h.books.Get(ctx, cmd.BookID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, cart.ErrBookUnavailable
	}
	if err != nil {
		return nil, err
	}

	if err = c.AddItem(b, cmd.Quantity()); err != nil {
		return nil, err
	}

	if err = h.carts.Save(ctx, cmd.SessionID(), c); err != nil {
		return nil, err
	}

	return c, nil
}
