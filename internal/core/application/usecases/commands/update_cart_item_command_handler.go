package commands

import (
	"context"
	"errors"

	"bookstore/internal/core/domain/model/book"
	"bookstore/internal/core/domain/model/cart"
	"bookstore/internal/core/ports"
	"bookstore/internal/pkg/errs"
)

// UpdateCartItemCommandHandler re-checks live stock before changing a line's
// quantity. A book that disappeared from the catalogue counts as zero stock.
type UpdateCartItemCommandHandler struct {
	carts ports.CartStore
	books ports.BookRepository
}

func NewUpdateCartItemCommandHandler(carts ports.CartStore, books ports.BookRepository) *UpdateCartItemCommandHandler {
	return &UpdateCartItemCommandHandler{carts: carts, books: books}
}

func (h *UpdateCartItemCommandHandler) Handle(ctx context.Context, cmd UpdateCartItemCommand) (*cart.Cart, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	c, err := h.carts.Load(ctx, cmd.SessionID())
	if err != nil {
		return nil, err
	}
	if !c.Contains(cmd.BookID()) {
		return nil, cart.ErrItemNotFound
	}

	var live *book.Book
	live, err = h.books.Get(ctx, cmd.BookID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	if err = c.UpdateItem(cmd.BookID(), cmd.Quantity(), live); err != nil {
		return nil, err
	}

	if err = h.carts.Save(ctx, cmd.SessionID(), c); err != nil {
		return nil, err
	}

	return c, nil
}
