package ports

import (
	"context"

	"bookstore/internal/core/domain/model/book"
	"bookstore/internal/core/domain/model/kernel"
)

// BookRepository reads authoritative book records and owns the only write the
// order core performs on them: the stock decrement at checkout.
type BookRepository interface {
	// Get returns the book or an error wrapping errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*book.Book, error)

	// DecrementStock subtracts qty if the book is active and has at least qty
	// in stock, as one conditional update, and returns the remaining stock.
	// When the condition fails it returns *book.InsufficientStockError.
	DecrementStock(ctx context.Context, id kernel.UUID, qty int) (int, error)
}
