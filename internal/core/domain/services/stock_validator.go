package services

import (
	"context"
	"errors"

	"bookstore/internal/core/domain/model/book"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"
)

// BookReader loads the authoritative record for a book.
// A missing book is reported as an error wrapping errs.ErrObjectNotFound.
type BookReader interface {
	Get(ctx context.Context, id kernel.UUID) (*book.Book, error)
}

// StockLine is one requested (book, quantity) pair.
type StockLine struct {
	BookID   kernel.UUID
	Title    string
	Quantity int
}

// StockValidator checks requested quantities against live book records.
//
// Business rules:
//   - The book must exist and be active
//   - stock_quantity must be at least the requested quantity
//   - Lines are checked in order and the first failure is returned
//
// A failing line yields *book.InsufficientStockError. Missing and inactive
// books report zero availability; the title falls back to the line's own
// title when the book is gone.
//
// Example:
//
//	validator := services.NewStockValidator()
//	err := validator.Validate(ctx, lines, bookRepo)
//	var stockErr *book.InsufficientStockError
//	if errors.As(err, &stockErr) {
//	    // stockErr.Title, stockErr.Available
//	}
type StockValidator struct{}

func NewStockValidator() StockValidator {
	return StockValidator{}
}

// Validate runs the check. Lookup failures other than not-found are returned
// unchanged.
func (StockValidator) Validate(ctx context.Context, lines []StockLine, books BookReader) error {
	for _, line := range lines {
		b, err := books.Get(ctx, line.BookID)
		if errors.Is(err, errs.ErrObjectNotFound) {
			return book.NewInsufficientStockError(line.BookID, line.Title, 0, line.Quantity)
		}
		if err != nil {
			return err
		}

		if !b.IsActive() {
			return book.NewInsufficientStockError(line.BookID, b.Title(), 0, line.Quantity)
		}
		if !b.CanSupply(line.Quantity) {
			return book.NewInsufficientStockError(line.BookID, b.Title(), b.StockQuantity(), line.Quantity)
		}
	}
	return nil
}
