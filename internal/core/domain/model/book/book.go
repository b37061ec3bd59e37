// Package book models the authoritative catalogue record the order core reads
// stock and price from. Catalogue editing lives outside this core.
package book

import (
	"errors"
	"fmt"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"
)

var (
	ErrBookIsNotConstructed = errors.New("Book must be created via RestoreBook constructor")

	// ErrInsufficientStock is the sentinel behind InsufficientStockError.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// InsufficientStockError names the line that could not be served.
// Missing and inactive books report Available as 0.
type InsufficientStockError struct {
	BookID    kernel.UUID
	Title     string
	Available int
	Requested int
}

func NewInsufficientStockError(bookID kernel.UUID, title string, available, requested int) *InsufficientStockError {
	return &InsufficientStockError{BookID: bookID, Title: title, Available: available, Requested: requested}
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s for book %q: requested %d, available %d",
		ErrInsufficientStock, e.Title, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// Book is a read model of one catalogue row.
type Book struct {
	id            kernel.UUID
	title         string
	author        string
	imageURL      string
	price         kernel.Money
	stockQuantity int
	isActive      bool

	isConstructed bool
}

// RestoreBook rebuilds a Book from storage.
func RestoreBook(
	id kernel.UUID,
	title, author, imageURL string,
	price kernel.Money,
	stockQuantity int,
	isActive bool,
) (*Book, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if title == "" {
		return nil, errs.NewValueIsRequiredError("title")
	}
	if stockQuantity < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"stock quantity",
			fmt.Errorf("%d is negative", stockQuantity),
		)
	}

	return &Book{
		id:            id,
		title:         title,
		author:        author,
		imageURL:      imageURL,
		price:         price,
		stockQuantity: stockQuantity,
		isActive:      isActive,
		isConstructed: true,
	}, nil
}

func (b *Book) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBookIsNotConstructed
	}
	return nil
}

func (b *Book) ID() kernel.UUID { return b.id }
func (b *Book) Title() string { return b.title }
func (b *Book) Author() string { return b.author }
func (b *Book) ImageURL() string { return b.imageURL }
func (b *Book) Price() kernel.Money { return b.price }
func (b *Book) StockQuantity() int { return b.stockQuantity }
func (b *Book) IsActive() bool { return b.isActive }

// CanSupply reports whether qty units can be sold right now.
func (b *Book) CanSupply(qty int) bool {
	return b.isActive && b.stockQuantity >= qty
}
