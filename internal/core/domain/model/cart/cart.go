// Package cart models a shopper's session cart: ordered lines with a price
// snapshot per line and totals derived from them.
//
// Key business rules:
//   - Line quantities are at least 1
//   - A book appears at most once; adding it again sums the quantities
//   - The price is captured when a line is first added and never refreshed
//   - TotalQuantity and TotalAmount are recomputed after every mutation
//
// The stock figure stored on a line is a display hint only. Order placement
// always re-reads live stock.
package cart

import (
	"errors"
	"fmt"

	"bookstore/internal/core/domain/model/book"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"
)

var (
	ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart or RestoreCart constructor")

	ErrInvalidQuantity = errs.NewValueIsInvalidError("quantity must be greater than 0")
	ErrBookUnavailable = errors.New("book not found or currently unavailable")
	ErrStockExceeded   = errors.New("quantity exceeds available stock")
	ErrItemNotFound    = errors.New("item not found in cart")
)

// Item is one cart line.
type Item struct {
	BookID        kernel.UUID
	Title         string
	Author        string
	ImageURL      string
	Price         kernel.Money
	Quantity      int
	StockSnapshot int
}

// Subtotal is Price × Quantity.
func (i Item) Subtotal() kernel.Money {
	return i.Price.Times(i.Quantity)
}

// Cart is the session-scoped aggregate. It is not safe for concurrent use;
// each request works on its own loaded copy.
type Cart struct {
	id            kernel.UUID
	items         []Item
	totalQuantity int
	totalAmount   kernel.Money

	isConstructed bool
}

// NewCart returns an empty cart.
func NewCart(id kernel.UUID) (*Cart, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return &Cart{id: id, items: make([]Item, 0), isConstructed: true}, nil
}

// RestoreCart rebuilds a cart from its stored lines. Lines repeating a book
// are merged into the first one, summing quantities. Totals are recomputed,
// never trusted from storage.
func RestoreCart(id kernel.UUID, items []Item) (*Cart, error) {
	c, err := NewCart(id)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: line %s has quantity %d", ErrInvalidQuantity, item.BookID, item.Quantity)
		}
		if err = item.BookID.Validate(); err != nil {
			return nil, err
		}

		if idx := c.indexOf(item.BookID); idx >= 0 {
			c.items[idx].Quantity += item.Quantity
			continue
		}
		c.items = append(c.items, item)
	}

	c.recalculate()
	return c, nil
}

func (c *Cart) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartIsNotConstructed
	}
	return nil
}

func (c *Cart) ID() kernel.UUID {
	return c.id
}

// Items returns a copy of the lines in insertion order.
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) TotalQuantity() int {
	return c.totalQuantity
}

func (c *Cart) TotalAmount() kernel.Money {
	return c.totalAmount
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// AddItem adds qty units of b. An existing line is increased; otherwise a new
// line is appended with b's current price.
func (c *Cart) AddItem(b *book.Book, qty int) error {
	if qty <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidQuantity, qty)
	}
	if b.Validate() != nil || !b.IsActive() {
		return ErrBookUnavailable
	}

	idx := c.indexOf(b.ID())
	newQty := qty
	if idx >= 0 {
		newQty += c.items[idx].Quantity
	}
	if newQty > b.StockQuantity() {
		return fmt.Errorf("%w: total quantity %d exceeds stock of %d", ErrStockExceeded, newQty, b.StockQuantity())
	}

	if idx >= 0 {
		c.items[idx].Quantity = newQty
		c.items[idx].StockSnapshot = b.StockQuantity()
	} else {
		c.items = append(c.items, Item{
			BookID:        b.ID(),
			Title:         b.Title(),
			Author:        b.Author(),
			ImageURL:      b.ImageURL(),
			Price:         b.Price(),
			Quantity:      qty,
			StockSnapshot: b.StockQuantity(),
		})
	}

	c.recalculate()
	return nil
}

// Contains reports whether bookID has a line.
func (c *Cart) Contains(bookID kernel.UUID) bool {
	return c.indexOf(bookID) >= 0
}

// UpdateItem sets an absolute quantity on an existing line. live is the
// current catalogue record and may be nil when the book no longer exists.
func (c *Cart) UpdateItem(bookID kernel.UUID, qty int, live *book.Book) error {
	idx := c.indexOf(bookID)
	if idx < 0 {
		return ErrItemNotFound
	}
	if qty <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidQuantity, qty)
	}

	available := 0
	if live.Validate() == nil {
		available = live.StockQuantity()
	}
	if qty > available {
		return fmt.Errorf("%w: quantity %d exceeds stock of %d", ErrStockExceeded, qty, available)
	}

	c.items[idx].Quantity = qty
	c.items[idx].StockSnapshot = available
	c.recalculate()
	return nil
}

// RemoveItem drops the line for bookID.
func (c *Cart) RemoveItem(bookID kernel.UUID) error {
	idx := c.indexOf(bookID)
	if idx < 0 {
		return ErrItemNotFound
	}

	c.items = append(c.items[:idx], c.items[idx+1:]...)
	c.recalculate()
	return nil
}

func (c *Cart) indexOf(bookID kernel.UUID) int {
	for i := range c.items {
		if c.items[i].BookID.IsEqual(bookID) {
			return i
		}
	}
	return -1
}

func (c *Cart) recalculate() {
	qty := 0
	amount := kernel.Money{}
	for _, item := range c.items {
		qty += item.Quantity
		amount = amount.Add(item.Subtotal())
	}
	c.totalQuantity = qty
	c.totalAmount = amount
}
