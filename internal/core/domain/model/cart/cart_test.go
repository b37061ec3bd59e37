package cart_test

import (
	"testing"

	"bookstore/internal/core/domain/model/book"
	"bookstore/internal/core/domain/model/cart"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBook(t *testing.T, title, price string, stock int, active bool) *book.Book {
	t.Helper()
	b, err := book.RestoreBook(kernel.NewUUID(), title, "Author", title+".jpg", kernel.MustMoney(price), stock, active)
	require.NoError(t, err)
	return b
}

func newCart(t *testing.T) *cart.Cart {
	t.Helper()
	c, err := cart.NewCart(kernel.NewUUID())
	require.NoError(t, err)
	return c
}

// assertTotals checks the derived totals against the lines.
func assertTotals(t *testing.T, c *cart.Cart) {
	t.Helper()
	qty := 0
	amount := kernel.Money{}
	for _, item := range c.Items() {
		qty += item.Quantity
		amount = amount.Add(item.Price.Times(item.Quantity))
	}
	assert.Equal(t, qty, c.TotalQuantity())
	assert.True(t, amount.IsEqual(c.TotalAmount()), "total amount %s != %s", c.TotalAmount(), amount)
}

func TestCart_AddItem(t *testing.T) {
	t.Run("should append a new line with a price snapshot", func(t *testing.T) {
		c := newCart(t)
		a := newBook(t, "A", "500", 5, true)

		require.NoError(t, c.AddItem(a, 2))

		items := c.Items()
		require.Len(t, items, 1)
		assert.Equal(t, "A", items[0].Title)
		assert.Equal(t, 5, items[0].StockSnapshot)
		assert.True(t, items[0].Price.IsEqual(kernel.MustMoney("500")))
		assertTotals(t, c)
	})

	t.Run("should sum quantities for an existing line", func(t *testing.T) {
		c := newCart(t)
		a := newBook(t, "A", "500", 5, true)

		require.NoError(t, c.AddItem(a, 2))
		require.NoError(t, c.AddItem(a, 3))

		require.Len(t, c.Items(), 1)
		assert.Equal(t, 5, c.TotalQuantity())
		assertTotals(t, c)
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		c := newCart(t)

		err := c.AddItem(newBook(t, "A", "1", 5, true), 0)

		require.ErrorIs(t, err, cart.ErrInvalidQuantity)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.True(t, c.IsEmpty())
	})

	t.Run("should reject inactive book", func(t *testing.T) {
		c := newCart(t)

		err := c.AddItem(newBook(t, "A", "1", 5, false), 1)

		require.ErrorIs(t, err, cart.ErrBookUnavailable)
	})

	t.Run("should reject when the summed quantity exceeds stock", func(t *testing.T) {
		c := newCart(t)
		a := newBook(t, "A", "1", 3, true)
		require.NoError(t, c.AddItem(a, 2))

		err := c.AddItem(a, 2)

		require.ErrorIs(t, err, cart.ErrStockExceeded)
		assert.Equal(t, 2, c.TotalQuantity())
	})
}

func TestCart_UpdateItem(t *testing.T) {
	t.Run("should set an absolute quantity", func(t *testing.T) {
		c := newCart(t)
		a := newBook(t, "A", "500", 5, true)
		require.NoError(t, c.AddItem(a, 1))

		require.NoError(t, c.UpdateItem(a.ID(), 4, a))

		assert.Equal(t, 4, c.TotalQuantity())
		assertTotals(t, c)
	})

	t.Run("should fail for a missing line", func(t *testing.T) {
		c := newCart(t)
		a := newBook(t, "A", "500", 5, true)

		require.ErrorIs(t, c.UpdateItem(a.ID(), 1, a), cart.ErrItemNotFound)
	})

	t.Run("should fail when live stock is lower", func(t *testing.T) {
		c := newCart(t)
		a := newBook(t, "A", "500", 5, true)
		require.NoError(t, c.AddItem(a, 1))

		require.ErrorIs(t, c.UpdateItem(a.ID(), 6, a), cart.ErrStockExceeded)
	})

	t.Run("should treat a vanished book as zero stock", func(t *testing.T) {
		c := newCart(t)
		a := newBook(t, "A", "500", 5, true)
		require.NoError(t, c.AddItem(a, 1))

		require.ErrorIs(t, c.UpdateItem(a.ID(), 1, nil), cart.ErrStockExceeded)
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		c := newCart(t)
		a := newBook(t, "A", "500", 5, true)
		require.NoError(t, c.AddItem(a, 1))

		require.ErrorIs(t, c.UpdateItem(a.ID(), 0, a), cart.ErrInvalidQuantity)
	})
}

func TestCart_RemoveItem(t *testing.T) {
	c := newCart(t)
	a := newBook(t, "A", "500", 5, true)
	b := newBook(t, "B", "1200", 5, true)
	require.NoError(t, c.AddItem(a, 2))
	require.NoError(t, c.AddItem(b, 1))

	require.NoError(t, c.RemoveItem(a.ID()))

	require.Len(t, c.Items(), 1)
	assert.Equal(t, "B", c.Items()[0].Title)
	assertTotals(t, c)
	require.ErrorIs(t, c.RemoveItem(a.ID()), cart.ErrItemNotFound)
}

func TestCart_ExampleTotals(t *testing.T) {
	c := newCart(t)
	a := newBook(t, "A", "500", 5, true)
	b := newBook(t, "B", "1200", 1, true)

	require.NoError(t, c.AddItem(a, 2))
	require.NoError(t, c.AddItem(b, 1))

	assert.Equal(t, 3, c.TotalQuantity())
	assert.True(t, c.TotalAmount().IsEqual(kernel.MustMoney("2200")))
}

func TestRestoreCart(t *testing.T) {
	id := kernel.NewUUID()

	t.Run("should recompute totals from lines", func(t *testing.T) {
		c, err := cart.RestoreCart(id, []cart.Item{
			{BookID: kernel.NewUUID(), Title: "A", Price: kernel.MustMoney("10"), Quantity: 3},
			{BookID: kernel.NewUUID(), Title: "B", Price: kernel.MustMoney("2.5"), Quantity: 2},
		})

		require.NoError(t, err)
		assert.Equal(t, 5, c.TotalQuantity())
		assert.Equal(t, "35.00", c.TotalAmount().String())
		assert.True(t, c.ID().IsEqual(id))
	})

	t.Run("should merge lines for the same book", func(t *testing.T) {
		bookID := kernel.NewUUID()

		c, err := cart.RestoreCart(id, []cart.Item{
			{BookID: bookID, Title: "A", Price: kernel.MustMoney("10"), Quantity: 1},
			{BookID: kernel.NewUUID(), Title: "B", Price: kernel.MustMoney("2.5"), Quantity: 2},
			{BookID: bookID, Title: "A", Price: kernel.MustMoney("10"), Quantity: 3},
		})

		require.NoError(t, err)
		items := c.Items()
		require.Len(t, items, 2)
		assert.True(t, items[0].BookID.IsEqual(bookID))
		assert.Equal(t, 4, items[0].Quantity)
		assert.Equal(t, "B", items[1].Title)
		assert.Equal(t, 6, c.TotalQuantity())
		assert.Equal(t, "45.00", c.TotalAmount().String())
		assert.True(t, c.Contains(bookID))
	})

	t.Run("should reject corrupted lines", func(t *testing.T) {
		_, err := cart.RestoreCart(id, []cart.Item{{BookID: kernel.NewUUID(), Quantity: 0}})

		require.ErrorIs(t, err, cart.ErrInvalidQuantity)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var c cart.Cart

		assert.Equal(t, cart.ErrCartIsNotConstructed, c.Validate())
	})
}
