package order_test

import (
	"testing"
	"time"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	validContact = order.Contact{Name: "Ada", Email: "ada@example.com", Phone: "+254700000000"}
	now          = time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
)

func validItems() []order.Item {
	return []order.Item{
		{BookID: kernel.NewUUID(), Title: "A", Quantity: 2, PriceAtPurchase: kernel.MustMoney("500")},
		{BookID: kernel.NewUUID(), Title: "B", Quantity: 1, PriceAtPurchase: kernel.MustMoney("1200")},
	}
}

func TestNewOrder(t *testing.T) {
	t.Run("should create a pending order", func(t *testing.T) {
		id := kernel.NewUUID()

		o, err := order.NewOrder(id, nil, validContact, "12 Baker St", validItems(), kernel.MustMoney("2200"), now)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.Nil(t, o.UserID())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, "2200.00", o.TotalAmount().String())
		assert.Len(t, o.Items(), 2)
		assert.Equal(t, now, o.CreatedAt())
	})

	t.Run("should keep the owning user", func(t *testing.T) {
		userID := kernel.NewUUID()

		o, err := order.NewOrder(kernel.NewUUID(), &userID, validContact, "addr", validItems(), kernel.MustMoney("2200"), now)

		require.NoError(t, err)
		assert.True(t, o.IsOwnedBy(userID))
		assert.False(t, o.IsOwnedBy(kernel.NewUUID()))
	})

	t.Run("should require at least one item", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), nil, validContact, "addr", nil, kernel.Money{}, now)

		require.ErrorIs(t, err, order.ErrOrderHasNoItems)
	})

	t.Run("should reject a total that does not match the items", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), nil, validContact, "addr", validItems(), kernel.MustMoney("2000"), now)

		require.ErrorIs(t, err, order.ErrTotalMismatch)
	})

	t.Run("should join contact and address problems", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), nil, order.Contact{Email: "not-an-email"}, " ", validItems(), kernel.MustMoney("2200"), now)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "value is required: name")
		assert.Contains(t, err.Error(), "value is invalid: email")
		assert.Contains(t, err.Error(), "value is required: shipping address")
	})

	t.Run("should reject non-positive item quantity", func(t *testing.T) {
		items := []order.Item{{BookID: kernel.NewUUID(), Quantity: 0, PriceAtPurchase: kernel.MustMoney("1")}}

		_, err := order.NewOrder(kernel.NewUUID(), nil, validContact, "addr", items, kernel.Money{}, now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_ItemsAreCopied(t *testing.T) {
	items := validItems()
	o, err := order.NewOrder(kernel.NewUUID(), nil, validContact, "addr", items, kernel.MustMoney("2200"), now)
	require.NoError(t, err)

	items[0].PriceAtPurchase = kernel.MustMoney("9999")
	got := o.Items()
	got[1].Quantity = 100

	assert.True(t, o.Items()[0].PriceAtPurchase.IsEqual(kernel.MustMoney("500")))
	assert.Equal(t, 1, o.Items()[1].Quantity)
}

func TestOrder_ChangeStatus(t *testing.T) {
	later := now.Add(time.Hour)

	t.Run("should move forward and stamp updatedAt", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), nil, validContact, "addr", validItems(), kernel.MustMoney("2200"), now)

		changed, err := o.ChangeStatus(order.Processing, later)

		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, order.Processing, o.Status())
		assert.Equal(t, later, o.UpdatedAt())
	})

	t.Run("should be a no-op for the current status", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), nil, validContact, "addr", validItems(), kernel.MustMoney("2200"), now)

		changed, err := o.ChangeStatus(order.Pending, later)

		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, now, o.UpdatedAt())
	})

	t.Run("should reach any status from any other", func(t *testing.T) {
		for _, from := range order.AllStatuses() {
			for _, to := range order.AllStatuses() {
				if from == to {
					continue
				}
				o, err := order.RestoreOrder(kernel.NewUUID(), nil, validContact, "addr", validItems(),
					kernel.MustMoney("2200"), from, now, now)
				require.NoError(t, err)

				changed, err := o.ChangeStatus(to, later)

				require.NoError(t, err, "%s -> %s", from, to)
				assert.True(t, changed, "%s -> %s", from, to)
				assert.Equal(t, to, o.Status())
			}
		}
	})

	t.Run("should reject an unknown status", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), nil, validContact, "addr", validItems(), kernel.MustMoney("2200"), now)

		_, err := o.ChangeStatus(order.Status("lost"), later)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Equal(t, order.Pending, o.Status())
	})
}

func TestRestoreOrder(t *testing.T) {
	created := now
	updated := now.Add(2 * time.Hour)

	o, err := order.RestoreOrder(kernel.NewUUID(), nil, validContact, "addr", validItems(), kernel.MustMoney("2200"), order.Shipped, created, updated)

	require.NoError(t, err)
	assert.Equal(t, order.Shipped, o.Status())
	assert.Equal(t, updated, o.UpdatedAt())

	_, err = order.RestoreOrder(kernel.NewUUID(), nil, validContact, "addr", validItems(), kernel.MustMoney("2200"), order.Status("lost"), created, updated)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
