package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"bookstore/internal/core/application/usecases/queries"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(_ context.Context, _ kernel.UUID, _, _ order.Status, _ time.Time) (bool, error) {
	return false, errors.New("not implemented in mock")
}

type MockGuestTokenIssuer struct{ mock.Mock }

func (m *MockGuestTokenIssuer) Issue(orderID kernel.UUID) (string, error) {
	args := m.Called(orderID)
	return args.String(0), args.Error(1)
}

func (m *MockGuestTokenIssuer) Verify(token string) (kernel.UUID, error) {
	args := m.Called(token)
	return args.Get(0).(kernel.UUID), args.Error(1)
}

func newStoredOrder(t *testing.T, userID *kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		userID,
		order.Contact{Name: "Ann", Email: "ann@example.com"},
		"12 Baker St",
		[]order.Item{{BookID: kernel.NewUUID(), Title: "Dune", Quantity: 1, PriceAtPurchase: kernel.MustMoney("500")}},
		kernel.MustMoney("500"),
		time.Now(),
	)
	require.NoError(t, err)
	return o
}

func TestGetOrderQueryHandler_Handle(t *testing.T) {
	owner := kernel.NewUUID()
	stranger := kernel.NewUUID()

	tests := []struct {
		name    string
		owner   *kernel.UUID
		caller  func(o *order.Order, tokens *MockGuestTokenIssuer) queries.Caller
		visible bool
	}{
		{
			name:  "admin sees any order",
			owner: &owner,
			caller: func(*order.Order, *MockGuestTokenIssuer) queries.Caller {
				return queries.Caller{IsAdmin: true}
			},
			visible: true,
		},
		{
			name:  "owner sees own order",
			owner: &owner,
			caller: func(*order.Order, *MockGuestTokenIssuer) queries.Caller {
				return queries.Caller{UserID: &owner}
			},
			visible: true,
		},
		{
			name:  "another user does not",
			owner: &owner,
			caller: func(*order.Order, *MockGuestTokenIssuer) queries.Caller {
				return queries.Caller{UserID: &stranger}
			},
			visible: false,
		},
		{
			name: "guest with a token for the order",
			caller: func(o *order.Order, tokens *MockGuestTokenIssuer) queries.Caller {
				tokens.On("Verify", "good").Return(o.ID(), nil).Once()
				return queries.Caller{GuestToken: "good"}
			},
			visible: true,
		},
		{
			name: "guest with a token for another order",
			caller: func(_ *order.Order, tokens *MockGuestTokenIssuer) queries.Caller {
				tokens.On("Verify", "other").Return(kernel.NewUUID(), nil).Once()
				return queries.Caller{GuestToken: "other"}
			},
			visible: false,
		},
		{
			name: "guest with an expired token",
			caller: func(_ *order.Order, tokens *MockGuestTokenIssuer) queries.Caller {
				tokens.On("Verify", "expired").Return(kernel.UUID{}, errors.New("token is expired")).Once()
				return queries.Caller{GuestToken: "expired"}
			},
			visible: false,
		},
		{
			name: "anonymous caller",
			caller: func(*order.Order, *MockGuestTokenIssuer) queries.Caller {
				return queries.Caller{}
			},
			visible: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			o := newStoredOrder(t, tt.owner)
			repo := new(MockOrderRepository)
			tokens := new(MockGuestTokenIssuer)
			repo.On("Get", ctx, o.ID()).Return(o, nil).Once()

			query, err := queries.NewGetOrderQuery(o.ID(), tt.caller(o, tokens))
			require.NoError(t, err)

			got, err := queries.NewGetOrderQueryHandler(repo, tokens).Handle(ctx, query)

			if tt.visible {
				require.NoError(t, err)
				assert.Same(t, o, got)
			} else {
				require.ErrorIs(t, err, order.ErrOrderNotFound)
				assert.Nil(t, got)
			}
			tokens.AssertExpectations(t)
		})
	}
}

func TestGetOrderQueryHandler_Handle_Missing(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	repo := new(MockOrderRepository)
	repo.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("order", id)).Once()

	query, err := queries.NewGetOrderQuery(id, queries.Caller{IsAdmin: true})
	require.NoError(t, err)

	_, err = queries.NewGetOrderQueryHandler(repo, new(MockGuestTokenIssuer)).Handle(ctx, query)

	require.ErrorIs(t, err, order.ErrOrderNotFound)
}

func TestGetOrderQueryHandler_Handle_StorageFailureIsOpaque(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	repo := new(MockOrderRepository)
	repo.On("Get", ctx, id).Return(nil, errors.New("dial tcp: refused")).Once()

	query, err := queries.NewGetOrderQuery(id, queries.Caller{IsAdmin: true})
	require.NoError(t, err)

	_, err = queries.NewGetOrderQueryHandler(repo, new(MockGuestTokenIssuer)).Handle(ctx, query)

	require.ErrorIs(t, err, errs.ErrPersistence)
	assert.NotContains(t, err.Error(), "dial tcp")
}

func TestGetOrderQuery_NotConstructed(t *testing.T) {
	_, err := queries.NewGetOrderQueryHandler(nil, nil).Handle(t.Context(), queries.GetOrderQuery{})

	require.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)
}
