package queries

import (
	"context"
	"database/sql"
	"time"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const orderSummarySelect = `
	SELECT
		o.id,
		o.customer_name,
		o.customer_email,
		o.total_amount,
		s.name,
		o.created_at
	FROM orders o
	JOIN order_statuses s ON s.id = o.status_id
`

// ListOrdersQueryHandler reads order summaries straight from the database.
//
// Example:
//
//	handler := NewListOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, NewListOrdersQuery())
//	for _, o := range orders {
//	    fmt.Printf("%s %s %s\n", o.ID.Short(), o.Status, o.TotalAmount)
//	}
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(orderSummarySelect + `
		ORDER BY o.created_at DESC, o.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderSummaries(rows)
}

// ListUserOrdersQueryHandler returns the orders placed by one user.
type ListUserOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListUserOrdersQueryHandler(db *gorm.DB) ListUserOrdersQueryHandler {
	return ListUserOrdersQueryHandler{db: db}
}

func (h ListUserOrdersQueryHandler) Handle(ctx context.Context, query ListUserOrdersQuery) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(orderSummarySelect+`
		WHERE o.user_id = ?
		ORDER BY o.created_at DESC, o.id
	`, query.UserID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderSummaries(rows)
}

func scanOrderSummaries(rows *sql.Rows) ([]OrderSummary, error) {
	summaries := make([]OrderSummary, 0)

	for rows.Next() {
		var (
			id        uuid.UUID
			name      string
			email     string
			total     decimal.Decimal
			status    string
			createdAt time.Time
		)
		if err := rows.Scan(&id, &name, &email, &total, &status, &createdAt); err != nil {
			return nil, err
		}

		orderID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		amount, err := kernel.NewMoney(total)
		if err != nil {
			return nil, err
		}
		parsed, err := order.ParseStatus(status)
		if err != nil {
			return nil, err
		}

		summaries = append(summaries, OrderSummary{
			ID:            orderID,
			CustomerName:  name,
			CustomerEmail: email,
			TotalAmount:   amount,
			Status:        parsed,
			CreatedAt:     createdAt,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return summaries, nil
}
