package queries

import (
	"context"

	"bookstore/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLowStockBooksQueryHandler feeds the low-stock admin alert.
type GetLowStockBooksQueryHandler struct {
	db *gorm.DB
}

func NewGetLowStockBooksQueryHandler(db *gorm.DB) GetLowStockBooksQueryHandler {
	return GetLowStockBooksQueryHandler{db: db}
}

// Handle returns the books ordered by stock ascending, then title.
func (h GetLowStockBooksQueryHandler) Handle(ctx context.Context, query GetLowStockBooksQuery) ([]LowStockBook, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	books := make([]LowStockBook, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			title,
			stock_quantity
		FROM books
		WHERE is_active AND stock_quantity <= ?
		ORDER BY stock_quantity, title
	`, query.Threshold()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id    uuid.UUID
			title string
			stock int
		)
		if err = rows.Scan(&id, &title, &stock); err != nil {
			return nil, err
		}

		bookID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		books = append(books, LowStockBook{ID: bookID, Title: title, Stock: stock})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return books, nil
}
