package bookrepo

import (
	"context"
	"errors"

	"bookstore/internal/core/domain/model/book"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// checkViolation is the SQLSTATE for a failed CHECK constraint.
const checkViolation = "23514"

type GormBookRepository struct {
	db *gorm.DB
}

func NewGormBookRepository(db *gorm.DB) *GormBookRepository {
	return &GormBookRepository{db: db}
}

// Add inserts a catalogue record. The order core never calls it; it exists
// for seeding.
func (r *GormBookRepository) Add(ctx context.Context, b *book.Book) error {
	if err := b.Validate(); err != nil {
		return err
	}

	dto := FromDomain(b)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormBookRepository) Get(ctx context.Context, id kernel.UUID) (*book.Book, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BookDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("book", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// DecrementStock runs
//
//	UPDATE books SET stock_quantity = stock_quantity - qty
//	WHERE id = ? AND is_active AND stock_quantity >= qty
//	RETURNING stock_quantity
//
// The row lock taken by the update serialises concurrent buyers of the same
// book; the loser re-evaluates the WHERE clause against the committed stock.
func (r *GormBookRepository) DecrementStock(ctx context.Context, id kernel.UUID, qty int) (int, error) {
	if err := id.Validate(); err != nil {
		return 0, err
	}

	var updated BookDTO
	result := r.db.WithContext(ctx).
		Model(&updated).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "stock_quantity"}}}).
		Where("id = ? AND is_active AND stock_quantity >= ?", id.Bytes(), qty).
		UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", qty))
	if result.Error != nil {
		var pqErr *pq.Error
		if errors.As(result.Error, &pqErr) && string(pqErr.Code) == checkViolation {
			// The transaction is aborted at this point, so the row cannot be re-read.
			return 0, book.NewInsufficientStockError(id, "", 0, qty)
		}
		return 0, result.Error
	}

	if result.RowsAffected == 0 {
		return 0, r.shortfall(ctx, id, qty)
	}

	return updated.StockQuantity, nil
}

// shortfall builds the InsufficientStock error from the current row.
func (r *GormBookRepository) shortfall(ctx context.Context, id kernel.UUID, qty int) error {
	var dto BookDTO
	err := r.db.WithContext(ctx).Select("id", "title", "stock_quantity", "is_active").
		First(&dto, "id = ?", id.Bytes()).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return book.NewInsufficientStockError(id, "", 0, qty)
	case err != nil:
		return err
	case !dto.IsActive:
		return book.NewInsufficientStockError(id, dto.Title, 0, qty)
	default:
		return book.NewInsufficientStockError(id, dto.Title, dto.StockQuantity, qty)
	}
}
