package orderrepo

import (
	"context"
	"errors"

	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStatusCatalog checks status names against the seeded order_statuses table.
type GormStatusCatalog struct {
	db *gorm.DB
}

func NewGormStatusCatalog(db *gorm.DB) *GormStatusCatalog {
	return &GormStatusCatalog{db: db}
}

func (c *GormStatusCatalog) Resolve(ctx context.Context, status order.Status) error {
	_, err := statusID(ctx, c.db, status)
	return err
}

func statusID(ctx context.Context, db *gorm.DB, status order.Status) (int16, error) {
	var dto StatusDTO
	if err := db.WithContext(ctx).First(&dto, "name = ?", status.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, errs.NewObjectNotFoundError("status", status.String())
		}
		return 0, err
	}
	return dto.ID, nil
}
