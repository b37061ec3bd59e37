package orderrepo

import (
	"context"
	"errors"
	"time"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add inserts the order row, then its item rows, through one GORM create.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	statusID, err := statusID(ctx, r.db, aggregate.Status())
	if err != nil {
		return err
	}

	dto := fromDomain(aggregate, statusID)
	return r.db.WithContext(ctx).Omit("Status").Create(&dto).Error
}

func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Status").
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.id") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateStatus is a compare-and-set on the status name:
//
//	UPDATE orders SET status_id = <to>, updated_at = ?
//	WHERE id = ? AND status_id = <from>
func (r *GormOrderRepository) UpdateStatus(
	ctx context.Context,
	id kernel.UUID,
	from, to order.Status,
	at time.Time,
) (bool, error) {
	fromID, err := statusID(ctx, r.db, from)
	if err != nil {
		return false, err
	}
	toID, err := statusID(ctx, r.db, to)
	if err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status_id = ?", id.Bytes(), fromID).
		UpdateColumns(map[string]any{"status_id": toID, "updated_at": at})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}
