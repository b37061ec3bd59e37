package queries

import (
	"errors"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"
	"bookstore/internal/pkg/guard"
)

var ErrGetLowStockBooksQueryIsNotConstructed = errors.New(
	"GetLowStockBooksQuery must be created via NewGetLowStockBooksQuery constructor",
)

// GetLowStockBooksQuery lists active books whose stock is at or below a threshold.
type GetLowStockBooksQuery struct {
	threshold int

	guard guard.ConstructorGuard
}

func NewGetLowStockBooksQuery(threshold int) (GetLowStockBooksQuery, error) {
	if threshold < 0 {
		return GetLowStockBooksQuery{}, errs.NewValueIsInvalidError("threshold")
	}
	return GetLowStockBooksQuery{threshold: threshold, guard: guard.NewConstructorGuard()}, nil
}

func (q GetLowStockBooksQuery) Validate() error {
	return q.guard.Validate(ErrGetLowStockBooksQueryIsNotConstructed)
}

func (q GetLowStockBooksQuery) Threshold() int {
	return q.threshold
}

type LowStockBook struct {
	ID    kernel.UUID
	Title string
	Stock int
}
