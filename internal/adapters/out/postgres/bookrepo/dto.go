package bookrepo

import (
	"time"

	"bookstore/internal/core/domain/model/book"
	"bookstore/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Title         string          `gorm:"not null"`
	Author        string          `gorm:"not null;default:''"`
	ImageURL      string          `gorm:"column:image_url;not null;default:''"`
	Price         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	StockQuantity int             `gorm:"not null"`
	IsActive      bool            `gorm:"not null"`
	CreatedAt     time.Time
}

func (BookDTO) TableName() string {
	return "books"
}

// FromDomain maps a book for seeding in tests and admin tooling.
func FromDomain(b *book.Book) BookDTO {
	return BookDTO{
		ID:            b.ID().Bytes(),
		Title:         b.Title(),
		Author:        b.Author(),
		ImageURL:      b.ImageURL(),
		Price:         b.Price().Decimal(),
		StockQuantity: b.StockQuantity(),
		IsActive:      b.IsActive(),
	}
}

func toDomain(dto BookDTO) (*book.Book, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return book.RestoreBook(id, dto.Title, dto.Author, dto.ImageURL, price, dto.StockQuantity, dto.IsActive)
}
