package orderrepo

import (
	"time"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID          *uuid.UUID `gorm:"type:uuid;index"`
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	ShippingAddress string
	TotalAmount     decimal.Decimal `gorm:"type:numeric(12,2)"`
	StatusID        int16
	Status          StatusDTO      `gorm:"foreignKey:StatusID"`
	Items           []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (OrderDTO) TableName() string {
	return "orders"
}

type OrderItemDTO struct {
	ID              int64     `gorm:"primaryKey"`
	OrderID         uuid.UUID `gorm:"type:uuid;index"`
	BookID          uuid.UUID `gorm:"type:uuid"`
	Title           string
	Quantity        int
	PriceAtPurchase decimal.Decimal `gorm:"type:numeric(12,2)"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

type StatusDTO struct {
	ID   int16 `gorm:"primaryKey"`
	Name string
}

func (StatusDTO) TableName() string {
	return "order_statuses"
}

func fromDomain(o *order.Order, statusID int16) OrderDTO {
	var userID *uuid.UUID
	if id := o.UserID(); id != nil {
		raw := id.Bytes()
		userID = &raw
	}

	items := o.Items()
	itemDTOs := make([]OrderItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, OrderItemDTO{
			OrderID:         o.ID().Bytes(),
			BookID:          item.BookID.Bytes(),
			Title:           item.Title,
			Quantity:        item.Quantity,
			PriceAtPurchase: item.PriceAtPurchase.Decimal(),
		})
	}

	contact := o.Contact()
	return OrderDTO{
		ID:              o.ID().Bytes(),
		UserID:          userID,
		CustomerName:    contact.Name,
		CustomerEmail:   contact.Email,
		CustomerPhone:   contact.Phone,
		ShippingAddress: o.ShippingAddress(),
		TotalAmount:     o.TotalAmount().Decimal(),
		StatusID:        statusID,
		Items:           itemDTOs,
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var userID *kernel.UUID
	if dto.UserID != nil {
		uID, userErr := kernel.UUIDFromBytes((*dto.UserID)[:])
		if userErr != nil {
			return nil, userErr
		}

		userID = &uID
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	total, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status.Name)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		userID,
		order.Contact{Name: dto.CustomerName, Email: dto.CustomerEmail, Phone: dto.CustomerPhone},
		dto.ShippingAddress,
		items,
		total,
		status,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

func itemToDomain(dto OrderItemDTO) (order.Item, error) {
	bookID, err := kernel.UUIDFromBytes(dto.BookID[:])
	if err != nil {
		return order.Item{}, err
	}

	price, err := kernel.NewMoney(dto.PriceAtPurchase)
	if err != nil {
		return order.Item{}, err
	}

	return order.Item{
		BookID:          bookID,
		Title:           dto.Title,
		Quantity:        dto.Quantity,
		PriceAtPurchase: price,
	}, nil
}
