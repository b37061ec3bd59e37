package http

import (
	"time"

	"bookstore/internal/core/application/usecases/queries"
	"bookstore/internal/core/domain/model/cart"
	"bookstore/internal/core/domain/model/order"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type StockShortage struct {
	BookID    string `json:"book_id"`
	Title     string `json:"title"`
	Available int    `json:"available"`
	Requested int    `json:"requested"`
}

type AddCartItemRequest struct {
	BookID   string `json:"book_id"`
	Quantity int    `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type CheckoutRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	ShippingAddress string `json:"shipping_address"`
}

type CheckoutResponse struct {
	OrderID    string `json:"order_id"`
	GuestToken string `json:"guest_token,omitempty"`
}

type TransitionStatusRequest struct {
	Status string `json:"status"`
}

type TransitionStatusResponse struct {
	OrderID        string `json:"order_id"`
	PreviousStatus string `json:"previous_status"`
	Status         string `json:"status"`
	Changed        bool   `json:"changed"`
}

type CartItem struct {
	BookID   string `json:"book_id"`
	Title    string `json:"title"`
	Author   string `json:"author,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
	Price    string `json:"price"`
	Quantity int    `json:"quantity"`
	Stock    int    `json:"stock"`
	Subtotal string `json:"subtotal"`
}

type Cart struct {
	Items         []CartItem `json:"items"`
	TotalQuantity int        `json:"total_quantity"`
	TotalAmount   string     `json:"total_amount"`
}

type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

type OrderItem struct {
	BookID   string `json:"book_id"`
	Title    string `json:"title"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
	Subtotal string `json:"subtotal"`
}

type Order struct {
	ID              string      `json:"id"`
	Status          string      `json:"status"`
	Customer        Customer    `json:"customer"`
	ShippingAddress string      `json:"shipping_address"`
	Items           []OrderItem `json:"items"`
	TotalAmount     string      `json:"total_amount"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

type OrderSummary struct {
	ID            string    `json:"id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	TotalAmount   string    `json:"total_amount"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

func toCart(c *cart.Cart) Cart {
	items := c.Items()
	response := Cart{
		Items:         make([]CartItem, len(items)),
		TotalQuantity: c.TotalQuantity(),
		TotalAmount:   c.TotalAmount().String(),
	}
	for i, item := range items {
		response.Items[i] = CartItem{
			BookID:   item.BookID.String(),
			Title:    item.Title,
			Author:   item.Author,
			ImageURL: item.ImageURL,
			Price:    item.Price.String(),
			Quantity: item.Quantity,
			Stock:    item.StockSnapshot,
			Subtotal: item.Subtotal().String(),
		}
	}
	return response
}

func emptyCart() Cart {
	return Cart{Items: []CartItem{}, TotalAmount: "0.00"}
}

func toOrder(o *order.Order) Order {
	items := o.Items()
	response := Order{
		ID:     o.ID().String(),
		Status: o.Status().String(),
		Customer: Customer{
			Name:  o.Contact().Name,
			Email: o.Contact().Email,
			Phone: o.Contact().Phone,
		},
		ShippingAddress: o.ShippingAddress(),
		Items:           make([]OrderItem, len(items)),
		TotalAmount:     o.TotalAmount().String(),
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
	}
	for i, item := range items {
		response.Items[i] = OrderItem{
			BookID:   item.BookID.String(),
			Title:    item.Title,
			Quantity: item.Quantity,
			Price:    item.PriceAtPurchase.String(),
			Subtotal: item.Subtotal().String(),
		}
	}
	return response
}

func toOrderSummaries(orders []queries.OrderSummary) []OrderSummary {
	response := make([]OrderSummary, len(orders))
	for i, o := range orders {
		response[i] = OrderSummary{
			ID:            o.ID.String(),
			CustomerName:  o.CustomerName,
			CustomerEmail: o.CustomerEmail,
			TotalAmount:   o.TotalAmount.String(),
			Status:        o.Status.String(),
			CreatedAt:     o.CreatedAt,
		}
	}
	return response
}
