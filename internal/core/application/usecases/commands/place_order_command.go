package commands

import (
	"errors"
	"strings"

	"bookstore/internal/core/domain/model/cart"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/pkg/errs"
	"bookstore/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrEmptyCart = errs.NewValueIsRequiredError("cart items")
)

// PlaceOrderCommand turns a cart into an order.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(c, nil, order.Contact{Name: "Ann", Email: "ann@example.com"}, "12 Baker St")
//	if errors.Is(err, ErrEmptyCart) {
//	    return // nothing to buy
//	}
//	result, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	cart            *cart.Cart
	userID          *kernel.UUID
	contact         order.Contact
	shippingAddress string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand validates the checkout input. userID is nil for a guest.
// An empty cart yields ErrEmptyCart.
func NewPlaceOrderCommand(
	c *cart.Cart,
	userID *kernel.UUID,
	contact order.Contact,
	shippingAddress string,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCart(c),
		cmd.setUserID(userID),
		cmd.setContact(contact),
		cmd.setShippingAddress(shippingAddress),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) Cart() *cart.Cart {
	return c.cart
}

// UserID is nil for guest checkout.
func (c PlaceOrderCommand) UserID() *kernel.UUID {
	return c.userID
}

func (c PlaceOrderCommand) Contact() order.Contact {
	return c.contact
}

func (c PlaceOrderCommand) ShippingAddress() string {
	return c.shippingAddress
}

func (c *PlaceOrderCommand) setCart(crt *cart.Cart) error {
	if err := crt.Validate(); err != nil {
		return err
	}
	if crt.IsEmpty() {
		return ErrEmptyCart
	}

	c.cart = crt
	return nil
}

func (c *PlaceOrderCommand) setUserID(userID *kernel.UUID) error {
	if userID == nil {
		return nil
	}
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *PlaceOrderCommand) setContact(contact order.Contact) error {
	contact.Name = strings.TrimSpace(contact.Name)
	contact.Email = strings.TrimSpace(contact.Email)
	contact.Phone = strings.TrimSpace(contact.Phone)
	if err := contact.Validate(); err != nil {
		return err
	}

	c.contact = contact
	return nil
}

func (c *PlaceOrderCommand) setShippingAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("shipping address")
	}

	c.shippingAddress = address
	return nil
}
