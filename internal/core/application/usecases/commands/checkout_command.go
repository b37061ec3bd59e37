package commands

import (
	"errors"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/pkg/guard"
)

var ErrCheckoutCommandIsNotConstructed = errors.New(
	"CheckoutCommand must be created via NewCheckoutCommand constructor",
)

// CheckoutCommand places an order from the cart stored for a session.
// Contact and address are validated when the order command is built.
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	sessionID       string
	userID          *kernel.UUID
	contact         order.Contact
	shippingAddress string

	guard guard.ConstructorGuard
}

func NewCheckoutCommand(
	sessionID string,
	userID *kernel.UUID,
	contact order.Contact,
	shippingAddress string,
) (CheckoutCommand, error) {
	cmd := CheckoutCommand{
		userID:          userID,
		contact:         contact,
		shippingAddress: shippingAddress,
		guard:           guard.NewConstructorGuard(),
	}

	if err := setSessionID(&cmd.sessionID, sessionID); err != nil {
		return CheckoutCommand{}, err
	}

	return cmd, nil
}

func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

func (c CheckoutCommand) SessionID() string {
	return c.sessionID
}

func (c CheckoutCommand) UserID() *kernel.UUID {
	return c.userID
}

func (c CheckoutCommand) Contact() order.Contact {
	return c.contact
}

func (c CheckoutCommand) ShippingAddress() string {
	return c.shippingAddress
}
