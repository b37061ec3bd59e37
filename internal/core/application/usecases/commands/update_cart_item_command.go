package commands

import (
	"errors"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/guard"
)

var ErrUpdateCartItemCommandIsNotConstructed = errors.New(
	"UpdateCartItemCommand must be created via NewUpdateCartItemCommand constructor",
)

// UpdateCartItemCommand sets an absolute quantity on an existing cart line.
type UpdateCartItemCommand struct { //nolint:recvcheck //using for validation
	sessionID string
	bookID    kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

func NewUpdateCartItemCommand(sessionID string, bookID kernel.UUID, quantity int) (UpdateCartItemCommand, error) {
	cmd := UpdateCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setSessionID(&cmd.sessionID, sessionID),
		setID(&cmd.bookID, bookID),
		setQuantity(&cmd.quantity, quantity),
	); err != nil {
		return UpdateCartItemCommand{}, err
	}

	return cmd, nil
}

func (c UpdateCartItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCartItemCommandIsNotConstructed)
}

func (c UpdateCartItemCommand) SessionID() string {
	return c.sessionID
}

func (c UpdateCartItemCommand) BookID() kernel.UUID {
	return c.bookID
}

func (c UpdateCartItemCommand) Quantity() int {
	return c.quantity
}
