package commands

import (
	"errors"
	"fmt"

	"bookstore/internal/core/domain/model/cart"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"
	"bookstore/internal/pkg/guard"
)

var ErrAddCartItemCommandIsNotConstructed = errors.New(
	"AddCartItemCommand must be created via NewAddCartItemCommand constructor",
)

// AddCartItemCommand adds units of a book to the session's cart.
type AddCartItemCommand struct { //nolint:recvcheck //using for validation
	sessionID string
	bookID    kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

func NewAddCartItemCommand(sessionID string, bookID kernel.UUID, quantity int) (AddCartItemCommand, error) {
	cmd := AddCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setSessionID(&cmd.sessionID, sessionID),
		setID(&cmd.bookID, bookID),
		setQuantity(&cmd.quantity, quantity),
	); err != nil {
		return AddCartItemCommand{}, err
	}

	return cmd, nil
}

func (c AddCartItemCommand) Validate() error {
	return c.guard.Validate(ErrAddCartItemCommandIsNotConstructed)
}

func (c AddCartItemCommand) SessionID() string {
	return c.sessionID
}

func (c AddCartItemCommand) BookID() kernel.UUID {
	return c.bookID
}

func (c AddCartItemCommand) Quantity() int {
	return c.quantity
}

func setSessionID(dst *string, sessionID string) error {
	if sessionID == "" {
		return errs.NewValueIsRequiredError("session id")
	}
	*dst = sessionID
	return nil
}

func setID(dst *kernel.UUID, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	*dst = id
	return nil
}

func setQuantity(dst *int, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: got %d", cart.ErrInvalidQuantity, quantity)
	}
	*dst = quantity
	return nil
}
