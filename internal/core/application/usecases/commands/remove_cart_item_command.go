package commands

import (
	"errors"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/guard"
)

var ErrRemoveCartItemCommandIsNotConstructed = errors.New(
	"RemoveCartItemCommand must be created via NewRemoveCartItemCommand constructor",
)

// RemoveCartItemCommand drops a line from the session's cart.
type RemoveCartItemCommand struct { //nolint:recvcheck //using for validation
	sessionID string
	bookID    kernel.UUID

	guard guard.ConstructorGuard
}

func NewRemoveCartItemCommand(sessionID string, bookID kernel.UUID) (RemoveCartItemCommand, error) {
	cmd := RemoveCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setSessionID(&cmd.sessionID, sessionID),
		setID(&cmd.bookID, bookID),
	); err != nil {
		return RemoveCartItemCommand{}, err
	}

	return cmd, nil
}

func (c RemoveCartItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartItemCommandIsNotConstructed)
}

func (c RemoveCartItemCommand) SessionID() string {
	return c.sessionID
}

func (c RemoveCartItemCommand) BookID() kernel.UUID {
	return c.bookID
}
