package commands

import (
	"errors"
	"fmt"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/pkg/guard"
)

var ErrTransitionOrderStatusCommandIsNotConstructed = errors.New(
	"TransitionOrderStatusCommand must be created via NewTransitionOrderStatusCommand constructor",
)

// TransitionOrderStatusCommand moves an order to a named status on behalf of
// an admin.
type TransitionOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  order.Status
	actorID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewTransitionOrderStatusCommand resolves statusName; an unknown name is
// order.ErrStatusNotFound. actorID may be nil for system-initiated changes.
func NewTransitionOrderStatusCommand(
	orderID kernel.UUID,
	statusName string,
	actorID *kernel.UUID,
) (TransitionOrderStatusCommand, error) {
	cmd := TransitionOrderStatusCommand{
		actorID: actorID,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setID(&cmd.orderID, orderID),
		cmd.setTarget(statusName),
	); err != nil {
		return TransitionOrderStatusCommand{}, err
	}

	return cmd, nil
}

func (c TransitionOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderStatusCommandIsNotConstructed)
}

func (c TransitionOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c TransitionOrderStatusCommand) Target() order.Status {
	return c.target
}

func (c TransitionOrderStatusCommand) ActorID() *kernel.UUID {
	return c.actorID
}

func (c *TransitionOrderStatusCommand) setTarget(name string) error {
	status, err := order.ParseStatus(name)
	if err != nil {
		return fmt.Errorf("%w: %w", order.ErrStatusNotFound, err)
	}

	c.target = status
	return nil
}
