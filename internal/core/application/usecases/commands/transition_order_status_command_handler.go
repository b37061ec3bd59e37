package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"bookstore/internal/core/domain/model/actionlog"
	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/core/ports"
	"bookstore/internal/pkg/errs"
)

// ErrStatusConflict means another writer moved the order to a different
// status between our read and our conditional write.
var ErrStatusConflict = errors.New("order status changed concurrently")

// TransitionResult reports what the call did. Changed is false for a no-op,
// in which case Previous equals Current.
type TransitionResult struct {
	Previous order.Status
	Current  order.Status
	Changed  bool
}

// TransitionOrderStatusCommandHandler applies an admin status change. Any
// known status may be set from any other; only the target decides whether
// the customer is notified.
//
// The write is a compare-and-set on the status the handler read, so two
// concurrent identical requests produce exactly one change, one audit entry
// and one customer notification; the loser sees a no-op.
//
// Example:
//
//	cmd, _ := NewTransitionOrderStatusCommand(orderID, "shipped", &adminID)
//	res, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, order.ErrOrderNotFound):
//	    // unknown order id
//	case err == nil && !res.Changed:
//	    // already shipped
//	}
type TransitionOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   OrderNotifier
	recorder   ActionRecorder
	logger     *slog.Logger
	now        func() time.Time
}

func NewTransitionOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	notifier OrderNotifier,
	recorder ActionRecorder,
	logger *slog.Logger,
) *TransitionOrderStatusCommandHandler {
	return &TransitionOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		recorder:   recorder,
		logger:     logger.With("component", "order_status"),
		now:        time.Now,
	}
}

func (h *TransitionOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd TransitionOrderStatusCommand,
) (TransitionResult, error) {
	if err := cmd.Validate(); err != nil {
		return TransitionResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return TransitionResult{}, h.persistence(ctx, "begin transaction", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return TransitionResult{}, h.notFoundOr(ctx, "load order", err)
	}

	previous := o.Status()
	changed, err := o.ChangeStatus(cmd.Target(), h.now().UTC())
	if err != nil {
		return TransitionResult{}, err
	}
	if !changed {
		return TransitionResult{Previous: previous, Current: previous}, nil
	}

	applied, err := orderRepo.UpdateStatus(ctx, o.ID(), previous, o.Status(), o.UpdatedAt())
	if err != nil {
		return TransitionResult{}, h.persistence(ctx, "update status", err)
	}
	if !applied {
		return h.resolveLostRace(ctx, orderRepo, cmd)
	}

	if err = uow.Commit(ctx); err != nil {
		return TransitionResult{}, h.persistence(ctx, "commit", err)
	}

	h.logger.InfoContext(ctx, "order status changed",
		"order_id", o.ID().String(), "from", previous.String(), "to", o.Status().String())

	effects := []func(context.Context){
		func(ctx context.Context) {
			h.recorder.Record(ctx, cmd.ActorID(), actionlog.OrderStatusUpdated, map[string]any{
				"order_id":   o.ID().String(),
				"old_status": previous.String(),
				"new_status": o.Status().String(),
			})
		},
	}
	if o.Status().NotifiesCustomer() {
		effects = append(effects, func(ctx context.Context) { h.notifier.StatusChanged(ctx, o) })
	}
	runAfterCommit(ctx, effects...)

	return TransitionResult{Previous: previous, Current: o.Status(), Changed: true}, nil
}

// resolveLostRace re-reads the order after a failed compare-and-set. If the
// winner already set the requested status, the request is a no-op.
func (h *TransitionOrderStatusCommandHandler) resolveLostRace(
	ctx context.Context,
	orderRepo ports.OrderRepository,
	cmd TransitionOrderStatusCommand,
) (TransitionResult, error) {
	current, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return TransitionResult{}, h.notFoundOr(ctx, "reload order", err)
	}
	if current.Status() == cmd.Target() {
		return TransitionResult{Previous: current.Status(), Current: current.Status()}, nil
	}
	return TransitionResult{}, fmt.Errorf("%w: order %s is now %s", ErrStatusConflict, cmd.OrderID(), current.Status())
}

func (h *TransitionOrderStatusCommandHandler) notFoundOr(ctx context.Context, op string, err error) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return fmt.Errorf("%w: %w", order.ErrOrderNotFound, err)
	}
	return h.persistence(ctx, op, err)
}

func (h *TransitionOrderStatusCommandHandler) persistence(ctx context.Context, op string, err error) error {
	h.logger.ErrorContext(ctx, "order status change failed", "op", op, "error", err)
	return errs.NewPersistenceError(op, err)
}
