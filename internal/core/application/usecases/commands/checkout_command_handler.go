package commands

import (
	"context"
	"log/slog"

	"bookstore/internal/core/domain/model/cart"
	"bookstore/internal/core/ports"
)

// OrderPlacer is satisfied by PlaceOrderCommandHandler.
type OrderPlacer interface {
	Handle(ctx context.Context, cmd PlaceOrderCommand) (PlaceOrderResult, error)
}

// CheckoutCommandHandler places an order from the session cart. The cart is
// claimed before placement, so two concurrent checkouts of one session place
// at most one order; the other sees an empty cart.
type CheckoutCommandHandler struct {
	carts  ports.CartStore
	placer OrderPlacer
	logger *slog.Logger
}

func NewCheckoutCommandHandler(carts ports.CartStore, placer OrderPlacer, logger *slog.Logger) *CheckoutCommandHandler {
	return &CheckoutCommandHandler{
		carts:  carts,
		placer: placer,
		logger: logger.With("component", "checkout"),
	}
}

// Handle puts a claimed cart back when placement fails. A cart that cannot be
// put back is only logged; the placement error is returned either way.
func (h *CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) (PlaceOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return PlaceOrderResult{}, err
	}

	c, err := h.carts.Claim(ctx, cmd.SessionID())
	if err != nil {
		return PlaceOrderResult{}, err
	}

	placeCmd, err := NewPlaceOrderCommand(c, cmd.UserID(), cmd.Contact(), cmd.ShippingAddress())
	if err != nil {
		h.restore(ctx, cmd.SessionID(), c)
		return PlaceOrderResult{}, err
	}

	result, err := h.placer.Handle(ctx, placeCmd)
	if err != nil {
		h.restore(ctx, cmd.SessionID(), c)
		return PlaceOrderResult{}, err
	}

	return result, nil
}

func (h *CheckoutCommandHandler) restore(ctx context.Context, sessionID string, c *cart.Cart) {
	if c.IsEmpty() {
		return
	}
	if err := h.carts.Save(context.WithoutCancel(ctx), sessionID, c); err != nil {
		h.logger.WarnContext(ctx, "cart not restored after failed checkout",
			"session_id", sessionID, "error", err)
	}
}
