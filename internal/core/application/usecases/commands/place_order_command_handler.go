package commands

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"bookstore/internal/core/domain/model/actionlog"
	"bookstore/internal/core/domain/model/book"
	"bookstore/internal/core/domain/model/cart"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/core/domain/services"
	"bookstore/internal/core/ports"
	"bookstore/internal/pkg/errs"
)

// PlaceOrderResult identifies the new order. GuestToken is set only for guest
// orders and may be empty if it could not be minted.
type PlaceOrderResult struct {
	OrderID    kernel.UUID
	GuestToken string
}

// PlaceOrderCommandHandler converts a cart into a committed order.
//
// The pipeline:
//  1. reject an empty cart
//  2. check live stock for every line, reporting the first short one
//  3. resolve the initial status in the catalogue
//  4. in one transaction: conditionally decrement stock per line, insert the
//     order with its items, commit
//  5. after commit: notify customer and admin, write the audit entry
//
// Nothing is written unless step 4 commits. Step 5 never fails the call.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, tokens, dispatcher, recorder, logger)
//	result, err := handler.Handle(ctx, cmd)
//	var short *book.InsufficientStockError
//	switch {
//	case errors.As(err, &short):
//	    fmt.Printf("only %d of %q left", short.Available, short.Title)
//	case errors.Is(err, errs.ErrPersistence):
//	    // storage failed; nothing was written
//	}
type PlaceOrderCommandHandler struct {
	uowFactory PlacementUoWFactory
	validator  services.StockValidator
	tokens     ports.GuestTokenIssuer
	notifier   OrderNotifier
	recorder   ActionRecorder
	logger     *slog.Logger
	now        func() time.Time
}

func NewPlaceOrderCommandHandler(
	uowFactory PlacementUoWFactory,
	tokens ports.GuestTokenIssuer,
	notifier OrderNotifier,
	recorder ActionRecorder,
	logger *slog.Logger,
) *PlaceOrderCommandHandler {
	return &PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		validator:  services.NewStockValidator(),
		tokens:     tokens,
		notifier:   notifier,
		recorder:   recorder,
		logger:     logger.With("component", "place_order"),
		now:        time.Now,
	}
}

// Handle runs the placement pipeline. Errors are InsufficientStock,
// ErrEmptyCart, ErrStatusNotFound, validation errors, or an errs.PersistenceError
// hiding the storage cause.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (PlaceOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return PlaceOrderResult{}, err
	}
	if cmd.Cart().IsEmpty() {
		return PlaceOrderResult{}, ErrEmptyCart
	}

	lines := stockLines(cmd.Cart())
	uow := h.uowFactory.Create()

	if err := h.validator.Validate(ctx, lines, uow.BookRepository()); err != nil {
		return PlaceOrderResult{}, h.classify(ctx, "validate stock", err)
	}

	if err := uow.StatusCatalog().Resolve(ctx, order.Pending); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return PlaceOrderResult{}, fmt.Errorf("%w: %w", order.ErrStatusNotFound, err)
		}
		return PlaceOrderResult{}, h.classify(ctx, "resolve status", err)
	}

	o, err := order.NewOrder(
		kernel.NewUUID(),
		cmd.UserID(),
		cmd.Contact(),
		cmd.ShippingAddress(),
		orderItems(cmd.Cart()),
		cmd.Cart().TotalAmount(),
		h.now().UTC(),
	)
	if err != nil {
		return PlaceOrderResult{}, err
	}

	if err = uow.Begin(ctx); err != nil {
		return PlaceOrderResult{}, h.classify(ctx, "begin transaction", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	bookRepo := uow.BookRepository()
	for _, line := range lockOrder(lines) {
		if _, err = bookRepo.DecrementStock(ctx, line.BookID, line.Quantity); err != nil {
			return PlaceOrderResult{}, h.classify(ctx, "decrement stock", err)
		}
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return PlaceOrderResult{}, h.classify(ctx, "insert order", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return PlaceOrderResult{}, h.classify(ctx, "commit", err)
	}

	h.logger.InfoContext(ctx, "order placed",
		"order_id", o.ID().String(), "total", o.TotalAmount().String(), "items", len(lines))

	result := PlaceOrderResult{OrderID: o.ID()}
	if o.UserID() == nil {
		result.GuestToken = h.issueGuestToken(ctx, o.ID())
	}

	runAfterCommit(ctx,
		func(ctx context.Context) { h.notifier.OrderPlaced(ctx, o) },
		func(ctx context.Context) {
			h.recorder.Record(ctx, o.UserID(), actionlog.OrderPlaced, map[string]any{
				"order_id":     o.ID().String(),
				"total_amount": o.TotalAmount().String(),
				"item_count":   len(lines),
			})
		},
	)

	return result, nil
}

func (h *PlaceOrderCommandHandler) issueGuestToken(ctx context.Context, orderID kernel.UUID) string {
	token, err := h.tokens.Issue(orderID)
	if err != nil {
		h.logger.WarnContext(ctx, "guest token not issued", "order_id", orderID.String(), "error", err)
		return ""
	}
	return token
}

// classify passes stock shortfalls through and hides every other failure
// behind an opaque persistence error. The cause is logged here.
func (h *PlaceOrderCommandHandler) classify(ctx context.Context, op string, err error) error {
	var short *book.InsufficientStockError
	if errors.As(err, &short) {
		return short
	}

	h.logger.ErrorContext(ctx, "order placement failed", "op", op, "error", err)
	return errs.NewPersistenceError(op, err)
}

func stockLines(c *cart.Cart) []services.StockLine {
	items := c.Items()
	lines := make([]services.StockLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, services.StockLine{
			BookID:   item.BookID,
			Title:    item.Title,
			Quantity: item.Quantity,
		})
	}
	return lines
}

func orderItems(c *cart.Cart) []order.Item {
	items := c.Items()
	out := make([]order.Item, 0, len(items))
	for _, item := range items {
		out = append(out, order.Item{
			BookID:          item.BookID,
			Title:           item.Title,
			Quantity:        item.Quantity,
			PriceAtPurchase: item.Price,
		})
	}
	return out
}

// lockOrder sorts lines by book id so that concurrent placements take row
// locks in the same order.
func lockOrder(lines []services.StockLine) []services.StockLine {
	sorted := slices.Clone(lines)
	slices.SortFunc(sorted, func(a, b services.StockLine) int {
		ab, bb := a.BookID.Bytes(), b.BookID.Bytes()
		return bytes.Compare(ab[:], bb[:])
	})
	return sorted
}
