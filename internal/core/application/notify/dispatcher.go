// Package notify fans domain events out to customer and admin channels.
//
// Delivery is best-effort: a failed or panicking channel is logged and
// swallowed so that it can never undo or fail the operation that triggered it.
package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/core/ports"
)

var ErrUnknownChannel = errors.New("unknown notification channel")

// Channel selects the transport a Message goes through.
type Channel string

const (
	CustomerEmail Channel = "customer_email"
	AdminAlert    Channel = "admin_alert"
)

// Message is a rendered notification. Recipient and Subject are ignored by
// the admin alert channel, which owns its own recipient.
type Message struct {
	Channel   Channel
	Recipient string
	Subject   string
	Body      string
}

// LowStockBook is one entry of a low-stock admin alert.
type LowStockBook struct {
	Title string
	Stock int
}

// Dispatcher renders notifications for order events and routes them to the
// configured channels.
//
// Example:
//
//	d := notify.NewDispatcher(emailSender, adminAlerter, logger)
//	d.OrderPlaced(ctx, o) // confirmation to the customer + alert to the admin
type Dispatcher struct {
	email  ports.EmailSender
	alerts ports.AdminAlerter
	logger *slog.Logger
}

func NewDispatcher(email ports.EmailSender, alerts ports.AdminAlerter, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		email:  email,
		alerts: alerts,
		logger: logger.With("component", "notify"),
	}
}

// OrderPlaced sends the customer confirmation and the admin alert. The two
// deliveries fail independently.
func (d *Dispatcher) OrderPlaced(ctx context.Context, o *order.Order) {
	confirmation, err := renderConfirmation(o)
	if err != nil {
		d.logger.WarnContext(ctx, "render order confirmation", "order_id", o.ID().String(), "error", err)
	} else {
		d.Send(ctx, confirmation)
	}

	d.Send(ctx, Message{Channel: AdminAlert, Body: renderAdminOrderAlert(o)})
}

// StatusChanged tells the customer the order moved to its current status.
func (d *Dispatcher) StatusChanged(ctx context.Context, o *order.Order) {
	msg, err := renderStatusUpdate(o)
	if err != nil {
		d.logger.WarnContext(ctx, "render status update", "order_id", o.ID().String(), "error", err)
		return
	}
	d.Send(ctx, msg)
}

// LowStock sends one admin alert listing the given books. Nothing is sent for
// an empty list.
func (d *Dispatcher) LowStock(ctx context.Context, books []LowStockBook) {
	if len(books) == 0 {
		return
	}
	d.Send(ctx, Message{Channel: AdminAlert, Body: renderLowStockAlert(books)})
}

// Send delivers msg through its channel. It never fails; errors and panics
// raised by the channel are logged at WARN.
func (d *Dispatcher) Send(ctx context.Context, msg Message) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.WarnContext(ctx, "notification channel panicked",
				"channel", string(msg.Channel), "panic", fmt.Sprint(r))
		}
	}()

	var err error
	switch msg.Channel {
	case CustomerEmail:
		err = d.email.SendEmail(ctx, msg.Recipient, msg.Subject, msg.Body)
	case AdminAlert:
		err = d.alerts.SendAdminAlert(ctx, msg.Body)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownChannel, msg.Channel)
	}

	if err != nil {
		d.logger.WarnContext(ctx, "notification not delivered",
			"channel", string(msg.Channel), "recipient", msg.Recipient, "error", err)
		return
	}
	d.logger.DebugContext(ctx, "notification delivered", "channel", string(msg.Channel))
}
