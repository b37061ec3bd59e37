package order

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned for an Order not built by NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	ErrOrderHasNoItems = errs.NewValueIsRequiredError("order items")
	ErrTotalMismatch   = errors.New("total amount does not match order items")

	ErrOrderNotFound  = errors.New("order not found")
	ErrStatusNotFound = errors.New("order status not found")
)

// Contact is how the customer is reached. It is captured for every order,
// registered or guest.
type Contact struct {
	Name  string
	Email string
	Phone string
}

// Validate requires a name and a well-formed email. Phone is optional.
func (c Contact) Validate() error {
	var problems []error
	if strings.TrimSpace(c.Name) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("name"))
	}
	if strings.TrimSpace(c.Email) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("email"))
	} else if _, err := mail.ParseAddress(c.Email); err != nil {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("email", err))
	}
	return errors.Join(problems...)
}

// Item is a purchased line. PriceAtPurchase is frozen at checkout.
type Item struct {
	BookID          kernel.UUID
	Title           string
	Quantity        int
	PriceAtPurchase kernel.Money
}

// Subtotal is PriceAtPurchase × Quantity.
func (i Item) Subtotal() kernel.Money {
	return i.PriceAtPurchase.Times(i.Quantity)
}

func (i Item) validate() error {
	if err := i.BookID.Validate(); err != nil {
		return err
	}
	if i.Quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", i.Quantity))
	}
	return nil
}

// Order is the durable record of a checkout.
type Order struct {
	id              kernel.UUID
	userID          *kernel.UUID
	contact         Contact
	shippingAddress string
	items           []Item
	totalAmount     kernel.Money
	status          Status
	createdAt       time.Time
	updatedAt       time.Time

	isConstructed bool
}

// NewOrder builds a Pending order. totalAmount must equal the sum of the item
// subtotals; it is stored as given and never recalculated afterwards.
// userID is nil for guest checkout.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), nil, contact, "12 Baker St", items, c.TotalAmount(), time.Now())
func NewOrder(
	id kernel.UUID,
	userID *kernel.UUID,
	contact Contact,
	shippingAddress string,
	items []Item,
	totalAmount kernel.Money,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setContact(contact),
		o.setShippingAddress(shippingAddress),
		o.setItems(items, totalAmount),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from storage, including its current status.
func RestoreOrder(
	id kernel.UUID,
	userID *kernel.UUID,
	contact Contact,
	shippingAddress string,
	items []Item,
	totalAmount kernel.Money,
	status Status,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	o, err := NewOrder(id, userID, contact, shippingAddress, items, totalAmount, createdAt)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	o.status = status
	o.updatedAt = updatedAt
	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID is nil for guest orders.
func (o *Order) UserID() *kernel.UUID {
	return o.userID
}

func (o *Order) Contact() Contact {
	return o.contact
}

func (o *Order) ShippingAddress() string {
	return o.shippingAddress
}

// Items returns a copy of the purchased lines.
func (o *Order) Items() []Item {
	out := make([]Item, len(o.items))
	copy(out, o.items)
	return out
}

func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// IsOwnedBy reports whether userID placed the order.
func (o *Order) IsOwnedBy(userID kernel.UUID) bool {
	return o.userID != nil && o.userID.IsEqual(userID)
}

// ChangeStatus moves the order to any known target. It returns false without
// touching the order when target equals the current status.
func (o *Order) ChangeStatus(target Status, now time.Time) (bool, error) {
	if err := target.Validate(); err != nil {
		return false, err
	}
	if o.status == target {
		return false, nil
	}

	o.status = target
	o.updatedAt = now
	return true, nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID *kernel.UUID) error {
	if userID == nil {
		return nil
	}
	if err := userID.Validate(); err != nil {
		return err
	}
	id := *userID
	o.userID = &id
	return nil
}

func (o *Order) setContact(contact Contact) error {
	if err := contact.Validate(); err != nil {
		return err
	}
	o.contact = contact
	return nil
}

func (o *Order) setShippingAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return errs.NewValueIsRequiredError("shipping address")
	}
	o.shippingAddress = address
	return nil
}

func (o *Order) setItems(items []Item, totalAmount kernel.Money) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}

	sum := kernel.Money{}
	for _, item := range items {
		if err := item.validate(); err != nil {
			return err
		}
		sum = sum.Add(item.Subtotal())
	}
	if !sum.IsEqual(totalAmount) {
		return fmt.Errorf("%w: items sum to %s, total is %s", ErrTotalMismatch, sum, totalAmount)
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	o.totalAmount = totalAmount
	return nil
}
