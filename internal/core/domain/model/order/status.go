package order

import "bookstore/internal/pkg/errs"

// Status is the lifecycle state of an order. Its string value is the name
// stored in the order_statuses catalogue.
//
// The usual lifecycle is pending, processing, shipped, delivered, with
// cancelled as an exit. Admins may set any known status, including moving an
// order back, so the order itself does not enforce the sequence.
type Status string

const (
	Pending    Status = "pending"
	Processing Status = "processing"
	Shipped    Status = "shipped"
	Delivered  Status = "delivered"
	Cancelled  Status = "cancelled"
)

// AllStatuses returns every status in lifecycle order.
func AllStatuses() []Status {
	return []Status{Pending, Processing, Shipped, Delivered, Cancelled}
}

// ParseStatus resolves a status name. Unknown names are reported as not found,
// mirroring a missing row in the status catalogue.
func ParseStatus(name string) (Status, error) {
	s := Status(name)
	if err := s.Validate(); err != nil {
		return "", err
	}
	return s, nil
}

// Validate rejects names outside the catalogue.
func (s Status) Validate() error {
	for _, known := range AllStatuses() {
		if s == known {
			return nil
		}
	}
	return errs.NewObjectNotFoundError("status", string(s))
}

func (s Status) String() string {
	return string(s)
}

// NotifiesCustomer reports whether landing in s triggers a customer update.
func (s Status) NotifiesCustomer() bool {
	switch s {
	case Processing, Shipped, Delivered, Cancelled:
		return true
	case Pending:
		return false
	default:
		return false
	}
}
