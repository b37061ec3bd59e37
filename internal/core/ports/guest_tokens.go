package ports

import "bookstore/internal/core/domain/model/kernel"

// GuestTokenIssuer mints and checks the short-lived credential that lets a
// guest read the order they just placed.
type GuestTokenIssuer interface {
	Issue(orderID kernel.UUID) (string, error)
	// Verify returns the order id the token was issued for.
	Verify(token string) (kernel.UUID, error)
}
