// Package kernel provides the value objects shared by the bookstore domain model.
//
// The package includes:
//   - UUID: identifier for books, orders, and users, wrapping github.com/google/uuid
//   - Money: non-negative monetary amount backed by github.com/shopspring/decimal
//
// Both are immutable. Their zero values are either invalid (UUID) or a valid
// zero amount (Money), and both are safe for concurrent use.
package kernel
