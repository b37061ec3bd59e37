// Package order provides the Order aggregate created at checkout and the
// status it moves through.
//
// The package includes:
//   - Order: the aggregate root holding contact, shipping, items, and status
//   - Item: a purchased line with its price frozen at purchase time
//   - Contact: customer contact details, required for guest checkout
//   - Status: the catalogue of lifecycle states and which notify the customer
//
// Key business rules:
//   - An order has at least one item
//   - TotalAmount equals the sum of price at purchase × quantity and is never
//     recomputed from catalogue prices
//   - New orders start in Pending
//   - An admin may set any known status; landing in Pending never notifies
//     the customer, every other status does
//   - Requesting the current status again is a no-op
package order
