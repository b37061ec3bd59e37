// Package services provides domain services that work across aggregates.
//
// The package includes:
//   - StockValidator: checks cart lines against live book stock before any write
package services
