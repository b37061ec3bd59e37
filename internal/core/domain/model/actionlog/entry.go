// Package actionlog defines the append-only audit entries recorded for
// domain events.
package actionlog

import (
	"time"

	"bookstore/internal/core/domain/model/kernel"
)

// ActionType tags the kind of event an Entry records.
type ActionType string

const (
	OrderPlaced        ActionType = "ORDER_PLACED"
	OrderStatusUpdated ActionType = "ORDER_STATUS_UPDATED"
)

// Entry is one audit record. ActorID is nil for guests and the system.
type Entry struct {
	ActorID    *kernel.UUID
	ActionType ActionType
	Details    map[string]any
	OccurredAt time.Time
}
