package ports

import (
	"context"

	"bookstore/internal/core/domain/model/actionlog"
)

// AuditSink appends action log entries. Entries are never updated or deleted.
type AuditSink interface {
	Record(ctx context.Context, entry actionlog.Entry) error
}
