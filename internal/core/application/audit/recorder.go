// Package audit appends domain events to the action log without ever failing
// the operation that produced them.
package audit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"bookstore/internal/core/domain/model/actionlog"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/ports"
)

// Recorder writes action log entries through an AuditSink. A failed write is
// logged at WARN and dropped.
type Recorder struct {
	sink   ports.AuditSink
	logger *slog.Logger
	now    func() time.Time
}

func NewRecorder(sink ports.AuditSink, logger *slog.Logger) *Recorder {
	return &Recorder{
		sink:   sink,
		logger: logger.With("component", "audit"),
		now:    time.Now,
	}
}

// Record appends one entry. actor is nil for guests and the system.
func (r *Recorder) Record(ctx context.Context, actor *kernel.UUID, action actionlog.ActionType, details map[string]any) {
	defer func() {
		if p := recover(); p != nil {
			r.logger.WarnContext(ctx, "audit sink panicked", "action", string(action), "panic", fmt.Sprint(p))
		}
	}()

	entry := actionlog.Entry{
		ActorID:    actor,
		ActionType: action,
		Details:    details,
		OccurredAt: r.now().UTC(),
	}
	if err := r.sink.Record(ctx, entry); err != nil {
		r.logger.WarnContext(ctx, "action log entry dropped", "action", string(action), "error", err)
	}
}
