package auditrepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"bookstore/internal/core/domain/model/actionlog"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActionLogDTO keeps Details as text; lib/pq would send a []byte as bytea.
type ActionLogDTO struct {
	ID         int64      `gorm:"primaryKey"`
	UserID     *uuid.UUID `gorm:"type:uuid"`
	ActionType string
	Details    string `gorm:"type:jsonb"`
	CreatedAt  time.Time
}

func (ActionLogDTO) TableName() string {
	return "action_logs"
}

// GormAuditSink appends action log rows. It runs outside any business
// transaction so that a failed insert cannot roll back the order it describes.
type GormAuditSink struct {
	db *gorm.DB
}

func NewGormAuditSink(db *gorm.DB) *GormAuditSink {
	return &GormAuditSink{db: db}
}

func (s *GormAuditSink) Record(ctx context.Context, entry actionlog.Entry) error {
	details := entry.Details
	if details == nil {
		details = map[string]any{}
	}
	raw, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("marshal action details: %w", err)
	}

	var userID *uuid.UUID
	if entry.ActorID != nil {
		id := entry.ActorID.Bytes()
		userID = &id
	}

	dto := ActionLogDTO{
		UserID:     userID,
		ActionType: string(entry.ActionType),
		Details:    string(raw),
		CreatedAt:  entry.OccurredAt,
	}
	return s.db.WithContext(ctx).Create(&dto).Error
}
