package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AuditLogModel records one state change of an entity. EntityID is text so
// integer and UUID keyed entities share the table.
type AuditLogModel struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     *uuid.UUID     `gorm:"type:uuid;index" json:"userId,omitempty"`
	Action     string         `gorm:"size:100;not null" json:"action"`
	EntityType string         `gorm:"size:100;not null;index:idx_audit_logs_entity,priority:1" json:"entityType"`
	EntityID   string         `gorm:"size:100;not null;index:idx_audit_logs_entity,priority:2" json:"entityId"`
	OldValues  datatypes.JSON `json:"oldValues,omitempty"`
	NewValues  datatypes.JSON `json:"newValues,omitempty"`
	IPAddress  *string        `gorm:"size:45" json:"ipAddress,omitempty"`
	UserAgent  *string        `gorm:"size:500" json:"userAgent,omitempty"`
	Timestamp  time.Time      `gorm:"not null;index" json:"timestamp"`
}

func (AuditLogModel) TableName() string {
	return "audit_logs"
}

func (m *AuditLogModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
