package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	infoModel "alisto_backend/internals/features/information/model"
	helper "alisto_backend/internals/helpers"
	"alisto_backend/internals/helpers/dbtime"
)

// AuditEntry describes one state change. Old and New are marshalled to JSON.
type AuditEntry struct {
	UserID     *uuid.UUID
	Action     string
	EntityType string
	EntityID   string
	Old        any
	New        any
	IPAddress  string
	UserAgent  string
}

// RecordAudit writes an audit_logs row with db, which is normally the
// transaction that performed the change.
func RecordAudit(db *gorm.DB, e AuditEntry) error {
	row := infoModel.AuditLogModel{
		UserID:     e.UserID,
		Action:     e.Action,
		EntityType: e.EntityType,
		EntityID:   e.EntityID,
		OldValues:  helper.JSONValue(e.Old),
		NewValues:  helper.JSONValue(e.New),
		IPAddress:  optional(e.IPAddress, 45),
		UserAgent:  optional(e.UserAgent, 500),
		Timestamp:  dbtime.NowUTC(),
	}
	return db.Create(&row).Error
}

// AuditTrail lists the rows of one entity, oldest first.
func AuditTrail(db *gorm.DB, entityType, entityID string) ([]infoModel.AuditLogModel, error) {
	var rows []infoModel.AuditLogModel
	err := db.Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Order("timestamp ASC").
		Find(&rows).Error
	return rows, err
}

func optional(s string, max int) *string {
	if s == "" {
		return nil
	}
	s = helper.TruncateRunes(s, max)
	return &s
}
