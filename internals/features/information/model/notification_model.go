package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type NotificationType string

const (
	NotificationAppointment NotificationType = "Appointment"
	NotificationIssue       NotificationType = "Issue"
	NotificationNews        NotificationType = "News"
	NotificationSystem      NotificationType = "System"
)

var NotificationTypes = []NotificationType{
	NotificationAppointment, NotificationIssue, NotificationNews, NotificationSystem,
}

func (t NotificationType) Valid() bool {
	for _, v := range NotificationTypes {
		if v == t {
			return true
		}
	}
	return false
}

type NotificationModel struct {
	ID         uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID        `gorm:"type:uuid;not null;index:idx_notifications_user_read,priority:1" json:"userId"`
	Title      string           `gorm:"size:200;not null" json:"title"`
	Message    string           `gorm:"not null" json:"message"`
	Type       NotificationType `gorm:"size:20;not null" json:"type"`
	IsRead     bool             `gorm:"not null;index:idx_notifications_user_read,priority:2" json:"isRead"`
	ActionURL  *string          `gorm:"size:500" json:"actionUrl,omitempty"`
	ActionData datatypes.JSON   `json:"actionData,omitempty"`
	ExpiresAt  *time.Time       `json:"expiresAt,omitempty"`
	CreatedAt  time.Time        `gorm:"autoCreateTime" json:"createdAt"`
	ReadAt     *time.Time       `json:"readAt,omitempty"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}

func (m *NotificationModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
