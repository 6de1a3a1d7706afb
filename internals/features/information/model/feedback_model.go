package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FeedbackType string

const (
	FeedbackBug        FeedbackType = "Bug"
	FeedbackSuggestion FeedbackType = "Suggestion"
	FeedbackCompliment FeedbackType = "Compliment"
	FeedbackComplaint  FeedbackType = "Complaint"
)

var FeedbackTypes = []FeedbackType{FeedbackBug, FeedbackSuggestion, FeedbackCompliment, FeedbackComplaint}

func (t FeedbackType) Valid() bool {
	for _, v := range FeedbackTypes {
		if v == t {
			return true
		}
	}
	return false
}

type FeedbackStatus string

const (
	FeedbackNew      FeedbackStatus = "New"
	FeedbackInReview FeedbackStatus = "InReview"
	FeedbackResolved FeedbackStatus = "Resolved"
	FeedbackClosed   FeedbackStatus = "Closed"
)

var FeedbackStatuses = []FeedbackStatus{FeedbackNew, FeedbackInReview, FeedbackResolved, FeedbackClosed}

func (s FeedbackStatus) Valid() bool {
	for _, v := range FeedbackStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// ServiceFeedbackModel is a citizen's rating of a completed appointment.
type ServiceFeedbackModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AppointmentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"appointmentId"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	ServiceID     int       `gorm:"not null;index" json:"serviceId"`
	Rating        int       `gorm:"not null;check:chk_service_feedbacks_rating,rating BETWEEN 1 AND 5" json:"rating"`
	Comment       *string   `json:"comment,omitempty"`
	IsAnonymous   bool      `gorm:"not null" json:"isAnonymous"`
	IsPublic      bool      `gorm:"not null" json:"isPublic"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (ServiceFeedbackModel) TableName() string {
	return "service_feedbacks"
}

func (m *ServiceFeedbackModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

type AppFeedbackModel struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       *uuid.UUID     `gorm:"type:uuid;index" json:"userId,omitempty"`
	Type         FeedbackType   `gorm:"size:20;not null" json:"type"`
	Subject      string         `gorm:"size:200;not null" json:"subject"`
	Message      string         `gorm:"not null" json:"message"`
	Rating       *int           `json:"rating,omitempty"`
	ContactEmail *string        `gorm:"size:255" json:"contactEmail,omitempty"`
	Status       FeedbackStatus `gorm:"size:20;not null;index" json:"status"`
	Response     *string        `json:"response,omitempty"`
	RespondedBy  *string        `gorm:"size:100" json:"respondedBy,omitempty"`
	RespondedAt  *time.Time     `json:"respondedAt,omitempty"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (AppFeedbackModel) TableName() string {
	return "app_feedbacks"
}

func (m *AppFeedbackModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
