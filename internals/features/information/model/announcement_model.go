package model

import "time"

type AnnouncementType string

const (
	AnnouncementGeneral     AnnouncementType = "General"
	AnnouncementMaintenance AnnouncementType = "Maintenance"
	AnnouncementEmergency   AnnouncementType = "Emergency"
	AnnouncementEvent       AnnouncementType = "Event"
)

var AnnouncementTypes = []AnnouncementType{
	AnnouncementGeneral, AnnouncementMaintenance, AnnouncementEmergency, AnnouncementEvent,
}

func (t AnnouncementType) Valid() bool {
	for _, v := range AnnouncementTypes {
		if v == t {
			return true
		}
	}
	return false
}

// AnnouncementModel is a banner message shown between StartDate and EndDate.
// Priority reuses the issue priority names (Low, Medium, High, Urgent).
type AnnouncementModel struct {
	ID             int              `gorm:"primaryKey;autoIncrement" json:"id"`
	Title          string           `gorm:"size:200;not null" json:"title"`
	Message        string           `gorm:"not null" json:"message"`
	Type           AnnouncementType `gorm:"size:20;not null" json:"type"`
	Priority       string           `gorm:"size:20;not null" json:"priority"`
	IsActive       bool             `gorm:"not null;index" json:"isActive"`
	StartDate      time.Time        `gorm:"not null" json:"startDate"`
	EndDate        *time.Time       `json:"endDate,omitempty"`
	TargetAudience *string          `gorm:"size:100" json:"targetAudience,omitempty"`
	CreatedBy      *string          `gorm:"size:100" json:"createdBy,omitempty"`
	CreatedAt      time.Time        `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time        `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (AnnouncementModel) TableName() string {
	return "announcements"
}
