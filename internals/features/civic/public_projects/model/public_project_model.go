package model

import "time"

type ProjectStatus string

const (
	StatusPlanned   ProjectStatus = "Planned"
	StatusOngoing   ProjectStatus = "Ongoing"
	StatusOnHold    ProjectStatus = "OnHold"
	StatusCompleted ProjectStatus = "Completed"
	StatusCancelled ProjectStatus = "Cancelled"
)

var ProjectStatuses = []ProjectStatus{StatusPlanned, StatusOngoing, StatusOnHold, StatusCompleted, StatusCancelled}

var projectTransitions = map[ProjectStatus][]ProjectStatus{
	StatusPlanned: {StatusOngoing, StatusOnHold, StatusCancelled},
	StatusOngoing: {StatusOnHold, StatusCompleted, StatusCancelled},
	StatusOnHold:  {StatusOngoing, StatusCancelled},
}

func (s ProjectStatus) Valid() bool {
	for _, v := range ProjectStatuses {
		if v == s {
			return true
		}
	}
	return false
}

func (s ProjectStatus) CanTransitionTo(next ProjectStatus) bool {
	for _, v := range projectTransitions[s] {
		if v == next {
			return true
		}
	}
	return false
}

type PublicProjectModel struct {
	ID              int           `gorm:"primaryKey;autoIncrement" json:"id"`
	Title           string        `gorm:"size:200;not null" json:"title"`
	Description     *string       `json:"description,omitempty"`
	Cost            float64       `gorm:"type:decimal(15,2);not null" json:"cost"`
	Contractor      string        `gorm:"size:200;not null" json:"contractor"`
	Status          ProjectStatus `gorm:"size:20;not null;index" json:"status"`
	Progress        *int          `gorm:"check:chk_public_projects_progress,progress IS NULL OR (progress >= 0 AND progress <= 100)" json:"progress,omitempty"`
	StartDate       time.Time     `gorm:"not null;index" json:"startDate"`
	ExpectedEndDate *time.Time    `json:"expectedEndDate,omitempty"`
	ActualEndDate   *time.Time    `json:"actualEndDate,omitempty"`
	Location        *string       `gorm:"size:200" json:"location,omitempty"`
	ProjectType     string        `gorm:"size:100;not null" json:"projectType"`
	FundingSource   string        `gorm:"size:100;not null" json:"fundingSource"`
	IsPublic        bool          `gorm:"not null;index" json:"isPublic"`
	CreatedAt       time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
}

// SettleCompletion keeps a Completed project at full progress with an
// actual end date, stamping now when none was recorded.
func (m *PublicProjectModel) SettleCompletion(now time.Time) {
	if m.Status != StatusCompleted {
		return
	}
	full := 100
	m.Progress = &full
	if m.ActualEndDate == nil {
		m.ActualEndDate = &now
	}
}

func (PublicProjectModel) TableName() string {
	return "public_projects"
}
