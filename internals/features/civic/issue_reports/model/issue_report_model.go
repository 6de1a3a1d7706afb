package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	uModel "alisto_backend/internals/features/users/user/model"
)

// IssueReportModel is a civic problem reported by a citizen or anonymously.
// Photos and timeline updates are deleted with it.
type IssueReportModel struct {
	ID                  uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	UserID              *uuid.UUID    `gorm:"type:uuid;index" json:"userId,omitempty"`
	ReferenceNumber     string        `gorm:"size:20;not null;uniqueIndex" json:"referenceNumber"`
	Category            IssueCategory `gorm:"size:30;not null;index" json:"category"`
	UrgencyLevel        UrgencyLevel  `gorm:"size:20;not null;index" json:"urgencyLevel"`
	Title               string        `gorm:"size:200;not null" json:"title"`
	Description         string        `gorm:"not null" json:"description"`
	Location            string        `gorm:"size:500;not null" json:"location"`
	Coordinates         *string       `gorm:"size:100" json:"coordinates,omitempty"`
	ContactInfo         *string       `gorm:"size:200" json:"contactInfo,omitempty"`
	Status              IssueStatus   `gorm:"size:20;not null;index" json:"status"`
	Priority            Priority      `gorm:"size:20;not null" json:"priority"`
	AssignedDepartment  *string       `gorm:"size:100" json:"assignedDepartment,omitempty"`
	AssignedTo          *string       `gorm:"size:100" json:"assignedTo,omitempty"`
	EstimatedResolution *time.Time    `json:"estimatedResolution,omitempty"`
	ActualResolution    *time.Time    `json:"actualResolution,omitempty"`
	ResolutionNotes     *string       `json:"resolutionNotes,omitempty"`
	IsPubliclyVisible   bool          `gorm:"not null" json:"isPubliclyVisible"`
	CreatedAt           time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt           time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`

	User    *uModel.UserModel  `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"-"`
	Photos  []IssuePhotoModel  `gorm:"foreignKey:IssueReportID;constraint:OnDelete:CASCADE" json:"photos,omitempty"`
	Updates []IssueUpdateModel `gorm:"foreignKey:IssueReportID;constraint:OnDelete:CASCADE" json:"updates,omitempty"`
}

func (IssueReportModel) TableName() string {
	return "issue_reports"
}

func (m *IssueReportModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

type IssuePhotoModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	IssueReportID uuid.UUID `gorm:"type:uuid;not null;index" json:"issueReportId"`
	FileName      string    `gorm:"size:255;not null" json:"fileName"`
	FilePath      string    `gorm:"size:500;not null" json:"filePath"`
	FileSize      int64     `gorm:"not null" json:"fileSize"`
	MimeType      string    `gorm:"size:100;not null" json:"mimeType"`
	Caption       *string   `gorm:"size:200" json:"caption,omitempty"`
	UploadedAt    time.Time `gorm:"not null" json:"uploadedAt"`
}

func (IssuePhotoModel) TableName() string {
	return "issue_photos"
}

func (m *IssuePhotoModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

type IssueUpdateModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	IssueReportID uuid.UUID       `gorm:"type:uuid;not null;index" json:"issueReportId"`
	UpdatedBy     string          `gorm:"size:100;not null" json:"updatedBy"`
	UpdateType    IssueUpdateType `gorm:"size:20;not null" json:"updateType"`
	Message       string          `gorm:"not null" json:"message"`
	IsPublic      bool            `gorm:"not null" json:"isPublic"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"createdAt"`
}

func (IssueUpdateModel) TableName() string {
	return "issue_updates"
}

func (m *IssueUpdateModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
