package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	irModel "alisto_backend/internals/features/civic/issue_reports/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// CreateIssueReportRequest is the reporter's submission. A nil
// IsPubliclyVisible means visible.
type CreateIssueReportRequest struct {
	UserID            *uuid.UUID            `json:"userId"`
	Category          irModel.IssueCategory `json:"category" validate:"required,enum"`
	UrgencyLevel      irModel.UrgencyLevel  `json:"urgencyLevel" validate:"required,enum"`
	Title             string                `json:"title" validate:"required,max=200"`
	Description       string                `json:"description" validate:"required"`
	Location          string                `json:"location" validate:"required,max=500"`
	Coordinates       *string               `json:"coordinates" validate:"omitempty,max=100"`
	ContactInfo       *string               `json:"contactInfo" validate:"omitempty,max=200"`
	IsPubliclyVisible *bool                 `json:"isPubliclyVisible"`
}

func (r *CreateIssueReportRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.Location = strings.TrimSpace(r.Location)
	r.Coordinates = trimPtr(r.Coordinates)
	r.ContactInfo = trimPtr(r.ContactInfo)
}

func (r *CreateIssueReportRequest) ToModel(ref string) *irModel.IssueReportModel {
	visible := true
	if r.IsPubliclyVisible != nil {
		visible = *r.IsPubliclyVisible
	}
	return &irModel.IssueReportModel{
		UserID:            r.UserID,
		ReferenceNumber:   ref,
		Category:          r.Category,
		UrgencyLevel:      r.UrgencyLevel,
		Title:             r.Title,
		Description:       r.Description,
		Location:          r.Location,
		Coordinates:       r.Coordinates,
		ContactInfo:       r.ContactInfo,
		Status:            irModel.StatusSubmitted,
		Priority:          r.UrgencyLevel.Priority(),
		IsPubliclyVisible: visible,
	}
}

// UpdateIssueReportRequest replaces the reporter-editable fields.
type UpdateIssueReportRequest struct {
	Category          irModel.IssueCategory `json:"category" validate:"required,enum"`
	UrgencyLevel      irModel.UrgencyLevel  `json:"urgencyLevel" validate:"required,enum"`
	Title             string                `json:"title" validate:"required,max=200"`
	Description       string                `json:"description" validate:"required"`
	Location          string                `json:"location" validate:"required,max=500"`
	Coordinates       *string               `json:"coordinates" validate:"omitempty,max=100"`
	ContactInfo       *string               `json:"contactInfo" validate:"omitempty,max=200"`
	IsPubliclyVisible bool                  `json:"isPubliclyVisible"`
}

func (r *UpdateIssueReportRequest) ApplyTo(m *irModel.IssueReportModel) {
	m.Category = r.Category
	m.UrgencyLevel = r.UrgencyLevel
	m.Title = strings.TrimSpace(r.Title)
	m.Description = strings.TrimSpace(r.Description)
	m.Location = strings.TrimSpace(r.Location)
	m.Coordinates = trimPtr(r.Coordinates)
	m.ContactInfo = trimPtr(r.ContactInfo)
	m.IsPubliclyVisible = r.IsPubliclyVisible
}

type UpdateIssueStatusRequest struct {
	Status              irModel.IssueStatus `json:"status" validate:"required,enum"`
	AssignedDepartment  *string             `json:"assignedDepartment" validate:"omitempty,max=100"`
	AssignedTo          *string             `json:"assignedTo" validate:"omitempty,max=100"`
	EstimatedResolution *time.Time          `json:"estimatedResolution"`
	ResolutionNotes     *string             `json:"resolutionNotes"`
	UpdatedBy           string              `json:"updatedBy" validate:"omitempty,max=100"`
}

type CreateIssueUpdateRequest struct {
	UpdatedBy  string                  `json:"updatedBy" validate:"required,max=100"`
	UpdateType irModel.IssueUpdateType `json:"updateType" validate:"required,enum"`
	Message    string                  `json:"message" validate:"required"`
	IsPublic   *bool                   `json:"isPublic"`
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type IssuePhotoDTO struct {
	ID         uuid.UUID `json:"id"`
	FileName   string    `json:"fileName"`
	FilePath   string    `json:"filePath"`
	FileSize   int64     `json:"fileSize"`
	MimeType   string    `json:"mimeType"`
	Caption    *string   `json:"caption"`
	UploadedAt time.Time `json:"uploadedAt"`
}

type IssueUpdateDTO struct {
	ID         uuid.UUID               `json:"id"`
	UpdatedBy  string                  `json:"updatedBy"`
	UpdateType irModel.IssueUpdateType `json:"updateType"`
	Message    string                  `json:"message"`
	IsPublic   bool                    `json:"isPublic"`
	CreatedAt  time.Time               `json:"createdAt"`
}

type IssueReportDTO struct {
	ID                  uuid.UUID             `json:"id"`
	UserID              *uuid.UUID            `json:"userId"`
	ReferenceNumber     string                `json:"referenceNumber"`
	Category            irModel.IssueCategory `json:"category"`
	UrgencyLevel        irModel.UrgencyLevel  `json:"urgencyLevel"`
	Title               string                `json:"title"`
	Description         string                `json:"description"`
	Location            string                `json:"location"`
	Coordinates         *string               `json:"coordinates"`
	Status              irModel.IssueStatus   `json:"status"`
	Priority            irModel.Priority      `json:"priority"`
	AssignedDepartment  *string               `json:"assignedDepartment"`
	EstimatedResolution *time.Time            `json:"estimatedResolution"`
	ActualResolution    *time.Time            `json:"actualResolution"`
	ResolutionNotes     *string               `json:"resolutionNotes"`
	IsPubliclyVisible   bool                  `json:"isPubliclyVisible"`
	CreatedAt           time.Time             `json:"createdAt"`
	UpdatedAt           time.Time             `json:"updatedAt"`
	Photos              []IssuePhotoDTO       `json:"photos"`
	Updates             []IssueUpdateDTO      `json:"updates,omitempty"`
}

func ToIssuePhotoDTO(p *irModel.IssuePhotoModel) IssuePhotoDTO {
	return IssuePhotoDTO{
		ID:         p.ID,
		FileName:   p.FileName,
		FilePath:   p.FilePath,
		FileSize:   p.FileSize,
		MimeType:   p.MimeType,
		Caption:    p.Caption,
		UploadedAt: p.UploadedAt,
	}
}

func ToIssueUpdateDTO(u *irModel.IssueUpdateModel) IssueUpdateDTO {
	return IssueUpdateDTO{
		ID:         u.ID,
		UpdatedBy:  u.UpdatedBy,
		UpdateType: u.UpdateType,
		Message:    u.Message,
		IsPublic:   u.IsPublic,
		CreatedAt:  u.CreatedAt,
	}
}

// ToIssueReportDTO maps the report with whatever photos and updates were loaded.
func ToIssueReportDTO(m *irModel.IssueReportModel) IssueReportDTO {
	d := IssueReportDTO{
		ID:                  m.ID,
		UserID:              m.UserID,
		ReferenceNumber:     m.ReferenceNumber,
		Category:            m.Category,
		UrgencyLevel:        m.UrgencyLevel,
		Title:               m.Title,
		Description:         m.Description,
		Location:            m.Location,
		Coordinates:         m.Coordinates,
		Status:              m.Status,
		Priority:            m.Priority,
		AssignedDepartment:  m.AssignedDepartment,
		EstimatedResolution: m.EstimatedResolution,
		ActualResolution:    m.ActualResolution,
		ResolutionNotes:     m.ResolutionNotes,
		IsPubliclyVisible:   m.IsPubliclyVisible,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
		Photos:              make([]IssuePhotoDTO, 0, len(m.Photos)),
	}
	for i := range m.Photos {
		d.Photos = append(d.Photos, ToIssuePhotoDTO(&m.Photos[i]))
	}
	for i := range m.Updates {
		d.Updates = append(d.Updates, ToIssueUpdateDTO(&m.Updates[i]))
	}
	return d
}

func ToIssueReportDTOs(rows []irModel.IssueReportModel) []IssueReportDTO {
	out := make([]IssueReportDTO, 0, len(rows))
	for i := range rows {
		out = append(out, ToIssueReportDTO(&rows[i]))
	}
	return out
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
