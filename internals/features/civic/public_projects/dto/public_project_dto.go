package dto

import (
	"strings"
	"time"

	ppModel "alisto_backend/internals/features/civic/public_projects/model"
)

type PublicProjectRequest struct {
	Title           string                `json:"title" validate:"required,max=200"`
	Description     *string               `json:"description"`
	Cost            float64               `json:"cost" validate:"gte=0"`
	Contractor      string                `json:"contractor" validate:"required,max=200"`
	Status          ppModel.ProjectStatus `json:"status" validate:"omitempty,enum"`
	Progress        *int                  `json:"progress" validate:"omitempty,min=0,max=100"`
	StartDate       time.Time             `json:"startDate" validate:"required"`
	ExpectedEndDate *time.Time            `json:"expectedEndDate"`
	Location        *string               `json:"location" validate:"omitempty,max=200"`
	ProjectType     string                `json:"projectType" validate:"required,max=100"`
	FundingSource   string                `json:"fundingSource" validate:"required,max=100"`
	IsPublic        *bool                 `json:"isPublic"`
}

func (r *PublicProjectRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Contractor = strings.TrimSpace(r.Contractor)
	r.ProjectType = strings.TrimSpace(r.ProjectType)
	r.FundingSource = strings.TrimSpace(r.FundingSource)
	r.Description = trimPtr(r.Description)
	r.Location = trimPtr(r.Location)
}

// ApplyTo replaces the descriptive fields. Status only moves through the status endpoint.
func (r *PublicProjectRequest) ApplyTo(m *ppModel.PublicProjectModel) {
	m.Title = r.Title
	m.Description = r.Description
	m.Cost = r.Cost
	m.Contractor = r.Contractor
	m.Progress = r.Progress
	m.StartDate = r.StartDate.UTC()
	m.ExpectedEndDate = utcPtr(r.ExpectedEndDate)
	m.Location = r.Location
	m.ProjectType = r.ProjectType
	m.FundingSource = r.FundingSource
	if r.IsPublic != nil {
		m.IsPublic = *r.IsPublic
	}
}

// ToModel starts a project as Planned unless an initial status is given.
func (r *PublicProjectRequest) ToModel() *ppModel.PublicProjectModel {
	m := &ppModel.PublicProjectModel{Status: ppModel.StatusPlanned, IsPublic: true}
	if r.Status != "" {
		m.Status = r.Status
	}
	r.ApplyTo(m)
	return m
}

type UpdateProjectStatusRequest struct {
	Status   ppModel.ProjectStatus `json:"status" validate:"required,enum"`
	Progress *int                  `json:"progress" validate:"omitempty,min=0,max=100"`
}

type PublicProjectDTO struct {
	ID              int                   `json:"id"`
	Title           string                `json:"title"`
	Description     *string               `json:"description"`
	Cost            float64               `json:"cost"`
	Contractor      string                `json:"contractor"`
	Status          ppModel.ProjectStatus `json:"status"`
	Progress        *int                  `json:"progress"`
	StartDate       time.Time             `json:"startDate"`
	ExpectedEndDate *time.Time            `json:"expectedEndDate"`
	ActualEndDate   *time.Time            `json:"actualEndDate"`
	Location        *string               `json:"location"`
	ProjectType     string                `json:"projectType"`
	FundingSource   string                `json:"fundingSource"`
	IsPublic        bool                  `json:"isPublic"`
	CreatedAt       time.Time             `json:"createdAt"`
	UpdatedAt       time.Time             `json:"updatedAt"`
}

func ToPublicProjectDTO(m *ppModel.PublicProjectModel) PublicProjectDTO {
	return PublicProjectDTO{
		ID:              m.ID,
		Title:           m.Title,
		Description:     m.Description,
		Cost:            m.Cost,
		Contractor:      m.Contractor,
		Status:          m.Status,
		Progress:        m.Progress,
		StartDate:       m.StartDate,
		ExpectedEndDate: m.ExpectedEndDate,
		ActualEndDate:   m.ActualEndDate,
		Location:        m.Location,
		ProjectType:     m.ProjectType,
		FundingSource:   m.FundingSource,
		IsPublic:        m.IsPublic,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func ToPublicProjectDTOs(rows []ppModel.PublicProjectModel) []PublicProjectDTO {
	out := make([]PublicProjectDTO, 0, len(rows))
	for i := range rows {
		out = append(out, ToPublicProjectDTO(&rows[i]))
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

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
