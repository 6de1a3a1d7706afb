package dto

import (
	"time"

	"github.com/google/uuid"

	srModel "alisto_backend/internals/features/services/service_requests/model"
)

type CivilRegistryFields struct {
	DocumentType   srModel.CivilDocumentType `json:"documentType" validate:"required,enum"`
	Purpose        string                    `json:"purpose" validate:"required,max=100"`
	NumberOfCopies int                       `json:"numberOfCopies" validate:"omitempty,min=1,max=50"`
	RegistryNumber *string                   `json:"registryNumber" validate:"omitempty,max=50"`
	RegistryDate   *time.Time                `json:"registryDate"`
	RegistryPlace  *string                   `json:"registryPlace" validate:"omitempty,max=200"`
}

// ApplyTo replaces every request field; zero copies means one.
func (f *CivilRegistryFields) ApplyTo(m *srModel.CivilRegistryRequestModel) {
	m.DocumentType = f.DocumentType
	m.Purpose = trim(f.Purpose)
	m.NumberOfCopies = f.NumberOfCopies
	if m.NumberOfCopies < 1 {
		m.NumberOfCopies = 1
	}
	m.RegistryNumber = trimPtr(f.RegistryNumber)
	m.RegistryDate = f.RegistryDate
	m.RegistryPlace = trimPtr(f.RegistryPlace)
}

type CreateCivilRegistryRequest struct {
	AppointmentID uuid.UUID `json:"appointmentId" validate:"required"`
	CivilRegistryFields
}

func (r *CreateCivilRegistryRequest) ToModel() *srModel.CivilRegistryRequestModel {
	m := &srModel.CivilRegistryRequestModel{AppointmentID: r.AppointmentID}
	r.ApplyTo(m)
	return m
}

type CivilRegistryRequestDTO struct {
	OwnerDTO
	CivilRegistryFields
}

func ToCivilRegistryDTO(m *srModel.CivilRegistryRequestModel) CivilRegistryRequestDTO {
	return CivilRegistryRequestDTO{
		OwnerDTO: ownerOf(m.AppointmentID, m.Appointment, m.CreatedAt, m.UpdatedAt),
		CivilRegistryFields: CivilRegistryFields{
			DocumentType:   m.DocumentType,
			Purpose:        m.Purpose,
			NumberOfCopies: m.NumberOfCopies,
			RegistryNumber: m.RegistryNumber,
			RegistryDate:   m.RegistryDate,
			RegistryPlace:  m.RegistryPlace,
		},
	}
}
