package dto

import (
	"github.com/google/uuid"

	srModel "alisto_backend/internals/features/services/service_requests/model"
)

type HealthServiceFields struct {
	ServiceType        srModel.HealthServiceType `json:"serviceType" validate:"required,enum"`
	CertificatePurpose *string                   `json:"certificatePurpose" validate:"omitempty,max=100"`
	AssistanceType     *string                   `json:"assistanceType" validate:"omitempty,max=100"`
	MedicalHistory     *string                   `json:"medicalHistory"`
	CurrentMedications *string                   `json:"currentMedications"`
	Allergies          *string                   `json:"allergies" validate:"omitempty,max=500"`
	Symptoms           *string                   `json:"symptoms"`
	PreferredDoctor    *string                   `json:"preferredDoctor" validate:"omitempty,max=100"`
}

func (f *HealthServiceFields) ApplyTo(m *srModel.HealthServiceRequestModel) {
	m.ServiceType = f.ServiceType
	m.CertificatePurpose = trimPtr(f.CertificatePurpose)
	m.AssistanceType = trimPtr(f.AssistanceType)
	m.MedicalHistory = trimPtr(f.MedicalHistory)
	m.CurrentMedications = trimPtr(f.CurrentMedications)
	m.Allergies = trimPtr(f.Allergies)
	m.Symptoms = trimPtr(f.Symptoms)
	m.PreferredDoctor = trimPtr(f.PreferredDoctor)
}

type CreateHealthServiceRequest struct {
	AppointmentID uuid.UUID `json:"appointmentId" validate:"required"`
	HealthServiceFields
}

func (r *CreateHealthServiceRequest) ToModel() *srModel.HealthServiceRequestModel {
	m := &srModel.HealthServiceRequestModel{AppointmentID: r.AppointmentID}
	r.ApplyTo(m)
	return m
}

type HealthServiceRequestDTO struct {
	OwnerDTO
	HealthServiceFields
}

func ToHealthServiceDTO(m *srModel.HealthServiceRequestModel) HealthServiceRequestDTO {
	return HealthServiceRequestDTO{
		OwnerDTO: ownerOf(m.AppointmentID, m.Appointment, m.CreatedAt, m.UpdatedAt),
		HealthServiceFields: HealthServiceFields{
			ServiceType:        m.ServiceType,
			CertificatePurpose: m.CertificatePurpose,
			AssistanceType:     m.AssistanceType,
			MedicalHistory:     m.MedicalHistory,
			CurrentMedications: m.CurrentMedications,
			Allergies:          m.Allergies,
			Symptoms:           m.Symptoms,
			PreferredDoctor:    m.PreferredDoctor,
		},
	}
}
