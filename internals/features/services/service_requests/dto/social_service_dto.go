package dto

import (
	"github.com/google/uuid"

	srModel "alisto_backend/internals/features/services/service_requests/model"
)

type SocialServiceFields struct {
	ServiceType    srModel.SocialServiceType `json:"serviceType" validate:"required,enum"`
	DisabilityType *string                   `json:"disabilityType" validate:"omitempty,max=100"`
	AssistanceType *string                   `json:"assistanceType" validate:"omitempty,max=100"`
	MonthlyIncome  *float64                  `json:"monthlyIncome" validate:"omitempty,gte=0"`
	FamilySize     *int                      `json:"familySize" validate:"omitempty,min=1"`
}

func (f *SocialServiceFields) ApplyTo(m *srModel.SocialServiceRequestModel) {
	m.ServiceType = f.ServiceType
	m.DisabilityType = trimPtr(f.DisabilityType)
	m.AssistanceType = trimPtr(f.AssistanceType)
	m.MonthlyIncome = f.MonthlyIncome
	m.FamilySize = f.FamilySize
}

type CreateSocialServiceRequest struct {
	AppointmentID uuid.UUID `json:"appointmentId" validate:"required"`
	SocialServiceFields
}

func (r *CreateSocialServiceRequest) ToModel() *srModel.SocialServiceRequestModel {
	m := &srModel.SocialServiceRequestModel{AppointmentID: r.AppointmentID}
	r.ApplyTo(m)
	return m
}

type SocialServiceRequestDTO struct {
	OwnerDTO
	SocialServiceFields
}

func ToSocialServiceDTO(m *srModel.SocialServiceRequestModel) SocialServiceRequestDTO {
	return SocialServiceRequestDTO{
		OwnerDTO: ownerOf(m.AppointmentID, m.Appointment, m.CreatedAt, m.UpdatedAt),
		SocialServiceFields: SocialServiceFields{
			ServiceType:    m.ServiceType,
			DisabilityType: m.DisabilityType,
			AssistanceType: m.AssistanceType,
			MonthlyIncome:  m.MonthlyIncome,
			FamilySize:     m.FamilySize,
		},
	}
}
