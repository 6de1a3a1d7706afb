package dto

import (
	"github.com/google/uuid"

	srModel "alisto_backend/internals/features/services/service_requests/model"
)

type BusinessPermitFields struct {
	ServiceType       srModel.BusinessServiceType `json:"serviceType" validate:"required,enum"`
	BusinessName      string                      `json:"businessName" validate:"required,max=200"`
	BusinessType      string                      `json:"businessType" validate:"required,max=100"`
	BusinessAddress   string                      `json:"businessAddress" validate:"required,max=500"`
	OwnerName         string                      `json:"ownerName" validate:"required,max=100"`
	TinNumber         *string                     `json:"tinNumber" validate:"omitempty,max=20"`
	CapitalInvestment *float64                    `json:"capitalInvestment" validate:"omitempty,gte=0"`
}

func (f *BusinessPermitFields) ApplyTo(m *srModel.BusinessPermitRequestModel) {
	m.ServiceType = f.ServiceType
	m.BusinessName = trim(f.BusinessName)
	m.BusinessType = trim(f.BusinessType)
	m.BusinessAddress = trim(f.BusinessAddress)
	m.OwnerName = trim(f.OwnerName)
	m.TinNumber = trimPtr(f.TinNumber)
	m.CapitalInvestment = f.CapitalInvestment
}

type CreateBusinessPermitRequest struct {
	AppointmentID uuid.UUID `json:"appointmentId" validate:"required"`
	BusinessPermitFields
}

func (r *CreateBusinessPermitRequest) ToModel() *srModel.BusinessPermitRequestModel {
	m := &srModel.BusinessPermitRequestModel{AppointmentID: r.AppointmentID}
	r.ApplyTo(m)
	return m
}

type BusinessPermitRequestDTO struct {
	OwnerDTO
	BusinessPermitFields
}

func ToBusinessPermitDTO(m *srModel.BusinessPermitRequestModel) BusinessPermitRequestDTO {
	return BusinessPermitRequestDTO{
		OwnerDTO: ownerOf(m.AppointmentID, m.Appointment, m.CreatedAt, m.UpdatedAt),
		BusinessPermitFields: BusinessPermitFields{
			ServiceType:       m.ServiceType,
			BusinessName:      m.BusinessName,
			BusinessType:      m.BusinessType,
			BusinessAddress:   m.BusinessAddress,
			OwnerName:         m.OwnerName,
			TinNumber:         m.TinNumber,
			CapitalInvestment: m.CapitalInvestment,
		},
	}
}
