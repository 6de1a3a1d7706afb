package dto

import (
	"github.com/google/uuid"

	srModel "alisto_backend/internals/features/services/service_requests/model"
)

type TaxServiceFields struct {
	ServiceType     srModel.TaxServiceType `json:"serviceType" validate:"required,enum"`
	TaxYear         int                    `json:"taxYear" validate:"required,min=1900,max=2200"`
	PropertyType    *string                `json:"propertyType" validate:"omitempty,max=100"`
	PropertyAddress *string                `json:"propertyAddress" validate:"omitempty,max=500"`
	PropertyTDN     *string                `json:"propertyTdn" validate:"omitempty,max=50"`
	BusinessName    *string                `json:"businessName" validate:"omitempty,max=200"`
	BusinessTIN     *string                `json:"businessTin" validate:"omitempty,max=20"`
	AssessedValue   *float64               `json:"assessedValue" validate:"omitempty,gte=0"`
	ExemptionType   *string                `json:"exemptionType" validate:"omitempty,max=100"`
}

func (f *TaxServiceFields) ApplyTo(m *srModel.TaxServiceRequestModel) {
	m.ServiceType = f.ServiceType
	m.TaxYear = f.TaxYear
	m.PropertyType = trimPtr(f.PropertyType)
	m.PropertyAddress = trimPtr(f.PropertyAddress)
	m.PropertyTDN = trimPtr(f.PropertyTDN)
	m.BusinessName = trimPtr(f.BusinessName)
	m.BusinessTIN = trimPtr(f.BusinessTIN)
	m.AssessedValue = f.AssessedValue
	m.ExemptionType = trimPtr(f.ExemptionType)
}

type CreateTaxServiceRequest struct {
	AppointmentID uuid.UUID `json:"appointmentId" validate:"required"`
	TaxServiceFields
}

func (r *CreateTaxServiceRequest) ToModel() *srModel.TaxServiceRequestModel {
	m := &srModel.TaxServiceRequestModel{AppointmentID: r.AppointmentID}
	r.ApplyTo(m)
	return m
}

type TaxServiceRequestDTO struct {
	OwnerDTO
	TaxServiceFields
}

func ToTaxServiceDTO(m *srModel.TaxServiceRequestModel) TaxServiceRequestDTO {
	return TaxServiceRequestDTO{
		OwnerDTO: ownerOf(m.AppointmentID, m.Appointment, m.CreatedAt, m.UpdatedAt),
		TaxServiceFields: TaxServiceFields{
			ServiceType:     m.ServiceType,
			TaxYear:         m.TaxYear,
			PropertyType:    m.PropertyType,
			PropertyAddress: m.PropertyAddress,
			PropertyTDN:     m.PropertyTDN,
			BusinessName:    m.BusinessName,
			BusinessTIN:     m.BusinessTIN,
			AssessedValue:   m.AssessedValue,
			ExemptionType:   m.ExemptionType,
		},
	}
}
