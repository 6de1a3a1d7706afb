package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	apptModel "alisto_backend/internals/features/services/appointments/model"
	srService "alisto_backend/internals/features/services/service_requests/service"
	helper "alisto_backend/internals/helpers"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// AppointmentFields are the editable parts of an appointment.
type AppointmentFields struct {
	AppointmentDate        time.Time      `json:"appointmentDate" validate:"required"`
	AppointmentTime        string         `json:"appointmentTime" validate:"required,max=20"`
	Notes                  *string        `json:"notes"`
	ApplicantFirstName     string         `json:"applicantFirstName" validate:"required,max=100"`
	ApplicantLastName      string         `json:"applicantLastName" validate:"required,max=100"`
	ApplicantMiddleName    *string        `json:"applicantMiddleName" validate:"omitempty,max=100"`
	ApplicantContactNumber string         `json:"applicantContactNumber" validate:"required,phone"`
	ApplicantEmail         *string        `json:"applicantEmail" validate:"omitempty,email,max=255"`
	ApplicantAddress       string         `json:"applicantAddress" validate:"required,max=500"`
	ServiceSpecificData    map[string]any `json:"serviceSpecificData"`
}

func (f *AppointmentFields) Normalize() {
	f.AppointmentTime = strings.TrimSpace(f.AppointmentTime)
	f.ApplicantFirstName = strings.TrimSpace(f.ApplicantFirstName)
	f.ApplicantLastName = strings.TrimSpace(f.ApplicantLastName)
	f.ApplicantContactNumber = strings.TrimSpace(f.ApplicantContactNumber)
	f.ApplicantAddress = strings.TrimSpace(f.ApplicantAddress)
	f.ApplicantMiddleName = trimPtr(f.ApplicantMiddleName)
	f.ApplicantEmail = trimPtr(f.ApplicantEmail)
	f.Notes = trimPtr(f.Notes)
}

// ApplyTo replaces the editable fields; absent service data becomes {}.
func (f *AppointmentFields) ApplyTo(m *apptModel.AppointmentModel) {
	m.AppointmentDate = f.AppointmentDate.UTC()
	m.AppointmentTime = f.AppointmentTime
	m.Notes = f.Notes
	m.ApplicantFirstName = f.ApplicantFirstName
	m.ApplicantLastName = f.ApplicantLastName
	m.ApplicantMiddleName = f.ApplicantMiddleName
	m.ApplicantContactNumber = f.ApplicantContactNumber
	m.ApplicantEmail = f.ApplicantEmail
	m.ApplicantAddress = f.ApplicantAddress
	m.ServiceSpecificData = helper.JSONObject(f.ServiceSpecificData)
}

type CreateAppointmentRequest struct {
	UserID    uuid.UUID `json:"userId" validate:"required"`
	ServiceID int       `json:"serviceId" validate:"required,min=1"`
	AppointmentFields
}

// UpdateAppointmentRequest is a full replacement of the editable fields.
type UpdateAppointmentRequest struct {
	AppointmentFields
}

type UpdateAppointmentStatusRequest struct {
	Status apptModel.AppointmentStatus `json:"status" validate:"required,enum"`
	Notes  *string                     `json:"notes"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus apptModel.PaymentStatus `json:"paymentStatus" validate:"required,enum"`
}

type CancelAppointmentRequest struct {
	Reason *string `json:"reason" validate:"omitempty,max=500"`
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type AppointmentDTO struct {
	ID                     uuid.UUID                   `json:"id"`
	UserID                 uuid.UUID                   `json:"userId"`
	ServiceID              int                         `json:"serviceId"`
	ReferenceNumber        string                      `json:"referenceNumber"`
	AppointmentDate        time.Time                   `json:"appointmentDate"`
	AppointmentTime        string                      `json:"appointmentTime"`
	Status                 apptModel.AppointmentStatus `json:"status"`
	TotalFee               float64                     `json:"totalFee"`
	PaymentStatus          apptModel.PaymentStatus     `json:"paymentStatus"`
	ServiceName            string                      `json:"serviceName"`
	ServiceCategory        string                      `json:"serviceCategory"`
	ApplicantFirstName     string                      `json:"applicantFirstName"`
	ApplicantLastName      string                      `json:"applicantLastName"`
	ApplicantContactNumber string                      `json:"applicantContactNumber"`
	CreatedAt              time.Time                   `json:"createdAt"`
	CompletedAt            *time.Time                  `json:"completedAt"`
}

// AppointmentDetailDTO is the single-appointment view with every stored field.
type AppointmentDetailDTO struct {
	AppointmentDTO
	Notes               *string            `json:"notes"`
	ApplicantMiddleName *string            `json:"applicantMiddleName"`
	ApplicantEmail      *string            `json:"applicantEmail"`
	ApplicantAddress    string             `json:"applicantAddress"`
	ServiceSpecificData map[string]any     `json:"serviceSpecificData"`
	UpdatedAt           time.Time          `json:"updatedAt"`
	CancelledAt         *time.Time         `json:"cancelledAt"`
	CancellationReason  *string            `json:"cancellationReason"`
	ServiceRequest      *srService.Details `json:"serviceRequest"`
}

func ToAppointmentDTO(m *apptModel.AppointmentModel) AppointmentDTO {
	d := AppointmentDTO{
		ID:                     m.ID,
		UserID:                 m.UserID,
		ServiceID:              m.ServiceID,
		ReferenceNumber:        m.ReferenceNumber,
		AppointmentDate:        m.AppointmentDate,
		AppointmentTime:        m.AppointmentTime,
		Status:                 m.Status,
		TotalFee:               m.TotalFee,
		PaymentStatus:          m.PaymentStatus,
		ApplicantFirstName:     m.ApplicantFirstName,
		ApplicantLastName:      m.ApplicantLastName,
		ApplicantContactNumber: m.ApplicantContactNumber,
		CreatedAt:              m.CreatedAt,
		CompletedAt:            m.CompletedAt,
	}
	if m.Service != nil {
		d.ServiceName = m.Service.Name
		if m.Service.Category != nil {
			d.ServiceCategory = m.Service.Category.Name
		}
	}
	return d
}

func ToAppointmentDTOs(rows []apptModel.AppointmentModel) []AppointmentDTO {
	out := make([]AppointmentDTO, 0, len(rows))
	for i := range rows {
		out = append(out, ToAppointmentDTO(&rows[i]))
	}
	return out
}

func ToAppointmentDetailDTO(m *apptModel.AppointmentModel, details *srService.Details) AppointmentDetailDTO {
	return AppointmentDetailDTO{
		AppointmentDTO:      ToAppointmentDTO(m),
		Notes:               m.Notes,
		ApplicantMiddleName: m.ApplicantMiddleName,
		ApplicantEmail:      m.ApplicantEmail,
		ApplicantAddress:    m.ApplicantAddress,
		ServiceSpecificData: helper.ObjectFromJSON(m.ServiceSpecificData),
		UpdatedAt:           m.UpdatedAt,
		CancelledAt:         m.CancelledAt,
		CancellationReason:  m.CancellationReason,
		ServiceRequest:      details,
	}
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
