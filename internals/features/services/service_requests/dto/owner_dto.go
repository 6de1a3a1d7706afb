package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	apptModel "alisto_backend/internals/features/services/appointments/model"
)

// OwnerDTO carries the appointment side of a specialized request.
type OwnerDTO struct {
	AppointmentID   uuid.UUID                   `json:"appointmentId"`
	ReferenceNumber string                      `json:"referenceNumber"`
	UserID          uuid.UUID                   `json:"userId"`
	UserName        string                      `json:"userName"`
	Status          apptModel.AppointmentStatus `json:"status"`
	CreatedAt       time.Time                   `json:"createdAt"`
	UpdatedAt       time.Time                   `json:"updatedAt"`
}

func ownerOf(id uuid.UUID, appt *apptModel.AppointmentModel, created, updated time.Time) OwnerDTO {
	o := OwnerDTO{AppointmentID: id, CreatedAt: created, UpdatedAt: updated}
	if appt == nil {
		return o
	}
	o.ReferenceNumber = appt.ReferenceNumber
	o.UserID = appt.UserID
	o.Status = appt.Status
	if appt.User != nil {
		o.UserName = appt.User.FullName()
	}
	return o
}

var trim = strings.TrimSpace

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := trim(*s)
	if v == "" {
		return nil
	}
	return &v
}
