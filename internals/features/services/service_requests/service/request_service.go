package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apptModel "alisto_backend/internals/features/services/appointments/model"
	srModel "alisto_backend/internals/features/services/service_requests/model"
	helper "alisto_backend/internals/helpers"
)

// Details is the specialized request attached to an appointment, tagged by
// the table it came from.
type Details struct {
	Kind   srModel.RequestKind `json:"type"`
	Record srModel.Request     `json:"details"`
}

// FindOwnerKind reports which specialized table, if any, already holds a row
// for appointmentID.
func FindOwnerKind(db *gorm.DB, appointmentID uuid.UUID) (srModel.RequestKind, bool, error) {
	for _, kind := range srModel.Kinds {
		var n int64
		if err := db.Table(srModel.NewRequest(kind).TableName()).
			Where("appointment_id = ?", appointmentID).
			Count(&n).Error; err != nil {
			return "", false, err
		}
		if n > 0 {
			return kind, true, nil
		}
	}
	return "", false, nil
}

// LoadDetails returns the specialized request of an appointment, or nil when
// the appointment has none.
func LoadDetails(db *gorm.DB, appointmentID uuid.UUID) (*Details, error) {
	kind, ok, err := FindOwnerKind(db, appointmentID)
	if err != nil || !ok {
		return nil, err
	}
	rec := srModel.NewRequest(kind)
	if err := db.Where("appointment_id = ?", appointmentID).First(rec).Error; err != nil {
		return nil, err
	}
	return &Details{Kind: kind, Record: rec}, nil
}

// ErrAppointmentNotFound is returned by Attach when the owner does not exist.
var ErrAppointmentNotFound = helper.NotFound("Appointment not found")

// Attach inserts rec for its appointment inside one transaction. An
// appointment owns at most one specialized request across all tables.
func Attach(db *gorm.DB, rec srModel.Request) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var appt apptModel.AppointmentModel
		if err := tx.Select("id").First(&appt, "id = ?", rec.OwnerID()).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAppointmentNotFound
			}
			return err
		}

		kind, owned, err := FindOwnerKind(tx, rec.OwnerID())
		if err != nil {
			return err
		}
		if owned {
			return helper.Conflict(fmt.Sprintf("Appointment already has a %s request", kind.Label()))
		}

		return tx.Create(rec).Error
	})
}

// Title is the capitalized label used in messages, e.g. "Civil registry request".
func Title(kind srModel.RequestKind) string {
	l := kind.Label() + " request"
	return strings.ToUpper(l[:1]) + l[1:]
}
