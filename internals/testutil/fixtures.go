package testutil

import (
	"fmt"
	"time"

	qt "github.com/frankban/quicktest"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	apptModel "alisto_backend/internals/features/services/appointments/model"
	csModel "alisto_backend/internals/features/services/city_services/model"
	authService "alisto_backend/internals/features/users/auth/service"
	uModel "alisto_backend/internals/features/users/user/model"
)

// CreateUser inserts an active user with a unique email.
func CreateUser(c *qt.C, db *gorm.DB) *uModel.UserModel {
	c.Helper()
	u := &uModel.UserModel{
		Email:       fmt.Sprintf("citizen-%s@example.com", uuid.NewString()[:8]),
		FirstName:   "Juan",
		LastName:    "Dela Cruz",
		PhoneNumber: "09171234567",
		Address:     "Purok 1, Poblacion",
		IsActive:    true,
	}
	c.Assert(db.Create(u).Error, qt.IsNil)
	return u
}

// TokenFor opens a session for u and returns its access token.
func TokenFor(c *qt.C, db *gorm.DB, u *uModel.UserModel) string {
	c.Helper()
	s, err := authService.CreateSession(db, Config().Auth, u.ID, nil, nil, time.Now().UTC())
	c.Assert(err, qt.IsNil)
	return s.AccessToken
}

// CreateService inserts a category with one service.
func CreateService(c *qt.C, db *gorm.DB, name string, active bool) *csModel.CityServiceModel {
	c.Helper()
	cat := &csModel.ServiceCategoryModel{
		Name:        name + " Office",
		Description: "Test category",
		IconName:    "building",
		IsActive:    true,
	}
	c.Assert(db.Create(cat).Error, qt.IsNil)

	svc := &csModel.CityServiceModel{
		CategoryID:     cat.ID,
		Name:           name,
		Description:    "Test service",
		Fee:            150,
		ProcessingTime: "1-2 days",
		RequiredDocs:   datatypes.JSON(`["Valid ID"]`),
		IsActive:       active,
		OfficeLocation: "City Hall",
		OperatingHours: "8:00 AM - 5:00 PM",
	}
	c.Assert(db.Create(svc).Error, qt.IsNil)
	return svc
}

// CreateAppointment inserts an appointment directly, bypassing the API.
func CreateAppointment(c *qt.C, db *gorm.DB, u *uModel.UserModel, svc *csModel.CityServiceModel, status apptModel.AppointmentStatus) *apptModel.AppointmentModel {
	c.Helper()
	a := &apptModel.AppointmentModel{
		UserID:                 u.ID,
		ServiceID:              svc.ID,
		ReferenceNumber:        "APT" + uuid.NewString()[:12],
		AppointmentDate:        time.Now().UTC().AddDate(0, 0, 3),
		AppointmentTime:        "9:00 AM",
		Status:                 status,
		TotalFee:               svc.Fee,
		PaymentStatus:          apptModel.PaymentPending,
		ApplicantFirstName:     u.FirstName,
		ApplicantLastName:      u.LastName,
		ApplicantContactNumber: u.PhoneNumber,
		ApplicantAddress:       u.Address,
	}
	a.CreatedAt = time.Now().UTC()
	if status == apptModel.StatusCompleted {
		done := a.CreatedAt.Add(time.Hour)
		a.CompletedAt = &done
	}
	c.Assert(db.Create(a).Error, qt.IsNil)
	return a
}
