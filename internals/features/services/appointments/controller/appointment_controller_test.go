package controller_test

import (
	"net/http"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	infoModel "alisto_backend/internals/features/information/model"
	apptDTO "alisto_backend/internals/features/services/appointments/dto"
	apptModel "alisto_backend/internals/features/services/appointments/model"
	csModel "alisto_backend/internals/features/services/city_services/model"
	uModel "alisto_backend/internals/features/users/user/model"
	helper "alisto_backend/internals/helpers"
	"alisto_backend/internals/testutil"
)

func appointmentBody(u *uModel.UserModel, svc *csModel.CityServiceModel) map[string]any {
	return map[string]any{
		"userId":                 u.ID,
		"serviceId":              svc.ID,
		"appointmentDate":        time.Now().UTC().AddDate(0, 0, 7).Format(time.RFC3339),
		"appointmentTime":        "10:00 AM",
		"applicantFirstName":     "Juan",
		"applicantLastName":      "Dela Cruz",
		"applicantContactNumber": "09171234567",
		"applicantAddress":       "Purok 1",
		"serviceSpecificData":    map[string]any{"copies": 2},
	}
}

func TestCreateAppointment(t *testing.T) {
	c := qt.New(t)
	db := testutil.NewDB(c)
	app := testutil.NewApp(c, db, nil)
	u := testutil.CreateUser(c, db)
	svc := testutil.CreateService(c, db, "Birth Certificate", true)

	res := testutil.JSON(c, app, http.MethodPost, "/api/appointments", appointmentBody(u, svc))
	c.Assert(res.Status, qt.Equals, http.StatusCreated, qt.Commentf("%s", res.Raw))
	var got apptDTO.AppointmentDTO
	res.Body.Decode(c, &got)
	c.Assert(got.Status, qt.Equals, apptModel.StatusPending)
	c.Assert(got.PaymentStatus, qt.Equals, apptModel.PaymentPending)
	c.Assert(got.TotalFee, qt.Equals, svc.Fee)
	c.Assert(got.ServiceName, qt.Equals, "Birth Certificate")
	c.Assert(got.ServiceCategory, qt.Equals, "Birth Certificate Office")
	c.Assert(got.ReferenceNumber, qt.Matches, `APT-\d{8}-[0-9A-F]{8}`)

	res = testutil.Get(c, app, "/api/appointments/reference/"+got.ReferenceNumber)
	c.Assert(res.Status, qt.Equals, http.StatusOK)

	res = testutil.Get(c, app, "/api/appointments/"+got.ID.String())
	c.Assert(res.Status, qt.Equals, http.StatusOK)
	var detail struct {
		ServiceSpecificData map[string]any `json:"serviceSpecificData"`
		ServiceRequest      any            `json:"serviceRequest"`
	}
	res.Body.Decode(c, &detail)
	c.Assert(detail.ServiceSpecificData["copies"], qt.Equals, float64(2))
	c.Assert(detail.ServiceRequest, qt.IsNil)
}

func TestCreateAppointmentRejectsUnknownOrInactiveService(t *testing.T) {
	c := qt.New(t)
	db := testutil.NewDB(c)
	app := testutil.NewApp(c, db, nil)
	u := testutil.CreateUser(c, db)
	closed := testutil.CreateService(c, db, "Closed Counter", false)

	res := testutil.JSON(c, app, http.MethodPost, "/api/appointments", appointmentBody(u, closed))
	c.Assert(res.Status, qt.Equals, http.StatusBadRequest)
	c.Assert(res.Body.Message, qt.Equals, "Service is not available")

	missing := *closed
	missing.ID = 9999
	res = testutil.JSON(c, app, http.MethodPost, "/api/appointments", appointmentBody(u, &missing))
	c.Assert(res.Status, qt.Equals, http.StatusBadRequest)
	c.Assert(res.Body.Message, qt.Equals, "Service not found")

	ghost := *u
	ghost.ID = uuid.New()
	res = testutil.JSON(c, app, http.MethodPost, "/api/appointments", appointmentBody(&ghost, closed))
	c.Assert(res.Status, qt.Equals, http.StatusBadRequest)
	c.Assert(res.Body.Message, qt.Equals, "User not found")
}

func TestUpdateAppointmentOnlyWhilePending(t *testing.T) {
	c := qt.New(t)
	db := testutil.NewDB(c)
	app := testutil.NewApp(c, db, nil)
	u := testutil.CreateUser(c, db)
	svc := testutil.CreateService(c, db, "Cedula", true)

	pending := testutil.CreateAppointment(c, db, u, svc, apptModel.StatusPending)
	body := appointmentBody(u, svc)
	body["appointmentTime"] = "2:00 PM"
	res := testutil.JSON(c, app, http.MethodPut, "/api/appointments/"+pending.ID.String(), body)
	c.Assert(res.Status, qt.Equals, http.StatusOK)
	var got apptDTO.AppointmentDTO
	res.Body.Decode(c, &got)
	c.Assert(got.AppointmentTime, qt.Equals, "2:00 PM")

	confirmed := testutil.CreateAppointment(c, db, u, svc, apptModel.StatusConfirmed)
	res = testutil.JSON(c, app, http.MethodPut, "/api/appointments/"+confirmed.ID.String(), body)
	c.Assert(res.Status, qt.Equals, http.StatusBadRequest)
	c.Assert(res.Body.Message, qt.Equals, "Cannot update appointment that is not in pending status")
}

func TestCancelAppointment(t *testing.T) {
	c := qt.New(t)
	db := testutil.NewDB(c)
	app := testutil.NewApp(c, db, nil)
	u := testutil.CreateUser(c, db)
	svc := testutil.CreateService(c, db, "Barangay Clearance", true)
	appt := testutil.CreateAppointment(c, db, u, svc, apptModel.StatusConfirmed)

	res := testutil.JSON(c, app, http.MethodDelete, "/api/appointments/"+appt.ID.String()+"?reason=Schedule%20conflict", nil)
	c.Assert(res.Status, qt.Equals, http.StatusOK)
	c.Assert(res.Body.Message, qt.Equals, "Appointment cancelled successfully")

	var stored apptModel.AppointmentModel
	c.Assert(db.First(&stored, "id = ?", appt.ID).Error, qt.IsNil)
	c.Assert(stored.Status, qt.Equals, apptModel.StatusCancelled)
	c.Assert(stored.CancelledAt, qt.IsNotNil)
	c.Assert(*stored.CancellationReason, qt.Equals, "Schedule conflict")

	var audits int64
	c.Assert(db.Model(&infoModel.AuditLogModel{}).Where("entity_id = ?", appt.ID.String()).Count(&audits).Error, qt.IsNil)
	c.Assert(audits, qt.Equals, int64(1))

	// cancelled is final
	res = testutil.JSON(c, app, http.MethodDelete, "/api/appointments/"+appt.ID.String(), nil)
	c.Assert(res.Status, qt.Equals, http.StatusBadRequest)
}

func TestUpdateAppointmentStatusFollowsTransitions(t *testing.T) {
	c := qt.New(t)
	db := testutil.NewDB(c)
	app := testutil.NewApp(c, db, nil)
	u := testutil.CreateUser(c, db)
	svc := testutil.CreateService(c, db, "Business Permit", true)
	appt := testutil.CreateAppointment(c, db, u, svc, apptModel.StatusPending)
	path := "/api/appointments/" + appt.ID.String() + "/status"

	res := testutil.JSON(c, app, http.MethodPatch, path, fiber.Map{"status": "Completed"})
	c.Assert(res.Status, qt.Equals, http.StatusBadRequest)
	c.Assert(res.Body.Message, qt.Equals, "Cannot change appointment status from Pending to Completed")

	res = testutil.JSON(c, app, http.MethodPatch, path, fiber.Map{"status": "Unknown"})
	c.Assert(res.Status, qt.Equals, http.StatusBadRequest)
	c.Assert(res.Body.Message, qt.Equals, "Validation failed")

	for _, next := range []string{"Confirmed", "InProgress", "Completed"} {
		res = testutil.JSON(c, app, http.MethodPatch, path, fiber.Map{"status": next})
		c.Assert(res.Status, qt.Equals, http.StatusOK, qt.Commentf("to %s: %s", next, res.Raw))
	}
	var got apptDTO.AppointmentDTO
	res.Body.Decode(c, &got)
	c.Assert(got.Status, qt.Equals, apptModel.StatusCompleted)
	c.Assert(got.CompletedAt, qt.IsNotNil)

	res = testutil.JSON(c, app, http.MethodPatch, "/api/appointments/"+appt.ID.String()+"/payment-status", fiber.Map{"paymentStatus": "Paid"})
	c.Assert(res.Status, qt.Equals, http.StatusOK)
	res.Body.Decode(c, &got)
	c.Assert(got.PaymentStatus, qt.Equals, apptModel.PaymentPaid)
}

func TestGetAppointmentsFilters(t *testing.T) {
	c := qt.New(t)
	db := testutil.NewDB(c)
	app := testutil.NewApp(c, db, nil)
	u := testutil.CreateUser(c, db)
	other := testutil.CreateUser(c, db)
	svc := testutil.CreateService(c, db, "Health Certificate", true)

	testutil.CreateAppointment(c, db, u, svc, apptModel.StatusPending)
	testutil.CreateAppointment(c, db, u, svc, apptModel.StatusCompleted)
	testutil.CreateAppointment(c, db, other, svc, apptModel.StatusPending)

	res := testutil.Get(c, app, "/api/appointments?userId="+u.ID.String())
	c.Assert(res.TotalCount(), qt.Equals, "2")

	res = testutil.Get(c, app, "/api/appointments?status=pending")
	c.Assert(res.Status, qt.Equals, http.StatusOK)
	c.Assert(res.TotalCount(), qt.Equals, "2")

	res = testutil.Get(c, app, "/api/appointments?status=Lost")
	c.Assert(res.Status, qt.Equals, http.StatusBadRequest)

	res = testutil.Get(c, app, "/api/appointments/statuses")
	var opts []helper.EnumOption
	res.Body.Decode(c, &opts)
	c.Assert(opts, qt.HasLen, len(apptModel.AppointmentStatuses))
	c.Assert(opts[2].Label, qt.Equals, "In Progress")
}
