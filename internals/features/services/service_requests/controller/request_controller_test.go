package controller_test

import (
	"net/http"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	apptModel "alisto_backend/internals/features/services/appointments/model"
	srDTO "alisto_backend/internals/features/services/service_requests/dto"
	srModel "alisto_backend/internals/features/services/service_requests/model"
	uModel "alisto_backend/internals/features/users/user/model"
	"alisto_backend/internals/testutil"
)

func TestCivilRegistryLifecycle(t *testing.T) {
	c := qt.New(t)
	db := testutil.NewDB(c)
	app := testutil.NewApp(c, db, nil)
	u := testutil.CreateUser(c, db)
	svc := testutil.CreateService(c, db, "Birth Certificate", true)
	appt := testutil.CreateAppointment(c, db, u, svc, apptModel.StatusPending)

	res := testutil.JSON(c, app, http.MethodPost, "/api/civilregistry", fiber.Map{
		"appointmentId": appt.ID,
		"documentType":  "BirthCertificate",
		"purpose":       " Passport application ",
	})
	c.Assert(res.Status, qt.Equals, http.StatusCreated, qt.Commentf("%s", res.Raw))
	c.Assert(res.Header.Get("Location"), qt.Equals, "/api/civilregistry/"+appt.ID.String())
	var created srDTO.CivilRegistryRequestDTO
	res.Body.Decode(c, &created)
	c.Assert(created.Purpose, qt.Equals, "Passport application")
	c.Assert(created.NumberOfCopies, qt.Equals, 1)
	c.Assert(created.ReferenceNumber, qt.Equals, appt.ReferenceNumber)
	c.Assert(created.UserName, qt.Equals, "Juan Dela Cruz")

	res = testutil.Get(c, app, "/api/appointments/"+appt.ID.String())
	var detail struct {
		ServiceRequest *struct {
			Kind    srModel.RequestKind `json:"type"`
			Details map[string]any      `json:"details"`
		} `json:"serviceRequest"`
	}
	res.Body.Decode(c, &detail)
	c.Assert(detail.ServiceRequest, qt.IsNotNil)
	c.Assert(detail.ServiceRequest.Kind, qt.Equals, srModel.KindCivilRegistry)
	c.Assert(detail.ServiceRequest.Details["purpose"], qt.Equals, "Passport application")

	res = testutil.JSON(c, app, http.MethodPut, "/api/civilregistry/"+appt.ID.String(), fiber.Map{
		"documentType":   "DeathCertificate",
		"purpose":        "Insurance claim",
		"numberOfCopies": 3,
	})
	c.Assert(res.Status, qt.Equals, http.StatusOK)
	var updated srDTO.CivilRegistryRequestDTO
	res.Body.Decode(c, &updated)
	c.Assert(updated.DocumentType, qt.Equals, srModel.DocDeathCertificate)
	c.Assert(updated.NumberOfCopies, qt.Equals, 3)

	res = testutil.JSON(c, app, http.MethodDelete, "/api/civilregistry/"+appt.ID.String(), nil)
	c.Assert(res.Status, qt.Equals, http.StatusOK)
	c.Assert(res.Body.Message, qt.Equals, "Civil registry request deleted successfully")

	var n int64
	c.Assert(db.Model(&apptModel.AppointmentModel{}).Where("id = ?", appt.ID).Count(&n).Error, qt.IsNil)
	c.Assert(n, qt.Equals, int64(1))

	res = testutil.Get(c, app, "/api/civilregistry/"+appt.ID.String())
	c.Assert(res.Status, qt.Equals, http.StatusNotFound)
	c.Assert(res.Body.Message, qt.Equals, "Civil registry request not found")
}

func TestOneSpecializedRequestPerAppointment(t *testing.T) {
	c := qt.New(t)
	db := testutil.NewDB(c)
	app := testutil.NewApp(c, db, nil)
	u := testutil.CreateUser(c, db)
	svc := testutil.CreateService(c, db, "Real Property Tax", true)
	appt := testutil.CreateAppointment(c, db, u, svc, apptModel.StatusPending)

	tax := fiber.Map{"appointmentId": appt.ID, "serviceType": "RPTPayment", "taxYear": 2024}
	res := testutil.JSON(c, app, http.MethodPost, "/api/taxservices", tax)
	c.Assert(res.Status, qt.Equals, http.StatusCreated, qt.Commentf("%s", res.Raw))

	res = testutil.JSON(c, app, http.MethodPost, "/api/taxservices", tax)
	c.Assert(res.Status, qt.Equals, http.StatusConflict)
	c.Assert(res.Body.Message, qt.Equals, "Appointment already has a tax service request")

	res = testutil.JSON(c, app, http.MethodPost, "/api/civilregistry", fiber.Map{
		"appointmentId": appt.ID,
		"documentType":  "BirthCertificate",
		"purpose":       "School",
	})
	c.Assert(res.Status, qt.Equals, http.StatusConflict)
	c.Assert(res.Body.Message, qt.Equals, "Appointment already has a tax service request")

	tax["appointmentId"] = uuid.New()
	res = testutil.JSON(c, app, http.MethodPost, "/api/taxservices", tax)
	c.Assert(res.Status, qt.Equals, http.StatusNotFound)
	c.Assert(res.Body.Message, qt.Equals, "Appointment not found")
}

func TestListFiltersByTypeAndOwner(t *testing.T) {
	c := qt.New(t)
	db := testutil.NewDB(c)
	app := testutil.NewApp(c, db, nil)
	u := testutil.CreateUser(c, db)
	other := testutil.CreateUser(c, db)
	svc := testutil.CreateService(c, db, "Civil Registry", true)

	seed := []struct {
		user    *uModel.UserModel
		docType string
	}{
		{u, "BirthCertificate"},
		{u, "CENOMAR"},
		{other, "BirthCertificate"},
	}
	for _, sd := range seed {
		appt := testutil.CreateAppointment(c, db, sd.user, svc, apptModel.StatusPending)
		res := testutil.JSON(c, app, http.MethodPost, "/api/civilregistry", fiber.Map{
			"appointmentId": appt.ID,
			"documentType":  sd.docType,
			"purpose":       "Records",
		})
		c.Assert(res.Status, qt.Equals, http.StatusCreated, qt.Commentf("%s", res.Raw))
	}

	res := testutil.Get(c, app, "/api/civilregistry?documentType=birthcertificate")
	c.Assert(res.Status, qt.Equals, http.StatusOK)
	c.Assert(res.TotalCount(), qt.Equals, "2")

	res = testutil.Get(c, app, "/api/civilregistry?userId="+u.ID.String())
	c.Assert(res.TotalCount(), qt.Equals, "2")

	res = testutil.Get(c, app, "/api/civilregistry?documentType=Passport")
	c.Assert(res.Status, qt.Equals, http.StatusBadRequest)
}
