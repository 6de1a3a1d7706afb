package controller_test

import (
	"net/http"
	"strconv"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"

	infoDTO "alisto_backend/internals/features/information/dto"
	infoModel "alisto_backend/internals/features/information/model"
	infoService "alisto_backend/internals/features/information/service"
	apptModel "alisto_backend/internals/features/services/appointments/model"
	"alisto_backend/internals/testutil"
)

func TestDashboard(t *testing.T) {
	c := qt.New(t)
	db := testutil.NewDB(c)
	app := testutil.NewApp(c, db, nil)
	u := testutil.CreateUser(c, db)
	inactive := testutil.CreateUser(c, db)
	c.Assert(db.Model(inactive).Update("is_active", false).Error, qt.IsNil)
	svc := testutil.CreateService(c, db, "Business Permit", true)
	done := testutil.CreateAppointment(c, db, u, svc, apptModel.StatusCompleted)
	testutil.CreateAppointment(c, db, u, svc, apptModel.StatusPending)
	testutil.CreateAppointment(c, db, u, svc, apptModel.StatusPending)

	res := testutil.Get(c, app, "/api/statistics/dashboard")
	c.Assert(res.Status, qt.Equals, http.StatusOK)
	var got infoDTO.DashboardDTO
	res.Body.Decode(c, &got)
	c.Assert(got.ActiveUsers, qt.Equals, int64(1))
	c.Assert(got.AppointmentsByStatus, qt.DeepEquals, map[string]int64{"Completed": 1, "Pending": 2})
	c.Assert(got.IssuesByStatus, qt.HasLen, 0)
	c.Assert(got.AverageServiceRating, qt.IsNil)

	res = testutil.JSON(c, app, http.MethodPost, "/api/feedback/service", map[string]any{
		"appointmentId": done.ID, "rating": 4,
	})
	c.Assert(res.Status, qt.Equals, http.StatusCreated)

	res = testutil.Get(c, app, "/api/statistics/dashboard")
	res.Body.Decode(c, &got)
	c.Assert(got.AverageServiceRating, qt.IsNotNil)
	c.Assert(*got.AverageServiceRating, qt.Equals, 4.0)
}

func TestStatisticsEndpoints(t *testing.T) {
	c := qt.New(t)
	db := testutil.NewDB(c)
	app := testutil.NewApp(c, db, nil)
	u := testutil.CreateUser(c, db)
	svc := testutil.CreateService(c, db, "Cedula", true)
	testutil.CreateAppointment(c, db, u, svc, apptModel.StatusPending)

	now := time.Now().UTC()
	_, err := infoService.SnapshotAppUsage(db, now)
	c.Assert(err, qt.IsNil)
	_, err = infoService.SnapshotAppUsage(db, now.AddDate(0, 0, -60))
	c.Assert(err, qt.IsNil)
	_, err = infoService.SnapshotServiceStatistics(db, infoModel.PeriodDaily, now)
	c.Assert(err, qt.IsNil)
	_, err = infoService.SnapshotServiceStatistics(db, infoModel.PeriodWeekly, now)
	c.Assert(err, qt.IsNil)

	var usage []infoModel.AppUsageStatisticsModel
	res := testutil.Get(c, app, "/api/statistics/usage")
	c.Assert(res.Status, qt.Equals, http.StatusOK)
	res.Body.Decode(c, &usage)
	c.Assert(usage, qt.HasLen, 1)
	c.Assert(usage[0].AppointmentsBooked, qt.Equals, 1)

	from := now.AddDate(0, 0, -90).Format("2006-01-02")
	res = testutil.Get(c, app, "/api/statistics/usage?from="+from)
	res.Body.Decode(c, &usage)
	c.Assert(usage, qt.HasLen, 2)
	c.Assert(usage[0].Date.Before(usage[1].Date), qt.IsTrue)

	res = testutil.Get(c, app, "/api/statistics/usage?from=yesterday-ish")
	c.Assert(res.Status, qt.Equals, http.StatusBadRequest)
	c.Assert(res.Body.Message, qt.Equals, "Invalid from date")
	res = testutil.Get(c, app, "/api/statistics/usage?from=2030-01-01&to=2029-01-01")
	c.Assert(res.Status, qt.Equals, http.StatusBadRequest)

	res = testutil.Get(c, app, "/api/statistics/services")
	c.Assert(res.Status, qt.Equals, http.StatusOK)
	c.Assert(res.TotalCount(), qt.Equals, "2")
	res = testutil.Get(c, app, "/api/statistics/services?period=Weekly&serviceId="+strconv.Itoa(svc.ID))
	c.Assert(res.TotalCount(), qt.Equals, "1")
	var stats []infoModel.ServiceStatisticsModel
	res.Body.Decode(c, &stats)
	c.Assert(stats[0].Period, qt.Equals, infoModel.PeriodWeekly)
	c.Assert(stats[0].ServiceName, qt.Equals, "Cedula")

	res = testutil.Get(c, app, "/api/statistics/services?period=Hourly")
	c.Assert(res.Status, qt.Equals, http.StatusBadRequest)
}
