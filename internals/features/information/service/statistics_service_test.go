package service_test

import (
	"testing"
	"time"

	qt "github.com/frankban/quicktest"

	irModel "alisto_backend/internals/features/civic/issue_reports/model"
	newsModel "alisto_backend/internals/features/content/news/model"
	infoModel "alisto_backend/internals/features/information/model"
	infoService "alisto_backend/internals/features/information/service"
	apptModel "alisto_backend/internals/features/services/appointments/model"
	"alisto_backend/internals/testutil"
)

func TestPeriodWindow(t *testing.T) {
	c := qt.New(t)
	// Thursday
	day := time.Date(2024, 3, 14, 17, 45, 0, 0, time.FixedZone("PST", 8*3600))

	tests := []struct {
		period     infoModel.StatisticsPeriod
		start, end time.Time
	}{
		{infoModel.PeriodDaily, date(2024, 3, 14), date(2024, 3, 15)},
		{infoModel.PeriodWeekly, date(2024, 3, 11), date(2024, 3, 18)},
		{infoModel.PeriodMonthly, date(2024, 3, 1), date(2024, 4, 1)},
		{infoModel.PeriodYearly, date(2024, 1, 1), date(2025, 1, 1)},
	}
	for _, test := range tests {
		c.Run(string(test.period), func(c *qt.C) {
			start, end, err := infoService.PeriodWindow(test.period, day)
			c.Assert(err, qt.IsNil)
			c.Assert(start, qt.Equals, test.start)
			c.Assert(end, qt.Equals, test.end)
		})
	}

	// a Sunday belongs to the week that started the Monday before
	start, _, err := infoService.PeriodWindow(infoModel.PeriodWeekly, date(2024, 3, 17))
	c.Assert(err, qt.IsNil)
	c.Assert(start, qt.Equals, date(2024, 3, 11))

	_, _, err = infoService.PeriodWindow("Hourly", day)
	c.Assert(err, qt.ErrorMatches, `unknown statistics period "Hourly"`)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSnapshotAppUsage(t *testing.T) {
	c := qt.New(t)
	db := testutil.NewDB(c)
	now := time.Now().UTC()

	u := testutil.CreateUser(c, db)
	c.Assert(db.Model(u).Update("last_login_at", now).Error, qt.IsNil)
	other := testutil.CreateUser(c, db)
	permit := testutil.CreateService(c, db, "Business Permit", true)
	cedula := testutil.CreateService(c, db, "Cedula", true)
	testutil.CreateAppointment(c, db, u, permit, apptModel.StatusPending)
	testutil.CreateAppointment(c, db, other, permit, apptModel.StatusPending)
	testutil.CreateAppointment(c, db, other, cedula, apptModel.StatusPending)

	c.Assert(db.Create(&irModel.IssueReportModel{
		ReferenceNumber: "IR-TEST-0001", Category: irModel.CategoryFlooding, UrgencyLevel: irModel.UrgencyLow,
		Title: "Clogged canal", Description: "Water is not draining", Location: "Purok 2",
		Status: irModel.StatusSubmitted, Priority: irModel.PriorityLow, IsPubliclyVisible: true,
	}).Error, qt.IsNil)
	c.Assert(db.Create(&newsModel.NewsArticleModel{
		Title: "Fiesta", FullContent: "Parade at 8", Location: "Plaza", Category: newsModel.CategoryFestival,
		Author: "PIO", Status: newsModel.StatusPublished, ViewCount: 12,
	}).Error, qt.IsNil)

	row, err := infoService.SnapshotAppUsage(db, now)
	c.Assert(err, qt.IsNil)
	c.Assert(row.Date, qt.Equals, date(now.Year(), now.Month(), now.Day()))
	c.Assert(row.TotalUsers, qt.Equals, 2)
	c.Assert(row.ActiveUsers, qt.Equals, 1)
	c.Assert(row.NewRegistrations, qt.Equals, 2)
	c.Assert(row.AppointmentsBooked, qt.Equals, 3)
	c.Assert(row.IssuesReported, qt.Equals, 1)
	c.Assert(row.NewsViews, qt.Equals, 12)
	c.Assert(*row.MostUsedService, qt.Equals, "Business Permit")
	c.Assert(row.PeakUsageHour, qt.IsNotNil)

	// a second run replaces the day's row
	testutil.CreateAppointment(c, db, u, cedula, apptModel.StatusPending)
	row, err = infoService.SnapshotAppUsage(db, now)
	c.Assert(err, qt.IsNil)
	c.Assert(row.AppointmentsBooked, qt.Equals, 4)

	var stored []infoModel.AppUsageStatisticsModel
	c.Assert(db.Find(&stored).Error, qt.IsNil)
	c.Assert(stored, qt.HasLen, 1)
	c.Assert(stored[0].AppointmentsBooked, qt.Equals, 4)

	// an empty day still produces a row
	row, err = infoService.SnapshotAppUsage(db, now.AddDate(0, 0, -30))
	c.Assert(err, qt.IsNil)
	c.Assert(row.AppointmentsBooked, qt.Equals, 0)
	c.Assert(row.MostUsedService, qt.IsNil)
	c.Assert(row.NewRegistrations, qt.Equals, 0)
}

func TestSnapshotServiceStatistics(t *testing.T) {
	c := qt.New(t)
	db := testutil.NewDB(c)
	now := time.Now().UTC()

	u := testutil.CreateUser(c, db)
	permit := testutil.CreateService(c, db, "Business Permit", true)
	cedula := testutil.CreateService(c, db, "Cedula", true)
	done := testutil.CreateAppointment(c, db, u, permit, apptModel.StatusCompleted)
	testutil.CreateAppointment(c, db, u, permit, apptModel.StatusCancelled)
	testutil.CreateAppointment(c, db, u, permit, apptModel.StatusPending)
	testutil.CreateAppointment(c, db, u, cedula, apptModel.StatusPending)

	c.Assert(db.Create(&infoModel.ServiceFeedbackModel{
		AppointmentID: done.ID, UserID: u.ID, ServiceID: permit.ID, Rating: 4, IsPublic: true,
	}).Error, qt.IsNil)

	rows, err := infoService.SnapshotServiceStatistics(db, infoModel.PeriodMonthly, now)
	c.Assert(err, qt.IsNil)
	c.Assert(rows, qt.HasLen, 2)
	c.Assert(rows[0].ServiceID, qt.Equals, permit.ID)
	c.Assert(rows[0].ServiceName, qt.Equals, "Business Permit")
	c.Assert(rows[0].TotalAppointments, qt.Equals, 3)
	c.Assert(rows[0].CompletedAppointments, qt.Equals, 1)
	c.Assert(rows[0].CancelledAppointments, qt.Equals, 1)
	c.Assert(rows[0].CustomerSatisfactionRating, qt.Equals, 4.0)
	// the fixture completes an appointment one hour after creating it
	c.Assert(rows[0].AverageProcessingTime, qt.Equals, 1.0)
	c.Assert(rows[1].AverageProcessingTime, qt.Equals, 0.0)
	c.Assert(rows[1].ServiceName, qt.Equals, "Cedula")
	c.Assert(rows[1].CustomerSatisfactionRating, qt.Equals, 0.0)

	_, err = infoService.SnapshotServiceStatistics(db, infoModel.PeriodMonthly, now)
	c.Assert(err, qt.IsNil)
	var n int64
	c.Assert(db.Model(&infoModel.ServiceStatisticsModel{}).Count(&n).Error, qt.IsNil)
	c.Assert(n, qt.Equals, int64(2))

	_, err = infoService.SnapshotServiceStatistics(db, infoModel.PeriodDaily, now)
	c.Assert(err, qt.IsNil)
	c.Assert(db.Model(&infoModel.ServiceStatisticsModel{}).Count(&n).Error, qt.IsNil)
	c.Assert(n, qt.Equals, int64(4))

	_, err = infoService.SnapshotServiceStatistics(db, "Hourly", now)
	c.Assert(err, qt.Not(qt.IsNil))
}

func TestSnapshotServiceStatisticsIgnoresSkewedCompletion(t *testing.T) {
	c := qt.New(t)
	db := testutil.NewDB(c)
	now := time.Now().UTC()

	u := testutil.CreateUser(c, db)
	permit := testutil.CreateService(c, db, "Business Permit", true)
	onTime := testutil.CreateAppointment(c, db, u, permit, apptModel.StatusCompleted)
	skewed := testutil.CreateAppointment(c, db, u, permit, apptModel.StatusCompleted)
	c.Assert(db.Model(skewed).Update("completed_at", skewed.CreatedAt.Add(-3*time.Hour)).Error, qt.IsNil)

	rows, err := infoService.SnapshotServiceStatistics(db, infoModel.PeriodMonthly, now)
	c.Assert(err, qt.IsNil)
	c.Assert(rows, qt.HasLen, 1)
	c.Assert(rows[0].CompletedAppointments, qt.Equals, 2)
	// the skewed row counts as completed but adds no processing time
	want := onTime.CompletedAt.Sub(onTime.CreatedAt).Hours() / 2
	c.Assert(rows[0].AverageProcessingTime, qt.Equals, want)
}
