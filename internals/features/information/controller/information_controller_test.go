package controller_test

import (
	"net/http"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
	"github.com/google/uuid"

	infoDTO "alisto_backend/internals/features/information/dto"
	infoModel "alisto_backend/internals/features/information/model"
	infoService "alisto_backend/internals/features/information/service"
	helper "alisto_backend/internals/helpers"
	"alisto_backend/internals/seeds"
	"alisto_backend/internals/testutil"
)

func TestEmergencyHotlines(t *testing.T) {
	c := qt.New(t)
	db := testutil.NewDB(c)
	c.Assert(seeds.RunAllSeeds(db), qt.IsNil)
	app := testutil.NewApp(c, db, nil)

	res := testutil.Get(c, app, "/api/emergencyhotlines")
	c.Assert(res.Status, qt.Equals, http.StatusOK)
	var hotlines []infoDTO.EmergencyHotlineDTO
	res.Body.Decode(c, &hotlines)
	c.Assert(hotlines, qt.HasLen, 4)
	c.Assert(hotlines[0].PhoneNumber, qt.Equals, "911")
	c.Assert(hotlines[0].IsEmergency, qt.IsTrue)
	c.Assert(hotlines[3].Title, qt.Equals, "City Hall Main")

	c.Assert(db.Model(&infoModel.EmergencyHotlineModel{}).Where("id = ?", 2).Update("is_active", false).Error, qt.IsNil)
	res = testutil.Get(c, app, "/api/emergencyhotlines")
	res.Body.Decode(c, &hotlines)
	c.Assert(hotlines, qt.HasLen, 3)
	c.Assert(hotlines[1].Title, qt.Equals, "Police Station")
}

func TestPublicConfigurations(t *testing.T) {
	c := qt.New(t)
	db := testutil.NewDB(c)
	c.Assert(seeds.RunAllSeeds(db), qt.IsNil)
	c.Assert(db.Create(&infoModel.SystemConfigurationModel{
		Key: "OFFICE_HOURS", Value: `{"open":"08:00","close":"17:00"}`, DataType: infoModel.ConfigJSON, IsPublic: true,
	}).Error, qt.IsNil)
	c.Assert(db.Create(&infoModel.SystemConfigurationModel{
		Key: "BOOKING_DAYS_AHEAD", Value: "30", DataType: infoModel.ConfigNumber, IsPublic: true,
	}).Error, qt.IsNil)
	app := testutil.NewApp(c, db, nil)

	res := testutil.Get(c, app, "/api/systemconfigurations/public")
	c.Assert(res.Status, qt.Equals, http.StatusOK)
	var configs []struct {
		Key   string `json:"key"`
		Value any    `json:"value"`
	}
	res.Body.Decode(c, &configs)
	c.Assert(configs, qt.HasLen, 4)

	values := map[string]any{}
	for _, cfg := range configs {
		values[cfg.Key] = cfg.Value
	}
	c.Assert(values["APP_NAME"], qt.Equals, "Alisto")
	c.Assert(values["APP_VERSION"], qt.Equals, "1.0.0")
	c.Assert(values["BOOKING_DAYS_AHEAD"], qt.Equals, float64(30))
	c.Assert(values["OFFICE_HOURS"], qt.DeepEquals, map[string]any{"open": "08:00", "close": "17:00"})
	_, private := values["MAINTENANCE_MODE"]
	c.Assert(private, qt.IsFalse)
	c.Assert(configs[0].Key, qt.Equals, "APP_NAME")
}

func TestAnnouncementsWindow(t *testing.T) {
	c := qt.New(t)
	db := testutil.NewDB(c)
	app := testutil.NewApp(c, db, nil)

	now := time.Now().UTC()
	later := now.AddDate(0, 0, 7)
	earlier := now.AddDate(0, 0, -1)
	rows := []infoModel.AnnouncementModel{
		{Title: "Water interruption", Message: "Zone 3, 9 AM to 3 PM", Type: infoModel.AnnouncementMaintenance,
			Priority: "High", IsActive: true, StartDate: now.AddDate(0, 0, -2), EndDate: &later},
		{Title: "Open ended", Message: "Online payments now available", Type: infoModel.AnnouncementGeneral,
			Priority: "Low", IsActive: true, StartDate: now.AddDate(0, 0, -10)},
		{Title: "Future fiesta", Message: "See you there", Type: infoModel.AnnouncementEvent,
			Priority: "Low", IsActive: true, StartDate: later},
		{Title: "Past typhoon", Message: "Classes suspended", Type: infoModel.AnnouncementEmergency,
			Priority: "Urgent", IsActive: true, StartDate: now.AddDate(0, 0, -5), EndDate: &earlier},
		{Title: "Withdrawn", Message: "Ignore", Type: infoModel.AnnouncementGeneral,
			Priority: "Low", IsActive: false, StartDate: now.AddDate(0, 0, -1)},
	}
	c.Assert(db.Create(&rows).Error, qt.IsNil)

	res := testutil.Get(c, app, "/api/announcements")
	c.Assert(res.Status, qt.Equals, http.StatusOK)
	c.Assert(res.Body.Message, qt.Equals, "Retrieved 2 announcements successfully")
	var got []infoDTO.AnnouncementDTO
	res.Body.Decode(c, &got)
	c.Assert(got, qt.HasLen, 2)
	c.Assert(got[0].Title, qt.Equals, "Water interruption")
	c.Assert(got[1].Title, qt.Equals, "Open ended")
	c.Assert(got[1].EndDate, qt.IsNil)
}

func TestAuditTrail(t *testing.T) {
	c := qt.New(t)
	db := testutil.NewDB(c)
	app := testutil.NewApp(c, db, nil)

	for _, status := range []string{"Assigned", "Resolved"} {
		c.Assert(infoService.RecordAudit(db, infoService.AuditEntry{
			Action:     "StatusChange",
			EntityType: "IssueReport",
			EntityID:   "ir-1",
			New:        map[string]any{"status": status},
			IPAddress:  "10.0.0.1",
		}), qt.IsNil)
	}
	c.Assert(infoService.RecordAudit(db, infoService.AuditEntry{
		Action: "StatusChange", EntityType: "IssueReport", EntityID: "ir-2",
	}), qt.IsNil)

	res := testutil.Get(c, app, "/api/auditlogs/IssueReport/ir-1")
	c.Assert(res.Status, qt.Equals, http.StatusOK)
	var trail []struct {
		Action    string         `json:"action"`
		NewValues map[string]any `json:"newValues"`
		IPAddress *string        `json:"ipAddress"`
		UserAgent *string        `json:"userAgent"`
	}
	res.Body.Decode(c, &trail)
	c.Assert(trail, qt.HasLen, 2)
	c.Assert(trail[0].NewValues["status"], qt.Equals, "Assigned")
	c.Assert(trail[1].NewValues["status"], qt.Equals, "Resolved")
	c.Assert(*trail[0].IPAddress, qt.Equals, "10.0.0.1")
	c.Assert(trail[0].UserAgent, qt.IsNil)

	res = testutil.Get(c, app, "/api/auditlogs/Appointment/nothing")
	c.Assert(res.Status, qt.Equals, http.StatusOK)
	res.Body.Decode(c, &trail)
	c.Assert(trail, qt.HasLen, 0)
}

func TestNotifications(t *testing.T) {
	c := qt.New(t)
	db := testutil.NewDB(c)
	app := testutil.NewApp(c, db, nil)
	u := testutil.CreateUser(c, db)
	other := testutil.CreateUser(c, db)

	past := time.Now().UTC().Add(-time.Hour)
	readAt := time.Now().UTC()
	rows := []infoModel.NotificationModel{
		{UserID: u.ID, Title: "Appointment confirmed", Message: "See you Monday", Type: infoModel.NotificationAppointment},
		{UserID: u.ID, Title: "Issue assigned", Message: "Engineering is on it", Type: infoModel.NotificationIssue},
		{UserID: u.ID, Title: "Welcome", Message: "Thanks for joining", Type: infoModel.NotificationSystem, IsRead: true, ReadAt: &readAt},
		{UserID: u.ID, Title: "Expired", Message: "Old news", Type: infoModel.NotificationNews, ExpiresAt: &past},
		{UserID: other.ID, Title: "Not yours", Message: "Someone else's", Type: infoModel.NotificationSystem},
	}
	c.Assert(db.Create(&rows).Error, qt.IsNil)
	query := "?userId=" + u.ID.String()

	res := testutil.Get(c, app, "/api/notifications/unread-count")
	c.Assert(res.Status, qt.Equals, http.StatusBadRequest)
	c.Assert(res.Body.Message, qt.Equals, "userId is required")

	var count struct {
		Unread int64 `json:"unread"`
	}
	res = testutil.Get(c, app, "/api/notifications/unread-count"+query)
	c.Assert(res.Status, qt.Equals, http.StatusOK)
	res.Body.Decode(c, &count)
	c.Assert(count.Unread, qt.Equals, int64(2))

	res = testutil.Get(c, app, "/api/notifications"+query)
	c.Assert(res.TotalCount(), qt.Equals, "3")
	res = testutil.Get(c, app, "/api/notifications"+query+"&isRead=false")
	c.Assert(res.TotalCount(), qt.Equals, "2")

	res = testutil.JSON(c, app, http.MethodPatch, "/api/notifications/"+rows[4].ID.String()+"/read"+query, nil)
	c.Assert(res.Status, qt.Equals, http.StatusNotFound)
	c.Assert(res.Body.Message, qt.Equals, "Notification not found")

	res = testutil.JSON(c, app, http.MethodPatch, "/api/notifications/"+rows[0].ID.String()+"/read"+query, nil)
	c.Assert(res.Status, qt.Equals, http.StatusOK)
	var n infoDTO.NotificationDTO
	res.Body.Decode(c, &n)
	c.Assert(n.IsRead, qt.IsTrue)
	c.Assert(n.ReadAt, qt.IsNotNil)

	// the signed-in user wins over the query
	token := testutil.TokenFor(c, db, u)
	res = testutil.JSONAs(c, app, http.MethodPatch, "/api/notifications/read-all?userId="+other.ID.String(), nil, token)
	c.Assert(res.Status, qt.Equals, http.StatusOK)
	var updated struct {
		Updated int64 `json:"updated"`
	}
	res.Body.Decode(c, &updated)
	// the expired notification is unread too and is swept up
	c.Assert(updated.Updated, qt.Equals, int64(2))

	res = testutil.Get(c, app, "/api/notifications/unread-count?userId="+other.ID.String())
	res.Body.Decode(c, &count)
	c.Assert(count.Unread, qt.Equals, int64(1))

	res = testutil.Get(c, app, "/api/notifications?userId=not-a-uuid")
	c.Assert(res.Status, qt.Equals, http.StatusBadRequest)
	res = testutil.JSON(c, app, http.MethodPatch, "/api/notifications/"+uuid.NewString()+"/read"+query, nil)
	c.Assert(res.Status, qt.Equals, http.StatusNotFound)
}

func TestFeedbackTypes(t *testing.T) {
	c := qt.New(t)
	db := testutil.NewDB(c)
	app := testutil.NewApp(c, db, nil)

	res := testutil.Get(c, app, "/api/feedback/types")
	c.Assert(res.Status, qt.Equals, http.StatusOK)
	var opts []helper.EnumOption
	res.Body.Decode(c, &opts)
	c.Assert(opts, qt.HasLen, len(infoModel.FeedbackTypes))
	c.Assert(opts[0], qt.DeepEquals, helper.EnumOption{Value: "Bug", Label: "Bug"})
}
