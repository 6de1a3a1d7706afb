package service

import (
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	irModel "alisto_backend/internals/features/civic/issue_reports/model"
	newsModel "alisto_backend/internals/features/content/news/model"
	infoModel "alisto_backend/internals/features/information/model"
	apptModel "alisto_backend/internals/features/services/appointments/model"
	csModel "alisto_backend/internals/features/services/city_services/model"
	uModel "alisto_backend/internals/features/users/user/model"
)

// PeriodWindow returns the half-open [start, end) window of period that
// contains day, in UTC.
func PeriodWindow(period infoModel.StatisticsPeriod, day time.Time) (time.Time, time.Time, error) {
	d := day.UTC()
	start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	switch period {
	case infoModel.PeriodDaily:
		return start, start.AddDate(0, 0, 1), nil
	case infoModel.PeriodWeekly:
		// weeks start on Monday
		offset := (int(start.Weekday()) + 6) % 7
		start = start.AddDate(0, 0, -offset)
		return start, start.AddDate(0, 0, 7), nil
	case infoModel.PeriodMonthly:
		start = time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 1, 0), nil
	case infoModel.PeriodYearly:
		start = time.Date(d.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(1, 0, 0), nil
	}
	return time.Time{}, time.Time{}, fmt.Errorf("unknown statistics period %q", period)
}

// SnapshotAppUsage computes the usage counters of one calendar day and
// upserts the app_usage_statistics row for it.
func SnapshotAppUsage(db *gorm.DB, day time.Time) (*infoModel.AppUsageStatisticsModel, error) {
	start, end, _ := PeriodWindow(infoModel.PeriodDaily, day)
	row := infoModel.AppUsageStatisticsModel{Date: start}

	var n int64
	if err := db.Model(&uModel.UserModel{}).Where("created_at < ?", end).Count(&n).Error; err != nil {
		return nil, err
	}
	row.TotalUsers = int(n)
	if err := db.Model(&uModel.UserModel{}).
		Where("last_login_at >= ? AND last_login_at < ?", start, end).Count(&n).Error; err != nil {
		return nil, err
	}
	row.ActiveUsers = int(n)
	if err := db.Model(&uModel.UserModel{}).
		Where("created_at >= ? AND created_at < ?", start, end).Count(&n).Error; err != nil {
		return nil, err
	}
	row.NewRegistrations = int(n)
	if err := db.Model(&irModel.IssueReportModel{}).
		Where("created_at >= ? AND created_at < ?", start, end).Count(&n).Error; err != nil {
		return nil, err
	}
	row.IssuesReported = int(n)

	// view counters are cumulative; the snapshot records the running total
	var views struct{ Total int64 }
	if err := db.Model(&newsModel.NewsArticleModel{}).
		Select("COALESCE(SUM(view_count), 0) AS total").
		Scan(&views).Error; err != nil {
		return nil, err
	}
	row.NewsViews = int(views.Total)

	var booked []apptModel.AppointmentModel
	if err := db.Select("id", "service_id", "created_at").
		Where("created_at >= ? AND created_at < ?", start, end).
		Find(&booked).Error; err != nil {
		return nil, err
	}
	row.AppointmentsBooked = len(booked)

	if len(booked) > 0 {
		perService := map[int]int{}
		perHour := map[int]int{}
		for _, a := range booked {
			perService[a.ServiceID]++
			perHour[a.CreatedAt.UTC().Hour()]++
		}
		hour := busiest(perHour)
		row.PeakUsageHour = &hour

		var svc csModel.CityServiceModel
		if err := db.Select("id", "name").First(&svc, busiest(perService)).Error; err == nil {
			row.MostUsedService = &svc.Name
		}
	}

	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"total_users", "active_users", "new_registrations", "appointments_booked",
			"issues_reported", "news_views", "most_used_service", "peak_usage_hour",
		}),
	}).Create(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// SnapshotServiceStatistics writes one service_statistics row per service
// that had appointments in the period containing day. Rows of the same
// period and window are replaced.
func SnapshotServiceStatistics(db *gorm.DB, period infoModel.StatisticsPeriod, day time.Time) ([]infoModel.ServiceStatisticsModel, error) {
	start, end, err := PeriodWindow(period, day)
	if err != nil {
		return nil, err
	}

	var appts []apptModel.AppointmentModel
	if err := db.Select("id", "service_id", "status", "created_at", "completed_at").
		Where("created_at >= ? AND created_at < ?", start, end).
		Find(&appts).Error; err != nil {
		return nil, err
	}

	type tally struct {
		total, completed, cancelled int
		hours                       float64
	}
	byService := map[int]*tally{}
	for _, a := range appts {
		t := byService[a.ServiceID]
		if t == nil {
			t = &tally{}
			byService[a.ServiceID] = t
		}
		t.total++
		switch a.Status {
		case apptModel.StatusCompleted:
			t.completed++
			if a.CompletedAt != nil {
				// completed_at can precede created_at when clocks disagree
				if d := a.CompletedAt.Sub(a.CreatedAt); d > 0 {
					t.hours += d.Hours()
				}
			}
		case apptModel.StatusCancelled:
			t.cancelled++
		}
	}

	ids := make([]int, 0, len(byService))
	for id := range byService {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	names := map[int]string{}
	if len(ids) > 0 {
		var services []csModel.CityServiceModel
		if err := db.Select("id", "name").Where("id IN ?", ids).Find(&services).Error; err != nil {
			return nil, err
		}
		for _, s := range services {
			names[s.ID] = s.Name
		}
	}

	type ratingRow struct {
		ServiceID int
		Rating    float64
	}
	var ratings []ratingRow
	if len(ids) > 0 {
		if err := db.Model(&infoModel.ServiceFeedbackModel{}).
			Select("service_id, AVG(rating) AS rating").
			Where("service_id IN ? AND created_at >= ? AND created_at < ?", ids, start, end).
			Group("service_id").
			Scan(&ratings).Error; err != nil {
			return nil, err
		}
	}
	avgRating := map[int]float64{}
	for _, r := range ratings {
		avgRating[r.ServiceID] = r.Rating
	}

	rows := make([]infoModel.ServiceStatisticsModel, 0, len(ids))
	for _, id := range ids {
		t := byService[id]
		row := infoModel.ServiceStatisticsModel{
			ServiceID:                  id,
			ServiceName:                names[id],
			TotalAppointments:          t.total,
			CompletedAppointments:      t.completed,
			CancelledAppointments:      t.cancelled,
			CustomerSatisfactionRating: avgRating[id],
			Period:                     period,
			StartDate:                  start,
			EndDate:                    end,
		}
		if t.completed > 0 {
			row.AverageProcessingTime = t.hours / float64(t.completed)
		}
		rows = append(rows, row)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("period = ? AND start_date = ?", period, start).
			Delete(&infoModel.ServiceStatisticsModel{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// busiest returns the key with the highest count, lowest key on ties.
func busiest(counts map[int]int) int {
	best, bestN := 0, -1
	for k, n := range counts {
		if n > bestN || (n == bestN && k < best) {
			best, bestN = k, n
		}
	}
	return best
}
