package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	irModel "alisto_backend/internals/features/civic/issue_reports/model"
	ppModel "alisto_backend/internals/features/civic/public_projects/model"
	newsModel "alisto_backend/internals/features/content/news/model"
	tsModel "alisto_backend/internals/features/content/tourist_spots/model"
	infoDTO "alisto_backend/internals/features/information/dto"
	infoModel "alisto_backend/internals/features/information/model"
	apptModel "alisto_backend/internals/features/services/appointments/model"
	uModel "alisto_backend/internals/features/users/user/model"
	helper "alisto_backend/internals/helpers"
	"alisto_backend/internals/helpers/dbtime"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

type statusCount struct {
	Status string
	Total  int64
}

func countByStatus(db *gorm.DB, model any) (map[string]int64, error) {
	var rows []statusCount
	if err := db.Model(model).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.Status] = r.Total
	}
	return out, nil
}

// GET /api/statistics/dashboard
func (h *DashboardController) GetDashboard(c *fiber.Ctx) error {
	db := h.DB.WithContext(c.UserContext())
	out := infoDTO.DashboardDTO{GeneratedAt: dbtime.NowUTC()}

	if err := db.Model(&uModel.UserModel{}).Where("is_active = ?", true).Count(&out.ActiveUsers).Error; err != nil {
		return err
	}
	var err error
	if out.AppointmentsByStatus, err = countByStatus(db, &apptModel.AppointmentModel{}); err != nil {
		return err
	}
	if out.IssuesByStatus, err = countByStatus(db, &irModel.IssueReportModel{}); err != nil {
		return err
	}
	if out.ProjectsByStatus, err = countByStatus(db, &ppModel.PublicProjectModel{}); err != nil {
		return err
	}
	if err := db.Model(&newsModel.NewsArticleModel{}).
		Where("status = ?", newsModel.StatusPublished).Count(&out.PublishedNews).Error; err != nil {
		return err
	}
	if err := db.Model(&tsModel.TouristSpotModel{}).
		Where("is_active = ?", true).Count(&out.ActiveTouristSpots).Error; err != nil {
		return err
	}

	var avg struct{ Rating *float64 }
	if err := db.Model(&infoModel.ServiceFeedbackModel{}).
		Select("AVG(rating) AS rating").
		Scan(&avg).Error; err != nil {
		return err
	}
	out.AverageServiceRating = avg.Rating

	return helper.JsonOK(c, "Dashboard statistics retrieved successfully", out)
}
