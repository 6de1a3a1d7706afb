package controller

import (
	"github.com/gofiber/fiber/v2"

	infoModel "alisto_backend/internals/features/information/model"
	helper "alisto_backend/internals/helpers"
	"alisto_backend/internals/helpers/dbtime"
)

const defaultUsageDays = 30

// GET /api/statistics/usage?from=&to=
func (h *DashboardController) GetAppUsage(c *fiber.Ctx) error {
	q := h.DB.WithContext(c.UserContext()).Model(&infoModel.AppUsageStatisticsModel{})

	to := dbtime.NowUTC()
	if raw := c.Query("to"); raw != "" {
		t, ok := dbtime.ParseFlexible(raw)
		if !ok {
			return helper.BadRequest("Invalid to date")
		}
		to = t
	}
	from := to.AddDate(0, 0, -defaultUsageDays)
	if raw := c.Query("from"); raw != "" {
		t, ok := dbtime.ParseFlexible(raw)
		if !ok {
			return helper.BadRequest("Invalid from date")
		}
		from = t
	}
	if from.After(to) {
		return helper.BadRequest("from must not be after to")
	}

	var rows []infoModel.AppUsageStatisticsModel
	if err := q.Where("date >= ? AND date <= ?", from, to).
		Order("date ASC").
		Find(&rows).Error; err != nil {
		return err
	}
	return helper.JsonOK(c, "App usage statistics retrieved successfully", rows)
}

// GET /api/statistics/services?period=&serviceId=
func (h *DashboardController) GetServiceStatistics(c *fiber.Ctx) error {
	period, err := helper.QueryEnum(c, "period", infoModel.StatisticsPeriods)
	if err != nil {
		return err
	}
	serviceID, err := helper.QueryInt(c, "serviceId")
	if err != nil {
		return err
	}

	q := h.DB.WithContext(c.UserContext()).Model(&infoModel.ServiceStatisticsModel{})
	if period != nil {
		q = q.Where("period = ?", *period)
	}
	if serviceID != nil {
		q = q.Where("service_id = ?", *serviceID)
	}

	p := helper.ParseFiber(c, helper.DefaultOpts)
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return err
	}
	var rows []infoModel.ServiceStatisticsModel
	if err := q.Order("start_date DESC").Order("service_id ASC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return err
	}
	return helper.JsonList(c, "Service statistics retrieved successfully", rows, helper.BuildMeta(total, p))
}
