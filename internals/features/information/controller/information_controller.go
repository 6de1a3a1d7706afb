package controller

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	infoDTO "alisto_backend/internals/features/information/dto"
	infoModel "alisto_backend/internals/features/information/model"
	infoService "alisto_backend/internals/features/information/service"
	helper "alisto_backend/internals/helpers"
	"alisto_backend/internals/helpers/dbtime"
)

// InformationController serves the read-only reference data of the portal.
type InformationController struct {
	DB *gorm.DB
}

func NewInformationController(db *gorm.DB) *InformationController {
	return &InformationController{DB: db}
}

// GET /api/emergencyhotlines
func (h *InformationController) GetEmergencyHotlines(c *fiber.Ctx) error {
	var rows []infoModel.EmergencyHotlineModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("is_active = ?", true).
		Order("sort_order ASC").Order("id ASC").
		Find(&rows).Error; err != nil {
		return err
	}
	return helper.JsonOK(c, "Emergency hotlines retrieved successfully", infoDTO.ToEmergencyHotlineDTOs(rows))
}

// GET /api/systemconfigurations/public
func (h *InformationController) GetPublicConfigurations(c *fiber.Ctx) error {
	var rows []infoModel.SystemConfigurationModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("is_public = ?", true).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "key"}}).
		Find(&rows).Error; err != nil {
		return err
	}
	return helper.JsonOK(c, "System configurations retrieved successfully", infoDTO.ToPublicConfigDTOs(rows))
}

// GET /api/announcements returns active announcements inside their date window.
func (h *InformationController) GetAnnouncements(c *fiber.Ctx) error {
	now := dbtime.NowUTC()
	var rows []infoModel.AnnouncementModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("is_active = ? AND start_date <= ?", true, now).
		Where("end_date IS NULL OR end_date >= ?", now).
		Order("start_date DESC").
		Find(&rows).Error; err != nil {
		return err
	}
	return helper.JsonOK(c, fmt.Sprintf("Retrieved %d announcements successfully", len(rows)),
		infoDTO.ToAnnouncementDTOs(rows))
}

// GET /api/auditlogs/:entityType/:entityId
func (h *InformationController) GetAuditTrail(c *fiber.Ctx) error {
	rows, err := infoService.AuditTrail(h.DB.WithContext(c.UserContext()), c.Params("entityType"), c.Params("entityId"))
	if err != nil {
		return err
	}
	return helper.JsonOK(c, fmt.Sprintf("Retrieved %d audit entries successfully", len(rows)), rows)
}
