package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	infoDTO "alisto_backend/internals/features/information/dto"
	infoModel "alisto_backend/internals/features/information/model"
	apptModel "alisto_backend/internals/features/services/appointments/model"
	helper "alisto_backend/internals/helpers"
	authMw "alisto_backend/internals/middlewares/auth"
)

type FeedbackController struct {
	DB *gorm.DB
}

func NewFeedbackController(db *gorm.DB) *FeedbackController {
	return &FeedbackController{DB: db}
}

var validateFeedback = helper.NewValidator()

// POST /api/feedback/service rates a completed appointment once.
func (h *FeedbackController) CreateServiceFeedback(c *fiber.Ctx) error {
	var req infoDTO.CreateServiceFeedbackRequest
	if err := helper.ParseAndValidate(c, validateFeedback, &req); err != nil {
		return err
	}

	db := h.DB.WithContext(c.UserContext())
	var appt apptModel.AppointmentModel
	if err := db.First(&appt, "id = ?", req.AppointmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound("Appointment not found")
		}
		return err
	}
	if appt.Status != apptModel.StatusCompleted {
		return helper.BadRequest("Feedback can only be given for completed appointments")
	}
	if uid, ok := authMw.UserIDFromLocals(c); ok && uid != appt.UserID {
		return helper.BadRequest("Appointment belongs to another user")
	}

	var comment *string
	if req.Comment != nil {
		if v := strings.TrimSpace(*req.Comment); v != "" {
			comment = &v
		}
	}
	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}
	fb := infoModel.ServiceFeedbackModel{
		AppointmentID: appt.ID,
		UserID:        appt.UserID,
		ServiceID:     appt.ServiceID,
		Rating:        req.Rating,
		Comment:       comment,
		IsAnonymous:   req.IsAnonymous,
		IsPublic:      isPublic,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&infoModel.ServiceFeedbackModel{}).
			Where("appointment_id = ?", appt.ID).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return helper.Conflict("Feedback already submitted for this appointment")
		}
		return tx.Create(&fb).Error
	})
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "/api/feedback/service", "Service feedback submitted successfully", fb)
}

// GET /api/feedback/service?serviceId= lists public ratings; anonymous ones hide the user.
func (h *FeedbackController) GetServiceFeedback(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, helper.DefaultOpts)
	serviceID, err := helper.QueryInt(c, "serviceId")
	if err != nil {
		return err
	}

	q := h.DB.WithContext(c.UserContext()).
		Model(&infoModel.ServiceFeedbackModel{}).
		Where("is_public = ?", true)
	if serviceID != nil {
		q = q.Where("service_id = ?", *serviceID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return err
	}
	var rows []infoModel.ServiceFeedbackModel
	if err := q.Order("created_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return err
	}

	out := make([]fiber.Map, 0, len(rows))
	for _, r := range rows {
		item := fiber.Map{
			"id":          r.ID,
			"serviceId":   r.ServiceID,
			"rating":      r.Rating,
			"comment":     r.Comment,
			"isAnonymous": r.IsAnonymous,
			"createdAt":   r.CreatedAt,
		}
		if !r.IsAnonymous {
			item["userId"] = r.UserID
		}
		out = append(out, item)
	}
	return helper.JsonList(c, fmt.Sprintf("Retrieved %d service feedback entries successfully", len(rows)),
		out, helper.BuildMeta(total, p))
}

// POST /api/feedback/app
func (h *FeedbackController) CreateAppFeedback(c *fiber.Ctx) error {
	var req infoDTO.CreateAppFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.InvalidBody(err)
	}
	req.Normalize()
	if req.UserID == nil {
		if uid, ok := authMw.UserIDFromLocals(c); ok {
			req.UserID = &uid
		}
	}
	if err := validateFeedback.Struct(&req); err != nil {
		return err
	}

	fb := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(fb).Error; err != nil {
		return err
	}
	return helper.JsonCreated(c, "/api/feedback/app", "Feedback submitted successfully", fb)
}

// GET /api/feedback/types
func (h *FeedbackController) GetFeedbackTypes(c *fiber.Ctx) error {
	return helper.JsonOK(c, "Feedback types retrieved successfully", helper.EnumOptions(infoModel.FeedbackTypes))
}
