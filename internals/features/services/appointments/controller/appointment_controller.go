package controller

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"alisto_backend/internals/constants"
	infoService "alisto_backend/internals/features/information/service"
	apptDTO "alisto_backend/internals/features/services/appointments/dto"
	apptModel "alisto_backend/internals/features/services/appointments/model"
	csModel "alisto_backend/internals/features/services/city_services/model"
	srService "alisto_backend/internals/features/services/service_requests/service"
	uModel "alisto_backend/internals/features/users/user/model"
	helper "alisto_backend/internals/helpers"
	"alisto_backend/internals/helpers/dbtime"
	authMw "alisto_backend/internals/middlewares/auth"
)

type AppointmentController struct {
	DB *gorm.DB
}

func NewAppointmentController(db *gorm.DB) *AppointmentController {
	return &AppointmentController{DB: db}
}

var validateAppointment = helper.NewValidator()

const msgAppointmentNotFound = "Appointment not found"

func (h *AppointmentController) db(c *fiber.Ctx) *gorm.DB {
	return h.DB.WithContext(c.UserContext())
}

func (h *AppointmentController) findAppointment(c *fiber.Ctx) (*apptModel.AppointmentModel, error) {
	id, err := helper.ParamUUID(c, "id", msgAppointmentNotFound)
	if err != nil {
		return nil, err
	}
	var appt apptModel.AppointmentModel
	if err := h.db(c).First(&appt, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.NotFound(msgAppointmentNotFound)
		}
		return nil, err
	}
	return &appt, nil
}

func withService(db *gorm.DB) *gorm.DB {
	return db.Preload("Service.Category")
}

func (h *AppointmentController) reload(c *fiber.Ctx, id uuid.UUID) (*apptModel.AppointmentModel, error) {
	var appt apptModel.AppointmentModel
	if err := withService(h.db(c)).First(&appt, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &appt, nil
}

func (h *AppointmentController) audit(c *fiber.Ctx, tx *gorm.DB, action string, id uuid.UUID, old, next any) error {
	var actor *uuid.UUID
	if uid, ok := authMw.UserIDFromLocals(c); ok {
		actor = &uid
	}
	return infoService.RecordAudit(tx, infoService.AuditEntry{
		UserID:     actor,
		Action:     action,
		EntityType: constants.EntityAppointment,
		EntityID:   id.String(),
		Old:        old,
		New:        next,
		IPAddress:  c.IP(),
		UserAgent:  c.Get(fiber.HeaderUserAgent),
	})
}

// GET /api/appointments?status=&paymentStatus=&userId=&serviceId=
func (h *AppointmentController) GetAppointments(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, helper.DefaultOpts)

	status, err := helper.QueryEnum(c, "status", apptModel.AppointmentStatuses)
	if err != nil {
		return err
	}
	payment, err := helper.QueryEnum(c, "paymentStatus", apptModel.PaymentStatuses)
	if err != nil {
		return err
	}
	userID, err := helper.QueryUUID(c, "userId")
	if err != nil {
		return err
	}
	serviceID, err := helper.QueryInt(c, "serviceId")
	if err != nil {
		return err
	}

	q := h.db(c).Model(&apptModel.AppointmentModel{})
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	if payment != nil {
		q = q.Where("payment_status = ?", *payment)
	}
	if userID != nil {
		q = q.Where("user_id = ?", *userID)
	}
	if serviceID != nil {
		q = q.Where("service_id = ?", *serviceID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return err
	}

	var rows []apptModel.AppointmentModel
	if err := withService(q).
		Order("created_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return err
	}

	return helper.JsonList(c, fmt.Sprintf("Retrieved %d appointments successfully", len(rows)),
		apptDTO.ToAppointmentDTOs(rows), helper.BuildMeta(total, p))
}

// GET /api/appointments/:id
func (h *AppointmentController) GetAppointment(c *fiber.Ctx) error {
	id, err := helper.ParamUUID(c, "id", msgAppointmentNotFound)
	if err != nil {
		return err
	}
	appt, err := h.reload(c, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(msgAppointmentNotFound)
		}
		return err
	}

	details, err := srService.LoadDetails(h.db(c), appt.ID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Appointment retrieved successfully", apptDTO.ToAppointmentDetailDTO(appt, details))
}

// GET /api/appointments/reference/:referenceNumber
func (h *AppointmentController) GetByReference(c *fiber.Ctx) error {
	var appt apptModel.AppointmentModel
	if err := withService(h.db(c)).
		First(&appt, "reference_number = ?", c.Params("referenceNumber")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(msgAppointmentNotFound)
		}
		return err
	}
	details, err := srService.LoadDetails(h.db(c), appt.ID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Appointment retrieved successfully", apptDTO.ToAppointmentDetailDTO(&appt, details))
}

// POST /api/appointments
func (h *AppointmentController) CreateAppointment(c *fiber.Ctx) error {
	var req apptDTO.CreateAppointmentRequest
	if err := helper.ParseAndValidate(c, validateAppointment, &req); err != nil {
		return err
	}

	db := h.db(c)

	var userCount int64
	if err := db.Model(&uModel.UserModel{}).Where("id = ?", req.UserID).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount == 0 {
		return helper.BadRequest("User not found")
	}

	var service csModel.CityServiceModel
	if err := db.First(&service, req.ServiceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.BadRequest("Service not found")
		}
		return err
	}
	if !service.IsActive {
		return helper.BadRequest("Service is not available")
	}

	now := dbtime.NowUTC()
	appt := apptModel.AppointmentModel{
		UserID:          req.UserID,
		ServiceID:       service.ID,
		ReferenceNumber: helper.GenerateReferenceNumber(helper.AppointmentRefPrefix, now),
		Status:          apptModel.StatusPending,
		TotalFee:        service.Fee,
		PaymentStatus:   apptModel.PaymentPending,
	}
	req.ApplyTo(&appt)

	if err := db.Create(&appt).Error; err != nil {
		return err
	}

	created, err := h.reload(c, appt.ID)
	if err != nil {
		return err
	}

	log.Info().Str("appointment_id", appt.ID.String()).Str("reference", appt.ReferenceNumber).Msg("appointment created")
	return helper.JsonCreated(c, "/api/appointments/"+appt.ID.String(), "Appointment created successfully",
		apptDTO.ToAppointmentDTO(created))
}

// PUT /api/appointments/:id
func (h *AppointmentController) UpdateAppointment(c *fiber.Ctx) error {
	appt, err := h.findAppointment(c)
	if err != nil {
		return err
	}
	if !appt.Status.Editable() {
		return helper.BadRequest("Cannot update appointment that is not in pending status")
	}

	var req apptDTO.UpdateAppointmentRequest
	if err := helper.ParseAndValidate(c, validateAppointment, &req); err != nil {
		return err
	}

	req.ApplyTo(appt)
	if err := h.db(c).Omit(clause.Associations).Save(appt).Error; err != nil {
		return err
	}

	updated, err := h.reload(c, appt.ID)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Appointment updated successfully", apptDTO.ToAppointmentDTO(updated))
}

// DELETE /api/appointments/:id?reason= cancels; the row is kept.
func (h *AppointmentController) CancelAppointment(c *fiber.Ctx) error {
	appt, err := h.findAppointment(c)
	if err != nil {
		return err
	}
	if !appt.Status.Cancellable() {
		return helper.BadRequest("Cannot cancel appointment that is not in pending or confirmed status")
	}

	var req apptDTO.CancelAppointmentRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return helper.InvalidBody(err)
		}
	}
	if r := c.Query("reason"); r != "" {
		req.Reason = &r
	}
	if err := validateAppointment.Struct(&req); err != nil {
		return err
	}

	previous := appt.Status
	now := dbtime.NowUTC()
	err = h.db(c).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(appt).Updates(map[string]any{
			"status":              apptModel.StatusCancelled,
			"cancelled_at":        now,
			"cancellation_reason": req.Reason,
		}).Error; err != nil {
			return err
		}
		return h.audit(c, tx, constants.ActionCancel, appt.ID,
			fiber.Map{"status": previous},
			fiber.Map{"status": apptModel.StatusCancelled, "reason": req.Reason})
	})
	if err != nil {
		return err
	}

	log.Info().Str("appointment_id", appt.ID.String()).Msg("appointment cancelled")
	return helper.JsonDeleted(c, "Appointment cancelled successfully")
}

// PATCH /api/appointments/:id/status
func (h *AppointmentController) UpdateAppointmentStatus(c *fiber.Ctx) error {
	appt, err := h.findAppointment(c)
	if err != nil {
		return err
	}

	var req apptDTO.UpdateAppointmentStatusRequest
	if err := helper.ParseAndValidate(c, validateAppointment, &req); err != nil {
		return err
	}
	if !appt.Status.CanTransitionTo(req.Status) {
		return helper.BadRequest(fmt.Sprintf("Cannot change appointment status from %s to %s", appt.Status, req.Status))
	}

	previous := appt.Status
	now := dbtime.NowUTC()
	changes := map[string]any{"status": req.Status}
	switch req.Status {
	case apptModel.StatusCompleted:
		changes["completed_at"] = now
	case apptModel.StatusCancelled:
		changes["cancelled_at"] = now
	}
	if req.Notes != nil {
		changes["notes"] = *req.Notes
	}

	err = h.db(c).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(appt).Updates(changes).Error; err != nil {
			return err
		}
		return h.audit(c, tx, constants.ActionStatusChange, appt.ID,
			fiber.Map{"status": previous},
			fiber.Map{"status": req.Status, "notes": req.Notes})
	})
	if err != nil {
		return err
	}

	updated, err := h.reload(c, appt.ID)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Appointment status updated successfully", apptDTO.ToAppointmentDTO(updated))
}

// PATCH /api/appointments/:id/payment-status
func (h *AppointmentController) UpdatePaymentStatus(c *fiber.Ctx) error {
	appt, err := h.findAppointment(c)
	if err != nil {
		return err
	}

	var req apptDTO.UpdatePaymentStatusRequest
	if err := helper.ParseAndValidate(c, validateAppointment, &req); err != nil {
		return err
	}

	previous := appt.PaymentStatus
	err = h.db(c).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(appt).Update("payment_status", req.PaymentStatus).Error; err != nil {
			return err
		}
		return h.audit(c, tx, constants.ActionPaymentStatusChange, appt.ID,
			fiber.Map{"paymentStatus": previous},
			fiber.Map{"paymentStatus": req.PaymentStatus})
	})
	if err != nil {
		return err
	}

	updated, err := h.reload(c, appt.ID)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Payment status updated successfully", apptDTO.ToAppointmentDTO(updated))
}

// GET /api/appointments/statuses
func (h *AppointmentController) GetStatuses(c *fiber.Ctx) error {
	return helper.JsonOK(c, "Appointment statuses retrieved successfully",
		helper.EnumOptions(apptModel.AppointmentStatuses))
}

// GET /api/appointments/payment-statuses
func (h *AppointmentController) GetPaymentStatuses(c *fiber.Ctx) error {
	return helper.JsonOK(c, "Payment statuses retrieved successfully",
		helper.EnumOptions(apptModel.PaymentStatuses))
}
