package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"alisto_backend/internals/constants"
	irDTO "alisto_backend/internals/features/civic/issue_reports/dto"
	irModel "alisto_backend/internals/features/civic/issue_reports/model"
	infoService "alisto_backend/internals/features/information/service"
	uModel "alisto_backend/internals/features/users/user/model"
	helper "alisto_backend/internals/helpers"
	"alisto_backend/internals/helpers/dbtime"
	"alisto_backend/internals/helpers/storage"
	authMw "alisto_backend/internals/middlewares/auth"
)

type IssueReportController struct {
	DB      *gorm.DB
	Storage storage.FileStorage
}

func NewIssueReportController(db *gorm.DB, store storage.FileStorage) *IssueReportController {
	return &IssueReportController{DB: db, Storage: store}
}

var validateIssue = helper.NewValidator()

const (
	msgIssueNotFound = "Issue report not found"
	systemActor      = "System"
)

func (h *IssueReportController) db(c *fiber.Ctx) *gorm.DB {
	return h.DB.WithContext(c.UserContext())
}

func (h *IssueReportController) findIssue(c *fiber.Ctx) (*irModel.IssueReportModel, error) {
	id, err := helper.ParamUUID(c, "id", msgIssueNotFound)
	if err != nil {
		return nil, err
	}
	var issue irModel.IssueReportModel
	if err := h.db(c).First(&issue, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.NotFound(msgIssueNotFound)
		}
		return nil, err
	}
	return &issue, nil
}

func withPublicTimeline(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Photos", func(tx *gorm.DB) *gorm.DB { return tx.Order("uploaded_at ASC") }).
		Preload("Updates", func(tx *gorm.DB) *gorm.DB {
			return tx.Where("is_public = ?", true).Order("created_at ASC")
		})
}

func (h *IssueReportController) detail(c *fiber.Ctx, id uuid.UUID) (*irModel.IssueReportModel, error) {
	var issue irModel.IssueReportModel
	if err := withPublicTimeline(h.db(c)).First(&issue, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &issue, nil
}

// GET /api/issuereports?category=&status=&priority=&urgencyLevel=&userId=
func (h *IssueReportController) GetIssueReports(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, helper.DefaultOpts)

	category, err := helper.QueryEnum(c, "category", irModel.IssueCategories)
	if err != nil {
		return err
	}
	status, err := helper.QueryEnum(c, "status", irModel.IssueStatuses)
	if err != nil {
		return err
	}
	priority, err := helper.QueryEnum(c, "priority", irModel.Priorities)
	if err != nil {
		return err
	}
	urgency, err := helper.QueryEnum(c, "urgencyLevel", irModel.UrgencyLevels)
	if err != nil {
		return err
	}
	userID, err := helper.QueryUUID(c, "userId")
	if err != nil {
		return err
	}

	q := h.db(c).Model(&irModel.IssueReportModel{}).Where("is_publicly_visible = ?", true)
	if category != nil {
		q = q.Where("category = ?", *category)
	}
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	if priority != nil {
		q = q.Where("priority = ?", *priority)
	}
	if urgency != nil {
		q = q.Where("urgency_level = ?", *urgency)
	}
	if userID != nil {
		q = q.Where("user_id = ?", *userID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return err
	}

	var rows []irModel.IssueReportModel
	if err := q.Preload("Photos").
		Order("created_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return err
	}

	return helper.JsonList(c, fmt.Sprintf("Retrieved %d issue reports successfully", len(rows)),
		irDTO.ToIssueReportDTOs(rows), helper.BuildMeta(total, p))
}

// GET /api/issuereports/:id (public reports only)
func (h *IssueReportController) GetIssueReport(c *fiber.Ctx) error {
	id, err := helper.ParamUUID(c, "id", msgIssueNotFound)
	if err != nil {
		return err
	}
	issue, err := h.detail(c, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(msgIssueNotFound)
		}
		return err
	}
	if !issue.IsPubliclyVisible {
		return helper.NotFound(msgIssueNotFound)
	}
	return helper.JsonOK(c, "Issue report retrieved successfully", irDTO.ToIssueReportDTO(issue))
}

// GET /api/issuereports/reference/:referenceNumber
func (h *IssueReportController) GetByReference(c *fiber.Ctx) error {
	var issue irModel.IssueReportModel
	if err := withPublicTimeline(h.db(c)).
		First(&issue, "reference_number = ?", strings.ToUpper(strings.TrimSpace(c.Params("referenceNumber")))).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(msgIssueNotFound)
		}
		return err
	}
	return helper.JsonOK(c, "Issue report retrieved successfully", irDTO.ToIssueReportDTO(&issue))
}

// POST /api/issuereports
func (h *IssueReportController) CreateIssueReport(c *fiber.Ctx) error {
	var req irDTO.CreateIssueReportRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.InvalidBody(err)
	}
	req.Normalize()
	if req.UserID == nil {
		if uid, ok := authMw.UserIDFromLocals(c); ok {
			req.UserID = &uid
		}
	}
	if err := validateIssue.Struct(&req); err != nil {
		return err
	}

	if req.UserID != nil {
		var n int64
		if err := h.db(c).Model(&uModel.UserModel{}).Where("id = ?", *req.UserID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return helper.BadRequest("User not found")
		}
	}

	issue := req.ToModel(helper.GenerateReferenceNumber(helper.IssueReportRefPrefix, dbtime.NowUTC()))
	err := h.db(c).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(issue).Error; err != nil {
			return err
		}
		return tx.Create(&irModel.IssueUpdateModel{
			IssueReportID: issue.ID,
			UpdatedBy:     systemActor,
			UpdateType:    irModel.UpdateStatusChange,
			Message:       "Issue report submitted",
			IsPublic:      true,
		}).Error
	})
	if err != nil {
		return err
	}

	created, err := h.detail(c, issue.ID)
	if err != nil {
		return err
	}

	log.Info().Str("issue_id", issue.ID.String()).Str("reference", issue.ReferenceNumber).Msg("issue report created")
	return helper.JsonCreated(c, "/api/issuereports/"+issue.ID.String(), "Issue report created successfully",
		irDTO.ToIssueReportDTO(created))
}

// PUT /api/issuereports/:id
func (h *IssueReportController) UpdateIssueReport(c *fiber.Ctx) error {
	issue, err := h.findIssue(c)
	if err != nil {
		return err
	}

	var req irDTO.UpdateIssueReportRequest
	if err := helper.ParseAndValidate(c, validateIssue, &req); err != nil {
		return err
	}

	req.ApplyTo(issue)
	if err := h.db(c).Omit(clause.Associations).Save(issue).Error; err != nil {
		return err
	}

	updated, err := h.detail(c, issue.ID)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Issue report updated successfully", irDTO.ToIssueReportDTO(updated))
}

// DELETE /api/issuereports/:id removes the report with its photos and timeline.
func (h *IssueReportController) DeleteIssueReport(c *fiber.Ctx) error {
	issue, err := h.findIssue(c)
	if err != nil {
		return err
	}

	var photos []irModel.IssuePhotoModel
	err = h.db(c).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("issue_report_id = ?", issue.ID).Find(&photos).Error; err != nil {
			return err
		}
		if err := tx.Where("issue_report_id = ?", issue.ID).Delete(&irModel.IssueUpdateModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("issue_report_id = ?", issue.ID).Delete(&irModel.IssuePhotoModel{}).Error; err != nil {
			return err
		}
		for _, p := range photos {
			if err := infoService.ForgetUpload(tx, p.FilePath); err != nil {
				return err
			}
		}
		return tx.Delete(issue).Error
	})
	if err != nil {
		return err
	}

	for _, p := range photos {
		if !h.Storage.Delete(c.UserContext(), p.FilePath) {
			log.Warn().Str("issue_id", issue.ID.String()).Str("file", p.FilePath).Msg("issue photo not deleted from storage")
		}
	}

	log.Info().Str("issue_id", issue.ID.String()).Int("photos", len(photos)).Msg("issue report deleted")
	return helper.JsonDeleted(c, "Issue report deleted successfully")
}

// PATCH /api/issuereports/:id/status
func (h *IssueReportController) UpdateIssueStatus(c *fiber.Ctx) error {
	issue, err := h.findIssue(c)
	if err != nil {
		return err
	}

	var req irDTO.UpdateIssueStatusRequest
	if err := helper.ParseAndValidate(c, validateIssue, &req); err != nil {
		return err
	}
	if !issue.Status.CanTransitionTo(req.Status) {
		return helper.BadRequest(fmt.Sprintf("Cannot change issue status from %s to %s", issue.Status, req.Status))
	}

	previous := issue.Status
	changes := map[string]any{"status": req.Status}
	if req.AssignedDepartment != nil {
		changes["assigned_department"] = strings.TrimSpace(*req.AssignedDepartment)
	}
	if req.AssignedTo != nil {
		changes["assigned_to"] = strings.TrimSpace(*req.AssignedTo)
	}
	if req.EstimatedResolution != nil {
		changes["estimated_resolution"] = req.EstimatedResolution.UTC()
	}
	if req.Status == irModel.StatusResolved {
		changes["actual_resolution"] = dbtime.NowUTC()
		changes["resolution_notes"] = req.ResolutionNotes
	}

	actor := strings.TrimSpace(req.UpdatedBy)
	if actor == "" {
		actor = systemActor
	}
	message := fmt.Sprintf("Status changed from %s to %s", helper.Humanize(string(previous)), helper.Humanize(string(req.Status)))
	if req.Status == irModel.StatusResolved && req.ResolutionNotes != nil && *req.ResolutionNotes != "" {
		message += ": " + *req.ResolutionNotes
	}

	var userID *uuid.UUID
	if uid, ok := authMw.UserIDFromLocals(c); ok {
		userID = &uid
	}

	err = h.db(c).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(issue).Updates(changes).Error; err != nil {
			return err
		}
		if err := tx.Create(&irModel.IssueUpdateModel{
			IssueReportID: issue.ID,
			UpdatedBy:     actor,
			UpdateType:    irModel.UpdateStatusChange,
			Message:       message,
			IsPublic:      true,
		}).Error; err != nil {
			return err
		}
		return infoService.RecordAudit(tx, infoService.AuditEntry{
			UserID:     userID,
			Action:     constants.ActionStatusChange,
			EntityType: constants.EntityIssueReport,
			EntityID:   issue.ID.String(),
			Old:        fiber.Map{"status": previous},
			New:        changes,
			IPAddress:  c.IP(),
			UserAgent:  c.Get(fiber.HeaderUserAgent),
		})
	})
	if err != nil {
		return err
	}

	updated, err := h.detail(c, issue.ID)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Issue status updated successfully", irDTO.ToIssueReportDTO(updated))
}

// POST /api/issuereports/:id/photos (multipart: photo, caption)
func (h *IssueReportController) AddPhoto(c *fiber.Ctx) error {
	issue, err := h.findIssue(c)
	if err != nil {
		return err
	}

	fh, err := storage.GetImageFile(c, "photo", "image", "file")
	if err != nil {
		return err
	}
	if fh == nil {
		return helper.BadRequest("Photo file is required")
	}

	stored, err := h.Storage.Upload(c.UserContext(), fh, constants.FolderReports)
	if err != nil {
		return storage.UploadError(err)
	}

	var caption *string
	if v := strings.TrimSpace(c.FormValue("caption")); v != "" {
		v = helper.TruncateRunes(v, 200)
		caption = &v
	}
	var uploader *uuid.UUID
	if uid, ok := authMw.UserIDFromLocals(c); ok {
		uploader = &uid
	}

	photo := irModel.IssuePhotoModel{
		IssueReportID: issue.ID,
		FileName:      stored.FileName,
		FilePath:      stored.URL,
		FileSize:      stored.Size,
		MimeType:      stored.ContentType,
		Caption:       caption,
		UploadedAt:    dbtime.NowUTC(),
	}
	err = h.db(c).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&photo).Error; err != nil {
			return err
		}
		return infoService.RecordUpload(tx, stored, constants.EntityIssueReport, issue.ID.String(), uploader)
	})
	if err != nil {
		h.Storage.Delete(c.UserContext(), stored.URL)
		return err
	}

	return helper.JsonCreated(c, "/api/issuereports/"+issue.ID.String(), "Photo uploaded successfully",
		irDTO.ToIssuePhotoDTO(&photo))
}

// POST /api/issuereports/:id/updates
func (h *IssueReportController) AddUpdate(c *fiber.Ctx) error {
	issue, err := h.findIssue(c)
	if err != nil {
		return err
	}

	var req irDTO.CreateIssueUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.InvalidBody(err)
	}
	req.UpdatedBy = strings.TrimSpace(req.UpdatedBy)
	req.Message = strings.TrimSpace(req.Message)
	if err := validateIssue.Struct(&req); err != nil {
		return err
	}

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}
	update := irModel.IssueUpdateModel{
		IssueReportID: issue.ID,
		UpdatedBy:     req.UpdatedBy,
		UpdateType:    req.UpdateType,
		Message:       req.Message,
		IsPublic:      isPublic,
	}
	if err := h.db(c).Create(&update).Error; err != nil {
		return err
	}
	return helper.JsonCreated(c, "/api/issuereports/"+issue.ID.String(), "Issue update added successfully",
		irDTO.ToIssueUpdateDTO(&update))
}

// GET /api/issuereports/categories
func (h *IssueReportController) GetCategories(c *fiber.Ctx) error {
	return helper.JsonOK(c, "Issue categories retrieved successfully", helper.EnumOptions(irModel.IssueCategories))
}

// GET /api/issuereports/statuses
func (h *IssueReportController) GetStatuses(c *fiber.Ctx) error {
	return helper.JsonOK(c, "Issue statuses retrieved successfully", helper.EnumOptions(irModel.IssueStatuses))
}

// GET /api/issuereports/urgency-levels
func (h *IssueReportController) GetUrgencyLevels(c *fiber.Ctx) error {
	return helper.JsonOK(c, "Urgency levels retrieved successfully", helper.EnumOptions(irModel.UrgencyLevels))
}
