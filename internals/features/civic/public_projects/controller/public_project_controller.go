package controller

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"alisto_backend/internals/constants"
	ppDTO "alisto_backend/internals/features/civic/public_projects/dto"
	ppModel "alisto_backend/internals/features/civic/public_projects/model"
	infoService "alisto_backend/internals/features/information/service"
	helper "alisto_backend/internals/helpers"
	"alisto_backend/internals/helpers/dbtime"
	authMw "alisto_backend/internals/middlewares/auth"
)

type PublicProjectController struct {
	DB *gorm.DB
}

func NewPublicProjectController(db *gorm.DB) *PublicProjectController {
	return &PublicProjectController{DB: db}
}

var validateProject = helper.NewValidator()

const msgProjectNotFound = "Public project not found"

func (h *PublicProjectController) db(c *fiber.Ctx) *gorm.DB {
	return h.DB.WithContext(c.UserContext())
}

func (h *PublicProjectController) findProject(c *fiber.Ctx) (*ppModel.PublicProjectModel, error) {
	id, err := helper.ParamInt(c, "id", msgProjectNotFound)
	if err != nil {
		return nil, err
	}
	var project ppModel.PublicProjectModel
	if err := h.db(c).First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.NotFound(msgProjectNotFound)
		}
		return nil, err
	}
	return &project, nil
}

func (h *PublicProjectController) bind(c *fiber.Ctx) (*ppDTO.PublicProjectRequest, error) {
	var req ppDTO.PublicProjectRequest
	if err := helper.ParseAndValidate(c, validateProject, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

// GET /api/publicprojects?status=&isPublic=
func (h *PublicProjectController) GetPublicProjects(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, helper.DefaultOpts)

	status, err := helper.QueryEnum(c, "status", ppModel.ProjectStatuses)
	if err != nil {
		return err
	}
	isPublic, err := helper.QueryBool(c, "isPublic")
	if err != nil {
		return err
	}

	q := h.db(c).Model(&ppModel.PublicProjectModel{})
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	if isPublic != nil {
		q = q.Where("is_public = ?", *isPublic)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return err
	}

	var rows []ppModel.PublicProjectModel
	if err := q.Order("start_date DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return err
	}

	return helper.JsonList(c, fmt.Sprintf("Retrieved %d public projects successfully", len(rows)),
		ppDTO.ToPublicProjectDTOs(rows), helper.BuildMeta(total, p))
}

// GET /api/publicprojects/:id
func (h *PublicProjectController) GetPublicProject(c *fiber.Ctx) error {
	project, err := h.findProject(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Public project retrieved successfully", ppDTO.ToPublicProjectDTO(project))
}

// POST /api/publicprojects
func (h *PublicProjectController) CreatePublicProject(c *fiber.Ctx) error {
	req, err := h.bind(c)
	if err != nil {
		return err
	}
	project := req.ToModel()
	project.SettleCompletion(dbtime.NowUTC())
	if err := h.db(c).Create(project).Error; err != nil {
		return err
	}
	log.Info().Int("project_id", project.ID).Msg("public project created")
	return helper.JsonCreated(c, "/api/publicprojects/"+strconv.Itoa(project.ID), "Public project created successfully",
		ppDTO.ToPublicProjectDTO(project))
}

// PUT /api/publicprojects/:id
func (h *PublicProjectController) UpdatePublicProject(c *fiber.Ctx) error {
	project, err := h.findProject(c)
	if err != nil {
		return err
	}
	req, err := h.bind(c)
	if err != nil {
		return err
	}
	req.ApplyTo(project)
	project.SettleCompletion(dbtime.NowUTC())
	if err := h.db(c).Save(project).Error; err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Public project updated successfully", ppDTO.ToPublicProjectDTO(project))
}

// DELETE /api/publicprojects/:id
func (h *PublicProjectController) DeletePublicProject(c *fiber.Ctx) error {
	project, err := h.findProject(c)
	if err != nil {
		return err
	}
	if err := h.db(c).Delete(project).Error; err != nil {
		return err
	}
	return helper.JsonDeleted(c, "Public project deleted successfully")
}

// PATCH /api/publicprojects/:id/status
func (h *PublicProjectController) UpdateProjectStatus(c *fiber.Ctx) error {
	project, err := h.findProject(c)
	if err != nil {
		return err
	}

	var req ppDTO.UpdateProjectStatusRequest
	if err := helper.ParseAndValidate(c, validateProject, &req); err != nil {
		return err
	}
	if !project.Status.CanTransitionTo(req.Status) {
		return helper.BadRequest(fmt.Sprintf("Cannot change project status from %s to %s", project.Status, req.Status))
	}

	old := fiber.Map{"status": project.Status, "progress": project.Progress}
	changes := map[string]any{"status": req.Status}
	if req.Progress != nil {
		changes["progress"] = *req.Progress
	}
	if req.Status == ppModel.StatusCompleted {
		changes["actual_end_date"] = dbtime.NowUTC()
		changes["progress"] = 100
	}

	var actor *uuid.UUID
	if uid, ok := authMw.UserIDFromLocals(c); ok {
		actor = &uid
	}
	err = h.db(c).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(project).Updates(changes).Error; err != nil {
			return err
		}
		return infoService.RecordAudit(tx, infoService.AuditEntry{
			UserID:     actor,
			Action:     constants.ActionStatusChange,
			EntityType: constants.EntityPublicProject,
			EntityID:   strconv.Itoa(project.ID),
			Old:        old,
			New:        changes,
			IPAddress:  c.IP(),
			UserAgent:  c.Get(fiber.HeaderUserAgent),
		})
	})
	if err != nil {
		return err
	}

	var fresh ppModel.PublicProjectModel
	if err := h.db(c).First(&fresh, project.ID).Error; err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Public project status updated successfully", ppDTO.ToPublicProjectDTO(&fresh))
}

// GET /api/publicprojects/statuses
func (h *PublicProjectController) GetStatuses(c *fiber.Ctx) error {
	return helper.JsonOK(c, "Project statuses retrieved successfully", helper.EnumOptions(ppModel.ProjectStatuses))
}
