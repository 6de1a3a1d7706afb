package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apptModel "alisto_backend/internals/features/services/appointments/model"
	srModel "alisto_backend/internals/features/services/service_requests/model"
	srService "alisto_backend/internals/features/services/service_requests/service"
	helper "alisto_backend/internals/helpers"
)

var validateRequest = helper.NewValidator()

// requestModel pins PM to *M so handlers can allocate rows and still call
// the Request methods.
type requestModel[M any] interface {
	*M
	srModel.Request
}

// Creator is a decoded POST body.
type Creator[PM any] interface {
	ToModel() PM
}

// Updater is a decoded PUT body.
type Updater[PM any] interface {
	ApplyTo(PM)
}

// RequestController serves one specialized request table. The six tables
// share the same handlers and differ only in their body types and type filter.
type RequestController[M any, PM requestModel[M]] struct {
	DB   *gorm.DB
	Kind srModel.RequestKind
	Path string // e.g. "/api/civilregistry"

	TypeParam  string // query key of the type filter
	TypeColumn string
	TypeValues []string

	NewCreate func() Creator[PM]
	NewUpdate func() Updater[PM]
	ToDTO     func(PM) any
}

func (h *RequestController[M, PM]) table() string {
	return PM(new(M)).TableName()
}

func (h *RequestController[M, PM]) title() string {
	return srService.Title(h.Kind)
}

func (h *RequestController[M, PM]) find(c *fiber.Ctx, preload bool) (PM, error) {
	id, err := helper.ParamUUID(c, "id", h.title()+" not found")
	if err != nil {
		return nil, err
	}
	q := h.DB.WithContext(c.UserContext())
	if preload {
		q = q.Preload("Appointment.User")
	}
	row := PM(new(M))
	if err := q.First(row, "appointment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.NotFound(h.title() + " not found")
		}
		return nil, err
	}
	return row, nil
}

// GET ?userId=&<type>=&status=
func (h *RequestController[M, PM]) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, helper.DefaultOpts)
	table := h.table()

	userID, err := helper.QueryUUID(c, "userId")
	if err != nil {
		return err
	}
	status, err := helper.QueryEnum(c, "status", apptModel.AppointmentStatuses)
	if err != nil {
		return err
	}

	q := h.DB.WithContext(c.UserContext()).
		Model(PM(new(M))).
		Joins("JOIN appointments ON appointments.id = " + table + ".appointment_id")
	if userID != nil {
		q = q.Where("appointments.user_id = ?", *userID)
	}
	if status != nil {
		q = q.Where("appointments.status = ?", *status)
	}
	if raw := strings.TrimSpace(c.Query(h.TypeParam)); raw != "" {
		v, ok := helper.ParseEnum(raw, h.TypeValues)
		if !ok {
			return helper.BadRequest("Invalid query parameter", h.TypeParam+": unknown value "+raw)
		}
		q = q.Where(table+"."+h.TypeColumn+" = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return err
	}

	var rows []M
	if err := q.Preload("Appointment.User").
		Order(table + ".created_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return err
	}

	out := make([]any, 0, len(rows))
	for i := range rows {
		out = append(out, h.ToDTO(PM(&rows[i])))
	}
	return helper.JsonList(c, fmt.Sprintf("Retrieved %d %ss successfully", len(rows), strings.ToLower(h.title())),
		out, helper.BuildMeta(total, p))
}

// GET /:id (the appointment id)
func (h *RequestController[M, PM]) GetByID(c *fiber.Ctx) error {
	row, err := h.find(c, true)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, h.title()+" retrieved successfully", h.ToDTO(row))
}

// POST /
func (h *RequestController[M, PM]) Create(c *fiber.Ctx) error {
	body := h.NewCreate()
	if err := helper.ParseAndValidate(c, validateRequest, body); err != nil {
		return err
	}

	row := body.ToModel()
	db := h.DB.WithContext(c.UserContext())
	if err := srService.Attach(db, row); err != nil {
		return err
	}
	if err := db.Preload("Appointment.User").First(row, "appointment_id = ?", row.OwnerID()).Error; err != nil {
		return err
	}

	log.Info().Str("kind", string(h.Kind)).Str("appointment_id", row.OwnerID().String()).Msg("service request created")
	return helper.JsonCreated(c, h.Path+"/"+row.OwnerID().String(), h.title()+" created successfully", h.ToDTO(row))
}

// PUT /:id replaces the request fields.
func (h *RequestController[M, PM]) Update(c *fiber.Ctx) error {
	row, err := h.find(c, false)
	if err != nil {
		return err
	}

	body := h.NewUpdate()
	if err := helper.ParseAndValidate(c, validateRequest, body); err != nil {
		return err
	}
	body.ApplyTo(row)

	db := h.DB.WithContext(c.UserContext())
	if err := db.Omit(clause.Associations).Save(row).Error; err != nil {
		return err
	}
	if err := db.Preload("Appointment.User").First(row, "appointment_id = ?", row.OwnerID()).Error; err != nil {
		return err
	}
	return helper.JsonUpdated(c, h.title()+" updated successfully", h.ToDTO(row))
}

// DELETE /:id removes the request only; the appointment stays.
func (h *RequestController[M, PM]) Delete(c *fiber.Ctx) error {
	row, err := h.find(c, false)
	if err != nil {
		return err
	}
	if err := h.DB.WithContext(c.UserContext()).Delete(row).Error; err != nil {
		return err
	}
	return helper.JsonDeleted(c, h.title()+" deleted successfully")
}

// Mount registers the CRUD routes on g.
func (h *RequestController[M, PM]) Mount(g fiber.Router) {
	g.Get("/", h.List)
	g.Post("/", h.Create)
	g.Get("/:id", h.GetByID)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}

func enumStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
