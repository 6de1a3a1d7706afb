package controller

import (
	"errors"
	"fmt"
	"mime/multipart"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"alisto_backend/internals/constants"
	tsDTO "alisto_backend/internals/features/content/tourist_spots/dto"
	tsModel "alisto_backend/internals/features/content/tourist_spots/model"
	infoService "alisto_backend/internals/features/information/service"
	helper "alisto_backend/internals/helpers"
	"alisto_backend/internals/helpers/storage"
	authMw "alisto_backend/internals/middlewares/auth"
)

type TouristSpotController struct {
	DB      *gorm.DB
	Storage storage.FileStorage
}

func NewTouristSpotController(db *gorm.DB, store storage.FileStorage) *TouristSpotController {
	return &TouristSpotController{DB: db, Storage: store}
}

var validateTouristSpot = helper.NewValidator()

const msgSpotNotFound = "Tourist spot not found"

func (h *TouristSpotController) db(c *fiber.Ctx) *gorm.DB {
	return h.DB.WithContext(c.UserContext())
}

func (h *TouristSpotController) findSpot(c *fiber.Ctx) (*tsModel.TouristSpotModel, error) {
	id, err := helper.ParamInt(c, "id", msgSpotNotFound)
	if err != nil {
		return nil, err
	}
	var spot tsModel.TouristSpotModel
	if err := h.db(c).First(&spot, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.NotFound(msgSpotNotFound)
		}
		return nil, err
	}
	return &spot, nil
}

func (h *TouristSpotController) bindJSON(c *fiber.Ctx) (*tsDTO.TouristSpotFields, error) {
	var f tsDTO.TouristSpotFields
	if err := helper.ParseAndValidate(c, validateTouristSpot, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (h *TouristSpotController) bindForm(c *fiber.Ctx) (*tsDTO.TouristSpotFields, *multipart.FileHeader, error) {
	fh, err := storage.GetImageFile(c, "image")
	if err != nil {
		return nil, nil, err
	}
	var f tsDTO.TouristSpotFields
	if err := c.BodyParser(&f); err != nil {
		return nil, nil, helper.InvalidBody(err)
	}
	f.Highlights = storage.FormStrings(c, "highlights")
	f.Normalize()
	if err := validateTouristSpot.Struct(&f); err != nil {
		return nil, nil, err
	}
	return &f, fh, nil
}

func (h *TouristSpotController) recordImage(c *fiber.Ctx, stored *storage.StoredFile, spotID int) {
	if stored == nil {
		return
	}
	var uploader *uuid.UUID
	if uid, ok := authMw.UserIDFromLocals(c); ok {
		uploader = &uid
	}
	if err := infoService.RecordUpload(h.db(c), stored, constants.EntityTouristSpot, strconv.Itoa(spotID), uploader); err != nil {
		log.Warn().Err(err).Int("spot_id", spotID).Msg("file upload not recorded")
	}
}

func (h *TouristSpotController) dropImage(c *fiber.Ctx, url string) {
	if url == "" {
		return
	}
	storage.DeleteQuietly(c.UserContext(), h.Storage, url)
	if err := infoService.ForgetUpload(h.db(c), url); err != nil {
		log.Warn().Err(err).Str("url", url).Msg("file upload row not removed")
	}
}

// GET /api/touristspots?isActive=
func (h *TouristSpotController) GetTouristSpots(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, helper.DefaultOpts)

	active, err := helper.QueryBool(c, "isActive")
	if err != nil {
		return err
	}

	q := h.db(c).Model(&tsModel.TouristSpotModel{})
	if active != nil {
		q = q.Where("is_active = ?", *active)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return err
	}

	var rows []tsModel.TouristSpotModel
	if err := q.Order("name ASC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return err
	}

	return helper.JsonList(c, fmt.Sprintf("Retrieved %d tourist spots successfully", len(rows)),
		tsDTO.ToTouristSpotDTOs(rows), helper.BuildMeta(total, p))
}

// GET /api/touristspots/:id counts a view on every call.
func (h *TouristSpotController) GetTouristSpot(c *fiber.Ctx) error {
	spot, err := h.findSpot(c)
	if err != nil {
		return err
	}

	spot.ViewCount++
	if err := h.db(c).Model(spot).UpdateColumn("view_count", spot.ViewCount).Error; err != nil {
		return err
	}

	return helper.JsonOK(c, "Tourist spot retrieved successfully", tsDTO.ToTouristSpotDTO(spot))
}

// POST /api/touristspots
func (h *TouristSpotController) CreateTouristSpot(c *fiber.Ctx) error {
	f, err := h.bindJSON(c)
	if err != nil {
		return err
	}
	spot := f.ToModel()
	if err := h.db(c).Create(spot).Error; err != nil {
		return err
	}
	log.Info().Int("spot_id", spot.ID).Msg("tourist spot created")
	return helper.JsonCreated(c, "/api/touristspots/"+strconv.Itoa(spot.ID), "Tourist spot created successfully",
		tsDTO.ToTouristSpotDTO(spot))
}

// POST /api/touristspots/with-image
func (h *TouristSpotController) CreateTouristSpotWithImage(c *fiber.Ctx) error {
	f, fh, err := h.bindForm(c)
	if err != nil {
		return err
	}

	stored := storage.TryUpload(c.UserContext(), h.Storage, fh, constants.FolderTouristSpots)
	spot := f.ToModel()
	if stored != nil {
		spot.ImageURL = stored.URL
	}
	if err := h.db(c).Create(spot).Error; err != nil {
		if stored != nil {
			storage.DeleteQuietly(c.UserContext(), h.Storage, stored.URL)
		}
		return err
	}
	h.recordImage(c, stored, spot.ID)

	log.Info().Int("spot_id", spot.ID).Bool("image", stored != nil).Msg("tourist spot created")
	return helper.JsonCreated(c, "/api/touristspots/"+strconv.Itoa(spot.ID), "Tourist spot created successfully",
		tsDTO.ToTouristSpotDTO(spot))
}

// PUT /api/touristspots/:id
func (h *TouristSpotController) UpdateTouristSpot(c *fiber.Ctx) error {
	spot, err := h.findSpot(c)
	if err != nil {
		return err
	}
	f, err := h.bindJSON(c)
	if err != nil {
		return err
	}

	f.ApplyTo(spot)
	spot.ImageURL = f.ImageURL
	if err := h.db(c).Save(spot).Error; err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Tourist spot updated successfully", tsDTO.ToTouristSpotDTO(spot))
}

// PUT /api/touristspots/:id/with-image keeps the current image unless a new one is stored.
func (h *TouristSpotController) UpdateTouristSpotWithImage(c *fiber.Ctx) error {
	spot, err := h.findSpot(c)
	if err != nil {
		return err
	}
	f, fh, err := h.bindForm(c)
	if err != nil {
		return err
	}

	stored := storage.TryUpload(c.UserContext(), h.Storage, fh, constants.FolderTouristSpots)
	previous := spot.ImageURL

	f.ApplyTo(spot)
	if stored != nil {
		spot.ImageURL = stored.URL
	}
	if err := h.db(c).Save(spot).Error; err != nil {
		if stored != nil {
			storage.DeleteQuietly(c.UserContext(), h.Storage, stored.URL)
		}
		return err
	}
	if stored != nil {
		h.dropImage(c, previous)
		h.recordImage(c, stored, spot.ID)
	}

	return helper.JsonUpdated(c, "Tourist spot updated successfully", tsDTO.ToTouristSpotDTO(spot))
}

// DELETE /api/touristspots/:id
func (h *TouristSpotController) DeleteTouristSpot(c *fiber.Ctx) error {
	spot, err := h.findSpot(c)
	if err != nil {
		return err
	}
	if err := h.db(c).Delete(spot).Error; err != nil {
		return err
	}
	h.dropImage(c, spot.ImageURL)
	return helper.JsonDeleted(c, "Tourist spot deleted successfully")
}

func (h *TouristSpotController) setActive(c *fiber.Ctx, active bool, msg string) error {
	spot, err := h.findSpot(c)
	if err != nil {
		return err
	}
	if err := h.db(c).Model(spot).Update("is_active", active).Error; err != nil {
		return err
	}
	spot.IsActive = active
	return helper.JsonUpdated(c, msg, tsDTO.ToTouristSpotDTO(spot))
}

// PATCH /api/touristspots/:id/activate
func (h *TouristSpotController) ActivateTouristSpot(c *fiber.Ctx) error {
	return h.setActive(c, true, "Tourist spot activated successfully")
}

// PATCH /api/touristspots/:id/deactivate
func (h *TouristSpotController) DeactivateTouristSpot(c *fiber.Ctx) error {
	return h.setActive(c, false, "Tourist spot deactivated successfully")
}
