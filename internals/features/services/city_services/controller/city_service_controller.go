package controller

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	csDTO "alisto_backend/internals/features/services/city_services/dto"
	csModel "alisto_backend/internals/features/services/city_services/model"
	helper "alisto_backend/internals/helpers"
)

type CityServiceController struct {
	DB *gorm.DB
}

func NewCityServiceController(db *gorm.DB) *CityServiceController {
	return &CityServiceController{DB: db}
}

// GET /api/cityservices?categoryId=&isActive=
func (h *CityServiceController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, helper.DefaultOpts)

	categoryID, err := helper.QueryInt(c, "categoryId")
	if err != nil {
		return err
	}
	isActive, err := helper.QueryBool(c, "isActive")
	if err != nil {
		return err
	}

	q := h.DB.WithContext(c.UserContext()).Model(&csModel.CityServiceModel{})
	if categoryID != nil {
		q = q.Where("category_id = ?", *categoryID)
	}
	if isActive != nil {
		q = q.Where("is_active = ?", *isActive)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return err
	}

	var rows []csModel.CityServiceModel
	if err := q.Preload("Category").
		Order("category_id ASC, name ASC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return err
	}

	return helper.JsonList(c, fmt.Sprintf("Retrieved %d city services successfully", len(rows)),
		csDTO.ToCityServiceDTOs(rows), helper.BuildMeta(total, p))
}

// GET /api/cityservices/:id
func (h *CityServiceController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParamInt(c, "id", "City service not found")
	if err != nil {
		return err
	}
	var row csModel.CityServiceModel
	if err := h.DB.WithContext(c.UserContext()).Preload("Category").First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound("City service not found")
		}
		return err
	}
	return helper.JsonOK(c, "City service retrieved successfully", csDTO.ToCityServiceDTO(&row))
}

// GET /api/cityservices/categories
func (h *CityServiceController) ListCategories(c *fiber.Ctx) error {
	var rows []csModel.ServiceCategoryModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("is_active = ?", true).
		Preload("Services", "is_active = ?", true).
		Order("sort_order ASC").
		Find(&rows).Error; err != nil {
		return err
	}
	return helper.JsonOK(c, fmt.Sprintf("Retrieved %d service categories successfully", len(rows)),
		csDTO.ToServiceCategoryDTOs(rows))
}

// GET /api/cityservices/categories/:id
func (h *CityServiceController) GetCategory(c *fiber.Ctx) error {
	id, err := helper.ParamInt(c, "id", "Service category not found")
	if err != nil {
		return err
	}
	var row csModel.ServiceCategoryModel
	if err := h.DB.WithContext(c.UserContext()).
		Preload("Services", "is_active = ?", true).
		First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound("Service category not found")
		}
		return err
	}
	return helper.JsonOK(c, "Service category retrieved successfully", csDTO.ToServiceCategoryDTO(&row))
}
