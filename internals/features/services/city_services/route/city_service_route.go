package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	csController "alisto_backend/internals/features/services/city_services/controller"
)

func CityServiceRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := csController.NewCityServiceController(db)

	g := api.Group("/cityservices")
	g.Get("/categories", ctrl.ListCategories)
	g.Get("/categories/:id", ctrl.GetCategory)
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
}
