package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	srController "alisto_backend/internals/features/services/service_requests/controller"
)

// ServiceRequestRoutes mounts the six specialized request resources.
func ServiceRequestRoutes(api fiber.Router, db *gorm.DB) {
	srController.NewCivilRegistryController(db).Mount(api.Group("/civilregistry"))
	srController.NewBusinessPermitController(db).Mount(api.Group("/businesspermits"))
	srController.NewHealthServiceController(db).Mount(api.Group("/healthservices"))
	srController.NewEducationServiceController(db).Mount(api.Group("/educationservices"))
	srController.NewSocialServiceController(db).Mount(api.Group("/socialservices"))
	srController.NewTaxServiceController(db).Mount(api.Group("/taxservices"))
}
