package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	apptRoute "alisto_backend/internals/features/services/appointments/route"
	csRoute "alisto_backend/internals/features/services/city_services/route"
	srRoute "alisto_backend/internals/features/services/service_requests/route"
)

// ServicesRoutes mounts the city service catalogue, appointments and the
// specialized request families.
func ServicesRoutes(api fiber.Router, db *gorm.DB) {
	csRoute.CityServiceRoutes(api, db)
	apptRoute.AppointmentRoutes(api, db)
	srRoute.ServiceRequestRoutes(api, db)
}
