package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	apptController "alisto_backend/internals/features/services/appointments/controller"
)

func AppointmentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := apptController.NewAppointmentController(db)

	g := api.Group("/appointments")
	g.Get("/statuses", ctrl.GetStatuses)
	g.Get("/payment-statuses", ctrl.GetPaymentStatuses)
	g.Get("/reference/:referenceNumber", ctrl.GetByReference)

	g.Get("/", ctrl.GetAppointments)
	g.Post("/", ctrl.CreateAppointment)
	g.Get("/:id", ctrl.GetAppointment)
	g.Put("/:id", ctrl.UpdateAppointment)
	g.Delete("/:id", ctrl.CancelAppointment)
	g.Patch("/:id/status", ctrl.UpdateAppointmentStatus)
	g.Patch("/:id/payment-status", ctrl.UpdatePaymentStatus)
}
