package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	infoController "alisto_backend/internals/features/information/controller"
)

func InformationRoutes(api fiber.Router, db *gorm.DB) {
	info := infoController.NewInformationController(db)
	api.Get("/emergencyhotlines", info.GetEmergencyHotlines)
	api.Get("/systemconfigurations/public", info.GetPublicConfigurations)
	api.Get("/announcements", info.GetAnnouncements)
	api.Get("/auditlogs/:entityType/:entityId", info.GetAuditTrail)

	notif := infoController.NewNotificationController(db)
	n := api.Group("/notifications")
	n.Get("/", notif.GetNotifications)
	n.Get("/unread-count", notif.GetUnreadCount)
	n.Patch("/read-all", notif.MarkAllAsRead)
	n.Patch("/:id/read", notif.MarkAsRead)

	fb := infoController.NewFeedbackController(db)
	f := api.Group("/feedback")
	f.Get("/types", fb.GetFeedbackTypes)
	f.Get("/service", fb.GetServiceFeedback)
	f.Post("/service", fb.CreateServiceFeedback)
	f.Post("/app", fb.CreateAppFeedback)

	dash := infoController.NewDashboardController(db)
	st := api.Group("/statistics")
	st.Get("/dashboard", dash.GetDashboard)
	st.Get("/usage", dash.GetAppUsage)
	st.Get("/services", dash.GetServiceStatistics)
}
