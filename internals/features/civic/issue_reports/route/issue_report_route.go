package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	irController "alisto_backend/internals/features/civic/issue_reports/controller"
	"alisto_backend/internals/helpers/storage"
)

func IssueReportRoutes(api fiber.Router, db *gorm.DB, store storage.FileStorage) {
	ctrl := irController.NewIssueReportController(db, store)

	g := api.Group("/issuereports")
	g.Get("/categories", ctrl.GetCategories)
	g.Get("/statuses", ctrl.GetStatuses)
	g.Get("/urgency-levels", ctrl.GetUrgencyLevels)
	g.Get("/reference/:referenceNumber", ctrl.GetByReference)

	g.Get("/", ctrl.GetIssueReports)
	g.Post("/", ctrl.CreateIssueReport)
	g.Get("/:id", ctrl.GetIssueReport)
	g.Put("/:id", ctrl.UpdateIssueReport)
	g.Delete("/:id", ctrl.DeleteIssueReport)
	g.Patch("/:id/status", ctrl.UpdateIssueStatus)
	g.Post("/:id/photos", ctrl.AddPhoto)
	g.Post("/:id/updates", ctrl.AddUpdate)
}
