package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	irRoute "alisto_backend/internals/features/civic/issue_reports/route"
	ppRoute "alisto_backend/internals/features/civic/public_projects/route"
	"alisto_backend/internals/helpers/storage"
)

func CivicRoutes(api fiber.Router, db *gorm.DB, store storage.FileStorage) {
	irRoute.IssueReportRoutes(api, db, store)
	ppRoute.PublicProjectRoutes(api, db)
}
