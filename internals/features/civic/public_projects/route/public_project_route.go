package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ppController "alisto_backend/internals/features/civic/public_projects/controller"
)

func PublicProjectRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := ppController.NewPublicProjectController(db)

	g := api.Group("/publicprojects")
	g.Get("/statuses", ctrl.GetStatuses)
	g.Get("/", ctrl.GetPublicProjects)
	g.Post("/", ctrl.CreatePublicProject)
	g.Get("/:id", ctrl.GetPublicProject)
	g.Put("/:id", ctrl.UpdatePublicProject)
	g.Delete("/:id", ctrl.DeletePublicProject)
	g.Patch("/:id/status", ctrl.UpdateProjectStatus)
}
