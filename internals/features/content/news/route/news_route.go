package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	newsController "alisto_backend/internals/features/content/news/controller"
	"alisto_backend/internals/helpers/storage"
)

func NewsRoutes(api fiber.Router, db *gorm.DB, store storage.FileStorage) {
	ctrl := newsController.NewNewsController(db, store)

	g := api.Group("/news")
	g.Get("/featured", ctrl.GetFeaturedNews)
	g.Get("/trending", ctrl.GetTrendingNews)
	g.Get("/categories", ctrl.GetCategories)

	g.Get("/", ctrl.GetNews)
	g.Post("/", ctrl.CreateNews)
	g.Post("/with-image", ctrl.CreateNewsWithImage)
	g.Get("/:id", ctrl.GetNewsArticle)
	g.Put("/:id", ctrl.UpdateNews)
	g.Put("/:id/with-image", ctrl.UpdateNewsWithImage)
	g.Delete("/:id", ctrl.DeleteNews)
	g.Patch("/:id/publish", ctrl.PublishNews)
	g.Patch("/:id/unpublish", ctrl.UnpublishNews)
	g.Patch("/:id/archive", ctrl.ArchiveNews)
}
