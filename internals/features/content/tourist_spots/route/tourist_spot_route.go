package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	tsController "alisto_backend/internals/features/content/tourist_spots/controller"
	"alisto_backend/internals/helpers/storage"
)

func TouristSpotRoutes(api fiber.Router, db *gorm.DB, store storage.FileStorage) {
	ctrl := tsController.NewTouristSpotController(db, store)

	g := api.Group("/touristspots")
	g.Get("/", ctrl.GetTouristSpots)
	g.Post("/", ctrl.CreateTouristSpot)
	g.Post("/with-image", ctrl.CreateTouristSpotWithImage)
	g.Get("/:id", ctrl.GetTouristSpot)
	g.Put("/:id", ctrl.UpdateTouristSpot)
	g.Put("/:id/with-image", ctrl.UpdateTouristSpotWithImage)
	g.Delete("/:id", ctrl.DeleteTouristSpot)
	g.Patch("/:id/activate", ctrl.ActivateTouristSpot)
	g.Patch("/:id/deactivate", ctrl.DeactivateTouristSpot)
}
