package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	newsRoute "alisto_backend/internals/features/content/news/route"
	tsRoute "alisto_backend/internals/features/content/tourist_spots/route"
	"alisto_backend/internals/helpers/storage"
)

func ContentRoutes(api fiber.Router, db *gorm.DB, store storage.FileStorage) {
	newsRoute.NewsRoutes(api, db, store)
	tsRoute.TouristSpotRoutes(api, db, store)
}
