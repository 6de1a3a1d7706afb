package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"alisto_backend/internals/configs"
	infoRoute "alisto_backend/internals/features/information/route"
	authRoute "alisto_backend/internals/features/users/auth/route"
	userRoute "alisto_backend/internals/features/users/user/route"
)

func UserRoutes(api fiber.Router, db *gorm.DB) {
	userRoute.UserRoutes(api, db)
}

// AuthRoutes gets its own, stricter limiter.
func AuthRoutes(api fiber.Router, db *gorm.DB, cfg configs.AuthConfig, limiter fiber.Handler) {
	authRoute.AuthRoutes(api, db, cfg, limiter)
}

func InformationRoutes(api fiber.Router, db *gorm.DB) {
	infoRoute.InformationRoutes(api, db)
}
