package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"alisto_backend/internals/configs"
	authController "alisto_backend/internals/features/users/auth/controller"
	authMw "alisto_backend/internals/middlewares/auth"
)

// AuthRoutes mounts /auth. limiter guards login and register; pass nil to
// disable it (tests).
func AuthRoutes(api fiber.Router, db *gorm.DB, cfg configs.AuthConfig, limiter fiber.Handler) {
	ctrl := authController.NewAuthController(db, cfg)

	auth := api.Group("/auth")

	if limiter != nil {
		auth.Post("/login", limiter, ctrl.Login)
		auth.Post("/register", limiter, ctrl.Register)
	} else {
		auth.Post("/login", ctrl.Login)
		auth.Post("/register", ctrl.Register)
	}
	auth.Post("/logout", ctrl.Logout)
	auth.Post("/refresh", ctrl.Refresh)
	auth.Get("/me", authMw.AuthMiddleware(db, cfg.JWTSecret), ctrl.Me)
}
