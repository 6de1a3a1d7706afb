package routes

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"alisto_backend/internals/configs"
	"alisto_backend/internals/helpers/storage"
	middlewares "alisto_backend/internals/middlewares"
	authMw "alisto_backend/internals/middlewares/auth"
	routeDetails "alisto_backend/internals/route/details"
)

// Deps is everything the route tree needs.
type Deps struct {
	Config  *configs.Config
	DB      *gorm.DB
	Storage storage.FileStorage
	Log     zerolog.Logger
}

var startTime time.Time

func SetupRoutes(app *fiber.App, d Deps) {
	startTime = time.Now()

	BaseRoutes(app, d.DB, d.Config)

	if local, ok := d.Storage.(*storage.LocalStorage); ok && strings.HasPrefix(local.BaseURL, "/") {
		app.Static(local.BaseURL, local.Root)
	}

	// Authentication is optional on /api: a valid bearer token only
	// identifies the actor for audit and upload records.
	api := app.Group("/api", authMw.OptionalAuth(d.Config.Auth.JWTSecret))

	d.Log.Info().Msg("mounting auth and user routes")
	routeDetails.AuthRoutes(api, d.DB, d.Config.Auth,
		middlewares.AuthRateLimiter(d.Config.HTTP.AuthRateLimitMax, d.Config.HTTP.RateLimitWindow))
	routeDetails.UserRoutes(api, d.DB)

	d.Log.Info().Msg("mounting service routes")
	routeDetails.ServicesRoutes(api, d.DB)

	d.Log.Info().Msg("mounting civic and content routes")
	routeDetails.CivicRoutes(api, d.DB, d.Storage)
	routeDetails.ContentRoutes(api, d.DB, d.Storage)

	d.Log.Info().Msg("mounting information routes")
	routeDetails.InformationRoutes(api, d.DB)
}
