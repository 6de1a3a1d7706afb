package app

import (
	"io"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"alisto_backend/internals/configs"
	helper "alisto_backend/internals/helpers"
	"alisto_backend/internals/helpers/storage"
	middlewares "alisto_backend/internals/middlewares"
	routes "alisto_backend/internals/route"
)

// Options tweak the HTTP app; the zero value is the production setup.
type Options struct {
	// AccessLog receives one line per request; nil disables the access log.
	AccessLog io.Writer
	// BodyLimit in bytes; zero derives it from the upload limit.
	BodyLimit int
}

// New builds the Fiber app with the global middleware chain and all routes.
func New(cfg *configs.Config, db *gorm.DB, store storage.FileStorage, log zerolog.Logger, opts Options) *fiber.App {
	helper.SetDefaultOptions(helper.Options{
		DefaultPageSize: cfg.Pagination.DefaultSize,
		MaxPageSize:     cfg.Pagination.MaxSize,
	})

	bodyLimit := opts.BodyLimit
	if bodyLimit <= 0 {
		mb := cfg.Storage.MaxSizeMB
		if mb <= 0 {
			mb = 10
		}
		bodyLimit = (mb + 1) << 20
	}

	app := fiber.New(fiber.Config{
		AppName:               cfg.AppName,
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		BodyLimit:             bodyLimit,
		ProxyHeader:           fiber.HeaderXForwardedFor,
		ErrorHandler:          helper.ErrorHandler(log),
	})

	middlewares.SetupMiddlewares(app, cfg, opts.AccessLog)
	routes.SetupRoutes(app, routes.Deps{Config: cfg, DB: db, Storage: store, Log: log})

	app.Use(func(c *fiber.Ctx) error {
		return helper.NotFound("Route not found")
	})
	return app
}
