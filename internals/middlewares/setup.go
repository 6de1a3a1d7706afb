package middlewares

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"alisto_backend/internals/configs"
	accesslog "alisto_backend/internals/middlewares/logger"
)

// SetupMiddlewares installs the global chain. Order matters: the request id
// must exist before the access log and the error handler read it.
func SetupMiddlewares(app *fiber.App, cfg *configs.Config, accessLog io.Writer) {
	app.Use(RecoveryMiddleware())
	app.Use(RequestID(cfg.HTTP.RequestTimeout))
	if accessLog != nil {
		app.Use(accesslog.LoggerMiddleware(accessLog))
	}
	app.Use(CorsMiddleware(cfg.HTTP.CorsAllowOrigins))
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	if cfg.HTTP.RateLimitMax > 0 {
		app.Use(GlobalRateLimiter(cfg.HTTP.RateLimitMax, cfg.HTTP.RateLimitWindow))
	}
}
