package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	helper "alisto_backend/internals/helpers"
)

func newLimiter(max int, window time.Duration, message string) fiber.Handler {
	if max <= 0 {
		max = 100
	}
	if window <= 0 {
		window = time.Minute
	}
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusTooManyRequests, message, nil)
		},
	})
}

// Global limiter for every endpoint.
func GlobalRateLimiter(max int, window time.Duration) fiber.Handler {
	return newLimiter(max, window, "Too many requests. Please try again later.")
}

// AuthRateLimiter guards login and register.
func AuthRateLimiter(max int, window time.Duration) fiber.Handler {
	return newLimiter(max, window, "Too many authentication attempts. Please try again later.")
}
