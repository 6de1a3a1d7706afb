package middlewares

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/utils"

	helper "alisto_backend/internals/helpers"
)

const HeaderRequestID = "X-Request-ID"

// RequestID honours an incoming X-Request-ID (or generates one), echoes it
// back and bounds the request with a context timeout that handlers pass on to
// GORM via c.UserContext().
func RequestID(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := strings.TrimSpace(c.Get(HeaderRequestID))
		if id == "" || len(id) > 64 {
			id = utils.UUID()
		}
		c.Set(HeaderRequestID, id)
		c.Locals(helper.LocalsRequestID, id)

		if timeout > 0 {
			ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
			defer cancel()
			c.SetUserContext(ctx)
		}
		return c.Next()
	}
}
