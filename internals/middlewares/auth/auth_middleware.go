package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authModel "alisto_backend/internals/features/users/auth/model"
	authService "alisto_backend/internals/features/users/auth/service"
	helper "alisto_backend/internals/helpers"
)

const (
	LocalsUserID    = "user_id"
	LocalsSessionID = "session_id"
)

// AuthMiddleware requires a Bearer access token whose session is still active
// and whose user is active. The user and session ids are stored in Locals.
func AuthMiddleware(db *gorm.DB, secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return helper.NewAPIError(fiber.StatusUnauthorized, "Missing or malformed Authorization header", err.Error())
		}

		claims, err := authService.ParseAccessToken(secret, tokenString)
		if err != nil {
			return helper.Unauthorized("Invalid or expired access token")
		}

		var session authModel.UserSessionModel
		err = db.WithContext(c.UserContext()).
			Where("id = ? AND user_id = ? AND is_active = ?", claims.SessionID, claims.UserID, true).
			First(&session).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.Unauthorized("Session is no longer active")
			}
			return err
		}

		if err := ensureUserActive(db.WithContext(c.UserContext()), claims.UserID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, errUserInactive) {
				return helper.Unauthorized("User not found or inactive")
			}
			return err
		}

		c.Locals(LocalsUserID, claims.UserID)
		c.Locals(LocalsSessionID, claims.SessionID)
		return c.Next()
	}
}

// OptionalAuth identifies the caller when a valid access token is present and
// lets anonymous requests through untouched. Audit rows use the id it sets.
func OptionalAuth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return c.Next()
		}
		if claims, err := authService.ParseAccessToken(secret, tokenString); err == nil {
			c.Locals(LocalsUserID, claims.UserID)
			c.Locals(LocalsSessionID, claims.SessionID)
		}
		return c.Next()
	}
}
