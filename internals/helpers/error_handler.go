package helper

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// ErrorHandler is installed as fiber.Config.ErrorHandler. Every error a
// handler returns ends up here and leaves as one envelope; internal details
// are logged and never sent to the client.
func ErrorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, message, errs := classify(err)

		ev := log.Warn()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error()
		}
		ev.Err(err).
			Int("status", status).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Interface("request_id", requestID(c)).
			Msg("request failed")

		return JsonError(c, status, message, errs)
	}
}

func classify(err error) (int, string, []string) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status, apiErr.Message, apiErr.Errors
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code, fe.Message, nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return fiber.StatusBadRequest, "Validation failed", ValidationMessages(ve)
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.StatusNotFound, "Resource not found", nil
	}

	if mapped, ok := MapDBError(err); ok {
		return mapped.Status, mapped.Message, mapped.Errors
	}

	return fiber.StatusInternalServerError, "An internal error occurred", []string{"INTERNAL_ERROR"}
}
