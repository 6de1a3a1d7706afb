package helper

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// APIError is a handler error that already knows its HTTP status and the
// message shown to the client.
type APIError struct {
	Status  int
	Message string
	Errors  []string
}

func (e *APIError) Error() string {
	if len(e.Errors) > 0 {
		return fmt.Sprintf("%d %s: %v", e.Status, e.Message, e.Errors)
	}
	return fmt.Sprintf("%d %s", e.Status, e.Message)
}

func NewAPIError(status int, message string, errs ...string) *APIError {
	return &APIError{Status: status, Message: message, Errors: errs}
}

func BadRequest(message string, errs ...string) *APIError {
	return NewAPIError(fiber.StatusBadRequest, message, errs...)
}

func NotFound(message string) *APIError {
	return NewAPIError(fiber.StatusNotFound, message)
}

func Conflict(message string, errs ...string) *APIError {
	return NewAPIError(fiber.StatusConflict, message, errs...)
}

func Unauthorized(message string) *APIError {
	return NewAPIError(fiber.StatusUnauthorized, message)
}

// InvalidBody is returned when the payload cannot be decoded at all.
func InvalidBody(err error) *APIError {
	return BadRequest("Invalid request body", err.Error())
}
