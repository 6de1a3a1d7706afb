package helper

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// LocalsRequestID is the fiber.Ctx locals key holding the request id.
const LocalsRequestID = "reqid"

/* ===============================
   Envelope
=================================*/

// Envelope is the single response shape of the API, success or failure.
type Envelope struct {
	Success   bool      `json:"success"`
	Data      any       `json:"data"`
	Message   string    `json:"message"`
	Errors    []string  `json:"errors"`
	Timestamp time.Time `json:"timestamp"`
	RequestID *string   `json:"requestId"`
}

func requestID(c *fiber.Ctx) *string {
	if v, ok := c.Locals(LocalsRequestID).(string); ok && v != "" {
		return &v
	}
	return nil
}

func newEnvelope(c *fiber.Ctx, success bool, message string, data any, errs []string) Envelope {
	return Envelope{
		Success:   success,
		Data:      data,
		Message:   message,
		Errors:    errs,
		Timestamp: time.Now().UTC(),
		RequestID: requestID(c),
	}
}

/* ===============================
   JSON responses (standard success)
=================================*/

// JsonOK answers 200 with data, e.g. a detail GET.
func JsonOK(c *fiber.Ctx, message string, data any) error {
	if strings.TrimSpace(message) == "" {
		message = "ok"
	}
	return c.Status(fiber.StatusOK).JSON(newEnvelope(c, true, message, data, nil))
}

// JsonCreated answers 201 and points Location at the detail route.
func JsonCreated(c *fiber.Ctx, location, message string, data any) error {
	if strings.TrimSpace(message) == "" {
		message = "created"
	}
	if location != "" {
		c.Location(location)
	}
	return c.Status(fiber.StatusCreated).JSON(newEnvelope(c, true, message, data, nil))
}

func JsonUpdated(c *fiber.Ctx, message string, data any) error {
	if strings.TrimSpace(message) == "" {
		message = "updated"
	}
	return c.Status(fiber.StatusOK).JSON(newEnvelope(c, true, message, data, nil))
}

func JsonDeleted(c *fiber.Ctx, message string) error {
	if strings.TrimSpace(message) == "" {
		message = "deleted"
	}
	return c.Status(fiber.StatusOK).JSON(newEnvelope(c, true, message, nil, nil))
}

// JsonList writes a page of data; pagination metadata travels in headers only.
func JsonList(c *fiber.Ctx, message string, data any, meta Meta) error {
	SetPaginationHeaders(c, meta)
	return c.Status(fiber.StatusOK).JSON(newEnvelope(c, true, message, data, nil))
}

func SetPaginationHeaders(c *fiber.Ctx, meta Meta) {
	c.Set(HeaderTotalCount, strconv.FormatInt(meta.Total, 10))
	c.Set(HeaderTotalPages, strconv.Itoa(meta.TotalPages))
	c.Set(HeaderCurrentPage, strconv.Itoa(meta.Page))
	c.Set(HeaderPageSize, strconv.Itoa(meta.PageSize))
}

/* ===============================
   Error helpers (standard shape)
=================================*/

// JsonError writes a failure envelope. Handlers normally return an error and
// let ErrorHandler call this.
func JsonError(c *fiber.Ctx, status int, message string, errs []string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	if strings.TrimSpace(message) == "" {
		message = defaultMessage(status)
	}
	return c.Status(status).JSON(newEnvelope(c, false, message, nil, errs))
}

func defaultMessage(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "Bad request"
	case fiber.StatusUnauthorized:
		return "Unauthorized"
	case fiber.StatusForbidden:
		return "Forbidden"
	case fiber.StatusNotFound:
		return "Resource not found"
	case fiber.StatusConflict:
		return "Conflict"
	case fiber.StatusTooManyRequests:
		return "Too many requests"
	default:
		if status >= 500 {
			return "An internal error occurred"
		}
		return "Request failed"
	}
}
