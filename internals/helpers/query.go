package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Query filter parsing. An absent parameter yields nil; a malformed one is a 400.

func QueryBool(c *fiber.Ctx, key string) (*bool, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, BadRequest("Invalid query parameter", key+": expected true or false")
	}
	return &b, nil
}

func QueryInt(c *fiber.Ctx, key string) (*int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, BadRequest("Invalid query parameter", key+": expected an integer")
	}
	return &n, nil
}

func QueryUUID(c *fiber.Ctx, key string) (*uuid.UUID, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, BadRequest("Invalid query parameter", key+": expected a UUID")
	}
	return &id, nil
}

// QueryEnum parses an enum filter case-insensitively.
func QueryEnum[T ~string](c *fiber.Ctx, key string, values []T) (*T, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	v, ok := ParseEnum(raw, values)
	if !ok {
		return nil, BadRequest("Invalid query parameter", key+": unknown value "+strconv.Quote(raw))
	}
	return &v, nil
}

// ParamUUID reads a UUID path parameter; a malformed id cannot exist, so it is a 404.
func ParamUUID(c *fiber.Ctx, key, notFoundMessage string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(key))
	if err != nil {
		return uuid.Nil, NotFound(notFoundMessage)
	}
	return id, nil
}

func ParamInt(c *fiber.Ctx, key, notFoundMessage string) (int, error) {
	n, err := strconv.Atoi(c.Params(key))
	if err != nil || n < 1 {
		return 0, NotFound(notFoundMessage)
	}
	return n, nil
}
