package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// --- PG error mapping (pgx/libpq) ---

// MapDBError translates constraint violations into client errors. ok is false
// for anything that is not a recognised constraint violation.
func MapDBError(err error) (apiErr *APIError, ok bool) {
	var code, detail string

	var pgxErr *pgconn.PgError
	var pqErr *pq.Error
	switch {
	case errors.As(err, &pgxErr):
		code, detail = pgxErr.Code, pgxErr.ConstraintName
	case errors.As(err, &pqErr):
		code, detail = string(pqErr.Code), pqErr.Constraint
	default:
		return nil, false
	}

	var errs []string
	if detail != "" {
		errs = []string{detail}
	}

	switch code {
	case "23505":
		return NewAPIError(fiber.StatusConflict, "Duplicate value violates a unique constraint", errs...), true
	case "23503":
		return NewAPIError(fiber.StatusBadRequest, "Referenced record does not exist", errs...), true
	case "23502":
		return NewAPIError(fiber.StatusBadRequest, "A required value is missing", errs...), true
	case "23514":
		return NewAPIError(fiber.StatusBadRequest, "Value violates a check constraint", errs...), true
	case "22P02":
		return NewAPIError(fiber.StatusBadRequest, "Malformed value", errs...), true
	default:
		return nil, false
	}
}
