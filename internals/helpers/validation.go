package helper

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var phonePattern = regexp.MustCompile(`^[0-9+()\-\s.]{7,20}$`)

// Enum is implemented by the closed string types used for statuses and categories.
type Enum interface {
	Valid() bool
}

// NewValidator returns a validator reporting JSON field names and knowing the
// custom `enum` and `phone` rules.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("enum", func(fl validator.FieldLevel) bool {
		e, ok := fl.Field().Interface().(Enum)
		return ok && e.Valid()
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	return v
}

// ValidationMessages flattens validator errors into "field: rule" strings.
func ValidationMessages(ve validator.ValidationErrors) []string {
	out := make([]string, 0, len(ve))
	for _, fe := range ve {
		msg := fmt.Sprintf("%s: %s", fe.Field(), fe.Tag())
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		out = append(out, msg)
	}
	return out
}

// Normalizer is implemented by request DTOs that trim or default their
// fields before validation.
type Normalizer interface {
	Normalize()
}

// ParseAndValidate decodes the request body into dst, normalizes it when dst
// is a Normalizer, and validates it.
func ParseAndValidate(c *fiber.Ctx, v *validator.Validate, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return InvalidBody(err)
	}
	if n, ok := dst.(Normalizer); ok {
		n.Normalize()
	}
	return v.Struct(dst)
}
