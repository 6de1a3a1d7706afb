package storage

import (
	"errors"
	"mime/multipart"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
)

// IsMultipart reports whether the request carries a multipart/form-data body.
func IsMultipart(c *fiber.Ctx) bool {
	ct := strings.ToLower(strings.TrimSpace(c.Get(fiber.HeaderContentType)))
	return strings.HasPrefix(ct, fiber.MIMEMultipartForm)
}

// GetImageFile returns the first file found under fieldNames (default:
// image, file, photo, picture). nil, nil means no file was sent.
func GetImageFile(c *fiber.Ctx, fieldNames ...string) (*multipart.FileHeader, error) {
	if !IsMultipart(c) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Request must be multipart/form-data")
	}
	if len(fieldNames) == 0 {
		fieldNames = []string{"image", "file", "photo", "picture"}
	}
	for _, name := range fieldNames {
		if fh, err := c.FormFile(name); err == nil && fh != nil {
			return fh, nil
		}
	}
	return nil, nil
}

// FormStrings reads a list field sent as repeated values, a JSON array, or a
// comma separated string.
func FormStrings(c *fiber.Ctx, field string) []string {
	var raw []string
	if form, err := c.MultipartForm(); err == nil && form != nil {
		raw = form.Value[field]
	}
	if len(raw) == 0 {
		if v := c.FormValue(field); v != "" {
			raw = []string{v}
		}
	}
	if len(raw) == 1 {
		v := strings.TrimSpace(raw[0])
		if strings.HasPrefix(v, "[") {
			var arr []string
			if sonic.UnmarshalString(v, &arr) == nil {
				return compact(arr)
			}
		}
		return compact(strings.Split(v, ","))
	}
	return compact(raw)
}

func compact(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// UploadError turns a rejected upload into a 400; other errors pass through.
func UploadError(err error) error {
	switch {
	case errors.Is(err, ErrNoFile), errors.Is(err, ErrNotImage),
		errors.Is(err, ErrCorruptedImage), errors.Is(err, ErrFileTooLarge):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	default:
		return err
	}
}
