package helper

import (
	"errors"
	"fmt"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	qt "github.com/frankban/quicktest"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func TestNewParams(t *testing.T) {
	c := qt.New(t)
	opt := Options{DefaultPageSize: 10, MaxPageSize: 100}

	tests := []struct {
		page, size int
		want       Params
	}{
		{0, 0, Params{Page: 1, PageSize: 10}},
		{-3, 5, Params{Page: 1, PageSize: 5}},
		{2, 500, Params{Page: 2, PageSize: 100}},
		{4, 25, Params{Page: 4, PageSize: 25}},
	}
	for _, tt := range tests {
		c.Run(fmt.Sprintf("page=%d,size=%d", tt.page, tt.size), func(c *qt.C) {
			c.Assert(NewParams(tt.page, tt.size, opt), qt.Equals, tt.want)
		})
	}

	p := NewParams(3, 20, opt)
	c.Assert(p.Limit(), qt.Equals, 20)
	c.Assert(p.Offset(), qt.Equals, 40)
}

func TestBuildMeta(t *testing.T) {
	c := qt.New(t)
	c.Assert(BuildMeta(0, Params{Page: 1, PageSize: 10}).TotalPages, qt.Equals, 0)
	c.Assert(BuildMeta(21, Params{Page: 2, PageSize: 10}), qt.Equals, Meta{Page: 2, PageSize: 10, Total: 21, TotalPages: 3})
}

func TestGenerateReferenceNumber(t *testing.T) {
	c := qt.New(t)
	day := time.Date(2024, 3, 9, 23, 30, 0, 0, time.FixedZone("PHT", 8*3600))

	ref := GenerateReferenceNumber(AppointmentRefPrefix, day)
	c.Assert(ref, qt.Matches, `APT-20240309-[0-9A-F]{8}`)

	ir := GenerateReferenceNumber(IssueReportRefPrefix, day)
	c.Assert(regexp.MustCompile(`^IR-20240309-[0-9A-F]{8}$`).MatchString(ir), qt.IsTrue)
	c.Assert(ir, qt.Not(qt.Equals), GenerateReferenceNumber(IssueReportRefPrefix, day))
}

type colour string

func TestEnumHelpers(t *testing.T) {
	c := qt.New(t)
	c.Assert(Humanize("InProgress"), qt.Equals, "In Progress")
	c.Assert(Humanize("RPTPayment"), qt.Equals, "RPT Payment")
	c.Assert(Humanize("Draft"), qt.Equals, "Draft")

	values := []colour{"Red", "DarkBlue"}
	c.Assert(EnumOptions(values), qt.DeepEquals, []EnumOption{
		{Value: "Red", Label: "Red"},
		{Value: "DarkBlue", Label: "Dark Blue"},
	})

	v, ok := ParseEnum(" darkblue ", values)
	c.Assert(ok, qt.IsTrue)
	c.Assert(v, qt.Equals, colour("DarkBlue"))
	_, ok = ParseEnum("green", values)
	c.Assert(ok, qt.IsFalse)
}

func TestJSONColumns(t *testing.T) {
	c := qt.New(t)
	c.Assert(string(JSONStrings(nil)), qt.Equals, "[]")
	c.Assert(StringsFromJSON(JSONStrings([]string{"a", "b"})), qt.DeepEquals, []string{"a", "b"})
	c.Assert(StringsFromJSON(datatypes.JSON("not json")), qt.DeepEquals, []string{})
	c.Assert(StringsFromJSON(nil), qt.IsNotNil)

	c.Assert(string(JSONObject(nil)), qt.Equals, "{}")
	obj := ObjectFromJSON(JSONObject(map[string]any{"purpose": "employment"}))
	c.Assert(obj["purpose"], qt.Equals, "employment")
	c.Assert(ObjectFromJSON(datatypes.JSON("[1,2]")), qt.DeepEquals, map[string]any{})

	c.Assert(JSONValue(nil), qt.IsNil)
	c.Assert(string(JSONValue(map[string]string{"status": "Open"})), qt.Equals, `{"status":"Open"}`)
}

func TestClassify(t *testing.T) {
	c := qt.New(t)

	type payload struct {
		Email string `json:"email" validate:"required,email"`
	}
	verr := NewValidator().Struct(payload{Email: "nope"})

	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"api error", fmt.Errorf("wrapped: %w", Conflict("Taken")), fiber.StatusConflict, "Taken"},
		{"fiber error", fiber.NewError(fiber.StatusMethodNotAllowed, "nope"), fiber.StatusMethodNotAllowed, "nope"},
		{"validation", verr, fiber.StatusBadRequest, "Validation failed"},
		{"not found", gorm.ErrRecordNotFound, fiber.StatusNotFound, "Resource not found"},
		{"pgx unique", &pgconn.PgError{Code: "23505", ConstraintName: "uq_users_email"}, fiber.StatusConflict, "Duplicate value violates a unique constraint"},
		{"pq check", &pq.Error{Code: "23514"}, fiber.StatusBadRequest, "Value violates a check constraint"},
		{"opaque", errors.New("dial tcp: refused"), fiber.StatusInternalServerError, "An internal error occurred"},
	}
	for _, tt := range tests {
		c.Run(tt.name, func(c *qt.C) {
			status, message, _ := classify(tt.err)
			c.Assert(status, qt.Equals, tt.status)
			c.Assert(message, qt.Equals, tt.message)
		})
	}

	_, _, errs := classify(verr)
	c.Assert(errs, qt.DeepEquals, []string{"email: email"})
}

type level string

func (l level) Valid() bool { return l == "Low" || l == "High" }

func TestValidatorCustomRules(t *testing.T) {
	c := qt.New(t)
	v := NewValidator()

	type req struct {
		Level level  `json:"level" validate:"enum"`
		Phone string `json:"phone" validate:"phone"`
	}
	c.Assert(v.Struct(req{Level: "Low", Phone: "+63 917 123 4567"}), qt.IsNil)
	c.Assert(v.Struct(req{Level: "Medium", Phone: "0917-123-4567"}), qt.ErrorMatches, `.*'level'.*'enum'.*`)
	c.Assert(v.Struct(req{Level: "High", Phone: "call me"}), qt.ErrorMatches, `.*'phone'.*'phone'.*`)
}

func TestTruncateRunes(t *testing.T) {
	c := qt.New(t)
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"Purok 2", 20, "Purok 2"},
		{"Barangay", 4, "Bara"},
		{"日本語の説明", 3, "日本語"},
		{"Señora María", 6, "Señora"},
		{"anything", 0, ""},
	}
	for _, test := range tests {
		got := TruncateRunes(test.in, test.max)
		c.Assert(got, qt.Equals, test.want)
		c.Assert(utf8.ValidString(got), qt.IsTrue)
	}
}

type hotlineRequest struct {
	Title string `json:"title" validate:"required,max=20"`
}

func (r *hotlineRequest) Normalize() { r.Title = strings.TrimSpace(r.Title) }

func TestParseAndValidate(t *testing.T) {
	c := qt.New(t)
	v := NewValidator()

	var got hotlineRequest
	var gotErr error
	app := fiber.New()
	app.Post("/", func(ctx *fiber.Ctx) error {
		got = hotlineRequest{}
		gotErr = ParseAndValidate(ctx, v, &got)
		return nil
	})
	post := func(body string) {
		c.Helper()
		req := httptest.NewRequest(fiber.MethodPost, "/", strings.NewReader(body))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := app.Test(req, -1)
		c.Assert(err, qt.IsNil)
		resp.Body.Close()
	}

	post(`{"title":"  Fire Station  "}`)
	c.Assert(gotErr, qt.IsNil)
	c.Assert(got.Title, qt.Equals, "Fire Station")

	// trimmed before validation, so blanks fail "required"
	post(`{"title":"    "}`)
	var verr validator.ValidationErrors
	c.Assert(errors.As(gotErr, &verr), qt.IsTrue)
	c.Assert(ValidationMessages(verr), qt.DeepEquals, []string{"title: required"})

	post(`{"title":`)
	var apiErr *APIError
	c.Assert(errors.As(gotErr, &apiErr), qt.IsTrue)
	c.Assert(apiErr.Status, qt.Equals, fiber.StatusBadRequest)
	c.Assert(apiErr.Message, qt.Equals, "Invalid request body")
}
