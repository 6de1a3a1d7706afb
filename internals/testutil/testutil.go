// Package testutil wires the HTTP app against a throwaway sqlite database.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"time"

	"github.com/bytedance/sonic"
	qt "github.com/frankban/quicktest"
	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"alisto_backend/internals/app"
	"alisto_backend/internals/configs"
	database "alisto_backend/internals/databases"
	helper "alisto_backend/internals/helpers"
	"alisto_backend/internals/helpers/storage"
	"alisto_backend/internals/logger"
)

const JWTSecret = "test-secret"

// NewDB opens a migrated sqlite database that lives for the test only.
func NewDB(c *qt.C) *gorm.DB {
	dsn := filepath.Join(c.TempDir(), "alisto.db") + "?_foreign_keys=on&_busy_timeout=5000"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:  gormLogger.Default.LogMode(gormLogger.Silent),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	c.Assert(err, qt.IsNil)
	c.Assert(database.AutoMigrate(db), qt.IsNil)
	c.Cleanup(func() { _ = database.Close(db) })
	return db
}

// Config is a development configuration with rate limiting disabled.
func Config() *configs.Config {
	return &configs.Config{
		AppEnv:     "test",
		AppName:    "Alisto",
		Port:       "0",
		Pagination: configs.PaginationConfig{DefaultSize: 10, MaxSize: 100},
		Storage: configs.StorageConfig{
			Driver:    "local",
			BaseURL:   "/uploads",
			MaxSizeMB: 1,
		},
		Auth: configs.AuthConfig{
			JWTSecret:  JWTSecret,
			AccessTTL:  time.Hour,
			SessionTTL: 24 * time.Hour,
		},
		HTTP: configs.HTTPConfig{
			CorsAllowOrigins: "*",
			AuthRateLimitMax: 1000,
			RequestTimeout:   5 * time.Second,
		},
	}
}

// NewApp builds the full application. A nil store becomes an empty MockStorage.
func NewApp(c *qt.C, db *gorm.DB, store storage.FileStorage) *fiber.App {
	if store == nil {
		store = &storage.MockStorage{}
	}
	return app.New(Config(), db, store, logger.Nop(), app.Options{})
}

// Envelope mirrors the JSON response body.
type Envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	Errors    []string        `json:"errors"`
	RequestID *string         `json:"requestId"`
}

// Decode unmarshals the data member into dst.
func (e Envelope) Decode(c *qt.C, dst any) {
	c.Helper()
	c.Assert(sonic.Unmarshal(e.Data, dst), qt.IsNil)
}

// Response is a recorded HTTP exchange.
type Response struct {
	Status int
	Header http.Header
	Body   Envelope
	Raw    []byte
}

// TotalCount reads the X-Total-Count pagination header.
func (r Response) TotalCount() string {
	return r.Header.Get(helper.HeaderTotalCount)
}

// Request carries optional headers, most often Authorization.
type Request struct {
	Method      string
	Path        string
	Body        io.Reader
	ContentType string
	Token       string
}

// Do runs req through app.Test and decodes the envelope.
func Do(c *qt.C, a *fiber.App, req Request) Response {
	c.Helper()
	r := httptest.NewRequest(req.Method, req.Path, req.Body)
	if req.ContentType != "" {
		r.Header.Set(fiber.HeaderContentType, req.ContentType)
	}
	if req.Token != "" {
		r.Header.Set(fiber.HeaderAuthorization, "Bearer "+req.Token)
	}
	resp, err := a.Test(r, -1)
	c.Assert(err, qt.IsNil)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	c.Assert(err, qt.IsNil)
	out := Response{Status: resp.StatusCode, Header: resp.Header, Raw: raw}
	if len(raw) > 0 {
		c.Assert(sonic.Unmarshal(raw, &out.Body), qt.IsNil, qt.Commentf("body: %s", raw))
	}
	return out
}

// JSON sends body encoded as JSON.
func JSON(c *qt.C, a *fiber.App, method, path string, body any) Response {
	c.Helper()
	return JSONAs(c, a, method, path, body, "")
}

// JSONAs is JSON with a bearer token.
func JSONAs(c *qt.C, a *fiber.App, method, path string, body any, token string) Response {
	c.Helper()
	req := Request{Method: method, Path: path, Token: token}
	if body != nil {
		b, err := sonic.Marshal(body)
		c.Assert(err, qt.IsNil)
		req.Body = bytes.NewReader(b)
		req.ContentType = fiber.MIMEApplicationJSON
	}
	return Do(c, a, req)
}

// Get is a bodiless GET.
func Get(c *qt.C, a *fiber.App, path string) Response {
	c.Helper()
	return Do(c, a, Request{Method: fiber.MethodGet, Path: path})
}

// FormFile is one file part of a multipart body.
type FormFile struct {
	Field       string
	Name        string
	ContentType string
	Data        []byte
}

// Multipart encodes fields (repeated keys allowed) and files.
func Multipart(c *qt.C, fields [][2]string, files ...FormFile) (io.Reader, string) {
	c.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, f := range fields {
		c.Assert(w.WriteField(f[0], f[1]), qt.IsNil)
	}
	for _, f := range files {
		h := make(map[string][]string)
		h["Content-Disposition"] = []string{`form-data; name="` + f.Field + `"; filename="` + f.Name + `"`}
		h["Content-Type"] = []string{f.ContentType}
		part, err := w.CreatePart(h)
		c.Assert(err, qt.IsNil)
		_, err = part.Write(f.Data)
		c.Assert(err, qt.IsNil)
	}
	c.Assert(w.Close(), qt.IsNil)
	return &buf, w.FormDataContentType()
}
