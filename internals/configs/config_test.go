package configs

import (
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
)

func TestLoadDefaults(t *testing.T) {
	c := qt.New(t)
	c.Setenv("APP_ENV", "development")
	c.Setenv("JWT_SECRET", "")

	cfg, err := Load()
	c.Assert(err, qt.IsNil)
	c.Assert(cfg.Port, qt.Equals, "8080")
	c.Assert(cfg.Pagination, qt.Equals, PaginationConfig{DefaultSize: 10, MaxSize: 100})
	c.Assert(cfg.Storage.Driver, qt.Equals, "local")
	c.Assert(cfg.Storage.BaseURL, qt.Equals, "/uploads")
	c.Assert(cfg.Auth.AccessTTL, qt.Equals, time.Hour)
	c.Assert(cfg.Auth.JWTSecret, qt.Not(qt.Equals), "")
	c.Assert(cfg.IsDevelopment(), qt.IsTrue)
}

func TestLoadRejectsBadSettings(t *testing.T) {
	c := qt.New(t)

	c.Run("page sizes", func(c *qt.C) {
		c.Setenv("PAGINATION_DEFAULT_SIZE", "50")
		c.Setenv("PAGINATION_MAX_SIZE", "20")
		_, err := Load()
		c.Assert(err, qt.ErrorMatches, `PAGINATION_MAX_SIZE \(20\) must be >= PAGINATION_DEFAULT_SIZE \(50\)`)
	})

	c.Run("storage driver", func(c *qt.C) {
		c.Setenv("FILE_STORAGE_DRIVER", "s3")
		_, err := Load()
		c.Assert(err, qt.ErrorMatches, `unknown FILE_STORAGE_DRIVER "s3"`)
	})

	c.Run("production secret", func(c *qt.C) {
		c.Setenv("APP_ENV", "production")
		c.Setenv("JWT_SECRET", "")
		_, err := Load()
		c.Assert(err, qt.ErrorMatches, "JWT_SECRET is required in production")
	})
}

func TestDSN(t *testing.T) {
	c := qt.New(t)
	dsn := DBConfig{Host: "db", Port: "5432", User: "alisto", Password: "p@ss", Name: "alisto", SSLMode: "disable"}.DSN("Alisto")
	c.Assert(dsn, qt.Equals, "postgres://alisto:p%40ss@db:5432/alisto?application_name=alisto&sslmode=disable")
}
