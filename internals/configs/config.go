package configs

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config is the typed runtime configuration. It is built once at startup and
// passed down explicitly; nothing below cmd/ reads the environment directly.
type Config struct {
	AppEnv  string
	AppName string
	Port    string

	DB         DBConfig
	Pagination PaginationConfig
	Storage    StorageConfig
	Auth       AuthConfig
	HTTP       HTTPConfig
}

type DBConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	SlowThreshold   time.Duration
}

type PaginationConfig struct {
	DefaultSize int
	MaxSize     int
}

type StorageConfig struct {
	Driver       string // local | oss
	LocalPath    string
	BaseURL      string
	MaxSizeMB    int
	MaxDimension int

	OSSEndpoint        string
	OSSAccessKeyID     string
	OSSAccessKeySecret string
	OSSBucket          string
	OSSPublicBaseURL   string
	OSSPrefix          string
}

type AuthConfig struct {
	JWTSecret  string
	AccessTTL  time.Duration
	SessionTTL time.Duration
}

type HTTPConfig struct {
	CorsAllowOrigins string
	RateLimitMax     int
	RateLimitWindow  time.Duration
	AuthRateLimitMax int
	RequestTimeout   time.Duration
}

// =======================
// ENV LOADER
// =======================

// LoadEnv loads a .env file into the process environment. A missing file is
// not an error: deployments usually inject variables directly.
func LoadEnv(files ...string) {
	if len(files) == 0 || (len(files) == 1 && files[0] == "") {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			log.Debug().Str("file", f).Msg("env file not found, using system environment")
			continue
		}
		if err := godotenv.Load(f); err != nil {
			log.Warn().Err(err).Str("file", f).Msg("failed to load env file")
			continue
		}
		log.Info().Str("file", f).Msg("env file loaded")
	}
}

// GetEnv returns the value of key or the first default when it is unset.
func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_NAME", "Alisto")
	v.SetDefault("PORT", "8080")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "alisto")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 20)
	v.SetDefault("DB_MAX_IDLE_CONNS", 10)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "10m")
	v.SetDefault("DB_SLOW_THRESHOLD", "200ms")

	v.SetDefault("PAGINATION_DEFAULT_SIZE", 10)
	v.SetDefault("PAGINATION_MAX_SIZE", 100)

	v.SetDefault("FILE_STORAGE_DRIVER", "local")
	v.SetDefault("FILE_UPLOAD_LOCAL_PATH", "uploads")
	v.SetDefault("FILE_UPLOAD_BASE_URL", "/uploads")
	v.SetDefault("FILE_UPLOAD_MAX_MB", 10)
	v.SetDefault("FILE_UPLOAD_MAX_DIMENSION", 2048)
	v.SetDefault("ALI_OSS_PREFIX", "uploads")

	v.SetDefault("JWT_ACCESS_TTL", "1h")
	v.SetDefault("SESSION_TTL", "168h")

	v.SetDefault("CORS_ALLOW_ORIGINS", "*")
	v.SetDefault("RATE_LIMIT_MAX", 100)
	v.SetDefault("RATE_LIMIT_WINDOW", "1m")
	v.SetDefault("AUTH_RATE_LIMIT_MAX", 10)
	v.SetDefault("REQUEST_TIMEOUT", "10s")
	return v
}

// Load reads the configuration from the environment (after LoadEnv).
func Load() (*Config, error) {
	v := newViper()

	cfg := &Config{
		AppEnv:  v.GetString("APP_ENV"),
		AppName: v.GetString("APP_NAME"),
		Port:    v.GetString("PORT"),
		DB: DBConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetString("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			Name:            v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
			SlowThreshold:   v.GetDuration("DB_SLOW_THRESHOLD"),
		},
		Pagination: PaginationConfig{
			DefaultSize: v.GetInt("PAGINATION_DEFAULT_SIZE"),
			MaxSize:     v.GetInt("PAGINATION_MAX_SIZE"),
		},
		Storage: StorageConfig{
			Driver:             strings.ToLower(v.GetString("FILE_STORAGE_DRIVER")),
			LocalPath:          v.GetString("FILE_UPLOAD_LOCAL_PATH"),
			BaseURL:            strings.TrimRight(v.GetString("FILE_UPLOAD_BASE_URL"), "/"),
			MaxSizeMB:          v.GetInt("FILE_UPLOAD_MAX_MB"),
			MaxDimension:       v.GetInt("FILE_UPLOAD_MAX_DIMENSION"),
			OSSEndpoint:        v.GetString("ALI_OSS_ENDPOINT"),
			OSSAccessKeyID:     v.GetString("ALI_OSS_ACCESS_KEY_ID"),
			OSSAccessKeySecret: v.GetString("ALI_OSS_ACCESS_KEY_SECRET"),
			OSSBucket:          v.GetString("ALI_OSS_BUCKET"),
			OSSPublicBaseURL:   strings.TrimRight(v.GetString("ALI_OSS_PUBLIC_BASE_URL"), "/"),
			OSSPrefix:          strings.Trim(v.GetString("ALI_OSS_PREFIX"), "/"),
		},
		Auth: AuthConfig{
			JWTSecret:  v.GetString("JWT_SECRET"),
			AccessTTL:  v.GetDuration("JWT_ACCESS_TTL"),
			SessionTTL: v.GetDuration("SESSION_TTL"),
		},
		HTTP: HTTPConfig{
			CorsAllowOrigins: v.GetString("CORS_ALLOW_ORIGINS"),
			RateLimitMax:     v.GetInt("RATE_LIMIT_MAX"),
			RateLimitWindow:  v.GetDuration("RATE_LIMIT_WINDOW"),
			AuthRateLimitMax: v.GetInt("AUTH_RATE_LIMIT_MAX"),
			RequestTimeout:   v.GetDuration("REQUEST_TIMEOUT"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Pagination.DefaultSize < 1 {
		return fmt.Errorf("PAGINATION_DEFAULT_SIZE must be >= 1, got %d", c.Pagination.DefaultSize)
	}
	if c.Pagination.MaxSize < c.Pagination.DefaultSize {
		return fmt.Errorf("PAGINATION_MAX_SIZE (%d) must be >= PAGINATION_DEFAULT_SIZE (%d)",
			c.Pagination.MaxSize, c.Pagination.DefaultSize)
	}
	switch c.Storage.Driver {
	case "local":
	case "oss":
		if c.Storage.OSSEndpoint == "" || c.Storage.OSSBucket == "" || c.Storage.OSSAccessKeyID == "" {
			return fmt.Errorf("FILE_STORAGE_DRIVER=oss requires ALI_OSS_ENDPOINT, ALI_OSS_BUCKET and ALI_OSS_ACCESS_KEY_ID")
		}
	default:
		return fmt.Errorf("unknown FILE_STORAGE_DRIVER %q", c.Storage.Driver)
	}
	if c.Auth.JWTSecret == "" {
		if c.IsProduction() {
			return fmt.Errorf("JWT_SECRET is required in production")
		}
		log.Warn().Msg("JWT_SECRET is not set, using an insecure development secret")
		c.Auth.JWTSecret = "alisto-dev-secret"
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.AppEnv, "development") || c.AppEnv == "dev"
}

// DSN builds the postgres connection string.
func (d DBConfig) DSN(appName string) string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   d.Host + ":" + d.Port,
		Path:   "/" + d.Name,
	}
	q := url.Values{}
	q.Set("sslmode", d.SSLMode)
	q.Set("application_name", strings.ToLower(appName))
	u.RawQuery = q.Encode()
	return u.String()
}
