package storage

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/rs/zerolog"

	"alisto_backend/internals/configs"
)

// FileStorage persists uploaded images and maps public URLs back to stored objects.
type FileStorage interface {
	// Upload validates and stores an image under folder and returns its public URL.
	Upload(ctx context.Context, fh *multipart.FileHeader, folder string) (*StoredFile, error)
	// Delete removes the object behind url; false when url is foreign or missing.
	Delete(ctx context.Context, url string) bool
	Exists(ctx context.Context, url string) bool
	Size(ctx context.Context, url string) int64
}

// StoredFile describes an object written by Upload.
type StoredFile struct {
	URL          string
	FileName     string
	OriginalName string
	ContentType  string
	Size         int64
}

var (
	ErrNoFile         = errors.New("file is empty")
	ErrNotImage       = errors.New("only image files are allowed")
	ErrFileTooLarge   = errors.New("file exceeds the maximum upload size")
	ErrCorruptedImage = errors.New("file content is not a readable image")
)

type Options struct {
	MaxBytes     int64
	MaxDimension int
}

func optionsFromConfig(cfg configs.StorageConfig) Options {
	mb := cfg.MaxSizeMB
	if mb <= 0 {
		mb = 10
	}
	return Options{MaxBytes: int64(mb) << 20, MaxDimension: cfg.MaxDimension}
}

// New builds the storage selected by FILE_STORAGE_DRIVER.
func New(cfg configs.StorageConfig, log zerolog.Logger) (FileStorage, error) {
	opts := optionsFromConfig(cfg)
	switch cfg.Driver {
	case "", "local":
		return NewLocalStorage(cfg.LocalPath, cfg.BaseURL, opts, log)
	case "oss":
		return NewOSSStorage(OSSConfig{
			Endpoint:        cfg.OSSEndpoint,
			AccessKeyID:     cfg.OSSAccessKeyID,
			AccessKeySecret: cfg.OSSAccessKeySecret,
			Bucket:          cfg.OSSBucket,
			PublicBaseURL:   cfg.OSSPublicBaseURL,
			Prefix:          cfg.OSSPrefix,
		}, opts, log)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// --------------------------------------------------
// Mock for unit tests
// --------------------------------------------------

type MockStorage struct {
	UploadFn func(ctx context.Context, fh *multipart.FileHeader, folder string) (*StoredFile, error)
	DeleteFn func(ctx context.Context, url string) bool
	Deleted  []string
}

func (m *MockStorage) Upload(ctx context.Context, fh *multipart.FileHeader, folder string) (*StoredFile, error) {
	if m.UploadFn == nil {
		return nil, errors.New("not implemented")
	}
	return m.UploadFn(ctx, fh, folder)
}

func (m *MockStorage) Delete(ctx context.Context, url string) bool {
	m.Deleted = append(m.Deleted, url)
	if m.DeleteFn == nil {
		return true
	}
	return m.DeleteFn(ctx, url)
}

func (m *MockStorage) Exists(ctx context.Context, url string) bool { return false }

func (m *MockStorage) Size(ctx context.Context, url string) int64 { return 0 }
