package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// LocalStorage writes uploads below a root directory served at BaseURL.
type LocalStorage struct {
	Root    string
	BaseURL string
	opts    Options
	log     zerolog.Logger
	now     func() time.Time
}

func NewLocalStorage(root, baseURL string, opts Options, log zerolog.Logger) (*LocalStorage, error) {
	if root == "" {
		root = "uploads"
	}
	if baseURL == "" {
		baseURL = "/uploads"
	}
	for _, dir := range DefaultFolders {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			return nil, fmt.Errorf("create upload folder %s: %w", dir, err)
		}
	}
	return &LocalStorage{
		Root:    root,
		BaseURL: strings.TrimRight(baseURL, "/"),
		opts:    opts,
		log:     log.With().Str("component", "storage").Str("driver", "local").Logger(),
		now:     time.Now,
	}, nil
}

func (s *LocalStorage) Upload(ctx context.Context, fh *multipart.FileHeader, folder string) (*StoredFile, error) {
	img, err := prepareImage(fh, s.opts)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	folder = SafeFolderName(folder)
	name := UniqueFileName(fh.Filename, s.now())
	dir := filepath.Join(s.Root, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create folder: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), img.Data, 0o644); err != nil {
		return nil, fmt.Errorf("write file: %w", err)
	}

	url := s.BaseURL + "/" + folder + "/" + name
	s.log.Info().Str("url", url).Int("bytes", len(img.Data)).Msg("file uploaded")
	return &StoredFile{
		URL:          url,
		FileName:     name,
		OriginalName: fh.Filename,
		ContentType:  img.ContentType,
		Size:         int64(len(img.Data)),
	}, nil
}

// pathFor maps a public URL back to a file below Root. Foreign URLs and
// paths escaping Root yield ok=false.
func (s *LocalStorage) pathFor(url string) (string, bool) {
	prefix := s.BaseURL + "/"
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}
	rel := filepath.Clean(filepath.FromSlash(strings.TrimPrefix(url, prefix)))
	if rel == "." || strings.HasPrefix(rel, "..") || filepath.IsAbs(rel) {
		return "", false
	}
	return filepath.Join(s.Root, rel), true
}

func (s *LocalStorage) Delete(ctx context.Context, url string) bool {
	p, ok := s.pathFor(url)
	if !ok {
		return false
	}
	if err := os.Remove(p); err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn().Err(err).Str("url", url).Msg("delete file failed")
		}
		return false
	}
	return true
}

func (s *LocalStorage) Exists(ctx context.Context, url string) bool {
	p, ok := s.pathFor(url)
	if !ok {
		return false
	}
	st, err := os.Stat(p)
	return err == nil && !st.IsDir()
}

func (s *LocalStorage) Size(ctx context.Context, url string) int64 {
	p, ok := s.pathFor(url)
	if !ok {
		return 0
	}
	st, err := os.Stat(p)
	if err != nil || st.IsDir() {
		return 0
	}
	return st.Size()
}
