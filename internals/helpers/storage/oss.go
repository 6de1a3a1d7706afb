package storage

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"strconv"
	"strings"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/rs/zerolog"
)

type OSSConfig struct {
	Endpoint        string
	AccessKeyID     string
	AccessKeySecret string
	Bucket          string
	PublicBaseURL   string // empty: https://{bucket}.{endpoint}
	Prefix          string
}

// OSSStorage stores uploads in an Aliyun OSS bucket.
type OSSStorage struct {
	bucket  *oss.Bucket
	baseURL string
	prefix  string
	opts    Options
	log     zerolog.Logger
	now     func() time.Time
}

func NewOSSStorage(cfg OSSConfig, opts Options, log zerolog.Logger) (*OSSStorage, error) {
	if cfg.Endpoint == "" || cfg.AccessKeyID == "" || cfg.AccessKeySecret == "" || cfg.Bucket == "" {
		return nil, fmt.Errorf("oss storage: endpoint, access key and bucket are required")
	}
	client, err := oss.New(cfg.Endpoint, cfg.AccessKeyID, cfg.AccessKeySecret)
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}
	bkt, err := client.Bucket(cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}

	base := strings.TrimRight(cfg.PublicBaseURL, "/")
	if base == "" {
		host := strings.TrimPrefix(strings.TrimPrefix(cfg.Endpoint, "https://"), "http://")
		base = "https://" + cfg.Bucket + "." + host
	}
	return &OSSStorage{
		bucket:  bkt,
		baseURL: base,
		prefix:  strings.Trim(cfg.Prefix, "/"),
		opts:    opts,
		log:     log.With().Str("component", "storage").Str("driver", "oss").Logger(),
		now:     time.Now,
	}, nil
}

func (s *OSSStorage) objectKey(folder, name string) string {
	if s.prefix == "" {
		return folder + "/" + name
	}
	return s.prefix + "/" + folder + "/" + name
}

// keyFor strips the public base (and any query string) from url.
func (s *OSSStorage) keyFor(url string) (string, bool) {
	if i := strings.IndexByte(url, '?'); i >= 0 {
		url = url[:i]
	}
	key, ok := strings.CutPrefix(url, s.baseURL+"/")
	if !ok || key == "" || strings.Contains(key, "..") {
		return "", false
	}
	return key, true
}

func (s *OSSStorage) Upload(ctx context.Context, fh *multipart.FileHeader, folder string) (*StoredFile, error) {
	img, err := prepareImage(fh, s.opts)
	if err != nil {
		return nil, err
	}

	name := UniqueFileName(fh.Filename, s.now())
	key := s.objectKey(SafeFolderName(folder), name)
	err = s.bucket.PutObject(key, bytes.NewReader(img.Data),
		oss.WithContext(ctx),
		oss.ContentType(img.ContentType),
		oss.ContentDisposition("inline"),
		oss.CacheControl("public, max-age=31536000, immutable"),
	)
	if err != nil {
		return nil, fmt.Errorf("oss put %s: %w", key, err)
	}

	url := s.baseURL + "/" + key
	s.log.Info().Str("key", key).Int("bytes", len(img.Data)).Msg("file uploaded")
	return &StoredFile{
		URL:          url,
		FileName:     name,
		OriginalName: fh.Filename,
		ContentType:  img.ContentType,
		Size:         int64(len(img.Data)),
	}, nil
}

func (s *OSSStorage) Delete(ctx context.Context, url string) bool {
	key, ok := s.keyFor(url)
	if !ok || !s.Exists(ctx, url) {
		return false
	}
	if err := s.bucket.DeleteObject(key, oss.WithContext(ctx)); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("delete object failed")
		return false
	}
	return true
}

func (s *OSSStorage) Exists(ctx context.Context, url string) bool {
	key, ok := s.keyFor(url)
	if !ok {
		return false
	}
	exists, err := s.bucket.IsObjectExist(key, oss.WithContext(ctx))
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("head object failed")
		return false
	}
	return exists
}

func (s *OSSStorage) Size(ctx context.Context, url string) int64 {
	key, ok := s.keyFor(url)
	if !ok {
		return 0
	}
	hdr, err := s.bucket.GetObjectDetailedMeta(key, oss.WithContext(ctx))
	if err != nil {
		return 0
	}
	cl := hdr.Get(oss.HTTPHeaderContentLength)
	if cl == "" {
		return 0
	}
	n, err := strconv.ParseInt(cl, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
