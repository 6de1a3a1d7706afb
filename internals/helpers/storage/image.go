package storage

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

// AllowedImageTypes maps accepted content types to their canonical extension.
var AllowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

var allowedExt = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// preparedImage is the validated payload ready to be written.
type preparedImage struct {
	Data        []byte
	ContentType string
}

func declaredType(fh *multipart.FileHeader) string {
	ct := strings.ToLower(strings.TrimSpace(fh.Header.Get("Content-Type")))
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	if ct == "" || ct == "application/octet-stream" {
		ct = allowedExt[strings.ToLower(filepath.Ext(fh.Filename))]
	}
	return ct
}

// prepareImage reads the upload, enforces the whitelist and the size cap, and
// downsizes images larger than opts.MaxDimension. GIFs are kept as-is so
// animations survive.
func prepareImage(fh *multipart.FileHeader, opts Options) (*preparedImage, error) {
	if fh == nil || fh.Size == 0 {
		return nil, ErrNoFile
	}
	if opts.MaxBytes > 0 && fh.Size > opts.MaxBytes {
		return nil, ErrFileTooLarge
	}
	ct := declaredType(fh)
	if _, ok := AllowedImageTypes[ct]; !ok {
		return nil, ErrNotImage
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	limit := opts.MaxBytes
	if limit <= 0 {
		limit = 10 << 20
	}
	data, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, ErrFileTooLarge
	}
	if len(data) == 0 {
		return nil, ErrNoFile
	}

	sniffed := http.DetectContentType(data)
	if _, ok := AllowedImageTypes[sniffed]; !ok {
		return nil, ErrNotImage
	}

	w, h, err := imageSize(data, sniffed)
	if err != nil {
		return nil, ErrCorruptedImage
	}
	if opts.MaxDimension <= 0 || sniffed == "image/gif" || (w <= opts.MaxDimension && h <= opts.MaxDimension) {
		return &preparedImage{Data: data, ContentType: sniffed}, nil
	}

	out, err := downscale(data, sniffed, opts.MaxDimension)
	if err != nil {
		return nil, ErrCorruptedImage
	}
	return &preparedImage{Data: out, ContentType: sniffed}, nil
}

func imageSize(data []byte, ct string) (int, int, error) {
	if ct == "image/webp" {
		cfg, err := webp.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			return 0, 0, err
		}
		return cfg.Width, cfg.Height, nil
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}

func downscale(data []byte, ct string, maxDim int) ([]byte, error) {
	var (
		src image.Image
		err error
	)
	if ct == "image/webp" {
		src, err = webp.Decode(bytes.NewReader(data))
	} else {
		src, err = imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	}
	if err != nil {
		return nil, err
	}

	dst := fitWithin(src, maxDim)

	var buf bytes.Buffer
	switch ct {
	case "image/webp":
		err = webp.Encode(&buf, dst, &webp.Options{Quality: 85})
	case "image/png":
		err = imaging.Encode(&buf, dst, imaging.PNG)
	default:
		err = imaging.Encode(&buf, dst, imaging.JPEG, imaging.JPEGQuality(85))
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// fitWithin scales src so its longest side equals maxDim, keeping aspect.
func fitWithin(src image.Image, maxDim int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxDim && h <= maxDim {
		return src
	}
	nw, nh := maxDim, maxDim
	if w >= h {
		nh = h * maxDim / w
	} else {
		nw = w * maxDim / h
	}
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
