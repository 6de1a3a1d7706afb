package helper

import (
	"math"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultPage = 1

	HeaderTotalCount  = "X-Total-Count"
	HeaderTotalPages  = "X-Total-Pages"
	HeaderCurrentPage = "X-Current-Page"
	HeaderPageSize    = "X-Page-Size"
)

type Options struct {
	DefaultPageSize int
	MaxPageSize     int
}

// DefaultOpts is replaced at startup from configuration.
var DefaultOpts = Options{DefaultPageSize: 10, MaxPageSize: 100}

func SetDefaultOptions(opt Options) {
	if opt.DefaultPageSize > 0 {
		DefaultOpts.DefaultPageSize = opt.DefaultPageSize
	}
	if opt.MaxPageSize > 0 {
		DefaultOpts.MaxPageSize = opt.MaxPageSize
	}
}

type Params struct {
	Page     int
	PageSize int
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// NewParams normalizes raw values: page < 1 becomes 1, size < 1 becomes the
// default and anything above the maximum is clamped.
func NewParams(page, size int, opt Options) Params {
	if page < 1 {
		page = DefaultPage
	}
	if size < 1 {
		size = opt.DefaultPageSize
	}
	if opt.MaxPageSize > 0 && size > opt.MaxPageSize {
		size = opt.MaxPageSize
	}
	return Params{Page: page, PageSize: size}
}

// ParseFiber reads ?page= and ?pageSize= (aliases page_size, per_page, limit).
func ParseFiber(c *fiber.Ctx, opt Options) Params {
	page := atoiDefault(c.Query("page"), DefaultPage)
	size := atoiDefault(firstNonEmpty(
		c.Query("pageSize"), c.Query("page_size"), c.Query("per_page"), c.Query("limit"),
	), opt.DefaultPageSize)
	return NewParams(page, size, opt)
}

// Limit & Offset
func (p Params) Limit() int  { return p.PageSize }
func (p Params) Offset() int { return (p.Page - 1) * p.PageSize }

type Meta struct {
	Page       int
	PageSize   int
	Total      int64
	TotalPages int
}

func BuildMeta(total int64, p Params) Meta {
	totalPages := 0
	if total > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(p.PageSize)))
	}
	return Meta{
		Page:       p.Page,
		PageSize:   p.PageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}
