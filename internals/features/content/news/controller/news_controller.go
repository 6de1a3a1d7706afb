package controller

import (
	"errors"
	"fmt"
	"mime/multipart"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"alisto_backend/internals/constants"
	newsDTO "alisto_backend/internals/features/content/news/dto"
	newsModel "alisto_backend/internals/features/content/news/model"
	infoService "alisto_backend/internals/features/information/service"
	helper "alisto_backend/internals/helpers"
	"alisto_backend/internals/helpers/dbtime"
	"alisto_backend/internals/helpers/storage"
	authMw "alisto_backend/internals/middlewares/auth"
)

type NewsController struct {
	DB      *gorm.DB
	Storage storage.FileStorage
}

func NewNewsController(db *gorm.DB, store storage.FileStorage) *NewsController {
	return &NewsController{DB: db, Storage: store}
}

var validateNews = helper.NewValidator()

const (
	msgNewsNotFound = "News article not found"
	featuredLimit   = 5
	trendingLimit   = 10
)

func (h *NewsController) db(c *fiber.Ctx) *gorm.DB {
	return h.DB.WithContext(c.UserContext())
}

func (h *NewsController) findArticle(c *fiber.Ctx) (*newsModel.NewsArticleModel, error) {
	id, err := helper.ParamInt(c, "id", msgNewsNotFound)
	if err != nil {
		return nil, err
	}
	var article newsModel.NewsArticleModel
	if err := h.db(c).First(&article, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.NotFound(msgNewsNotFound)
		}
		return nil, err
	}
	return &article, nil
}

func published(db *gorm.DB) *gorm.DB {
	return db.Model(&newsModel.NewsArticleModel{}).Where("status = ?", newsModel.StatusPublished)
}

// recordImage links a freshly stored image to the article in file_uploads.
func (h *NewsController) recordImage(c *fiber.Ctx, stored *storage.StoredFile, articleID int) {
	if stored == nil {
		return
	}
	var uploader *uuid.UUID
	if uid, ok := authMw.UserIDFromLocals(c); ok {
		uploader = &uid
	}
	if err := infoService.RecordUpload(h.db(c), stored, constants.EntityNewsArticle, strconv.Itoa(articleID), uploader); err != nil {
		log.Warn().Err(err).Int("news_id", articleID).Msg("file upload not recorded")
	}
}

func (h *NewsController) dropImage(c *fiber.Ctx, url *string) {
	if url == nil || *url == "" {
		return
	}
	storage.DeleteQuietly(c.UserContext(), h.Storage, *url)
	if err := infoService.ForgetUpload(h.db(c), *url); err != nil {
		log.Warn().Err(err).Str("url", *url).Msg("file upload row not removed")
	}
}

// parseForm reads the article fields from a multipart body plus the optional image.
func parseForm(c *fiber.Ctx) (*newsDTO.NewsFields, *multipart.FileHeader, error) {
	fh, err := storage.GetImageFile(c, "image")
	if err != nil {
		return nil, nil, err
	}
	var f newsDTO.NewsFields
	if err := c.BodyParser(&f); err != nil {
		return nil, nil, helper.InvalidBody(err)
	}
	f.Tags = storage.FormStrings(c, "tags")
	f.Normalize()
	if err := validateNews.Struct(&f); err != nil {
		return nil, nil, err
	}
	return &f, fh, nil
}

func parseJSON(c *fiber.Ctx) (*newsDTO.NewsFields, error) {
	var f newsDTO.NewsFields
	if err := helper.ParseAndValidate(c, validateNews, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// =============================
// Public reads
// =============================

// GET /api/news?category=&isFeatured=&isTrending=
func (h *NewsController) GetNews(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, helper.DefaultOpts)

	category, err := helper.QueryEnum(c, "category", newsModel.NewsCategories)
	if err != nil {
		return err
	}
	featured, err := helper.QueryBool(c, "isFeatured")
	if err != nil {
		return err
	}
	trending, err := helper.QueryBool(c, "isTrending")
	if err != nil {
		return err
	}

	q := published(h.db(c))
	if category != nil {
		q = q.Where("category = ?", *category)
	}
	if featured != nil {
		q = q.Where("is_featured = ?", *featured)
	}
	if trending != nil {
		q = q.Where("is_trending = ?", *trending)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return err
	}

	var rows []newsModel.NewsArticleModel
	if err := q.Order("published_date DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return err
	}

	return helper.JsonList(c, fmt.Sprintf("Retrieved %d news articles successfully", len(rows)),
		newsDTO.ToNewsSummaryDTOs(rows), helper.BuildMeta(total, p))
}

// GET /api/news/:id counts a view on every call.
func (h *NewsController) GetNewsArticle(c *fiber.Ctx) error {
	article, err := h.findArticle(c)
	if err != nil {
		return err
	}
	if article.Status != newsModel.StatusPublished {
		return helper.NotFound(msgNewsNotFound)
	}

	// Read-modify-write: concurrent readers may lose increments.
	article.ViewCount++
	if err := h.db(c).Model(article).UpdateColumn("view_count", article.ViewCount).Error; err != nil {
		return err
	}

	return helper.JsonOK(c, "News article retrieved successfully", newsDTO.ToNewsArticleDTO(article))
}

// GET /api/news/featured
func (h *NewsController) GetFeaturedNews(c *fiber.Ctx) error {
	var rows []newsModel.NewsArticleModel
	if err := published(h.db(c)).
		Where("is_featured = ?", true).
		Order("published_date DESC").
		Limit(featuredLimit).
		Find(&rows).Error; err != nil {
		return err
	}
	return helper.JsonOK(c, "Featured news retrieved successfully", newsDTO.ToNewsSummaryDTOs(rows))
}

// GET /api/news/trending
func (h *NewsController) GetTrendingNews(c *fiber.Ctx) error {
	var rows []newsModel.NewsArticleModel
	if err := published(h.db(c)).
		Where("is_trending = ?", true).
		Order("view_count DESC").
		Order("published_date DESC").
		Limit(trendingLimit).
		Find(&rows).Error; err != nil {
		return err
	}
	return helper.JsonOK(c, "Trending news retrieved successfully", newsDTO.ToNewsSummaryDTOs(rows))
}

// GET /api/news/categories
func (h *NewsController) GetCategories(c *fiber.Ctx) error {
	return helper.JsonOK(c, "News categories retrieved successfully", helper.EnumOptions(newsModel.NewsCategories))
}

// =============================
// Editorial writes
// =============================

// POST /api/news
func (h *NewsController) CreateNews(c *fiber.Ctx) error {
	f, err := parseJSON(c)
	if err != nil {
		return err
	}
	article := f.ToModel()
	if err := h.db(c).Create(article).Error; err != nil {
		return err
	}
	log.Info().Int("news_id", article.ID).Msg("news article created")
	return helper.JsonCreated(c, "/api/news/"+strconv.Itoa(article.ID), "News article created successfully",
		newsDTO.ToNewsArticleDTO(article))
}

// POST /api/news/with-image (multipart). A failed upload leaves the article without image.
func (h *NewsController) CreateNewsWithImage(c *fiber.Ctx) error {
	f, fh, err := parseForm(c)
	if err != nil {
		return err
	}

	stored := storage.TryUpload(c.UserContext(), h.Storage, fh, constants.FolderNews)
	article := f.ToModel()
	if stored != nil {
		article.ImageURL = &stored.URL
	}

	if err := h.db(c).Create(article).Error; err != nil {
		if stored != nil {
			storage.DeleteQuietly(c.UserContext(), h.Storage, stored.URL)
		}
		return err
	}
	h.recordImage(c, stored, article.ID)

	log.Info().Int("news_id", article.ID).Bool("image", stored != nil).Msg("news article created")
	return helper.JsonCreated(c, "/api/news/"+strconv.Itoa(article.ID), "News article created successfully",
		newsDTO.ToNewsArticleDTO(article))
}

// PUT /api/news/:id
func (h *NewsController) UpdateNews(c *fiber.Ctx) error {
	article, err := h.findArticle(c)
	if err != nil {
		return err
	}
	f, err := parseJSON(c)
	if err != nil {
		return err
	}

	f.ApplyTo(article)
	article.ImageURL = f.ImageURL
	if err := h.db(c).Save(article).Error; err != nil {
		return err
	}
	return helper.JsonUpdated(c, "News article updated successfully", newsDTO.ToNewsArticleDTO(article))
}

// PUT /api/news/:id/with-image (multipart). The old image is replaced only
// when the new one was stored.
func (h *NewsController) UpdateNewsWithImage(c *fiber.Ctx) error {
	article, err := h.findArticle(c)
	if err != nil {
		return err
	}
	f, fh, err := parseForm(c)
	if err != nil {
		return err
	}

	stored := storage.TryUpload(c.UserContext(), h.Storage, fh, constants.FolderNews)
	previous := article.ImageURL

	f.ApplyTo(article)
	if stored != nil {
		article.ImageURL = &stored.URL
	}
	if err := h.db(c).Save(article).Error; err != nil {
		if stored != nil {
			storage.DeleteQuietly(c.UserContext(), h.Storage, stored.URL)
		}
		return err
	}
	if stored != nil {
		h.dropImage(c, previous)
		h.recordImage(c, stored, article.ID)
	}

	return helper.JsonUpdated(c, "News article updated successfully", newsDTO.ToNewsArticleDTO(article))
}

// DELETE /api/news/:id
func (h *NewsController) DeleteNews(c *fiber.Ctx) error {
	article, err := h.findArticle(c)
	if err != nil {
		return err
	}
	if err := h.db(c).Delete(article).Error; err != nil {
		return err
	}
	h.dropImage(c, article.ImageURL)

	log.Info().Int("news_id", article.ID).Msg("news article deleted")
	return helper.JsonDeleted(c, "News article deleted successfully")
}

func (h *NewsController) transition(c *fiber.Ctx, next newsModel.ContentStatus, msg string) error {
	article, err := h.findArticle(c)
	if err != nil {
		return err
	}
	if !article.Status.CanTransitionTo(next) {
		return helper.BadRequest(fmt.Sprintf("Cannot change news status from %s to %s", article.Status, next))
	}

	changes := map[string]any{"status": next}
	switch next {
	case newsModel.StatusPublished:
		now := dbtime.NowUTC()
		changes["published_date"] = now
		changes["published_time"] = dbtime.FormatClock(now)
	case newsModel.StatusDraft:
		changes["published_date"] = nil
		changes["published_time"] = nil
	}
	if err := h.db(c).Model(article).Updates(changes).Error; err != nil {
		return err
	}

	var fresh newsModel.NewsArticleModel
	if err := h.db(c).First(&fresh, article.ID).Error; err != nil {
		return err
	}
	return helper.JsonUpdated(c, msg, newsDTO.ToNewsArticleDTO(&fresh))
}

// PATCH /api/news/:id/publish
func (h *NewsController) PublishNews(c *fiber.Ctx) error {
	return h.transition(c, newsModel.StatusPublished, "News article published successfully")
}

// PATCH /api/news/:id/unpublish
func (h *NewsController) UnpublishNews(c *fiber.Ctx) error {
	return h.transition(c, newsModel.StatusDraft, "News article unpublished successfully")
}

// PATCH /api/news/:id/archive
func (h *NewsController) ArchiveNews(c *fiber.Ctx) error {
	return h.transition(c, newsModel.StatusArchived, "News article archived successfully")
}
