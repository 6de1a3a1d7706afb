package controller_test

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/gofiber/fiber/v2"

	newsDTO "alisto_backend/internals/features/content/news/dto"
	newsModel "alisto_backend/internals/features/content/news/model"
	infoModel "alisto_backend/internals/features/information/model"
	"alisto_backend/internals/helpers/storage"
	"alisto_backend/internals/testutil"
)

func newsBody(title string) map[string]any {
	return map[string]any{
		"title":       title,
		"summary":     "Street dancing and food stalls",
		"fullContent": "The annual town fiesta opens on Friday.",
		"location":    "Town Plaza",
		"category":    newsModel.CategoryFestival,
		"author":      "Public Information Office",
		"tags":        []string{"fiesta", " culture ", ""},
	}
}

func createNews(c *qt.C, app *fiber.App, body map[string]any) newsDTO.NewsArticleDTO {
	c.Helper()
	res := testutil.JSON(c, app, http.MethodPost, "/api/news", body)
	c.Assert(res.Status, qt.Equals, http.StatusCreated, qt.Commentf("%s", res.Raw))
	var got newsDTO.NewsArticleDTO
	res.Body.Decode(c, &got)
	return got
}

func publish(c *qt.C, app *fiber.App, id int) newsDTO.NewsArticleDTO {
	c.Helper()
	res := testutil.JSON(c, app, http.MethodPatch, "/api/news/"+strconv.Itoa(id)+"/publish", nil)
	c.Assert(res.Status, qt.Equals, http.StatusOK, qt.Commentf("%s", res.Raw))
	var got newsDTO.NewsArticleDTO
	res.Body.Decode(c, &got)
	return got
}

func TestCreateNewsStartsAsDraft(t *testing.T) {
	c := qt.New(t)
	db := testutil.NewDB(c)
	app := testutil.NewApp(c, db, nil)

	body := newsBody("Town Fiesta 2024")
	body["status"] = newsModel.StatusPublished
	got := createNews(c, app, body)
	c.Assert(got.Status, qt.Equals, newsModel.StatusDraft)
	c.Assert(got.PublishedDate, qt.IsNil)
	c.Assert(got.Tags, qt.DeepEquals, []string{"fiesta", "culture"})

	res := testutil.Get(c, app, "/api/news/"+strconv.Itoa(got.ID))
	c.Assert(res.Status, qt.Equals, http.StatusNotFound)
	c.Assert(res.Body.Message, qt.Equals, "News article not found")

	res = testutil.Get(c, app, "/api/news")
	c.Assert(res.TotalCount(), qt.Equals, "0")

	body = newsBody("")
	body["category"] = "Gossip"
	res = testutil.JSON(c, app, http.MethodPost, "/api/news", body)
	c.Assert(res.Status, qt.Equals, http.StatusBadRequest)
	c.Assert(res.Body.Errors, qt.HasLen, 2)
}

func TestPublishAndUnpublishNews(t *testing.T) {
	c := qt.New(t)
	db := testutil.NewDB(c)
	app := testutil.NewApp(c, db, nil)
	article := createNews(c, app, newsBody("Road Closure Advisory"))

	got := publish(c, app, article.ID)
	c.Assert(got.Status, qt.Equals, newsModel.StatusPublished)
	c.Assert(got.PublishedDate, qt.IsNotNil)
	c.Assert(got.PublishedTime, qt.IsNotNil)
	c.Assert(*got.PublishedTime, qt.Matches, `\d{1,2}:\d{2} (AM|PM)`)

	res := testutil.JSON(c, app, http.MethodPatch, "/api/news/"+strconv.Itoa(article.ID)+"/publish", nil)
	c.Assert(res.Status, qt.Equals, http.StatusBadRequest)
	c.Assert(res.Body.Message, qt.Equals, "Cannot change news status from Published to Published")

	res = testutil.Get(c, app, "/api/news")
	c.Assert(res.TotalCount(), qt.Equals, "1")
	var list []newsDTO.NewsArticleDTO
	res.Body.Decode(c, &list)
	c.Assert(list[0].FullContent, qt.Equals, "")

	res = testutil.JSON(c, app, http.MethodPatch, "/api/news/"+strconv.Itoa(article.ID)+"/unpublish", nil)
	c.Assert(res.Status, qt.Equals, http.StatusOK)
	res.Body.Decode(c, &got)
	c.Assert(got.Status, qt.Equals, newsModel.StatusDraft)
	c.Assert(got.PublishedDate, qt.IsNil)
	c.Assert(got.PublishedTime, qt.IsNil)

	res = testutil.JSON(c, app, http.MethodPatch, "/api/news/"+strconv.Itoa(article.ID)+"/archive", nil)
	c.Assert(res.Status, qt.Equals, http.StatusOK)
	res = testutil.JSON(c, app, http.MethodPatch, "/api/news/"+strconv.Itoa(article.ID)+"/publish", nil)
	c.Assert(res.Status, qt.Equals, http.StatusBadRequest)
}

func TestNewsViewCount(t *testing.T) {
	c := qt.New(t)
	db := testutil.NewDB(c)
	app := testutil.NewApp(c, db, nil)
	article := createNews(c, app, newsBody("Vaccination Drive"))
	publish(c, app, article.ID)

	var got newsDTO.NewsArticleDTO
	for i := 1; i <= 3; i++ {
		res := testutil.Get(c, app, "/api/news/"+strconv.Itoa(article.ID))
		c.Assert(res.Status, qt.Equals, http.StatusOK)
		res.Body.Decode(c, &got)
		c.Assert(got.ViewCount, qt.Equals, i)
	}
	c.Assert(got.FullContent, qt.Equals, "The annual town fiesta opens on Friday.")

	var stored newsModel.NewsArticleModel
	c.Assert(db.First(&stored, article.ID).Error, qt.IsNil)
	c.Assert(stored.ViewCount, qt.Equals, 3)
}

func TestFeaturedAndTrendingNews(t *testing.T) {
	c := qt.New(t)
	db := testutil.NewDB(c)
	app := testutil.NewApp(c, db, nil)

	featured := newsBody("Featured Story")
	featured["isFeatured"] = true
	trending := newsBody("Trending Story")
	trending["isTrending"] = true
	trending["category"] = newsModel.CategoryHealth
	draftFeatured := newsBody("Unreleased Feature")
	draftFeatured["isFeatured"] = true

	publish(c, app, createNews(c, app, featured).ID)
	publish(c, app, createNews(c, app, trending).ID)
	createNews(c, app, draftFeatured)

	res := testutil.Get(c, app, "/api/news/featured")
	c.Assert(res.Status, qt.Equals, http.StatusOK)
	var list []newsDTO.NewsArticleDTO
	res.Body.Decode(c, &list)
	c.Assert(list, qt.HasLen, 1)
	c.Assert(list[0].Title, qt.Equals, "Featured Story")

	res = testutil.Get(c, app, "/api/news/trending")
	res.Body.Decode(c, &list)
	c.Assert(list, qt.HasLen, 1)
	c.Assert(list[0].Title, qt.Equals, "Trending Story")

	res = testutil.Get(c, app, "/api/news?category=Health")
	c.Assert(res.TotalCount(), qt.Equals, "1")
	res = testutil.Get(c, app, "/api/news?isFeatured=true")
	c.Assert(res.TotalCount(), qt.Equals, "1")
	res = testutil.Get(c, app, "/api/news?isFeatured=maybe")
	c.Assert(res.Status, qt.Equals, http.StatusBadRequest)
}

func newsForm(c *qt.C) (io.Reader, string) {
	return testutil.Multipart(c, newsFormFields(),
		testutil.FormFile{Field: "image", Name: "river.png", ContentType: "image/png", Data: []byte("png")})
}

func newsFormFields() [][2]string {
	return [][2]string{
		{"title", "Clean-up Drive"},
		{"fullContent", "Volunteers meet at the river bank."},
		{"location", "Riverside"},
		{"category", string(newsModel.CategoryEnvironment)},
		{"author", "CENRO"},
		{"tags", "environment, volunteers"},
		{"isFeatured", "true"},
	}
}

func TestCreateNewsWithImage(t *testing.T) {
	c := qt.New(t)
	db := testutil.NewDB(c)
	store := &storage.MockStorage{
		UploadFn: func(_ context.Context, fh *multipart.FileHeader, folder string) (*storage.StoredFile, error) {
			return &storage.StoredFile{URL: "/uploads/" + folder + "/river.webp", FileName: "river.webp",
				OriginalName: fh.Filename, ContentType: "image/webp", Size: 3}, nil
		},
	}
	app := testutil.NewApp(c, db, store)

	body, ct := newsForm(c)
	res := testutil.Do(c, app, testutil.Request{Method: http.MethodPost, Path: "/api/news/with-image", Body: body, ContentType: ct})
	c.Assert(res.Status, qt.Equals, http.StatusCreated, qt.Commentf("%s", res.Raw))
	var got newsDTO.NewsArticleDTO
	res.Body.Decode(c, &got)
	c.Assert(*got.ImageURL, qt.Equals, "/uploads/news/river.webp")
	c.Assert(got.Tags, qt.DeepEquals, []string{"environment", "volunteers"})
	c.Assert(got.IsFeatured, qt.IsTrue)
	c.Assert(got.Status, qt.Equals, newsModel.StatusDraft)

	var uploads int64
	c.Assert(db.Model(&infoModel.FileUploadModel{}).Where("entity_type = ?", "NewsArticle").Count(&uploads).Error, qt.IsNil)
	c.Assert(uploads, qt.Equals, int64(1))

	res = testutil.Do(c, app, testutil.Request{Method: http.MethodDelete, Path: "/api/news/" + strconv.Itoa(got.ID)})
	c.Assert(res.Status, qt.Equals, http.StatusOK)
	c.Assert(store.Deleted, qt.DeepEquals, []string{"/uploads/news/river.webp"})
}

func TestCreateNewsWithImageSurvivesUploadFailure(t *testing.T) {
	c := qt.New(t)
	db := testutil.NewDB(c)
	store := &storage.MockStorage{
		UploadFn: func(context.Context, *multipart.FileHeader, string) (*storage.StoredFile, error) {
			return nil, errors.New("bucket unreachable")
		},
	}
	app := testutil.NewApp(c, db, store)

	body, ct := newsForm(c)
	res := testutil.Do(c, app, testutil.Request{Method: http.MethodPost, Path: "/api/news/with-image", Body: body, ContentType: ct})
	c.Assert(res.Status, qt.Equals, http.StatusCreated, qt.Commentf("%s", res.Raw))
	var got newsDTO.NewsArticleDTO
	res.Body.Decode(c, &got)
	c.Assert(got.ImageURL, qt.IsNil)
	c.Assert(got.Title, qt.Equals, "Clean-up Drive")
}

func TestUpdateNewsWithImageReplacesOldImage(t *testing.T) {
	c := qt.New(t)
	db := testutil.NewDB(c)
	uploads := 0
	store := &storage.MockStorage{
		UploadFn: func(_ context.Context, fh *multipart.FileHeader, folder string) (*storage.StoredFile, error) {
			uploads++
			name := "river-" + strconv.Itoa(uploads) + ".webp"
			return &storage.StoredFile{URL: "/uploads/" + folder + "/" + name, FileName: name,
				OriginalName: fh.Filename, ContentType: "image/webp", Size: fh.Size}, nil
		},
	}
	app := testutil.NewApp(c, db, store)

	body, ct := newsForm(c)
	res := testutil.Do(c, app, testutil.Request{Method: http.MethodPost, Path: "/api/news/with-image", Body: body, ContentType: ct})
	c.Assert(res.Status, qt.Equals, http.StatusCreated, qt.Commentf("%s", res.Raw))
	var got newsDTO.NewsArticleDTO
	res.Body.Decode(c, &got)
	c.Assert(*got.ImageURL, qt.Equals, "/uploads/news/river-1.webp")
	path := "/api/news/" + strconv.Itoa(got.ID) + "/with-image"

	body, ct = newsForm(c)
	res = testutil.Do(c, app, testutil.Request{Method: http.MethodPut, Path: path, Body: body, ContentType: ct})
	c.Assert(res.Status, qt.Equals, http.StatusOK, qt.Commentf("%s", res.Raw))
	res.Body.Decode(c, &got)
	c.Assert(*got.ImageURL, qt.Equals, "/uploads/news/river-2.webp")
	c.Assert(store.Deleted, qt.DeepEquals, []string{"/uploads/news/river-1.webp"})

	var rows []infoModel.FileUploadModel
	c.Assert(db.Where("entity_type = ?", "NewsArticle").Find(&rows).Error, qt.IsNil)
	c.Assert(rows, qt.HasLen, 1)
	c.Assert(rows[0].FilePath, qt.Equals, "/uploads/news/river-2.webp")

	// no file keeps the current image
	body, ct = testutil.Multipart(c, newsFormFields())
	res = testutil.Do(c, app, testutil.Request{Method: http.MethodPut, Path: path, Body: body, ContentType: ct})
	c.Assert(res.Status, qt.Equals, http.StatusOK, qt.Commentf("%s", res.Raw))
	res.Body.Decode(c, &got)
	c.Assert(*got.ImageURL, qt.Equals, "/uploads/news/river-2.webp")
	c.Assert(store.Deleted, qt.HasLen, 1)
}
