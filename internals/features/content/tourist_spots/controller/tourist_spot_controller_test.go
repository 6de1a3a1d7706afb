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

	tsDTO "alisto_backend/internals/features/content/tourist_spots/dto"
	"alisto_backend/internals/helpers/storage"
	"alisto_backend/internals/testutil"
)

func spotBody(name string) map[string]any {
	return map[string]any{
		"name":         name,
		"description":  "White sand beach with a view of the islets",
		"location":     "Barangay Calatagan",
		"address":      "Coastal Road, Calatagan",
		"openingHours": "6:00 AM - 6:00 PM",
		"entryFee":     "PHP 50",
		"highlights":   []string{"Snorkeling", " Sunset ", ""},
	}
}

func createSpot(c *qt.C, app *fiber.App, body map[string]any) tsDTO.TouristSpotDTO {
	c.Helper()
	res := testutil.JSON(c, app, http.MethodPost, "/api/touristspots", body)
	c.Assert(res.Status, qt.Equals, http.StatusCreated, qt.Commentf("%s", res.Raw))
	var got tsDTO.TouristSpotDTO
	res.Body.Decode(c, &got)
	return got
}

func TestCreateTouristSpot(t *testing.T) {
	c := qt.New(t)
	db := testutil.NewDB(c)
	app := testutil.NewApp(c, db, nil)

	got := createSpot(c, app, spotBody("Calatagan Beach"))
	c.Assert(got.Rating, qt.Equals, 5.0)
	c.Assert(got.IsActive, qt.IsTrue)
	c.Assert(got.Highlights, qt.DeepEquals, []string{"Snorkeling", "Sunset"})
	c.Assert(got.ImageURL, qt.Equals, "")

	rated := spotBody("Old Lighthouse")
	rated["rating"] = 4.5
	c.Assert(createSpot(c, app, rated).Rating, qt.Equals, 4.5)

	bad := spotBody("")
	bad["rating"] = 7
	res := testutil.JSON(c, app, http.MethodPost, "/api/touristspots", bad)
	c.Assert(res.Status, qt.Equals, http.StatusBadRequest)
	c.Assert(res.Body.Errors, qt.HasLen, 2)
}

func TestTouristSpotViewsAndActivation(t *testing.T) {
	c := qt.New(t)
	db := testutil.NewDB(c)
	app := testutil.NewApp(c, db, nil)
	beach := createSpot(c, app, spotBody("Calatagan Beach"))
	createSpot(c, app, spotBody("Anilao Reef"))
	path := "/api/touristspots/" + strconv.Itoa(beach.ID)

	var got tsDTO.TouristSpotDTO
	for i := 1; i <= 2; i++ {
		res := testutil.Get(c, app, path)
		c.Assert(res.Status, qt.Equals, http.StatusOK)
		res.Body.Decode(c, &got)
		c.Assert(got.ViewCount, qt.Equals, i)
	}

	res := testutil.JSON(c, app, http.MethodPatch, path+"/deactivate", nil)
	c.Assert(res.Status, qt.Equals, http.StatusOK)
	c.Assert(res.Body.Message, qt.Equals, "Tourist spot deactivated successfully")
	res.Body.Decode(c, &got)
	c.Assert(got.IsActive, qt.IsFalse)

	res = testutil.Get(c, app, "/api/touristspots?isActive=true")
	c.Assert(res.TotalCount(), qt.Equals, "1")
	var list []tsDTO.TouristSpotDTO
	res.Body.Decode(c, &list)
	c.Assert(list[0].Name, qt.Equals, "Anilao Reef")

	res = testutil.Get(c, app, "/api/touristspots?isActive=false")
	c.Assert(res.TotalCount(), qt.Equals, "1")

	res = testutil.JSON(c, app, http.MethodPatch, path+"/activate", nil)
	c.Assert(res.Status, qt.Equals, http.StatusOK)
	res = testutil.Get(c, app, "/api/touristspots")
	c.Assert(res.TotalCount(), qt.Equals, "2")
	res.Body.Decode(c, &list)
	c.Assert(list[0].Name, qt.Equals, "Anilao Reef")

	res = testutil.JSON(c, app, http.MethodPatch, "/api/touristspots/404/activate", nil)
	c.Assert(res.Status, qt.Equals, http.StatusNotFound)
	c.Assert(res.Body.Message, qt.Equals, "Tourist spot not found")
}

func TestUpdateTouristSpot(t *testing.T) {
	c := qt.New(t)
	db := testutil.NewDB(c)
	app := testutil.NewApp(c, db, nil)
	spot := createSpot(c, app, spotBody("Calatagan Beach"))

	body := spotBody("Calatagan Beach Resort")
	body["imageUrl"] = "https://cdn.example.com/beach.webp"
	body["isActive"] = false
	res := testutil.JSON(c, app, http.MethodPut, "/api/touristspots/"+strconv.Itoa(spot.ID), body)
	c.Assert(res.Status, qt.Equals, http.StatusOK, qt.Commentf("%s", res.Raw))
	var got tsDTO.TouristSpotDTO
	res.Body.Decode(c, &got)
	c.Assert(got.Name, qt.Equals, "Calatagan Beach Resort")
	c.Assert(got.ImageURL, qt.Equals, "https://cdn.example.com/beach.webp")
	c.Assert(got.IsActive, qt.IsFalse)
}

func spotForm(c *qt.C) (io.Reader, string) {
	return testutil.Multipart(c, [][2]string{
		{"name", "Taal Heritage Town"},
		{"description", "Ancestral houses and the basilica"},
		{"location", "Taal"},
		{"address", "Poblacion, Taal"},
		{"rating", "4"},
		{"highlights", `["Basilica","Ancestral houses"]`},
	}, testutil.FormFile{Field: "image", Name: "taal.jpg", ContentType: "image/jpeg", Data: []byte("jpeg")})
}

func TestTouristSpotWithImage(t *testing.T) {
	c := qt.New(t)
	db := testutil.NewDB(c)
	uploads := 0
	store := &storage.MockStorage{
		UploadFn: func(_ context.Context, fh *multipart.FileHeader, folder string) (*storage.StoredFile, error) {
			uploads++
			name := "taal-" + strconv.Itoa(uploads) + ".webp"
			return &storage.StoredFile{URL: "/uploads/" + folder + "/" + name, FileName: name,
				OriginalName: fh.Filename, ContentType: "image/webp", Size: fh.Size}, nil
		},
	}
	app := testutil.NewApp(c, db, store)

	body, ct := spotForm(c)
	res := testutil.Do(c, app, testutil.Request{Method: http.MethodPost, Path: "/api/touristspots/with-image",
		Body: body, ContentType: ct})
	c.Assert(res.Status, qt.Equals, http.StatusCreated, qt.Commentf("%s", res.Raw))
	var got tsDTO.TouristSpotDTO
	res.Body.Decode(c, &got)
	c.Assert(got.ImageURL, qt.Equals, "/uploads/tourist-spots/taal-1.webp")
	c.Assert(got.Rating, qt.Equals, 4.0)
	c.Assert(got.Highlights, qt.DeepEquals, []string{"Basilica", "Ancestral houses"})

	body, ct = spotForm(c)
	res = testutil.Do(c, app, testutil.Request{Method: http.MethodPut, Path: "/api/touristspots/" + strconv.Itoa(got.ID) + "/with-image",
		Body: body, ContentType: ct})
	c.Assert(res.Status, qt.Equals, http.StatusOK, qt.Commentf("%s", res.Raw))
	res.Body.Decode(c, &got)
	c.Assert(got.ImageURL, qt.Equals, "/uploads/tourist-spots/taal-2.webp")
	c.Assert(store.Deleted, qt.DeepEquals, []string{"/uploads/tourist-spots/taal-1.webp"})
}

func TestTouristSpotWithImageSurvivesUploadFailure(t *testing.T) {
	c := qt.New(t)
	db := testutil.NewDB(c)
	store := &storage.MockStorage{
		UploadFn: func(context.Context, *multipart.FileHeader, string) (*storage.StoredFile, error) {
			return nil, errors.New("disk full")
		},
	}
	app := testutil.NewApp(c, db, store)

	body, ct := spotForm(c)
	res := testutil.Do(c, app, testutil.Request{Method: http.MethodPost, Path: "/api/touristspots/with-image",
		Body: body, ContentType: ct})
	c.Assert(res.Status, qt.Equals, http.StatusCreated, qt.Commentf("%s", res.Raw))
	var got tsDTO.TouristSpotDTO
	res.Body.Decode(c, &got)
	c.Assert(got.ImageURL, qt.Equals, "")
	c.Assert(got.Name, qt.Equals, "Taal Heritage Town")
}
