package controller_test

import (
	"net/http"
	"testing"

	qt "github.com/frankban/quicktest"

	csDTO "alisto_backend/internals/features/services/city_services/dto"
	csModel "alisto_backend/internals/features/services/city_services/model"
	"alisto_backend/internals/seeds"
	"alisto_backend/internals/testutil"
)

func TestCityServiceCatalogue(t *testing.T) {
	c := qt.New(t)
	db := testutil.NewDB(c)
	c.Assert(seeds.RunAllSeeds(db), qt.IsNil)
	c.Assert(db.Model(&csModel.CityServiceModel{}).Where("id = ?", 3).Update("is_active", false).Error, qt.IsNil)
	app := testutil.NewApp(c, db, nil)

	res := testutil.Get(c, app, "/api/cityservices?pageSize=5")
	c.Assert(res.Status, qt.Equals, http.StatusOK)
	c.Assert(res.TotalCount(), qt.Equals, "12")
	var page []csDTO.CityServiceDTO
	res.Body.Decode(c, &page)
	c.Assert(page, qt.HasLen, 5)
	c.Assert(page[0].CategoryName, qt.Equals, "Civil Registry")

	res = testutil.Get(c, app, "/api/cityservices?categoryId=1&isActive=true")
	c.Assert(res.TotalCount(), qt.Equals, "2")

	res = testutil.Get(c, app, "/api/cityservices/1")
	c.Assert(res.Status, qt.Equals, http.StatusOK)
	var birth csDTO.CityServiceDTO
	res.Body.Decode(c, &birth)
	c.Assert(birth.RequiredDocuments, qt.DeepEquals, []string{"Valid ID", "Authorization letter if not the owner"})

	res = testutil.Get(c, app, "/api/cityservices/999")
	c.Assert(res.Status, qt.Equals, http.StatusNotFound)
	c.Assert(res.Body.Message, qt.Equals, "City service not found")

	res = testutil.Get(c, app, "/api/cityservices/categories")
	c.Assert(res.Status, qt.Equals, http.StatusOK)
	var cats []csDTO.ServiceCategoryDTO
	res.Body.Decode(c, &cats)
	c.Assert(cats, qt.HasLen, 6)
	c.Assert(cats[0].Name, qt.Equals, "Civil Registry")
	c.Assert(cats[0].Services, qt.HasLen, 2)

	res = testutil.Get(c, app, "/api/cityservices/categories/6")
	c.Assert(res.Status, qt.Equals, http.StatusOK)
}
