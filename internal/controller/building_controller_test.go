package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"condoadmin_backend/internal/content/selection"
	"condoadmin_backend/internal/model"
)

func buildingTestApp() *fiber.App {
	app := fiber.New()
	app.Post("/websites/:website_id/buildings", CreateBuilding)
	app.Get("/websites/:website_id/buildings", ListBuildings)
	app.Get("/buildings/:id", GetBuilding)
	app.Put("/buildings/:id", UpdateBuilding)
	app.Delete("/buildings/:id", DeleteBuilding)
	return app
}

// TestCreateBuildingPersistsToggledSelection walks the amenity picker flow:
// pool toggled on, gym toggled on, pool toggled off again. Only the amenity
// still selected at submission time may end up on the building.
func TestCreateBuildingPersistsToggledSelection(t *testing.T) {
	testDB := setupTestDB(t)

	website := model.Website{UserID: 1, Name: "Downtown Living"}
	require.NoError(t, testDB.Create(&website).Error)

	catalog := []model.Amenity{
		{Name: "Gym", Category: model.AmenityCategoryGeneral},
		{Name: "Indoor Pool", Category: model.AmenityCategoryGeneral},
	}
	for i := range catalog {
		require.NoError(t, testDB.Create(&catalog[i]).Error)
	}

	var sel []model.Amenity
	sel = selection.Toggle(sel, catalog[1])
	sel = selection.Toggle(sel, catalog[0])
	sel = selection.Toggle(sel, catalog[1])

	payload, err := json.Marshal(fiber.Map{
		"name":          "Harbour Tower",
		"building_type": "condominium",
		"listing_type":  "for_sale",
		"amenity_ids":   selection.IDs(sel),
	})
	require.NoError(t, err)

	app := buildingTestApp()
	req := httptest.NewRequest("POST", fmt.Sprintf("/websites/%d/buildings", website.ID), bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var stored model.Building
	require.NoError(t, testDB.Preload("Amenities").First(&stored).Error)
	require.Len(t, stored.Amenities, 1)
	assert.Equal(t, "Gym", stored.Amenities[0].Name)
	assert.Equal(t, model.BuildingStatusDraft, stored.Status)
	assert.Equal(t, "harbour-tower", stored.Slug)
}

func TestCreateBuildingValidation(t *testing.T) {
	testDB := setupTestDB(t)

	website := model.Website{UserID: 1, Name: "Downtown Living"}
	require.NoError(t, testDB.Create(&website).Error)

	payload, err := json.Marshal(fiber.Map{
		"building_type": "castle",
		"listing_type":  "for_sale",
	})
	require.NoError(t, err)

	app := buildingTestApp()
	req := httptest.NewRequest("POST", fmt.Sprintf("/websites/%d/buildings", website.ID), bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	var body struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body.Errors, "name")
	assert.Contains(t, body.Errors, "building_type")
	assert.NotContains(t, body.Errors, "listing_type")

	var count int64
	testDB.Model(&model.Building{}).Count(&count)
	assert.Equal(t, int64(0), count, "rejected input must not create a building")
}

// TestUpdateBuildingImageOrderRoundTrips saves a reordered gallery and
// verifies the stored order matches the submitted order exactly, with the
// first image as cover.
func TestUpdateBuildingImageOrderRoundTrips(t *testing.T) {
	testDB := setupTestDB(t)

	website := model.Website{UserID: 1, Name: "Downtown Living"}
	require.NoError(t, testDB.Create(&website).Error)

	building := model.Building{
		Name:         "Harbour Tower",
		WebsiteID:    website.ID,
		BuildingType: model.BuildingTypeCondominium,
		Status:       model.BuildingStatusActive,
		ListingType:  model.ListingTypeForSale,
	}
	require.NoError(t, testDB.Create(&building).Error)
	for i, url := range []string{"https://cdn.test/a.png", "https://cdn.test/b.png", "https://cdn.test/c.png"} {
		require.NoError(t, testDB.Create(&model.BuildingImage{
			BuildingID: building.ID, URL: url, Order: i, IsCover: i == 0,
		}).Error)
	}

	payload, err := json.Marshal(fiber.Map{
		"name":          "Harbour Tower",
		"building_type": "condominium",
		"listing_type":  "for_sale",
		"images":        []string{"https://cdn.test/c.png", "https://cdn.test/a.png", "https://cdn.test/b.png"},
	})
	require.NoError(t, err)

	app := buildingTestApp()
	req := httptest.NewRequest("PUT", fmt.Sprintf("/buildings/%d", building.ID), bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated model.Building
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	require.Len(t, updated.Images, 3)
	assert.Equal(t, "https://cdn.test/c.png", updated.Images[0].URL)
	assert.Equal(t, "https://cdn.test/a.png", updated.Images[1].URL)
	assert.Equal(t, "https://cdn.test/b.png", updated.Images[2].URL)
	assert.True(t, updated.Images[0].IsCover)
	assert.False(t, updated.Images[1].IsCover)

	var count int64
	testDB.Model(&model.BuildingImage{}).Where("building_id = ?", building.ID).Count(&count)
	assert.Equal(t, int64(3), count, "reorder must not accumulate rows")
}

func TestListBuildingsPagination(t *testing.T) {
	testDB := setupTestDB(t)

	website := model.Website{UserID: 1, Name: "Downtown Living"}
	require.NoError(t, testDB.Create(&website).Error)

	for i := 0; i < 5; i++ {
		require.NoError(t, testDB.Create(&model.Building{
			Name:         fmt.Sprintf("Tower %d", i),
			WebsiteID:    website.ID,
			BuildingType: model.BuildingTypeCondominium,
			Status:       model.BuildingStatusActive,
			ListingType:  model.ListingTypeForRent,
		}).Error)
	}

	app := buildingTestApp()
	req := httptest.NewRequest("GET", fmt.Sprintf("/websites/%d/buildings?page=2&per_page=2", website.ID), nil)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Buildings []model.Building `json:"buildings"`
		Total     int64            `json:"total"`
		Page      int              `json:"page"`
		PerPage   int              `json:"per_page"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(5), body.Total)
	assert.Equal(t, 2, body.Page)
	assert.Len(t, body.Buildings, 2)
}

func TestDeleteBuildingRemovesDependents(t *testing.T) {
	testDB := setupTestDB(t)

	website := model.Website{UserID: 1, Name: "Downtown Living"}
	require.NoError(t, testDB.Create(&website).Error)

	amenity := model.Amenity{Name: "Concierge", Category: model.AmenityCategoryGeneral}
	require.NoError(t, testDB.Create(&amenity).Error)

	building := model.Building{
		Name:         "Harbour Tower",
		WebsiteID:    website.ID,
		BuildingType: model.BuildingTypeCondominium,
		Status:       model.BuildingStatusActive,
		ListingType:  model.ListingTypeForSale,
		Amenities:    []model.Amenity{amenity},
	}
	require.NoError(t, testDB.Create(&building).Error)
	require.NoError(t, testDB.Create(&model.BuildingImage{
		BuildingID: building.ID, URL: "https://cdn.test/a.png", IsCover: true,
	}).Error)

	app := buildingTestApp()
	req := httptest.NewRequest("DELETE", fmt.Sprintf("/buildings/%d", building.ID), nil)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	var buildingCount, imageCount, joinCount int64
	testDB.Model(&model.Building{}).Count(&buildingCount)
	testDB.Model(&model.BuildingImage{}).Count(&imageCount)
	testDB.Table("building_amenities").Count(&joinCount)
	assert.Equal(t, int64(0), buildingCount)
	assert.Equal(t, int64(0), imageCount)
	assert.Equal(t, int64(0), joinCount)

	var amenityCount int64
	testDB.Model(&model.Amenity{}).Count(&amenityCount)
	assert.Equal(t, int64(1), amenityCount, "deleting a building must not touch the catalog")
}
