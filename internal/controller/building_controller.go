package controller

import (
	"encoding/json"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"condoadmin_backend/internal/model"
	"condoadmin_backend/pkg/database"
	"condoadmin_backend/pkg/utils/validation"
)

const DefaultPageSize = 20

type BuildingInput struct {
	Name         string               `json:"name" validate:"required"`
	BuildingType model.BuildingType   `json:"building_type" validate:"required"`
	Status       model.BuildingStatus `json:"status"`
	ListingType  model.ListingType    `json:"listing_type" validate:"required"`

	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	Province      string `json:"province"`
	PostalCode    string `json:"postal_code"`
	Neighbourhood string `json:"neighbourhood"`

	TotalUnits int `json:"total_units" validate:"omitempty,min=0"`
	Floors     int `json:"floors" validate:"omitempty,min=0"`
	YearBuilt  int `json:"year_built" validate:"omitempty,min=0"`

	Description     string `json:"description"`
	DeveloperName   string `json:"developer_name"`
	ManagementNotes string `json:"management_notes"`

	Features   json.RawMessage `json:"features"`
	Transit    json.RawMessage `json:"transit"`
	FloorPlans json.RawMessage `json:"floor_plans"`

	// Ordered image URLs; persisted order is the display order.
	Images []string `json:"images"`

	// Ordered id projections of the amenity selections.
	AmenityIDs            []uint `json:"amenity_ids"`
	MaintenanceAmenityIDs []uint `json:"maintenance_amenity_ids"`
}

// enumErrors checks the closed enum fields; invalid values are reported
// under the field name like any other validation failure.
func (in *BuildingInput) enumErrors() map[string]string {
	errs := map[string]string{}
	if !in.BuildingType.Valid() {
		errs["building_type"] = "Unknown building type"
	}
	if in.Status != "" && !in.Status.Valid() {
		errs["status"] = "Unknown status"
	}
	if !in.ListingType.Valid() {
		errs["listing_type"] = "Unknown listing type"
	}
	return errs
}

func inputErrors(in *BuildingInput) map[string]string {
	errs := validation.Fields(in)
	for field, msg := range in.enumErrors() {
		errs[field] = msg
	}
	return errs
}

func (in *BuildingInput) apply(b *model.Building) {
	b.Name = in.Name
	b.BuildingType = in.BuildingType
	if in.Status != "" {
		b.Status = in.Status
	}
	b.ListingType = in.ListingType
	b.StreetAddress = in.StreetAddress
	b.City = in.City
	b.Province = in.Province
	b.PostalCode = in.PostalCode
	b.Neighbourhood = in.Neighbourhood
	b.TotalUnits = in.TotalUnits
	b.Floors = in.Floors
	b.YearBuilt = in.YearBuilt
	b.Description = in.Description
	b.DeveloperName = in.DeveloperName
	b.ManagementNotes = in.ManagementNotes
	if in.Features != nil {
		b.Features = []byte(in.Features)
	}
	if in.Transit != nil {
		b.Transit = []byte(in.Transit)
	}
	if in.FloorPlans != nil {
		b.FloorPlans = []byte(in.FloorPlans)
	}
}

func preloadBuilding(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order(`"order" ASC`)
		}).
		Preload("Amenities").
		Preload("MaintenanceAmenities")
}

// ListBuildings returns one page of a website's buildings.
func ListBuildings(c *fiber.Ctx) error {
	websiteID := c.Params("website_id")

	page, _ := strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(c.Query("per_page", strconv.Itoa(DefaultPageSize)))
	if perPage < 1 || perPage > 100 {
		perPage = DefaultPageSize
	}

	var total int64
	database.GetDB().Model(&model.Building{}).Where("website_id = ?", websiteID).Count(&total)

	var buildings []model.Building
	if err := preloadBuilding(database.GetDB()).
		Where("website_id = ?", websiteID).
		Order("created_at desc").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&buildings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch buildings",
		})
	}

	return c.JSON(fiber.Map{
		"buildings": buildings,
		"total":     total,
		"page":      page,
		"per_page":  perPage,
	})
}

// CreateBuilding stores a new building with its ordered gallery and amenity
// selections in one transaction.
func CreateBuilding(c *fiber.Ctx) error {
	websiteID, err := strconv.ParseUint(c.Params("website_id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid website ID",
		})
	}

	input := new(BuildingInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if errs := inputErrors(input); len(errs) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"errors": errs,
		})
	}

	building := model.Building{WebsiteID: uint(websiteID), Status: model.BuildingStatusDraft}
	input.apply(&building)

	tx := database.GetDB().Begin()

	if err := tx.Create(&building).Error; err != nil {
		tx.Rollback()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create building",
		})
	}

	if err := saveImages(tx, building.ID, input.Images); err != nil {
		tx.Rollback()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not save images",
		})
	}

	if err := replaceAmenities(tx, &building, input.AmenityIDs, input.MaintenanceAmenityIDs); err != nil {
		tx.Rollback()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not save amenities",
		})
	}

	if err := tx.Commit().Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not complete the building creation",
		})
	}

	preloadBuilding(database.GetDB()).First(&building, building.ID)

	return c.Status(fiber.StatusCreated).JSON(building)
}

// GetBuilding returns one building with images and amenities for the show
// and edit screens.
func GetBuilding(c *fiber.Ctx) error {
	id := c.Params("id")

	var building model.Building
	if err := preloadBuilding(database.GetDB()).First(&building, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Building not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch building",
		})
	}

	return c.JSON(building)
}

// UpdateBuilding replaces the building's fields, gallery order and amenity
// selections. The submitted image order round-trips exactly.
func UpdateBuilding(c *fiber.Ctx) error {
	id := c.Params("id")
	input := new(BuildingInput)

	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if errs := inputErrors(input); len(errs) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"errors": errs,
		})
	}

	var building model.Building
	if err := database.GetDB().First(&building, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Building not found",
		})
	}

	input.apply(&building)

	tx := database.GetDB().Begin()

	if err := tx.Save(&building).Error; err != nil {
		tx.Rollback()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update building",
		})
	}

	if err := tx.Where("building_id = ?", building.ID).Delete(&model.BuildingImage{}).Error; err != nil {
		tx.Rollback()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update images",
		})
	}

	if err := saveImages(tx, building.ID, input.Images); err != nil {
		tx.Rollback()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not save new images",
		})
	}

	if err := replaceAmenities(tx, &building, input.AmenityIDs, input.MaintenanceAmenityIDs); err != nil {
		tx.Rollback()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update amenities",
		})
	}

	if err := tx.Commit().Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not complete the update",
		})
	}

	preloadBuilding(database.GetDB()).First(&building, building.ID)

	return c.JSON(building)
}

// DeleteBuilding removes a building. Confirmation happens client-side; this
// endpoint is only reached after the user confirmed.
func DeleteBuilding(c *fiber.Ctx) error {
	id := c.Params("id")

	var building model.Building
	if err := database.GetDB().First(&building, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Building not found",
		})
	}

	tx := database.GetDB().Begin()

	if err := tx.Select("Images", "Amenities", "MaintenanceAmenities").Delete(&building).Error; err != nil {
		tx.Rollback()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete building",
		})
	}

	if err := tx.Commit().Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not complete deletion",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func saveImages(tx *gorm.DB, buildingID uint, urls []string) error {
	for i, url := range urls {
		image := model.BuildingImage{
			BuildingID: buildingID,
			URL:        url,
			Order:      i,
			IsCover:    i == 0,
		}
		if err := tx.Create(&image).Error; err != nil {
			return err
		}
	}
	return nil
}

// replaceAmenities swaps both selection sets for the submitted id lists.
// Unknown ids are dropped silently; the catalog is the source of truth.
func replaceAmenities(tx *gorm.DB, building *model.Building, amenityIDs, maintenanceIDs []uint) error {
	var amenities []model.Amenity
	if len(amenityIDs) > 0 {
		if err := tx.Find(&amenities, amenityIDs).Error; err != nil {
			return err
		}
	}
	if err := tx.Model(building).Association("Amenities").Replace(amenities); err != nil {
		return err
	}

	var maintenance []model.Amenity
	if len(maintenanceIDs) > 0 {
		if err := tx.Find(&maintenance, maintenanceIDs).Error; err != nil {
			return err
		}
	}
	return tx.Model(building).Association("MaintenanceAmenities").Replace(maintenance)
}
