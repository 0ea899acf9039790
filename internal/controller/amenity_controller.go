package controller

import (
	"github.com/gofiber/fiber/v2"

	"condoadmin_backend/internal/content/selection"
	"condoadmin_backend/internal/model"
	"condoadmin_backend/pkg/database"
)

// ListAmenities returns the amenity catalog, optionally narrowed by
// category and filtered by a case-insensitive name query. Served behind the
// catalog cache; the search filter runs on the loaded catalog, matching the
// picker's behavior.
func ListAmenities(c *fiber.Ctx) error {
	q := database.GetDB().Order("name asc")
	if cat := c.Query("category"); cat != "" {
		if !model.AmenityCategory(cat).Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Unknown amenity category",
			})
		}
		q = q.Where("category = ?", cat)
	}

	var amenities []model.Amenity
	if err := q.Find(&amenities).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch amenities",
		})
	}

	if query := c.Query("q"); query != "" {
		amenities = selection.Search(amenities, query)
	}

	return c.JSON(amenities)
}
