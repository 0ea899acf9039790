package controller

import (
	"github.com/gofiber/fiber/v2"

	"condoadmin_backend/internal/model"
	"condoadmin_backend/pkg/ai"
	"condoadmin_backend/pkg/database"
)

// GenerateDescriptionInput is the form snapshot submitted for generation.
// BuildingID is zero on the create screen.
type GenerateDescriptionInput struct {
	BuildingID   uint                   `json:"building_id"`
	BuildingData map[string]interface{} `json:"building_data"`
	AmenityIDs   []uint                 `json:"amenity_ids"`
}

// GenerateDescription performs the single AI round trip: snapshot in,
// description or error out. No retry; the user retries manually.
func GenerateDescription(c *fiber.Ctx) error {
	input := new(GenerateDescriptionInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid input",
		})
	}

	if len(input.BuildingData) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "building_data is required",
		})
	}

	// The snapshot carries amenity names, not ids; resolve them here so the
	// generation prompt reads naturally.
	var names []string
	if len(input.AmenityIDs) > 0 {
		var amenities []model.Amenity
		if err := database.GetDB().Find(&amenities, input.AmenityIDs).Error; err == nil {
			for _, a := range amenities {
				names = append(names, a.Name)
			}
		}
	}

	description, err := ai.Default.GenerateDescription(c.Context(), ai.GenerateRequest{
		BuildingID:   input.BuildingID,
		BuildingData: input.BuildingData,
		Amenities:    names,
	})
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"description": description,
	})
}
