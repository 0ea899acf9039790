package controller

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"condoadmin_backend/internal/content"
	"condoadmin_backend/internal/model"
	"condoadmin_backend/pkg/database"
)

// GetHomePage returns the complete, render-safe home page document: the
// stored patch merged over the defaults. A website with no stored patch gets
// the defaults untouched.
func GetHomePage(c *fiber.Ctx) error {
	websiteID := c.Params("website_id")

	var page model.HomePage
	err := database.GetDB().Where("website_id = ?", websiteID).First(&page).Error
	if err == gorm.ErrRecordNotFound {
		return c.JSON(fiber.Map{
			"content": content.DefaultDocument(),
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch home page",
		})
	}

	var patch content.Patch
	if len(page.Content) > 0 {
		if err := json.Unmarshal(page.Content, &patch); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Stored home page content is corrupt",
			})
		}
	}

	return c.JSON(fiber.Map{
		"content": content.Merge(content.DefaultDocument(), patch),
	})
}

// UpdateHomePage stores the submitted patch verbatim. Sections the editor
// never touched stay unset, so future default changes flow through to them.
func UpdateHomePage(c *fiber.Ctx) error {
	websiteID, err := websiteIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid website ID",
		})
	}

	patch := new(content.Patch)
	if err := c.BodyParser(patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	// Items saved without an id get a stable one now; from here on the
	// editor addresses them by id, not index.
	content.EnsureItemIDs(patch)

	data, err := json.Marshal(patch)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not encode home page content",
		})
	}

	var page model.HomePage
	err = database.GetDB().Where("website_id = ?", websiteID).First(&page).Error
	switch {
	case err == gorm.ErrRecordNotFound:
		page = model.HomePage{WebsiteID: websiteID, Content: data}
		if err := database.GetDB().Create(&page).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Could not save home page",
			})
		}
	case err != nil:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch home page",
		})
	default:
		page.Content = data
		if err := database.GetDB().Save(&page).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Could not save home page",
			})
		}
	}

	return c.JSON(fiber.Map{
		"message": "Home page saved",
		"content": content.Merge(content.DefaultDocument(), *patch),
	})
}
