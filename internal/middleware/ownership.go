package middleware

import (
	"github.com/gofiber/fiber/v2"

	"condoadmin_backend/internal/model"
	"condoadmin_backend/pkg/database"
	"condoadmin_backend/pkg/utils/jwt"
)

// CheckWebsiteOwnership guards routes addressed by a website id param.
func CheckWebsiteOwnership(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := c.Locals("user").(*jwt.Claims)
		websiteID := c.Params(param)

		var website model.Website
		if err := database.DB.First(&website, websiteID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Website not found",
			})
		}

		if website.UserID != claims.UserID {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "You don't have permission to access this website",
			})
		}

		return c.Next()
	}
}

// CheckBuildingOwnership guards routes addressed by a building id param. The
// building belongs to the caller when its website does.
func CheckBuildingOwnership(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := c.Locals("user").(*jwt.Claims)
		buildingID := c.Params(param)

		var building model.Building
		if err := database.DB.Preload("Website").First(&building, buildingID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Building not found",
			})
		}

		if building.Website.UserID != claims.UserID {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "You don't have permission to access this building",
			})
		}

		return c.Next()
	}
}
