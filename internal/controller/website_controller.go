package controller

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"condoadmin_backend/internal/model"
	"condoadmin_backend/pkg/database"
	"condoadmin_backend/pkg/utils/jwt"
	"condoadmin_backend/pkg/utils/validation"
)

type WebsiteInput struct {
	Name   string `json:"name" validate:"required"`
	Slug   string `json:"slug"`
	Domain string `json:"domain"`

	BrandColors *model.BrandColors `json:"brand_colors"`
	ContactInfo *model.ContactInfo `json:"contact_info"`
	SocialMedia *model.SocialMedia `json:"social_media"`
	AgentInfo   *model.AgentInfo   `json:"agent_info"`
}

func (in *WebsiteInput) apply(w *model.Website) error {
	w.Name = in.Name
	if in.Slug != "" {
		w.Slug = in.Slug
	}
	w.Domain = in.Domain

	// Sub-documents are replaced wholesale when submitted; an untouched
	// document keeps its stored value.
	if in.BrandColors != nil {
		data, err := json.Marshal(in.BrandColors)
		if err != nil {
			return err
		}
		w.BrandColors = data
	}
	if in.ContactInfo != nil {
		data, err := json.Marshal(in.ContactInfo)
		if err != nil {
			return err
		}
		w.ContactInfo = data
	}
	if in.SocialMedia != nil {
		data, err := json.Marshal(in.SocialMedia)
		if err != nil {
			return err
		}
		w.SocialMedia = data
	}
	if in.AgentInfo != nil {
		data, err := json.Marshal(in.AgentInfo)
		if err != nil {
			return err
		}
		w.AgentInfo = data
	}
	return nil
}

// ListMyWebsites lists the caller's tenant sites.
func ListMyWebsites(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)

	var websites []model.Website
	if err := database.GetDB().Where("user_id = ?", claims.UserID).
		Order("created_at desc").
		Find(&websites).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch websites",
		})
	}

	return c.JSON(websites)
}

func CreateWebsite(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)
	input := new(WebsiteInput)

	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if errs := validation.Fields(input); len(errs) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"errors": errs,
		})
	}

	website := model.Website{UserID: claims.UserID}
	if err := input.apply(&website); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid sub-document",
		})
	}

	if err := database.GetDB().Create(&website).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create website",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(website)
}

func GetWebsite(c *fiber.Ctx) error {
	id := c.Params("website_id")

	var website model.Website
	if err := database.GetDB().First(&website, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Website not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch website",
		})
	}

	return c.JSON(website)
}

func UpdateWebsite(c *fiber.Ctx) error {
	id := c.Params("website_id")
	input := new(WebsiteInput)

	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if errs := validation.Fields(input); len(errs) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"errors": errs,
		})
	}

	var website model.Website
	if err := database.GetDB().First(&website, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Website not found",
		})
	}

	if err := input.apply(&website); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid sub-document",
		})
	}

	if err := database.GetDB().Save(&website).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update website",
		})
	}

	return c.JSON(website)
}

func DeleteWebsite(c *fiber.Ctx) error {
	id := c.Params("website_id")

	var website model.Website
	if err := database.GetDB().First(&website, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Website not found",
		})
	}

	if err := database.GetDB().Delete(&website).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete website",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
