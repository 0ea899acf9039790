package controller

import (
	"context"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"condoadmin_backend/internal/model"
	"condoadmin_backend/pkg/database"
	"condoadmin_backend/pkg/utils/storage"
	"condoadmin_backend/pkg/utils/validation"
)

// MaxInlineSVGBytes bounds inline vector markup stored in the database.
const MaxInlineSVGBytes = 64 * 1024

// ListIcons returns the active icon catalog, optionally narrowed to one
// category. Served behind the catalog cache.
func ListIcons(c *fiber.Ctx) error {
	q := database.GetDB().Where("active = ?", true)
	if cat := c.Query("category"); cat != "" {
		if !model.IconCategory(cat).Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Unknown icon category",
			})
		}
		q = q.Where("category = ?", cat)
	}

	var icons []model.Icon
	if err := q.Order("name asc").Find(&icons).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch icons",
		})
	}

	return c.JSON(icons)
}

// CreateIcon stores a new icon asset. The request is multipart when an icon
// file is attached; otherwise inline SVG markup may be supplied.
func CreateIcon(c *fiber.Ctx) error {
	icon := model.Icon{
		Name:        c.FormValue("name"),
		Category:    model.IconCategory(c.FormValue("category")),
		SVGContent:  c.FormValue("svg_content"),
		Description: c.FormValue("description"),
		Active:      c.FormValue("active", "true") != "false",
	}

	if errs := iconErrors(&icon); len(errs) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"errors": errs,
		})
	}

	if file, err := c.FormFile("file"); err == nil {
		url, uploadErr := uploadIconFile(c.Context(), icon.Name, file)
		if uploadErr != nil {
			return uploadErr.send(c)
		}
		icon.URL = url
		icon.SVGContent = ""
	}

	if err := database.GetDB().Create(&icon).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create icon",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(icon)
}

// UpdateIcon mutates an icon's fields and optionally replaces its file.
func UpdateIcon(c *fiber.Ctx) error {
	id := c.Params("id")

	var icon model.Icon
	if err := database.GetDB().First(&icon, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Icon not found",
		})
	}

	if v := c.FormValue("name"); v != "" {
		icon.Name = v
	}
	if v := c.FormValue("category"); v != "" {
		icon.Category = model.IconCategory(v)
	}
	if v := c.FormValue("svg_content"); v != "" {
		icon.SVGContent = v
		icon.URL = ""
	}
	if v := c.FormValue("description"); v != "" {
		icon.Description = v
	}
	if v := c.FormValue("active"); v != "" {
		icon.Active = v != "false"
	}

	if errs := iconErrors(&icon); len(errs) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"errors": errs,
		})
	}

	if file, err := c.FormFile("file"); err == nil {
		url, uploadErr := uploadIconFile(c.Context(), icon.Name, file)
		if uploadErr != nil {
			return uploadErr.send(c)
		}
		icon.URL = url
		icon.SVGContent = ""
	}

	if err := database.GetDB().Save(&icon).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update icon",
		})
	}

	return c.JSON(icon)
}

// DeleteIcon removes an icon asset. Tab items referencing it by name keep
// the name and render without an icon.
func DeleteIcon(c *fiber.Ctx) error {
	id := c.Params("id")

	var icon model.Icon
	if err := database.GetDB().First(&icon, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Icon not found",
		})
	}

	if err := database.GetDB().Delete(&icon).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete icon",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func iconErrors(icon *model.Icon) map[string]string {
	errs := map[string]string{}
	if icon.Name == "" {
		errs["name"] = "This field is required"
	}
	if !icon.Category.Valid() {
		errs["category"] = "Unknown icon category"
	}
	if len(icon.SVGContent) > MaxInlineSVGBytes {
		errs["svg_content"] = "Inline SVG is too large"
	}
	return errs
}

type uploadError struct {
	status  int
	message string
}

func (e *uploadError) send(c *fiber.Ctx) error {
	return c.Status(e.status).JSON(fiber.Map{
		"success": false,
		"message": e.message,
	})
}

// uploadIconFile validates against the icon slot and stores the file. A
// rejected file never reaches storage.
func uploadIconFile(ctx context.Context, name string, file *multipart.FileHeader) (string, *uploadError) {
	if err := validation.ValidateUpload(validation.SlotIcon, file); err != nil {
		return "", &uploadError{status: fiber.StatusBadRequest, message: err.Error()}
	}

	src, err := file.Open()
	if err != nil {
		return "", &uploadError{status: fiber.StatusInternalServerError, message: "Could not open file"}
	}
	defer src.Close()

	key := storage.ObjectKey("icons", name, file.Filename)
	url, err := storage.Default.Upload(ctx, key, src, file.Header.Get("Content-Type"))
	if err != nil {
		return "", &uploadError{status: fiber.StatusBadGateway, message: "Could not upload icon file"}
	}

	return url, nil
}
