package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"sort"
	"sync"

	"gorm.io/datatypes"

	"github.com/gofiber/fiber/v2"

	"condoadmin_backend/internal/model"
	"condoadmin_backend/pkg/database"
	imageutil "condoadmin_backend/pkg/utils/image"
	"condoadmin_backend/pkg/utils/storage"
	"condoadmin_backend/pkg/utils/validation"
)

const MaxBuildingImages = 24

// UploadBuildingImages handles one "add gallery images" action. Every file
// is validated up front; the accepted files are uploaded concurrently, then
// all successes are appended to the gallery atomically in their original
// selection order. Partial failure is reported in the message, never by
// dropping successes.
func UploadBuildingImages(c *fiber.Ctx) error {
	buildingID, err := idParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid building ID",
		})
	}

	var building model.Building
	if err := database.GetDB().First(&building, buildingID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Building not found",
		})
	}

	form, err := c.MultipartForm()
	if err != nil || len(form.File["images"]) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "No images uploaded",
		})
	}
	files := form.File["images"]

	var imageCount int64
	database.GetDB().Model(&model.BuildingImage{}).
		Where("building_id = ?", buildingID).
		Count(&imageCount)

	if imageCount+int64(len(files)) > MaxBuildingImages {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": fmt.Sprintf("Maximum %d images allowed", MaxBuildingImages),
		})
	}

	// Pre-check every file before anything touches storage; a rejected
	// batch causes zero storage calls and no state change.
	for _, file := range files {
		if err := validation.ValidateUpload(validation.SlotGallery, file); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": fmt.Sprintf("%s: %v", file.Filename, err),
			})
		}
	}

	type result struct {
		index int
		url   string
		err   error
	}

	ctx := c.Context()
	results := make([]result, len(files))
	var wg sync.WaitGroup
	for i, file := range files {
		wg.Add(1)
		go func(i int, file *multipart.FileHeader) {
			defer wg.Done()
			url, err := uploadGalleryFile(ctx, building, file)
			results[i] = result{index: i, url: url, err: err}
		}(i, file)
	}
	wg.Wait()

	var succeeded []result
	for _, r := range results {
		if r.err != nil {
			log.Printf("Gallery upload failed for building %d: %v", buildingID, r.err)
			continue
		}
		succeeded = append(succeeded, r)
	}
	sort.Slice(succeeded, func(a, b int) bool {
		return succeeded[a].index < succeeded[b].index
	})

	// Append every success in one transaction so the gallery updates once.
	var created []model.BuildingImage
	if len(succeeded) > 0 {
		tx := database.GetDB().Begin()
		order := int(imageCount)
		for _, r := range succeeded {
			image := model.BuildingImage{
				BuildingID: building.ID,
				URL:        r.url,
				Order:      order,
				IsCover:    order == 0,
			}
			if err := tx.Create(&image).Error; err != nil {
				tx.Rollback()
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"success": false,
					"message": "Could not save image records",
				})
			}
			created = append(created, image)
			order++
		}
		if err := tx.Commit().Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Could not save image records",
			})
		}
	}

	return c.JSON(fiber.Map{
		"success": len(created) > 0,
		"message": fmt.Sprintf("%d of %d images uploaded successfully", len(created), len(files)),
		"images":  created,
	})
}

func uploadGalleryFile(ctx context.Context, building model.Building, file *multipart.FileHeader) (string, error) {
	var (
		body        io.Reader
		contentType = file.Header.Get("Content-Type")
	)

	if imageutil.Raster(contentType) {
		buf, encoded, err := imageutil.FromMultipart(file)
		if err != nil {
			return "", err
		}
		body = buf
		contentType = encoded
	} else {
		src, err := file.Open()
		if err != nil {
			return "", err
		}
		defer src.Close()
		body = src
	}

	key := storage.ObjectKey(building.Slug, string(validation.SlotGallery), file.Filename)
	return storage.Default.Upload(ctx, key, body, contentType)
}

// DeleteBuildingImageInput is the JSON body of the image delete endpoint.
type DeleteBuildingImageInput struct {
	ImageURL string `json:"image_url" validate:"required"`
}

// DeleteBuildingImage removes one gallery image. Storage failure leaves the
// gallery unchanged; the row goes away only after the object does.
func DeleteBuildingImage(c *fiber.Ctx) error {
	buildingID, err := idParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid building ID",
		})
	}

	input := new(DeleteBuildingImageInput)
	if err := c.BodyParser(input); err != nil || input.ImageURL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "image_url is required",
		})
	}

	var image model.BuildingImage
	if err := database.GetDB().
		Where("building_id = ? AND url = ?", buildingID, input.ImageURL).
		First(&image).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Image not found",
		})
	}

	if err := storage.Default.Delete(c.Context(), image.URL); err != nil {
		log.Printf("Could not delete object for building %d: %v", buildingID, err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success": false,
			"message": "Could not delete image from storage",
		})
	}

	if err := database.GetDB().Delete(&image).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Could not delete image record",
		})
	}

	return c.JSON(fiber.Map{"success": true})
}

// UploadWebsiteAsset handles the single-file slots: logo, favicon and agent
// photo. Failure leaves the previously stored URL untouched.
func UploadWebsiteAsset(c *fiber.Ctx) error {
	websiteID, err := websiteIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid website ID",
		})
	}

	slot := validation.Slot(c.Params("slot"))
	switch slot {
	case validation.SlotLogo, validation.SlotFavicon, validation.SlotAgentPhoto:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unknown asset slot",
		})
	}

	var website model.Website
	if err := database.GetDB().First(&website, websiteID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Website not found",
		})
	}

	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "No file uploaded",
		})
	}

	if err := validation.ValidateUpload(slot, file); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	var (
		body        io.Reader
		contentType = file.Header.Get("Content-Type")
	)
	if imageutil.Raster(contentType) {
		buf, encoded, encErr := imageutil.FromMultipart(file)
		if encErr != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Could not process image",
			})
		}
		body = buf
		contentType = encoded
	} else {
		src, openErr := file.Open()
		if openErr != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Could not open file",
			})
		}
		defer src.Close()
		body = src
	}

	key := storage.ObjectKey(website.Slug, string(slot), file.Filename)
	url, err := storage.Default.Upload(c.Context(), key, body, contentType)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success": false,
			"message": "Could not upload file",
		})
	}

	oldURL, err := applyAssetURL(&website, slot, url)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Could not update website",
		})
	}

	if oldURL != "" && oldURL != url {
		if err := storage.Default.Delete(c.Context(), oldURL); err != nil {
			log.Printf("Could not delete replaced %s asset: %v", slot, err)
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"url":     url,
	})
}

// applyAssetURL stores the new URL in the slot's field and returns the URL
// it replaced. The agent photo lives inside the agent info sub-document.
func applyAssetURL(website *model.Website, slot validation.Slot, url string) (string, error) {
	var old string

	switch slot {
	case validation.SlotLogo:
		old = website.LogoURL
		if err := database.GetDB().Model(website).Update("logo_url", url).Error; err != nil {
			return "", err
		}
	case validation.SlotFavicon:
		old = website.FaviconURL
		if err := database.GetDB().Model(website).Update("favicon_url", url).Error; err != nil {
			return "", err
		}
	case validation.SlotAgentPhoto:
		var agent model.AgentInfo
		if len(website.AgentInfo) > 0 {
			if err := json.Unmarshal(website.AgentInfo, &agent); err != nil {
				return "", err
			}
		}
		old = agent.PhotoURL
		agent.PhotoURL = url
		data, err := json.Marshal(agent)
		if err != nil {
			return "", err
		}
		if err := database.GetDB().Model(website).Update("agent_info", datatypes.JSON(data)).Error; err != nil {
			return "", err
		}
	}

	return old, nil
}

// DeleteWebsiteAssetInput is the JSON body of the asset delete endpoint.
type DeleteWebsiteAssetInput struct {
	ImageURL string `json:"image_url" validate:"required"`
}

// DeleteWebsiteAsset clears a single-file slot after removing the object.
func DeleteWebsiteAsset(c *fiber.Ctx) error {
	websiteID, err := websiteIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid website ID",
		})
	}

	slot := validation.Slot(c.Params("slot"))
	switch slot {
	case validation.SlotLogo, validation.SlotFavicon, validation.SlotAgentPhoto:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unknown asset slot",
		})
	}

	var website model.Website
	if err := database.GetDB().First(&website, websiteID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Website not found",
		})
	}

	input := new(DeleteWebsiteAssetInput)
	if err := c.BodyParser(input); err != nil || input.ImageURL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "image_url is required",
		})
	}

	if err := storage.Default.Delete(c.Context(), input.ImageURL); err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success": false,
			"message": "Could not delete asset from storage",
		})
	}

	if _, err := applyAssetURL(&website, slot, ""); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Could not update website",
		})
	}

	return c.JSON(fiber.Map{"success": true})
}
