package controller

import (
	"github.com/gofiber/fiber/v2"

	"condoadmin_backend/internal/model"
	"condoadmin_backend/pkg/database"
	"condoadmin_backend/pkg/utils/jwt"
)

// RecordBuildingView logs a public page view. Uniqueness per IP per day is
// decided by the model hooks.
func RecordBuildingView(c *fiber.Ctx) error {
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

	view := model.BuildingView{
		BuildingID: building.ID,
		IP:         c.IP(),
		UserAgent:  c.Get("User-Agent"),
	}
	if err := database.GetDB().Create(&view).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not record view",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

type dashboardBuilding struct {
	BuildingID uint   `json:"building_id"`
	Name       string `json:"name"`
	TotalViews int64  `json:"total_views"`
}

// GetDashboardStats summarizes the caller's portfolio for the admin
// dashboard: counts per status plus the most viewed buildings.
func GetDashboardStats(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)
	db := database.GetDB()

	var totalBuildings int64
	db.Model(&model.Building{}).
		Joins("JOIN websites ON websites.id = buildings.website_id").
		Where("websites.user_id = ?", claims.UserID).
		Count(&totalBuildings)

	var activeBuildings int64
	db.Model(&model.Building{}).
		Joins("JOIN websites ON websites.id = buildings.website_id").
		Where("websites.user_id = ? AND buildings.status = ?", claims.UserID, model.BuildingStatusActive).
		Count(&activeBuildings)

	var totalWebsites int64
	db.Model(&model.Website{}).Where("user_id = ?", claims.UserID).Count(&totalWebsites)

	var viewTotals struct {
		TotalViews  int64
		UniqueViews int64
	}
	db.Model(&model.BuildingStats{}).
		Select("COALESCE(SUM(building_stats.total_views), 0) as total_views, COALESCE(SUM(building_stats.unique_views), 0) as unique_views").
		Joins("JOIN buildings ON buildings.id = building_stats.building_id").
		Joins("JOIN websites ON websites.id = buildings.website_id").
		Where("websites.user_id = ?", claims.UserID).
		Scan(&viewTotals)

	var topBuildings []dashboardBuilding
	db.Model(&model.BuildingStats{}).
		Select("building_stats.building_id, buildings.name, building_stats.total_views").
		Joins("JOIN buildings ON buildings.id = building_stats.building_id").
		Joins("JOIN websites ON websites.id = buildings.website_id").
		Where("websites.user_id = ?", claims.UserID).
		Order("building_stats.total_views desc").
		Limit(5).
		Scan(&topBuildings)

	return c.JSON(fiber.Map{
		"total_buildings":  totalBuildings,
		"active_buildings": activeBuildings,
		"total_websites":   totalWebsites,
		"total_views":      viewTotals.TotalViews,
		"unique_views":     viewTotals.UniqueViews,
		"top_buildings":    topBuildings,
	})
}
