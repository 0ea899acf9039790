// pkg/cron/building_stats.go
package cron

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"condoadmin_backend/internal/model"
	"condoadmin_backend/pkg/database"
)

// InitBuildingStatsCron schedules the rolling window resets for the view
// counters. Weekly counters reset Sunday night, monthly on the 1st.
func InitBuildingStatsCron() {
	c := cron.New()

	_, err := c.AddFunc("0 0 * * 0", resetWeeklyViews)
	if err == nil {
		_, err = c.AddFunc("0 0 1 * *", resetMonthlyViews)
	}
	if err == nil {
		_, err = c.AddFunc("30 3 * * *", pruneStaleViews)
	}
	if err != nil {
		log.Printf("Could not initialize building stats cron: %v", err)
		return
	}

	c.Start()
}

func resetWeeklyViews() {
	if err := database.GetDB().Model(&model.BuildingStats{}).
		Where("weekly_views > 0").
		Update("weekly_views", 0).Error; err != nil {
		log.Printf("Error resetting weekly views: %v", err)
		return
	}
	log.Println("Weekly building view counters reset")
}

func resetMonthlyViews() {
	if err := database.GetDB().Model(&model.BuildingStats{}).
		Where("monthly_views > 0").
		Update("monthly_views", 0).Error; err != nil {
		log.Printf("Error resetting monthly views: %v", err)
		return
	}
	log.Println("Monthly building view counters reset")
}

// pruneStaleViews drops raw view rows older than 90 days; the aggregated
// counters on BuildingStats keep the history that matters.
func pruneStaleViews() {
	cutoff := time.Now().AddDate(0, 0, -90)
	result := database.GetDB().Unscoped().
		Where("viewed_at < ?", cutoff).
		Delete(&model.BuildingView{})
	if result.Error != nil {
		log.Printf("Error pruning stale building views: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Pruned %d stale building views", result.RowsAffected)
	}
}
