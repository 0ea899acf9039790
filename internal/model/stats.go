package model

import (
	"time"

	"gorm.io/gorm"
)

// BuildingView is a single recorded page view of a building listing.
type BuildingView struct {
	gorm.Model
	BuildingID uint      `json:"building_id" gorm:"index"`
	IP         string    `json:"ip" gorm:"index"`
	UserAgent  string    `json:"user_agent"`
	ViewedAt   time.Time `json:"viewed_at" gorm:"index"`
	IsUnique   bool      `json:"is_unique" gorm:"default:true"`

	Building Building `json:"-" gorm:"foreignKey:BuildingID"`
}

// BuildingStats accumulates view counters per building. Counters are bumped
// on each recorded view; the windowed counters are reset by the rollup cron.
type BuildingStats struct {
	gorm.Model
	BuildingID   uint      `json:"building_id" gorm:"uniqueIndex"`
	TotalViews   int64     `json:"total_views"`
	UniqueViews  int64     `json:"unique_views"`
	WeeklyViews  int64     `json:"weekly_views"`
	MonthlyViews int64     `json:"monthly_views"`
	LastUpdated  time.Time `json:"last_updated"`

	Building Building `json:"-" gorm:"foreignKey:BuildingID"`
}

// BeforeCreate marks the view as non-unique when the same IP viewed the
// building within the last 24 hours.
func (v *BuildingView) BeforeCreate(tx *gorm.DB) error {
	if v.ViewedAt.IsZero() {
		v.ViewedAt = time.Now()
	}

	var count int64
	tx.Model(&BuildingView{}).
		Where("building_id = ? AND ip = ? AND viewed_at > ?",
			v.BuildingID, v.IP, time.Now().Add(-24*time.Hour)).
		Count(&count)
	if count > 0 {
		v.IsUnique = false
	}

	return nil
}

// AfterCreate bumps the per-building counters.
func (v *BuildingView) AfterCreate(tx *gorm.DB) error {
	var stats BuildingStats
	tx.FirstOrCreate(&stats, BuildingStats{BuildingID: v.BuildingID})

	updates := map[string]interface{}{
		"total_views":   gorm.Expr("total_views + ?", 1),
		"weekly_views":  gorm.Expr("weekly_views + ?", 1),
		"monthly_views": gorm.Expr("monthly_views + ?", 1),
		"last_updated":  time.Now(),
	}
	if v.IsUnique {
		updates["unique_views"] = gorm.Expr("unique_views + ?", 1)
	}

	return tx.Model(&stats).Updates(updates).Error
}
