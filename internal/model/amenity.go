package model

import "gorm.io/gorm"

// Amenity Categories
type AmenityCategory string

const (
	AmenityCategoryGeneral     AmenityCategory = "general"
	AmenityCategoryMaintenance AmenityCategory = "maintenance"
)

func (c AmenityCategory) Valid() bool {
	return c == AmenityCategoryGeneral || c == AmenityCategoryMaintenance
}

// Amenity is one entry in the selectable catalog. Buildings reference
// amenities through join tables; the catalog itself is seeded and mostly
// static.
type Amenity struct {
	gorm.Model
	Name     string          `json:"name" gorm:"uniqueIndex;not null"`
	Category AmenityCategory `json:"category" gorm:"not null;default:'general'"`
	Icon     string          `json:"icon"`
}

func (a Amenity) EntityID() uint     { return a.ID }
func (a Amenity) EntityName() string { return a.Name }
