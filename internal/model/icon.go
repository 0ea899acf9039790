package model

import "gorm.io/gorm"

// Icon Categories
type IconCategory string

const (
	IconCategoryKeyFacts   IconCategory = "key_facts"
	IconCategoryAmenities  IconCategory = "amenities"
	IconCategoryHighlights IconCategory = "highlights"
	IconCategoryContact    IconCategory = "contact"
	IconCategoryGeneral    IconCategory = "general"
)

func (c IconCategory) Valid() bool {
	switch c {
	case IconCategoryKeyFacts, IconCategoryAmenities, IconCategoryHighlights,
		IconCategoryContact, IconCategoryGeneral:
		return true
	}
	return false
}

// Icon is a reusable asset referenced by name from tab items. The reference
// is weak: a name that matches no active icon simply renders without one.
// An icon carries either inline SVG markup or a remote URL, never both.
type Icon struct {
	gorm.Model
	Name        string       `json:"name" gorm:"uniqueIndex;not null"`
	Category    IconCategory `json:"category" gorm:"not null;default:'general'"`
	SVGContent  string       `json:"svg_content" gorm:"type:text"`
	URL         string       `json:"url"`
	Active      bool         `json:"active" gorm:"default:true"`
	Description string       `json:"description"`
}
