package model

import (
	"time"

	"github.com/gosimple/slug"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Building Types
type BuildingType string

const (
	BuildingTypeCondominium BuildingType = "condominium"
	BuildingTypeApartment   BuildingType = "apartment"
	BuildingTypeTownhouse   BuildingType = "townhouse"
	BuildingTypeLoft        BuildingType = "loft"
	BuildingTypeCoOp        BuildingType = "co_op"
	BuildingTypeCommercial  BuildingType = "commercial"
	BuildingTypeMixedUse    BuildingType = "mixed_use"
)

func (t BuildingType) Valid() bool {
	switch t {
	case BuildingTypeCondominium, BuildingTypeApartment, BuildingTypeTownhouse,
		BuildingTypeLoft, BuildingTypeCoOp, BuildingTypeCommercial, BuildingTypeMixedUse:
		return true
	}
	return false
}

// Building Status
type BuildingStatus string

const (
	BuildingStatusActive       BuildingStatus = "active"
	BuildingStatusDraft        BuildingStatus = "draft"
	BuildingStatusUnderReview  BuildingStatus = "under_review"
	BuildingStatusArchived     BuildingStatus = "archived"
	BuildingStatusPreConstruct BuildingStatus = "pre_construction"
)

func (s BuildingStatus) Valid() bool {
	switch s {
	case BuildingStatusActive, BuildingStatusDraft, BuildingStatusUnderReview,
		BuildingStatusArchived, BuildingStatusPreConstruct:
		return true
	}
	return false
}

// Listing Types
type ListingType string

const (
	ListingTypeForSale ListingType = "for_sale"
	ListingTypeForRent ListingType = "for_rent"
	ListingTypeBoth    ListingType = "both"
)

func (l ListingType) Valid() bool {
	switch l {
	case ListingTypeForSale, ListingTypeForRent, ListingTypeBoth:
		return true
	}
	return false
}

type Building struct {
	gorm.Model
	Name string `json:"name" gorm:"not null"`
	Slug string `json:"slug" gorm:"uniqueIndex:idx_website_building_slug;not null"`

	WebsiteID uint `json:"website_id" gorm:"uniqueIndex:idx_website_building_slug;index"`

	BuildingType BuildingType   `json:"building_type" gorm:"not null"`
	Status       BuildingStatus `json:"status" gorm:"not null;default:'draft'"`
	ListingType  ListingType    `json:"listing_type" gorm:"not null"`

	// Address fields
	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	Province      string `json:"province"`
	PostalCode    string `json:"postal_code"`
	Neighbourhood string `json:"neighbourhood"`

	// Numeric facts
	TotalUnits int `json:"total_units"`
	Floors     int `json:"floors"`
	YearBuilt  int `json:"year_built"`

	Description     string `json:"description" gorm:"type:text"`
	DeveloperName   string `json:"developer_name"`
	ManagementNotes string `json:"management_notes" gorm:"type:text"`

	// Nested JSON blobs edited as opaque sub-documents
	Features   datatypes.JSON `json:"features"`
	Transit    datatypes.JSON `json:"transit"`
	FloorPlans datatypes.JSON `json:"floor_plans"`

	Images               []BuildingImage `json:"images" gorm:"foreignKey:BuildingID;constraint:OnDelete:CASCADE"`
	Amenities            []Amenity       `json:"amenities" gorm:"many2many:building_amenities"`
	MaintenanceAmenities []Amenity       `json:"maintenance_amenities" gorm:"many2many:building_maintenance_amenities"`

	Website Website `json:"-" gorm:"foreignKey:WebsiteID"`
}

// BuildingImage is one entry in a building's ordered gallery. Order is the
// sole ordering signal and must round-trip exactly through save and reload.
type BuildingImage struct {
	gorm.Model
	BuildingID uint   `json:"building_id" gorm:"index"`
	URL        string `json:"url" gorm:"not null"`
	Order      int    `json:"order" gorm:"default:0"`
	IsCover    bool   `json:"is_cover" gorm:"default:false"`

	Building Building `json:"-" gorm:"foreignKey:BuildingID"`
}

// BeforeCreate derives a slug from the name, unique per website.
func (b *Building) BeforeCreate(tx *gorm.DB) error {
	if b.Slug == "" {
		s := slug.Make(b.Name)

		var count int64
		tx.Model(&Building{}).Where("website_id = ? AND slug = ?", b.WebsiteID, s).Count(&count)
		if count > 0 {
			s = s + "-" + time.Now().Format("20060102")
		}

		b.Slug = s
	}
	return nil
}
