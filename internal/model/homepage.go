package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// HomePage stores the persisted home page patch for one website. Content is
// the serialized content.Patch: only the sections and fields the editor
// actually changed. The complete render-safe document is produced at read
// time by merging over the defaults.
type HomePage struct {
	gorm.Model
	WebsiteID uint           `json:"website_id" gorm:"uniqueIndex;not null"`
	Content   datatypes.JSON `json:"content"`

	Website Website `json:"-" gorm:"foreignKey:WebsiteID"`
}
