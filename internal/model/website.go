package model

import (
	"github.com/gosimple/slug"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ButtonPalette, FooterPalette and LinkPalette are the sub-palettes of the
// brand colors document. Every value is a CSS color string.
type ButtonPalette struct {
	Background string `json:"background"`
	Text       string `json:"text"`
	Hover      string `json:"hover"`
}

type FooterPalette struct {
	Background string `json:"background"`
	Text       string `json:"text"`
	Heading    string `json:"heading"`
}

type LinkPalette struct {
	Normal string `json:"normal"`
	Hover  string `json:"hover"`
}

type BrandColors struct {
	Primary    string        `json:"primary"`
	Secondary  string        `json:"secondary"`
	Accent     string        `json:"accent"`
	Text       string        `json:"text"`
	Background string        `json:"background"`
	Buttons    ButtonPalette `json:"buttons"`
	Footer     FooterPalette `json:"footer"`
	Links      LinkPalette   `json:"links"`
}

type ContactInfo struct {
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Hours   string `json:"hours"`
}

type SocialMedia struct {
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	Twitter   string `json:"twitter"`
	LinkedIn  string `json:"linkedin"`
	YouTube   string `json:"youtube"`
	TikTok    string `json:"tiktok"`
}

type AgentInfo struct {
	Name      string `json:"name"`
	Title     string `json:"title"`
	Phone     string `json:"phone"`
	Brokerage string `json:"brokerage"`
	PhotoURL  string `json:"photo_url"`
}

// Website is one tenant's branded microsite configuration.
type Website struct {
	gorm.Model
	UserID uint `json:"user_id" gorm:"index"`

	Name   string `json:"name" gorm:"not null"`
	Slug   string `json:"slug" gorm:"uniqueIndex;not null"`
	Domain string `json:"domain" gorm:"uniqueIndex"`

	// Nested configuration documents, stored as JSON columns
	BrandColors datatypes.JSON `json:"brand_colors"`
	ContactInfo datatypes.JSON `json:"contact_info"`
	SocialMedia datatypes.JSON `json:"social_media"`
	AgentInfo   datatypes.JSON `json:"agent_info"`

	// Uploaded assets
	LogoURL    string `json:"logo_url"`
	FaviconURL string `json:"favicon_url"`

	User      User       `json:"-" gorm:"foreignKey:UserID"`
	Buildings []Building `json:"-" gorm:"foreignKey:WebsiteID"`
}

func (w *Website) BeforeCreate(tx *gorm.DB) error {
	if w.Slug == "" {
		w.Slug = slug.Make(w.Name)
	}
	return nil
}
