package content

import (
	"condoadmin_backend/internal/content/listops"
)

// Patch is a partial home page document as persisted by the editor. Scalar
// fields use pointers so an absent field is distinguishable from a zero
// value; list fields carry the whole list or nothing. A nil section means the
// editor never touched it.
type Patch struct {
	Hero             *HeroPatch        `json:"hero,omitempty"`
	About            *AboutPatch       `json:"about,omitempty"`
	CarouselSettings *CarouselPatch    `json:"carousel_settings,omitempty"`
	FAQ              *FAQPatch         `json:"faq,omitempty"`
	Footer           *FooterPatch      `json:"footer,omitempty"`
	HeaderLinks      []HeaderLink      `json:"header_links,omitempty"`
	MLSSettings      *MLSSettingsPatch `json:"mls_settings,omitempty"`
}

type HeroPatch struct {
	MainHeading       *string      `json:"main_heading,omitempty"`
	SubHeading        *string      `json:"sub_heading,omitempty"`
	SearchPlaceholder *string      `json:"search_placeholder,omitempty"`
	Buttons           []HeroButton `json:"buttons,omitempty"`
}

type AboutPatch struct {
	Heading    *string   `json:"heading,omitempty"`
	Body       *string   `json:"body,omitempty"`
	KeyFacts   []TabItem `json:"key_facts,omitempty"`
	Amenities  []TabItem `json:"amenities,omitempty"`
	Highlights []TabItem `json:"highlights,omitempty"`
}

type CarouselConfigPatch struct {
	Title    *string `json:"title,omitempty"`
	Subtitle *string `json:"subtitle,omitempty"`
	Limit    *int    `json:"limit,omitempty"`
}

type CarouselPatch struct {
	ForRent *CarouselConfigPatch `json:"for_rent,omitempty"`
	ForSale *CarouselConfigPatch `json:"for_sale,omitempty"`
}

type FAQPatch struct {
	Heading *string   `json:"heading,omitempty"`
	Items   []FAQItem `json:"items,omitempty"`
}

type FooterPatch struct {
	Tagline         *string      `json:"tagline,omitempty"`
	Copyright       *string      `json:"copyright,omitempty"`
	QuickLinks      []FooterLink `json:"quick_links,omitempty"`
	LegalLinks      []FooterLink `json:"legal_links,omitempty"`
	ShowContactInfo *bool        `json:"show_contact_info,omitempty"`
	ShowSocialLinks *bool        `json:"show_social_links,omitempty"`
}

type MLSSettingsPatch struct {
	DefaultStatus      *string `json:"default_status,omitempty"`
	DefaultListingType *string `json:"default_listing_type,omitempty"`
}

// coalesce returns the patched value when the patch carries one.
func coalesce[T any](def T, p *T) T {
	if p != nil {
		return *p
	}
	return def
}

// coalesceList replaces the default list wholesale, but only when the patch
// carries a non-empty list. An empty persisted list falls back to the
// defaults; the Patch type keeps nil and empty distinguishable so that
// policy can change without reshaping stored documents.
func coalesceList[T any](def, p []T) []T {
	if len(p) > 0 {
		out := make([]T, len(p))
		copy(out, p)
		return out
	}
	out := make([]T, len(def))
	copy(out, def)
	return out
}

// Merge produces a complete document from defaults and a persisted patch.
// Scalars coalesce per field, lists replace per list, section by section.
// Every field path defined in defaults is defined in the result.
func Merge(defaults Document, p Patch) Document {
	return Document{
		Hero:             mergeHero(defaults.Hero, p.Hero),
		About:            mergeAbout(defaults.About, p.About),
		CarouselSettings: mergeCarousels(defaults.CarouselSettings, p.CarouselSettings),
		FAQ:              mergeFAQ(defaults.FAQ, p.FAQ),
		Footer:           mergeFooter(defaults.Footer, p.Footer),
		HeaderLinks:      coalesceList(defaults.HeaderLinks, p.HeaderLinks),
		MLSSettings:      mergeMLS(defaults.MLSSettings, p.MLSSettings),
	}
}

func mergeHero(def HeroSection, p *HeroPatch) HeroSection {
	if p == nil {
		return def
	}
	return HeroSection{
		MainHeading:       coalesce(def.MainHeading, p.MainHeading),
		SubHeading:        coalesce(def.SubHeading, p.SubHeading),
		SearchPlaceholder: coalesce(def.SearchPlaceholder, p.SearchPlaceholder),
		Buttons:           coalesceList(def.Buttons, p.Buttons),
	}
}

func mergeAbout(def AboutSection, p *AboutPatch) AboutSection {
	if p == nil {
		return def
	}
	return AboutSection{
		Heading:    coalesce(def.Heading, p.Heading),
		Body:       coalesce(def.Body, p.Body),
		KeyFacts:   coalesceList(def.KeyFacts, p.KeyFacts),
		Amenities:  coalesceList(def.Amenities, p.Amenities),
		Highlights: coalesceList(def.Highlights, p.Highlights),
	}
}

func mergeCarousels(def CarouselSettings, p *CarouselPatch) CarouselSettings {
	if p == nil {
		return def
	}
	return CarouselSettings{
		ForRent: mergeCarouselConfig(def.ForRent, p.ForRent),
		ForSale: mergeCarouselConfig(def.ForSale, p.ForSale),
	}
}

func mergeCarouselConfig(def CarouselConfig, p *CarouselConfigPatch) CarouselConfig {
	if p == nil {
		return def
	}
	return CarouselConfig{
		Title:    coalesce(def.Title, p.Title),
		Subtitle: coalesce(def.Subtitle, p.Subtitle),
		Limit:    coalesce(def.Limit, p.Limit),
	}
}

func mergeFAQ(def FAQSection, p *FAQPatch) FAQSection {
	if p == nil {
		return def
	}
	return FAQSection{
		Heading: coalesce(def.Heading, p.Heading),
		Items:   coalesceList(def.Items, p.Items),
	}
}

func mergeFooter(def FooterSection, p *FooterPatch) FooterSection {
	if p == nil {
		return def
	}
	return FooterSection{
		Tagline:         coalesce(def.Tagline, p.Tagline),
		Copyright:       coalesce(def.Copyright, p.Copyright),
		QuickLinks:      coalesceList(def.QuickLinks, p.QuickLinks),
		LegalLinks:      coalesceList(def.LegalLinks, p.LegalLinks),
		ShowContactInfo: coalesce(def.ShowContactInfo, p.ShowContactInfo),
		ShowSocialLinks: coalesce(def.ShowSocialLinks, p.ShowSocialLinks),
	}
}

func mergeMLS(def MLSSettings, p *MLSSettingsPatch) MLSSettings {
	if p == nil {
		return def
	}
	return MLSSettings{
		DefaultStatus:      coalesce(def.DefaultStatus, p.DefaultStatus),
		DefaultListingType: coalesce(def.DefaultListingType, p.DefaultListingType),
	}
}

// EnsureItemIDs backfills stable IDs on any list item saved without one.
// Items are addressed by ID from then on; the array index is only display
// order.
func EnsureItemIDs(p *Patch) {
	if p == nil {
		return
	}
	if p.Hero != nil {
		for i := range p.Hero.Buttons {
			if p.Hero.Buttons[i].ID == "" {
				p.Hero.Buttons[i].ID = listops.NewItemID()
			}
		}
	}
	if p.About != nil {
		ensureTabItemIDs(p.About.KeyFacts)
		ensureTabItemIDs(p.About.Amenities)
		ensureTabItemIDs(p.About.Highlights)
	}
	if p.FAQ != nil {
		for i := range p.FAQ.Items {
			if p.FAQ.Items[i].ID == "" {
				p.FAQ.Items[i].ID = listops.NewItemID()
			}
		}
	}
	if p.Footer != nil {
		ensureFooterLinkIDs(p.Footer.QuickLinks)
		ensureFooterLinkIDs(p.Footer.LegalLinks)
	}
	for i := range p.HeaderLinks {
		if p.HeaderLinks[i].ID == "" {
			p.HeaderLinks[i].ID = listops.NewItemID()
		}
	}
}

func ensureTabItemIDs(items []TabItem) {
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = listops.NewItemID()
		}
	}
}

func ensureFooterLinkIDs(links []FooterLink) {
	for i := range links {
		if links[i].ID == "" {
			links[i].ID = listops.NewItemID()
		}
	}
}
