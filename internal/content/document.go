// Package content models the home page document for a tenant website.
//
// A Document is always complete: every section and field has a value, so the
// rendering side never hits an undefined read. A Patch is what the admin UI
// saves back: any subset of sections, each with any subset of fields. Merge
// combines the two.
package content

// HeroButton is a call-to-action button in the hero section.
type HeroButton struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	URL   string `json:"url"`
	Style string `json:"style"`
}

func (b HeroButton) ItemID() string { return b.ID }

// HeroSection is the top banner of the home page.
type HeroSection struct {
	MainHeading       string       `json:"main_heading"`
	SubHeading        string       `json:"sub_heading"`
	SearchPlaceholder string       `json:"search_placeholder"`
	Buttons           []HeroButton `json:"buttons"`
}

// TabItem is one entry in an about-section tab (key facts, amenities,
// highlights). Icon is the name of an Icon asset; a name that resolves to
// nothing renders without an icon.
type TabItem struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Icon string `json:"icon"`
}

func (t TabItem) ItemID() string { return t.ID }

// AboutSection holds the about copy plus three named tab item lists.
type AboutSection struct {
	Heading    string    `json:"heading"`
	Body       string    `json:"body"`
	KeyFacts   []TabItem `json:"key_facts"`
	Amenities  []TabItem `json:"amenities"`
	Highlights []TabItem `json:"highlights"`
}

// CarouselConfig configures one listing carousel.
type CarouselConfig struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Limit    int    `json:"limit"`
}

// CarouselSettings holds the two listing carousels shown on the home page.
type CarouselSettings struct {
	ForRent CarouselConfig `json:"for_rent"`
	ForSale CarouselConfig `json:"for_sale"`
}

// FAQItem is one question/answer pair.
type FAQItem struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func (f FAQItem) ItemID() string { return f.ID }

// FAQSection is the FAQ block: a heading and an ordered item list.
type FAQSection struct {
	Heading string    `json:"heading"`
	Items   []FAQItem `json:"items"`
}

// FooterLink is one link in a footer column.
type FooterLink struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	URL  string `json:"url"`
}

func (l FooterLink) ItemID() string { return l.ID }

// FooterSection holds footer copy, two ordered link columns, and the
// contact/social visibility toggles.
type FooterSection struct {
	Tagline         string       `json:"tagline"`
	Copyright       string       `json:"copyright"`
	QuickLinks      []FooterLink `json:"quick_links"`
	LegalLinks      []FooterLink `json:"legal_links"`
	ShowContactInfo bool         `json:"show_contact_info"`
	ShowSocialLinks bool         `json:"show_social_links"`
}

// HeaderLink is one entry in the site navigation.
type HeaderLink struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	URL     string `json:"url"`
	Enabled bool   `json:"enabled"`
}

func (l HeaderLink) ItemID() string { return l.ID }

// MLSSettings holds the defaults applied to MLS-sourced listings.
type MLSSettings struct {
	DefaultStatus      string `json:"default_status"`
	DefaultListingType string `json:"default_listing_type"`
}

// Document is the complete home page content for one website.
type Document struct {
	Hero             HeroSection      `json:"hero"`
	About            AboutSection     `json:"about"`
	CarouselSettings CarouselSettings `json:"carousel_settings"`
	FAQ              FAQSection       `json:"faq"`
	Footer           FooterSection    `json:"footer"`
	HeaderLinks      []HeaderLink     `json:"header_links"`
	MLSSettings      MLSSettings      `json:"mls_settings"`
}
