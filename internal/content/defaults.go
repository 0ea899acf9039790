package content

// DefaultDocument returns the hand-authored default home page. Merge
// guarantees every field path present here resolves to a value in its output,
// so this is the render-safety baseline for new and partially edited sites.
func DefaultDocument() Document {
	return Document{
		Hero: HeroSection{
			MainHeading:       "Find Your Next Home",
			SubHeading:        "Browse condos, lofts and rentals across the city",
			SearchPlaceholder: "Search by building, neighbourhood or address",
			Buttons: []HeroButton{
				{ID: "hero-btn-buy", Text: "Browse Listings", URL: "/listings", Style: "primary"},
				{ID: "hero-btn-contact", Text: "Talk to an Agent", URL: "/contact", Style: "secondary"},
			},
		},
		About: AboutSection{
			Heading: "About the Building",
			Body:    "Every listing includes verified building facts, amenities and neighbourhood highlights.",
			KeyFacts: []TabItem{
				{ID: "kf-units", Text: "Total units", Icon: "units"},
				{ID: "kf-floors", Text: "Floors", Icon: "floors"},
				{ID: "kf-year", Text: "Year built", Icon: "calendar"},
			},
			Amenities: []TabItem{
				{ID: "am-gym", Text: "Fitness centre", Icon: "gym"},
				{ID: "am-concierge", Text: "24h concierge", Icon: "concierge"},
			},
			Highlights: []TabItem{
				{ID: "hl-transit", Text: "Steps to transit", Icon: "transit"},
				{ID: "hl-views", Text: "Unobstructed views", Icon: "views"},
			},
		},
		CarouselSettings: CarouselSettings{
			ForRent: CarouselConfig{Title: "For Rent", Subtitle: "Latest rental listings", Limit: 8},
			ForSale: CarouselConfig{Title: "For Sale", Subtitle: "Latest listings for sale", Limit: 8},
		},
		FAQ: FAQSection{
			Heading: "Frequently Asked Questions",
			Items: []FAQItem{
				{ID: "faq-fees", Question: "What do maintenance fees cover?", Answer: "Fees vary by building; each listing breaks down what is included."},
				{ID: "faq-tours", Question: "Can I book a tour online?", Answer: "Yes, every listing page has a booking form."},
			},
		},
		Footer: FooterSection{
			Tagline:   "Your neighbourhood real estate experts.",
			Copyright: "All rights reserved.",
			QuickLinks: []FooterLink{
				{ID: "fq-listings", Text: "Listings", URL: "/listings"},
				{ID: "fq-buildings", Text: "Buildings", URL: "/buildings"},
				{ID: "fq-contact", Text: "Contact", URL: "/contact"},
			},
			LegalLinks: []FooterLink{
				{ID: "fl-privacy", Text: "Privacy Policy", URL: "/privacy"},
				{ID: "fl-terms", Text: "Terms of Use", URL: "/terms"},
			},
			ShowContactInfo: true,
			ShowSocialLinks: true,
		},
		HeaderLinks: []HeaderLink{
			{ID: "nav-home", Text: "Home", URL: "/", Enabled: true},
			{ID: "nav-listings", Text: "Listings", URL: "/listings", Enabled: true},
			{ID: "nav-buildings", Text: "Buildings", URL: "/buildings", Enabled: true},
			{ID: "nav-contact", Text: "Contact", URL: "/contact", Enabled: true},
		},
		MLSSettings: MLSSettings{
			DefaultStatus:      "active",
			DefaultListingType: "for_sale",
		},
	}
}
