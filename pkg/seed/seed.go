package seed

import (
	"log"

	"gorm.io/gorm"

	"condoadmin_backend/internal/model"
)

// SeedAmenities installs the selectable amenity catalog. Idempotent: rows
// are matched by name.
func SeedAmenities(db *gorm.DB) {
	amenities := []model.Amenity{
		{Name: "Concierge", Category: model.AmenityCategoryGeneral, Icon: "concierge"},
		{Name: "Fitness Centre", Category: model.AmenityCategoryGeneral, Icon: "gym"},
		{Name: "Rooftop Terrace", Category: model.AmenityCategoryGeneral, Icon: "terrace"},
		{Name: "Indoor Pool", Category: model.AmenityCategoryGeneral, Icon: "pool"},
		{Name: "Party Room", Category: model.AmenityCategoryGeneral, Icon: "party"},
		{Name: "Guest Suites", Category: model.AmenityCategoryGeneral, Icon: "suite"},
		{Name: "Visitor Parking", Category: model.AmenityCategoryGeneral, Icon: "parking"},
		{Name: "Pet Spa", Category: model.AmenityCategoryGeneral, Icon: "pets"},
		{Name: "Water", Category: model.AmenityCategoryMaintenance, Icon: "water"},
		{Name: "Heat", Category: model.AmenityCategoryMaintenance, Icon: "heat"},
		{Name: "Hydro", Category: model.AmenityCategoryMaintenance, Icon: "hydro"},
		{Name: "Building Insurance", Category: model.AmenityCategoryMaintenance, Icon: "insurance"},
		{Name: "Common Element Maintenance", Category: model.AmenityCategoryMaintenance, Icon: "maintenance"},
		{Name: "Parking Included", Category: model.AmenityCategoryMaintenance, Icon: "parking"},
	}

	for _, a := range amenities {
		result := db.FirstOrCreate(&a, model.Amenity{Name: a.Name})
		if result.Error != nil {
			log.Printf("Error creating amenity %s: %v", a.Name, result.Error)
		}
	}

	log.Println("Amenity catalog seeded successfully!")
}

// SeedIcons installs the default icon set referenced by tab items.
func SeedIcons(db *gorm.DB) {
	icons := []model.Icon{
		{Name: "units", Category: model.IconCategoryKeyFacts, URL: "/icons/units.svg", Active: true, Description: "Total units"},
		{Name: "floors", Category: model.IconCategoryKeyFacts, URL: "/icons/floors.svg", Active: true, Description: "Floor count"},
		{Name: "calendar", Category: model.IconCategoryKeyFacts, URL: "/icons/calendar.svg", Active: true, Description: "Year built"},
		{Name: "gym", Category: model.IconCategoryAmenities, URL: "/icons/gym.svg", Active: true, Description: "Fitness centre"},
		{Name: "concierge", Category: model.IconCategoryAmenities, URL: "/icons/concierge.svg", Active: true, Description: "Concierge desk"},
		{Name: "transit", Category: model.IconCategoryHighlights, URL: "/icons/transit.svg", Active: true, Description: "Transit access"},
		{Name: "views", Category: model.IconCategoryHighlights, URL: "/icons/views.svg", Active: true, Description: "Views"},
		{Name: "phone", Category: model.IconCategoryContact, URL: "/icons/phone.svg", Active: true, Description: "Phone"},
		{Name: "email", Category: model.IconCategoryContact, URL: "/icons/email.svg", Active: true, Description: "Email"},
	}

	for _, ic := range icons {
		result := db.FirstOrCreate(&ic, model.Icon{Name: ic.Name})
		if result.Error != nil {
			log.Printf("Error creating icon %s: %v", ic.Name, result.Error)
		}
	}

	log.Println("Default icons seeded successfully!")
}
