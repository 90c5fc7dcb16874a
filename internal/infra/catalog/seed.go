package catalog

import (
	"time"

	"krystal/internal/domain/entity"
)

// catalogEpoch stamps every seeded record. A fixed instant keeps responses
// and the sitemap byte-stable across restarts.
var catalogEpoch = time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

// Shared image assets referenced across collections.
var images = map[string]string{
	"hero":   "https://images.pexels.com/photos/1571460/pexels-photo-1571460.jpeg?auto=compress&cs=tinysrgb&w=1920&q=80",
	"hero_2": "https://images.pexels.com/photos/1571463/pexels-photo-1571463.jpeg?auto=compress&cs=tinysrgb&w=1920&q=80",
	"casement_window": "https://customer-assets.emergentagent.com/job_upvc-elegance/artifacts/h35z2via_Casement.png",
	"sliding_window":  "https://customer-assets.emergentagent.com/job_upvc-elegance/artifacts/yj34d8qa_Sliding.png",
	"tilt_turn_window": "https://customer-assets.emergentagent.com/job_upvc-elegance/artifacts/ruuzup5o_Tilt%20and%20Turn.png",
	"fixed_window":     "https://customer-assets.emergentagent.com/job_upvc-elegance/artifacts/kalvevar_Fixed.png",
	"top_hung_window":  "https://customer-assets.emergentagent.com/job_upvc-elegance/artifacts/yi6vpufb_Top%20Hund%20Ventilator.png",
	"french_window":    "https://customer-assets.emergentagent.com/job_upvc-elegance/artifacts/dsy4xd9o_French.png",
	"doors_1":      "https://images.pexels.com/photos/1571458/pexels-photo-1571458.jpeg?auto=compress&cs=tinysrgb&w=800&q=80",
	"doors_2":      "https://images.unsplash.com/photo-1525570665650-76bb26af503d?w=800&q=80",
	"interior_1":   "https://images.pexels.com/photos/1571468/pexels-photo-1571468.jpeg?auto=compress&cs=tinysrgb&w=800&q=80",
	"interior_2":   "https://images.pexels.com/photos/1457842/pexels-photo-1457842.jpeg?auto=compress&cs=tinysrgb&w=800&q=80",
	"villa_1":      "https://images.pexels.com/photos/259580/pexels-photo-259580.jpeg?auto=compress&cs=tinysrgb&w=800&q=80",
	"villa_2":      "https://images.pexels.com/photos/323780/pexels-photo-323780.jpeg?auto=compress&cs=tinysrgb&w=800&q=80",
	"commercial_1": "https://images.unsplash.com/photo-1497366754035-f200968a6e72?w=800&q=80",
	"glass_1":      "https://images.pexels.com/photos/380768/pexels-photo-380768.jpeg?auto=compress&cs=tinysrgb&w=800&q=80",
	"glass_2":      "https://images.pexels.com/photos/534220/pexels-photo-534220.jpeg?auto=compress&cs=tinysrgb&w=800&q=80",
	"texture_wood":  "https://images.pexels.com/photos/129731/pexels-photo-129731.jpeg?auto=compress&cs=tinysrgb&w=400&q=80",
	"texture_white": "https://images.pexels.com/photos/1571459/pexels-photo-1571459.jpeg?auto=compress&cs=tinysrgb&w=400&q=80",
	"hardware_1":    "https://images.pexels.com/photos/279810/pexels-photo-279810.jpeg?auto=compress&cs=tinysrgb&w=400&q=80",
	"team_1":        "https://images.unsplash.com/photo-1560250097-0b93528c311a?w=400&q=80",
	"factory_1":     "https://images.pexels.com/photos/1267338/pexels-photo-1267338.jpeg?auto=compress&cs=tinysrgb&w=800&q=80",
}

// Seed returns the full production catalog definition.
func Seed() Definition {
	return Definition{
		Products:      seedProducts(),
		Projects:      seedProjects(),
		BlogPosts:     seedBlogPosts(),
		FAQs:          seedFAQs(),
		Testimonials:  seedTestimonials(),
		Cities:        seedCities(),
		ColorFinishes: seedColorFinishes(),
		GlassOptions:  seedGlassOptions(),
		Hardware:      seedHardware(),
		Downloads:     seedDownloads(),
		Settings:      seedSettings(),
	}
}

func seedSettings() entity.GlobalSettings {
	return entity.GlobalSettings{
		ID:              entity.SettingsID,
		CompanyName:     "Krystal Magic World",
		Tagline:         "Architectural Luxury uPVC Doors & Windows",
		LogoURL:         "https://customer-assets.emergentagent.com/job_upvc-specialists/artifacts/2c6u16fh_logo%20png%20%284%29.jpg",
		EstablishedYear: 2012,
		Contact: entity.ContactInfo{
			Phone:    "+91 9220905087",
			WhatsApp: "+91 9599614440",
			Email:    "sales@krystalmagicworld.com",
			Address:  "403, 4th Floor, Greenwood Plaza, Sector-45, Near HSBC Building, Gurgaon - 122003 (Haryana)",
		},
	}
}
