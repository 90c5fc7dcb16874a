package entity

// City is a serviced area with a dedicated landing page.
type City struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Slug            string  `json:"slug"` // Unique, URL-safe.
	State           string  `json:"state"`
	Description     string  `json:"description"`
	MetaTitle       *string `json:"meta_title,omitempty"`
	MetaDescription *string `json:"meta_description,omitempty"`
	IsActive        bool    `json:"is_active"`
}

// CityDetail is a City plus its read-time derived joins. The associations are
// recomputed per request from field matching, never stored.
type CityDetail struct {
	City
	Testimonials []Testimonial `json:"testimonials"` // Location contains City.Name.
	Projects     []Project     `json:"projects"`     // Project.City equals City.Name exactly.
	FAQs         []FAQ         `json:"faqs"`         // First 5 featured FAQs in stored order.
}
