package entity

import "time"

// Project is a completed installation case study. The City field is free text
// joined against City.Name at read time; there is no referential integrity.
type Project struct {
	ID                string    `json:"id"`
	Slug              string    `json:"slug"` // Unique, URL-safe.
	Title             string    `json:"title"`
	Location          string    `json:"location"`
	City              string    `json:"city"`
	ProjectType       string    `json:"project_type"` // residential, commercial, villa.
	ProductTypes      []string  `json:"product_types"`
	HeroImage         string    `json:"hero_image"`
	Gallery           []string  `json:"gallery"`
	Challenge         string    `json:"challenge"`
	Solution          string    `json:"solution"`
	Outcome           string    `json:"outcome"`
	Testimonial       *string   `json:"testimonial,omitempty"`
	TestimonialAuthor *string   `json:"testimonial_author,omitempty"`
	MetaTitle         *string   `json:"meta_title,omitempty"`
	MetaDescription   *string   `json:"meta_description,omitempty"`
	IsFeatured        bool      `json:"is_featured"`
	CreatedAt         time.Time `json:"created_at"`
}
