package entity

import "time"

// BlogPost is a pre-authored article. Content is markdown and rendered by the
// frontend; the backend never generates documents.
type BlogPost struct {
	ID              string    `json:"id"`
	Slug            string    `json:"slug"` // Unique, URL-safe.
	Title           string    `json:"title"`
	Excerpt         string    `json:"excerpt"`
	Content         string    `json:"content"`
	Category        string    `json:"category"` // acoustic, energy, maintenance, design.
	Tags            []string  `json:"tags"`
	HeroImage       string    `json:"hero_image"`
	Author          string    `json:"author"`
	ReadTime        int       `json:"read_time"` // Minutes.
	MetaTitle       *string   `json:"meta_title,omitempty"`
	MetaDescription *string   `json:"meta_description,omitempty"`
	IsPublished     bool      `json:"is_published"`
	CreatedAt       time.Time `json:"created_at"`
}
