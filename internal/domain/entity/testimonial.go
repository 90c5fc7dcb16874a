package entity

// Testimonial is a customer quote. Location is free text containing a city
// name; city pages match it by substring, and an unmatched location simply
// never surfaces on a city page.
type Testimonial struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Role       string  `json:"role"` // homeowner, architect, builder.
	Company    *string `json:"company,omitempty"`
	Location   string  `json:"location"`
	Content    string  `json:"content"`
	Rating     int     `json:"rating"`
	Image      *string `json:"image,omitempty"`
	ProjectID  *string `json:"project_id,omitempty"` // Soft reference, dangling tolerated.
	IsFeatured bool    `json:"is_featured"`
}
