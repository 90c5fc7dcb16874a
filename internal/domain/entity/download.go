package entity

// Download is a downloadable resource such as a brochure or warranty document.
type Download struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"` // brochure, care_guide, warranty, certification.
	FileURL     string  `json:"file_url"`
	FileType    string  `json:"file_type"`
	FileSize    *string `json:"file_size,omitempty"`
}
