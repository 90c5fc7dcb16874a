package entity

// FAQ is a frequently asked question. FAQs are not browsable by slug; they
// only appear in filtered lists sorted by Order.
type FAQ struct {
	ID         string `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   string `json:"category"` // general, windows, doors, installation, maintenance.
	Order      int    `json:"order"`
	IsFeatured bool   `json:"is_featured"`
}
