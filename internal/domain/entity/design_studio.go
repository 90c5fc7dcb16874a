package entity

// ColorFinish is a profile lamination or paint option in the design studio.
type ColorFinish struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Code      string `json:"code"`     // Hex color code.
	Category  string `json:"category"` // solid, wood_texture, metallic.
	Image     string `json:"image"`
	IsPopular bool   `json:"is_popular"`
}

// GlassOption is a glazing choice in the design studio.
type GlassOption struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Benefits    []string `json:"benefits"`
	Image       string   `json:"image"`
}

// Hardware is a handle, hinge, lock, or accessory option.
type Hardware struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"` // handles, hinges, locks, accessories.
	Description string `json:"description"`
	Image       string `json:"image"`
}
