package entity

// SettingsID is the fixed identifier of the GlobalSettings singleton.
const SettingsID = "global"

// ContactInfo holds the company's contact coordinates.
type ContactInfo struct {
	Phone    string `json:"phone"`
	WhatsApp string `json:"whatsapp"`
	Email    string `json:"email"`
	Address  string `json:"address"`
}

// GlobalSettings is the site-wide configuration singleton. There is exactly
// one instance with ID "global"; it has no collection semantics.
type GlobalSettings struct {
	ID              string      `json:"id"`
	CompanyName     string      `json:"company_name"`
	Tagline         string      `json:"tagline"`
	LogoURL         string      `json:"logo_url"`
	EstablishedYear int         `json:"established_year"`
	Contact         ContactInfo `json:"contact"`
}
