package entity

import (
	"time"

	"github.com/google/uuid"
)

// Lead represents a prospective customer's inbound inquiry. It is the only
// entity with runtime state; everything else in the catalog is frozen at boot.
type Lead struct {
	ID           uuid.UUID  `json:"id"`                     // Assigned once at creation, never reused.
	Name         string     `json:"name"`                   // Required.
	Phone        string     `json:"phone"`                  // Required.
	Email        *string    `json:"email,omitempty"`        // Optional; syntactically valid when present.
	City         *string    `json:"city,omitempty"`         // Free text, not validated against service areas.
	LeadType     string     `json:"lead_type"`              // quote, site_visit, contact.
	ProjectType  *string    `json:"project_type,omitempty"` // residential, commercial, villa.
	Measurements *string    `json:"measurements,omitempty"`
	Preferences  *string    `json:"preferences,omitempty"`
	Message      *string    `json:"message,omitempty"`
	Source       string     `json:"source"` // Defaults to "website".
	Status       LeadStatus `json:"status"` // Defaults to LeadStatusNew.
	Notes        *string    `json:"notes,omitempty"`
	CreatedAt    time.Time  `json:"created_at"` // Set once, never mutated.
	UpdatedAt    time.Time  `json:"updated_at"` // Refreshed on every successful mutation.
}

// DefaultLeadType is applied when a submission does not specify one.
const DefaultLeadType = "quote"

// DefaultLeadSource is applied when a submission does not specify one.
const DefaultLeadSource = "website"
