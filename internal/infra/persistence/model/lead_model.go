// Package model contains the GORM-specific structs mapping domain entities
// to database tables.
package model

import (
	"time"

	"krystal/internal/domain/entity"

	"github.com/google/uuid"
)

// LeadModel is the GORM-specific struct for the 'leads' table. It represents
// an inbound customer inquiry. Leads are append-and-update only; there is no
// delete column because rows are never removed.
type LeadModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Phone        string    `gorm:"type:varchar(32);not null"`
	Email        *string   `gorm:"type:varchar(255)"`
	City         *string   `gorm:"type:varchar(128)"`
	LeadType     string    `gorm:"type:varchar(32);not null"`
	ProjectType  *string   `gorm:"type:varchar(32)"`
	Measurements *string   `gorm:"type:text"`
	Preferences  *string   `gorm:"type:text"`
	Message      *string   `gorm:"type:text"`
	Source       string    `gorm:"type:varchar(32);not null"`
	Status       string    `gorm:"type:varchar(32);not null;index"`
	Notes        *string   `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"index"`
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (LeadModel) TableName() string {
	return "leads"
}

// FromLeadDomain converts a domain Lead to its persistence model.
func FromLeadDomain(lead *entity.Lead) *LeadModel {
	return &LeadModel{
		ID:           lead.ID,
		Name:         lead.Name,
		Phone:        lead.Phone,
		Email:        lead.Email,
		City:         lead.City,
		LeadType:     lead.LeadType,
		ProjectType:  lead.ProjectType,
		Measurements: lead.Measurements,
		Preferences:  lead.Preferences,
		Message:      lead.Message,
		Source:       lead.Source,
		Status:       lead.Status.String(),
		Notes:        lead.Notes,
		CreatedAt:    lead.CreatedAt,
		UpdatedAt:    lead.UpdatedAt,
	}
}

// ToLeadDomain converts a persistence model back to the domain entity.
func ToLeadDomain(leadM *LeadModel) *entity.Lead {
	return &entity.Lead{
		ID:           leadM.ID,
		Name:         leadM.Name,
		Phone:        leadM.Phone,
		Email:        leadM.Email,
		City:         leadM.City,
		LeadType:     leadM.LeadType,
		ProjectType:  leadM.ProjectType,
		Measurements: leadM.Measurements,
		Preferences:  leadM.Preferences,
		Message:      leadM.Message,
		Source:       leadM.Source,
		Status:       entity.LeadStatus(leadM.Status),
		Notes:        leadM.Notes,
		CreatedAt:    leadM.CreatedAt,
		UpdatedAt:    leadM.UpdatedAt,
	}
}
