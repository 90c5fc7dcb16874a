package usecase

import (
	"context"

	"krystal/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateLeadInput carries a new inquiry submission. Name and Phone are
// required; everything else is optional and defaulted by the service.
type CreateLeadInput struct {
	Name         string
	Phone        string
	Email        *string
	City         *string
	LeadType     string
	ProjectType  *string
	Measurements *string
	Preferences  *string
	Message      *string
	Source       string
}

// UpdateLeadInput is a partial lead update. Nil fields are left untouched.
type UpdateLeadInput struct {
	Status *string
	Notes  *string
}

// ListLeadsInput narrows a lead listing.
type ListLeadsInput struct {
	Status   string
	LeadType string
	Limit    int
}

// LeadUsecase defines the interface for lead management use cases
type LeadUsecase interface {
	// CreateLead validates and persists a new inquiry, then emits a
	// lead.created event on a best-effort basis.
	CreateLead(ctx context.Context, input *CreateLeadInput) (*entity.Lead, error)

	// GetLead retrieves a single lead by ID.
	GetLead(ctx context.Context, id uuid.UUID) (*entity.Lead, error)

	// ListLeads retrieves leads matching the filter, newest first.
	ListLeads(ctx context.Context, input ListLeadsInput) ([]*entity.Lead, error)

	// UpdateLead applies a partial status/notes update.
	UpdateLead(ctx context.Context, id uuid.UUID, input *UpdateLeadInput) error

	// CheckHealth reports lead store connectivity.
	CheckHealth(ctx context.Context) error
}
