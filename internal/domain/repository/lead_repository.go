// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"krystal/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for lead persistence.
var (
	// ErrLeadNotFound is returned when a lead is not found.
	ErrLeadNotFound = errors.New("lead not found")
	// ErrDuplicateLead is returned when an ID collision is detected on insert.
	// Practically impossible with a proper generator, but a collision must
	// fail loudly rather than silently overwrite.
	ErrDuplicateLead = errors.New("lead already exists")
)

// Listing bounds for lead queries. Requests above the ceiling are clamped,
// not rejected.
const (
	DefaultLeadListLimit = 100
	MaxLeadListLimit     = 500
)

// LeadListFilter narrows a lead listing. Nil/empty members mean "no
// constraint"; filters are conjunctive.
type LeadListFilter struct {
	Status   string
	LeadType string
	Limit    int
}

// LeadPatch is a partial update. Only non-nil fields are applied; the
// repository always refreshes updated_at regardless.
type LeadPatch struct {
	Status *string
	Notes  *string
}

// LeadRepository defines the interface for lead-related database operations.
// Leads are never physically deleted; no delete operation exists.
type LeadRepository interface {
	// CreateLead persists a new lead. The store enforces ID uniqueness.
	CreateLead(ctx context.Context, lead *entity.Lead) error

	// FindLeadByID retrieves a lead by its unique ID.
	FindLeadByID(ctx context.Context, id uuid.UUID) (*entity.Lead, error)

	// ListLeads retrieves leads matching the filter, newest first.
	ListLeads(ctx context.Context, filter LeadListFilter) ([]*entity.Lead, error)

	// UpdateLead applies a partial status/notes update and refreshes updated_at.
	UpdateLead(ctx context.Context, id uuid.UUID, patch LeadPatch) error

	// Ping probes store connectivity for the health endpoint.
	Ping(ctx context.Context) error
}
