// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"krystal/internal/domain/entity"
	domainerrors "krystal/internal/domain/errors"
	"krystal/internal/domain/repository"
	"krystal/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// leadRepository implements the repository.LeadRepository interface.
type leadRepository struct {
	db *gorm.DB
}

// NewLeadRepository is the constructor for leadRepository.
func NewLeadRepository(db *gorm.DB) repository.LeadRepository {
	return &leadRepository{
		db: db,
	}
}

// CreateLead persists a new lead.
func (repo *leadRepository) CreateLead(ctx context.Context, lead *entity.Lead) error {
	leadM := model.FromLeadDomain(lead)

	if err := repo.db.WithContext(ctx).Create(leadM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateLead
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrLeadCreationFailed.WrapMessage("missing required lead information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create lead")
	}

	return nil
}

// FindLeadByID retrieves a lead by its unique ID.
func (repo *leadRepository) FindLeadByID(ctx context.Context, id uuid.UUID) (*entity.Lead, error) {
	var leadM model.LeadModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&leadM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLeadNotFound
		}

		return nil, errors.Wrap(err, "failed to find lead by ID")
	}

	return model.ToLeadDomain(&leadM), nil
}

// ListLeads retrieves leads matching the filter, newest first. The limit is
// clamped to MaxLeadListLimit; zero or negative falls back to the default.
func (repo *leadRepository) ListLeads(ctx context.Context, filter repository.LeadListFilter) ([]*entity.Lead, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = repository.DefaultLeadListLimit
	}
	if limit > repository.MaxLeadListLimit {
		limit = repository.MaxLeadListLimit
	}

	query := repo.db.WithContext(ctx).Model(&model.LeadModel{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.LeadType != "" {
		query = query.Where("lead_type = ?", filter.LeadType)
	}

	var leadModels []*model.LeadModel
	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Find(&leadModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list leads")
	}

	leads := make([]*entity.Lead, 0, len(leadModels))
	for _, leadM := range leadModels {
		leads = append(leads, model.ToLeadDomain(leadM))
	}

	return leads, nil
}

// UpdateLead applies a partial status/notes update. updated_at is refreshed
// even when the patch carries no fields; an empty PATCH still counts as a
// touch.
func (repo *leadRepository) UpdateLead(ctx context.Context, id uuid.UUID, patch repository.LeadPatch) error {
	updates := map[string]any{
		"updated_at": time.Now().UTC(),
	}
	if patch.Status != nil {
		updates["status"] = *patch.Status
	}
	if patch.Notes != nil {
		updates["notes"] = *patch.Notes
	}

	result := repo.db.WithContext(ctx).
		Model(&model.LeadModel{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update lead")
	}

	if result.RowsAffected == 0 {
		return repository.ErrLeadNotFound
	}

	return nil
}

// Ping probes database connectivity for the health endpoint.
func (repo *leadRepository) Ping(ctx context.Context) error {
	sqlDB, err := repo.db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB for ping")
	}

	return errors.Wrap(sqlDB.PingContext(ctx), "failed to ping database")
}
