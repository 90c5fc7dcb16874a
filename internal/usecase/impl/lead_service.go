package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliveryctx "krystal/internal/delivery/context"
	"krystal/internal/domain/entity"
	domainerrors "krystal/internal/domain/errors"
	"krystal/internal/domain/repository"
	"krystal/internal/domain/service"
	"krystal/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// leadService implements the lead lifecycle: capture, listing, retrieval,
// and permissive status updates.
type leadService struct {
	leadRepo  repository.LeadRepository
	publisher service.EventPublisher
	logger    *slog.Logger
	validate  *validator.Validate
}

// LeadServiceParams holds dependencies for LeadService, injected by Fx.
type LeadServiceParams struct {
	fx.In

	LeadRepo  repository.LeadRepository
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewLeadService creates a new lead service instance
func NewLeadService(params LeadServiceParams) usecase.LeadUsecase {
	return &leadService{
		leadRepo:  params.LeadRepo,
		publisher: params.Publisher,
		logger:    params.Logger,
		validate:  validator.New(),
	}
}

// CreateLead validates and persists a new inquiry. The created and updated
// timestamps are assigned from a single reading of the clock so they compare
// equal on a fresh lead. Event publishing is best-effort: a publish failure
// is logged and never fails the request.
func (s *leadService) CreateLead(ctx context.Context, input *usecase.CreateLeadInput) (*entity.Lead, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name must not be empty")
	}

	phone := strings.TrimSpace(input.Phone)
	if phone == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("phone must not be empty")
	}

	email := normalizeOptional(input.Email)
	if email != nil {
		if err := s.validate.Var(*email, "email"); err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("email is not a valid address")
		}
	}

	leadType := input.LeadType
	if leadType == "" {
		leadType = entity.DefaultLeadType
	}
	source := input.Source
	if source == "" {
		source = entity.DefaultLeadSource
	}

	now := time.Now().UTC()
	lead := &entity.Lead{
		ID:           uuid.New(),
		Name:         name,
		Phone:        phone,
		Email:        email,
		City:         normalizeOptional(input.City),
		LeadType:     leadType,
		ProjectType:  normalizeOptional(input.ProjectType),
		Measurements: input.Measurements,
		Preferences:  input.Preferences,
		Message:      input.Message,
		Source:       source,
		Status:       entity.LeadStatusNew,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.leadRepo.CreateLead(ctx, lead); err != nil {
		return nil, errors.Wrap(err, "failed to create lead")
	}

	s.publishCreated(ctx, lead)

	return lead, nil
}

// publishCreated emits the lead.created event. Failures are logged only.
func (s *leadService) publishCreated(ctx context.Context, lead *entity.Lead) {
	event := &service.LeadEvent{
		RequestID: deliveryctx.GetRequestIDFromContext(ctx),
		EventType: service.EventTypeLeadCreated,
		LeadID:    lead.ID.String(),
		LeadType:  lead.LeadType,
		Name:      lead.Name,
		Phone:     lead.Phone,
		Source:    lead.Source,
	}
	if lead.City != nil {
		event.City = *lead.City
	}

	if err := s.publisher.PublishLeadEvent(ctx, event); err != nil {
		deliveryctx.GetLoggerOrDefault(ctx, s.logger).Warn("failed to publish lead event",
			slog.String("lead_id", event.LeadID),
			slog.String("error", err.Error()),
		)
	}
}

// GetLead retrieves a single lead by ID.
func (s *leadService) GetLead(ctx context.Context, id uuid.UUID) (*entity.Lead, error) {
	lead, err := s.leadRepo.FindLeadByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrLeadNotFound) {
			return nil, domainerrors.ErrLeadNotFound
		}

		return nil, errors.Wrap(err, "failed to get lead")
	}

	return lead, nil
}

// ListLeads retrieves leads matching the filter, newest first. The limit is
// clamped by the repository.
func (s *leadService) ListLeads(ctx context.Context, input usecase.ListLeadsInput) ([]*entity.Lead, error) {
	leads, err := s.leadRepo.ListLeads(ctx, repository.LeadListFilter{
		Status:   input.Status,
		LeadType: input.LeadType,
		Limit:    input.Limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list leads")
	}

	return leads, nil
}

// UpdateLead applies a partial status/notes update. Any status string is
// accepted and updated_at is refreshed even when nothing changes; the
// pipeline stays permissive on purpose.
func (s *leadService) UpdateLead(ctx context.Context, id uuid.UUID, input *usecase.UpdateLeadInput) error {
	err := s.leadRepo.UpdateLead(ctx, id, repository.LeadPatch{
		Status: input.Status,
		Notes:  input.Notes,
	})
	if err != nil {
		if errors.Is(err, repository.ErrLeadNotFound) {
			return domainerrors.ErrLeadNotFound
		}

		return errors.Wrap(err, "failed to update lead")
	}

	return nil
}

// CheckHealth reports lead store connectivity.
func (s *leadService) CheckHealth(ctx context.Context) error {
	if err := s.leadRepo.Ping(ctx); err != nil {
		return domainerrors.ErrStoreUnavailable.WrapMessage(err.Error())
	}

	return nil
}

// normalizeOptional trims an optional string and collapses blank values to
// nil so they persist as NULL rather than empty text.
func normalizeOptional(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}
