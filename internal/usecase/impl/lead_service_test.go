package impl

import (
	"context"
	"log/slog"
	"net/http"
	"testing"

	"krystal/internal/domain/entity"
	domainerrors "krystal/internal/domain/errors"
	"krystal/internal/domain/repository"
	"krystal/internal/domain/service"
	mockRepo "krystal/internal/mocks/repository"
	mockSvc "krystal/internal/mocks/service"
	"krystal/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLeadServiceForTest(t *testing.T) (usecase.LeadUsecase, *mockRepo.MockLeadRepository, *mockSvc.MockEventPublisher) {
	t.Helper()

	leadRepo := mockRepo.NewMockLeadRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	svc := NewLeadService(LeadServiceParams{
		LeadRepo:  leadRepo,
		Publisher: publisher,
		Logger:    slog.Default(),
	})

	return svc, leadRepo, publisher
}

func strPtr(s string) *string {
	return &s
}

func TestLeadService_CreateLead_AppliesDefaults(t *testing.T) {
	svc, leadRepo, publisher := newLeadServiceForTest(t)
	ctx := context.Background()

	leadRepo.EXPECT().
		CreateLead(ctx, mock.AnythingOfType("*entity.Lead")).
		Return(nil)

	publisher.EXPECT().
		PublishLeadEvent(ctx, mock.AnythingOfType("*service.LeadEvent")).
		Return(nil)

	lead, err := svc.CreateLead(ctx, &usecase.CreateLeadInput{
		Name:  "Ravi Sharma",
		Phone: "+91 9876543210",
	})
	require.NoError(t, err)
	require.NotNil(t, lead)

	assert.NotEqual(t, uuid.Nil, lead.ID)
	assert.Equal(t, "Ravi Sharma", lead.Name)
	assert.Equal(t, "+91 9876543210", lead.Phone)
	assert.Nil(t, lead.Email)
	assert.Equal(t, entity.DefaultLeadType, lead.LeadType)
	assert.Equal(t, entity.DefaultLeadSource, lead.Source)
	assert.Equal(t, entity.LeadStatusNew, lead.Status)
	assert.True(t, lead.CreatedAt.Equal(lead.UpdatedAt))
}

func TestLeadService_CreateLead_NormalizesOptionalFields(t *testing.T) {
	svc, leadRepo, publisher := newLeadServiceForTest(t)
	ctx := context.Background()

	leadRepo.EXPECT().
		CreateLead(ctx, mock.AnythingOfType("*entity.Lead")).
		Return(nil)

	publisher.EXPECT().
		PublishLeadEvent(ctx, mock.AnythingOfType("*service.LeadEvent")).
		Return(nil)

	lead, err := svc.CreateLead(ctx, &usecase.CreateLeadInput{
		Name:        "  Priya Verma  ",
		Phone:       " 9811000000 ",
		Email:       strPtr("  priya@example.com "),
		City:        strPtr("   "),
		LeadType:    "site_visit",
		ProjectType: strPtr("residential"),
		Source:      "landing_page",
	})
	require.NoError(t, err)

	assert.Equal(t, "Priya Verma", lead.Name)
	assert.Equal(t, "9811000000", lead.Phone)
	require.NotNil(t, lead.Email)
	assert.Equal(t, "priya@example.com", *lead.Email)
	assert.Nil(t, lead.City, "blank city should collapse to nil")
	assert.Equal(t, "site_visit", lead.LeadType)
	assert.Equal(t, "landing_page", lead.Source)
}

func TestLeadService_CreateLead_ValidationFailures(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.CreateLeadInput
	}{
		{
			name:  "empty name",
			input: &usecase.CreateLeadInput{Name: "", Phone: "9811000000"},
		},
		{
			name:  "whitespace name",
			input: &usecase.CreateLeadInput{Name: "   ", Phone: "9811000000"},
		},
		{
			name:  "empty phone",
			input: &usecase.CreateLeadInput{Name: "Ravi", Phone: ""},
		},
		{
			name:  "whitespace phone",
			input: &usecase.CreateLeadInput{Name: "Ravi", Phone: "  \t "},
		},
		{
			name:  "malformed email",
			input: &usecase.CreateLeadInput{Name: "Ravi", Phone: "9811000000", Email: strPtr("not-an-email")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newLeadServiceForTest(t)

			lead, err := svc.CreateLead(context.Background(), tt.input)
			require.Error(t, err)
			assert.Nil(t, lead)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, 422, appErr.HTTPCode())
			assert.Equal(t, "VALIDATION_ERROR", appErr.ErrorCode())
		})
	}
}

func TestLeadService_CreateLead_BlankEmailTreatedAsAbsent(t *testing.T) {
	svc, leadRepo, publisher := newLeadServiceForTest(t)
	ctx := context.Background()

	leadRepo.EXPECT().
		CreateLead(ctx, mock.AnythingOfType("*entity.Lead")).
		Return(nil)

	publisher.EXPECT().
		PublishLeadEvent(ctx, mock.AnythingOfType("*service.LeadEvent")).
		Return(nil)

	lead, err := svc.CreateLead(ctx, &usecase.CreateLeadInput{
		Name:  "Ravi",
		Phone: "9811000000",
		Email: strPtr("   "),
	})
	require.NoError(t, err)
	assert.Nil(t, lead.Email)
}

func TestLeadService_CreateLead_PublishFailureDoesNotFailRequest(t *testing.T) {
	svc, leadRepo, publisher := newLeadServiceForTest(t)
	ctx := context.Background()

	leadRepo.EXPECT().
		CreateLead(ctx, mock.AnythingOfType("*entity.Lead")).
		Return(nil)

	publisher.EXPECT().
		PublishLeadEvent(ctx, mock.AnythingOfType("*service.LeadEvent")).
		Return(errors.New("broker unreachable"))

	lead, err := svc.CreateLead(ctx, &usecase.CreateLeadInput{
		Name:  "Ravi",
		Phone: "9811000000",
	})
	require.NoError(t, err)
	assert.NotNil(t, lead)
}

func TestLeadService_CreateLead_EventCarriesLeadFields(t *testing.T) {
	svc, leadRepo, publisher := newLeadServiceForTest(t)
	ctx := context.Background()

	leadRepo.EXPECT().
		CreateLead(ctx, mock.AnythingOfType("*entity.Lead")).
		Return(nil)

	var captured *service.LeadEvent
	publisher.EXPECT().
		PublishLeadEvent(ctx, mock.AnythingOfType("*service.LeadEvent")).
		Run(func(_ context.Context, event *service.LeadEvent) {
			captured = event
		}).
		Return(nil)

	lead, err := svc.CreateLead(ctx, &usecase.CreateLeadInput{
		Name:  "Ravi",
		Phone: "9811000000",
		City:  strPtr("Gurugram"),
	})
	require.NoError(t, err)

	require.NotNil(t, captured)
	assert.Equal(t, service.EventTypeLeadCreated, captured.EventType)
	assert.Equal(t, lead.ID.String(), captured.LeadID)
	assert.Equal(t, "Ravi", captured.Name)
	assert.Equal(t, "9811000000", captured.Phone)
	assert.Equal(t, "Gurugram", captured.City)
	assert.Equal(t, entity.DefaultLeadSource, captured.Source)
}

func TestLeadService_CreateLead_RepositoryError(t *testing.T) {
	svc, leadRepo, _ := newLeadServiceForTest(t)
	ctx := context.Background()

	leadRepo.EXPECT().
		CreateLead(ctx, mock.AnythingOfType("*entity.Lead")).
		Return(errors.New("connection reset"))

	lead, err := svc.CreateLead(ctx, &usecase.CreateLeadInput{
		Name:  "Ravi",
		Phone: "9811000000",
	})
	require.Error(t, err)
	assert.Nil(t, lead)
}

func TestLeadService_GetLead_Found(t *testing.T) {
	svc, leadRepo, _ := newLeadServiceForTest(t)
	ctx := context.Background()
	id := uuid.New()

	stored := &entity.Lead{ID: id, Name: "Ravi", Phone: "9811000000"}
	leadRepo.EXPECT().
		FindLeadByID(ctx, id).
		Return(stored, nil)

	lead, err := svc.GetLead(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, stored, lead)
}

func TestLeadService_GetLead_NotFound(t *testing.T) {
	svc, leadRepo, _ := newLeadServiceForTest(t)
	ctx := context.Background()
	id := uuid.New()

	leadRepo.EXPECT().
		FindLeadByID(ctx, id).
		Return(nil, repository.ErrLeadNotFound)

	lead, err := svc.GetLead(ctx, id)
	require.Error(t, err)
	assert.Nil(t, lead)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "LEAD_NOT_FOUND", appErr.ErrorCode())
}

func TestLeadService_ListLeads_PassesFilter(t *testing.T) {
	svc, leadRepo, _ := newLeadServiceForTest(t)
	ctx := context.Background()

	expected := []*entity.Lead{
		{ID: uuid.New(), Name: "Ravi"},
		{ID: uuid.New(), Name: "Priya"},
	}
	leadRepo.EXPECT().
		ListLeads(ctx, repository.LeadListFilter{Status: "new", LeadType: "quote", Limit: 25}).
		Return(expected, nil)

	leads, err := svc.ListLeads(ctx, usecase.ListLeadsInput{Status: "new", LeadType: "quote", Limit: 25})
	require.NoError(t, err)
	assert.Equal(t, expected, leads)
}

func TestLeadService_UpdateLead_Success(t *testing.T) {
	svc, leadRepo, _ := newLeadServiceForTest(t)
	ctx := context.Background()
	id := uuid.New()

	leadRepo.EXPECT().
		UpdateLead(ctx, id, repository.LeadPatch{Status: strPtr("contacted"), Notes: strPtr("called twice")}).
		Return(nil)

	err := svc.UpdateLead(ctx, id, &usecase.UpdateLeadInput{
		Status: strPtr("contacted"),
		Notes:  strPtr("called twice"),
	})
	require.NoError(t, err)
}

func TestLeadService_UpdateLead_NotFound(t *testing.T) {
	svc, leadRepo, _ := newLeadServiceForTest(t)
	ctx := context.Background()
	id := uuid.New()

	leadRepo.EXPECT().
		UpdateLead(ctx, id, repository.LeadPatch{}).
		Return(repository.ErrLeadNotFound)

	err := svc.UpdateLead(ctx, id, &usecase.UpdateLeadInput{})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "LEAD_NOT_FOUND", appErr.ErrorCode())
}

func TestLeadService_CheckHealth(t *testing.T) {
	svc, leadRepo, _ := newLeadServiceForTest(t)
	ctx := context.Background()

	leadRepo.EXPECT().
		Ping(ctx).
		Return(nil)

	require.NoError(t, svc.CheckHealth(ctx))
}

func TestLeadService_CheckHealth_Degraded(t *testing.T) {
	svc, leadRepo, _ := newLeadServiceForTest(t)
	ctx := context.Background()

	leadRepo.EXPECT().
		Ping(ctx).
		Return(errors.New("dial tcp: connection refused"))

	err := svc.CheckHealth(ctx)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "STORE_UNAVAILABLE", appErr.ErrorCode())
	assert.Equal(t, http.StatusServiceUnavailable, appErr.HTTPCode())
}
