package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"krystal/internal/delivery/http/response"
	"krystal/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LeadHandlerParams holds dependencies for LeadHandler, injected by Fx.
type LeadHandlerParams struct {
	fx.In

	LeadUC usecase.LeadUsecase
	Logger *slog.Logger
}

// LeadHandler holds dependencies for lead-related handlers
type LeadHandler struct {
	leadUC usecase.LeadUsecase
	logger *slog.Logger
}

// NewLeadHandler is the constructor for LeadHandler
func NewLeadHandler(params LeadHandlerParams) *LeadHandler {
	return &LeadHandler{
		leadUC: params.LeadUC,
		logger: params.Logger,
	}
}

// CreateLeadRequest represents the request body for submitting an inquiry
type CreateLeadRequest struct {
	Name         string  `json:"name" validate:"required"`
	Phone        string  `json:"phone" validate:"required"`
	Email        *string `json:"email,omitempty" validate:"omitempty,email"`
	City         *string `json:"city,omitempty"`
	LeadType     string  `json:"lead_type,omitempty"`
	ProjectType  *string `json:"project_type,omitempty"`
	Measurements *string `json:"measurements,omitempty"`
	Preferences  *string `json:"preferences,omitempty"`
	Message      *string `json:"message,omitempty"`
	Source       string  `json:"source,omitempty"`
}

// UpdateLeadRequest represents the request body for a partial lead update.
// Absent fields stay untouched; any status string is accepted.
type UpdateLeadRequest struct {
	Status *string `json:"status,omitempty"`
	Notes  *string `json:"notes,omitempty"`
}

// CreateLead handles new inquiry submissions from the public site
func (h *LeadHandler) CreateLead(c echo.Context) error {
	var req CreateLeadRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid lead submission")
	}

	if err := c.Validate(&req); err != nil {
		return response.UnprocessableEntity(c, "VALIDATION_ERROR", "Input validation failed", err.Error())
	}

	lead, err := h.leadUC.CreateLead(c.Request().Context(), &usecase.CreateLeadInput{
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		City:         req.City,
		LeadType:     req.LeadType,
		ProjectType:  req.ProjectType,
		Measurements: req.Measurements,
		Preferences:  req.Preferences,
		Message:      req.Message,
		Source:       req.Source,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, lead, "Lead created successfully")
}

// ListLeads handles retrieving leads for the sales team, newest first
func (h *LeadHandler) ListLeads(c echo.Context) error {
	input := usecase.ListLeadsInput{
		Status:   c.QueryParam("status"),
		LeadType: c.QueryParam("lead_type"),
	}

	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_QUERY", "limit must be an integer")
		}
		input.Limit = limit
	}

	leads, err := h.leadUC.ListLeads(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, leads, "Leads retrieved successfully")
}

// GetLead handles retrieving a single lead by ID. An unparseable ID behaves
// like a missing record.
func (h *LeadHandler) GetLead(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c, "LEAD_NOT_FOUND", "Lead not found")
	}

	lead, err := h.leadUC.GetLead(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, lead, "Lead retrieved successfully")
}

// UpdateLead handles partial status/notes updates
func (h *LeadHandler) UpdateLead(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c, "LEAD_NOT_FOUND", "Lead not found")
	}

	var req UpdateLeadRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid lead update")
	}

	if err := h.leadUC.UpdateLead(c.Request().Context(), id, &usecase.UpdateLeadInput{
		Status: req.Status,
		Notes:  req.Notes,
	}); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": id.String()}, "Lead updated successfully")
}
