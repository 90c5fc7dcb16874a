package handler

import (
	"net/http"

	"krystal/internal/delivery/http/response"
	"krystal/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StudioHandlerParams holds dependencies for StudioHandler, injected by Fx.
type StudioHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
}

// StudioHandler serves the design studio configurator data and downloads.
type StudioHandler struct {
	catalogUC usecase.CatalogUsecase
}

// NewStudioHandler is the constructor for StudioHandler
func NewStudioHandler(params StudioHandlerParams) *StudioHandler {
	return &StudioHandler{
		catalogUC: params.CatalogUC,
	}
}

// ListColorFinishes handles the color finish listing
func (h *StudioHandler) ListColorFinishes(c echo.Context) error {
	finishes := h.catalogUC.ListColorFinishes(c.QueryParam("category"))

	return response.Success(c, http.StatusOK, finishes, "Color finishes retrieved successfully")
}

// ListGlassOptions handles the glazing option listing
func (h *StudioHandler) ListGlassOptions(c echo.Context) error {
	options := h.catalogUC.ListGlassOptions()

	return response.Success(c, http.StatusOK, options, "Glass options retrieved successfully")
}

// ListHardware handles the hardware listing
func (h *StudioHandler) ListHardware(c echo.Context) error {
	hardware := h.catalogUC.ListHardware(c.QueryParam("category"))

	return response.Success(c, http.StatusOK, hardware, "Hardware retrieved successfully")
}

// ListDownloads handles the downloadable resource listing
func (h *StudioHandler) ListDownloads(c echo.Context) error {
	downloads := h.catalogUC.ListDownloads(c.QueryParam("category"))

	return response.Success(c, http.StatusOK, downloads, "Downloads retrieved successfully")
}
