package handler

import (
	"net/http"
	"strconv"

	"krystal/internal/delivery/http/response"
	"krystal/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
}

// CatalogHandler serves the product and project catalog
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
	}
}

// parseBoolParam parses an optional boolean query parameter. A malformed
// value is reported to the caller instead of being ignored.
func parseBoolParam(c echo.Context, name string) (*bool, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, response.BadRequest(c, "INVALID_QUERY", name+" must be a boolean")
	}

	return &v, nil
}

// parseLimitParam parses an optional integer limit query parameter.
func parseLimitParam(c echo.Context) (*int, error) {
	raw := c.QueryParam("limit")
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, response.BadRequest(c, "INVALID_QUERY", "limit must be an integer")
	}

	return &v, nil
}

// ListProducts handles the product catalog listing
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	featured, errResp := parseBoolParam(c, "featured")
	if errResp != nil {
		return errResp
	}
	limit, errResp := parseLimitParam(c)
	if errResp != nil {
		return errResp
	}

	products := h.catalogUC.ListProducts(usecase.ProductFilter{
		Category:    c.QueryParam("category"),
		ProductType: c.QueryParam("product_type"),
		Featured:    featured,
		Limit:       limit,
	})

	return response.Success(c, http.StatusOK, products, "Products retrieved successfully")
}

// GetProduct handles a single product page lookup by slug
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	product, err := h.catalogUC.GetProductBySlug(c.Param("slug"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product, "Product retrieved successfully")
}

// ListProjects handles the project showcase listing
func (h *CatalogHandler) ListProjects(c echo.Context) error {
	featured, errResp := parseBoolParam(c, "featured")
	if errResp != nil {
		return errResp
	}
	limit, errResp := parseLimitParam(c)
	if errResp != nil {
		return errResp
	}

	projects := h.catalogUC.ListProjects(usecase.ProjectFilter{
		City:        c.QueryParam("city"),
		ProjectType: c.QueryParam("project_type"),
		Featured:    featured,
		Limit:       limit,
	})

	return response.Success(c, http.StatusOK, projects, "Projects retrieved successfully")
}

// GetProject handles a single case-study lookup by slug
func (h *CatalogHandler) GetProject(c echo.Context) error {
	project, err := h.catalogUC.GetProjectBySlug(c.Param("slug"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, project, "Project retrieved successfully")
}
