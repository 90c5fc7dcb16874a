package handler

import (
	"net/http"

	"krystal/internal/delivery/http/response"
	"krystal/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ContentHandlerParams holds dependencies for ContentHandler, injected by Fx.
type ContentHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
}

// ContentHandler serves editorial content: blog, FAQs, testimonials, and
// city landing pages.
type ContentHandler struct {
	catalogUC usecase.CatalogUsecase
}

// NewContentHandler is the constructor for ContentHandler
func NewContentHandler(params ContentHandlerParams) *ContentHandler {
	return &ContentHandler{
		catalogUC: params.CatalogUC,
	}
}

// ListPosts handles the blog listing
func (h *ContentHandler) ListPosts(c echo.Context) error {
	limit, errResp := parseLimitParam(c)
	if errResp != nil {
		return errResp
	}

	posts := h.catalogUC.ListPosts(usecase.PostFilter{
		Category: c.QueryParam("category"),
		Limit:    limit,
	})

	return response.Success(c, http.StatusOK, posts, "Blog posts retrieved successfully")
}

// GetPost handles a single blog post lookup by slug
func (h *ContentHandler) GetPost(c echo.Context) error {
	post, err := h.catalogUC.GetPostBySlug(c.Param("slug"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, post, "Blog post retrieved successfully")
}

// ListFAQs handles the FAQ listing
func (h *ContentHandler) ListFAQs(c echo.Context) error {
	featured, errResp := parseBoolParam(c, "featured")
	if errResp != nil {
		return errResp
	}

	faqs := h.catalogUC.ListFAQs(usecase.FAQFilter{
		Category: c.QueryParam("category"),
		Featured: featured,
	})

	return response.Success(c, http.StatusOK, faqs, "FAQs retrieved successfully")
}

// ListTestimonials handles the testimonial listing
func (h *ContentHandler) ListTestimonials(c echo.Context) error {
	featured, errResp := parseBoolParam(c, "featured")
	if errResp != nil {
		return errResp
	}

	testimonials := h.catalogUC.ListTestimonials(featured)

	return response.Success(c, http.StatusOK, testimonials, "Testimonials retrieved successfully")
}

// ListCities handles the service-area listing
func (h *ContentHandler) ListCities(c echo.Context) error {
	cities := h.catalogUC.ListCities()

	return response.Success(c, http.StatusOK, cities, "Cities retrieved successfully")
}

// GetCity handles a city landing page: the city plus its derived
// testimonials, projects, and featured FAQs
func (h *ContentHandler) GetCity(c echo.Context) error {
	detail, err := h.catalogUC.GetCityBySlug(c.Param("slug"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, detail, "City retrieved successfully")
}
