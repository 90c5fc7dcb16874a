package handler

import (
	"log/slog"
	"net/http"
	"strings"

	deliverycontext "krystal/internal/delivery/context"
	"krystal/internal/delivery/http/response"
	"krystal/internal/domain/service"
	"krystal/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SiteHandlerParams holds dependencies for SiteHandler, injected by Fx.
type SiteHandlerParams struct {
	fx.In

	LeadUC    usecase.LeadUsecase
	CatalogUC usecase.CatalogUsecase
	SitemapUC usecase.SitemapUsecase
	QRCode    service.QRCodeService
	Logger    *slog.Logger
}

// SiteHandler serves the site-wide endpoints: banner, health, settings,
// contact QR, and the sitemap.
type SiteHandler struct {
	leadUC    usecase.LeadUsecase
	catalogUC usecase.CatalogUsecase
	sitemapUC usecase.SitemapUsecase
	qrcode    service.QRCodeService
	logger    *slog.Logger
}

// NewSiteHandler is the constructor for SiteHandler
func NewSiteHandler(params SiteHandlerParams) *SiteHandler {
	return &SiteHandler{
		leadUC:    params.LeadUC,
		catalogUC: params.CatalogUC,
		sitemapUC: params.SitemapUC,
		qrcode:    params.QRCode,
		logger:    params.Logger,
	}
}

// Root is the service banner.
func (h *SiteHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Krystal Magic World API",
		"status":  "healthy",
	})
}

// Health reports service and database status. The response is always 200;
// a broken database shows up in the payload so probes keep the process
// alive while dashboards see the degradation.
func (h *SiteHandler) Health(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.leadUC.CheckHealth(ctx); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("health check: database unreachable",
			slog.String("error", err.Error()),
		)

		return c.JSON(http.StatusOK, map[string]string{
			"status":   "unhealthy",
			"database": "disconnected",
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status":   "healthy",
		"database": "connected",
	})
}

// GetSettings returns the global site settings
func (h *SiteHandler) GetSettings(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.catalogUC.Settings(), "Settings retrieved successfully")
}

// GetContactQR returns a PNG QR code encoding the WhatsApp deep link from
// the global settings. Printed on brochures and site footers.
func (h *SiteHandler) GetContactQR(c echo.Context) error {
	link := whatsappLink(h.catalogUC.Settings().Contact.WhatsApp)

	png, err := h.qrcode.GenerateContactQR(link)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("Content-Disposition", "inline; filename=contact-qr.png")

	return c.Blob(http.StatusOK, "image/png", png)
}

// GetSitemap returns the SEO sitemap as raw XML, no envelope.
func (h *SiteHandler) GetSitemap(c echo.Context) error {
	return c.Blob(http.StatusOK, "application/xml", h.sitemapUC.RenderXML())
}

// whatsappLink converts a display phone number to a wa.me deep link by
// keeping only its digits.
func whatsappLink(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	return "https://wa.me/" + digits.String()
}
