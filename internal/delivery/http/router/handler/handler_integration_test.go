package handler_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"krystal/config"
	"krystal/internal/delivery/http/middleware"
	"krystal/internal/delivery/http/router"
	"krystal/internal/delivery/http/router/handler"
	"krystal/internal/delivery/http/validator"
	domainerrors "krystal/internal/domain/errors"
	"krystal/internal/infra/catalog"
	"krystal/internal/infra/qrcode"
	mockRepo "krystal/internal/mocks/repository"
	mockSvc "krystal/internal/mocks/service"
	"krystal/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newTestServer wires the full route surface against the real catalog store
// and a lead stack backed by mocks.
func newTestServer(t *testing.T) (*echo.Echo, *mockRepo.MockLeadRepository, *mockSvc.MockEventPublisher) {
	t.Helper()

	store, err := catalog.New()
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Site.BaseURL = "https://krystalmagicworld.com"

	leadRepo := mockRepo.NewMockLeadRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.Default()

	leadUC := impl.NewLeadService(impl.LeadServiceParams{
		LeadRepo:  leadRepo,
		Publisher: publisher,
		Logger:    logger,
	})
	catalogUC := impl.NewCatalogService(impl.CatalogServiceParams{Store: store})
	sitemapUC := impl.NewSitemapService(impl.SitemapServiceParams{Store: store, Config: cfg})

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	r := router.NewRouter(router.RouterParams{
		LeadHandler: handler.NewLeadHandler(handler.LeadHandlerParams{
			LeadUC: leadUC,
			Logger: logger,
		}),
		CatalogHandler: handler.NewCatalogHandler(handler.CatalogHandlerParams{CatalogUC: catalogUC}),
		ContentHandler: handler.NewContentHandler(handler.ContentHandlerParams{CatalogUC: catalogUC}),
		StudioHandler:  handler.NewStudioHandler(handler.StudioHandlerParams{CatalogUC: catalogUC}),
		SiteHandler: handler.NewSiteHandler(handler.SiteHandlerParams{
			LeadUC:    leadUC,
			CatalogUC: catalogUC,
			SitemapUC: sitemapUC,
			QRCode:    qrcode.NewQRCodeService(256, "M"),
			Logger:    logger,
		}),
	})
	r.RegisterRoutes(e)

	return e, leadRepo, publisher
}

func doRequest(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) domainerrors.Response {
	t.Helper()

	var envelope domainerrors.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	return envelope
}

func TestAPI_RootBanner(t *testing.T) {
	e, _, _ := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/api/", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Krystal Magic World API", body["message"])
	assert.Equal(t, "healthy", body["status"])
}

func TestAPI_Health_AlwaysOK(t *testing.T) {
	e, leadRepo, _ := newTestServer(t)

	leadRepo.EXPECT().Ping(mock.Anything).Return(nil).Once()
	rec := doRequest(e, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "connected", body["database"])
}

func TestAPI_Health_DatabaseDown_Still200(t *testing.T) {
	e, leadRepo, _ := newTestServer(t)

	leadRepo.EXPECT().Ping(mock.Anything).Return(assert.AnError).Once()
	rec := doRequest(e, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "unhealthy", body["status"])
	assert.Equal(t, "disconnected", body["database"])
}

func TestAPI_ListProducts_Envelope(t *testing.T) {
	e, _, _ := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/api/products?category=doors", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Success)
	assert.Equal(t, http.StatusOK, envelope.Code)

	items, ok := envelope.Data.([]any)
	require.True(t, ok)
	assert.Len(t, items, 4)
}

func TestAPI_ListProducts_MalformedQuery(t *testing.T) {
	e, _, _ := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/api/products?featured=maybe", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "INVALID_QUERY", envelope.Error.Code)
}

func TestAPI_GetProduct_NotFound(t *testing.T) {
	e, _, _ := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/api/products/no-such-product", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "PRODUCT_NOT_FOUND", envelope.Error.Code)
}

func TestAPI_GetCity_JoinsIncluded(t *testing.T) {
	e, _, _ := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/api/cities/gurugram", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	detail, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Gurugram", detail["name"])
	assert.NotEmpty(t, detail["testimonials"])
	assert.NotEmpty(t, detail["projects"])
}

func TestAPI_Sitemap_RawXML(t *testing.T) {
	e, _, _ := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/api/sitemap.xml", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/xml", rec.Header().Get(echo.HeaderContentType))
	assert.True(t, strings.HasPrefix(rec.Body.String(), `<?xml version="1.0" encoding="UTF-8"?>`))
}

func TestAPI_ContactQR_ServesPNG(t *testing.T) {
	e, _, _ := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/api/settings/contact-qr", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "contact-qr.png")

	// PNG magic bytes
	body := rec.Body.Bytes()
	require.Greater(t, len(body), 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, body[:4])
}

func TestAPI_CreateLead_ValidationError(t *testing.T) {
	e, _, _ := newTestServer(t)

	rec := doRequest(e, http.MethodPost, "/api/leads", `{"phone":"9811000000"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "VALIDATION_ERROR", envelope.Error.Code)
}

func TestAPI_CreateLead_Success(t *testing.T) {
	e, leadRepo, publisher := newTestServer(t)

	leadRepo.EXPECT().CreateLead(mock.Anything, mock.AnythingOfType("*entity.Lead")).Return(nil).Once()
	publisher.EXPECT().PublishLeadEvent(mock.Anything, mock.AnythingOfType("*service.LeadEvent")).Return(nil).Once()

	rec := doRequest(e, http.MethodPost, "/api/leads", `{"name":"Ravi Sharma","phone":"9811000000","city":"Gurugram"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Success)

	lead, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Ravi Sharma", lead["name"])
	assert.Equal(t, "new", lead["status"])
	assert.Equal(t, "quote", lead["lead_type"])
	assert.Equal(t, "website", lead["source"])
}

func TestAPI_GetLead_UnparseableIDBehavesAsMissing(t *testing.T) {
	e, _, _ := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/api/leads/not-a-uuid", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	envelope := decodeEnvelope(t, rec)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "LEAD_NOT_FOUND", envelope.Error.Code)
}

func TestAPI_ListLeads_MalformedLimit(t *testing.T) {
	e, _, _ := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/api/leads?limit=abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	envelope := decodeEnvelope(t, rec)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "INVALID_QUERY", envelope.Error.Code)
}

func TestAPI_Settings_Envelope(t *testing.T) {
	e, _, _ := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/api/settings", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	settings, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Krystal Magic World", settings["company_name"])
}
