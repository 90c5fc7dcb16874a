package impl

import (
	"strings"
	"testing"

	"krystal/config"
	"krystal/internal/infra/catalog"
	"krystal/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSitemapServiceForTest(t *testing.T) usecase.SitemapUsecase {
	t.Helper()

	store, err := catalog.New()
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Site.BaseURL = "https://krystalmagicworld.com"

	return NewSitemapService(SitemapServiceParams{Store: store, Config: cfg})
}

func TestSitemapService_RenderXML_IsDeterministic(t *testing.T) {
	svc := newSitemapServiceForTest(t)

	first := svc.RenderXML()
	second := svc.RenderXML()
	assert.Equal(t, first, second, "repeated renders must be byte-identical")
}

func TestSitemapService_RenderXML_EnumeratesAllRoutes(t *testing.T) {
	svc := newSitemapServiceForTest(t)

	doc := string(svc.RenderXML())

	assert.True(t, strings.HasPrefix(doc, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, doc, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	assert.True(t, strings.HasSuffix(doc, "</urlset>"))

	// 8 static routes, 10 products, 3 projects, 3 posts, and two landing
	// pages for each of the 5 active cities.
	assert.Equal(t, 8+10+3+3+10, strings.Count(doc, "<url>"))
	assert.Equal(t, strings.Count(doc, "<url>"), strings.Count(doc, "</url>"))

	assert.Contains(t, doc, "<loc>https://krystalmagicworld.com/</loc>")
	assert.Contains(t, doc, "<loc>https://krystalmagicworld.com/products/casement-windows</loc>")
	assert.Contains(t, doc, "<loc>https://krystalmagicworld.com/projects/dlf-phase-5-luxury-villa</loc>")
	assert.Contains(t, doc, "<loc>https://krystalmagicworld.com/blog/upvc-window-maintenance-guide</loc>")
	assert.Contains(t, doc, "<loc>https://krystalmagicworld.com/upvc-windows-in-gurugram</loc>")
	assert.Contains(t, doc, "<loc>https://krystalmagicworld.com/upvc-doors-in-ghaziabad</loc>")
}

func TestSitemapService_RenderXML_StaticRoutePriorities(t *testing.T) {
	svc := newSitemapServiceForTest(t)

	doc := string(svc.RenderXML())

	assert.Contains(t, doc, "<loc>https://krystalmagicworld.com/</loc>\n    <priority>1.0</priority>\n    <changefreq>weekly</changefreq>")
	assert.Contains(t, doc, "<loc>https://krystalmagicworld.com/contact</loc>\n    <priority>0.8</priority>\n    <changefreq>monthly</changefreq>")
}
