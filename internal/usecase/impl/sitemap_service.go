package impl

import (
	"bytes"
	"fmt"

	"krystal/config"
	"krystal/internal/infra/catalog"
	"krystal/internal/usecase"

	"go.uber.org/fx"
)

// sitemapService renders the SEO sitemap from the catalog store. The
// enumeration order is fixed: static routes, products, projects, posts, then
// two landing pages per active city.
type sitemapService struct {
	store   *catalog.Store
	baseURL string
}

// SitemapServiceParams holds dependencies for SitemapService, injected by Fx.
type SitemapServiceParams struct {
	fx.In

	Store  *catalog.Store
	Config *config.Config
}

// NewSitemapService creates a new sitemap service instance
func NewSitemapService(params SitemapServiceParams) usecase.SitemapUsecase {
	return &sitemapService{
		store:   params.Store,
		baseURL: params.Config.Site.BaseURL,
	}
}

type sitemapURL struct {
	loc        string
	priority   string
	changefreq string
}

// RenderXML returns the complete sitemap document. Output depends only on
// the store and base URL, so repeated calls are byte-identical.
func (s *sitemapService) RenderXML() []byte {
	urls := []sitemapURL{
		{s.baseURL + "/", "1.0", "weekly"},
		{s.baseURL + "/about", "0.8", "monthly"},
		{s.baseURL + "/products/windows", "0.9", "weekly"},
		{s.baseURL + "/products/doors", "0.9", "weekly"},
		{s.baseURL + "/design-studio", "0.8", "monthly"},
		{s.baseURL + "/projects", "0.8", "weekly"},
		{s.baseURL + "/blog", "0.8", "weekly"},
		{s.baseURL + "/contact", "0.8", "monthly"},
	}

	for _, p := range s.store.Products() {
		urls = append(urls, sitemapURL{s.baseURL + "/products/" + p.Slug, "0.7", "monthly"})
	}
	for _, p := range s.store.Projects() {
		urls = append(urls, sitemapURL{s.baseURL + "/projects/" + p.Slug, "0.7", "monthly"})
	}
	for _, b := range s.store.BlogPosts() {
		urls = append(urls, sitemapURL{s.baseURL + "/blog/" + b.Slug, "0.6", "monthly"})
	}
	for _, c := range s.store.Cities() {
		if !c.IsActive {
			continue
		}
		urls = append(urls, sitemapURL{s.baseURL + "/upvc-windows-in-" + c.Slug, "0.7", "monthly"})
		urls = append(urls, sitemapURL{s.baseURL + "/upvc-doors-in-" + c.Slug, "0.7", "monthly"})
	}

	var buf bytes.Buffer
	buf.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	buf.WriteString("<urlset xmlns=\"http://www.sitemaps.org/schemas/sitemap/0.9\">\n")
	for _, u := range urls {
		fmt.Fprintf(&buf, "  <url>\n    <loc>%s</loc>\n    <priority>%s</priority>\n    <changefreq>%s</changefreq>\n  </url>\n", u.loc, u.priority, u.changefreq)
	}
	buf.WriteString("</urlset>")

	return buf.Bytes()
}
