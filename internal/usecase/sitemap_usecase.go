package usecase

// SitemapUsecase renders the XML sitemap for the public site. The output is
// fully determined by the catalog and the configured base URL, so repeated
// calls yield byte-identical documents.
type SitemapUsecase interface {
	// RenderXML returns the complete sitemap document.
	RenderXML() []byte
}
