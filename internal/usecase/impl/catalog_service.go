package impl

import (
	"sort"
	"strings"

	"krystal/internal/domain/entity"
	domainerrors "krystal/internal/domain/errors"
	"krystal/internal/infra/catalog"
	"krystal/internal/usecase"

	"go.uber.org/fx"
)

// catalogService answers all read queries from the in-memory catalog store.
// Every method is a pure function of the store contents and its arguments.
type catalogService struct {
	store *catalog.Store
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	Store *catalog.Store
}

// NewCatalogService creates a new catalog query service instance
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		store: params.Store,
	}
}

// applyLimit truncates after filtering and ordering. nil means unbounded;
// zero yields an empty (non-nil) slice.
func applyLimit[T any](items []T, limit *int) []T {
	if limit == nil {
		return items
	}
	n := *limit
	if n < 0 {
		n = 0
	}
	if n > len(items) {
		n = len(items)
	}

	return items[:n]
}

// ListProducts returns products matching the filter sorted by display order
// ascending. The sort is stable so equal orders keep insertion order.
func (s *catalogService) ListProducts(filter usecase.ProductFilter) []entity.Product {
	products := make([]entity.Product, 0)
	for _, p := range s.store.Products() {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.ProductType != "" && p.ProductType != filter.ProductType {
			continue
		}
		if filter.Featured != nil && p.IsFeatured != *filter.Featured {
			continue
		}
		products = append(products, p)
	}

	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Order < products[j].Order
	})

	return applyLimit(products, filter.Limit)
}

// GetProductBySlug resolves a product by its unique slug.
func (s *catalogService) GetProductBySlug(slug string) (*entity.Product, error) {
	for _, p := range s.store.Products() {
		if p.Slug == slug {
			return &p, nil
		}
	}

	return nil, domainerrors.ErrProductNotFound
}

// ListProjects returns projects matching the filter in insertion order.
// City comparison is case-insensitive.
func (s *catalogService) ListProjects(filter usecase.ProjectFilter) []entity.Project {
	projects := make([]entity.Project, 0)
	for _, p := range s.store.Projects() {
		if filter.City != "" && !strings.EqualFold(p.City, filter.City) {
			continue
		}
		if filter.ProjectType != "" && p.ProjectType != filter.ProjectType {
			continue
		}
		if filter.Featured != nil && p.IsFeatured != *filter.Featured {
			continue
		}
		projects = append(projects, p)
	}

	return applyLimit(projects, filter.Limit)
}

// GetProjectBySlug resolves a project by its unique slug.
func (s *catalogService) GetProjectBySlug(slug string) (*entity.Project, error) {
	for _, p := range s.store.Projects() {
		if p.Slug == slug {
			return &p, nil
		}
	}

	return nil, domainerrors.ErrProjectNotFound
}

// ListPosts returns published posts in stored order. The limit defaults to
// DefaultPostLimit and is clamped to MaxPostLimit.
func (s *catalogService) ListPosts(filter usecase.PostFilter) []entity.BlogPost {
	limit := usecase.DefaultPostLimit
	if filter.Limit != nil {
		limit = *filter.Limit
	}
	if limit > usecase.MaxPostLimit {
		limit = usecase.MaxPostLimit
	}

	posts := make([]entity.BlogPost, 0)
	for _, b := range s.store.BlogPosts() {
		if !b.IsPublished {
			continue
		}
		if filter.Category != "" && b.Category != filter.Category {
			continue
		}
		posts = append(posts, b)
	}

	return applyLimit(posts, &limit)
}

// GetPostBySlug resolves a post by its unique slug. Slug resolution ignores
// the published flag; that gate applies to listings only.
func (s *catalogService) GetPostBySlug(slug string) (*entity.BlogPost, error) {
	for _, b := range s.store.BlogPosts() {
		if b.Slug == slug {
			return &b, nil
		}
	}

	return nil, domainerrors.ErrPostNotFound
}

// ListFAQs returns FAQs matching the filter sorted by display order.
func (s *catalogService) ListFAQs(filter usecase.FAQFilter) []entity.FAQ {
	faqs := make([]entity.FAQ, 0)
	for _, f := range s.store.FAQs() {
		if filter.Category != "" && f.Category != filter.Category {
			continue
		}
		if filter.Featured != nil && f.IsFeatured != *filter.Featured {
			continue
		}
		faqs = append(faqs, f)
	}

	sort.SliceStable(faqs, func(i, j int) bool {
		return faqs[i].Order < faqs[j].Order
	})

	return faqs
}

// ListTestimonials returns testimonials, optionally featured only.
func (s *catalogService) ListTestimonials(featured *bool) []entity.Testimonial {
	testimonials := make([]entity.Testimonial, 0)
	for _, t := range s.store.Testimonials() {
		if featured != nil && t.IsFeatured != *featured {
			continue
		}
		testimonials = append(testimonials, t)
	}

	return testimonials
}

// ListCities returns active cities in insertion order.
func (s *catalogService) ListCities() []entity.City {
	cities := make([]entity.City, 0)
	for _, c := range s.store.Cities() {
		if c.IsActive {
			cities = append(cities, c)
		}
	}

	return cities
}

// GetCityBySlug resolves a city and derives its page associations:
// testimonials whose location contains the city name, projects in the city,
// and the first five featured FAQs. The joins are computed per call; nothing
// is stored. Slug resolution ignores the active flag; ListCities applies it.
func (s *catalogService) GetCityBySlug(slug string) (*entity.CityDetail, error) {
	var city *entity.City
	for _, c := range s.store.Cities() {
		if c.Slug == slug {
			city = &c

			break
		}
	}
	if city == nil {
		return nil, domainerrors.ErrCityNotFound
	}

	detail := &entity.CityDetail{
		City:         *city,
		Testimonials: make([]entity.Testimonial, 0),
		Projects:     make([]entity.Project, 0),
		FAQs:         make([]entity.FAQ, 0),
	}

	cityName := strings.ToLower(city.Name)
	for _, t := range s.store.Testimonials() {
		if strings.Contains(strings.ToLower(t.Location), cityName) {
			detail.Testimonials = append(detail.Testimonials, t)
		}
	}

	for _, p := range s.store.Projects() {
		if p.City == city.Name {
			detail.Projects = append(detail.Projects, p)
		}
	}

	for _, f := range s.store.FAQs() {
		if !f.IsFeatured {
			continue
		}
		detail.FAQs = append(detail.FAQs, f)
		if len(detail.FAQs) == 5 {
			break
		}
	}

	return detail, nil
}

// ListColorFinishes returns color finishes, optionally by category.
func (s *catalogService) ListColorFinishes(category string) []entity.ColorFinish {
	finishes := make([]entity.ColorFinish, 0)
	for _, c := range s.store.ColorFinishes() {
		if category != "" && c.Category != category {
			continue
		}
		finishes = append(finishes, c)
	}

	return finishes
}

// ListGlassOptions returns all glass options.
func (s *catalogService) ListGlassOptions() []entity.GlassOption {
	return s.store.GlassOptions()
}

// ListHardware returns hardware items, optionally by category.
func (s *catalogService) ListHardware(category string) []entity.Hardware {
	hardware := make([]entity.Hardware, 0)
	for _, h := range s.store.Hardware() {
		if category != "" && h.Category != category {
			continue
		}
		hardware = append(hardware, h)
	}

	return hardware
}

// ListDownloads returns downloads, optionally by category.
func (s *catalogService) ListDownloads(category string) []entity.Download {
	downloads := make([]entity.Download, 0)
	for _, d := range s.store.Downloads() {
		if category != "" && d.Category != category {
			continue
		}
		downloads = append(downloads, d)
	}

	return downloads
}

// Settings returns the global settings singleton.
func (s *catalogService) Settings() entity.GlobalSettings {
	return s.store.Settings()
}
