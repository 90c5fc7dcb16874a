package usecase

import (
	"krystal/internal/domain/entity"
)

// ProductFilter narrows a product listing. Zero values mean "no constraint";
// populated members combine conjunctively. A nil Limit is unbounded, a zero
// Limit yields an empty result.
type ProductFilter struct {
	Category    string
	ProductType string
	Featured    *bool
	Limit       *int
}

// ProjectFilter narrows a project listing. City matches case-insensitively.
type ProjectFilter struct {
	City        string
	ProjectType string
	Featured    *bool
	Limit       *int
}

// PostFilter narrows a blog listing. Limit defaults to DefaultPostLimit and
// is clamped to MaxPostLimit.
type PostFilter struct {
	Category string
	Limit    *int
}

// FAQFilter narrows a FAQ listing.
type FAQFilter struct {
	Category string
	Featured *bool
}

// Blog listing bounds.
const (
	DefaultPostLimit = 10
	MaxPostLimit     = 50
)

// CatalogUsecase is the read-only query surface over the static catalog.
// All operations are pure lookups; the only possible failure is not-found on
// slug resolution.
type CatalogUsecase interface {
	// ListProducts returns products matching the filter sorted by display
	// order ascending, ties in insertion order.
	ListProducts(filter ProductFilter) []entity.Product

	// GetProductBySlug resolves a product by its unique slug.
	GetProductBySlug(slug string) (*entity.Product, error)

	// ListProjects returns projects matching the filter in insertion order.
	ListProjects(filter ProjectFilter) []entity.Project

	// GetProjectBySlug resolves a project by its unique slug.
	GetProjectBySlug(slug string) (*entity.Project, error)

	// ListPosts returns published posts matching the filter.
	ListPosts(filter PostFilter) []entity.BlogPost

	// GetPostBySlug resolves a post by its unique slug, published or not.
	GetPostBySlug(slug string) (*entity.BlogPost, error)

	// ListFAQs returns FAQs matching the filter sorted by display order.
	ListFAQs(filter FAQFilter) []entity.FAQ

	// ListTestimonials returns testimonials, optionally featured only.
	ListTestimonials(featured *bool) []entity.Testimonial

	// ListCities returns active cities in insertion order.
	ListCities() []entity.City

	// GetCityBySlug resolves a city by slug and computes its page joins.
	GetCityBySlug(slug string) (*entity.CityDetail, error)

	// ListColorFinishes returns color finishes, optionally by category.
	ListColorFinishes(category string) []entity.ColorFinish

	// ListGlassOptions returns all glass options.
	ListGlassOptions() []entity.GlassOption

	// ListHardware returns hardware items, optionally by category.
	ListHardware(category string) []entity.Hardware

	// ListDownloads returns downloads, optionally by category.
	ListDownloads(category string) []entity.Download

	// Settings returns the global settings singleton.
	Settings() entity.GlobalSettings
}
