package impl

import (
	"testing"

	"krystal/internal/domain/entity"
	domainerrors "krystal/internal/domain/errors"
	"krystal/internal/infra/catalog"
	"krystal/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogServiceForTest(t *testing.T) usecase.CatalogUsecase {
	t.Helper()

	store, err := catalog.New()
	require.NoError(t, err)

	return NewCatalogService(CatalogServiceParams{Store: store})
}

func intPtr(n int) *int {
	return &n
}

func boolPtr(b bool) *bool {
	return &b
}

func TestCatalogService_ListProducts_SortedByDisplayOrder(t *testing.T) {
	svc := newCatalogServiceForTest(t)

	products := svc.ListProducts(usecase.ProductFilter{})
	require.NotEmpty(t, products)

	for i := 1; i < len(products); i++ {
		assert.LessOrEqual(t, products[i-1].Order, products[i].Order,
			"products must be sorted by display order ascending")
	}
}

func TestCatalogService_ListProducts_FiltersAreConjunctive(t *testing.T) {
	svc := newCatalogServiceForTest(t)

	windows := svc.ListProducts(usecase.ProductFilter{Category: "windows"})
	require.NotEmpty(t, windows)
	for _, p := range windows {
		assert.Equal(t, "windows", p.Category)
	}

	featured := svc.ListProducts(usecase.ProductFilter{
		Category:    "doors",
		ProductType: "sliding",
		Featured:    boolPtr(true),
	})
	require.Len(t, featured, 1)
	assert.Equal(t, "sliding-doors", featured[0].Slug)

	none := svc.ListProducts(usecase.ProductFilter{
		Category:    "windows",
		ProductType: "bifold",
	})
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestCatalogService_ListProducts_LimitSemantics(t *testing.T) {
	svc := newCatalogServiceForTest(t)

	all := svc.ListProducts(usecase.ProductFilter{})
	require.Greater(t, len(all), 3)

	limited := svc.ListProducts(usecase.ProductFilter{Limit: intPtr(3)})
	assert.Len(t, limited, 3)
	assert.Equal(t, all[:3], limited)

	zero := svc.ListProducts(usecase.ProductFilter{Limit: intPtr(0)})
	assert.NotNil(t, zero)
	assert.Empty(t, zero)

	negative := svc.ListProducts(usecase.ProductFilter{Limit: intPtr(-1)})
	assert.Empty(t, negative)

	oversized := svc.ListProducts(usecase.ProductFilter{Limit: intPtr(1000)})
	assert.Equal(t, all, oversized)
}

func TestCatalogService_GetProductBySlug(t *testing.T) {
	svc := newCatalogServiceForTest(t)

	product, err := svc.GetProductBySlug("casement-windows")
	require.NoError(t, err)
	assert.Equal(t, "prod-casement-window", product.ID)
	assert.Equal(t, "windows", product.Category)

	product, err = svc.GetProductBySlug("no-such-product")
	require.Error(t, err)
	assert.Nil(t, product)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PRODUCT_NOT_FOUND", appErr.ErrorCode())
}

func TestCatalogService_ListProjects_CityMatchesCaseInsensitively(t *testing.T) {
	svc := newCatalogServiceForTest(t)

	upper := svc.ListProjects(usecase.ProjectFilter{City: "GURUGRAM"})
	lower := svc.ListProjects(usecase.ProjectFilter{City: "gurugram"})
	assert.Equal(t, upper, lower)
	require.NotEmpty(t, upper)

	commercial := svc.ListProjects(usecase.ProjectFilter{ProjectType: "commercial"})
	require.Len(t, commercial, 1)
	assert.Equal(t, "sohna-road-office-complex", commercial[0].Slug)
}

func TestCatalogService_GetProjectBySlug_NotFound(t *testing.T) {
	svc := newCatalogServiceForTest(t)

	project, err := svc.GetProjectBySlug("no-such-project")
	require.Error(t, err)
	assert.Nil(t, project)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PROJECT_NOT_FOUND", appErr.ErrorCode())
}

func TestCatalogService_ListPosts_PublishedOnlyWithClampedLimit(t *testing.T) {
	svc := newCatalogServiceForTest(t)

	posts := svc.ListPosts(usecase.PostFilter{})
	require.NotEmpty(t, posts)
	for _, p := range posts {
		assert.True(t, p.IsPublished)
	}

	one := svc.ListPosts(usecase.PostFilter{Limit: intPtr(1)})
	assert.Len(t, one, 1)

	// Requests above the ceiling are clamped, not rejected.
	clamped := svc.ListPosts(usecase.PostFilter{Limit: intPtr(10_000)})
	assert.LessOrEqual(t, len(clamped), usecase.MaxPostLimit)

	acoustic := svc.ListPosts(usecase.PostFilter{Category: "acoustic"})
	require.Len(t, acoustic, 1)
	assert.Equal(t, "guide-to-acoustic-comfort-upvc-windows", acoustic[0].Slug)
}

func TestCatalogService_GetPostBySlug(t *testing.T) {
	svc := newCatalogServiceForTest(t)

	post, err := svc.GetPostBySlug("upvc-window-maintenance-guide")
	require.NoError(t, err)
	assert.Equal(t, "maintenance", post.Category)
	assert.NotEmpty(t, post.Content)

	post, err = svc.GetPostBySlug("no-such-post")
	require.Error(t, err)
	assert.Nil(t, post)
}

func TestCatalogService_ListFAQs(t *testing.T) {
	svc := newCatalogServiceForTest(t)

	faqs := svc.ListFAQs(usecase.FAQFilter{})
	require.NotEmpty(t, faqs)
	for i := 1; i < len(faqs); i++ {
		assert.LessOrEqual(t, faqs[i-1].Order, faqs[i].Order)
	}

	featured := svc.ListFAQs(usecase.FAQFilter{Featured: boolPtr(true)})
	require.NotEmpty(t, featured)
	for _, f := range featured {
		assert.True(t, f.IsFeatured)
	}

	installation := svc.ListFAQs(usecase.FAQFilter{Category: "installation"})
	require.Len(t, installation, 1)
	assert.Equal(t, "faq-4", installation[0].ID)
}

func TestCatalogService_ListTestimonials(t *testing.T) {
	svc := newCatalogServiceForTest(t)

	all := svc.ListTestimonials(nil)
	featured := svc.ListTestimonials(boolPtr(true))
	assert.Less(t, len(featured), len(all))
	for _, tm := range featured {
		assert.True(t, tm.IsFeatured)
	}
}

func TestCatalogService_ListCities_ActiveOnly(t *testing.T) {
	svc := newCatalogServiceForTest(t)

	cities := svc.ListCities()
	require.NotEmpty(t, cities)
	for _, c := range cities {
		assert.True(t, c.IsActive)
	}
}

func TestCatalogService_GetCityBySlug_ComputesPageJoins(t *testing.T) {
	svc := newCatalogServiceForTest(t)

	detail, err := svc.GetCityBySlug("gurugram")
	require.NoError(t, err)
	assert.Equal(t, "Gurugram", detail.Name)

	// Testimonial locations like "DLF Phase 5, Gurugram" match by substring.
	require.NotEmpty(t, detail.Testimonials)
	for _, tm := range detail.Testimonials {
		assert.Contains(t, tm.Location, "Gurugram")
	}

	require.NotEmpty(t, detail.Projects)
	for _, p := range detail.Projects {
		assert.Equal(t, "Gurugram", p.City)
	}

	assert.LessOrEqual(t, len(detail.FAQs), 5)
	for _, f := range detail.FAQs {
		assert.True(t, f.IsFeatured)
	}
}

func TestCatalogService_GetCityBySlug_EmptyJoinsAreNotNil(t *testing.T) {
	svc := newCatalogServiceForTest(t)

	// No seeded project or testimonial references Ghaziabad.
	detail, err := svc.GetCityBySlug("ghaziabad")
	require.NoError(t, err)
	assert.NotNil(t, detail.Testimonials)
	assert.Empty(t, detail.Testimonials)
	assert.NotNil(t, detail.Projects)
	assert.Empty(t, detail.Projects)
}

func TestCatalogService_GetCityBySlug_NotFound(t *testing.T) {
	svc := newCatalogServiceForTest(t)

	detail, err := svc.GetCityBySlug("mumbai")
	require.Error(t, err)
	assert.Nil(t, detail)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CITY_NOT_FOUND", appErr.ErrorCode())
}

// newHiddenRecordService builds a service over a store containing an inactive
// city and an unpublished post alongside visible counterparts.
func newHiddenRecordService(t *testing.T) usecase.CatalogUsecase {
	t.Helper()

	store, err := catalog.NewStore(catalog.Definition{
		BlogPosts: []entity.BlogPost{
			{ID: "post-live", Slug: "choosing-window-profiles", Title: "Choosing Window Profiles", IsPublished: true},
			{ID: "post-draft", Slug: "draft-post", Title: "Draft Post", IsPublished: false},
		},
		Cities: []entity.City{
			{ID: "city-noida", Name: "Noida", Slug: "noida", State: "Uttar Pradesh", IsActive: true},
			{ID: "city-rewari", Name: "Rewari", Slug: "rewari", State: "Haryana", IsActive: false},
		},
		Settings: entity.GlobalSettings{ID: entity.SettingsID},
	})
	require.NoError(t, err)

	return NewCatalogService(CatalogServiceParams{Store: store})
}

func TestCatalogService_GetPostBySlug_IgnoresPublishedFlag(t *testing.T) {
	svc := newHiddenRecordService(t)

	// Direct slug lookups resolve drafts; only listings gate on the flag.
	post, err := svc.GetPostBySlug("draft-post")
	require.NoError(t, err)
	assert.Equal(t, "post-draft", post.ID)
	assert.False(t, post.IsPublished)

	listed := svc.ListPosts(usecase.PostFilter{})
	require.Len(t, listed, 1)
	assert.Equal(t, "post-live", listed[0].ID)
}

func TestCatalogService_GetCityBySlug_IgnoresActiveFlag(t *testing.T) {
	svc := newHiddenRecordService(t)

	detail, err := svc.GetCityBySlug("rewari")
	require.NoError(t, err)
	assert.Equal(t, "Rewari", detail.Name)
	assert.False(t, detail.IsActive)

	// The listing still hides inactive cities.
	cities := svc.ListCities()
	require.Len(t, cities, 1)
	assert.Equal(t, "city-noida", cities[0].ID)
}

func TestCatalogService_ListPosts_PreservesStoredOrder(t *testing.T) {
	svc := newCatalogServiceForTest(t)

	posts := svc.ListPosts(usecase.PostFilter{})
	require.Len(t, posts, 3)
	assert.Equal(t, "guide-to-acoustic-comfort-upvc-windows", posts[0].Slug)
	assert.Equal(t, "energy-efficient-windows-delhi-ncr", posts[1].Slug)
	assert.Equal(t, "upvc-window-maintenance-guide", posts[2].Slug)
}

func TestCatalogService_DesignStudioFilters(t *testing.T) {
	svc := newCatalogServiceForTest(t)

	solid := svc.ListColorFinishes("solid")
	require.Len(t, solid, 3)
	for _, c := range solid {
		assert.Equal(t, "solid", c.Category)
	}

	glass := svc.ListGlassOptions()
	assert.Len(t, glass, 5)

	locks := svc.ListHardware("locks")
	require.Len(t, locks, 1)
	assert.Equal(t, "hw-locks", locks[0].ID)

	downloads := svc.ListDownloads("brochure")
	require.Len(t, downloads, 1)
	assert.Equal(t, "pdf", downloads[0].FileType)
}

func TestCatalogService_Settings(t *testing.T) {
	svc := newCatalogServiceForTest(t)

	settings := svc.Settings()
	assert.Equal(t, "Krystal Magic World", settings.CompanyName)
	assert.Equal(t, "global", settings.ID)
	assert.NotEmpty(t, settings.Contact.Phone)
	assert.NotEmpty(t, settings.Contact.WhatsApp)
}
