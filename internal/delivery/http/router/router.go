// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"krystal/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	LeadHandler    *handler.LeadHandler
	CatalogHandler *handler.CatalogHandler
	ContentHandler *handler.ContentHandler
	StudioHandler  *handler.StudioHandler
	SiteHandler    *handler.SiteHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	leadHandler    *handler.LeadHandler
	catalogHandler *handler.CatalogHandler
	contentHandler *handler.ContentHandler
	studioHandler  *handler.StudioHandler
	siteHandler    *handler.SiteHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		leadHandler:    params.LeadHandler,
		catalogHandler: params.CatalogHandler,
		contentHandler: params.ContentHandler,
		studioHandler:  params.StudioHandler,
		siteHandler:    params.SiteHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application. The public
// surface mirrors the marketing frontend's expectations: everything under
// /api, with a bare /health for infrastructure probes.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Probe endpoint outside the API prefix
	e.GET("/health", r.siteHandler.Health)

	api := e.Group("/api")
	{
		api.GET("/", r.siteHandler.Root)
		api.GET("/health", r.siteHandler.Health)
		api.GET("/sitemap.xml", r.siteHandler.GetSitemap)
	}

	// Lead capture and sales pipeline
	leadsGroup := api.Group("/leads")
	{
		leadsGroup.POST("", r.leadHandler.CreateLead)
		leadsGroup.GET("", r.leadHandler.ListLeads)
		leadsGroup.GET("/:id", r.leadHandler.GetLead)
		leadsGroup.PATCH("/:id", r.leadHandler.UpdateLead)
	}

	// Product catalog
	productsGroup := api.Group("/products")
	{
		productsGroup.GET("", r.catalogHandler.ListProducts)
		productsGroup.GET("/:slug", r.catalogHandler.GetProduct)
	}

	// Project showcase
	projectsGroup := api.Group("/projects")
	{
		projectsGroup.GET("", r.catalogHandler.ListProjects)
		projectsGroup.GET("/:slug", r.catalogHandler.GetProject)
	}

	// Editorial content
	blogGroup := api.Group("/blog")
	{
		blogGroup.GET("", r.contentHandler.ListPosts)
		blogGroup.GET("/:slug", r.contentHandler.GetPost)
	}
	api.GET("/faqs", r.contentHandler.ListFAQs)
	api.GET("/testimonials", r.contentHandler.ListTestimonials)

	// Service areas
	citiesGroup := api.Group("/cities")
	{
		citiesGroup.GET("", r.contentHandler.ListCities)
		citiesGroup.GET("/:slug", r.contentHandler.GetCity)
	}

	// Design studio configurator
	studioGroup := api.Group("/design-studio")
	{
		studioGroup.GET("/colors", r.studioHandler.ListColorFinishes)
		studioGroup.GET("/glass", r.studioHandler.ListGlassOptions)
		studioGroup.GET("/hardware", r.studioHandler.ListHardware)
	}
	api.GET("/downloads", r.studioHandler.ListDownloads)

	// Site-wide settings
	settingsGroup := api.Group("/settings")
	{
		settingsGroup.GET("", r.siteHandler.GetSettings)
		settingsGroup.GET("/contact-qr", r.siteHandler.GetContactQR)
	}
}
