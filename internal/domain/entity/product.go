package entity

import "time"

// ProductSpec is a single labelled technical specification.
type ProductSpec struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ProductVariant describes an alternative configuration of a product.
type ProductVariant struct {
	Name        string  `json:"name"`
	Image       *string `json:"image,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Product is a window or door system in the catalog. Products are authored
// statically and immutable after load.
type Product struct {
	ID               string           `json:"id"`
	Slug             string           `json:"slug"` // Unique, URL-safe.
	Name             string           `json:"name"`
	Category         string           `json:"category"`     // windows, doors, aluminium.
	ProductType      string           `json:"product_type"` // casement, sliding, tilt_turn, ...
	ShortDescription string           `json:"short_description"`
	Description      string           `json:"description"`
	HeroImage        string           `json:"hero_image"`
	Gallery          []string         `json:"gallery"`
	Features         []string         `json:"features"`
	Benefits         []string         `json:"benefits"`
	UseCases         []string         `json:"use_cases"`
	Specs            []ProductSpec    `json:"specs"`
	Variants         []ProductVariant `json:"variants"`
	RelatedProducts  []string         `json:"related_products"` // Soft references by product ID; dangling is tolerated.
	MetaTitle        *string          `json:"meta_title,omitempty"`
	MetaDescription  *string          `json:"meta_description,omitempty"`
	IsFeatured       bool             `json:"is_featured"`
	Order            int              `json:"order"` // Display sort key, ascending.
	CreatedAt        time.Time        `json:"created_at"`
}
