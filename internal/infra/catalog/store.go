// Package catalog holds the authoritative, frozen set of catalog entities.
// The store is built once at process start from the static definition and is
// safe for concurrent readers; no mutation path exists.
package catalog

import (
	"krystal/internal/domain/entity"
	"krystal/internal/errors"
)

// Definition aggregates the static content the store is built from. Tests
// construct small definitions directly; production uses Seed().
type Definition struct {
	Products      []entity.Product
	Projects      []entity.Project
	BlogPosts     []entity.BlogPost
	FAQs          []entity.FAQ
	Testimonials  []entity.Testimonial
	Cities        []entity.City
	ColorFinishes []entity.ColorFinish
	GlassOptions  []entity.GlassOption
	Hardware      []entity.Hardware
	Downloads     []entity.Download
	Settings      entity.GlobalSettings
}

// Store exposes the loaded catalog as read-only ordered sequences. Returned
// slices are the store's own backing arrays and must not be modified.
type Store struct {
	def Definition
}

// NewStore validates the definition and freezes it. Duplicate IDs or slugs
// and malformed identity fields are integrity violations: the process must
// fail to start rather than serve ambiguous data, so any error here is fatal
// to boot.
func NewStore(def Definition) (*Store, error) {
	if err := validate(def); err != nil {
		return nil, err
	}

	return &Store{def: def}, nil
}

func validate(def Definition) error {
	ids := make(map[string]struct{})
	slugs := make(map[string]struct{})

	checkID := func(collection, id string) error {
		if id == "" {
			return errors.Errorf("catalog %s: empty id", collection)
		}
		if _, dup := ids[id]; dup {
			return errors.Errorf("catalog %s: duplicate id %q", collection, id)
		}
		ids[id] = struct{}{}

		return nil
	}

	// Slugs are unique per browsable collection; lookups assume at most one
	// match so a duplicate must be rejected at load time, not at query time.
	checkSlug := func(collection, slug string) error {
		if slug == "" {
			return errors.Errorf("catalog %s: empty slug", collection)
		}
		if _, dup := slugs[collection+"/"+slug]; dup {
			return errors.Errorf("catalog %s: duplicate slug %q", collection, slug)
		}
		slugs[collection+"/"+slug] = struct{}{}

		return nil
	}

	for _, p := range def.Products {
		if err := checkID("products", p.ID); err != nil {
			return err
		}
		if err := checkSlug("products", p.Slug); err != nil {
			return err
		}
	}
	for _, p := range def.Projects {
		if err := checkID("projects", p.ID); err != nil {
			return err
		}
		if err := checkSlug("projects", p.Slug); err != nil {
			return err
		}
	}
	for _, b := range def.BlogPosts {
		if err := checkID("blog_posts", b.ID); err != nil {
			return err
		}
		if err := checkSlug("blog_posts", b.Slug); err != nil {
			return err
		}
	}
	for _, c := range def.Cities {
		if err := checkID("cities", c.ID); err != nil {
			return err
		}
		if err := checkSlug("cities", c.Slug); err != nil {
			return err
		}
	}
	for _, f := range def.FAQs {
		if err := checkID("faqs", f.ID); err != nil {
			return err
		}
	}
	for _, t := range def.Testimonials {
		if err := checkID("testimonials", t.ID); err != nil {
			return err
		}
	}
	for _, c := range def.ColorFinishes {
		if err := checkID("color_finishes", c.ID); err != nil {
			return err
		}
	}
	for _, g := range def.GlassOptions {
		if err := checkID("glass_options", g.ID); err != nil {
			return err
		}
	}
	for _, h := range def.Hardware {
		if err := checkID("hardware", h.ID); err != nil {
			return err
		}
	}
	for _, d := range def.Downloads {
		if err := checkID("downloads", d.ID); err != nil {
			return err
		}
	}

	if def.Settings.ID != entity.SettingsID {
		return errors.Errorf("catalog settings: id must be %q, got %q", entity.SettingsID, def.Settings.ID)
	}

	return nil
}

// Products returns all products in insertion order.
func (s *Store) Products() []entity.Product { return s.def.Products }

// Projects returns all projects in insertion order.
func (s *Store) Projects() []entity.Project { return s.def.Projects }

// BlogPosts returns all blog posts in insertion order.
func (s *Store) BlogPosts() []entity.BlogPost { return s.def.BlogPosts }

// FAQs returns all FAQs in insertion order.
func (s *Store) FAQs() []entity.FAQ { return s.def.FAQs }

// Testimonials returns all testimonials in insertion order.
func (s *Store) Testimonials() []entity.Testimonial { return s.def.Testimonials }

// Cities returns all cities in insertion order, active or not.
func (s *Store) Cities() []entity.City { return s.def.Cities }

// ColorFinishes returns all color finishes in insertion order.
func (s *Store) ColorFinishes() []entity.ColorFinish { return s.def.ColorFinishes }

// GlassOptions returns all glass options in insertion order.
func (s *Store) GlassOptions() []entity.GlassOption { return s.def.GlassOptions }

// Hardware returns all hardware items in insertion order.
func (s *Store) Hardware() []entity.Hardware { return s.def.Hardware }

// Downloads returns all downloads in insertion order.
func (s *Store) Downloads() []entity.Download { return s.def.Downloads }

// Settings returns the global settings singleton.
func (s *Store) Settings() entity.GlobalSettings { return s.def.Settings }

// New builds the production store from the seed definition. Wired through fx
// so a seed integrity violation aborts startup.
func New() (*Store, error) {
	return NewStore(Seed())
}
