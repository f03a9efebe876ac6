package siteqa

import (
	"context"
	"time"
)

// Site represents a website that has been scraped into the knowledgebase.
type Site struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	RootURL   string    `json:"rootUrl"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate returns an error if the site contains invalid fields.
func (s *Site) Validate() error {
	if s.Name == "" {
		return Errorf(EINVALID, "site name required")
	}
	if s.RootURL == "" {
		return Errorf(EINVALID, "site root URL required")
	}
	return nil
}

// SiteService represents a service for managing sites.
type SiteService interface {
	// CreateSite creates a new site.
	CreateSite(ctx context.Context, site *Site) error

	// FindSiteByName retrieves a site by name.
	// Returns ENOTFOUND if the site does not exist.
	FindSiteByName(ctx context.Context, name string) (*Site, error)

	// FindSites retrieves all sites ordered by name.
	FindSites(ctx context.Context) ([]*Site, error)

	// DeleteSite permanently removes a site and all associated items
	// and chunks. Returns ENOTFOUND if the site does not exist.
	DeleteSite(ctx context.Context, id string) error
}
