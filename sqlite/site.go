package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/fwojciec/siteqa"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ siteqa.SiteService = (*SiteService)(nil)

// SiteService implements siteqa.SiteService using SQLite.
type SiteService struct {
	db *DB
}

// NewSiteService creates a new SiteService.
func NewSiteService(db *DB) *SiteService {
	return &SiteService{db: db}
}

// CreateSite creates a new site. Site names are unique; reusing a name
// returns ECONFLICT.
func (s *SiteService) CreateSite(ctx context.Context, site *siteqa.Site) error {
	if err := site.Validate(); err != nil {
		return err
	}

	if _, err := s.FindSiteByName(ctx, site.Name); err == nil {
		return siteqa.Errorf(siteqa.ECONFLICT, "site %q already exists", site.Name)
	} else if siteqa.ErrorCode(err) != siteqa.ENOTFOUND {
		return err
	}

	site.ID = uuid.New().String()
	now := time.Now().UTC()
	site.CreatedAt = now
	site.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sites (id, name, root_url, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`, site.ID, site.Name, site.RootURL,
		site.CreatedAt.Format(time.RFC3339), site.UpdatedAt.Format(time.RFC3339))

	return err
}

// FindSiteByName retrieves a site by name.
func (s *SiteService) FindSiteByName(ctx context.Context, name string) (*siteqa.Site, error) {
	var site siteqa.Site
	var createdAt, updatedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, root_url, created_at, updated_at
		FROM sites
		WHERE name = ?
	`, name).Scan(&site.ID, &site.Name, &site.RootURL, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, siteqa.Errorf(siteqa.ENOTFOUND, "site not found")
	}
	if err != nil {
		return nil, err
	}

	if site.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if site.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &site, nil
}

// FindSites retrieves all sites ordered by name.
func (s *SiteService) FindSites(ctx context.Context) ([]*siteqa.Site, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, root_url, created_at, updated_at
		FROM sites
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sites []*siteqa.Site
	for rows.Next() {
		var site siteqa.Site
		var createdAt, updatedAt string

		if err := rows.Scan(&site.ID, &site.Name, &site.RootURL, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		if site.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}
		if site.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
			return nil, err
		}

		sites = append(sites, &site)
	}

	return sites, rows.Err()
}

// DeleteSite permanently removes a site. Items and chunks cascade.
func (s *SiteService) DeleteSite(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM sites WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return siteqa.Errorf(siteqa.ENOTFOUND, "site not found")
	}

	return nil
}

// parseRFC3339 parses an RFC3339 formatted timestamp string.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}
