package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/siteqa"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ siteqa.ItemService = (*ItemService)(nil)

// ItemService implements siteqa.ItemService using SQLite.
type ItemService struct {
	db *DB
}

// NewItemService creates a new ItemService.
func NewItemService(db *DB) *ItemService {
	return &ItemService{db: db}
}

// CreateItem creates a new item. The ID and fetch time are assigned here
// when the caller left them empty.
func (s *ItemService) CreateItem(ctx context.Context, item *siteqa.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if item.FetchedAt.IsZero() {
		item.FetchedAt = time.Now().UTC()
	}
	if item.ContentType == "" {
		item.ContentType = siteqa.ContentTypeOther
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO items (id, site_id, title, content, content_type, source_url, content_hash, position, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, item.ID, item.SiteID, item.Title, item.Content, item.ContentType, item.SourceURL,
		item.ContentHash, item.Position, item.FetchedAt.Format(time.RFC3339))

	return err
}

// FindItems retrieves items matching the filter, ordered by position.
func (s *ItemService) FindItems(ctx context.Context, filter siteqa.ItemFilter) ([]*siteqa.Item, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, site_id, title, content, content_type, source_url, content_hash, position, fetched_at FROM items WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SiteID != nil {
		query.WriteString(" AND site_id = ?")
		args = append(args, *filter.SiteID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	query.WriteString(" ORDER BY position ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*siteqa.Item
	for rows.Next() {
		var item siteqa.Item
		var fetchedAt string

		if err := rows.Scan(&item.ID, &item.SiteID, &item.Title, &item.Content, &item.ContentType,
			&item.SourceURL, &item.ContentHash, &item.Position, &fetchedAt); err != nil {
			return nil, err
		}
		if item.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at"); err != nil {
			return nil, err
		}

		items = append(items, &item)
	}

	return items, rows.Err()
}

// DeleteItemsBySite removes all items for a site.
func (s *ItemService) DeleteItemsBySite(ctx context.Context, siteID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM items WHERE site_id = ?", siteID)
	return err
}
