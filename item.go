package siteqa

import (
	"context"
	"time"
)

// Content type values for Item.ContentType.
const (
	ContentTypeBlog  = "blog"
	ContentTypeOther = "other"
)

// Item represents one page of a site converted to markdown.
// It is the unit of the knowledgebase: downstream indexing splits items
// into chunks for embedding and retrieval.
type Item struct {
	ID          string    `json:"id"`
	SiteID      string    `json:"siteId"`
	Title       string    `json:"title"`
	Content     string    `json:"content"` // Markdown
	ContentType string    `json:"content_type"`
	SourceURL   string    `json:"source_url"`
	ContentHash string    `json:"contentHash"`
	Position    int       `json:"position"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the item contains invalid fields.
func (it *Item) Validate() error {
	if it.SiteID == "" {
		return Errorf(EINVALID, "item site ID required")
	}
	if it.SourceURL == "" {
		return Errorf(EINVALID, "item source URL required")
	}
	if it.Content == "" {
		return Errorf(EINVALID, "item content required")
	}
	return nil
}

// ItemService represents a service for managing knowledgebase items.
type ItemService interface {
	// CreateItem creates a new item.
	CreateItem(ctx context.Context, item *Item) error

	// FindItems retrieves items matching the filter, ordered by position.
	FindItems(ctx context.Context, filter ItemFilter) ([]*Item, error)

	// DeleteItemsBySite removes all items for a site.
	DeleteItemsBySite(ctx context.Context, siteID string) error
}

// ItemFilter represents a filter for FindItems.
type ItemFilter struct {
	ID        *string `json:"id"`
	SiteID    *string `json:"siteId"`
	SourceURL *string `json:"sourceUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
