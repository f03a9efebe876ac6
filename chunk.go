package siteqa

import "context"

// Chunk represents a section of an item optimized for embedding and retrieval.
type Chunk struct {
	ID        string    `json:"id"`
	ItemID    string    `json:"itemId"`
	SiteID    string    `json:"siteId"` // Denormalized for efficient filtering
	Content   string    `json:"content"`
	Embedding []float32 `json:"embedding,omitempty"`
	Position  int       `json:"position"`

	// Source metadata carried for citations.
	Title     string `json:"title,omitempty"`
	SourceURL string `json:"sourceUrl,omitempty"`
}

// Validate returns an error if the chunk contains invalid fields.
func (c *Chunk) Validate() error {
	if c.ItemID == "" {
		return Errorf(EINVALID, "chunk item ID required")
	}
	if c.SiteID == "" {
		return Errorf(EINVALID, "chunk site ID required")
	}
	if c.Content == "" {
		return Errorf(EINVALID, "chunk content required")
	}
	return nil
}

// ChunkService represents a service for managing chunks.
type ChunkService interface {
	// CreateChunks creates multiple chunks in a batch.
	CreateChunks(ctx context.Context, chunks []*Chunk) error

	// FindChunksBySite retrieves all chunks for a site.
	FindChunksBySite(ctx context.Context, siteID string) ([]*Chunk, error)

	// DeleteChunksBySite removes all chunks for a site.
	DeleteChunksBySite(ctx context.Context, siteID string) error
}

// SearchService provides semantic search over chunks.
type SearchService interface {
	// Search returns chunks ordered by relevance to the query.
	Search(ctx context.Context, siteID string, query string, limit int) ([]SearchResult, error)
}

// SearchResult represents a search match.
type SearchResult struct {
	Chunk *Chunk  `json:"chunk"`
	Score float32 `json:"score"`
}

// Embedder computes vector embeddings for text.
type Embedder interface {
	// EmbedTexts returns one embedding per input text, in input order.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}
