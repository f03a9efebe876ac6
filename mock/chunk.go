package mock

import (
	"context"

	"github.com/fwojciec/siteqa"
)

var _ siteqa.ChunkService = (*ChunkService)(nil)

// ChunkService is a mock implementation of siteqa.ChunkService.
type ChunkService struct {
	CreateChunksFn       func(ctx context.Context, chunks []*siteqa.Chunk) error
	FindChunksBySiteFn   func(ctx context.Context, siteID string) ([]*siteqa.Chunk, error)
	DeleteChunksBySiteFn func(ctx context.Context, siteID string) error
}

func (s *ChunkService) CreateChunks(ctx context.Context, chunks []*siteqa.Chunk) error {
	return s.CreateChunksFn(ctx, chunks)
}

func (s *ChunkService) FindChunksBySite(ctx context.Context, siteID string) ([]*siteqa.Chunk, error) {
	return s.FindChunksBySiteFn(ctx, siteID)
}

func (s *ChunkService) DeleteChunksBySite(ctx context.Context, siteID string) error {
	return s.DeleteChunksBySiteFn(ctx, siteID)
}

var _ siteqa.SearchService = (*SearchService)(nil)

// SearchService is a mock implementation of siteqa.SearchService.
type SearchService struct {
	SearchFn func(ctx context.Context, siteID string, query string, limit int) ([]siteqa.SearchResult, error)
}

func (s *SearchService) Search(ctx context.Context, siteID string, query string, limit int) ([]siteqa.SearchResult, error) {
	return s.SearchFn(ctx, siteID, query, limit)
}

var _ siteqa.Embedder = (*Embedder)(nil)

// Embedder is a mock implementation of siteqa.Embedder.
type Embedder struct {
	EmbedTextsFn func(ctx context.Context, texts []string) ([][]float32, error)
}

func (e *Embedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	return e.EmbedTextsFn(ctx, texts)
}
