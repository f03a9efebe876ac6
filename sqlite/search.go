package sqlite

import (
	"context"
	"math"
	"sort"

	"github.com/fwojciec/siteqa"
)

// Compile-time interface verification.
var _ siteqa.SearchService = (*SearchService)(nil)

// SearchService ranks a site's chunks by cosine similarity between the
// query embedding and the stored chunk embeddings. The scan is brute-force
// over the site's chunks; knowledgebases are small enough (a few hundred
// pages) that an index would not pay for itself.
type SearchService struct {
	chunks   *ChunkService
	embedder siteqa.Embedder
}

// NewSearchService creates a SearchService over the given chunk store.
func NewSearchService(chunks *ChunkService, embedder siteqa.Embedder) *SearchService {
	return &SearchService{chunks: chunks, embedder: embedder}
}

// Search embeds the query and returns the site's chunks ordered by cosine
// similarity, best first. Chunks without embeddings are skipped. Returns
// ENOTFOUND when the site has no indexed chunks.
func (s *SearchService) Search(ctx context.Context, siteID string, query string, limit int) ([]siteqa.SearchResult, error) {
	if limit <= 0 {
		return nil, siteqa.Errorf(siteqa.EINVALID, "search limit must be positive")
	}

	chunks, err := s.chunks.FindChunksBySite(ctx, siteID)
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 {
		return nil, siteqa.Errorf(siteqa.ENOTFOUND, "no indexed content for site")
	}

	embeddings, err := s.embedder.EmbedTexts(ctx, []string{query})
	if err != nil {
		return nil, err
	}
	queryVec := embeddings[0]

	var results []siteqa.SearchResult
	for _, chunk := range chunks {
		if len(chunk.Embedding) == 0 {
			continue
		}
		results = append(results, siteqa.SearchResult{
			Chunk: chunk,
			Score: cosineSimilarity(queryVec, chunk.Embedding),
		})
	}
	if len(results) == 0 {
		return nil, siteqa.Errorf(siteqa.ENOTFOUND, "no indexed content for site")
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// cosineSimilarity computes the cosine of the angle between two vectors.
// Mismatched dimensions or zero vectors score 0.
func cosineSimilarity(a, b []float32) float32 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return float32(dot / (math.Sqrt(normA) * math.Sqrt(normB)))
}
