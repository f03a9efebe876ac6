package sqlite

import (
	"context"
	"encoding/binary"
	"math"

	"github.com/fwojciec/siteqa"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ siteqa.ChunkService = (*ChunkService)(nil)

// ChunkService implements siteqa.ChunkService using SQLite. Embeddings are
// stored as little-endian float32 BLOBs.
type ChunkService struct {
	db *DB
}

// NewChunkService creates a new ChunkService.
func NewChunkService(db *DB) *ChunkService {
	return &ChunkService{db: db}
}

// CreateChunks creates multiple chunks in one transaction.
func (s *ChunkService) CreateChunks(ctx context.Context, chunks []*siteqa.Chunk) error {
	if len(chunks) == 0 {
		return nil
	}
	for _, chunk := range chunks {
		if err := chunk.Validate(); err != nil {
			return err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO chunks (id, item_id, site_id, content, embedding, position, title, source_url)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, chunk := range chunks {
		if chunk.ID == "" {
			chunk.ID = uuid.New().String()
		}
		if _, err := stmt.ExecContext(ctx, chunk.ID, chunk.ItemID, chunk.SiteID, chunk.Content,
			encodeEmbedding(chunk.Embedding), chunk.Position, chunk.Title, chunk.SourceURL); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindChunksBySite retrieves all chunks for a site ordered by item and
// position.
func (s *ChunkService) FindChunksBySite(ctx context.Context, siteID string) ([]*siteqa.Chunk, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, item_id, site_id, content, embedding, position, title, source_url
		FROM chunks
		WHERE site_id = ?
		ORDER BY item_id, position ASC
	`, siteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chunks []*siteqa.Chunk
	for rows.Next() {
		var chunk siteqa.Chunk
		var embedding []byte

		if err := rows.Scan(&chunk.ID, &chunk.ItemID, &chunk.SiteID, &chunk.Content,
			&embedding, &chunk.Position, &chunk.Title, &chunk.SourceURL); err != nil {
			return nil, err
		}
		chunk.Embedding = decodeEmbedding(embedding)

		chunks = append(chunks, &chunk)
	}

	return chunks, rows.Err()
}

// DeleteChunksBySite removes all chunks for a site.
func (s *ChunkService) DeleteChunksBySite(ctx context.Context, siteID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM chunks WHERE site_id = ?", siteID)
	return err
}

// encodeEmbedding serializes a vector as a little-endian float32 BLOB.
// A nil vector encodes as NULL.
func encodeEmbedding(vec []float32) []byte {
	if vec == nil {
		return nil
	}
	buf := make([]byte, 4*len(vec))
	for i, v := range vec {
		binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(v))
	}
	return buf
}

// decodeEmbedding deserializes a little-endian float32 BLOB.
func decodeEmbedding(buf []byte) []float32 {
	if len(buf) == 0 {
		return nil
	}
	vec := make([]float32, len(buf)/4)
	for i := range vec {
		vec[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[4*i:]))
	}
	return vec
}
