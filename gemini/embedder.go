package gemini

import (
	"context"

	"github.com/fwojciec/siteqa"
	"google.golang.org/genai"
)

// embeddingModel is the Gemini embedding model used for chunks and queries.
const embeddingModel = "gemini-embedding-001"

// embedBatchSize caps how many texts go into one EmbedContent call.
const embedBatchSize = 100

// Ensure Embedder implements siteqa.Embedder at compile time.
var _ siteqa.Embedder = (*Embedder)(nil)

// Embedder computes vector embeddings using the Gemini embedding API.
type Embedder struct {
	client *genai.Client
}

// NewEmbedder creates a new Embedder.
func NewEmbedder(client *genai.Client) *Embedder {
	return &Embedder{client: client}
}

// EmbedTexts returns one embedding per input text, in input order. Inputs
// are batched to stay under the API's per-call limit.
func (e *Embedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	out := make([][]float32, 0, len(texts))
	for start := 0; start < len(texts); start += embedBatchSize {
		end := min(start+embedBatchSize, len(texts))

		contents := make([]*genai.Content, 0, end-start)
		for _, text := range texts[start:end] {
			contents = append(contents, genai.NewContentFromText(text, genai.RoleUser))
		}

		result, err := e.client.Models.EmbedContent(ctx, embeddingModel, contents, nil)
		if err != nil {
			return nil, err
		}
		if result == nil || len(result.Embeddings) != end-start {
			return nil, siteqa.Errorf(siteqa.EINTERNAL, "gemini returned %d embeddings for %d texts",
				embeddingCount(result), end-start)
		}
		for _, emb := range result.Embeddings {
			out = append(out, emb.Values)
		}
	}

	return out, nil
}

func embeddingCount(result *genai.EmbedContentResponse) int {
	if result == nil {
		return 0
	}
	return len(result.Embeddings)
}
