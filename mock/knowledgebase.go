package mock

import (
	"context"

	"github.com/fwojciec/siteqa"
)

var _ siteqa.KnowledgebaseWriter = (*KnowledgebaseWriter)(nil)

// KnowledgebaseWriter is a mock implementation of siteqa.KnowledgebaseWriter.
type KnowledgebaseWriter struct {
	WriteKnowledgebaseFn func(ctx context.Context, kb *siteqa.Knowledgebase) error
}

func (w *KnowledgebaseWriter) WriteKnowledgebase(ctx context.Context, kb *siteqa.Knowledgebase) error {
	return w.WriteKnowledgebaseFn(ctx, kb)
}
