package mock

import (
	"context"

	"github.com/fwojciec/siteqa"
)

var _ siteqa.Asker = (*Asker)(nil)

// Asker is a mock implementation of siteqa.Asker.
type Asker struct {
	AskFn func(ctx context.Context, siteID string, question string) (string, error)
}

func (a *Asker) Ask(ctx context.Context, siteID string, question string) (string, error) {
	return a.AskFn(ctx, siteID, question)
}
