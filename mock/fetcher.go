package mock

import (
	"context"

	"github.com/fwojciec/siteqa"
)

var _ siteqa.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of siteqa.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*siteqa.Response, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*siteqa.Response, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
