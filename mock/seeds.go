package mock

import (
	"context"

	"github.com/fwojciec/siteqa"
)

var _ siteqa.SeedDiscoverer = (*SeedDiscoverer)(nil)

// SeedDiscoverer is a mock implementation of siteqa.SeedDiscoverer.
type SeedDiscoverer struct {
	DiscoverSeedsFn func(ctx context.Context, rootURL string) ([]string, error)
}

func (d *SeedDiscoverer) DiscoverSeeds(ctx context.Context, rootURL string) ([]string, error) {
	return d.DiscoverSeedsFn(ctx, rootURL)
}
