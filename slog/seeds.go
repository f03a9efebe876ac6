package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/siteqa"
)

// Ensure LoggingSeedDiscoverer implements siteqa.SeedDiscoverer.
var _ siteqa.SeedDiscoverer = (*LoggingSeedDiscoverer)(nil)

// LoggingSeedDiscoverer wraps a SeedDiscoverer with logging.
type LoggingSeedDiscoverer struct {
	next   siteqa.SeedDiscoverer
	logger *slog.Logger
}

// NewLoggingSeedDiscoverer creates a new LoggingSeedDiscoverer.
func NewLoggingSeedDiscoverer(next siteqa.SeedDiscoverer, logger *slog.Logger) *LoggingSeedDiscoverer {
	return &LoggingSeedDiscoverer{next: next, logger: logger}
}

// DiscoverSeeds delegates to the wrapped discoverer and logs the operation.
func (d *LoggingSeedDiscoverer) DiscoverSeeds(ctx context.Context, rootURL string) (urls []string, err error) {
	defer func(begin time.Time) {
		d.logger.Info("seed discovery",
			"url", rootURL,
			"count", len(urls),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return d.next.DiscoverSeeds(ctx, rootURL)
}
