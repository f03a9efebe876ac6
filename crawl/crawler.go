// Package crawl implements the concurrent frontier crawler that discovers
// the set of in-scope content URLs on a target site under a page budget.
// Seeds from sitemap/feed discovery are enqueued before traversal; a pool
// of workers then drains the frontier breadth-first until the budget is
// reached or the frontier stays empty for the idle timeout.
package crawl

import (
	"context"
	"log/slog"
	"regexp"
	"sort"
	"time"

	"github.com/fwojciec/siteqa"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Crawl defaults.
const (
	DefaultMaxPages    = 200
	DefaultConcurrency = 16
	DefaultIdleTimeout = 1 * time.Second
)

// Crawler discovers the content URLs of a site via bounded-concurrency
// breadth-first traversal over a shared frontier.
type Crawler struct {
	Fetcher siteqa.Fetcher
	Links   siteqa.LinkExtractor
	Seeds   siteqa.SeedDiscoverer // optional; nil skips seed discovery

	// MaxPages caps the result set size. Defaults to DefaultMaxPages.
	MaxPages int

	// Concurrency is both the worker count and the in-flight fetch permit
	// count. Defaults to DefaultConcurrency.
	Concurrency int

	// IdleTimeout is how long a worker waits on an empty frontier before
	// deciding its contribution to the crawl is done. Defaults to
	// DefaultIdleTimeout.
	IdleTimeout time.Duration

	// Exclude patterns are matched as regular expressions against candidate
	// URLs before fetch; matching URLs are discarded.
	Exclude []string

	// Include patterns are accepted and validated but have no filtering
	// effect on traversal. Reserved configuration kept for interface
	// compatibility with existing callers.
	Include []string

	// Logger receives debug events. Defaults to a discard logger.
	Logger *slog.Logger
}

// Crawl discovers in-scope content URLs starting from rootURL. It returns
// the union of traversal results and seed URLs, capped at MaxPages and
// sorted lexicographically for reproducible downstream processing.
//
// No single page's failure aborts the crawl. If nothing at all is
// discovered (unreachable root, no seeds), the normalized root URL is
// returned as the sole result so downstream stages always have a candidate.
func (c *Crawler) Crawl(ctx context.Context, rootURL string) ([]string, error) {
	cctx, err := NewContext(rootURL)
	if err != nil {
		return nil, err
	}

	exclude, err := compilePatterns(c.Exclude)
	if err != nil {
		return nil, err
	}
	if _, err := compilePatterns(c.Include); err != nil {
		return nil, err
	}

	maxPages := c.MaxPages
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}
	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	idle := c.IdleTimeout
	if idle <= 0 {
		idle = DefaultIdleTimeout
	}
	logger := c.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	frontier := NewFrontier(maxPages)
	frontier.Push(cctx.Root)

	// Seed the frontier before workers start so sitemap/feed URLs compete
	// with in-page links from the beginning of the traversal.
	var seeds []string
	if c.Seeds != nil {
		discovered, err := c.Seeds.DiscoverSeeds(ctx, cctx.Root)
		if err != nil {
			logger.Debug("seed discovery failed", "url", cctx.Root, "err", err)
		}
		for _, s := range discovered {
			seeds = append(seeds, NormalizeURL(s))
		}
		for i, s := range seeds {
			if i >= seedLimit(maxPages) {
				break
			}
			frontier.Push(s)
		}
		logger.Debug("frontier seeded", "url", cctx.Root, "seeds", len(seeds))
	}

	// Fetch permits are a bounded semaphore independent of the dedup lock:
	// page budget enforcement and network concurrency are orthogonal.
	permits := semaphore.NewWeighted(int64(concurrency))

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < concurrency; i++ {
		g.Go(func() error {
			c.worker(gctx, cctx, frontier, exclude, permits, idle, logger)
			return nil
		})
	}
	_ = g.Wait()
	frontier.Close()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	results := frontier.Results()

	// Union in seed URLs the traversal did not reach, still honoring the
	// scope policy, exclusion patterns, and the page budget.
	set := make(map[string]struct{}, len(results))
	for _, u := range results {
		set[u] = struct{}{}
	}
	for _, s := range seeds {
		if len(set) >= maxPages {
			break
		}
		if !InScope(s, cctx) || matchesAny(exclude, s) {
			continue
		}
		set[s] = struct{}{}
	}

	if len(set) == 0 {
		return []string{cctx.Root}, nil
	}

	out := make([]string, 0, len(set))
	for u := range set {
		out = append(out, u)
	}
	sort.Strings(out)
	return out, nil
}

// worker drains the frontier until the page budget is reached, the frontier
// stays empty for the idle timeout, or the context is canceled.
func (c *Crawler) worker(
	ctx context.Context,
	cctx *Context,
	frontier *Frontier,
	exclude []*regexp.Regexp,
	permits *semaphore.Weighted,
	idle time.Duration,
	logger *slog.Logger,
) {
	for {
		if ctx.Err() != nil || frontier.Full() {
			return
		}

		current, ok := frontier.PopWait(idle)
		if !ok {
			return
		}

		if !InScope(current, cctx) {
			continue
		}
		// Exclusion is applied before fetch to save bandwidth.
		if matchesAny(exclude, current) {
			continue
		}

		if err := permits.Acquire(ctx, 1); err != nil {
			return
		}
		resp, err := c.Fetcher.Fetch(ctx, current)
		permits.Release(1)
		if err != nil {
			// Unreachable: network failure, timeout, or status >= 400.
			// Discarded, not retried, not surfaced as a crawl error.
			logger.Debug("fetch failed", "url", current, "err", err)
			continue
		}
		if !resp.IsHTML() {
			continue
		}

		if !frontier.Accept(current) {
			// Budget reached while this fetch was in flight; the page is
			// discarded and this worker is done.
			return
		}

		links, err := c.Links.ExtractLinks(resp.Body, current)
		if err != nil {
			logger.Debug("link extraction failed", "url", current, "err", err)
			continue
		}
		enqueued := 0
		for _, link := range links {
			link = NormalizeURL(link)
			if InScope(link, cctx) && frontier.Push(link) {
				enqueued++
			}
		}
		logger.Debug("page expanded", "url", current, "links", len(links), "enqueued", enqueued)
	}
}

// seedLimit caps how many seed URLs are enqueued up front so a huge sitemap
// cannot crowd out in-page discovery entirely.
func seedLimit(maxPages int) int {
	if half := maxPages / 2; half > 100 {
		return half
	}
	return 100
}

// compilePatterns compiles pattern strings into regular expressions.
func compilePatterns(patterns []string) ([]*regexp.Regexp, error) {
	var compiled []*regexp.Regexp
	for _, p := range patterns {
		if p == "" {
			continue
		}
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, siteqa.Errorf(siteqa.EINVALID, "invalid filter pattern %q: %v", p, err)
		}
		compiled = append(compiled, re)
	}
	return compiled, nil
}

// matchesAny reports whether the URL matches any of the patterns.
func matchesAny(patterns []*regexp.Regexp, url string) bool {
	for _, re := range patterns {
		if re.MatchString(url) {
			return true
		}
	}
	return false
}
