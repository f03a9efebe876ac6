package crawl

import (
	"sync"
	"time"

	"github.com/fwojciec/siteqa/bloom"
)

// Frontier sizing for URL deduplication.
const (
	// frontierExpectedURLs is the expected number of URLs for Bloom filter sizing.
	frontierExpectedURLs = 10000
	// frontierFalsePositiveRate is the acceptable false positive rate for deduplication.
	frontierFalsePositiveRate = 0.01
)

// Frontier is the shared state of one crawl: a deduplicated queue of URLs
// awaiting visit and the accepted result set, bounded by the page budget.
// It is safe for concurrent use by multiple workers.
//
// Deduplication happens at enqueue time: Push is an atomic test-and-set on
// the seen filter, so a URL enters the queue at most once and is never
// fetched twice. Accept is a synchronized bounded insert; once the budget is
// reached the frontier is done and blocked PopWait callers are released.
type Frontier struct {
	mu       sync.Mutex
	cond     *sync.Cond
	seen     *bloom.Filter
	queue    []string
	results  map[string]struct{}
	maxPages int
	done     bool
}

// NewFrontier creates an empty Frontier with the given page budget.
func NewFrontier(maxPages int) *Frontier {
	f := &Frontier{
		seen:     bloom.NewFilter(frontierExpectedURLs, frontierFalsePositiveRate),
		results:  make(map[string]struct{}),
		maxPages: maxPages,
	}
	f.cond = sync.NewCond(&f.mu)
	return f
}

// Push enqueues a URL if it has never been seen.
// Returns false for duplicates or when the frontier is done.
func (f *Frontier) Push(url string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.done {
		return false
	}
	if f.seen.TestAndAdd(url) {
		return false
	}
	f.queue = append(f.queue, url)
	f.cond.Signal()
	return true
}

// PopWait dequeues the next URL, blocking up to timeout while the queue is
// empty. The bool result is false when the queue stayed empty for the whole
// timeout or the frontier is done; an idle worker treats that as "nothing
// more to do" and exits.
func (f *Frontier) PopWait(timeout time.Duration) (string, bool) {
	deadline := time.Now().Add(timeout)

	f.mu.Lock()
	defer f.mu.Unlock()

	for len(f.queue) == 0 {
		if f.done {
			return "", false
		}
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return "", false
		}
		t := time.AfterFunc(remaining, f.cond.Broadcast)
		f.cond.Wait()
		t.Stop()
	}

	url := f.queue[0]
	f.queue = f.queue[1:]
	return url, true
}

// Accept records a successfully fetched URL in the result set.
// Returns false when the page budget has been reached; the caller discards
// its page and stops. Hitting the budget marks the frontier done and wakes
// all blocked PopWait callers so the crawl terminates promptly.
func (f *Frontier) Accept(url string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.done || len(f.results) >= f.maxPages {
		return false
	}
	f.results[url] = struct{}{}
	if len(f.results) >= f.maxPages {
		f.close()
	}
	return true
}

// Full reports whether the page budget has been reached.
func (f *Frontier) Full() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.done || len(f.results) >= f.maxPages
}

// Seen reports whether the URL has ever been enqueued.
func (f *Frontier) Seen(url string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen.Test(url)
}

// Len returns the number of URLs waiting in the queue.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}

// Results returns a copy of the accepted URL set, in no particular order.
func (f *Frontier) Results() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]string, 0, len(f.results))
	for url := range f.results {
		out = append(out, url)
	}
	return out
}

// Close marks the frontier done and releases all blocked PopWait callers.
// Used for external cancellation.
func (f *Frontier) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.close()
}

// close must be called with f.mu held.
func (f *Frontier) close() {
	f.done = true
	f.cond.Broadcast()
}
