// Package extract turns a crawled URL list into knowledgebase items.
// It coordinates fetching, main-content extraction, and markdown conversion
// across a bounded worker pool.
package extract

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/siteqa"
	"github.com/fwojciec/siteqa/goquery"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Pipeline converts a list of page URLs into ordered knowledgebase items.
type Pipeline struct {
	Fetcher      siteqa.Fetcher
	Extractor    siteqa.Extractor // primary content extractor
	Fallback     siteqa.Extractor // optional; tried when the primary yields nothing
	Converter    siteqa.Converter
	TokenCounter siteqa.TokenCounter // optional; enables token stats
	Concurrency  int
	RetryDelays  []time.Duration
}

// Result holds the outcome of an extraction run.
type Result struct {
	Items  []*siteqa.Item
	Failed int
	Bytes  int
	Tokens int
}

// ProgressEvent reports progress during an extraction run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting extraction progress.
type ProgressFunc func(event ProgressEvent)

// pageResult holds the outcome of processing a single URL.
type pageResult struct {
	position int
	url      string
	item     *siteqa.Item
	err      error
}

// Run processes the URLs concurrently and returns the items in input order.
// Per-page failures (unreachable URL, non-HTML response, empty extraction)
// skip the page and count as Failed; they never abort the run. Items are
// stamped with siteID and their position in the input list.
func (p *Pipeline) Run(ctx context.Context, siteID string, urls []string, progress ProgressFunc) (*Result, error) {
	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = 10
	}

	resultCh := make(chan pageResult, len(urls))

	var completed atomic.Int64
	total := len(urls)

	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, url := range urls {
			g.Go(func() error {
				result := p.processURL(gctx, siteID, i, url)
				resultCh <- result
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results keyed by position so output order matches input order.
	results := make([]pageResult, len(urls))
	var failedCount int
	for result := range resultCh {
		completed.Add(1)
		results[result.position] = result

		if result.err != nil {
			failedCount++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: int(completed.Load()),
					Total:     total,
					URL:       result.url,
					Error:     result.err,
				})
			}
		} else if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: int(completed.Load()),
				Total:     total,
				URL:       result.url,
			})
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := &Result{Failed: failedCount}
	for _, result := range results {
		if result.err != nil || result.item == nil {
			continue
		}
		result.item.Position = len(out.Items)
		out.Items = append(out.Items, result.item)
		out.Bytes += len(result.item.Content)
		if p.TokenCounter != nil {
			if tokens, err := p.TokenCounter.CountTokens(ctx, result.item.Content); err == nil {
				out.Tokens += tokens
			}
		}
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}

	return out, nil
}

// processURL fetches and processes a single URL into an item.
func (p *Pipeline) processURL(ctx context.Context, siteID string, position int, url string) pageResult {
	result := pageResult{
		position: position,
		url:      url,
	}

	delays := p.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	resp, err := FetchWithRetryDelays(ctx, url, p.Fetcher.Fetch, delays)
	if err != nil {
		result.err = err
		return result
	}
	if !resp.IsHTML() {
		result.err = siteqa.Errorf(siteqa.EINVALID, "not an HTML page: %s", url)
		return result
	}

	extracted, err := p.Extractor.Extract(resp.Body)
	if (err != nil || strings.TrimSpace(extracted.ContentHTML) == "") && p.Fallback != nil {
		extracted, err = p.Fallback.Extract(resp.Body)
	}
	if err != nil {
		result.err = err
		return result
	}
	if strings.TrimSpace(extracted.ContentHTML) == "" {
		result.err = siteqa.Errorf(siteqa.EINVALID, "no content extracted from %s", url)
		return result
	}

	markdown, err := p.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		result.err = err
		return result
	}
	markdown = strings.TrimSpace(markdown)
	if markdown == "" {
		result.err = siteqa.Errorf(siteqa.EINVALID, "empty markdown for %s", url)
		return result
	}

	title := extracted.Title
	if title == "" {
		title = goquery.ExtractTitle(resp.Body)
	}
	if title == "" {
		title = url
	}

	result.item = &siteqa.Item{
		ID:          uuid.New().String(),
		SiteID:      siteID,
		Title:       title,
		Content:     markdown,
		ContentType: ClassifyURL(url),
		SourceURL:   url,
		ContentHash: ComputeHash(markdown),
		FetchedAt:   time.Now().UTC(),
	}
	return result
}

// ComputeHash computes a hash of the content using xxhash.
func ComputeHash(content string) string {
	h := xxhash.Sum64String(content)
	return fmt.Sprintf("%x", h)
}
