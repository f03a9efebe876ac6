package extract_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fwojciec/siteqa"
	"github.com/fwojciec/siteqa/extract"
	"github.com/fwojciec/siteqa/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// passthroughPipeline builds a pipeline whose extractor and converter pass
// page bodies through unchanged, against an in-memory set of pages.
func passthroughPipeline(pages map[string]string) *extract.Pipeline {
	return &extract.Pipeline{
		Fetcher: &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (*siteqa.Response, error) {
				body, ok := pages[url]
				if !ok {
					return nil, siteqa.Errorf(siteqa.EUNAVAILABLE, "HTTP 404 for %s", url)
				}
				return &siteqa.Response{StatusCode: 200, ContentType: "text/html", Body: body}, nil
			},
		},
		Extractor: &mock.Extractor{
			ExtractFn: func(html string) (*siteqa.ExtractResult, error) {
				return &siteqa.ExtractResult{Title: "T:" + html, ContentHTML: html}, nil
			},
		},
		Converter: &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				return "md:" + html, nil
			},
		},
		Concurrency: 4,
		RetryDelays: []time.Duration{},
	}
}

func TestPipeline_Run(t *testing.T) {
	t.Parallel()

	t.Run("produces items in input order", func(t *testing.T) {
		t.Parallel()

		pages := map[string]string{
			"https://a.com/1": "one",
			"https://a.com/2": "two",
			"https://a.com/3": "three",
		}
		p := passthroughPipeline(pages)

		result, err := p.Run(context.Background(), "site-1", []string{
			"https://a.com/1", "https://a.com/2", "https://a.com/3",
		}, nil)

		require.NoError(t, err)
		require.Len(t, result.Items, 3)
		for i, want := range []string{"md:one", "md:two", "md:three"} {
			assert.Equal(t, want, result.Items[i].Content)
			assert.Equal(t, i, result.Items[i].Position)
			assert.Equal(t, "site-1", result.Items[i].SiteID)
			assert.NotEmpty(t, result.Items[i].ID)
			assert.NotEmpty(t, result.Items[i].ContentHash)
			assert.False(t, result.Items[i].FetchedAt.IsZero())
		}
	})

	t.Run("skips failed pages and compacts positions", func(t *testing.T) {
		t.Parallel()

		pages := map[string]string{
			"https://a.com/1": "one",
			"https://a.com/3": "three",
		}
		p := passthroughPipeline(pages)

		result, err := p.Run(context.Background(), "site-1", []string{
			"https://a.com/1", "https://a.com/missing", "https://a.com/3",
		}, nil)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Failed)
		require.Len(t, result.Items, 2)
		assert.Equal(t, "md:one", result.Items[0].Content)
		assert.Equal(t, 0, result.Items[0].Position)
		assert.Equal(t, "md:three", result.Items[1].Content)
		assert.Equal(t, 1, result.Items[1].Position)
	})

	t.Run("skips non-HTML pages", func(t *testing.T) {
		t.Parallel()

		p := passthroughPipeline(nil)
		p.Fetcher = &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (*siteqa.Response, error) {
				return &siteqa.Response{StatusCode: 200, ContentType: "application/pdf", Body: "%PDF"}, nil
			},
		}

		result, err := p.Run(context.Background(), "site-1", []string{"https://a.com/doc.pdf"}, nil)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Failed)
		assert.Empty(t, result.Items)
	})

	t.Run("uses fallback extractor when primary yields nothing", func(t *testing.T) {
		t.Parallel()

		p := passthroughPipeline(map[string]string{"https://a.com/p": "body"})
		p.Extractor = &mock.Extractor{
			ExtractFn: func(html string) (*siteqa.ExtractResult, error) {
				return &siteqa.ExtractResult{ContentHTML: "   "}, nil
			},
		}
		p.Fallback = &mock.Extractor{
			ExtractFn: func(html string) (*siteqa.ExtractResult, error) {
				return &siteqa.ExtractResult{Title: "Rescued", ContentHTML: "<p>rescued</p>"}, nil
			},
		}

		result, err := p.Run(context.Background(), "site-1", []string{"https://a.com/p"}, nil)

		require.NoError(t, err)
		require.Len(t, result.Items, 1)
		assert.Equal(t, "Rescued", result.Items[0].Title)
		assert.Equal(t, "md:<p>rescued</p>", result.Items[0].Content)
	})

	t.Run("falls back to document title then URL", func(t *testing.T) {
		t.Parallel()

		page := "<html><head><title>From HTML</title></head><body>x</body></html>"
		p := passthroughPipeline(map[string]string{"https://a.com/p": page})
		p.Extractor = &mock.Extractor{
			ExtractFn: func(html string) (*siteqa.ExtractResult, error) {
				return &siteqa.ExtractResult{ContentHTML: html}, nil
			},
		}

		result, err := p.Run(context.Background(), "site-1", []string{"https://a.com/p"}, nil)

		require.NoError(t, err)
		require.Len(t, result.Items, 1)
		assert.Equal(t, "From HTML", result.Items[0].Title)

		// No title anywhere: the URL is the last resort.
		p2 := passthroughPipeline(map[string]string{"https://a.com/untitled": "<p>text</p>"})
		p2.Extractor = p.Extractor
		result2, err := p2.Run(context.Background(), "site-1", []string{"https://a.com/untitled"}, nil)

		require.NoError(t, err)
		require.Len(t, result2.Items, 1)
		assert.Equal(t, "https://a.com/untitled", result2.Items[0].Title)
	})

	t.Run("classifies blog URLs", func(t *testing.T) {
		t.Parallel()

		p := passthroughPipeline(map[string]string{
			"https://a.com/blog/post-1": "post",
			"https://a.com/about":       "about",
		})

		result, err := p.Run(context.Background(), "site-1", []string{
			"https://a.com/blog/post-1", "https://a.com/about",
		}, nil)

		require.NoError(t, err)
		require.Len(t, result.Items, 2)
		assert.Equal(t, siteqa.ContentTypeBlog, result.Items[0].ContentType)
		assert.Equal(t, siteqa.ContentTypeOther, result.Items[1].ContentType)
	})

	t.Run("accumulates byte and token stats", func(t *testing.T) {
		t.Parallel()

		p := passthroughPipeline(map[string]string{
			"https://a.com/1": "aaaa",
			"https://a.com/2": "bb",
		})
		p.TokenCounter = &mock.TokenCounter{
			CountTokensFn: func(_ context.Context, text string) (int, error) {
				return len(strings.TrimPrefix(text, "md:")), nil
			},
		}

		result, err := p.Run(context.Background(), "site-1", []string{
			"https://a.com/1", "https://a.com/2",
		}, nil)

		require.NoError(t, err)
		assert.Equal(t, len("md:aaaa")+len("md:bb"), result.Bytes)
		assert.Equal(t, 6, result.Tokens)
	})

	t.Run("reports progress events", func(t *testing.T) {
		t.Parallel()

		pages := map[string]string{"https://a.com/1": "one"}
		p := passthroughPipeline(pages)

		var mu sync.Mutex
		var events []extract.ProgressType
		progress := func(e extract.ProgressEvent) {
			mu.Lock()
			events = append(events, e.Type)
			mu.Unlock()
		}

		_, err := p.Run(context.Background(), "site-1", []string{
			"https://a.com/1", "https://a.com/missing",
		}, progress)

		require.NoError(t, err)
		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, extract.ProgressStarted, events[0])
		assert.Equal(t, extract.ProgressFinished, events[len(events)-1])
		assert.Contains(t, events, extract.ProgressCompleted)
		assert.Contains(t, events, extract.ProgressFailed)
	})

	t.Run("returns error when context is canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		p := passthroughPipeline(nil)
		p.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (*siteqa.Response, error) {
				cancel()
				<-ctx.Done()
				return nil, ctx.Err()
			},
		}

		_, err := p.Run(ctx, "site-1", []string{"https://a.com/1"}, nil)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
