package extract_test

import (
	"testing"

	"github.com/fwojciec/siteqa"
	"github.com/fwojciec/siteqa/extract"
	"github.com/stretchr/testify/assert"
)

func TestClassifyURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		url  string
		want string
	}{
		{"https://a.com/blog/scaling-postgres", siteqa.ContentTypeBlog},
		{"https://a.com/post/2024-recap", siteqa.ContentTypeBlog},
		{"https://a.com/posts/hello", siteqa.ContentTypeBlog},
		{"https://a.com/articles/deep-dive", siteqa.ContentTypeBlog},
		{"https://a.com/insights/market", siteqa.ContentTypeBlog},
		{"https://a.com/news/launch", siteqa.ContentTypeBlog},
		{"https://a.com/BLOG/upper-case", siteqa.ContentTypeBlog},
		{"https://a.com/guide/getting-started", siteqa.ContentTypeOther},
		{"https://a.com/learn/sql", siteqa.ContentTypeOther},
		{"https://a.com/about", siteqa.ContentTypeOther},
		{"https://a.com/", siteqa.ContentTypeOther},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, extract.ClassifyURL(tt.url), "url: %s", tt.url)
	}
}
