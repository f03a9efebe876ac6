package extract_test

import (
	"testing"

	"github.com/fwojciec/siteqa/extract"
	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "512 B", extract.FormatBytes(512))
	assert.Equal(t, "1.0 KB", extract.FormatBytes(1024))
	assert.Equal(t, "1.5 KB", extract.FormatBytes(1536))
	assert.Equal(t, "2.0 MB", extract.FormatBytes(2*1024*1024))
}

func TestFormatTokens(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "~999 tokens", extract.FormatTokens(999))
	assert.Equal(t, "~1k tokens", extract.FormatTokens(1000))
	assert.Equal(t, "~2k tokens", extract.FormatTokens(1600))
}
