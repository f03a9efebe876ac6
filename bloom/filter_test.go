package bloom_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/siteqa/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter_TestAndAdd(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	assert.False(t, f.TestAndAdd("https://example.com/a"), "first add should report not present")
	assert.True(t, f.TestAndAdd("https://example.com/a"), "second add should report present")
	assert.True(t, f.Test("https://example.com/a"))
}

func TestFilter_NoFalseNegatives(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(10000, 0.01)

	for i := 0; i < 1000; i++ {
		f.Add(fmt.Sprintf("https://example.com/page/%d", i))
	}
	for i := 0; i < 1000; i++ {
		assert.True(t, f.Test(fmt.Sprintf("https://example.com/page/%d", i)))
	}
}
