package extractor_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"lexdraft/internal/extractor"
)

func TestNewRateLimitError_DefaultRetry(t *testing.T) {
	base := errors.New("429")
	err := extractor.NewRateLimitError("claude", base, 0)

	assert.Equal(t, 60*time.Second, err.RetryAfter)
	assert.Equal(t, "claude", err.Provider)
	assert.ErrorIs(t, err, base)
	assert.Contains(t, err.Error(), "claude rate limited")
}

func TestParseRetryAfterHeader(t *testing.T) {
	assert.Equal(t, 30, extractor.ParseRetryAfterHeader("30"))
	assert.Equal(t, 0, extractor.ParseRetryAfterHeader(""))
	assert.Equal(t, 0, extractor.ParseRetryAfterHeader("Wed, 21 Oct 2015 07:28:00 GMT"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", extractor.Truncate("abc", 5))
	assert.Equal(t, "ab...", extractor.Truncate("abcdef", 2))
}
