package extractor_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"lexdraft/internal/domain"
	"lexdraft/internal/extractor"
	"lexdraft/internal/port"
	"lexdraft/mocks"
)

func fallbackOutput(model string) *port.ExtractOutput {
	return &port.ExtractOutput{
		Record:    &domain.ExtractionRecord{DocumentType: "lease", SourceModel: model},
		ModelUsed: model,
	}
}

var fallbackInput = port.ExtractInput{FileBytes: []byte("%PDF"), ContentType: "application/pdf"}

func TestFallbackExtractor_FirstSucceeds(t *testing.T) {
	s1 := new(mocks.MockExtractionSource)
	s2 := new(mocks.MockExtractionSource)
	s1.On("Extract", mock.Anything, fallbackInput).Return(fallbackOutput("claude"), nil)

	fe := extractor.NewFallbackExtractor([]port.ExtractionSource{s1, s2}, []string{"claude", "gemini"}, nil)
	out, err := fe.Extract(context.Background(), fallbackInput)

	require.NoError(t, err)
	assert.Equal(t, "claude", out.ModelUsed)
	s2.AssertNotCalled(t, "Extract", mock.Anything, mock.Anything)
}

func TestFallbackExtractor_FirstFails_SecondSucceeds(t *testing.T) {
	s1 := new(mocks.MockExtractionSource)
	s2 := new(mocks.MockExtractionSource)
	s1.On("Extract", mock.Anything, fallbackInput).Return(nil, errors.New("boom"))
	s2.On("Extract", mock.Anything, fallbackInput).Return(fallbackOutput("gemini"), nil)

	fe := extractor.NewFallbackExtractor([]port.ExtractionSource{s1, s2}, []string{"claude", "gemini"}, nil)
	out, err := fe.Extract(context.Background(), fallbackInput)

	require.NoError(t, err)
	assert.Equal(t, "gemini", out.ModelUsed)
}

func TestFallbackExtractor_RateLimitedSourceIsSkippedUntilReset(t *testing.T) {
	s1 := new(mocks.MockExtractionSource)
	s2 := new(mocks.MockExtractionSource)
	s1.On("Extract", mock.Anything, fallbackInput).
		Return(nil, extractor.NewRateLimitError("claude", errors.New("429"), 60)).Once()
	s2.On("Extract", mock.Anything, fallbackInput).Return(fallbackOutput("gemini"), nil)

	fe := extractor.NewFallbackExtractor([]port.ExtractionSource{s1, s2}, []string{"claude", "gemini"}, nil)

	_, err := fe.Extract(context.Background(), fallbackInput)
	require.NoError(t, err)
	_, err = fe.Extract(context.Background(), fallbackInput)
	require.NoError(t, err)

	s1.AssertNumberOfCalls(t, "Extract", 1)
	s2.AssertNumberOfCalls(t, "Extract", 2)
}

func TestFallbackExtractor_AllRateLimited(t *testing.T) {
	s1 := new(mocks.MockExtractionSource)
	s2 := new(mocks.MockExtractionSource)
	s1.On("Extract", mock.Anything, fallbackInput).Return(nil, extractor.NewRateLimitError("claude", errors.New("429"), 30))
	s2.On("Extract", mock.Anything, fallbackInput).Return(nil, extractor.NewRateLimitError("gemini", errors.New("429"), 90))

	fe := extractor.NewFallbackExtractor([]port.ExtractionSource{s1, s2}, []string{"claude", "gemini"}, nil)
	_, err := fe.Extract(context.Background(), fallbackInput)

	var rlErr *extractor.RateLimitError
	require.ErrorAs(t, err, &rlErr)
	assert.Equal(t, "all", rlErr.Provider)

	// Both circuits are open now; nothing is called on the second attempt.
	_, err = fe.Extract(context.Background(), fallbackInput)
	require.ErrorAs(t, err, &rlErr)
	s1.AssertNumberOfCalls(t, "Extract", 1)
	s2.AssertNumberOfCalls(t, "Extract", 1)
}

func TestFallbackExtractor_AllFail(t *testing.T) {
	s1 := new(mocks.MockExtractionSource)
	s2 := new(mocks.MockExtractionSource)
	last := errors.New("bad gateway")
	s1.On("Extract", mock.Anything, fallbackInput).Return(nil, extractor.NewRateLimitError("claude", errors.New("429"), 30))
	s2.On("Extract", mock.Anything, fallbackInput).Return(nil, last)

	fe := extractor.NewFallbackExtractor([]port.ExtractionSource{s1, s2}, []string{"claude", "gemini"}, nil)
	_, err := fe.Extract(context.Background(), fallbackInput)

	assert.ErrorIs(t, err, last)
	var rlErr *extractor.RateLimitError
	assert.False(t, errors.As(err, &rlErr))
}
