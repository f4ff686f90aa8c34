package extractor_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexdraft/internal/config"
	"lexdraft/internal/extractor"
	"lexdraft/internal/port"
)

// stubSource is a minimal ExtractionSource for testing the factory.
type stubSource struct {
	model string
	raw   string
}

func (s *stubSource) Extract(_ context.Context, _ port.ExtractInput) (*port.ExtractOutput, error) {
	return extractor.OutputFromText(s.raw, s.model)
}

func registerStub(name, raw string) {
	extractor.RegisterProvider(name, func(cfg *config.ProviderConfig) (port.ExtractionSource, error) {
		return &stubSource{model: cfg.DefaultModel, raw: raw}, nil
	})
}

func TestFactory_RegisterAndCreate(t *testing.T) {
	registerStub("stub-ok", sampleRecordJSON)

	src, err := extractor.NewExtractor(&config.ProviderConfig{Provider: "stub-ok", DefaultModel: "m1"})
	require.NoError(t, err)
	assert.Contains(t, extractor.Providers(), "stub-ok")

	out, err := src.Extract(context.Background(), port.ExtractInput{})
	require.NoError(t, err)
	assert.Equal(t, "m1", out.ModelUsed)
}

func TestFactory_UnknownProvider(t *testing.T) {
	src, err := extractor.NewExtractor(&config.ProviderConfig{Provider: "nonexistent-provider-xyz"})
	assert.Nil(t, src)
	assert.ErrorContains(t, err, "unknown extraction provider")
}

func TestNewFromConfig_SingleProvider(t *testing.T) {
	registerStub("stub-single", sampleRecordJSON)

	src, err := extractor.NewFromConfig(&config.ExtractorConfig{Provider: "stub-single"}, nil)
	require.NoError(t, err)
	assert.IsType(t, &stubSource{}, src)
}

func TestNewFromConfig_ChainWithValidation(t *testing.T) {
	registerStub("stub-invalid", `{"summary": "no document type"}`)
	registerStub("stub-valid", sampleRecordJSON)

	cfg := &config.ExtractorConfig{
		Primary:        config.ProviderConfig{Provider: "stub-invalid", DefaultModel: "bad"},
		Secondary:      config.ProviderConfig{Provider: "stub-valid", DefaultModel: "good"},
		ValidateSchema: true,
	}
	src, err := extractor.NewFromConfig(cfg, nil)
	require.NoError(t, err)
	assert.IsType(t, &extractor.SchemaValidator{}, src)

	// Validation runs on the chain result, so invalid primary output is rejected.
	_, err = src.Extract(context.Background(), port.ExtractInput{})
	assert.ErrorContains(t, err, "does not match schema")
}

func TestNewFromConfig_NothingConfigured(t *testing.T) {
	_, err := extractor.NewFromConfig(&config.ExtractorConfig{}, nil)
	assert.ErrorContains(t, err, "no extraction provider configured")
}
