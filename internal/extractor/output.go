package extractor

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"lexdraft/internal/config"
	"lexdraft/internal/port"
)

// OutputFromText decodes the JSON text produced by a provider.
func OutputFromText(text, model string) (*port.ExtractOutput, error) {
	cleaned := []byte(StripCodeFences(text))
	rec, err := DecodeRecord(cleaned)
	if err != nil {
		return nil, fmt.Errorf("parsing LLM JSON output: %w (raw: %s)", err, Truncate(text, 500))
	}
	payload, err := unwrapData(cleaned)
	if err != nil {
		return nil, fmt.Errorf("parsing LLM JSON output: %w", err)
	}
	rec.SourceModel = model
	return &port.ExtractOutput{
		Record:    rec,
		ModelUsed: model,
		RawJSON:   json.RawMessage(payload),
	}, nil
}

// SchemaValidator rejects output whose raw JSON does not match the record schema.
type SchemaValidator struct {
	next port.ExtractionSource
}

// NewSchemaValidator wraps next with schema validation.
func NewSchemaValidator(next port.ExtractionSource) *SchemaValidator {
	return &SchemaValidator{next: next}
}

func (v *SchemaValidator) Extract(ctx context.Context, input port.ExtractInput) (*port.ExtractOutput, error) {
	out, err := v.next.Extract(ctx, input)
	if err != nil {
		return nil, err
	}
	if len(out.RawJSON) == 0 {
		return out, nil
	}
	if err := ValidateRecordJSON(out.RawJSON); err != nil {
		return nil, fmt.Errorf("validating %s output: %w", out.ModelUsed, err)
	}
	return out, nil
}

// NewFromConfig builds the configured extraction chain: the primary provider,
// then secondary and tertiary as fallbacks. Provider packages must be imported
// for their factories to be registered.
func NewFromConfig(cfg *config.ExtractorConfig, logger *zap.Logger) (port.ExtractionSource, error) {
	tiers := []*config.ProviderConfig{cfg.PrimaryConfig(), cfg.SecondaryConfig(), cfg.TertiaryConfig()}

	var sources []port.ExtractionSource
	var names []string
	for _, pc := range tiers {
		if pc == nil || pc.Provider == "" {
			continue
		}
		src, err := NewExtractor(pc)
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
		names = append(names, pc.Provider)
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("no extraction provider configured")
	}

	var chain port.ExtractionSource
	if len(sources) == 1 {
		chain = sources[0]
	} else {
		chain = NewFallbackExtractor(sources, names, logger)
	}
	if cfg.ValidateSchema {
		chain = NewSchemaValidator(chain)
	}
	return chain, nil
}
