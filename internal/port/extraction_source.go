package port

import (
	"context"
	"encoding/json"

	"lexdraft/internal/domain"
)

// ExtractInput carries a raw document to an extraction source.
type ExtractInput struct {
	FileBytes        []byte
	ContentType      string
	FileName         string
	DocumentTypeHint string
	Language         domain.Language
}

// ExtractOutput is what an extraction source produced for one document.
type ExtractOutput struct {
	Record    *domain.ExtractionRecord
	ModelUsed string
	RawJSON   json.RawMessage
}

// ExtractionSource turns a raw document into an extraction record.
// Implementations are opaque: LLM providers, a remote OCR service, or a chain of them.
type ExtractionSource interface {
	Extract(ctx context.Context, input ExtractInput) (*ExtractOutput, error)
}
