package extractor

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"lexdraft/internal/domain"
)

// StripCodeFences removes a surrounding markdown code fence, which some
// providers add despite being asked not to.
func StripCodeFences(text string) string {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// DecodeRecord turns provider JSON into an ExtractionRecord. Decoding is
// lenient: a {"data": {...}} wrapper is unwrapped, confidences are clamped to
// [0, 1], clauses without an id get "clause-N", unknown enum values fall back
// to their defaults and nothing is dropped.
func DecodeRecord(raw []byte) (*domain.ExtractionRecord, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, fmt.Errorf("extractor.DecodeRecord: empty payload")
	}

	raw, err := unwrapData(raw)
	if err != nil {
		return nil, fmt.Errorf("extractor.DecodeRecord: %w", err)
	}

	var rec domain.ExtractionRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("extractor.DecodeRecord: %w", err)
	}

	rec.DocumentTypeConfidence = clamp01(rec.DocumentTypeConfidence)
	for i := range rec.Parties {
		t := domain.PartyType(strings.ToLower(string(rec.Parties[i].Type)))
		if !domain.ValidPartyType(t) {
			t = domain.PartyTypeIndividual
		}
		rec.Parties[i].Type = t
	}
	for i := range rec.Clauses {
		c := &rec.Clauses[i]
		if strings.TrimSpace(c.ID) == "" {
			c.ID = fmt.Sprintf("clause-%d", i+1)
		}
		c.Type = domain.NormalizeClauseType(domain.ClauseType(strings.ToLower(string(c.Type))))
		c.Importance = normalizeImportance(c.Importance)
		c.Confidence = clamp01(c.Confidence)
	}
	rec.Normalize()
	return &rec, nil
}

func normalizeImportance(i domain.ClauseImportance) domain.ClauseImportance {
	switch v := domain.ClauseImportance(strings.ToLower(string(i))); v {
	case domain.ImportanceCritical, domain.ImportanceHigh, domain.ImportanceMedium, domain.ImportanceLow:
		return v
	default:
		return ""
	}
}

func clamp01(f float64) float64 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	default:
		return f
	}
}

// unwrapData returns the record inside a {"data": {...}} envelope, or raw itself.
func unwrapData(raw []byte) ([]byte, error) {
	var wrapper struct {
		Data         json.RawMessage `json:"data"`
		DocumentType *string         `json:"documentType"`
	}
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		return nil, err
	}
	if wrapper.DocumentType == nil && len(wrapper.Data) > 0 && wrapper.Data[0] == '{' {
		return wrapper.Data, nil
	}
	return raw, nil
}
