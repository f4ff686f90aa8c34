package extractor

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// recordSchema is the minimum shape an extraction provider must return.
// Optional fields are left open so that providers can omit what they did not find.
var recordSchema = map[string]any{
	"type":     "object",
	"required": []any{"documentType"},
	"properties": map[string]any{
		"documentType":           map[string]any{"type": "string"},
		"documentTypeConfidence": map[string]any{"type": "number"},
		"summary":                map[string]any{"type": "string"},
		"summaryAr":              map[string]any{"type": "string"},
		"keyTerms": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []any{"term"},
				"properties": map[string]any{
					"term":  map[string]any{"type": "string"},
					"value": map[string]any{"type": "string"},
				},
			},
		},
		"parties": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []any{"name"},
				"properties": map[string]any{
					"name": map[string]any{"type": "string"},
					"type": map[string]any{"type": "string"},
				},
			},
		},
		"financials": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"amounts": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type":     "object",
						"required": []any{"value"},
						"properties": map[string]any{
							"value":       map[string]any{"type": "number"},
							"description": map[string]any{"type": "string"},
						},
					},
				},
			},
		},
		"dates": map[string]any{"type": "object"},
		"clauses": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []any{"content"},
				"properties": map[string]any{
					"id":         map[string]any{"type": "string"},
					"content":    map[string]any{"type": "string"},
					"confidence": map[string]any{"type": "number"},
				},
			},
		},
		"warnings": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"notes":    map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
	},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func compileRecordSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		b, err := json.Marshal(recordSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("record.json", bytes.NewReader(b)); err != nil {
			compileErr = fmt.Errorf("add schema: %w", err)
			return
		}
		compiledSchema, compileErr = compiler.Compile("record.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compile schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// ValidateRecordJSON checks raw provider output against the extraction record schema.
func ValidateRecordJSON(raw []byte) error {
	schema, err := compileRecordSchema()
	if err != nil {
		return err
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
