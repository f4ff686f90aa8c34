// Package remote calls an external OCR/extraction service over HTTP.
//
// The service receives the raw document as multipart form data at
// POST {endpoint}/api/ai/ocr/extract and answers with an extraction record,
// either bare or wrapped in {"success": true, "data": {...}}.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"lexdraft/internal/config"
	"lexdraft/internal/extractor"
	"lexdraft/internal/port"
)

const extractPath = "/api/ai/ocr/extract"

func init() {
	extractor.RegisterProvider("remote", func(cfg *config.ProviderConfig) (port.ExtractionSource, error) {
		if cfg.Endpoint == "" {
			return nil, fmt.Errorf("remote extraction provider requires an endpoint")
		}
		return New(cfg), nil
	})
}

// Extractor implements port.ExtractionSource against a remote OCR service.
type Extractor struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// New creates a remote extractor. cfg.Endpoint is the service base URL.
func New(cfg *config.ProviderConfig) *Extractor {
	model := cfg.DefaultModel
	if model == "" {
		model = "remote-ocr"
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	return &Extractor{
		apiKey:  cfg.APIKey,
		model:   model,
		baseURL: strings.TrimRight(cfg.Endpoint, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (e *Extractor) Extract(ctx context.Context, input port.ExtractInput) (*port.ExtractOutput, error) {
	body, contentType, err := buildMultipart(input)
	if err != nil {
		return nil, fmt.Errorf("building multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+extractPath, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	if input.Language != "" {
		req.Header.Set("Accept-Language", string(input.Language))
	}
	if e.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+e.apiKey)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling extraction service: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		baseErr := fmt.Errorf("extraction service error (status %d): %s", resp.StatusCode, extractor.Truncate(string(respBody), 500))
		if resp.StatusCode == http.StatusTooManyRequests {
			retryAfter := extractor.ParseRetryAfterHeader(resp.Header.Get("Retry-After"))
			return nil, extractor.NewRateLimitError("remote", baseErr, retryAfter)
		}
		return nil, baseErr
	}

	var envelope struct {
		Success *bool           `json:"success"`
		Error   json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(respBody, &envelope); err == nil && envelope.Success != nil && !*envelope.Success {
		return nil, fmt.Errorf("extraction service rejected document: %s", extractor.Truncate(string(envelope.Error), 500))
	}

	return extractor.OutputFromText(string(respBody), e.model)
}

func buildMultipart(input port.ExtractInput) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	filename := input.FileName
	if filename == "" {
		filename = "document"
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	h.Set("Content-Type", input.ContentType)
	part, err := w.CreatePart(h)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(input.FileBytes); err != nil {
		return nil, "", err
	}

	if input.DocumentTypeHint != "" {
		if err := w.WriteField("documentType", input.DocumentTypeHint); err != nil {
			return nil, "", err
		}
	}
	if input.Language != "" {
		if err := w.WriteField("language", string(input.Language)); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
