package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexdraft/internal/config"
	"lexdraft/internal/extractor"
	"lexdraft/internal/extractor/gemini"
	"lexdraft/internal/port"
)

func newTestExtractor(serverURL string) *gemini.Extractor {
	return gemini.New(&config.ProviderConfig{
		Provider: "gemini",
		APIKey:   "g-key",
		Endpoint: serverURL,
	})
}

func TestGeminiExtractor_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "g-key", r.Header.Get("x-goog-api-key"))

		var reqBody map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))
		gen := reqBody["generationConfig"].(map[string]interface{})
		assert.Equal(t, "application/json", gen["responseMimeType"])

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{
					"content": map[string]interface{}{
						"parts": []map[string]interface{}{{"text": `{"documentType":"poa","warnings":["unsigned"]}`}},
					},
					"finishReason": "STOP",
				},
			},
		})
	}))
	defer server.Close()

	out, err := newTestExtractor(server.URL).Extract(context.Background(), port.ExtractInput{
		FileBytes:   []byte("%PDF"),
		ContentType: "application/pdf",
	})

	require.NoError(t, err)
	assert.Equal(t, "gemini-2.0-flash", out.ModelUsed)
	assert.Equal(t, []string{"unsigned"}, out.Record.Warnings)
}

func TestGeminiExtractor_NoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"candidates": []}`))
	}))
	defer server.Close()

	_, err := newTestExtractor(server.URL).Extract(context.Background(), port.ExtractInput{
		FileBytes:   []byte("%PDF"),
		ContentType: "application/pdf",
	})
	assert.ErrorContains(t, err, "no candidates")
}

func TestGeminiExtractor_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Retry-After", "5")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := newTestExtractor(server.URL).Extract(context.Background(), port.ExtractInput{
		FileBytes:   []byte("%PDF"),
		ContentType: "application/pdf",
	})

	var rlErr *extractor.RateLimitError
	require.ErrorAs(t, err, &rlErr)
	assert.Equal(t, "gemini", rlErr.Provider)
}

func TestGeminiExtractor_UnsupportedContentType(t *testing.T) {
	_, err := newTestExtractor("http://127.0.0.1:1").Extract(context.Background(), port.ExtractInput{
		ContentType: "application/msword",
	})
	assert.ErrorContains(t, err, "unsupported content type")
}
