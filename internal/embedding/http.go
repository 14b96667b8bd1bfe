package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
)

// defaultTimeout bounds a single embedding call; a timeout is treated the
// same as any other provider failure.
const defaultTimeout = 10 * time.Second

// HTTPProvider calls a generic embedding endpoint: POST {"input": text} with
// bearer-token authorization. Both endpoint and key must be set; otherwise the
// provider reports unconfigured and every Embed call returns unavailable.
type HTTPProvider struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

// NewHTTPProvider creates a provider for the given endpoint and API key.
// Either value may be empty, which leaves the provider unconfigured.
func NewHTTPProvider(endpoint, apiKey string) *HTTPProvider {
	return &HTTPProvider{
		endpoint: endpoint,
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// Configured reports whether both endpoint and API key are set.
func (p *HTTPProvider) Configured() bool {
	return p.endpoint != "" && p.apiKey != ""
}

type embedRequest struct {
	Input string `json:"input"`
}

// embedResponse covers the two common response shapes:
// {"data": [{"embedding": [...]}]} and {"embedding": [...]}.
type embedResponse struct {
	Data []struct {
		Embedding []float64 `json:"embedding"`
	} `json:"data"`
	Embedding []float64 `json:"embedding"`
}

// Embed requests an embedding for text. One outbound call, no retries.
func (p *HTTPProvider) Embed(ctx context.Context, text string) Result {
	if strings.TrimSpace(text) == "" {
		return unavailable("empty input text")
	}

	if !p.Configured() {
		log.Printf("[embedding] endpoint or API key not set; returning unavailable")
		return unavailable("provider not configured")
	}

	body, err := json.Marshal(embedRequest{Input: text})
	if err != nil {
		log.Printf("[embedding] failed to marshal request: %v", err)
		return unavailable("request marshal failed")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		log.Printf("[embedding] failed to build request: %v", err)
		return unavailable("request build failed")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		log.Printf("[embedding] request failed: %v", err)
		return unavailable("request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[embedding] non-success status: %d %s", resp.StatusCode, resp.Status)
		return unavailable(fmt.Sprintf("status %d", resp.StatusCode))
	}

	var decoded embedResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		log.Printf("[embedding] failed to decode response: %v", err)
		return unavailable("malformed response body")
	}

	vector := decoded.Embedding
	if len(decoded.Data) > 0 && len(decoded.Data[0].Embedding) > 0 {
		vector = decoded.Data[0].Embedding
	}

	if len(vector) == 0 {
		log.Printf("[embedding] response contained no embedding field")
		return unavailable("missing embedding in response")
	}

	return Result{Vector: vector}
}
