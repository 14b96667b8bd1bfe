package embedding

import (
	"context"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultGeminiModel is the embedding model used when none is configured.
const DefaultGeminiModel = "text-embedding-004"

// GeminiProvider produces embeddings via the Gemini API. It is an alternative
// to HTTPProvider for deployments that use Google's embedding models directly
// instead of a generic bearer-token endpoint.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider creates a Gemini-backed embedding provider.
func NewGeminiProvider(ctx context.Context, apiKey, model string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	if model == "" {
		model = DefaultGeminiModel
	}
	return &GeminiProvider{client: client, model: model}, nil
}

// Configured reports whether the underlying client exists.
func (p *GeminiProvider) Configured() bool {
	return p != nil && p.client != nil
}

// Embed requests an embedding from the Gemini API. Failures are logged and
// yield an unavailable Result, matching HTTPProvider behavior.
func (p *GeminiProvider) Embed(ctx context.Context, text string) Result {
	if strings.TrimSpace(text) == "" {
		return unavailable("empty input text")
	}
	if !p.Configured() {
		return unavailable("provider not configured")
	}

	em := p.client.EmbeddingModel(p.model)
	resp, err := em.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		log.Printf("[embedding] gemini embed failed: %v", err)
		return unavailable("gemini request failed")
	}
	if resp == nil || resp.Embedding == nil || len(resp.Embedding.Values) == 0 {
		log.Printf("[embedding] gemini returned empty embedding")
		return unavailable("empty gemini embedding")
	}

	vector := make([]float64, len(resp.Embedding.Values))
	for i, v := range resp.Embedding.Values {
		vector[i] = float64(v)
	}
	return Result{Vector: vector}
}

// Close releases resources held by the underlying client.
func (p *GeminiProvider) Close() error {
	if p.client != nil {
		return p.client.Close()
	}
	return nil
}
