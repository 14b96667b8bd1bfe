// Package config provides configuration loading and validation for the server.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// AppConfig holds server-level configuration read from environment variables.
// The embedding settings are deliberately optional: when neither backend is
// configured the recommendation engine runs in rule-based fallback mode.
type AppConfig struct {
	Port        int
	DatabaseURL string

	// Generic embedding endpoint (POST {"input": text}, bearer token).
	EmbeddingAPIURL string
	EmbeddingAPIKey string

	// Gemini embedding backend; takes precedence over the generic endpoint
	// when set.
	GeminiAPIKey     string
	GeminiEmbedModel string
}

// NewAppConfig reads server configuration from the environment.
// DATABASE_URL is required; everything else has a default or is optional.
func NewAppConfig() (*AppConfig, error) {
	cfg := &AppConfig{
		Port:             8080,
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		EmbeddingAPIURL:  os.Getenv("EMBEDDING_API_URL"),
		EmbeddingAPIKey:  os.Getenv("EMBEDDING_API_KEY"),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		GeminiEmbedModel: os.Getenv("GEMINI_EMBED_MODEL"),
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %v", err)
		}
		cfg.Port = port
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// normalize validates the configuration.
func (c *AppConfig) normalize() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required but not set")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	return nil
}

// EmbeddingConfigured reports whether any embedding backend is configured.
// When false the server still starts; recommendations use rule-based scoring.
func (c *AppConfig) EmbeddingConfigured() bool {
	return c.GeminiAPIKey != "" || (c.EmbeddingAPIURL != "" && c.EmbeddingAPIKey != "")
}
