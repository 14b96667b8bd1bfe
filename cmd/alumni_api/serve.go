package main

import (
	"context"
	"fmt"
	"log"

	"github.com/jonathan/alumni-connect/internal/careers"
	"github.com/jonathan/alumni-connect/internal/config"
	"github.com/jonathan/alumni-connect/internal/embedding"
	"github.com/jonathan/alumni-connect/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for profiles, the alumni map, and mentor/career recommendations.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	appConfig, err := config.NewAppConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if servePort != 0 {
		appConfig.Port = servePort
	}

	provider, err := buildProvider(cmd.Context(), appConfig)
	if err != nil {
		return err
	}
	if !provider.Configured() {
		log.Printf("[serve] no embedding backend configured, recommendations will use rule-based matching")
	}

	paths, err := careers.Load()
	if err != nil {
		return fmt.Errorf("failed to load career path catalog: %w", err)
	}

	cfg := server.Config{
		Port:        appConfig.Port,
		DatabaseURL: appConfig.DatabaseURL,
		Provider:    provider,
		Paths:       paths,
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// buildProvider selects the embedding backend. Gemini wins when both are set;
// an unconfigured HTTP provider is still valid and reports Configured() false.
func buildProvider(ctx context.Context, cfg *config.AppConfig) (embedding.Provider, error) {
	if cfg.GeminiAPIKey != "" {
		provider, err := embedding.NewGeminiProvider(ctx, cfg.GeminiAPIKey, cfg.GeminiEmbedModel)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini embedding provider: %w", err)
		}
		return provider, nil
	}
	return embedding.NewHTTPProvider(cfg.EmbeddingAPIURL, cfg.EmbeddingAPIKey), nil
}
