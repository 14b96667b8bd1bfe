// Package main provides the entry point for the Alumni Connect HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "alumni_api",
	Short: "Alumni Connect HTTP API Server",
	Long:  "Alumni Connect links students with alumni mentors and career paths, ranking recommendations by profile embedding similarity via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
