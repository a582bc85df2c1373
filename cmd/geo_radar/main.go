// Package main provides the entry point for the GEO-Radar CLI: the
// collection job that audits LLM answer engines and the REST API server the
// dashboard reads from.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "geo_radar",
	Short: "LLM answer-engine visibility auditor",
	Long:  "GEO-Radar audits how LLM answer engines cite an organization versus its partners and competitors, scores each answer 0-100, and serves the aggregated share-of-voice metrics over a REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
