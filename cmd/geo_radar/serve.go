package main

import (
	"fmt"
	"time"

	"github.com/jonathan/geo-radar/internal/config"
	"github.com/jonathan/geo-radar/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort     int
	serveTargets  string
	serveCacheTTL int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard REST API server",
	Long: `Start an HTTP server exposing the derived visibility outputs (metrics,
source leaderboard, records and score trend) for a selected organization
and date range. The dashboard consumes these as-is and never re-derives
classification or scoring.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveTargets, "targets", "", "Path to a JSON targets file (default: CONFIG_CIBLES worksheet)")
	serveCmd.Flags().IntVar(&serveCacheTTL, "cache-ttl", 60, "Row cache TTL in seconds")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	settings := config.FromEnv()
	if err := settings.ValidateStore(); err != nil {
		return err
	}

	st, err := openStore(ctx, settings)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer st.Close()

	targets, err := loadTargets(ctx, serveTargets, st)
	if err != nil {
		return err
	}

	srv, err := server.New(server.Config{
		Port:     servePort,
		Store:    st,
		Targets:  targets,
		CacheTTL: time.Duration(serveCacheTTL) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
