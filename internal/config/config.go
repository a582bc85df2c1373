// Package config provides configuration loading and validation: environment
// settings for the CLI and the monitored-query targets file or sheet.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Settings holds the environment-driven runtime configuration. Engine API
// keys live in internal/engines; everything else is here.
type Settings struct {
	// SpreadsheetID identifies the Google Sheet backing the row log and,
	// optionally, the CONFIG_CIBLES targets worksheet.
	SpreadsheetID string
	// CredentialsJSON is the raw service-account key (GOOGLE_JSON_KEY),
	// as the original deployment injected it.
	CredentialsJSON string
	// DatabaseURL selects the Postgres store when set; the sheet store is
	// used otherwise.
	DatabaseURL string
	// EnginePause is the mandatory pause between consecutive engine calls,
	// a policy delay respecting external rate limits.
	EnginePause time.Duration
}

// FromEnv reads the runtime settings from the environment.
func FromEnv() Settings {
	return Settings{
		SpreadsheetID:   os.Getenv("SPREADSHEET_ID"),
		CredentialsJSON: os.Getenv("GOOGLE_JSON_KEY"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		EnginePause:     envDuration("ENGINE_PAUSE_SECONDS", 2*time.Second),
	}
}

// ValidateStore checks that a usable store backend is configured.
func (s Settings) ValidateStore() error {
	if s.DatabaseURL != "" {
		return nil
	}
	if s.SpreadsheetID == "" {
		return fmt.Errorf("no store configured: set SPREADSHEET_ID (with GOOGLE_JSON_KEY) or DATABASE_URL")
	}
	if s.CredentialsJSON == "" {
		return fmt.Errorf("SPREADSHEET_ID is set but GOOGLE_JSON_KEY is missing")
	}
	return nil
}

func envDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	secs, err := strconv.Atoi(raw)
	if err != nil || secs < 0 {
		return fallback
	}
	return time.Duration(secs) * time.Second
}
