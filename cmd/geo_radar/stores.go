package main

import (
	"context"
	"fmt"

	"github.com/jonathan/geo-radar/internal/config"
	"github.com/jonathan/geo-radar/internal/store"
)

// openStore selects the store backend from the environment settings:
// Postgres when DATABASE_URL is set, the Google Sheet otherwise.
func openStore(ctx context.Context, settings config.Settings) (store.Store, error) {
	if settings.DatabaseURL != "" {
		return store.NewPostgresStore(ctx, settings.DatabaseURL)
	}
	return store.NewSheetsStore(ctx, []byte(settings.CredentialsJSON), settings.SpreadsheetID)
}

// loadTargets reads the monitored-query configuration: a JSON targets file
// when given, otherwise the CONFIG_CIBLES worksheet of the sheet store.
// This is the one fatal failure mode of a run: nothing is scored without
// configuration.
func loadTargets(ctx context.Context, path string, st store.Store) (*config.Targets, error) {
	if path != "" {
		return config.LoadTargetsFile(path)
	}
	sheetStore, ok := st.(*store.SheetsStore)
	if !ok {
		return nil, fmt.Errorf("--targets is required when using the database store")
	}
	rows, err := sheetStore.ReadConfigRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load targets from sheet: %w", err)
	}
	return config.TargetsFromRows(rows), nil
}
