package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jonathan/geo-radar/internal/types"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Worksheet names, unchanged from the original spreadsheet layout.
const (
	logsWorksheet   = "LOGS_RESULTATS"
	configWorksheet = "CONFIG_CIBLES"
	logsRange       = logsWorksheet + "!A:L"
	configRange     = configWorksheet + "!A2:E" // row 1 is the header
)

// SheetsStore persists rows to a Google Sheets worksheet via a service
// account, mirroring the original spreadsheet-backed deployment.
type SheetsStore struct {
	svc           *sheets.Service
	spreadsheetID string
}

// NewSheetsStore creates a sheet-backed store from raw service-account
// credentials JSON.
func NewSheetsStore(ctx context.Context, credentialsJSON []byte, spreadsheetID string) (*SheetsStore, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheet ID is required")
	}

	svc, err := sheets.NewService(ctx,
		option.WithCredentialsJSON(credentialsJSON),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}

	return &SheetsStore{svc: svc, spreadsheetID: spreadsheetID}, nil
}

// AppendResult appends one row to the results worksheet.
func (s *SheetsStore) AppendResult(ctx context.Context, result types.EngineResult) error {
	_, err := s.svc.Spreadsheets.Values.Append(s.spreadsheetID, logsRange, &sheets.ValueRange{
		Values: [][]any{encodeRow(result)},
	}).ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to append result row: %w", err)
	}
	return nil
}

// ListResults bulk-reads the results worksheet and filters by organization
// and date range. Rows that do not parse (the header row included) are
// skipped rather than failing the read.
func (s *SheetsStore) ListResults(ctx context.Context, organization string, from, to time.Time) ([]types.EngineResult, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, logsRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read results worksheet: %w", err)
	}

	var results []types.EngineResult
	for _, row := range resp.Values {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = fmt.Sprint(v)
		}
		result, err := decodeRow(cells)
		if err != nil {
			continue
		}
		if organization != "" && result.Organization != organization {
			continue
		}
		if !inRange(result.Timestamp, from, to) {
			continue
		}
		results = append(results, result)
	}
	return results, nil
}

// ReadConfigRows bulk-reads the monitored-query configuration worksheet.
// Parsing into targets is the config package's job.
func (s *SheetsStore) ReadConfigRows(ctx context.Context) ([][]string, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, configRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read config worksheet: %w", err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = fmt.Sprint(v)
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

// Close is a no-op; the sheets client holds no persistent connection.
func (s *SheetsStore) Close() error { return nil }
