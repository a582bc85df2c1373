package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonathan/geo-radar/internal/types"
)

// PostgresStore persists rows to a Postgres table, the alternative backend
// for deployments without a Google service account.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects to the database and ensures the results table
// exists.
func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &PostgresStore{pool: pool}
	if err := s.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func (s *PostgresStore) ensureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS query_runs (
			run_id         uuid PRIMARY KEY,
			ts             timestamptz NOT NULL,
			organization   text NOT NULL,
			query          text NOT NULL,
			target_domain  text NOT NULL DEFAULT '',
			global_score   double precision NOT NULL,
			recommendation integer NOT NULL,
			top_competitor text NOT NULL DEFAULT '',
			answers        jsonb NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

// AppendResult appends one query-run row.
func (s *PostgresStore) AppendResult(ctx context.Context, result types.EngineResult) error {
	answers, err := json.Marshal(result.Answers)
	if err != nil {
		return fmt.Errorf("failed to marshal answers: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO query_runs
		   (run_id, ts, organization, query, target_domain, global_score, recommendation, top_competitor, answers)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		result.RunID, result.Timestamp, result.Organization, result.Query,
		result.TargetDomain, result.GlobalScore, result.Recommendation,
		result.TopCompetitor, answers,
	)
	if err != nil {
		return fmt.Errorf("failed to append result row: %w", err)
	}
	return nil
}

// ListResults returns the rows for one organization within the inclusive
// date range, oldest first.
func (s *PostgresStore) ListResults(ctx context.Context, organization string, from, to time.Time) ([]types.EngineResult, error) {
	if from.IsZero() {
		from = time.Unix(0, 0)
	}
	if to.IsZero() {
		to = time.Now().Add(24 * time.Hour)
	}

	rows, err := s.pool.Query(ctx,
		`SELECT run_id, ts, organization, query, target_domain, global_score, recommendation, top_competitor, answers
		   FROM query_runs
		  WHERE organization = $1 AND ts >= $2 AND ts <= $3
		  ORDER BY ts`,
		organization, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query results: %w", err)
	}
	defer rows.Close()

	var results []types.EngineResult
	for rows.Next() {
		var (
			result  types.EngineResult
			answers []byte
		)
		if err := rows.Scan(&result.RunID, &result.Timestamp, &result.Organization,
			&result.Query, &result.TargetDomain, &result.GlobalScore,
			&result.Recommendation, &result.TopCompetitor, &answers); err != nil {
			return nil, fmt.Errorf("failed to scan result row: %w", err)
		}
		if err := json.Unmarshal(answers, &result.Answers); err != nil {
			return nil, fmt.Errorf("failed to unmarshal answers: %w", err)
		}
		results = append(results, result)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate result rows: %w", err)
	}
	return results, nil
}

// Close closes the connection pool.
func (s *PostgresStore) Close() error {
	if s.pool != nil {
		s.pool.Close()
	}
	return nil
}
