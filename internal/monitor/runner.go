// Package monitor runs the collection job: every monitored query is
// evaluated against every configured answer engine, scored, and appended to
// the store. The job is sequential and batch-oriented; there is no
// concurrency and no cancellation beyond the caller's context.
package monitor

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/geo-radar/internal/engines"
	"github.com/jonathan/geo-radar/internal/extract"
	"github.com/jonathan/geo-radar/internal/observability"
	"github.com/jonathan/geo-radar/internal/scoring"
	"github.com/jonathan/geo-radar/internal/store"
	"github.com/jonathan/geo-radar/internal/types"
	"golang.org/x/time/rate"
)

// Runner drives one collection run.
type Runner struct {
	Engines []engines.Engine
	Store   store.Store
	// Limiter paces consecutive engine calls; a policy delay respecting
	// external rate limits, not a scheduling dependency.
	Limiter *rate.Limiter
	// Printer, when set, emits per-query summaries for verbose mode.
	Printer *observability.Printer
	// Now is overridable for tests.
	Now func() time.Time
}

// NewRunner creates a runner with the given pause between engine calls.
func NewRunner(e []engines.Engine, s store.Store, pause time.Duration) *Runner {
	r := &Runner{Engines: e, Store: s, Now: time.Now}
	if pause > 0 {
		r.Limiter = rate.NewLimiter(rate.Every(pause), 1)
	}
	return r
}

// Run evaluates every monitored query in order. Engine failures are isolated
// per engine, persistence failures are logged and skipped per row; neither
// aborts the batch. The only fatal condition, unreadable configuration,
// happens before Run is ever called.
func (r *Runner) Run(ctx context.Context, orgs map[string]types.OrganizationConfig, queries []types.MonitoredQuery) error {
	persisted := 0
	for _, q := range queries {
		cfg, ok := orgs[q.Organization]
		if !ok {
			// Unknown organization: score against a blank taxonomy
			// rather than dropping the query.
			cfg = types.OrganizationConfig{Name: q.Organization}
		}

		result := r.evaluate(ctx, cfg, q.Query)
		if r.Printer != nil {
			r.Printer.PrintQueryResult(result)
		}

		if err := r.Store.AppendResult(ctx, result); err != nil {
			log.Printf("failed to persist result for %q (%s): %v", q.Query, q.Organization, err)
			continue
		}
		persisted++
	}
	if r.Printer != nil {
		r.Printer.PrintRunSummary(len(queries), persisted)
	}
	return ctx.Err()
}

// evaluate runs one query against every engine and assembles the query-run
// result.
func (r *Runner) evaluate(ctx context.Context, cfg types.OrganizationConfig, query string) types.EngineResult {
	result := types.EngineResult{
		RunID:          uuid.NewString(),
		Timestamp:      r.Now(),
		Organization:   cfg.Name,
		Query:          query,
		TargetDomain:   cfg.TargetDomain,
		Recommendation: extract.DefaultRecommendation,
		TopCompetitor:  extract.NoCompetitor,
	}

	metadataSet := false
	for _, engine := range r.Engines {
		if r.Limiter != nil {
			if err := r.Limiter.Wait(ctx); err != nil {
				break
			}
		}

		raw, err := engine.Ask(ctx, query)
		if err != nil {
			log.Printf("engine %s failed for %q: %v", engine.Name(), query, err)
			result.Answers = append(result.Answers, types.AnswerRecord{
				Engine:         engine.Name(),
				Failed:         true,
				Breakdown:      []string{scoring.ErrorLabel},
				Recommendation: extract.DefaultRecommendation,
				TopCompetitor:  extract.NoCompetitor,
			})
			continue
		}

		sources := extract.Sources(raw)
		md := extract.ParseMetadata(raw)
		score, breakdown := scoring.Score(raw, cfg, sources)

		result.Answers = append(result.Answers, types.AnswerRecord{
			Engine:         engine.Name(),
			RawAnswer:      raw,
			Sources:        sources,
			Score:          score,
			Breakdown:      breakdown,
			Recommendation: md.Recommendation,
			TopCompetitor:  md.TopCompetitor,
		})

		// Row-level metadata comes from the first engine that answered.
		if !metadataSet {
			result.Recommendation = md.Recommendation
			result.TopCompetitor = md.TopCompetitor
			metadataSet = true
		}
	}

	result.GlobalScore = scoring.GlobalScore(result.Answers)
	return result
}
