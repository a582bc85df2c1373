package types

import "time"

// AnswerRecord is one evaluation of one monitored query against one answer
// engine. Immutable after creation. A failed engine call is represented by
// Failed=true with a zero score; it is excluded from the cross-engine mean
// rather than dragging it down.
type AnswerRecord struct {
	Engine         string   `json:"engine"`
	RawAnswer      string   `json:"raw_answer"`
	Sources        []string `json:"sources,omitempty"`
	Score          int      `json:"score"`
	Breakdown      []string `json:"breakdown,omitempty"`
	Recommendation int      `json:"recommendation"`
	TopCompetitor  string   `json:"top_competitor"`
	Failed         bool     `json:"failed,omitempty"`
}

// EngineResult groups the per-engine answers for a single query run. This is
// the unit the store persists, one row per run, append-only. GlobalScore is
// the unweighted mean of the per-engine scores that were successfully
// obtained; with no successful engine it stays 0.
type EngineResult struct {
	RunID        string         `json:"run_id"`
	Timestamp    time.Time      `json:"timestamp"`
	Organization string         `json:"organization"`
	Query        string         `json:"query"`
	TargetDomain string         `json:"target_domain"`
	GlobalScore  float64        `json:"global_score"`
	Answers      []AnswerRecord `json:"answers"`
	// Row-level metadata, taken from the first engine that answered.
	Recommendation int    `json:"recommendation"`
	TopCompetitor  string `json:"top_competitor"`
}
