package types

import "time"

// VisibilityMetrics is the derived aggregate over a set of query-run results
// for one organization and date range. Recomputed on every request from the
// current configuration; never persisted.
type VisibilityMetrics struct {
	TotalQueries int `json:"total_queries"`
	CitedQueries int `json:"cited_queries"`
	// CitationRate is the percentage of queries where at least one engine
	// cited an owned or partner source.
	CitationRate float64 `json:"citation_rate"`
	// EngineCitationRate maps engine name to its citation percentage over
	// the same query set.
	EngineCitationRate map[string]float64 `json:"engine_citation_rate"`
	// ShareOfVoice is owned-or-partner source occurrences as a percentage
	// of all source occurrences, not of the number of queries.
	ShareOfVoice float64 `json:"share_of_voice"`
}

// LeaderboardEntry is one distinct cited source with its citation counts and
// classification tag.
type LeaderboardEntry struct {
	Source         string         `json:"source"`
	Classification Classification `json:"classification"`
	Total          int            `json:"total"`
	ByEngine       map[string]int `json:"by_engine"`
}

// SourceLeaderboard ranks distinct sources by descending total citation
// count; ties keep first-seen order.
type SourceLeaderboard []LeaderboardEntry

// TrendPoint is one time bucket of resampled global scores.
type TrendPoint struct {
	BucketStart time.Time `json:"bucket_start"`
	MeanScore   float64   `json:"mean_score"`
	Count       int       `json:"count"`
}
