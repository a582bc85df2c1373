// Package aggregate rolls up persisted query-run results into the derived
// dashboard metrics: citation rates, share of voice, the source leaderboard
// and time-bucketed score trends.
package aggregate

import (
	"sort"

	"github.com/jonathan/geo-radar/internal/classify"
	"github.com/jonathan/geo-radar/internal/types"
)

// Aggregate computes VisibilityMetrics and the SourceLeaderboard over a set
// of query-run results for one organization. Every extracted source is
// classified fresh against the current configuration. An empty record set
// yields all-zero metrics and an empty leaderboard, never an error.
func Aggregate(records []types.EngineResult, cfg types.OrganizationConfig) (types.VisibilityMetrics, types.SourceLeaderboard) {
	metrics := types.VisibilityMetrics{
		TotalQueries:       len(records),
		EngineCitationRate: make(map[string]float64),
	}

	var (
		board        types.SourceLeaderboard
		boardIndex   = make(map[string]int)
		engineCited  = make(map[string]int)
		totalSources int
		ownedSources int
	)

	for _, record := range records {
		citedAny := false
		for _, answer := range record.Answers {
			cited := false
			for _, source := range answer.Sources {
				class := classify.Classify(source, cfg)

				idx, ok := boardIndex[source]
				if !ok {
					idx = len(board)
					boardIndex[source] = idx
					board = append(board, types.LeaderboardEntry{
						Source:   source,
						ByEngine: make(map[string]int),
					})
				}
				board[idx].Classification = class
				board[idx].Total++
				board[idx].ByEngine[answer.Engine]++

				totalSources++
				if class != types.ClassCompetitor {
					ownedSources++
					cited = true
				}
			}
			if cited {
				engineCited[answer.Engine]++
				citedAny = true
			}
		}
		if citedAny {
			metrics.CitedQueries++
		}
	}

	if metrics.TotalQueries > 0 {
		metrics.CitationRate = 100 * float64(metrics.CitedQueries) / float64(metrics.TotalQueries)
		for engine, cited := range engineCited {
			metrics.EngineCitationRate[engine] = 100 * float64(cited) / float64(metrics.TotalQueries)
		}
	}
	if totalSources > 0 {
		metrics.ShareOfVoice = 100 * float64(ownedSources) / float64(totalSources)
	}

	// Descending by total; the stable sort keeps first-seen order on ties.
	sort.SliceStable(board, func(i, j int) bool {
		return board[i].Total > board[j].Total
	})

	return metrics, board
}
