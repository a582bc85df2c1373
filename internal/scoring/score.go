// Package scoring computes the 0-100 visibility score for a single answer
// and the cross-engine global mean.
package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/geo-radar/internal/classify"
	"github.com/jonathan/geo-radar/internal/types"
)

// Signal weights. The four signals sum to 110 nominally, so the final cap at
// MaxScore is load-bearing, not decorative.
const (
	directBonus  = 50
	partnerBonus = 20
	rankingBonus = 30
	semanticCap  = 30

	// MaxScore is the hard cap on any per-answer score.
	MaxScore = 100

	// topRankWindow is how many leading extracted sources count as a
	// prominent citation.
	topRankWindow = 3
)

// ErrorLabel is the breakdown entry recorded for an engine-level failure.
// Such answers score 0 and are excluded from the cross-engine mean.
const ErrorLabel = "ERREUR"

// Score evaluates one raw answer against an organization's configuration and
// its extracted sources. Signals are applied in a fixed order:
//
//  1. direct citation of the target domain, +50
//  2. first partner citation, +20 (only when the direct bonus did not fire)
//  3. top-3 ranking of the target among the extracted sources, +30 (only
//     when the direct bonus fired)
//  4. signature keyword coverage, proportional up to +30
//
// The sum is capped at MaxScore. The breakdown lists the triggered signals in
// evaluation order; an answer matching nothing returns (0, nil).
func Score(raw string, cfg types.OrganizationConfig, sources []string) (int, []string) {
	answer := strings.ToLower(raw)
	target := classify.NormalizeDomain(cfg.TargetDomain)

	score := 0
	var breakdown []string

	direct := target != "" &&
		(strings.Contains(answer, target) || anyContains(sources, target))
	if direct {
		score += directBonus
		breakdown = append(breakdown, fmt.Sprintf("OFFICIEL (+%d)", directBonus))
	} else {
		// Partner credit is an either/or with the direct bonus: a partner
		// citation only matters when the organization itself went uncited.
		for _, partner := range cfg.Partners {
			p := classify.NormalizeDomain(partner)
			if p == "" {
				continue
			}
			if strings.Contains(answer, p) {
				score += partnerBonus
				breakdown = append(breakdown, fmt.Sprintf("Partenaire %s (+%d)", p, partnerBonus))
				break
			}
		}
	}

	if direct && topRanked(sources, target) {
		score += rankingBonus
		breakdown = append(breakdown, fmt.Sprintf("Top 3 Ranking (+%d)", rankingBonus))
	}

	if pts, matched, total := semanticScore(answer, cfg.Keywords); pts > 0 {
		score += pts
		breakdown = append(breakdown, fmt.Sprintf("Sémantique %d/%d (+%d)", matched, total, pts))
	}

	if score > MaxScore {
		score = MaxScore
	}
	return score, breakdown
}

// GlobalScore is the unweighted mean of the per-engine scores that were
// successfully obtained. Failed engines are excluded from the mean, not
// scored as zero. With no successful engine the mean is 0.
func GlobalScore(answers []types.AnswerRecord) float64 {
	sum, n := 0, 0
	for _, a := range answers {
		if a.Failed {
			continue
		}
		sum += a.Score
		n++
	}
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

// semanticScore gives proportional credit for configured signature keywords
// found in the answer: round(semanticCap * matched/total). No configured
// keywords contributes 0.
func semanticScore(answer string, keywords []string) (pts, matched, total int) {
	for _, kw := range keywords {
		k := strings.ToLower(strings.TrimSpace(kw))
		if k == "" {
			continue
		}
		total++
		if strings.Contains(answer, k) {
			matched++
		}
	}
	if total == 0 || matched == 0 {
		return 0, matched, total
	}
	pts = int(math.Round(float64(semanticCap) * float64(matched) / float64(total)))
	if pts > semanticCap {
		pts = semanticCap
	}
	return pts, matched, total
}

// topRanked reports whether the target appears among the first topRankWindow
// extracted sources, a proxy for citation prominence. An empty source list
// simply means the bonus is unavailable.
func topRanked(sources []string, target string) bool {
	for i, s := range sources {
		if i >= topRankWindow {
			break
		}
		if strings.Contains(strings.ToLower(s), target) {
			return true
		}
	}
	return false
}

func anyContains(sources []string, target string) bool {
	for _, s := range sources {
		if strings.Contains(strings.ToLower(s), target) {
			return true
		}
	}
	return false
}
