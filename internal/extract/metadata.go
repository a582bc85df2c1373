package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// Defaults applied when a trailer field is absent or malformed.
const (
	DefaultRecommendation = 1
	NoCompetitor          = "N/A"
)

// Metadata holds the fields parsed from the structured trailer the answer
// prompt instructs engines to append:
//
//	METADATA | SOURCES: [d1, d2] | RECO: <1-5> | TOP_CONCURRENT: [domain]
//
// Each field is captured independently, so a partial or mangled trailer
// still yields whatever fields matched.
type Metadata struct {
	Recommendation int    `json:"recommendation"`
	TopCompetitor  string `json:"top_competitor"`
}

var (
	recoPattern       = regexp.MustCompile(`RECO:\s*(\d+)`)
	competitorPattern = regexp.MustCompile(`TOP_CONCURRENT:\s*\[([^\]]*)\]`)
)

// ParseMetadata extracts the trailer fields from a raw answer. Absent or
// unparseable fields fall back to their defaults; this never fails the
// record as a whole.
func ParseMetadata(raw string) Metadata {
	md := Metadata{
		Recommendation: DefaultRecommendation,
		TopCompetitor:  NoCompetitor,
	}

	if m := recoPattern.FindStringSubmatch(raw); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			md.Recommendation = clampRecommendation(v)
		}
	}
	if m := competitorPattern.FindStringSubmatch(raw); m != nil {
		if c := strings.TrimSpace(m[1]); c != "" {
			md.TopCompetitor = c
		}
	}

	return md
}

// clampRecommendation forces a parsed rating into the 1-5 range.
func clampRecommendation(v int) int {
	if v < 1 {
		return 1
	}
	if v > 5 {
		return 5
	}
	return v
}
