package store

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/geo-radar/internal/types"
)

// maxAnswerLen caps the persisted raw answer text per engine.
const maxAnswerLen = 500

// failedMarker records an errored engine in the per-engine score column.
const failedMarker = "ERR"

// rowWidth is the number of columns per persisted row:
// timestamp, organization, query, target domain, global score, per-engine
// scores, breakdown, per-engine answers, combined sources, recommendation,
// top competitor, run ID.
const rowWidth = 12

// encodeRow flattens a query-run result into one tabular row.
func encodeRow(r types.EngineResult) []any {
	var (
		scores     []string
		breakdowns []string
		answers    []string
		sources    []string
	)
	for _, a := range r.Answers {
		if a.Failed {
			scores = append(scores, fmt.Sprintf("%s=%s", a.Engine, failedMarker))
		} else {
			scores = append(scores, fmt.Sprintf("%s=%d", a.Engine, a.Score))
		}
		if len(a.Breakdown) > 0 {
			breakdowns = append(breakdowns, fmt.Sprintf("%s: %s", a.Engine, strings.Join(a.Breakdown, ", ")))
		}
		if a.RawAnswer != "" {
			answers = append(answers, fmt.Sprintf("%s: %s", a.Engine, capText(a.RawAnswer)))
		}
		if len(a.Sources) > 0 {
			sources = append(sources, fmt.Sprintf("%s: %s", a.Engine, strings.Join(a.Sources, ", ")))
		}
	}

	return []any{
		r.Timestamp.UTC().Format(time.RFC3339),
		r.Organization,
		r.Query,
		r.TargetDomain,
		strconv.FormatFloat(r.GlobalScore, 'f', 1, 64),
		strings.Join(scores, ";"),
		strings.Join(breakdowns, " | "),
		strings.Join(answers, " | "),
		strings.Join(sources, " | "),
		strconv.Itoa(r.Recommendation),
		r.TopCompetitor,
		r.RunID,
	}
}

// decodeRow parses one tabular row back into a query-run result. The
// per-engine score column drives which engines exist; the breakdown, answer
// and source columns attach to them by engine name.
func decodeRow(cells []string) (types.EngineResult, error) {
	get := func(i int) string {
		if i >= len(cells) {
			return ""
		}
		return cells[i]
	}

	ts, err := time.Parse(time.RFC3339, get(0))
	if err != nil {
		return types.EngineResult{}, fmt.Errorf("bad timestamp %q: %w", get(0), err)
	}

	result := types.EngineResult{
		Timestamp:     ts,
		Organization:  get(1),
		Query:         get(2),
		TargetDomain:  get(3),
		TopCompetitor: get(10),
		RunID:         get(11),
	}
	if v, err := strconv.ParseFloat(get(4), 64); err == nil {
		result.GlobalScore = v
	}
	if v, err := strconv.Atoi(get(9)); err == nil {
		result.Recommendation = v
	}

	breakdowns := parseEngineBlocks(get(6))
	answers := parseEngineBlocks(get(7))
	sources := parseEngineBlocks(get(8))

	for _, entry := range strings.Split(get(5), ";") {
		name, value, ok := strings.Cut(entry, "=")
		if !ok || name == "" {
			continue
		}
		answer := types.AnswerRecord{
			Engine:    name,
			RawAnswer: answers[name],
		}
		if value == failedMarker {
			answer.Failed = true
		} else if score, err := strconv.Atoi(value); err == nil {
			answer.Score = score
		}
		if b := breakdowns[name]; b != "" {
			answer.Breakdown = strings.Split(b, ", ")
		}
		if s := sources[name]; s != "" {
			answer.Sources = strings.Split(s, ", ")
		}
		result.Answers = append(result.Answers, answer)
	}

	return result, nil
}

// parseEngineBlocks splits a "ENGINE1: v1 | ENGINE2: v2" column into a map
// keyed by engine name.
func parseEngineBlocks(column string) map[string]string {
	out := make(map[string]string)
	for _, block := range strings.Split(column, " | ") {
		name, value, ok := strings.Cut(block, ": ")
		if !ok {
			continue
		}
		out[name] = value
	}
	return out
}

// capText truncates an answer for persistence and flattens the characters
// the row format uses as separators.
func capText(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "|", "/")
	if len(s) > maxAnswerLen {
		s = s[:maxAnswerLen]
	}
	return strings.TrimSpace(s)
}
