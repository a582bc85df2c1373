package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jonathan/geo-radar/internal/aggregate"
	"github.com/jonathan/geo-radar/internal/types"
)

// dateLayout is the from/to query parameter format.
const dateLayout = "2006-01-02"

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleListOrganizations lists the configured organization names
func (s *Server) handleListOrganizations(w http.ResponseWriter, _ *http.Request) {
	names := s.orgNames
	if names == nil {
		names = []string{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"organizations": names})
}

// handleMetrics returns the visibility metrics for one organization and
// date range
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	cfg, records, ok := s.loadScope(w, r)
	if !ok {
		return
	}

	metrics, _ := aggregate.Aggregate(records, cfg)
	s.jsonResponse(w, http.StatusOK, metrics)
}

// handleLeaderboard returns the ranked source leaderboard
func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	cfg, records, ok := s.loadScope(w, r)
	if !ok {
		return
	}

	_, board := aggregate.Aggregate(records, cfg)
	if board == nil {
		board = types.SourceLeaderboard{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"leaderboard": board})
}

// handleRecords returns the filtered query-run rows
func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	_, records, ok := s.loadScope(w, r)
	if !ok {
		return
	}

	if records == nil {
		records = []types.EngineResult{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"records": records,
		"total":   len(records),
	})
}

// handleTrend returns time-bucketed mean scores
func (s *Server) handleTrend(w http.ResponseWriter, r *http.Request) {
	interval, err := aggregate.ParseInterval(r.URL.Query().Get("interval"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	_, records, ok := s.loadScope(w, r)
	if !ok {
		return
	}

	points := aggregate.Resample(records, interval)
	if points == nil {
		points = []types.TrendPoint{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"interval": interval,
		"points":   points,
	})
}

// loadScope resolves the organization from the path and the date range from
// the query string, then fetches the rows through the bounded cache. On
// failure it writes the error response and returns ok=false.
func (s *Server) loadScope(w http.ResponseWriter, r *http.Request) (types.OrganizationConfig, []types.EngineResult, bool) {
	name := r.PathValue("name")
	cfg, ok := s.orgs[name]
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "Unknown organization: "+name)
		return types.OrganizationConfig{}, nil, false
	}

	from, to, err := parseDateRange(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return types.OrganizationConfig{}, nil, false
	}

	records, err := s.cache.get(r.Context(), name, from, to)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Store error: "+err.Error())
		return types.OrganizationConfig{}, nil, false
	}
	return cfg, records, true
}

// parseDateRange reads the inclusive from/to parameters. Either side may be
// absent; "to" covers its whole day.
func parseDateRange(r *http.Request) (from, to time.Time, err error) {
	if raw := r.URL.Query().Get("from"); raw != "" {
		from, err = time.Parse(dateLayout, raw)
		if err != nil {
			return from, to, fmt.Errorf("invalid from date %q (want YYYY-MM-DD)", raw)
		}
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		to, err = time.Parse(dateLayout, raw)
		if err != nil {
			return from, to, fmt.Errorf("invalid to date %q (want YYYY-MM-DD)", raw)
		}
		to = to.Add(24*time.Hour - time.Nanosecond)
	}
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return from, to, fmt.Errorf("to date is before from date")
	}
	return from, to, nil
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
