package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonathan/geo-radar/internal/config"
	"github.com/jonathan/geo-radar/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubStore serves canned rows and counts backend reads.
type stubStore struct {
	rows  []types.EngineResult
	err   error
	reads int
}

func (s *stubStore) AppendResult(_ context.Context, _ types.EngineResult) error { return nil }

func (s *stubStore) ListResults(_ context.Context, org string, from, to time.Time) ([]types.EngineResult, error) {
	s.reads++
	if s.err != nil {
		return nil, s.err
	}
	var out []types.EngineResult
	for _, r := range s.rows {
		if r.Organization != org {
			continue
		}
		if !from.IsZero() && r.Timestamp.Before(from) {
			continue
		}
		if !to.IsZero() && r.Timestamp.After(to) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (s *stubStore) Close() error { return nil }

func testTargets() *config.Targets {
	return &config.Targets{
		Organizations: []types.OrganizationConfig{
			{
				Name:         "TIS",
				TargetDomain: "tabac-info-service.fr",
				Partners:     []string{"ameli.fr"},
			},
		},
		Queries: []types.MonitoredQuery{
			{Organization: "TIS", Query: "comment arrêter de fumer"},
		},
	}
}

func testRows() []types.EngineResult {
	ts := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	return []types.EngineResult{
		{
			RunID:        "run-1",
			Timestamp:    ts,
			Organization: "TIS",
			Query:        "comment arrêter de fumer",
			GlobalScore:  80,
			Answers: []types.AnswerRecord{
				{Engine: "PERPLEXITY", Score: 80, Sources: []string{"tabac-info-service.fr", "kwit.app"}},
			},
		},
		{
			RunID:        "run-2",
			Timestamp:    ts.AddDate(0, 0, 1),
			Organization: "TIS",
			Query:        "comment arrêter de fumer",
			GlobalScore:  20,
			Answers: []types.AnswerRecord{
				{Engine: "PERPLEXITY", Score: 20, Sources: []string{"kwit.app"}},
			},
		},
	}
}

func newTestServer(t *testing.T, st *stubStore) *Server {
	t.Helper()
	srv, err := New(Config{Port: 0, Store: st, Targets: testTargets()})
	require.NoError(t, err)
	return srv
}

func doGet(t *testing.T, srv *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, &stubStore{})
	rec := doGet(t, srv, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListOrganizations(t *testing.T) {
	srv := newTestServer(t, &stubStore{})
	rec := doGet(t, srv, "/api/organizations")

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Organizations []string `json:"organizations"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"TIS"}, body.Organizations)
}

func TestMetrics(t *testing.T) {
	srv := newTestServer(t, &stubStore{rows: testRows()})
	rec := doGet(t, srv, "/api/organizations/TIS/metrics")

	require.Equal(t, http.StatusOK, rec.Code)
	var metrics types.VisibilityMetrics
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &metrics))
	assert.Equal(t, 2, metrics.TotalQueries)
	assert.Equal(t, 1, metrics.CitedQueries)
	assert.InDelta(t, 50.0, metrics.CitationRate, 0.0001)
	// One owned citation out of three source occurrences.
	assert.InDelta(t, 100.0/3, metrics.ShareOfVoice, 0.0001)
}

func TestMetrics_UnknownOrganization(t *testing.T) {
	srv := newTestServer(t, &stubStore{})
	rec := doGet(t, srv, "/api/organizations/Nobody/metrics")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMetrics_DateRangeFilter(t *testing.T) {
	srv := newTestServer(t, &stubStore{rows: testRows()})
	rec := doGet(t, srv, "/api/organizations/TIS/metrics?from=2024-03-05&to=2024-03-05")

	require.Equal(t, http.StatusOK, rec.Code)
	var metrics types.VisibilityMetrics
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &metrics))
	assert.Equal(t, 1, metrics.TotalQueries)
}

func TestMetrics_BadDate(t *testing.T) {
	srv := newTestServer(t, &stubStore{})
	rec := doGet(t, srv, "/api/organizations/TIS/metrics?from=yesterday")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLeaderboard(t *testing.T) {
	srv := newTestServer(t, &stubStore{rows: testRows()})
	rec := doGet(t, srv, "/api/organizations/TIS/leaderboard")

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Leaderboard types.SourceLeaderboard `json:"leaderboard"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Leaderboard, 2)
	assert.Equal(t, "kwit.app", body.Leaderboard[0].Source)
	assert.Equal(t, 2, body.Leaderboard[0].Total)
}

func TestRecords(t *testing.T) {
	srv := newTestServer(t, &stubStore{rows: testRows()})
	rec := doGet(t, srv, "/api/organizations/TIS/records")

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Records []types.EngineResult `json:"records"`
		Total   int                  `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Total)
}

func TestTrend(t *testing.T) {
	srv := newTestServer(t, &stubStore{rows: testRows()})
	rec := doGet(t, srv, "/api/organizations/TIS/trend?interval=day")

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Points []types.TrendPoint `json:"points"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Points, 2)
	assert.InDelta(t, 80.0, body.Points[0].MeanScore, 0.0001)
}

func TestTrend_BadInterval(t *testing.T) {
	srv := newTestServer(t, &stubStore{})
	rec := doGet(t, srv, "/api/organizations/TIS/trend?interval=fortnight")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStoreErrorSurfacesAs500(t *testing.T) {
	srv := newTestServer(t, &stubStore{err: fmt.Errorf("sheet unavailable")})
	rec := doGet(t, srv, "/api/organizations/TIS/metrics")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestCache_CollapsesRepeatedReads(t *testing.T) {
	st := &stubStore{rows: testRows()}
	srv := newTestServer(t, st)

	doGet(t, srv, "/api/organizations/TIS/metrics")
	doGet(t, srv, "/api/organizations/TIS/leaderboard")
	doGet(t, srv, "/api/organizations/TIS/records")

	// Same organization and range: one backend read within the TTL.
	assert.Equal(t, 1, st.reads)
}
