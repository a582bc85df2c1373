// Package server provides the HTTP REST API consumed by the dashboard. It
// exposes the metrics, leaderboard, records and trend outputs so the
// dashboard never re-derives classification or scoring itself.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/geo-radar/internal/config"
	"github.com/jonathan/geo-radar/internal/store"
	"github.com/jonathan/geo-radar/internal/types"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	store      store.Store
	orgs       map[string]types.OrganizationConfig
	orgNames   []string
	cache      *resultCache
}

// Config holds server configuration
type Config struct {
	Port    int
	Store   store.Store
	Targets *config.Targets
	// CacheTTL bounds how stale the bulk-read row cache may get.
	CacheTTL time.Duration
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	if cfg.Store == nil {
		return nil, fmt.Errorf("store is required")
	}
	if cfg.Targets == nil {
		return nil, fmt.Errorf("targets config is required")
	}

	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = time.Minute
	}

	s := &Server{
		store: cfg.Store,
		orgs:  cfg.Targets.OrgMap(),
		cache: newResultCache(cfg.Store, ttl),
	}
	for _, org := range cfg.Targets.Organizations {
		s.orgNames = append(s.orgNames, org.Name)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /api/organizations", s.handleListOrganizations)
	mux.HandleFunc("GET /api/organizations/{name}/metrics", s.handleMetrics)
	mux.HandleFunc("GET /api/organizations/{name}/leaderboard", s.handleLeaderboard)
	mux.HandleFunc("GET /api/organizations/{name}/records", s.handleRecords)
	mux.HandleFunc("GET /api/organizations/{name}/trend", s.handleTrend)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}

// Handler exposes the configured handler chain for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// withLogging logs each request and its duration
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// withCORS allows the dashboard frontend to call the API cross-origin
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
