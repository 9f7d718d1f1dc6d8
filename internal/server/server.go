// Package server exposes the analytics reports over a small JSON HTTP API.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dlucca/gitgauge/internal/log"
	"github.com/dlucca/gitgauge/internal/model"
)

// Service is the analyzer surface the HTTP handlers call.
type Service interface {
	RepoHealth(ctx context.Context, owner, repo string) (model.RepoHealthScore, error)
	CodeQuality(ctx context.Context, owner, repo string) (model.CodeQualityMetrics, error)
	PRAnalytics(ctx context.Context, owner, repo string) (model.PRAnalytics, error)
	Dependencies(ctx context.Context, owner, repo string) (model.DependencyGraph, model.DependencyHealth, error)
	CollaborationNetwork(ctx context.Context, user string) (model.CollaborationNetwork, error)
}

// Server routes analytics requests to a Service.
type Server struct {
	svc     Service
	router  chi.Router
	timeout time.Duration
}

// New creates a Server with routes mounted.
func New(svc Service) *Server {
	s := &Server{svc: svc, timeout: 60 * time.Second}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.timeout))

	r.Route("/api", func(r chi.Router) {
		r.Route("/repos/{owner}/{repo}", func(r chi.Router) {
			r.Get("/health", s.handleRepoHealth)
			r.Get("/quality", s.handleCodeQuality)
			r.Get("/prs", s.handlePRAnalytics)
			r.Get("/dependencies", s.handleDependencies)
		})
		r.Get("/users/{user}/network", s.handleNetwork)
	})

	s.router = r
	return s
}

// Handler returns the mounted HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe runs the server until the context is canceled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	log.Info("listening", "addr", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

var (
	ownerStrip = regexp.MustCompile(`[^a-zA-Z0-9-]`)
	repoStrip  = regexp.MustCompile(`[^a-zA-Z0-9._-]`)
)

const (
	maxOwnerLen = 39
	maxRepoLen  = 100
)

// repoParams sanitizes the owner and repo path segments. Empty results or
// oversize names are rejected before any upstream request is made.
func repoParams(r *http.Request) (owner, repo string, ok bool) {
	owner = ownerStrip.ReplaceAllString(strings.TrimSpace(chi.URLParam(r, "owner")), "")
	repo = repoStrip.ReplaceAllString(strings.TrimSpace(chi.URLParam(r, "repo")), "")

	if owner == "" || len(owner) > maxOwnerLen || repo == "" || len(repo) > maxRepoLen {
		return "", "", false
	}
	return owner, repo, true
}

func userParam(r *http.Request) (string, bool) {
	user := ownerStrip.ReplaceAllString(strings.TrimSpace(chi.URLParam(r, "user")), "")
	if user == "" || len(user) > maxOwnerLen {
		return "", false
	}
	return user, true
}

func (s *Server) handleRepoHealth(w http.ResponseWriter, r *http.Request) {
	owner, repo, ok := repoParams(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid owner or repo format")
		return
	}

	score, err := s.svc.RepoHealth(r.Context(), owner, repo)
	if err != nil {
		writeUpstreamError(w, "failed to calculate repository health score", err)
		return
	}
	writeJSON(w, score)
}

func (s *Server) handleCodeQuality(w http.ResponseWriter, r *http.Request) {
	owner, repo, ok := repoParams(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid owner or repo format")
		return
	}

	quality, err := s.svc.CodeQuality(r.Context(), owner, repo)
	if err != nil {
		writeUpstreamError(w, "failed to fetch code quality metrics", err)
		return
	}
	writeJSON(w, quality)
}

func (s *Server) handlePRAnalytics(w http.ResponseWriter, r *http.Request) {
	owner, repo, ok := repoParams(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid owner or repo format")
		return
	}

	analytics, err := s.svc.PRAnalytics(r.Context(), owner, repo)
	if err != nil {
		writeUpstreamError(w, "failed to fetch PR analytics", err)
		return
	}
	writeJSON(w, analytics)
}

// dependenciesResponse pairs the display graph with the health summary so
// one request serves both panels.
type dependenciesResponse struct {
	Graph  model.DependencyGraph  `json:"graph"`
	Health model.DependencyHealth `json:"health"`
}

func (s *Server) handleDependencies(w http.ResponseWriter, r *http.Request) {
	owner, repo, ok := repoParams(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid owner or repo format")
		return
	}

	graph, health, err := s.svc.Dependencies(r.Context(), owner, repo)
	if err != nil {
		writeUpstreamError(w, "failed to fetch dependencies", err)
		return
	}
	writeJSON(w, dependenciesResponse{Graph: graph, Health: health})
}

func (s *Server) handleNetwork(w http.ResponseWriter, r *http.Request) {
	user, ok := userParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid username format")
		return
	}

	network, err := s.svc.CollaborationNetwork(r.Context(), user)
	if err != nil {
		writeUpstreamError(w, "failed to fetch collaborations", err)
		return
	}
	writeJSON(w, network)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Debug("response encode failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// writeUpstreamError maps analyzer failures to a 502 with a stable message;
// the underlying error is logged, not leaked to the client.
func writeUpstreamError(w http.ResponseWriter, msg string, err error) {
	log.Error(msg, "error", err)
	writeError(w, http.StatusBadGateway, msg)
}
