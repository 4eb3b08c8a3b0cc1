// Package chi exposes the search API over HTTP on a chi router.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/gearstack/catsearch/internal/domain"
	"github.com/gearstack/catsearch/internal/domain/search/query"
	logpkg "github.com/gearstack/catsearch/internal/logger"
	"github.com/gearstack/catsearch/internal/metrics"
	healthuc "github.com/gearstack/catsearch/internal/usecase/health"
	searchuc "github.com/gearstack/catsearch/internal/usecase/search"
)

// Client-facing error messages. Underlying causes stay in the server log.
const (
	msgQueryRequired = "Search query is required"
	msgInternalError = "Internal server error"
)

// Server holds the HTTP handlers. Handlers log through the request-scoped
// logger installed by the wide-event middleware.
type Server struct {
	search *searchuc.Service
	health *healthuc.Service
}

// NewServer creates an HTTP API server.
func NewServer(search *searchuc.Service, health *healthuc.Service) *Server {
	return &Server{search: search, health: health}
}

// Routes registers all endpoints on the router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/search/smart-search", s.SmartSearch)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// SmartSearch handles GET /search/smart-search.
func (s *Server) SmartSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	params, err := query.New(
		q.Get("query"),
		q.Get("type"),
		q.Get("sort_by"),
		parsePrice(q.Get("min_price")),
		parsePrice(q.Get("max_price")),
	)
	if err != nil {
		writeSearchError(w, http.StatusBadRequest, msgQueryRequired)
		return
	}

	out, err := s.search.Resolve(r.Context(), params)
	if err != nil {
		if errors.Is(err, domain.ErrQueryRequired) {
			writeSearchError(w, http.StatusBadRequest, msgQueryRequired)
			return
		}
		logpkg.FromContext(r.Context()).Error("smart search failed",
			zap.String("query", params.Query()),
			zap.Error(err),
		)
		metrics.SearchFailuresTotal.Inc()
		writeSearchError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	metrics.SearchResolutionsTotal.WithLabelValues(string(out.ResolvedLevel())).Inc()
	writeJSON(w, http.StatusOK, envelopeFromOutcome(params.Query(), out))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, map[string]any{
		"status": report.Status,
		"checks": report.Checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// parsePrice treats blank or non-numeric price parameters as absent, the
// same fallback posture as unrecognized sort_by values.
func parsePrice(raw string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeSearchError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{
		Success: false,
		Error:   message,
	})
}
