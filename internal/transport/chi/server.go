package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/faqdex/internal/domain"
	logpkg "github.com/kailas-cloud/faqdex/internal/logger"
	faquc "github.com/kailas-cloud/faqdex/internal/usecase/faq"
	healthuc "github.com/kailas-cloud/faqdex/internal/usecase/health"
	prefsuc "github.com/kailas-cloud/faqdex/internal/usecase/preferences"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server serves the FAQ HTTP API.
type Server struct {
	faq           FAQService
	prefs         PreferencesService
	health        HealthChecker
	metrics       http.Handler
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(faq FAQService, prefs PreferencesService, health HealthChecker, logger *zap.Logger) *Server {
	s := &Server{
		faq:     faq,
		prefs:   prefs,
		health:  health,
		metrics: promhttp.Handler(),
		logger:  logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrValidation, http.StatusBadRequest, ErrorCodeValidationFailed),
		sentinelHandler(domain.ErrFAQNotFound, http.StatusNotFound, ErrorCodeFAQNotFound),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, ErrorCodeNotFound),
		sentinelHandler(domain.ErrSeedInProgress, http.StatusServiceUnavailable, ErrorCodeSeedInProgress),
	}
	return s
}

// WithMetricsGatherer serves /metrics from g instead of the default registry.
func (s *Server) WithMetricsGatherer(g prometheus.Gatherer) *Server {
	s.metrics = promhttp.HandlerFor(g, promhttp.HandlerOpts{})
	return s
}

// Routes registers all API routes on r.
func (s *Server) Routes(r chi.Router) {
	r.Get("/api/health", s.HealthCheck)
	r.Get("/api/categories", s.ListCategories)
	r.Get("/api/faq", s.ListFAQ)
	r.Get("/api/faq/{faqID}", s.GetFAQ)
	r.Get("/api/search", s.Search)
	r.Get("/api/preferences/{userID}", s.GetPreferences)
	r.Put("/api/preferences/{userID}", s.UpdatePreferences)
	r.Get("/metrics", s.Metrics)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, ErrorCodeNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, ErrorCodeBadRequest, "method not allowed")
	})
}

// HealthCheck handles GET /api/health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:    string(report.Status),
		Checks:    checks,
		Timestamp: report.Timestamp,
	})
}

// ListCategories handles GET /api/categories.
func (s *Server) ListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := s.faq.Categories(r.Context())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, categoriesToAPI(cats))
}

// ListFAQ handles GET /api/faq. The total match count is returned in X-Total-Count.
func (s *Server) ListFAQ(w http.ResponseWriter, r *http.Request) {
	params, err := bindListFAQParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, err.Error())
		return
	}

	res, err := s.faq.List(r.Context(), faquc.ListRequest{
		Category: deref(params.Category),
		Search:   deref(params.Search),
		Offset:   deref(params.Offset),
		Limit:    deref(params.Limit),
	})
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	w.Header().Set("X-Total-Count", strconv.Itoa(res.Total))
	writeJSON(w, http.StatusOK, itemsToAPI(res.Items))
}

// GetFAQ handles GET /api/faq/{faqID}.
func (s *Server) GetFAQ(w http.ResponseWriter, r *http.Request) {
	id, err := bindPathParam(r, "faqID")
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, err.Error())
		return
	}

	item, err := s.faq.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, itemToAPI(&item))
}

// Search handles GET /api/search.
func (s *Server) Search(w http.ResponseWriter, r *http.Request) {
	params, err := bindSearchParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, err.Error())
		return
	}

	items, err := s.faq.Search(r.Context(), params.Q, params.Limit)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, itemsToAPI(items))
}

// GetPreferences handles GET /api/preferences/{userID}.
func (s *Server) GetPreferences(w http.ResponseWriter, r *http.Request) {
	userID, err := bindPathParam(r, "userID")
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, err.Error())
		return
	}
	r = r.WithContext(logpkg.With(s.logContext(r), zap.String("user_id", userID)))

	p, err := s.prefs.Get(r.Context(), userID)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, preferencesToAPI(&p))
}

// UpdatePreferences handles PUT /api/preferences/{userID}.
func (s *Server) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	userID, err := bindPathParam(r, "userID")
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, err.Error())
		return
	}
	r = r.WithContext(logpkg.With(s.logContext(r), zap.String("user_id", userID)))

	var req PreferencesRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	modified, err := s.prefs.Update(r.Context(), userID, prefsuc.UpdateInput{
		HasSeenIntro: req.HasSeenIntro,
		Favorites:    req.Favorites,
		Theme:        req.Theme,
	})
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, UpdateResponse{Success: true, Modified: modified})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	s.metrics.ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{Code: code, Message: message})
}

// safeDomainMessage returns a message for the client without exposing internals.
// Validation errors carry user-facing detail and are passed through.
func safeDomainMessage(err error) string {
	if errors.Is(err, domain.ErrValidation) {
		return err.Error()
	}
	for _, s := range []error{domain.ErrFAQNotFound, domain.ErrNotFound, domain.ErrSeedInProgress} {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

// logContext returns the request context with a logger in it. The request-scoped
// logger from middleware wins; otherwise the server logger is used.
func (s *Server) logContext(r *http.Request) context.Context {
	if _, ok := logpkg.Lookup(r.Context()); ok {
		return r.Context()
	}
	return logpkg.ContextWithLogger(r.Context(),
		s.logger.With(zap.String("request_id", chiMiddleware.GetReqID(r.Context()))))
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	log := logpkg.FromContext(s.logContext(r))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			log.Warn("domain error", zap.Error(err))
			return
		}
	}
	log.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, ErrorCodeInternalError, "internal error")
}
