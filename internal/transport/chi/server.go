package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/glassdex/internal/domain"
	"github.com/kailas-cloud/glassdex/internal/logger"
	"github.com/kailas-cloud/glassdex/internal/version"
	enablementuc "github.com/kailas-cloud/glassdex/internal/usecase/enablement"
	healthuc "github.com/kailas-cloud/glassdex/internal/usecase/health"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server serves the catalog HTTP API.
type Server struct {
	catalog       CatalogService
	enablement    EnablementService
	health        HealthService
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	catalog CatalogService,
	enablement EnablementService,
	health HealthService,
	logger *zap.Logger,
) *Server {
	s := &Server{
		catalog:    catalog,
		enablement: enablement,
		health:     health,
		logger:     logger,
	}
	s.errorHandlers = []errorHandler{
		invalidQueryHandler,
		sentinelHandler(domain.ErrItemNotFound, http.StatusNotFound, ErrorCodeItemNotFound),
		sentinelHandler(domain.ErrUnknownManufacturer, http.StatusNotFound, ErrorCodeManufacturerNotFound),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, ErrorCodeNotFound),
		sentinelHandler(domain.ErrInvalidItem, http.StatusBadRequest, ErrorCodeValidationFailed),
		sentinelHandler(domain.ErrCatalogUnavailable, http.StatusServiceUnavailable, ErrorCodeCatalogUnavailable),
		sentinelHandler(domain.ErrUnsupportedFormat, http.StatusServiceUnavailable, ErrorCodeCatalogUnavailable),
		sentinelHandler(enablementuc.ErrClosed, http.StatusServiceUnavailable, ErrorCodeUnavailable),
	}
	return s
}

// Routes registers every API route on r.
func (s *Server) Routes(r chi.Router) {
	r.Get("/items", s.ListItems)
	r.Get("/items/{id}", s.GetItem)
	r.Put("/items/{id}/quantity", s.SetQuantity)
	r.Delete("/items/{id}/quantity", s.ClearQuantity)

	r.Get("/manufacturers", s.ListManufacturers)
	r.Put("/manufacturers/enabled", s.EnableAllManufacturers)
	r.Delete("/manufacturers/enabled", s.DisableAllManufacturers)
	r.Put("/manufacturers/{code}/enabled", s.EnableManufacturer)
	r.Delete("/manufacturers/{code}/enabled", s.DisableManufacturer)

	r.Post("/catalog/reload", s.ReloadCatalog)

	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// ListItems handles GET /items.
func (s *Server) ListItems(w http.ResponseWriter, r *http.Request) {
	req, err := requestFromQuery(r.URL.Query())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	page, err := s.catalog.Query(r.Context(), req)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, pageToDTO(page))
}

// GetItem handles GET /items/{id}.
func (s *Server) GetItem(w http.ResponseWriter, r *http.Request) {
	it, err := s.catalog.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, itemToDTO(it))
}

// SetQuantity handles PUT /items/{id}/quantity.
func (s *Server) SetQuantity(w http.ResponseWriter, r *http.Request) {
	var req QuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Quantity == nil {
		writeError(w, http.StatusBadRequest, ErrorCodeValidationFailed, "quantity is required")
		return
	}
	if *req.Quantity < 0 {
		writeError(w, http.StatusBadRequest, ErrorCodeValidationFailed, "quantity must not be negative")
		return
	}

	s.writeQuantity(w, r, req.Quantity)
}

// ClearQuantity handles DELETE /items/{id}/quantity.
func (s *Server) ClearQuantity(w http.ResponseWriter, r *http.Request) {
	s.writeQuantity(w, r, nil)
}

func (s *Server) writeQuantity(w http.ResponseWriter, r *http.Request, q *float64) {
	it, err := s.catalog.SetQuantity(r.Context(), chi.URLParam(r, "id"), q)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, itemToDTO(it))
}

// ListManufacturers handles GET /manufacturers.
func (s *Server) ListManufacturers(w http.ResponseWriter, r *http.Request) {
	all := s.catalog.Manufacturers(r.Context())
	items := make([]Manufacturer, len(all))
	for i, m := range all {
		items[i] = manufacturerToDTO(m)
	}

	writeJSON(w, http.StatusOK, ManufacturerListResponse{Items: items})
}

// EnableManufacturer handles PUT /manufacturers/{code}/enabled.
func (s *Server) EnableManufacturer(w http.ResponseWriter, r *http.Request) {
	if err := s.enablement.Enable(r.Context(), chi.URLParam(r, "code")); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DisableManufacturer handles DELETE /manufacturers/{code}/enabled.
func (s *Server) DisableManufacturer(w http.ResponseWriter, r *http.Request) {
	if err := s.enablement.Disable(r.Context(), chi.URLParam(r, "code")); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// EnableAllManufacturers handles PUT /manufacturers/enabled.
func (s *Server) EnableAllManufacturers(w http.ResponseWriter, r *http.Request) {
	if err := s.enablement.EnableAll(r.Context()); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DisableAllManufacturers handles DELETE /manufacturers/enabled.
func (s *Server) DisableAllManufacturers(w http.ResponseWriter, r *http.Request) {
	if err := s.enablement.DisableAll(r.Context()); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ReloadCatalog handles POST /catalog/reload.
func (s *Server) ReloadCatalog(w http.ResponseWriter, r *http.Request) {
	stats, err := s.catalog.Reload(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	logger.FromContext(r.Context()).Info("Catalog reloaded via API", zap.Int("items", stats.Items))
	writeJSON(w, http.StatusOK, ReloadResponse{
		Items:   stats.Items,
		Skipped: stats.Skipped,
		Source:  stats.Source,
	})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status == healthuc.Unhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status:       string(report.Status),
		Checks:       checks,
		CatalogItems: report.CatalogItems,
		Version:      version.Version,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrItemNotFound,
		domain.ErrUnknownManufacturer,
		domain.ErrNotFound,
		domain.ErrInvalidItem,
		domain.ErrCatalogUnavailable,
		domain.ErrUnsupportedFormat,
		enablementuc.ErrClosed,
	}
	for _, s := range sentinels {
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

// invalidQueryHandler reports query validation failures with their detail.
func invalidQueryHandler(w http.ResponseWriter, err error, _ string) bool {
	if !errors.Is(err, domain.ErrInvalidQuery) {
		return false
	}
	writeError(w, http.StatusBadRequest, ErrorCodeValidationFailed, err.Error())
	return true
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, ErrorCodeInternalError, "internal error")
}
