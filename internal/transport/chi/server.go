// Package chi wires the HTTP API. Routes mirror the public surface:
// taxon search/details, instance creation, and geo search, plus the
// operational health and metrics endpoints.
package chi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/smartcampus/floradex/internal/domain"
	"github.com/smartcampus/floradex/internal/domain/geo"
	healthuc "github.com/smartcampus/floradex/internal/usecase/health"
)

// taxonService is the consumer contract for taxon operations.
type taxonService interface {
	Search(ctx context.Context, query string, f domain.TaxonFilters) ([]domain.Taxon, error)
	Get(ctx context.Context, id string) (domain.Taxon, error)
}

// instanceService is the consumer contract for sighting operations.
type instanceService interface {
	Create(ctx context.Context, in *domain.NewInstanceInput) (domain.Instance, error)
	SearchBounds(ctx context.Context, b geo.Bounds) ([]domain.Instance, error)
}

// healthService is the consumer contract for health checks.
type healthService interface {
	Check(ctx context.Context) healthuc.Report
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

// Server implements the HTTP API.
type Server struct {
	taxons        taxonService
	instances     instanceService
	health        healthService
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(taxons taxonService, instances instanceService, health healthService, logger *zap.Logger) *Server {
	s := &Server{
		taxons:    taxons,
		instances: instances,
		health:    health,
		logger:    logger,
	}
	s.errorHandlers = []errorHandler{
		validationHandler,
		sentinelHandler(domain.ErrTaxonNotFound, http.StatusNotFound, "taxon not found"),
	}
	return s
}

// Routes mounts all API routes on the given router.
func (s *Server) Routes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/taxons/search", s.searchTaxons)
		r.Get("/taxons/details/{id}", s.taxonDetails)
		r.Post("/instances", s.createInstance)
		r.Get("/instances/search/geo", s.searchInstancesByGeo)
	})
	r.Get("/health", s.healthCheck)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
}

// searchTaxons handles GET /api/taxons/search.
func (s *Server) searchTaxons(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := domain.TaxonFilters{
		Family:     q.Get("family"),
		Genus:      q.Get("genus"),
		LocationID: q.Get("locationID"),
	}

	taxons, err := s.taxons.Search(r.Context(), q.Get("q"), filters)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, taxons)
}

// taxonDetails handles GET /api/taxons/details/{id}.
func (s *Server) taxonDetails(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	taxon, err := s.taxons.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, taxon)
}

// createInstance handles POST /api/instances.
func (s *Server) createInstance(w http.ResponseWriter, r *http.Request) {
	var in domain.NewInstanceInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	inst, err := s.instances.Create(r.Context(), &in)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, inst)
}

// searchInstancesByGeo handles GET /api/instances/search/geo.
func (s *Server) searchInstancesByGeo(w http.ResponseWriter, r *http.Request) {
	bounds, err := boundsFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	instances, err := s.instances.SearchBounds(r.Context(), bounds)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, instances)
}

// healthCheck handles GET /health.
func (s *Server) healthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())
	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, report)
}

// boundsFromQuery parses the four required bounding-box coordinates.
func boundsFromQuery(r *http.Request) (geo.Bounds, error) {
	q := r.URL.Query()
	coords := make(map[string]float64, 4)
	for _, name := range []string{"topLeftLat", "topLeftLon", "bottomRightLat", "bottomRightLon"} {
		raw := q.Get(name)
		if raw == "" {
			return geo.Bounds{}, fmt.Errorf("all four coordinate parameters are required, %q is missing", name)
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return geo.Bounds{}, fmt.Errorf("coordinate parameter %q is not a number", name)
		}
		coords[name] = v
	}
	return geo.Bounds{
		TopLeft:     geo.Point{Lat: coords["topLeftLat"], Lon: coords["topLeftLon"]},
		BottomRight: geo.Point{Lat: coords["bottomRightLat"], Lon: coords["bottomRightLon"]},
	}, nil
}

// errorResponse is the error body for every non-2xx response.
type errorResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Message: message})
}

// validationHandler surfaces validation failures with their full message so
// the caller can see which criterion is missing.
func validationHandler(w http.ResponseWriter, err error) bool {
	if !errors.Is(err, domain.ErrValidation) {
		return false
	}
	writeError(w, http.StatusBadRequest, err.Error())
	return true
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, msg string) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	for _, h := range s.errorHandlers {
		if h(w, err) {
			s.logger.Warn("request rejected",
				zap.String("path", r.URL.Path),
				zap.Error(err),
			)
			return
		}
	}
	s.logger.Error("internal error",
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	writeError(w, http.StatusInternalServerError, "internal server error")
}
