// Package solveapi exposes the triangle solver over HTTP.
package solveapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/linnemanlabs/go-core/log"
	"github.com/linnemanlabs/go-core/xerrors"

	"github.com/linnemanlabs/trisolve/internal/authmw"
	"github.com/linnemanlabs/trisolve/internal/solution"
	"github.com/linnemanlabs/trisolve/internal/triangle"
)

// SolutionService defines the business operations solveapi needs.
type SolutionService interface {
	Solve(ctx context.Context, req solution.Request) (*solution.Record, error)
	Get(ctx context.Context, id string) (*solution.Record, bool, error)
	Recent(ctx context.Context, limit int) ([]*solution.Record, error)
	Explain(ctx context.Context, id string) (*solution.Record, error)
}

// API holds dependencies for HTTP handlers.
type API struct {
	logger   log.Logger
	svc      SolutionService
	apiToken string
}

// New creates a new API handler. apiToken guards the solution history
// routes; empty leaves them open.
func New(logger log.Logger, svc SolutionService, apiToken string) *API {
	if logger == nil {
		logger = log.Nop()
	}
	if svc == nil {
		panic(xerrors.New("solution service is required"))
	}
	return &API{
		logger:   logger,
		svc:      svc,
		apiToken: apiToken,
	}
}

// RegisterRoutes attaches API endpoints to the router.
func (a *API) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/triangles/solve", a.handleSolve)
		r.Post("/triangles/layout", a.handleLayout)

		r.Group(func(r chi.Router) {
			r.Use(authmw.BearerToken(a.apiToken))
			r.Get("/solutions", a.handleListSolutions)
			r.Get("/solutions/{id}", a.handleGetSolution)
			r.Post("/solutions/{id}/explain", a.handleExplainSolution)
		})

		r.Post("/elevation/angle", a.handleElevationAngle)
		r.Post("/elevation/height", a.handleElevationHeight)
		r.Post("/bearing/destination", a.handleDestination)

		r.Get("/unit-circle", a.handleUnitCircle)
		r.Get("/unit-circle/{deg}", a.handleUnitCircleEntry)
	})
}

type errorBody struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// nothing useful to do with a write error once headers are out
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg, kind string) {
	writeJSON(w, status, errorBody{Error: msg, Kind: kind})
}

// writeDomainError maps a triangle error to 422 with its kind.
func writeDomainError(w http.ResponseWriter, err error) {
	writeError(w, http.StatusUnprocessableEntity, err.Error(), string(triangle.KindOf(err)))
}

// decode reads a JSON body into v and writes the error response on failure.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil {
		return true
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, "request body too large", "invalid_request")
		return false
	}
	writeError(w, http.StatusBadRequest, "invalid payload", "invalid_request")
	return false
}
