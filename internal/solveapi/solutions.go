package solveapi

import (
	"errors"
	"net/http"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/go-chi/chi/v5"

	"github.com/linnemanlabs/trisolve/internal/solution"
)

func (a *API) handleListSolutions(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer", "invalid_request")
			return
		}
		limit = n
	}

	recs, err := a.svc.Recent(r.Context(), limit)
	if err != nil {
		a.logger.Error(r.Context(), err, "failed to list solutions", "limit", limit)
		writeError(w, http.StatusInternalServerError, "internal error", "")
		return
	}
	if recs == nil {
		recs = []*solution.Record{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"solutions": recs})
}

func (a *API) handleGetSolution(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	span := trace.SpanFromContext(r.Context())
	span.SetAttributes(attribute.String("trisolve.solution.id", id))

	rec, ok, err := a.svc.Get(r.Context(), id)
	if err != nil {
		a.logger.Error(r.Context(), err, "failed to get solution", "id", id)
		writeError(w, http.StatusInternalServerError, "internal error", "")
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "not found", "not_found")
		return
	}

	span.SetAttributes(attribute.String("trisolve.solution.status", string(rec.Status)))
	writeJSON(w, http.StatusOK, rec)
}

func (a *API) handleExplainSolution(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	trace.SpanFromContext(r.Context()).SetAttributes(attribute.String("trisolve.solution.id", id))

	rec, err := a.svc.Explain(r.Context(), id)
	switch {
	case errors.Is(err, solution.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found", "not_found")
	case errors.Is(err, solution.ErrNotSolved):
		writeError(w, http.StatusConflict, err.Error(), "not_solved")
	case err != nil:
		a.logger.Error(r.Context(), err, "failed to explain solution", "id", id)
		writeError(w, http.StatusInternalServerError, "internal error", "")
	default:
		writeJSON(w, http.StatusOK, map[string]string{
			"id":          rec.ID,
			"explainer":   rec.Explainer,
			"explanation": rec.Explanation,
		})
	}
}
