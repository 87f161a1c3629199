package solveapi

import (
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/linnemanlabs/trisolve/internal/layout"
	"github.com/linnemanlabs/trisolve/internal/solution"
	"github.com/linnemanlabs/trisolve/internal/triangle"
)

// solveRequest is the flat wire form: the case plus the six quantities.
type solveRequest struct {
	Case string `json:"case"`
	triangle.Given
}

func (a *API) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveRequest
	if !decode(w, r, &req) {
		return
	}

	span := trace.SpanFromContext(r.Context())
	span.SetAttributes(attribute.String("trisolve.case", req.Case))

	rec, err := a.svc.Solve(r.Context(), solution.Request{
		Case:  triangle.Case(req.Case),
		Given: req.Given,
	})
	if err != nil {
		a.logger.Error(r.Context(), err, "failed to solve triangle", "case", req.Case)
		writeError(w, http.StatusInternalServerError, "internal error", "")
		return
	}

	span.SetAttributes(
		attribute.String("trisolve.solution.id", rec.ID),
		attribute.String("trisolve.solution.status", string(rec.Status)),
	)

	status := http.StatusOK
	if rec.Status != solution.StatusSolved {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, rec)
}

func (a *API) handleLayout(w http.ResponseWriter, r *http.Request) {
	var t triangle.Triangle
	if !decode(w, r, &t) {
		return
	}
	if err := t.Verify(); err != nil {
		writeDomainError(w, err)
		return
	}

	l := layout.Project(r.Context(), t)
	trace.SpanFromContext(r.Context()).SetAttributes(attribute.Float64("trisolve.layout.drift", l.Drift))
	writeJSON(w, http.StatusOK, l)
}
