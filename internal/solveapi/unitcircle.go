package solveapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/linnemanlabs/trisolve/internal/unitcircle"
)

type unitCircleResponse struct {
	unitcircle.Entry
	Tan       *float64 `json:"tan_value"`
	Reference float64  `json:"reference_angle"`
}

func newUnitCircleResponse(e unitcircle.Entry) unitCircleResponse {
	resp := unitCircleResponse{Entry: e, Reference: unitcircle.Reference(float64(e.Degrees))}
	if tan, ok := e.Tan(); ok {
		resp.Tan = &tan
	}
	return resp
}

func (a *API) handleUnitCircle(w http.ResponseWriter, _ *http.Request) {
	entries := unitcircle.Entries()
	out := make([]unitCircleResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, newUnitCircleResponse(e))
	}
	writeJSON(w, http.StatusOK, map[string]any{"entries": out})
}

func (a *API) handleUnitCircleEntry(w http.ResponseWriter, r *http.Request) {
	deg, err := strconv.ParseFloat(chi.URLParam(r, "deg"), 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "degrees must be a number", "invalid_request")
		return
	}
	e, ok := unitcircle.Lookup(deg)
	if !ok {
		writeError(w, http.StatusNotFound, "not a standard reference angle", "not_found")
		return
	}
	writeJSON(w, http.StatusOK, newUnitCircleResponse(e))
}
