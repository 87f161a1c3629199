package solveapi

import (
	"math"
	"net/http"

	"github.com/linnemanlabs/trisolve/internal/triangle"
)

type destinationRequest struct {
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	Bearing    float64 `json:"bearing"`
	DistanceKm float64 `json:"distance_km"`
}

type destinationResponse struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func (a *API) handleDestination(w http.ResponseWriter, r *http.Request) {
	var req destinationRequest
	if !decode(w, r, &req) {
		return
	}
	if math.Abs(req.Lat) > 90 || math.Abs(req.Lon) > 180 || req.DistanceKm < 0 {
		writeError(w, http.StatusUnprocessableEntity,
			"invalid input: lat within ±90, lon within ±180, distance not negative", string(triangle.KindInvalidInput))
		return
	}
	lat, lon := triangle.Destination(req.Lat, req.Lon, req.Bearing, req.DistanceKm)
	writeJSON(w, http.StatusOK, destinationResponse{Lat: lat, Lon: lon})
}
