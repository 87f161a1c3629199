package solveapi

import (
	"net/http"

	"github.com/linnemanlabs/trisolve/internal/layout"
	"github.com/linnemanlabs/trisolve/internal/triangle"
)

type angleRequest struct {
	Distance float64 `json:"distance"`
	Height   float64 `json:"height"`
}

type angleResponse struct {
	Angle      float64      `json:"angle"`
	Depression bool         `json:"depression"`
	Scene      layout.Scene `json:"scene"`
}

func (a *API) handleElevationAngle(w http.ResponseWriter, r *http.Request) {
	var req angleRequest
	if !decode(w, r, &req) {
		return
	}
	angle, err := triangle.AngleOfElevation(req.Distance, req.Height)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, angleResponse{
		Angle:      angle,
		Depression: req.Height < 0,
		Scene:      layout.Elevation(req.Distance, req.Height, angle),
	})
}

type heightRequest struct {
	Distance   float64 `json:"distance"`
	Angle      float64 `json:"angle"`
	Depression bool    `json:"depression"`
}

type heightResponse struct {
	Height float64      `json:"height"`
	Scene  layout.Scene `json:"scene"`
}

func (a *API) handleElevationHeight(w http.ResponseWriter, r *http.Request) {
	var req heightRequest
	if !decode(w, r, &req) {
		return
	}
	h, err := triangle.HeightFromElevation(req.Distance, req.Angle)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if req.Depression {
		h = -h
	}
	writeJSON(w, http.StatusOK, heightResponse{
		Height: h,
		Scene:  layout.Elevation(req.Distance, h, req.Angle),
	})
}
