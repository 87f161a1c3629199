package solution

import (
	"time"

	"github.com/linnemanlabs/trisolve/internal/layout"
	"github.com/linnemanlabs/trisolve/internal/triangle"
)

// Status tells whether a solve request produced a triangle.
type Status string

const (
	// StatusSolved means all six quantities were determined
	StatusSolved Status = "solved"

	// StatusRejected means the input was invalid or the calculation failed
	StatusRejected Status = "rejected"
)

// Request asks for a triangle to be solved from the quantities named by Case.
type Request struct {
	Case  triangle.Case  `json:"case"`
	Given triangle.Given `json:"given"`
}

// Record is the outcome of one solve request.
type Record struct {
	ID          string             `json:"id"`
	Case        triangle.Case      `json:"case"`
	Given       triangle.Given     `json:"given"`
	Status      Status             `json:"status"`
	Triangle    *triangle.Triangle `json:"triangle,omitempty"`
	Layout      *layout.Layout     `json:"layout,omitempty"`
	ErrorKind   triangle.Kind      `json:"error_kind,omitempty"`
	Error       string             `json:"error,omitempty"`
	Explanation string             `json:"explanation,omitempty"`
	Explainer   string             `json:"explainer,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	Duration    float64            `json:"duration_seconds"`
}

// Clone returns a deep copy of r.
func (r *Record) Clone() *Record {
	cp := *r
	if r.Triangle != nil {
		t := *r.Triangle
		cp.Triangle = &t
	}
	if r.Layout != nil {
		l := *r.Layout
		cp.Layout = &l
	}
	return &cp
}
