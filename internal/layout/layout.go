// Package layout places solved triangles in the plane for drawing.
package layout

import (
	"context"
	"math"

	"github.com/linnemanlabs/go-core/log"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/linnemanlabs/trisolve/internal/triangle"
)

// SideTolerance is the relative tolerance within which the projected length
// of side a must match the solved value.
const SideTolerance = 1e-5

// Padding applied to each axis of a bounding box: a fraction of the extent
// plus a constant so that flat extents stay drawable.
const (
	padFraction = 0.1
	padConstant = 0.1
)

// Label anchors the text for one side at the midpoint of that side.
type Label struct {
	Side string `json:"side"`
	At   r2.Vec `json:"at"`
}

// Layout is a drawable placement of a solved triangle. A sits at the origin,
// C on the positive x axis and B above it.
type Layout struct {
	A      r2.Vec   `json:"A"`
	B      r2.Vec   `json:"B"`
	C      r2.Vec   `json:"C"`
	Bounds r2.Box   `json:"bounds"`
	Labels [3]Label `json:"labels"`

	// Drift is the relative difference between the projected |BC| and the
	// solved side a. Values above SideTolerance only affect drawing.
	Drift float64 `json:"drift"`
}

// Project computes vertex coordinates for t using side b along the x axis
// and side c at angle alpha from A. t is expected to be solved; see
// triangle.Triangle.Verify.
func Project(ctx context.Context, t triangle.Triangle) Layout {
	alpha := t.Alpha * math.Pi / 180
	sin, cos := math.Sincos(alpha)

	a := r2.Vec{}
	c := r2.Vec{X: t.B}
	b := r2.Vec{X: t.C * cos, Y: t.C * sin}

	projected := r2.Norm(r2.Sub(b, c))
	l := Layout{
		A:      a,
		B:      b,
		C:      c,
		Bounds: bounds(a, b, c),
		Labels: [3]Label{
			{Side: "a", At: midpoint(b, c)},
			{Side: "b", At: midpoint(a, c)},
			{Side: "c", At: midpoint(a, b)},
		},
	}
	if t.A > 0 {
		l.Drift = math.Abs(projected-t.A) / t.A
	}

	if L := log.FromContext(ctx); L != nil {
		warnDrift(ctx, L, t.A, projected, l.Drift)
	}
	return l
}

// driftWarner is the part of log.Logger used to report drift.
type driftWarner interface {
	Warn(ctx context.Context, msg string, kv ...any)
}

// warnDrift logs when projected misses side by more than SideTolerance and
// reports whether it did.
func warnDrift(ctx context.Context, w driftWarner, side, projected, drift float64) bool {
	if scalar.EqualWithinRel(projected, side, SideTolerance) {
		return false
	}
	w.Warn(ctx, "projected side differs from solved side",
		"side_a", side,
		"projected_a", projected,
		"drift", drift,
	)
	return true
}

// Consistent reports whether the projected side a matched the solved value.
func (l Layout) Consistent() bool {
	return l.Drift <= SideTolerance
}

func midpoint(p, q r2.Vec) r2.Vec {
	return r2.Scale(0.5, r2.Add(p, q))
}

// bounds returns the box enclosing pts, padded on each axis.
func bounds(pts ...r2.Vec) r2.Box {
	box := r2.Box{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		box.Min.X = min(box.Min.X, p.X)
		box.Min.Y = min(box.Min.Y, p.Y)
		box.Max.X = max(box.Max.X, p.X)
		box.Max.Y = max(box.Max.Y, p.Y)
	}
	px := (box.Max.X-box.Min.X)*padFraction + padConstant
	py := (box.Max.Y-box.Min.Y)*padFraction + padConstant
	box.Min = r2.Sub(box.Min, r2.Vec{X: px, Y: py})
	box.Max = r2.Add(box.Max, r2.Vec{X: px, Y: py})
	return box
}
