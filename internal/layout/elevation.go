package layout

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// arcSteps is the number of points used to draw the angle arc.
const arcSteps = 20

// Scene is the drawable form of an angle-of-elevation problem: the
// observer at the origin, the base of the object on the ground and its top.
// The line of sight runs from Observer to Top.
type Scene struct {
	Observer r2.Vec   `json:"observer"`
	Base     r2.Vec   `json:"base"`
	Top      r2.Vec   `json:"top"`
	Arc      []r2.Vec `json:"arc"`
	Bounds   r2.Box   `json:"bounds"`
}

// Elevation lays out an observer looking at an object of the given height
// at the given horizontal distance with an angle of angle degrees. A
// negative height draws an angle of depression; angle is taken by
// magnitude and swept towards the object.
func Elevation(distance, height, angle float64) Scene {
	s := Scene{
		Base: r2.Vec{X: distance},
		Top:  r2.Vec{X: distance, Y: height},
	}

	radius := 0.3 * min(distance, math.Abs(height))
	if radius == 0 {
		radius = 0.3 * distance
	}
	sweep := math.Abs(angle) * math.Pi / 180
	if height < 0 {
		sweep = -sweep
	}
	s.Arc = make([]r2.Vec, arcSteps)
	for i := range s.Arc {
		theta := sweep * float64(i) / float64(arcSteps-1)
		sin, cos := math.Sincos(theta)
		s.Arc[i] = r2.Vec{X: radius * cos, Y: radius * sin}
	}

	s.Bounds = bounds(s.Observer, s.Base, s.Top)
	return s
}
