package triangle

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats/scalar"
)

// SolvedTolerance is the absolute tolerance, in degrees, within which the
// angles of a solved triangle must sum to 180.
const SolvedTolerance = 1e-6

// Triangle holds all six quantities of a plane triangle.
type Triangle struct {
	A     float64 `json:"a"`
	B     float64 `json:"b"`
	C     float64 `json:"c"`
	Alpha float64 `json:"alpha"`
	Beta  float64 `json:"beta"`
	Gamma float64 `json:"gamma"`
}

func (t Triangle) String() string {
	return fmt.Sprintf("a=%.4f b=%.4f c=%.4f α=%.4f° β=%.4f° γ=%.4f°", t.A, t.B, t.C, t.Alpha, t.Beta, t.Gamma)
}

// Perimeter returns a+b+c.
func (t Triangle) Perimeter() float64 {
	return t.A + t.B + t.C
}

// Area returns the area using Heron's formula.
func (t Triangle) Area() float64 {
	s := t.Perimeter() / 2
	return math.Sqrt(max(0, s*(s-t.A)*(s-t.B)*(s-t.C)))
}

// Verify reports whether t is a solved triangle: positive sides obeying the
// triangle inequality, every angle in (0, 180) and an angle sum of 180
// within SolvedTolerance.
func (t Triangle) Verify() error {
	if !sidesValid(t.A, t.B, t.C) {
		return ErrNotSolved
	}
	for _, ang := range [...]float64{t.Alpha, t.Beta, t.Gamma} {
		if !angleValid(ang) {
			return ErrNotSolved
		}
	}
	if !scalar.EqualWithinAbs(t.Alpha+t.Beta+t.Gamma, 180, SolvedTolerance) {
		return ErrNotSolved
	}
	return nil
}

// Case names which three quantities of a triangle are known.
type Case string

const (
	// SSS means the three sides are known.
	SSS Case = "SSS"
	// SAS means two sides and the angle between them are known.
	SAS Case = "SAS"
	// ASA means two angles and the side between them are known.
	ASA Case = "ASA"
	// AAS means two angles and the side opposite the first are known.
	AAS Case = "AAS"
)

// Cases lists the supported cases in display order.
var Cases = [...]Case{SSS, SAS, ASA, AAS}

// ParseCase parses a case name, ignoring case and surrounding space.
func ParseCase(s string) (Case, error) {
	c := Case(strings.ToUpper(strings.TrimSpace(s)))
	switch c {
	case SSS, SAS, ASA, AAS:
		return c, nil
	}
	return "", ErrUnknownCase
}

// Given carries the quantities a caller knows. Which fields are read
// depends on the Case passed to Solve; the others are ignored.
type Given struct {
	A     float64 `json:"a,omitempty"`
	B     float64 `json:"b,omitempty"`
	C     float64 `json:"c,omitempty"`
	Alpha float64 `json:"alpha,omitempty"`
	Beta  float64 `json:"beta,omitempty"`
	Gamma float64 `json:"gamma,omitempty"`
}

// Solve dispatches to the solver for c.
func Solve(c Case, g Given) (Triangle, error) {
	switch c {
	case SSS:
		return SolveSSS(g.A, g.B, g.C)
	case SAS:
		return SolveSAS(g.B, g.Gamma, g.A)
	case ASA:
		return SolveASA(g.Beta, g.C, g.Alpha)
	case AAS:
		return SolveAAS(g.Alpha, g.Beta, g.A)
	default:
		return Triangle{}, ErrUnknownCase
	}
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
func degrees(rad float64) float64 { return rad * 180 / math.Pi }

func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func angleValid(deg float64) bool {
	return deg > 0 && deg < 180
}

func sidesValid(a, b, c float64) bool {
	return finitePositive(a) && finitePositive(b) && finitePositive(c) &&
		a+b > c && a+c > b && b+c > a
}
