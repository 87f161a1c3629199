package triangle

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// sumTolerance is the relative tolerance on the raw angle sum before the
// unknown angles are rescaled to close the triangle.
const sumTolerance = 1e-9

// SolveSSS solves a triangle from its three sides.
//
// All three angles come from the Law of Cosines and are then rescaled so
// that they sum to 180.
func SolveSSS(a, b, c float64) (Triangle, error) {
	if !sidesValid(a, b, c) {
		return Triangle{}, ErrInequality
	}

	alpha, err := cosineAngle(b, c, a)
	if err != nil {
		return Triangle{}, err
	}
	beta, err := cosineAngle(a, c, b)
	if err != nil {
		return Triangle{}, err
	}
	gamma, err := cosineAngle(a, b, c)
	if err != nil {
		return Triangle{}, err
	}

	if err := closeAngles(0, &alpha, &beta, &gamma); err != nil {
		return Triangle{}, err
	}
	return Triangle{A: a, B: b, C: c, Alpha: alpha, Beta: beta, Gamma: gamma}, nil
}

// SolveSAS solves a triangle from sides b and a and the included angle gamma.
//
// Both remaining angles use the Law of Cosines; the Law of Sines would be
// ambiguous for obtuse angles.
func SolveSAS(b, gamma, a float64) (Triangle, error) {
	if !finitePositive(a) || !finitePositive(b) || !angleValid(gamma) {
		return Triangle{}, ErrSAS
	}

	m := max(a, b)
	an, bn := a/m, b/m
	c := m * math.Sqrt(an*an+bn*bn-2*an*bn*math.Cos(radians(gamma)))
	if !(c > 0) || math.IsInf(c, 0) {
		return Triangle{}, ErrDegenerate
	}

	alpha, err := cosineAngle(b, c, a)
	if err != nil {
		return Triangle{}, err
	}
	beta, err := cosineAngle(a, c, b)
	if err != nil {
		return Triangle{}, err
	}

	if err := closeAngles(gamma, &alpha, &beta); err != nil {
		return Triangle{}, err
	}
	return Triangle{A: a, B: b, C: c, Alpha: alpha, Beta: beta, Gamma: gamma}, nil
}

// SolveASA solves a triangle from angles beta and alpha and the side c
// between them.
func SolveASA(beta, c, alpha float64) (Triangle, error) {
	if !finitePositive(c) || !anglePairValid(alpha, beta) {
		return Triangle{}, ErrAngleSide
	}

	gamma := 180 - alpha - beta
	k := c / math.Sin(radians(gamma))
	t := Triangle{
		A:     k * math.Sin(radians(alpha)),
		B:     k * math.Sin(radians(beta)),
		C:     c,
		Alpha: alpha,
		Beta:  beta,
		Gamma: gamma,
	}
	if !sidesValid(t.A, t.B, t.C) {
		return Triangle{}, ErrDegenerate
	}
	return t, nil
}

// SolveAAS solves a triangle from angles alpha and beta and the side a
// opposite alpha.
func SolveAAS(alpha, beta, a float64) (Triangle, error) {
	if !finitePositive(a) || !anglePairValid(alpha, beta) {
		return Triangle{}, ErrAngleSide
	}

	gamma := 180 - alpha - beta
	k := a / math.Sin(radians(alpha))
	t := Triangle{
		A:     a,
		B:     k * math.Sin(radians(beta)),
		C:     k * math.Sin(radians(gamma)),
		Alpha: alpha,
		Beta:  beta,
		Gamma: gamma,
	}
	if !sidesValid(t.A, t.B, t.C) {
		return Triangle{}, ErrDegenerate
	}
	return t, nil
}

func anglePairValid(alpha, beta float64) bool {
	return angleValid(alpha) && angleValid(beta) && alpha+beta < 180
}

// cosineAngle returns the angle opposite side opp, in degrees, of the
// triangle with sides x, y and opp. Sides are scaled by the longest one
// so that squaring cannot overflow or underflow.
func cosineAngle(x, y, opp float64) (float64, error) {
	m := max(x, y, opp)
	x, y, opp = x/m, y/m, opp/m
	arg := (x*x + y*y - opp*opp) / (2 * x * y)
	if math.IsNaN(arg) || arg < -1 || arg > 1 {
		return 0, ErrAcosDomain
	}
	return degrees(math.Acos(arg)), nil
}

// closeAngles checks that known plus the unknown angles sum to 180 within
// sumTolerance and rescales the unknown angles so the sum is exact.
func closeAngles(known float64, unknown ...*float64) error {
	var sum float64
	for _, u := range unknown {
		if !(*u > 0) {
			return ErrDegenerate
		}
		sum += *u
	}
	if !scalar.EqualWithinRel(known+sum, 180, sumTolerance) {
		return ErrAngleSum
	}
	k := (180 - known) / sum
	for _, u := range unknown {
		*u *= k
	}
	return nil
}
