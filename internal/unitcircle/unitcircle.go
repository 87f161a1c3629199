// Package unitcircle holds the exact trigonometric values of the standard
// reference angles.
package unitcircle

import (
	"math"
	"slices"
)

// Entry is one reference angle on the unit circle.
type Entry struct {
	Degrees int     `json:"degrees"`
	Radians string  `json:"radians"`
	Cos     string  `json:"cos"`
	Sin     string  `json:"sin"`
	CosVal  float64 `json:"cos_value"`
	SinVal  float64 `json:"sin_value"`
}

// Tan returns the exact tangent when it is defined.
func (e Entry) Tan() (float64, bool) {
	if e.CosVal == 0 {
		return 0, false
	}
	return e.SinVal / e.CosVal, true
}

const matchTolerance = 1e-9

var (
	half  = 0.5
	root2 = math.Sqrt2 / 2
	root3 = math.Sqrt(3) / 2
)

var entries = [...]Entry{
	{0, "0", "1", "0", 1, 0},
	{30, "π/6", "√3/2", "1/2", root3, half},
	{45, "π/4", "√2/2", "√2/2", root2, root2},
	{60, "π/3", "1/2", "√3/2", half, root3},
	{90, "π/2", "0", "1", 0, 1},
	{120, "2π/3", "-1/2", "√3/2", -half, root3},
	{135, "3π/4", "-√2/2", "√2/2", -root2, root2},
	{150, "5π/6", "-√3/2", "1/2", -root3, half},
	{180, "π", "-1", "0", -1, 0},
	{210, "7π/6", "-√3/2", "-1/2", -root3, -half},
	{225, "5π/4", "-√2/2", "-√2/2", -root2, -root2},
	{240, "4π/3", "-1/2", "-√3/2", -half, -root3},
	{270, "3π/2", "0", "-1", 0, -1},
	{300, "5π/3", "1/2", "-√3/2", half, -root3},
	{315, "7π/4", "√2/2", "-√2/2", root2, -root2},
	{330, "11π/6", "√3/2", "-1/2", root3, -half},
}

// Entries returns a copy of the table in ascending order of angle.
func Entries() []Entry {
	return slices.Clone(entries[:])
}

// Lookup returns the reference entry coterminal with deg, if any. 360 and
// its multiples match the 0 entry.
func Lookup(deg float64) (Entry, bool) {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return Entry{}, false
	}
	norm := math.Mod(deg, 360)
	if norm < 0 {
		norm += 360
	}
	if 360-norm < matchTolerance {
		norm = 0
	}
	for _, e := range entries {
		if math.Abs(norm-float64(e.Degrees)) < matchTolerance {
			return e, true
		}
	}
	return Entry{}, false
}

// Reference returns the acute reference angle of deg in [0, 90].
func Reference(deg float64) float64 {
	norm := math.Mod(deg, 360)
	if norm < 0 {
		norm += 360
	}
	switch {
	case norm <= 90:
		return norm
	case norm <= 180:
		return 180 - norm
	case norm <= 270:
		return norm - 180
	default:
		return 360 - norm
	}
}
