package triangle

import "math"

// AngleOfElevation returns the angle, in degrees, at which an observer sees
// the top of an object of the given height at the given horizontal
// distance. A negative height yields a negative angle, i.e. an angle of
// depression.
func AngleOfElevation(distance, height float64) (float64, error) {
	if !finitePositive(distance) {
		return 0, ErrDistance
	}
	if math.IsNaN(height) || math.IsInf(height, 0) {
		return 0, ErrHeight
	}
	return degrees(math.Atan(height / distance)), nil
}

// HeightFromElevation returns the height of an object seen at angle
// degrees of elevation from the given horizontal distance. For an angle of
// depression the result is the depth below the observer.
func HeightFromElevation(distance, angle float64) (float64, error) {
	if !finitePositive(distance) || !(angle > 0 && angle < 90) {
		return 0, ErrElevationRange
	}
	return distance * math.Tan(radians(angle)), nil
}
