package triangle

import "math"

// EarthRadiusKm is the mean Earth radius used by Destination.
const EarthRadiusKm = 6371.0

// Destination returns the latitude and longitude, in degrees, reached by
// travelling distanceKm along a great circle from (lat, lon) with the
// given initial bearing (degrees clockwise from north).
func Destination(lat, lon, bearing, distanceKm float64) (float64, float64) {
	phi1 := radians(lat)
	lambda1 := radians(lon)
	theta := radians(bearing)
	delta := distanceKm / EarthRadiusKm

	sinPhi2 := math.Sin(phi1)*math.Cos(delta) + math.Cos(phi1)*math.Sin(delta)*math.Cos(theta)
	phi2 := math.Asin(max(-1, min(1, sinPhi2)))
	lambda2 := lambda1 + math.Atan2(
		math.Sin(theta)*math.Sin(delta)*math.Cos(phi1),
		math.Cos(delta)-math.Sin(phi1)*math.Sin(phi2),
	)

	return degrees(phi2), math.Remainder(degrees(lambda2), 360)
}
