package geo

import (
	"math"

	orbgeo "github.com/paulmach/orb/geo"
)

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

// Distance returns the great-circle distance between two points in meters.
// It is only used to judge how far a point sits from a projection origin,
// so the spherical approximation is sufficient.
func Distance(a, b Point) float64 {
	return orbgeo.DistanceHaversine(a.Orb(), b.Orb())
}
