// Package tmerc implements the Gauss-Krüger (transverse Mercator) conformal
// projection used by the Japan plane rectangular coordinate systems, on the
// GRS80 ellipsoid, for an arbitrary origin.
//
// All functions are pure; a Zone is an immutable value that can be shared
// between goroutines and reused for any number of points.
//
// Accuracy is sub-millimetre within a few hundred kilometres of the zone's
// central meridian and degrades silently beyond that. No range check is made.
package tmerc

import (
	"math"

	"github.com/woozymasta/jpmesh/internal/geo"
)

// Zone holds the constants derived from one projection origin.
type Zone struct {
	Origin geo.Point `json:"origin" yaml:"origin"`
	// MeridianArc is S̄, the scaled meridian arc from the equator to the origin latitude.
	MeridianArc float64 `json:"meridian_arc" yaml:"meridian_arc"`
	// Radius is Ā, the scaled rectifying radius.
	Radius float64 `json:"radius" yaml:"radius"`
}

// BuildZone derives the zone constants for origin.
func BuildZone(origin geo.Point) Zone {
	phi0 := geo.Radians(origin.Lat)

	var sum float64
	for j := 1; j <= 5; j++ {
		sum += largeA[j] * math.Sin(2*float64(j)*phi0)
	}

	coef := OriginScale * SemiMajorAxis / (1 + N)
	return Zone{
		Origin:      origin,
		MeridianArc: coef * (largeA[0]*phi0 + sum),
		Radius:      coef * largeA[0],
	}
}
