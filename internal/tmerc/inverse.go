package tmerc

import (
	"math"

	"github.com/woozymasta/jpmesh/internal/geo"
)

// Unproject converts plane coordinates of zone z back to latitude/longitude.
// x is north and y is east of the zone origin, in meters.
func Unproject(x, y float64, z Zone) geo.Point {
	xi := (x + z.MeridianArc) / z.Radius
	eta := y / z.Radius

	xiDash, etaDash := xi, eta
	for j := 1; j <= 5; j++ {
		j2 := 2 * float64(j)
		xiDash -= beta[j] * math.Sin(j2*xi) * math.Cosh(j2*eta)
		etaDash -= beta[j] * math.Cos(j2*xi) * math.Sinh(j2*eta)
	}

	chi := math.Asin(math.Sin(xiDash) / math.Cosh(etaDash))

	phi := chi
	for j := 1; j <= 6; j++ {
		phi += delta[j] * math.Sin(2*float64(j)*chi)
	}

	lambda := geo.Radians(z.Origin.Lng) + math.Atan(math.Sinh(etaDash)/math.Cos(xiDash))

	return geo.NewPoint(geo.Degrees(phi), geo.Degrees(lambda))
}

// UnprojectPlane is Unproject for a Plane value; convergence and scale are ignored.
func UnprojectPlane(p Plane, z Zone) geo.Point {
	return Unproject(p.X, p.Y, z)
}
