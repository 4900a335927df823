package tmerc

import (
	"math"

	"github.com/woozymasta/jpmesh/internal/geo"
)

// Plane is a point on the projection plane.
type Plane struct {
	// X is the distance north of the zone origin in meters.
	X float64 `json:"x" yaml:"x"`
	// Y is the distance east of the zone origin in meters.
	Y float64 `json:"y" yaml:"y"`
	// Convergence is the true north direction angle in degrees, that is the
	// meridian convergence with its sign flipped. It is negative east of the
	// central meridian in the northern hemisphere.
	Convergence float64 `json:"convergence" yaml:"convergence"`
	// Scale is the point scale factor.
	Scale float64 `json:"scale" yaml:"scale"`
}

// Project converts p to plane coordinates of zone z.
func Project(p geo.Point, z Zone) Plane {
	phi := geo.Radians(p.Lat)
	dLambda := geo.Radians(p.Lng) - geo.Radians(z.Origin.Lng)
	cosDL, sinDL := math.Cos(dLambda), math.Sin(dLambda)

	sinPhi := math.Sin(phi)
	t := math.Sinh(math.Atanh(sinPhi) - Eccentricity*math.Atanh(Eccentricity*sinPhi))
	tBar := math.Sqrt(1 + t*t)

	xi := math.Atan(t / cosDL)
	eta := math.Atanh(sinDL / tBar)

	var dx, dy, tau float64
	sigma := 1.0
	for j := 1; j <= 5; j++ {
		j2 := 2 * float64(j)
		sin2xi, cos2xi := math.Sin(j2*xi), math.Cos(j2*xi)
		sinh2eta, cosh2eta := math.Sinh(j2*eta), math.Cosh(j2*eta)

		dx += alpha[j] * sin2xi * cosh2eta
		dy += alpha[j] * cos2xi * sinh2eta
		sigma += j2 * alpha[j] * cos2xi * cosh2eta
		tau += j2 * alpha[j] * sin2xi * sinh2eta
	}

	gamma := math.Atan((tau*tBar*cosDL + sigma*t*sinDL) / (sigma*tBar*cosDL - tau*t*sinDL))

	tanTerm := (1 - N) / (1 + N) * math.Tan(phi)
	scale := z.Radius / SemiMajorAxis *
		math.Sqrt((sigma*sigma+tau*tau)/(t*t+cosDL*cosDL)*(1+tanTerm*tanTerm))

	return Plane{
		X:           z.Radius*(xi+dx) - z.MeridianArc,
		Y:           z.Radius * (eta + dy),
		Convergence: geo.Degrees(-gamma),
		Scale:       scale,
	}
}
