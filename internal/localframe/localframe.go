// Package localframe places geodetic points in a flat local scene frame
// centred on an arbitrary origin.
//
// The frame is the plane of a transverse Mercator zone built at the origin,
// remapped to a Y-up layout: east on X, zero on Y, north negated on Z.
package localframe

import (
	"github.com/woozymasta/jpmesh/internal/geo"
	"github.com/woozymasta/jpmesh/internal/tmerc"
)

// ToLocalOffset returns the offset of p from origin in meters.
// A new zone is built on every call; use FromZone to convert many points
// against the same origin.
func ToLocalOffset(p, origin geo.Point) geo.Offset {
	return FromZone(p, tmerc.BuildZone(origin))
}

// FromZone returns the offset of p from the origin of z.
// The zone origin always maps to exactly (0, 0, 0).
func FromZone(p geo.Point, z tmerc.Zone) geo.Offset {
	zero := tmerc.Project(z.Origin, z)
	return FromPlane(tmerc.Project(p, z), zero)
}

// FromPlane remaps a plane coordinate into the scene frame relative to zero.
func FromPlane(p, zero tmerc.Plane) geo.Offset {
	return geo.Offset{
		X: p.Y - zero.Y,
		Y: 0,
		Z: zero.X - p.X,
	}
}

// ToPoint is the inverse of FromZone: it returns the geodetic point at
// offset o from the origin of z. The Y component is ignored.
func ToPoint(o geo.Offset, z tmerc.Zone) geo.Point {
	zero := tmerc.Project(z.Origin, z)
	return tmerc.Unproject(zero.X-o.Z, zero.Y+o.X, z)
}

// Resolve is ToLocalOffset for optional inputs. It reports false when either
// point is missing.
func Resolve(p, origin *geo.Point) (geo.Offset, bool) {
	if p == nil || origin == nil {
		return geo.Offset{}, false
	}
	return ToLocalOffset(*p, *origin), true
}

// Shift returns the plane position of corner inside zone z, in scene axes and
// without re-centring on the zone origin. Models stored in a plane
// rectangular system are translated by the negated shift to become relative
// to their mesh corner. It reports false when either input is missing.
func Shift(corner *geo.Point, z *tmerc.Zone) (geo.Offset, bool) {
	if corner == nil || z == nil {
		return geo.Offset{}, false
	}
	return FromPlane(tmerc.Project(*corner, *z), tmerc.Plane{}), true
}
