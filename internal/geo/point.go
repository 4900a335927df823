// Package geo holds the geodetic value types shared by the mesh code codec,
// the conformal projection and the local frame converter.
package geo

import (
	"fmt"

	"github.com/paulmach/orb"
)

// Point is a latitude/longitude pair in decimal degrees on the JGD2011 (GRS80)
// ellipsoid, which is interchangeable with WGS84 at the precision used here.
// It is a plain value: copies never alias.
type Point struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

// NewPoint builds a point from latitude and longitude in degrees.
func NewPoint(lat, lng float64) Point {
	return Point{Lat: lat, Lng: lng}
}

// Orb returns the point as an orb.Point ([lng, lat] order).
func (p Point) Orb() orb.Point {
	return orb.Point{p.Lng, p.Lat}
}

// FromOrb converts an orb.Point ([lng, lat] order) into a Point.
func FromOrb(p orb.Point) Point {
	return Point{Lat: p.Lat(), Lng: p.Lon()}
}

func (p Point) String() string {
	return fmt.Sprintf("(%.12f, %.12f)", p.Lat, p.Lng)
}

// Offset is a position in the local scene frame, in meters.
// X points east, Y is the vertical axis and Z points south (north negated),
// which is the Y-up placement space used by 3D consumers.
type Offset struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// Add returns the component-wise sum of two offsets.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y, Z: o.Z + other.Z}
}

// Sub returns the component-wise difference o - other.
func (o Offset) Sub(other Offset) Offset {
	return Offset{X: o.X - other.X, Y: o.Y - other.Y, Z: o.Z - other.Z}
}
