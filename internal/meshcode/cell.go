package meshcode

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/woozymasta/jpmesh/internal/geo"
)

// Cell is a decoded mesh code together with its extent.
type Cell struct {
	Code      string    `json:"code" yaml:"code"`
	Level     Level     `json:"level" yaml:"level"`
	SouthWest geo.Point `json:"south_west" yaml:"south_west"`
}

// NewCell decodes code into a Cell.
func NewCell(code string) (Cell, error) {
	sw, err := Decode(code)
	if err != nil {
		return Cell{}, err
	}
	return Cell{Code: code, Level: Level(len(code)), SouthWest: sw}, nil
}

// NorthEast returns the opposite corner of the cell.
func (c Cell) NorthEast() geo.Point {
	lat, lng := c.Level.Span()
	return geo.NewPoint(c.SouthWest.Lat+lat, c.SouthWest.Lng+lng)
}

// Center returns the midpoint of the cell.
func (c Cell) Center() geo.Point {
	lat, lng := c.Level.Span()
	return geo.NewPoint(c.SouthWest.Lat+lat/2, c.SouthWest.Lng+lng/2)
}

// Bound returns the cell rectangle.
func (c Cell) Bound() orb.Bound {
	return orb.Bound{Min: c.SouthWest.Orb(), Max: c.NorthEast().Orb()}
}

// Contains reports whether p falls inside the cell. The north and east edges
// belong to the neighbouring cells.
func (c Cell) Contains(p geo.Point) bool {
	ne := c.NorthEast()
	return p.Lat >= c.SouthWest.Lat && p.Lat < ne.Lat &&
		p.Lng >= c.SouthWest.Lng && p.Lng < ne.Lng
}

// Feature renders the cell as a GeoJSON polygon.
func (c Cell) Feature() *geojson.Feature {
	f := geojson.NewFeature(c.Bound().ToPolygon())
	f.Properties["code"] = c.Code
	f.Properties["level"] = c.Level.String()
	return f
}

// Bounds returns the rectangle of the cell addressed by code.
func Bounds(code string) (orb.Bound, error) {
	c, err := NewCell(code)
	if err != nil {
		return orb.Bound{}, err
	}
	return c.Bound(), nil
}
