package tmerc

import (
	"github.com/wroge/wgs84"

	"github.com/woozymasta/jpmesh/internal/geo"
)

type spheroid struct {
	a, fi float64
}

func (s spheroid) A() float64 {
	return s.a
}

func (s spheroid) Fi() float64 {
	return s.fi
}

// jgd2011 is GRS80 with no shift against WGS84.
var jgd2011 = wgs84.Datum{
	Spheroid: spheroid{a: SemiMajorAxis, fi: InverseFlattening},
	Area: wgs84.AreaFunc(func(lon, lat float64) bool {
		return lon >= 122 && lon <= 154 && lat >= 20 && lat <= 46
	}),
}

// Reference returns an independent transform for registered system 1..19
// built on the wroge/wgs84 transverse Mercator. It yields x (north) and y
// (east) in meters like Project and is meant for cross-checking it.
// +proj=tmerc +lat_0={lat} +lon_0={lng} +k=0.9999 +x_0=0 +y_0=0 +ellps=GRS80
func Reference(system int) (func(p geo.Point) (x, y float64), error) {
	origin, err := JapanOrigin(system)
	if err != nil {
		return nil, err
	}
	code, err := EPSG(system)
	if err != nil {
		return nil, err
	}

	proj := jgd2011.TransverseMercator(origin.Lng, origin.Lat, OriginScale, 0, 0)
	epsg := wgs84.EPSG()
	epsg.Add(code, proj)
	transform := wgs84.Transform(jgd2011.LonLat(), epsg.Code(code))

	return func(p geo.Point) (float64, float64) {
		east, north, _ := transform(p.Lng, p.Lat, 0)
		return north, east
	}, nil
}
