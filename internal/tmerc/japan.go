package tmerc

import (
	"fmt"

	"github.com/woozymasta/jpmesh/internal/geo"
)

// JapanSystems is the number of registered plane rectangular systems.
const JapanSystems = 19

// EPSG code ranges of the registered systems I..XIX.
const (
	EPSGJGD2011First = 6669
	EPSGJGD2000First = 2443
)

// Registered origins of systems I..XIX (MLIT notice No. 9, 2002).
var japanOrigins = [JapanSystems]geo.Point{
	{Lat: 33, Lng: 129.5},
	{Lat: 33, Lng: 131},
	{Lat: 36, Lng: 132 + 10.0/60},
	{Lat: 33, Lng: 133.5},
	{Lat: 36, Lng: 134 + 20.0/60},
	{Lat: 36, Lng: 136},
	{Lat: 36, Lng: 137 + 10.0/60},
	{Lat: 36, Lng: 138.5},
	{Lat: 36, Lng: 139 + 50.0/60},
	{Lat: 40, Lng: 140 + 50.0/60},
	{Lat: 44, Lng: 140.25},
	{Lat: 44, Lng: 142.25},
	{Lat: 44, Lng: 144.25},
	{Lat: 26, Lng: 142},
	{Lat: 26, Lng: 127.5},
	{Lat: 26, Lng: 124},
	{Lat: 26, Lng: 131},
	{Lat: 20, Lng: 136},
	{Lat: 26, Lng: 154},
}

// JapanOrigin returns the registered origin of system 1..19.
func JapanOrigin(system int) (geo.Point, error) {
	if system < 1 || system > JapanSystems {
		return geo.Point{}, fmt.Errorf("%w: %d", ErrUnknownSystem, system)
	}
	return japanOrigins[system-1], nil
}

// JapanSystem returns the zone of registered system 1..19.
// The constants are derived from the registered origin with BuildZone.
func JapanSystem(system int) (Zone, error) {
	origin, err := JapanOrigin(system)
	if err != nil {
		return Zone{}, err
	}
	return BuildZone(origin), nil
}

// SystemFromEPSG maps a JGD2011 (6669-6687) or JGD2000 (2443-2461) plane
// rectangular EPSG code to its system number.
func SystemFromEPSG(code int) (int, error) {
	switch {
	case code >= EPSGJGD2011First && code < EPSGJGD2011First+JapanSystems:
		return code - EPSGJGD2011First + 1, nil
	case code >= EPSGJGD2000First && code < EPSGJGD2000First+JapanSystems:
		return code - EPSGJGD2000First + 1, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrUnknownEPSG, code)
}

// EPSG returns the JGD2011 EPSG code of system 1..19.
func EPSG(system int) (int, error) {
	if system < 1 || system > JapanSystems {
		return 0, fmt.Errorf("%w: %d", ErrUnknownSystem, system)
	}
	return EPSGJGD2011First + system - 1, nil
}
