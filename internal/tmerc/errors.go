package tmerc

import "errors"

var (
	// ErrUnknownSystem indicates a plane rectangular system number outside 1..19.
	ErrUnknownSystem = errors.New("tmerc: unknown plane rectangular coordinate system")
	// ErrUnknownEPSG indicates an EPSG code that is not a Japan plane rectangular system.
	ErrUnknownEPSG = errors.New("tmerc: EPSG code is not a Japan plane rectangular system")
)
