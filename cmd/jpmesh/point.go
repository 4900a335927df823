package main

import (
	"errors"

	"github.com/woozymasta/jpmesh/internal/config"
	"github.com/woozymasta/jpmesh/internal/geo"
	"github.com/woozymasta/jpmesh/internal/tmerc"
)

var (
	errNoPoint  = errors.New("point required: use --mesh or --lat with --lng")
	errNoOrigin = errors.New("origin required: use --origin-mesh, --origin-lat with --origin-lng or a config file origin")
)

type pointOptions struct {
	Mesh string   `long:"mesh" description:"Point as a mesh code, its south-west corner is used"`
	Lat  *float64 `long:"lat"  description:"Latitude in degrees"`
	Lng  *float64 `long:"lng"  description:"Longitude in degrees"`
}

func (o pointOptions) point() (geo.Point, error) {
	p, err := config.Origin{Mesh: o.Mesh, Lat: o.Lat, Lng: o.Lng}.Point()
	if err != nil {
		return geo.Point{}, err
	}
	if p == nil {
		return geo.Point{}, errNoPoint
	}
	return *p, nil
}

type originOptions struct {
	Mesh string   `long:"origin-mesh" description:"Origin as a mesh code, its south-west corner is used"`
	Lat  *float64 `long:"origin-lat"  description:"Origin latitude in degrees"`
	Lng  *float64 `long:"origin-lng"  description:"Origin longitude in degrees"`
}

// origin resolves the origin from flags, falling back to the config file.
// It returns nil when neither sets one.
func (o originOptions) origin(cfg *config.Config) (*geo.Point, error) {
	origin := config.Origin{Mesh: o.Mesh, Lat: o.Lat, Lng: o.Lng}
	if !origin.IsSet() && cfg != nil {
		origin = cfg.Origin
	}
	return origin.Point()
}

type zoneOptions struct {
	System int `short:"s" long:"system" description:"Plane rectangular system number (1-19)"`
	EPSG   int `short:"e" long:"epsg"   description:"EPSG code of a plane rectangular system (JGD2000 or JGD2011)"`

	Origin originOptions `group:"Origin options"`
}

// zoneInfo describes where a zone came from.
type zoneInfo struct {
	System int        `json:"system,omitempty" yaml:"system,omitempty"`
	EPSG   int        `json:"epsg,omitempty" yaml:"epsg,omitempty"`
	Zone   tmerc.Zone `json:"zone" yaml:"zone"`
}

// zone picks a registered system first, then an explicit or configured origin.
func (o zoneOptions) zone() (zoneInfo, error) {
	system := o.System
	if o.EPSG != 0 {
		s, err := tmerc.SystemFromEPSG(o.EPSG)
		if err != nil {
			return zoneInfo{}, err
		}
		if system != 0 && system != s {
			return zoneInfo{}, errors.New("--system and --epsg disagree")
		}
		system = s
	}

	if system != 0 {
		z, err := tmerc.JapanSystem(system)
		if err != nil {
			return zoneInfo{}, err
		}
		code, _ := tmerc.EPSG(system)
		return zoneInfo{System: system, EPSG: code, Zone: z}, nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return zoneInfo{}, err
	}
	origin, err := o.Origin.origin(cfg)
	if err != nil {
		return zoneInfo{}, err
	}
	if origin == nil {
		return zoneInfo{}, errNoOrigin
	}

	return zoneInfo{Zone: tmerc.BuildZone(*origin)}, nil
}
