package main

import (
	"math"

	"github.com/woozymasta/jpmesh/internal/geo"
	"github.com/woozymasta/jpmesh/internal/tmerc"

	"github.com/rs/zerolog/log"
)

type zoneCommand struct {
	Zone zoneOptions `group:"Zone options"`
}

func (c *zoneCommand) Execute([]string) error {
	info, err := c.Zone.zone()
	if err != nil {
		return err
	}
	return emit(info)
}

type projectCommand struct {
	Lat float64 `long:"lat" description:"Latitude in degrees" required:"true"`
	Lng float64 `long:"lng" description:"Longitude in degrees" required:"true"`

	Zone zoneOptions `group:"Zone options"`
}

type projected struct {
	zoneInfo `yaml:",inline"`
	Point    geo.Point   `json:"point" yaml:"point"`
	Plane    tmerc.Plane `json:"plane" yaml:"plane"`
}

func (c *projectCommand) Execute([]string) error {
	info, err := c.Zone.zone()
	if err != nil {
		return err
	}

	p := geo.NewPoint(c.Lat, c.Lng)
	return emit(projected{zoneInfo: info, Point: p, Plane: tmerc.Project(p, info.Zone)})
}

type unprojectCommand struct {
	X float64 `short:"x" long:"x" description:"Northing in meters from the zone origin" required:"true"`
	Y float64 `short:"y" long:"y" description:"Easting in meters from the zone origin" required:"true"`

	Zone zoneOptions `group:"Zone options"`
}

func (c *unprojectCommand) Execute([]string) error {
	info, err := c.Zone.zone()
	if err != nil {
		return err
	}

	p := tmerc.Unproject(c.X, c.Y, info.Zone)
	return emit(projected{zoneInfo: info, Point: p, Plane: tmerc.Project(p, info.Zone)})
}

type verifyCommand struct {
	Lat       float64 `long:"lat" description:"Latitude in degrees" required:"true"`
	Lng       float64 `long:"lng" description:"Longitude in degrees" required:"true"`
	Tolerance float64 `short:"t" long:"tolerance" description:"Maximum accepted difference in meters" default:"0.01"`

	Zone zoneOptions `group:"Zone options"`
}

type verification struct {
	System    int         `json:"system" yaml:"system"`
	EPSG      int         `json:"epsg" yaml:"epsg"`
	Point     geo.Point   `json:"point" yaml:"point"`
	Plane     tmerc.Plane `json:"plane" yaml:"plane"`
	Reference [2]float64  `json:"reference" yaml:"reference"`
	Delta     float64     `json:"delta" yaml:"delta"`
	Accepted  bool        `json:"accepted" yaml:"accepted"`
}

func (c *verifyCommand) Execute([]string) error {
	info, err := c.Zone.zone()
	if err != nil {
		return err
	}
	if info.System == 0 {
		return tmerc.ErrUnknownSystem
	}

	ref, err := tmerc.Reference(info.System)
	if err != nil {
		return err
	}

	p := geo.NewPoint(c.Lat, c.Lng)
	plane := tmerc.Project(p, info.Zone)
	x, y := ref(p)

	v := verification{
		System:    info.System,
		EPSG:      info.EPSG,
		Point:     p,
		Plane:     plane,
		Reference: [2]float64{x, y},
		Delta:     math.Hypot(plane.X-x, plane.Y-y),
	}
	v.Accepted = v.Delta <= c.Tolerance

	event := log.Info()
	if !v.Accepted {
		event = log.Warn()
	}
	event.Int("system", v.System).Float64("delta", v.Delta).Msg("Projection verified")

	return emit(v)
}
