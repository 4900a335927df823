package main

import (
	"fmt"

	"github.com/woozymasta/jpmesh/internal/geo"
	"github.com/woozymasta/jpmesh/internal/meshcode"

	"github.com/paulmach/orb/geojson"
	"github.com/rs/zerolog/log"
)

type decodeCommand struct {
	GeoJSON bool `short:"g" long:"geojson" description:"Write cells as a GeoJSON FeatureCollection"`

	Args struct {
		Codes []string `positional-arg-name:"mesh-code" required:"1"`
	} `positional-args:"yes" required:"yes"`
}

type decodedCell struct {
	meshcode.Cell `yaml:",inline"`
	NorthEast     geo.Point `json:"north_east" yaml:"north_east"`
	Center        geo.Point `json:"center" yaml:"center"`
}

func (c *decodeCommand) Execute([]string) error {
	cells := make([]decodedCell, 0, len(c.Args.Codes))
	fc := geojson.NewFeatureCollection()

	for _, code := range c.Args.Codes {
		cell, err := meshcode.NewCell(code)
		if err != nil {
			log.Error().Err(err).Str("code", code).Msg("Invalid mesh code")
			continue
		}

		log.Debug().Str("code", code).Stringer("level", cell.Level).Msg("Mesh code decoded")
		cells = append(cells, decodedCell{Cell: cell, NorthEast: cell.NorthEast(), Center: cell.Center()})
		fc.Append(cell.Feature())
	}

	var err error
	if c.GeoJSON {
		err = emitGeoJSON(fc)
	} else {
		err = emit(cells)
	}
	if err != nil {
		return err
	}

	if failed := len(c.Args.Codes) - len(cells); failed > 0 {
		return fmt.Errorf("%d of %d mesh codes are invalid", failed, len(c.Args.Codes))
	}
	return nil
}

type encodeCommand struct {
	Lat   float64 `long:"lat" description:"Latitude in degrees" required:"true"`
	Lng   float64 `long:"lng" description:"Longitude in degrees" required:"true"`
	Level int     `short:"l" long:"level" description:"Mesh level as code length" choice:"4" choice:"6" choice:"8" choice:"9" choice:"10" default:"10"`
}

type encodedPoint struct {
	Point geo.Point      `json:"point" yaml:"point"`
	Code  string         `json:"code" yaml:"code"`
	Level meshcode.Level `json:"level" yaml:"level"`
}

func (c *encodeCommand) Execute([]string) error {
	p := geo.NewPoint(c.Lat, c.Lng)
	level := meshcode.Level(c.Level)

	code, err := meshcode.EncodeLevel(p, level)
	if err != nil {
		return err
	}

	log.Debug().Stringer("point", p).Str("code", code).Msg("Point encoded")
	return emit(encodedPoint{Point: p, Code: code, Level: level})
}
