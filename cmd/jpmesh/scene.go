package main

import (
	"errors"
	"fmt"

	"github.com/woozymasta/jpmesh/internal/geo"
	"github.com/woozymasta/jpmesh/internal/localframe"
	"github.com/woozymasta/jpmesh/internal/meshcode"
	"github.com/woozymasta/jpmesh/internal/placement"
	"github.com/woozymasta/jpmesh/internal/tile"

	"github.com/rs/zerolog/log"
)

type offsetCommand struct {
	Point  pointOptions  `group:"Point options"`
	Origin originOptions `group:"Origin options"`
}

type localOffset struct {
	Point    geo.Point  `json:"point" yaml:"point"`
	Origin   geo.Point  `json:"origin" yaml:"origin"`
	Offset   geo.Offset `json:"offset" yaml:"offset"`
	Distance float64    `json:"distance" yaml:"distance"`
}

func (c *offsetCommand) Execute([]string) error {
	p, err := c.Point.point()
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	origin, err := c.Origin.origin(cfg)
	if err != nil {
		return err
	}

	offset, ok := localframe.Resolve(&p, origin)
	if !ok {
		return errNoOrigin
	}

	d := geo.Distance(*origin, p)
	if d > placement.MaxReliableDistance {
		log.Warn().Float64("distance_km", d/1000).Msg("Point is far from the origin, offset accuracy degrades")
	}

	return emit(localOffset{Point: p, Origin: *origin, Offset: offset, Distance: d})
}

type tilesCommand struct {
	Zoom     int    `short:"z" long:"zoom"      description:"Tile zoom level"`
	Style    string `short:"s" long:"style"     description:"Tile style, the {style} part of the URL"`
	TileSize int    `short:"t" long:"tile-size" description:"Tile size in pixels"`
	Dir      string `short:"d" long:"dir"       description:"Directory of the composed textures"`
	URL      string `short:"u" long:"url"       description:"Tile URL template with {style} {z} {x} {y} or {tms_y}"`

	Args struct {
		Codes []string `positional-arg-name:"mesh-code"`
	} `positional-args:"yes"`
}

// options layers the flags over the config file texture section.
func (c *tilesCommand) options(base tile.Options) tile.Options {
	if c.Zoom != 0 {
		base.Zoom = c.Zoom
	}
	if c.Style != "" {
		base.Style = c.Style
	}
	if c.TileSize != 0 {
		base.TileSize = c.TileSize
	}
	if c.Dir != "" {
		base.Dir = c.Dir
	}
	if c.URL != "" {
		base.URLTemplate = c.URL
	}
	return base.WithDefaults()
}

func (c *tilesCommand) Execute([]string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var base tile.Options
	codes := c.Args.Codes
	if cfg != nil {
		base = cfg.Texture
		if len(codes) == 0 {
			codes = cfg.Meshes
		}
	}
	if len(codes) == 0 {
		return errors.New("no mesh codes given")
	}

	o := c.options(base)
	plans := make([]*tile.Plan, 0, len(codes))
	for _, code := range codes {
		plan, err := tile.NewPlan(code, o)
		if err != nil {
			return fmt.Errorf("plan %s: %w", code, err)
		}

		log.Info().
			Str("code", code).
			Int("zoom", plan.Zoom).
			Int("columns", plan.Columns()).
			Int("rows", plan.Rows()).
			Str("output", plan.Output).
			Msg("Texture planned")

		plans = append(plans, plan)
	}

	return emit(plans)
}

type placeCommand struct {
	GeoJSON bool          `short:"g" long:"geojson" description:"Write placements as a GeoJSON FeatureCollection"`
	Origin  originOptions `group:"Origin options"`

	Args struct {
		Models []string `positional-arg-name:"model"`
	} `positional-args:"yes"`
}

func (c *placeCommand) Execute([]string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	models := c.Args.Models
	if len(models) == 0 && cfg != nil {
		models = cfg.Models
	}
	if len(models) == 0 {
		return errors.New("no model files given")
	}

	origin, err := c.Origin.origin(cfg)
	if err != nil {
		return err
	}
	if origin == nil {
		// The first model's corner becomes the origin.
		m, err := placement.ParseModelName(models[0])
		if err != nil {
			return errNoOrigin
		}
		corner, err := meshcode.Decode(m.MeshCode)
		if err != nil {
			return err
		}
		origin = &corner
		log.Info().Str("model", m.Base()).Stringer("origin", corner).Msg("Using first model as origin")
	}

	placements := placement.NewPlacer(*origin).PlaceAll(models)
	log.Info().Int("placed", len(placements)).Int("total", len(models)).Msg("Models placed")

	if c.GeoJSON {
		return emitGeoJSON(placement.FeatureCollection(placements))
	}
	return emit(placements)
}
