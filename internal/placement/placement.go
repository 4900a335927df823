// Package placement positions PLATEAU model files in a local scene frame
// from the mesh code and EPSG code embedded in their names.
package placement

import (
	"github.com/paulmach/orb/geojson"
	"github.com/rs/zerolog/log"

	"github.com/woozymasta/jpmesh/internal/geo"
	"github.com/woozymasta/jpmesh/internal/localframe"
	"github.com/woozymasta/jpmesh/internal/meshcode"
	"github.com/woozymasta/jpmesh/internal/tmerc"
)

// MaxReliableDistance is the distance from the origin in meters beyond which
// placements are reported as inaccurate.
const MaxReliableDistance = 300_000.0

// Placement is where a model goes in the scene.
type Placement struct {
	Model `yaml:",inline"`
	// Corner is the south-west corner of the model's mesh cell.
	Corner geo.Point `json:"corner" yaml:"corner"`
	// Shift translates geometry stored in the model's plane rectangular
	// system so that it becomes relative to Corner. Nil when the system is unknown.
	Shift *geo.Offset `json:"shift,omitempty" yaml:"shift,omitempty"`
	// Position is the offset of Corner from the scene origin.
	Position geo.Offset `json:"position" yaml:"position"`
	// Distance is the great-circle distance from the scene origin in meters.
	Distance float64 `json:"distance" yaml:"distance"`
}

// Placer positions models around one scene origin, reusing its zone.
type Placer struct {
	origin geo.Point
	zone   tmerc.Zone
}

// NewPlacer builds a Placer for origin.
func NewPlacer(origin geo.Point) *Placer {
	return &Placer{origin: origin, zone: tmerc.BuildZone(origin)}
}

// Origin returns the scene origin.
func (p *Placer) Origin() geo.Point {
	return p.origin
}

// Place positions a single model file.
func (p *Placer) Place(name string) (Placement, error) {
	m, err := ParseModelName(name)
	if err != nil {
		return Placement{}, err
	}

	corner, err := meshcode.Decode(m.MeshCode)
	if err != nil {
		return Placement{}, err
	}

	pl := Placement{
		Model:    m,
		Corner:   corner,
		Position: localframe.FromZone(corner, p.zone),
		Distance: geo.Distance(p.origin, corner),
	}

	var zone *tmerc.Zone
	if m.System != 0 {
		if z, err := tmerc.JapanSystem(m.System); err == nil {
			zone = &z
		}
	}
	if shift, ok := localframe.Shift(&corner, zone); ok {
		pl.Shift = &shift
	}

	return pl, nil
}

// PlaceAll positions every model it can. Names that cannot be placed are
// logged and skipped.
func (p *Placer) PlaceAll(names []string) []Placement {
	placements := make([]Placement, 0, len(names))

	for _, name := range names {
		pl, err := p.Place(name)
		if err != nil {
			log.Warn().Err(err).Str("model", name).Msg("Skipping model")
			continue
		}

		if pl.Shift == nil {
			log.Warn().
				Str("model", name).
				Int("epsg", pl.EPSG).
				Msg("Model is not in a registered plane rectangular system, shift unavailable")
		}
		if pl.Distance > MaxReliableDistance {
			log.Warn().
				Str("model", name).
				Float64("distance_km", pl.Distance/1000).
				Msg("Model is far from the origin, position accuracy degrades")
		}

		log.Debug().
			Str("model", pl.Base()).
			Str("mesh", pl.MeshCode).
			Float64("x", pl.Position.X).
			Float64("z", pl.Position.Z).
			Msg("Model placed")

		placements = append(placements, pl)
	}

	return placements
}

// FeatureCollection renders placements as GeoJSON points at their corners.
func FeatureCollection(placements []Placement) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, pl := range placements {
		f := geojson.NewFeature(pl.Corner.Orb())
		f.Properties["name"] = pl.Base()
		f.Properties["mesh_code"] = pl.MeshCode
		f.Properties["x"] = pl.Position.X
		f.Properties["z"] = pl.Position.Z
		if pl.System != 0 {
			f.Properties["system"] = pl.System
		}
		fc.Append(f)
	}
	return fc
}
