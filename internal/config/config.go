// Package config handles configuration loading and shared data structures.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/woozymasta/jpmesh/internal/geo"
	"github.com/woozymasta/jpmesh/internal/meshcode"
	"github.com/woozymasta/jpmesh/internal/tile"

	"gopkg.in/yaml.v3"
)

var (
	// ErrPartialOrigin indicates only one of lat/lng is set.
	ErrPartialOrigin = errors.New("config: origin needs both lat and lng")
	// ErrAmbiguousOrigin indicates both a mesh code and lat/lng are set.
	ErrAmbiguousOrigin = errors.New("config: origin must be a mesh code or lat/lng, not both")
)

// Config represents the root configuration file structure.
type Config struct {
	// Origin is the scene origin every position is relative to.
	Origin Origin `yaml:"origin,omitempty"`
	// Models are PLATEAU model file names to place.
	Models []string `yaml:"models,omitempty"`
	// Meshes are mesh codes to plan textures for.
	Meshes  []string     `yaml:"meshes,omitempty"`
	Texture tile.Options `yaml:"texture,omitempty"`
}

// Origin is either a mesh code (its south-west corner) or an explicit point.
type Origin struct {
	Mesh string   `yaml:"mesh,omitempty"`
	Lat  *float64 `yaml:"lat,omitempty"`
	Lng  *float64 `yaml:"lng,omitempty"`
}

// IsSet reports whether any origin field is present.
func (o Origin) IsSet() bool {
	return o.Mesh != "" || o.Lat != nil || o.Lng != nil
}

// Point resolves the origin. It returns nil without error when the origin is
// not set at all.
func (o Origin) Point() (*geo.Point, error) {
	hasLatLng := o.Lat != nil || o.Lng != nil

	switch {
	case !o.IsSet():
		return nil, nil
	case o.Mesh != "" && hasLatLng:
		return nil, ErrAmbiguousOrigin
	case o.Mesh != "":
		p, err := meshcode.Decode(o.Mesh)
		if err != nil {
			return nil, fmt.Errorf("origin: %w", err)
		}
		return &p, nil
	case o.Lat == nil || o.Lng == nil:
		return nil, ErrPartialOrigin
	}

	p := geo.NewPoint(*o.Lat, *o.Lng)
	return &p, nil
}

// Load reads and parses the YAML configuration file from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
