package tile

import (
	"errors"
	"fmt"
)

// Defaults follow the GSI tile service.
const (
	DefaultZoom        = 16
	DefaultStyle       = "seamlessphoto"
	DefaultTileSize    = 256
	DefaultDir         = "gsiTexture"
	DefaultURLTemplate = "https://cyberjapandata.gsi.go.jp/xyz/{style}/{z}/{x}/{y}.jpg"

	MaxZoom = 24
)

var (
	// ErrZoom indicates a zoom level outside 0..MaxZoom.
	ErrZoom = errors.New("tile: zoom level out of range")
	// ErrTileSize indicates a non-positive tile size.
	ErrTileSize = errors.New("tile: tile size must be positive")
)

// Options controls texture planning.
type Options struct {
	// Zoom is the tile level of detail, see https://maps.gsi.go.jp/development/siyou.html#siyou-zm
	Zoom int `yaml:"zoom,omitempty" json:"zoom"`
	// Style is the {style} part of the tile URL, see https://maps.gsi.go.jp/development/ichiran.html
	Style string `yaml:"style,omitempty" json:"style"`
	// TileSize is the pixel size of one tile.
	TileSize int `yaml:"tile_size,omitempty" json:"tile_size"`
	// Dir is where the composed texture is written.
	Dir string `yaml:"dir,omitempty" json:"dir"`
	// URLTemplate supports {style}, {z}, {x}, {y} and {tms_y}.
	URLTemplate string `yaml:"url,omitempty" json:"url"`
}

// WithDefaults returns a copy of o with unset fields filled in.
func (o Options) WithDefaults() Options {
	if o.Zoom <= 0 {
		o.Zoom = DefaultZoom
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.TileSize <= 0 {
		o.TileSize = DefaultTileSize
	}
	if o.Dir == "" {
		o.Dir = DefaultDir
	}
	if o.URLTemplate == "" {
		o.URLTemplate = DefaultURLTemplate
	}
	return o
}

// Validate checks ranges; call it after WithDefaults.
func (o Options) Validate() error {
	if o.Zoom < 0 || o.Zoom > MaxZoom {
		return fmt.Errorf("%w: %d", ErrZoom, o.Zoom)
	}
	if o.TileSize <= 0 {
		return fmt.Errorf("%w: %d", ErrTileSize, o.TileSize)
	}
	return nil
}
