// Package tile plans the raster tiles that cover a mesh cell: which tiles to
// fetch, where each one lands in the composed image and how to crop the
// result to the cell. Fetching and compositing are left to the caller.
package tile

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/maptile"

	"github.com/woozymasta/jpmesh/internal/meshcode"
)

// Coordinate represents a specific tile.
type Coordinate struct {
	Z int `json:"z" yaml:"z"`
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Bound returns the geographic extent of the tile.
func (c Coordinate) Bound() orb.Bound {
	return maptile.New(uint32(c.X), uint32(c.Y), maptile.Zoom(c.Z)).Bound()
}

// Tile is one tile of a plan.
type Tile struct {
	Coordinate `yaml:",inline"`
	URL        string `json:"url" yaml:"url"`
	// Left and Top place the tile in the cropped texture; they can be negative.
	Left int `json:"left" yaml:"left"`
	Top  int `json:"top" yaml:"top"`
}

// Plan is the tile layout of one mesh cell.
type Plan struct {
	Cell     meshcode.Cell `json:"cell" yaml:"cell"`
	Zoom     int           `json:"zoom" yaml:"zoom"`
	TileSize int           `json:"tile_size" yaml:"tile_size"`
	Min      Coordinate    `json:"min" yaml:"min"`
	Max      Coordinate    `json:"max" yaml:"max"`
	// Inner is the cell in global pixels, Outer the covering tile block.
	Inner Rect `json:"inner" yaml:"inner"`
	Outer Rect `json:"outer" yaml:"outer"`
	// Crop is Inner relative to Outer.
	Crop   Region `json:"crop" yaml:"crop"`
	Tiles  []Tile `json:"tiles" yaml:"tiles"`
	Output string `json:"output" yaml:"output"`
}

// Columns returns the width of the tile block in tiles.
func (p *Plan) Columns() int {
	return p.Max.X - p.Min.X + 1
}

// Rows returns the height of the tile block in tiles.
func (p *Plan) Rows() int {
	return p.Max.Y - p.Min.Y + 1
}

// NewPlan lays out the tiles covering the cell addressed by code.
func NewPlan(code string, opts Options) (*Plan, error) {
	opts = opts.WithDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	cell, err := meshcode.NewCell(code)
	if err != nil {
		return nil, err
	}

	size := opts.TileSize
	sw := pixel(cell.SouthWest.Orb(), opts.Zoom, size)
	ne := pixel(cell.NorthEast().Orb(), opts.Zoom, size)

	p := &Plan{
		Cell:     cell,
		Zoom:     opts.Zoom,
		TileSize: size,
		Min:      Coordinate{Z: opts.Zoom, X: max(0, sw[0]/size), Y: max(0, ne[1]/size)},
		Max:      Coordinate{Z: opts.Zoom, X: max(0, (ne[0]-1)/size), Y: max(0, (sw[1]-1)/size)},
		Inner:    Rect{X1: sw[0], Y1: ne[1], X2: ne[0], Y2: sw[1]},
		Output:   filepath.Join(opts.Dir, fmt.Sprintf("%s_%d.jpg", code, opts.Zoom)),
	}
	p.Outer = Rect{
		X1: p.Min.X * size,
		Y1: p.Min.Y * size,
		X2: (p.Max.X + 1) * size,
		Y2: (p.Max.Y + 1) * size,
	}
	p.Crop = p.Outer.Extract(p.Inner)

	p.Tiles = make([]Tile, 0, p.Columns()*p.Rows())
	for y := p.Min.Y; y <= p.Max.Y; y++ {
		for x := p.Min.X; x <= p.Max.X; x++ {
			c := Coordinate{Z: opts.Zoom, X: x, Y: y}
			p.Tiles = append(p.Tiles, Tile{
				Coordinate: c,
				URL:        BuildURL(opts.URLTemplate, opts.Style, c),
				Left:       (x-p.Min.X)*size - p.Crop.Left,
				Top:        (y-p.Min.Y)*size - p.Crop.Top,
			})
		}
	}

	return p, nil
}

// pixel returns the global spherical Mercator pixel of ll, rounded and
// clamped to the world at zoom z.
func pixel(ll orb.Point, z, size int) [2]int {
	f := maptile.Fraction(ll, maptile.Zoom(z))
	world := float64(size) * math.Exp2(float64(z))

	clamp := func(v float64) int {
		return int(math.Min(math.Max(math.Round(v), 0), world))
	}
	return [2]int{clamp(f[0] * float64(size)), clamp(f[1] * float64(size))}
}

// BuildURL expands a tile URL template.
func BuildURL(tpl, style string, c Coordinate) string {
	s := strings.ReplaceAll(tpl, "{style}", style)
	s = strings.ReplaceAll(s, "{z}", fmt.Sprintf("%d", c.Z))
	s = strings.ReplaceAll(s, "{x}", fmt.Sprintf("%d", c.X))
	s = strings.ReplaceAll(s, "{y}", fmt.Sprintf("%d", c.Y))

	if strings.Contains(s, "{tms_y}") {
		maxCoord := (1 << c.Z) - 1
		tmsY := maxCoord - c.Y
		s = strings.ReplaceAll(s, "{tms_y}", fmt.Sprintf("%d", tmsY))
	}

	return s
}
