package tile

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woozymasta/jpmesh/internal/meshcode"
)

func TestOptionsWithDefaults(t *testing.T) {
	o := Options{}.WithDefaults()
	assert.Equal(t, Options{
		Zoom:        16,
		Style:       "seamlessphoto",
		TileSize:    256,
		Dir:         "gsiTexture",
		URLTemplate: DefaultURLTemplate,
	}, o)

	o = Options{Zoom: 14, Style: "std"}.WithDefaults()
	assert.Equal(t, 14, o.Zoom)
	assert.Equal(t, "std", o.Style)
}

func TestOptionsValidate(t *testing.T) {
	require.ErrorIs(t, Options{Zoom: 25, TileSize: 256}.Validate(), ErrZoom)
	require.ErrorIs(t, Options{Zoom: 10}.Validate(), ErrTileSize)
	require.NoError(t, Options{}.WithDefaults().Validate())
}

func TestNewPlan(t *testing.T) {
	p, err := NewPlan("53393599", Options{})
	require.NoError(t, err)

	assert.Equal(t, Coordinate{Z: 16, X: 58206, Y: 25809}, p.Min)
	assert.Equal(t, Coordinate{Z: 16, X: 58208, Y: 25811}, p.Max)
	assert.Equal(t, 3, p.Columns())
	assert.Equal(t, 3, p.Rows())

	assert.Equal(t, Rect{X1: 14900848, Y1: 6607335, X2: 14901430, Y2: 6607813}, p.Inner)
	assert.Equal(t, Rect{X1: 14900736, Y1: 6607104, X2: 14901504, Y2: 6607872}, p.Outer)
	assert.Equal(t, Region{Left: 112, Top: 231, Width: 582, Height: 478}, p.Crop)
	assert.True(t, p.Outer.Contains(p.Inner))

	assert.Equal(t, filepath.Join("gsiTexture", "53393599_16.jpg"), p.Output)

	require.Len(t, p.Tiles, 9)
	first := p.Tiles[0]
	assert.Equal(t, "https://cyberjapandata.gsi.go.jp/xyz/seamlessphoto/16/58206/25809.jpg", first.URL)
	assert.Equal(t, -112, first.Left)
	assert.Equal(t, -231, first.Top)

	// row-major: second tile is one column east
	assert.Equal(t, 58207, p.Tiles[1].X)
	assert.Equal(t, 256-112, p.Tiles[1].Left)
	assert.Equal(t, 25810, p.Tiles[3].Y)
}

func TestNewPlanZoom14(t *testing.T) {
	p, err := NewPlan("53393599", Options{Zoom: 14, Style: "std", Dir: "out"})
	require.NoError(t, err)

	assert.Equal(t, Coordinate{Z: 14, X: 14551, Y: 6452}, p.Min)
	assert.Equal(t, Coordinate{Z: 14, X: 14552, Y: 6452}, p.Max)
	assert.Equal(t, Region{Left: 156, Top: 122, Width: 146, Height: 119}, p.Crop)
	assert.Len(t, p.Tiles, 2)
	assert.Equal(t, "https://cyberjapandata.gsi.go.jp/xyz/std/14/14551/6452.jpg", p.Tiles[0].URL)
	assert.Equal(t, filepath.Join("out", "53393599_14.jpg"), p.Output)
}

func TestTilesCoverCell(t *testing.T) {
	p, err := NewPlan("5339359944", Options{Zoom: 17})
	require.NoError(t, err)

	cell := p.Cell.Bound()
	for _, tl := range p.Tiles {
		assert.True(t, tl.Bound().Intersects(cell), "tile %d/%d/%d", tl.Z, tl.X, tl.Y)
	}
}

func TestNewPlanErrors(t *testing.T) {
	_, err := NewPlan("5339x599", Options{})
	require.ErrorIs(t, err, meshcode.ErrNotDecimal)

	_, err = NewPlan("53393599", Options{Zoom: 30})
	require.ErrorIs(t, err, ErrZoom)
}

func TestBuildURL(t *testing.T) {
	c := Coordinate{Z: 2, X: 1, Y: 0}
	assert.Equal(t, "https://t/std/2/1/0.png", BuildURL("https://t/{style}/{z}/{x}/{y}.png", "std", c))
	assert.Equal(t, "tms/2/1/3", BuildURL("tms/{z}/{x}/{tms_y}", "", c))
}

func TestRectExtract(t *testing.T) {
	outer := Rect{X1: 0, Y1: 0, X2: 512, Y2: 512}
	inner := Rect{X1: 10, Y1: 20, X2: 110, Y2: 70}

	assert.Equal(t, Region{Left: 10, Top: 20, Width: 100, Height: 50}, outer.Extract(inner))
	assert.True(t, outer.Contains(inner))
	assert.False(t, inner.Contains(outer))
}
