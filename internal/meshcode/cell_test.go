package meshcode

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCell(t *testing.T) {
	c, err := NewCell(tokyoTowerCode)
	require.NoError(t, err)
	assert.Equal(t, Standard, c.Level)

	ne := c.NorthEast()
	assert.InDelta(t, c.SouthWest.Lat+LatitudeUnit, ne.Lat, 1e-12)
	assert.InDelta(t, c.SouthWest.Lng+LongitudeUnit, ne.Lng, 1e-12)

	center := c.Center()
	assert.True(t, c.Contains(center))
	assert.True(t, c.Contains(c.SouthWest))
	assert.False(t, c.Contains(ne), "north-east corner belongs to the neighbour")
	assert.True(t, c.Contains(tokyoTower))
}

func TestBounds(t *testing.T) {
	b, err := Bounds("5339")
	require.NoError(t, err)
	assert.InDelta(t, 139.0, b.Min.Lon(), 1e-12)
	assert.InDelta(t, 140.0, b.Max.Lon(), 1e-12)
	assert.InDelta(t, 53*PrimaryLatitudeUnit, b.Min.Lat(), 1e-12)
	assert.InDelta(t, 54*PrimaryLatitudeUnit, b.Max.Lat(), 1e-12)

	_, err = Bounds("abc")
	require.ErrorIs(t, err, ErrNotDecimal)
}

func TestCellFeature(t *testing.T) {
	c, err := NewCell(tokyoTowerCode)
	require.NoError(t, err)

	f := c.Feature()
	poly, ok := f.Geometry.(orb.Polygon)
	require.True(t, ok)
	require.Len(t, poly, 1)
	assert.Len(t, poly[0], 5)
	assert.Equal(t, tokyoTowerCode, f.Properties["code"])
	assert.Equal(t, "standard", f.Properties["level"])
}

func TestFromFileName(t *testing.T) {
	tests := []struct {
		name string
		code string
		ok   bool
	}{
		{"13100_tokyo23-ku_2020_obj_3_op/bldg/lod1/53393599_bldg_6677.obj", "53393599", true},
		{"../demoSrc/53393599_bldg_6677.obj", "53393599", true},
		{"533935_dem_6677.obj", "533935", true},
		{"53393599_bldg_lod2_6677.gltf", "53393599", true},
		{"readme.md", "", false},
		{"53393599.obj", "", false},
	}

	for _, tt := range tests {
		code, ok := FromFileName(tt.name)
		assert.Equal(t, tt.ok, ok, tt.name)
		assert.Equal(t, tt.code, code, tt.name)
	}
}
