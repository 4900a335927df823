package placement

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woozymasta/jpmesh/internal/geo"
	"github.com/woozymasta/jpmesh/internal/meshcode"
)

const tokyoModel = "13100_tokyo23-ku_2020_obj_3_op/bldg/lod1/53393599_bldg_6677.obj"

func TestParseModelName(t *testing.T) {
	m, err := ParseModelName(tokyoModel)
	require.NoError(t, err)
	assert.Equal(t, "53393599", m.MeshCode)
	assert.Equal(t, 6677, m.EPSG)
	assert.Equal(t, 9, m.System)
	assert.Equal(t, "53393599_bldg_6677.obj", m.Base())

	m, err = ParseModelName("53393599_bldg_4326.obj")
	require.NoError(t, err)
	assert.Equal(t, 4326, m.EPSG)
	assert.Zero(t, m.System)

	_, err = ParseModelName("texture.jpg")
	require.ErrorIs(t, err, ErrNoMeshCode)

	_, err = ParseModelName("22222_bldg_6677.obj")
	require.ErrorIs(t, err, meshcode.ErrInvalidLength)
}

func TestPlaceAtOrigin(t *testing.T) {
	origin, err := meshcode.Decode("53393599")
	require.NoError(t, err)

	pl, err := NewPlacer(origin).Place(tokyoModel)
	require.NoError(t, err)

	assert.Equal(t, origin, pl.Corner)
	assert.Equal(t, geo.Offset{}, pl.Position)
	assert.Zero(t, pl.Distance)

	require.NotNil(t, pl.Shift)
	assert.InDelta(t, -8676.937623302472, pl.Shift.X, 1e-6)
	assert.Zero(t, pl.Shift.Y)
	assert.InDelta(t, 37901.89013239415, pl.Shift.Z, 1e-6)
}

func TestPlaceNeighbour(t *testing.T) {
	origin, err := meshcode.Decode("53393599")
	require.NoError(t, err)
	placer := NewPlacer(origin)

	// 53393690 is the cell directly east of 53393599 (next secondary column)
	east, err := placer.Place("53393690_bldg_6677.obj")
	require.NoError(t, err)
	assert.InDelta(t, 1130, east.Position.X, 5, "one standard cell is about 1.13 km wide here")
	assert.InDelta(t, 0, east.Position.Z, 5)

	north, err := placer.Place("53394509_bldg_6677.obj")
	require.NoError(t, err)
	assert.InDelta(t, -925, north.Position.Z, 5, "one standard cell is about 925 m high")
}

func TestPlaceWithoutSystem(t *testing.T) {
	pl, err := NewPlacer(geo.NewPoint(35.6, 139.7)).Place("53393599_bldg_4326.obj")
	require.NoError(t, err)
	assert.Nil(t, pl.Shift)
}

func TestPlaceAll(t *testing.T) {
	origin := geo.NewPoint(35.65833333333333, 139.7375)
	placements := NewPlacer(origin).PlaceAll([]string{
		tokyoModel,
		"readme.txt",
		"53393690_bldg_6677.obj",
		"22222_bldg_6677.obj",
		"30365013_bldg_6669.obj",
	})

	require.Len(t, placements, 3)
	assert.Equal(t, "53393599", placements[0].MeshCode)
	assert.Equal(t, "53393690", placements[1].MeshCode)
	assert.Greater(t, placements[2].Distance, MaxReliableDistance)
}

func TestFeatureCollection(t *testing.T) {
	origin := geo.NewPoint(35.65833333333333, 139.7375)
	placements := NewPlacer(origin).PlaceAll([]string{tokyoModel, "53393599_bldg_4326.obj"})

	fc := FeatureCollection(placements)
	require.Len(t, fc.Features, 2)

	f := fc.Features[0]
	pt, ok := f.Geometry.(orb.Point)
	require.True(t, ok)
	assert.Equal(t, origin.Orb(), pt)
	assert.Equal(t, "53393599_bldg_6677.obj", f.Properties["name"])
	assert.Equal(t, 9, f.Properties["system"])

	_, ok = fc.Features[1].Properties["system"]
	assert.False(t, ok)
}
