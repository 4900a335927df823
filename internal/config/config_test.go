package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woozymasta/jpmesh/internal/geo"
	"github.com/woozymasta/jpmesh/internal/meshcode"
)

const sample = `
origin:
  mesh: "53393599"
models:
  - 13100_tokyo23-ku_2020_obj_3_op/bldg/lod1/53393599_bldg_6677.obj
  - 53393690_bldg_6677.obj
meshes:
  - "53393599"
texture:
  zoom: 17
  style: std
  tile_size: 512
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "53393599", cfg.Origin.Mesh)
	assert.Len(t, cfg.Models, 2)
	assert.Equal(t, []string{"53393599"}, cfg.Meshes)
	assert.Equal(t, 17, cfg.Texture.Zoom)
	assert.Equal(t, "std", cfg.Texture.Style)
	assert.Equal(t, 512, cfg.Texture.TileSize)
	assert.Empty(t, cfg.Texture.Dir)

	p, err := cfg.Origin.Point()
	require.NoError(t, err)
	require.NotNil(t, p)
	want, _ := meshcode.Decode("53393599")
	assert.Equal(t, want, *p)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("origin: [1, 2"), 0644))
	_, err = Load(path)
	require.Error(t, err)
}

func TestOriginPoint(t *testing.T) {
	lat, lng := 35.0, 139.0

	p, err := Origin{}.Point()
	require.NoError(t, err)
	assert.Nil(t, p, "unset origin is absent")

	p, err = Origin{Lat: &lat, Lng: &lng}.Point()
	require.NoError(t, err)
	assert.Equal(t, geo.NewPoint(35, 139), *p)

	_, err = Origin{Lat: &lat}.Point()
	require.ErrorIs(t, err, ErrPartialOrigin)

	_, err = Origin{Mesh: "5339", Lng: &lng}.Point()
	require.ErrorIs(t, err, ErrAmbiguousOrigin)

	_, err = Origin{Mesh: "533"}.Point()
	require.ErrorIs(t, err, meshcode.ErrInvalidLength)
}
