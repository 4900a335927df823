package placement

import (
	"fmt"
	"path"
	"regexp"
	"strconv"

	"github.com/woozymasta/jpmesh/internal/meshcode"
	"github.com/woozymasta/jpmesh/internal/tmerc"
)

var epsgSuffixRegex = regexp.MustCompile(`_(\d+)\.[a-z]+$`)

// Model describes a PLATEAU model file as far as its name tells.
type Model struct {
	Path     string `json:"path" yaml:"path"`
	MeshCode string `json:"mesh_code" yaml:"mesh_code"`
	EPSG     int    `json:"epsg,omitempty" yaml:"epsg,omitempty"`
	// System is the plane rectangular system of the geometry, 0 when the EPSG
	// code is not one of the registered systems.
	System int `json:"system,omitempty" yaml:"system,omitempty"`
}

// Base returns the file name without directories.
func (m Model) Base() string {
	return path.Base(m.Path)
}

// ParseModelName extracts the mesh code and EPSG code from a model file name
// such as 13100_tokyo23-ku_2020_obj_3_op/bldg/lod1/53393599_bldg_6677.obj.
func ParseModelName(name string) (Model, error) {
	code, ok := meshcode.FromFileName(name)
	if !ok {
		return Model{}, fmt.Errorf("%w: %s", ErrNoMeshCode, name)
	}
	if _, err := meshcode.LevelOf(code); err != nil {
		return Model{}, fmt.Errorf("%s: %w", name, err)
	}

	m := Model{Path: name, MeshCode: code}

	if match := epsgSuffixRegex.FindStringSubmatch(name); match != nil {
		m.EPSG, _ = strconv.Atoi(match[1])
	}
	if system, err := tmerc.SystemFromEPSG(m.EPSG); err == nil {
		m.System = system
	}

	return m, nil
}
