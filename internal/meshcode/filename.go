package meshcode

import "regexp"

// PLATEAU model files are named {mesh}_{feature}_{epsg}.{ext},
// e.g. 53393599_bldg_6677.obj.
var fileNameRegex = regexp.MustCompile(`(\d+)_\w+_\d+\.[a-z]+$`)

// FromFileName extracts the mesh code embedded in a model file name or path.
// The digits are returned as found; decode them to validate.
func FromFileName(name string) (string, bool) {
	m := fileNameRegex.FindStringSubmatch(name)
	if m == nil {
		return "", false
	}
	return m[1], true
}
