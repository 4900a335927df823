package placement

import "errors"

// ErrNoMeshCode indicates a model file name without an embedded mesh code.
var ErrNoMeshCode = errors.New("placement: file name has no mesh code")
