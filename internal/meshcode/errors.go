package meshcode

import "errors"

var (
	// ErrNotDecimal indicates the code contains characters other than 0-9.
	ErrNotDecimal = errors.New("meshcode: code must contain decimal digits only")
	// ErrInvalidLength indicates the code length is not 4, 6, 8, 9 or 10.
	ErrInvalidLength = errors.New("meshcode: code length must be 4, 6, 8, 9 or 10")
	// ErrOutOfRange indicates a point lies outside the two-digit primary grid.
	ErrOutOfRange = errors.New("meshcode: point is outside the mesh grid")
)
