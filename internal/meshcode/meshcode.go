// Package meshcode converts between the Standard Regional Mesh Code defined by
// the Statistics Bureau of Japan and geodetic coordinates.
//
// A code addresses a nested rectangle on a grid anchored at 0°N 100°E:
//
//	digits 0-3  primary cell, 2/3° x 1°
//	digits 4-5  secondary cell, primary split 8 x 8
//	digits 6-7  standard (tertiary) cell, secondary split 10 x 10
//	digit  8    half mesh quadrant 1..4 (SW, SE, NW, NE)
//	digit  9    quarter mesh quadrant 1..4
//
// Decoded points are always the south-west corner of the addressed cell.
package meshcode

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/woozymasta/jpmesh/internal/geo"
)

// Cell spans in degrees.
const (
	PrimaryLatitudeUnit  = 40.0 / 60.0
	PrimaryLongitudeUnit = 1.0

	SecondaryLatitudeUnit  = PrimaryLatitudeUnit / 8
	SecondaryLongitudeUnit = PrimaryLongitudeUnit / 8

	// LatitudeUnit is the height of one standard (8 digit) mesh cell.
	LatitudeUnit = SecondaryLatitudeUnit / 10
	// LongitudeUnit is the width of one standard (8 digit) mesh cell.
	LongitudeUnit = SecondaryLongitudeUnit / 10

	// LongitudeOffset is the longitude of the grid's western edge.
	LongitudeOffset = 100.0
)

// Level is the precision of a code, expressed as its length.
type Level int

// Supported levels.
const (
	Primary   Level = 4
	Secondary Level = 6
	Standard  Level = 8
	Half      Level = 9
	Quarter   Level = 10
)

// Span returns the height and width of a cell at this level in degrees.
func (l Level) Span() (lat, lng float64) {
	for _, g := range grids {
		if g.level == l {
			return g.latUnit, g.lngUnit
		}
	}
	return 0, 0
}

// Valid reports whether l is one of the supported levels.
func (l Level) Valid() bool {
	switch l {
	case Primary, Secondary, Standard, Half, Quarter:
		return true
	}
	return false
}

func (l Level) String() string {
	switch l {
	case Primary:
		return "primary"
	case Secondary:
		return "secondary"
	case Standard:
		return "standard"
	case Half:
		return "half"
	case Quarter:
		return "quarter"
	}
	return "Level(" + strconv.Itoa(int(l)) + ")"
}

// grid is one nested level of the hierarchy.
type grid struct {
	level    Level   // code length once this level is appended
	digits   int     // digits per axis, 1 for quadrant levels
	latUnit  float64 // cell height in degrees
	lngUnit  float64 // cell width in degrees
	lngShift float64 // added to longitude when this level is decoded
	steps    int     // cell side in quarter mesh steps
	quadrant bool
}

var grids = [...]grid{
	{level: Primary, digits: 2, latUnit: PrimaryLatitudeUnit, lngUnit: PrimaryLongitudeUnit, lngShift: LongitudeOffset, steps: 320},
	{level: Secondary, digits: 1, latUnit: SecondaryLatitudeUnit, lngUnit: SecondaryLongitudeUnit, steps: 40},
	{level: Standard, digits: 1, latUnit: LatitudeUnit, lngUnit: LongitudeUnit, steps: 4},
	{level: Half, digits: 1, latUnit: LatitudeUnit / 2, lngUnit: LongitudeUnit / 2, steps: 2, quadrant: true},
	{level: Quarter, digits: 1, latUnit: LatitudeUnit / 4, lngUnit: LongitudeUnit / 4, steps: 1, quadrant: true},
}

// Quarter mesh steps per degree. One primary cell is 320 steps on each axis.
const (
	latSteps = 480
	lngSteps = 320
	maxSteps = 100 * 320

	// gridTolerance absorbs the rounding left in a decoded corner so that it
	// encodes back into its own cell. It is a fraction of a quarter mesh step.
	gridTolerance = 1e-7
)

// LevelOf validates code and returns its level.
func LevelOf(code string) (Level, error) {
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return 0, fmt.Errorf("%w: %q", ErrNotDecimal, code)
		}
	}

	l := Level(len(code))
	if !l.Valid() {
		return 0, fmt.Errorf("%w: %q has %d digits", ErrInvalidLength, code, len(code))
	}

	return l, nil
}

// Decode returns the south-west corner of the cell addressed by code.
// Quadrant digits outside 1..4 are ignored.
func Decode(code string) (geo.Point, error) {
	level, err := LevelOf(code)
	if err != nil {
		return geo.Point{}, err
	}

	var p geo.Point
	from := 0
	for _, g := range grids {
		if g.level > level {
			break
		}
		part := code[from:g.level]
		from = int(g.level)

		if g.quadrant {
			q := int(part[0] - '0')
			if q < 1 || q > 4 {
				continue
			}
			if q > 2 {
				p.Lat += g.latUnit
			}
			if q%2 == 0 {
				p.Lng += g.lngUnit
			}
			continue
		}

		lat, _ := strconv.Atoi(part[:g.digits])
		lng, _ := strconv.Atoi(part[g.digits:])
		p.Lat += float64(lat) * g.latUnit
		p.Lng += float64(lng)*g.lngUnit + g.lngShift
	}

	return p, nil
}

// Encode returns the 10 digit (quarter mesh) code of the cell containing p.
// The first 8 digits are the standard mesh code of the same cell.
func Encode(p geo.Point) (string, error) {
	row := math.Floor(p.Lat*latSteps + gridTolerance)
	col := math.Floor((p.Lng-LongitudeOffset)*lngSteps + gridTolerance)
	if math.IsNaN(row) || math.IsNaN(col) ||
		row < 0 || col < 0 || row >= maxSteps || col >= maxSteps {
		return "", fmt.Errorf("%w: %s", ErrOutOfRange, p)
	}

	r, c := int(row), int(col)
	var b strings.Builder
	b.Grow(int(Quarter))
	for _, g := range grids {
		ri, ci := r/g.steps, c/g.steps
		r, c = r%g.steps, c%g.steps

		if g.quadrant {
			b.WriteByte(byte('1' + 2*ri + ci))
			continue
		}
		fmt.Fprintf(&b, "%0*d%0*d", g.digits, ri, g.digits, ci)
	}

	return b.String(), nil
}

// EncodeLevel is Encode truncated to the given level.
func EncodeLevel(p geo.Point, level Level) (string, error) {
	if !level.Valid() {
		return "", fmt.Errorf("%w: %d", ErrInvalidLength, int(level))
	}
	code, err := Encode(p)
	if err != nil {
		return "", err
	}
	return code[:level], nil
}
