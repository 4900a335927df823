package tmerc

// GRS80 ellipsoid and the Japan plane rectangular origin scale.
const (
	SemiMajorAxis     = 6378137.0
	InverseFlattening = 298.257222101

	// N is the third flattening n = 1 / (2F - 1).
	N = 0.0016792203946287445
	// Eccentricity is the first eccentricity e = 2√n / (1 + n).
	Eccentricity = 0.08181919104281579

	// OriginScale is the scale factor m0 on the central meridian.
	OriginScale = 0.9999
)

// Series coefficients from Kawase (2011), "A more concise method of
// calculation for the coordinate conversion between geographic and plane
// rectangular coordinates on the Gauss-Krüger projection", GSI Journal 121.
// Index 0 of alpha, beta and delta is unused.
var (
	// largeA expands the meridian arc; shared by both directions.
	largeA = [6]float64{
		1.0000007049454078, -0.0025188297041239312, 2.6435429493240994e-6,
		-3.4526259073074147e-9, 4.891830424387949e-12, -7.228726045813916e-15,
	}

	// alpha is the forward (geodetic to plane) series.
	alpha = [6]float64{
		0, 8.377318247285465e-4, 7.608527848379248e-7,
		1.1976455002315586e-9, 2.4291502606542468e-12, 5.750164384091974e-15,
	}

	// beta is the inverse (plane to conformal) series.
	beta = [6]float64{
		0, 8.377321681620316e-4, 5.905870211016955e-8,
		1.6734826761541112e-10, 2.1648237311010893e-13, 3.79409187887551e-16,
	}

	// delta maps conformal latitude back to geodetic latitude.
	delta = [7]float64{
		0, 0.003356551485604312, 6.571873263127177e-6, 1.7646404372866207e-8,
		5.3877538900094696e-11, 1.7640075159133883e-13, 6.056074055207582e-16,
	}
)
