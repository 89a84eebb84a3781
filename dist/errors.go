package dist

import "errors"

var (
	// ErrEmpty is returned by operations that need at least one quantity.
	ErrEmpty = errors.New("dist: empty distribution")

	// ErrZeroTotal is returned when a distribution whose counts or masses
	// sum to exactly zero is normalized.
	ErrZeroTotal = errors.New("dist: total is zero, cannot normalize")

	// ErrNonNumeric is returned when a numeric statistic or transform is
	// asked of a distribution over non-numeric quantities.
	ErrNonNumeric = errors.New("dist: quantity is not numeric")

	// ErrNegativeCount is returned when a Hist mutation would leave a
	// count below zero. The Hist is left unchanged.
	ErrNegativeCount = errors.New("dist: count would become negative")

	// ErrZeroVariance is returned by Skewness when the standard deviation is zero.
	ErrZeroVariance = errors.New("dist: standard deviation is zero")

	// ErrZeroQuantity is returned by Unbias for a zero-valued quantity.
	ErrZeroQuantity = errors.New("dist: cannot unbias a zero quantity")

	// ErrNegativeQuantity is returned by Bias and Unbias for a negative quantity.
	ErrNegativeQuantity = errors.New("dist: cannot reweight by a negative quantity")

	// ErrNonFinite is returned when a Pmf whose total mass is infinite or
	// NaN is normalized. The masses are left unchanged.
	ErrNonFinite = errors.New("dist: total is not finite, cannot normalize")

	// ErrLengthMismatch is returned by PmfFromPairs when masses and
	// quantities differ in length.
	ErrLengthMismatch = errors.New("dist: masses and quantities must have the same length")
)
