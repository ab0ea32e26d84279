package stats

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"
)

// Errors returned by the quantile lookup.
var (
	ErrInvalidProbability      = errors.New("probability must be in (0, 1)")
	ErrInvalidDegreesOfFreedom = errors.New("degrees of freedom must be positive")
)

// TCritical returns the two-sided critical t value for the reported p-value:
// the t such that P(T > t) = p/2 for a Student's t distribution with df
// degrees of freedom.
func TCritical(p float64, df int) (float64, error) {
	if !(p > 0 && p < 1) {
		return 0, fmt.Errorf("%w: got %g", ErrInvalidProbability, p)
	}
	if df <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidDegreesOfFreedom, df)
	}

	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(df)}
	return tDist.Quantile(1.0 - p/2.0), nil
}
