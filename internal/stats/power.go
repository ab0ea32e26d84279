package stats

import (
	"errors"
	"fmt"
	"math"
)

// ZAlpha is the two-sided critical z for alpha = 0.05.
const ZAlpha = 1.96

// Power is a target statistical power (1 - beta).
type Power int

const (
	Power70 Power = iota + 1
	Power80
	Power90
)

// Powers lists the supported targets in ascending order.
var Powers = []Power{Power70, Power80, Power90}

// Errors returned by the power and sample-size computations.
var (
	ErrInvalidPower      = errors.New("unsupported power target")
	ErrZeroDelta         = errors.New("delta must be nonzero")
	ErrNonPositiveT      = errors.New("critical t must be positive")
	ErrInvalidSampleSize = errors.New("sample size must be positive")
	ErrNonPositiveSD     = errors.New("pooled standard deviation must be positive")
)

// ParsePower maps a fractional power (0.70, 0.80, 0.90) to its Power value.
func ParsePower(f float64) (Power, error) {
	for _, p := range Powers {
		if p.Fraction() == f {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %g", ErrInvalidPower, f)
}

// Valid reports whether p is one of the supported targets.
func (p Power) Valid() bool {
	return p >= Power70 && p <= Power90
}

// Fraction returns the power as a probability.
func (p Power) Fraction() float64 {
	switch p {
	case Power70:
		return 0.70
	case Power80:
		return 0.80
	case Power90:
		return 0.90
	}
	return math.NaN()
}

// Z returns the tabulated z_(1-beta) for the target.
func (p Power) Z() float64 {
	switch p {
	case Power70:
		return 0.524
	case Power80:
		return 0.84
	case Power90:
		return 1.28
	}
	return math.NaN()
}

func (p Power) String() string {
	switch p {
	case Power70:
		return "70%"
	case Power80:
		return "80%"
	case Power90:
		return "90%"
	}
	return fmt.Sprintf("Power(%d)", int(p))
}

// PooledSD back-calculates the pooled standard deviation from a two-sample
// t statistic with n observations in each group:
//
//	sigma_p = |delta| * sqrt(n) / (sqrt(2) * t)
func PooledSD(delta, t float64, n int) (float64, error) {
	if delta == 0 {
		return 0, ErrZeroDelta
	}
	if !(t > 0) {
		return 0, fmt.Errorf("%w: got %g", ErrNonPositiveT, t)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidSampleSize, n)
	}
	return math.Abs(delta) * math.Sqrt(float64(n)) / (math.Sqrt2 * t), nil
}

// RequiredSampleSize returns the per-group sample size needed to detect delta
// with the given pooled SD at the target power, two-sided alpha = 0.05.
// The result is rounded up so the design is never under-powered.
func RequiredSampleSize(delta, sigma float64, power Power) (int, error) {
	raw, err := requiredSampleSizeRaw(delta, sigma, power)
	if err != nil {
		return 0, err
	}
	return int(math.Ceil(raw)), nil
}

func requiredSampleSizeRaw(delta, sigma float64, power Power) (float64, error) {
	if !power.Valid() {
		return 0, fmt.Errorf("%w: %s", ErrInvalidPower, power)
	}
	if delta == 0 {
		return 0, ErrZeroDelta
	}
	if !(sigma > 0) {
		return 0, fmt.Errorf("%w: got %g", ErrNonPositiveSD, sigma)
	}

	ratio := sigma / math.Abs(delta)
	sumZ := ZAlpha + power.Z()
	return 2.0 * sumZ * sumZ * ratio * ratio, nil
}
