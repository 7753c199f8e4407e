package stats

import "fmt"

// ZeroInflation selects how the probability mass at zero is treated.
//
// With ZeroInflationActive a sample is modeled as a mixture of a point mass
// at zero and a continuous distribution fitted to the strictly positive
// values. With NoZeroInflation every value goes to the continuous
// distribution, so zeros must be rejected before fitting a distribution
// with positive support.
type ZeroInflation int

const (
	NoZeroInflation ZeroInflation = iota
	ZeroInflationActive
)

// String implements fmt.Stringer.
func (z ZeroInflation) String() string {
	switch z {
	case NoZeroInflation:
		return "none"
	case ZeroInflationActive:
		return "active"
	default:
		return fmt.Sprintf("ZeroInflation(%d)", int(z))
	}
}

// Active reports whether the zero mass is modeled separately.
func (z ZeroInflation) Active() bool {
	return z == ZeroInflationActive
}

// Split separates the zero mass from the positive values.
// When active, p0 is the fraction of values <= 0 and nonzero holds the
// values > 0 in their original order. When disabled, p0 is 0 and all
// values pass through.
func (z ZeroInflation) Split(values []float64) (p0 float64, nonzero []float64) {
	if !z.Active() {
		nonzero = make([]float64, len(values))
		copy(nonzero, values)
		return 0, nonzero
	}
	if len(values) == 0 {
		return 0, nil
	}

	nonzero = make([]float64, 0, len(values))
	for _, v := range values {
		if v > 0 {
			nonzero = append(nonzero, v)
		}
	}
	zeros := len(values) - len(nonzero)
	return float64(zeros) / float64(len(values)), nonzero
}

// Probability combines the zero mass p0 with cdf, the continuous
// distribution's CDF evaluated at value, into the cumulative probability of
// value. A value at the zero atom gets p0/2, the midpoint of the mass.
func (z ZeroInflation) Probability(p0, cdf, value float64) float64 {
	if !z.Active() {
		return cdf
	}
	if value <= 0 {
		return p0 / 2
	}
	return p0 + (1-p0)*cdf
}
