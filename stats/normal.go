package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Epsilon bounds cumulative probabilities away from 0 and 1 before the
// inverse normal transform. It is the float64 machine epsilon (2^-52); both
// Epsilon and 1-Epsilon are exactly representable and map to about ±8.13.
const Epsilon = 0x1p-52

// ClampProbability clamps p into [Epsilon, 1-Epsilon].
func ClampProbability(p float64) float64 {
	return math.Max(Epsilon, math.Min(1-Epsilon, p))
}

// NormalQuantile returns the standard normal quantile of p after clamping.
// The result is finite for any non-NaN p.
func NormalQuantile(p float64) float64 {
	return distuv.UnitNormal.Quantile(ClampProbability(p))
}

// NormalCDF returns the standard normal cumulative probability of z.
func NormalCDF(z float64) float64 {
	return distuv.UnitNormal.CDF(z)
}
