package si

import (
	"fmt"
	"math"

	"github.com/sartorproj/gospei/dist"
	"github.com/sartorproj/gospei/stats"
)

// Fitted is the distribution fitted to one period group.
type Fitted struct {
	Distribution    dist.Distribution
	Zero            stats.ZeroInflation
	ZeroProbability float64         // Fraction of non-positive observations; 0 without zero inflation
	N               int             // Observations in the group
	NFit            int             // Observations the distribution was fitted to
	GoodnessOfFit   *stats.KSResult // Kolmogorov-Smirnov test of the fitted values
}

// Probability returns the cumulative probability of value under the mixed
// zero-inflated model.
func (f *Fitted) Probability(value float64) float64 {
	return f.Zero.Probability(f.ZeroProbability, f.Distribution.CDF(value), value)
}

// Distributions maps group keys to fitted distributions.
type Distributions map[int]*Fitted

// Transform maps value, observed in group, to its standardized index using
// the fitted distributions. The cumulative probability is clamped into
// [stats.Epsilon, 1-stats.Epsilon], so the result is always finite.
func Transform(value float64, group int, fitted Distributions) (float64, error) {
	f, ok := fitted[group]
	if !ok || f == nil {
		return 0, &GroupError{Group: group, Err: ErrUnfittedGroup}
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%w: cannot transform %v", ErrInvalidInput, value)
	}
	return stats.NormalQuantile(f.Probability(value)), nil
}
