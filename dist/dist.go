// Package dist implements the continuous distribution families used to
// standardize hydrological time series, together with their fitters.
package dist

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

var (
	// ErrDegenerateSample is returned when a sample cannot support a fit.
	ErrDegenerateSample = errors.New("degenerate sample")

	// ErrOutOfSupport is returned when a sample holds values the family cannot produce.
	ErrOutOfSupport = errors.New("value outside distribution support")
)

// DegenerateSampleError describes a sample with too few valid or distinct values.
type DegenerateSampleError struct {
	Family   Family
	N        int // Number of observations
	Distinct int // Number of distinct observations
	Reason   string
}

func (e *DegenerateSampleError) Error() string {
	return fmt.Sprintf("%s: cannot fit %s to %d observations (%d distinct): %s",
		ErrDegenerateSample, e.Family, e.N, e.Distinct, e.Reason)
}

// Unwrap makes errors.Is(err, ErrDegenerateSample) hold.
func (e *DegenerateSampleError) Unwrap() error {
	return ErrDegenerateSample
}

// Family names a distribution family.
type Family string

// Supported families.
const (
	Gamma     Family = "gamma"
	Normal    Family = "normal"
	LogNormal Family = "lognormal"
	Fisk      Family = "fisk"
	Pearson3  Family = "pearson3"
)

// Families lists the supported families.
func Families() []Family {
	return []Family{Gamma, Normal, LogNormal, Fisk, Pearson3}
}

// ParseFamily parses a family name. "norm" and "loglogistic" are accepted aliases.
func ParseFamily(s string) (Family, error) {
	switch f := Family(strings.ToLower(strings.TrimSpace(s))); f {
	case Gamma, Normal, LogNormal, Fisk, Pearson3:
		return f, nil
	case "norm":
		return Normal, nil
	case "loglogistic":
		return Fisk, nil
	default:
		return "", fmt.Errorf("unknown distribution %q", s)
	}
}

// PositiveSupport reports whether the family is only defined for x > 0.
func (f Family) PositiveSupport() bool {
	switch f {
	case Gamma, LogNormal, Fisk:
		return true
	default:
		return false
	}
}

// Distribution is a fitted continuous distribution.
type Distribution interface {
	// CDF returns the cumulative probability of x.
	CDF(x float64) float64
	// Family returns the distribution family.
	Family() Family
	// Params returns the fitted parameters by name.
	Params() map[string]float64
}

// Fit fits the family to values.
func (f Family) Fit(values []float64) (Distribution, error) {
	var (
		d   Distribution
		err error
	)
	switch f {
	case Gamma:
		d, err = asDistribution(FitGamma(values))
	case Normal:
		d, err = asDistribution(FitNormal(values))
	case LogNormal:
		d, err = asDistribution(FitLogNormal(values))
	case Fisk:
		d, err = asDistribution(FitFisk(values))
	case Pearson3:
		d, err = asDistribution(FitPearson3(values))
	default:
		return nil, fmt.Errorf("unknown distribution %q", string(f))
	}
	return d, err
}

// asDistribution keeps a failed fit from turning into a non-nil interface holding a nil pointer.
func asDistribution[D Distribution](d D, err error) (Distribution, error) {
	if err != nil {
		return nil, err
	}
	return d, nil
}

// checkSample verifies that values holds at least minN finite observations
// with at least two distinct values, and that they lie in the support.
func checkSample(f Family, values []float64, minN int) error {
	distinct := countDistinct(values)
	if len(values) < minN {
		return &DegenerateSampleError{Family: f, N: len(values), Distinct: distinct,
			Reason: fmt.Sprintf("need at least %d observations", minN)}
	}
	if distinct < 2 {
		return &DegenerateSampleError{Family: f, N: len(values), Distinct: distinct,
			Reason: "need at least 2 distinct values"}
	}
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %v", ErrOutOfSupport, v)
		}
		if f.PositiveSupport() && v <= 0 {
			return fmt.Errorf("%w: %s requires positive values, got %v", ErrOutOfSupport, f, v)
		}
	}
	return nil
}

func countDistinct(values []float64) int {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i] != sorted[i-1] {
			n++
		}
	}
	return n
}

func logs(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = math.Log(v)
	}
	return out
}
