package dist

import (
	"math"

	"gonum.org/v1/gonum/mathext"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// GammaDist is a two-parameter gamma distribution.
type GammaDist struct {
	Shape float64 // alpha
	Rate  float64 // beta, the inverse of the scale
}

// FitGamma fits a gamma distribution by maximum likelihood.
//
// The shape solves ln(α) - ψ(α) = ln(mean) - mean(ln x). Thom's
// approximation gives the starting point and Newton's method refines it.
// The rate is α / mean.
func FitGamma(values []float64) (*GammaDist, error) {
	if err := checkSample(Gamma, values, 2); err != nil {
		return nil, err
	}

	mean := stat.Mean(values, nil)
	a := math.Log(mean) - stat.Mean(logs(values), nil)
	if a <= 0 || math.IsNaN(a) {
		return nil, &DegenerateSampleError{Family: Gamma, N: len(values), Distinct: countDistinct(values),
			Reason: "log-mean statistic is not positive"}
	}

	shape := (1 + math.Sqrt(1+4*a/3)) / (4 * a)

	maxIter := 100
	tolerance := 1e-12
	for iter := 0; iter < maxIter; iter++ {
		f := math.Log(shape) - mathext.Digamma(shape) - a
		df := 1/shape - trigamma(shape)
		next := shape - f/df
		if next <= 0 {
			next = shape / 2
		}
		if math.Abs(next-shape) < tolerance*shape {
			shape = next
			break
		}
		shape = next
	}

	return &GammaDist{
		Shape: shape,
		Rate:  shape / mean,
	}, nil
}

// CDF returns the cumulative probability of x.
func (g *GammaDist) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return distuv.Gamma{Alpha: g.Shape, Beta: g.Rate}.CDF(x)
}

// Family returns Gamma.
func (g *GammaDist) Family() Family { return Gamma }

// Params returns the shape and rate.
func (g *GammaDist) Params() map[string]float64 {
	return map[string]float64{"shape": g.Shape, "rate": g.Rate}
}

// trigamma calculates ψ'(x) for x > 0 using the recurrence
// ψ'(x) = ψ'(x+1) + 1/x² and the asymptotic expansion for large x.
func trigamma(x float64) float64 {
	result := 0.0
	for x < 6 {
		result += 1 / (x * x)
		x++
	}
	t := 1 / (x * x)
	result += 1/x + t/2 + t/x*(1.0/6-t*(1.0/30-t*(1.0/42-t/30)))
	return result
}
