package dist

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// skewTolerance is the absolute skewness below which Pearson III is
// evaluated as a normal distribution.
const skewTolerance = 1e-6

// Pearson3Dist is a Pearson type III distribution, a gamma distribution
// shifted and possibly mirrored, parametrized by its first three moments.
type Pearson3Dist struct {
	Mean   float64
	StdDev float64
	Skew   float64
}

// FitPearson3 fits a Pearson type III distribution by the method of moments.
func FitPearson3(values []float64) (*Pearson3Dist, error) {
	if err := checkSample(Pearson3, values, 3); err != nil {
		return nil, err
	}
	mean, std := stat.MeanStdDev(values, nil)
	if std <= 0 {
		return nil, &DegenerateSampleError{Family: Pearson3, N: len(values), Distinct: countDistinct(values),
			Reason: "zero variance"}
	}
	return &Pearson3Dist{
		Mean:   mean,
		StdDev: std,
		Skew:   stat.Skew(values, nil),
	}, nil
}

// CDF returns the cumulative probability of x.
func (p *Pearson3Dist) CDF(x float64) float64 {
	if math.Abs(p.Skew) < skewTolerance {
		return distuv.Normal{Mu: p.Mean, Sigma: p.StdDev}.CDF(x)
	}

	shape := 4 / (p.Skew * p.Skew)
	scale := p.StdDev * math.Abs(p.Skew) / 2
	loc := p.Mean - 2*p.StdDev/p.Skew
	g := distuv.Gamma{Alpha: shape, Beta: 1 / scale}

	if p.Skew > 0 {
		if x <= loc {
			return 0
		}
		return g.CDF(x - loc)
	}
	if x >= loc {
		return 1
	}
	return 1 - g.CDF(loc-x)
}

// Family returns Pearson3.
func (p *Pearson3Dist) Family() Family { return Pearson3 }

// Params returns the mean, standard deviation and skewness.
func (p *Pearson3Dist) Params() map[string]float64 {
	return map[string]float64{"mean": p.Mean, "std": p.StdDev, "skew": p.Skew}
}
