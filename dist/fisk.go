package dist

import (
	"math"
)

// FiskDist is a log-logistic (Fisk) distribution with
// CDF(x) = 1 / (1 + (x/Scale)^-Shape).
type FiskDist struct {
	Scale float64
	Shape float64
}

// FitFisk fits a log-logistic distribution. ln X is logistic with location
// ln(Scale) and scale 1/Shape; both follow from the mean and standard
// deviation of the logs, the logistic variance being (π s)²/3.
func FitFisk(values []float64) (*FiskDist, error) {
	if err := checkSample(Fisk, values, 2); err != nil {
		return nil, err
	}
	mu, sd := mleMeanStdDev(logs(values))
	if sd <= 0 {
		return nil, &DegenerateSampleError{Family: Fisk, N: len(values), Distinct: countDistinct(values),
			Reason: "zero variance of logs"}
	}
	s := sd * math.Sqrt(3) / math.Pi
	return &FiskDist{
		Scale: math.Exp(mu),
		Shape: 1 / s,
	}, nil
}

// CDF returns the cumulative probability of x.
func (f *FiskDist) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return 1 / (1 + math.Pow(x/f.Scale, -f.Shape))
}

// Family returns Fisk.
func (f *FiskDist) Family() Family { return Fisk }

// Params returns the scale and shape.
func (f *FiskDist) Params() map[string]float64 {
	return map[string]float64{"scale": f.Scale, "shape": f.Shape}
}
