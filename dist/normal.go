package dist

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// NormalDist is a normal distribution.
type NormalDist struct {
	Mu    float64
	Sigma float64
}

// FitNormal fits a normal distribution by maximum likelihood.
func FitNormal(values []float64) (*NormalDist, error) {
	if err := checkSample(Normal, values, 2); err != nil {
		return nil, err
	}
	mu, sigma := mleMeanStdDev(values)
	if sigma <= 0 {
		return nil, &DegenerateSampleError{Family: Normal, N: len(values), Distinct: countDistinct(values),
			Reason: "zero variance"}
	}
	return &NormalDist{Mu: mu, Sigma: sigma}, nil
}

// CDF returns the cumulative probability of x.
func (n *NormalDist) CDF(x float64) float64 {
	return distuv.Normal{Mu: n.Mu, Sigma: n.Sigma}.CDF(x)
}

// Family returns Normal.
func (n *NormalDist) Family() Family { return Normal }

// Params returns the mean and standard deviation.
func (n *NormalDist) Params() map[string]float64 {
	return map[string]float64{"mu": n.Mu, "sigma": n.Sigma}
}

// LogNormalDist is a log-normal distribution; ln X is normal with Mu and Sigma.
type LogNormalDist struct {
	Mu    float64
	Sigma float64
}

// FitLogNormal fits a log-normal distribution by maximum likelihood.
func FitLogNormal(values []float64) (*LogNormalDist, error) {
	if err := checkSample(LogNormal, values, 2); err != nil {
		return nil, err
	}
	mu, sigma := mleMeanStdDev(logs(values))
	if sigma <= 0 {
		return nil, &DegenerateSampleError{Family: LogNormal, N: len(values), Distinct: countDistinct(values),
			Reason: "zero variance of logs"}
	}
	return &LogNormalDist{Mu: mu, Sigma: sigma}, nil
}

// CDF returns the cumulative probability of x.
func (l *LogNormalDist) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return distuv.LogNormal{Mu: l.Mu, Sigma: l.Sigma}.CDF(x)
}

// Family returns LogNormal.
func (l *LogNormalDist) Family() Family { return LogNormal }

// Params returns the mean and standard deviation of ln X.
func (l *LogNormalDist) Params() map[string]float64 {
	return map[string]float64{"mu": l.Mu, "sigma": l.Sigma}
}

// mleMeanStdDev returns the mean and the population (maximum likelihood)
// standard deviation.
func mleMeanStdDev(values []float64) (mean, std float64) {
	mean, std = stat.MeanStdDev(values, nil)
	n := float64(len(values))
	return mean, std * math.Sqrt((n-1)/n)
}
