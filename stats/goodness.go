package stats

import (
	"math"
	"sort"
)

// KSResult represents the result of a one-sample Kolmogorov-Smirnov test.
type KSResult struct {
	Statistic float64 // Largest distance between the empirical and fitted CDF
	PValue    float64 // Asymptotic p-value
	NObs      int
}

// KolmogorovSmirnov tests values against the continuous CDF cdf.
// The null hypothesis is that values were drawn from cdf.
// Returns nil for an empty sample.
func KolmogorovSmirnov(values []float64, cdf func(float64) float64) *KSResult {
	n := len(values)
	if n == 0 {
		return nil
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	nf := float64(n)
	d := 0.0
	for i, x := range sorted {
		f := cdf(x)
		d = math.Max(d, math.Max(float64(i+1)/nf-f, f-float64(i)/nf))
	}

	// Stephens' small-sample correction of the Kolmogorov distribution.
	sqrtN := math.Sqrt(nf)
	lambda := (sqrtN + 0.12 + 0.11/sqrtN) * d

	return &KSResult{
		Statistic: d,
		PValue:    kolmogorovQ(lambda),
		NObs:      n,
	}
}

// kolmogorovQ calculates the survival function of the Kolmogorov distribution.
// Small arguments use the Jacobi theta form, which converges quickly there.
func kolmogorovQ(lambda float64) float64 {
	if lambda <= 0 {
		return 1
	}

	if lambda < 1.18 {
		y := math.Exp(-math.Pi * math.Pi / (8 * lambda * lambda))
		p := math.Sqrt(2*math.Pi) / lambda * (y + math.Pow(y, 9) + math.Pow(y, 25) + math.Pow(y, 49))
		return math.Max(0, math.Min(1, 1-p))
	}

	x := math.Exp(-2 * lambda * lambda)
	return math.Max(0, math.Min(1, 2*(x-math.Pow(x, 4)+math.Pow(x, 9))))
}
