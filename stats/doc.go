// Package stats provides the statistical building blocks of a standardized
// index: zero-inflation handling, the clamped inverse normal transform,
// non-parametric ranks and goodness-of-fit testing.
//
// # Zero Inflation
//
// Precipitation sums have an atom of probability at exactly zero. Model it
// explicitly:
//
//	p0, positive := stats.ZeroInflationActive.Split(values)
//	// fit a distribution to positive, then for each observation:
//	p := stats.ZeroInflationActive.Probability(p0, dist.CDF(v), v)
//
// NoZeroInflation passes every value through and reports p0 = 0.
//
// # Inverse Normal Transform
//
//	z := stats.NormalQuantile(p)
//
// p is clamped into [Epsilon, 1-Epsilon] first, so z is always finite.
//
// # Goodness of Fit
//
//	ks := stats.KolmogorovSmirnov(values, dist.CDF)
//	if ks.PValue < 0.05 {
//	    // fitted distribution is a poor match
//	}
//
// # Ranks
//
//	ranks := stats.Ranks(values)              // average ranks for ties
//	pp := stats.PlottingPositions(values)     // rank/(n+1)
package stats
