// Package dist implements continuous distribution families and their
// fitters for standardized drought indices.
//
// # Families
//
//   - gamma: maximum likelihood, the SPI default
//   - normal: maximum likelihood
//   - lognormal: maximum likelihood on logs
//   - fisk: log-logistic, moments of the logs, the SPEI default
//   - pearson3: method of moments, accepts negative values
//
// # Fitting
//
//	family, _ := dist.ParseFamily("gamma")
//	d, err := family.Fit(values)
//	if errors.Is(err, dist.ErrDegenerateSample) {
//	    // fewer than two distinct values
//	}
//	p := d.CDF(x)
//
// Fitters never modify their input. Degenerate samples (too few or too few
// distinct values) fail with a *DegenerateSampleError; values outside the
// family's support fail with ErrOutOfSupport.
package dist
