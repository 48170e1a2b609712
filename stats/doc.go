// Package stats provides robust statistics shared by the trend and
// seasonal estimators.
//
// # Numeric Zero Policy
//
// A single tolerance governs when variances, cross-validated errors, and
// spectral power are treated as zero:
//
//	if stats.NearZero(variance) {
//	    // flat signal, nothing to explain
//	}
//	if stats.AllNearZero(power) {
//	    // DC spectrum
//	}
//
// # Robust Location
//
// Median is the location estimate used throughout in place of the mean;
// it ignores impulsive outliers:
//
//	center := stats.Median(values) // input is not reordered
//
// # Robust Line Fitting
//
// TheilSenFit fits a line to evenly sampled data as the median of all
// pairwise slopes, with a 95% confidence band on the slope:
//
//	fit := stats.TheilSenFit(values)
//	if fit.SlopeStraddlesZero() {
//	    // no significant linear trend
//	}
//	trend := fit.Slope*x + fit.Intercept
//
// The fit tolerates up to ~29% arbitrarily corrupted samples, which makes
// it the workhorse for trend lines and boundary extrapolation on noisy
// data.
package stats
