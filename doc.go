// Package goseasonal provides robust trend and seasonality estimation for
// evenly-spaced time series.
//
// GoSeasonal recovers additive periodic variation from noisy timeseries data
// with only a few periods of observations, without requiring a known period.
// It is intended for estimating seasonal effects when initializing structural
// timeseries models like Holt-Winters, and for summarizing how much variance
// in a series is explained by trend versus seasonality.
//
// # Quick Start
//
// Estimate and remove seasonality:
//
//	series := timeseries.New(values)
//	result, _ := seasonal.FitSeasons(series, nil)
//	if result.Detected() {
//	    fmt.Println("period:", result.Seasons.Period())
//	}
//	adjusted, _ := seasonal.AdjustSeasons(series, nil)
//
// Fit only a trend:
//
//	trendSeries, _ := trend.FitTrend(series, trend.FilterSpline, 0, 0)
//
// Score candidate periods spectrally:
//
//	peaks, _ := periodogram.Peaks(series, 0, 0, 0)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - timeseries: Time series data structures and CSV loading
//   - trend: Trend estimation (mean, median, line, and spline filters)
//   - periodogram: Spectral period scoring via Welch's method
//   - seasonal: Period selection by generalized cross-validation and
//     seasonal adjustment
//   - stats: Robust statistics shared by the estimators
//   - waves: Synthetic periodic sequence generation
//   - holtwinters: Additive Holt-Winters forecasting initialized from the
//     seasonal fit
//
// # References
//
//   - Hastie, Tibshirani, and Friedman (2009). The Elements of Statistical
//     Learning (2nd ed), eqn 7.52, Springer
//   - Welch, P.D. (1967). "The Use of Fast Fourier Transform for the
//     Estimation of Power Spectra", IEEE Trans. Audio Electroacoustics
package goseasonal
