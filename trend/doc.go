// Package trend estimates and removes trend in a timeseries.
//
// In this library, trend removal is in service of isolating and estimating
// periodic (non-trend) variation: "trend" is a lowpass smoothing of the
// data that, when removed from the original series, preserves the original
// seasonal variation. Detrending is accomplished by a coarse fitted
// spline, mean or median filters, or a fitted line.
//
// Input samples are assumed evenly spaced from an anomaly-free
// continuous-time signal.
//
// # Fitting a trend
//
//	// spline trend with an estimated seasonal window
//	tr, err := trend.FitTrend(series, trend.FilterSpline, 0, 0)
//
//	// median-filtered trend for a known period of 12 samples
//	tr, err := trend.FitTrend(series, trend.FilterMedian, 12, 0)
//
// Filter kinds may also be resolved from configuration strings:
//
//	kind, err := trend.ParseFilterKind("median")
//
// # Boundary handling
//
// Windowed smoothers have degraded or undefined behavior within half a
// window of the series ends; naively shrinking the window there biases
// detrending exactly where adjustments matter most, the most recent data.
// The filters here instead replace the half-window samples at each end
// with a robust line extrapolated from the interior.
package trend
