// Package seasonal estimates and removes additive periodic variation in a
// noisy timeseries.
//
// The estimator can recover seasonal structure from data with only a few
// periods and no known period length. It is intended for estimating
// seasonal effects when initializing structural timeseries models like
// Holt-Winters. Input samples are assumed evenly spaced from a
// continuous-time signal with noise (white or impulsive) but no
// longer-term structural anomalies like level shifts.
//
// The seasonal estimate is a Profile of period-over-period averages at
// each seasonal offset. A period length may be specified, or estimated
// from the data; the latter is the interesting capability of this package.
//
// # Fitting
//
//	result, err := seasonal.FitSeasons(series, nil)
//	if result.Detected() {
//	    fmt.Println("period:", result.Seasons.Period())
//	}
//
// With a forced period and a custom trend filter:
//
//	cfg := seasonal.DefaultConfig()
//	cfg.Filter = trend.FilterLine
//	cfg.Period = 12
//	result, err := seasonal.FitSeasons(series, cfg)
//
// # Adjusting
//
//	adjusted, err := seasonal.AdjustSeasons(series, nil)
//	// adjusted is nil when no seasonality was detected
//
// # Period selection
//
// Candidate periods come either from periodogram peak intervals (the
// default, a speedup that restricts attention to promising bands) or from
// an exhaustive sweep of every period in [4, n/2] when the periodogram
// threshold is disabled. Each candidate is scored by generalized
// cross-validation: the closed-form leave-one-out error of predicting
// every observation from the mean of its phase bucket. The minimum-error
// period wins, and its profile is accepted only when the expected
// out-of-sample explained variance clears Config.MinEV.
package seasonal
