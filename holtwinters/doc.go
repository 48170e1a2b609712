// Package holtwinters provides additive Holt-Winters (triple exponential
// smoothing) forecasting.
//
// Holt-Winters is a structural timeseries model with level, trend, and
// seasonal components estimated by exponential smoothing as data arrives.
// Getting a usable model requires a reasonable initial state, and that is
// where this library's seasonal estimator comes in: EstimateState seeds
// the seasonal component from a cross-validated seasonal fit, with level
// and trend taken from the fitted trend. Only additive seasonality is
// implemented.
//
// # Usage
//
//	model := holtwinters.New()
//	if err := model.Fit(series); err != nil {
//	    // too little data, or the seasonal fit failed
//	}
//	forecasts, _ := model.Predict(12)
//
// Lower-level state manipulation for streaming updates:
//
//	state, _ := holtwinters.EstimateState(train)
//	params, _ := holtwinters.EstimateParams(train, state, holtwinters.DefaultParams())
//	for _, y := range observations {
//	    e := state.Advance(y, params)
//	    _ = e // one-step forecast error
//	}
//	next := state.Forecast(1)
package holtwinters
