// Package periodogram estimates candidate periodicities spectrally.
//
// The estimator is a Welch averaged periodogram expressed in period space
// rather than frequency space: power is reported per distinct integer
// period, in descending period order.
//
// # Scoring periods
//
// Score every admissible period of a series:
//
//	periods, power, err := periodogram.Periodogram(series, 0, 0)
//
// # Extracting peaks
//
// Extract high-scoring candidate intervals for the seasonal fitter:
//
//	peaks, err := periodogram.Peaks(series, 0, 0, 0.9)
//	for _, p := range peaks {
//	    // the true period lies somewhere within [p.Low, p.High]
//	    fmt.Println(p.Period, p.Power, p.Low, p.High)
//	}
//
// A nil peak list means no periodic power was found (for example, a flat
// signal). Peaks trades frequency precision for noise resistance, so its
// brackets are meant to seed a time-domain search, not to be sharp period
// estimates.
package periodogram
