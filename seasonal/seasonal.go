package seasonal

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/sartorproj/goseasonal/periodogram"
	"github.com/sartorproj/goseasonal/stats"
	"github.com/sartorproj/goseasonal/timeseries"
	"github.com/sartorproj/goseasonal/trend"
)

const (
	// DefaultMinEV is the minimum fraction of residual variance a seasonal
	// adjustment must explain out-of-sample to be accepted.
	DefaultMinEV = 0.05

	// DefaultPeriodogramThresh is the default periodogram peak threshold
	// used to restrict the period search to promising bands.
	DefaultPeriodogramThresh = 0.5

	// MinSearchPeriod is the shortest period considered during search.
	MinSearchPeriod = 4
)

// ErrInsufficientData indicates fewer than two full cycles of data for a
// requested period.
var ErrInsufficientData = errors.New("seasonal: fewer than two cycles of data for period")

// Profile holds additive seasonal offsets, one per phase position. The
// profile length is the estimated period.
type Profile struct {
	Offsets []float64
}

// Period returns the period the profile describes.
func (p *Profile) Period() int {
	return len(p.Offsets)
}

// Config holds configuration for seasonal fitting and adjustment. Use
// DefaultConfig as the starting point; a nil Config is treated as
// DefaultConfig().
type Config struct {
	// Filter is the trend filter fitted before the seasonal fit when no
	// explicit Trend is supplied.
	Filter trend.FilterKind
	// Trend, if non-nil, is removed from the data instead of fitting one.
	Trend *timeseries.Series
	// NoDetrend skips detrending entirely (a zero trend).
	NoDetrend bool
	// Period forces a specific period instead of searching. Note that if
	// the forced period does not yield a seasonal effect better than no
	// adjustment, no profile is returned.
	Period int
	// MinEV is the minimum out-of-sample explained variance for a
	// seasonal fit to be accepted.
	MinEV float64
	// PeriodogramThresh restricts the period search to bands suggested by
	// periodogram peaks above this fraction of the maximum power. Zero
	// disables the speedup and tests every admissible period.
	PeriodogramThresh float64
	// Seasons supplies precomputed offsets to AdjustSeasons, skipping the
	// fit.
	Seasons *Profile
}

// DefaultConfig returns the default seasonal fitting configuration: a
// spline trend, MinEV of DefaultMinEV, and a periodogram-guided search.
func DefaultConfig() *Config {
	return &Config{
		Filter:            trend.FilterSpline,
		MinEV:             DefaultMinEV,
		PeriodogramThresh: DefaultPeriodogramThresh,
	}
}

// Result is the outcome of a seasonal fit: the detected seasonal profile,
// if any, and the trend that was removed prior to fitting.
type Result struct {
	Seasons *Profile
	Trend   *timeseries.Series
}

// Detected reports whether a reliable periodicity was found.
func (r *Result) Detected() bool {
	return r.Seasons != nil
}

// FitSeasons estimates seasonal effects in a series.
//
// The major period of the data is estimated by testing seasonal
// differences for various period lengths and keeping the offsets that best
// predict out-of-sample variation. Two steps: a range of likely periods is
// estimated via periodogram averaging (an optional, ad-hoc speedup), then
// a time-domain estimator chooses the best integer period by
// leave-one-out cross-validated residual error. The strength of the
// seasonal effect is gated on the cross-validation R², the expected
// fraction of variance explained by the seasonal estimate.
//
// At least two full periods of data are assumed; forcing cfg.Period with
// fewer returns ErrInsufficientData.
func FitSeasons(s *timeseries.Series, cfg *Config) (*Result, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	n := s.Len()

	tr, err := resolveTrend(s, cfg)
	if err != nil {
		return nil, err
	}
	resid, err := s.Detrend(tr)
	if err != nil {
		return nil, err
	}

	variance := resid.Variance()
	if stats.NearZero(variance) {
		return &Result{Trend: tr}, nil // nothing left to explain
	}

	if cfg.Period > 0 {
		if n < 2*cfg.Period {
			return nil, fmt.Errorf("%w %d: have %d samples", ErrInsufficientData, cfg.Period, n)
		}
		mse, offsets := gcv(resid.Values, cfg.Period)
		if stats.NearZero(mse) || 1-mse/variance >= cfg.MinEV {
			return &Result{Seasons: &Profile{Offsets: offsets}, Trend: tr}, nil
		}
		return &Result{Trend: tr}, nil
	}

	intervals, none, err := candidateIntervals(resid, cfg, n)
	if err != nil {
		return nil, err
	}
	if none {
		return &Result{Trend: tr}, nil
	}

	bestMSE := math.Inf(1)
	var bestOffsets []float64
	period := 0
	for _, iv := range intervals {
		// a running lower bound keeps overlapping intervals from
		// rescoring periods already visited
		if iv.low > period {
			period = iv.low
		}
		for ; period <= iv.high; period++ {
			if period < 2 || n < 2*period {
				continue
			}
			mse, offsets := gcv(resid.Values, period)
			if mse < bestMSE {
				bestMSE, bestOffsets = mse, offsets
			}
		}
	}

	if bestOffsets != nil && (stats.NearZero(bestMSE) || 1-bestMSE/variance >= cfg.MinEV) {
		return &Result{Seasons: &Profile{Offsets: bestOffsets}, Trend: tr}, nil
	}
	return &Result{Trend: tr}, nil
}

// AdjustSeasons seasonally adjusts the data: the dominant periodic
// variation is removed while any trend is left in place.
//
// Trend and seasonal components are estimated per cfg when cfg.Seasons is
// not supplied. The returned series is nil (with a nil error) when no
// seasonality is detected.
func AdjustSeasons(s *timeseries.Series, cfg *Config) (*timeseries.Series, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	profile := cfg.Seasons
	if profile == nil {
		result, err := FitSeasons(s, cfg)
		if err != nil {
			return nil, err
		}
		if !result.Detected() {
			return nil, nil
		}
		profile = result.Seasons
	}

	period := profile.Period()
	adjusted := s.Copy()
	for i := range adjusted.Values {
		adjusted.Values[i] -= profile.Offsets[i%period]
	}
	adjusted.Name = s.Name + "_adjusted"
	return adjusted, nil
}

// RSquaredCV estimates the out-of-sample R² of a seasonal adjustment at
// the given period.
func RSquaredCV(s *timeseries.Series, period int) (float64, error) {
	if period < 2 || s.Len() < 2*period {
		return 0, fmt.Errorf("%w %d: have %d samples", ErrInsufficientData, period, s.Len())
	}
	mse, _ := gcv(s.Values, period)
	return 1 - mse/s.Variance(), nil
}

// resolveTrend produces the trend to remove before fitting seasons: a zero
// trend, a supplied trend series, or a fit of the configured filter kind.
func resolveTrend(s *timeseries.Series, cfg *Config) (*timeseries.Series, error) {
	switch {
	case cfg.NoDetrend:
		zero := s.Copy()
		for i := range zero.Values {
			zero.Values[i] = 0
		}
		zero.Name = "trend"
		return zero, nil
	case cfg.Trend != nil:
		if cfg.Trend.Len() != s.Len() {
			return nil, errors.New("seasonal: supplied trend length does not match data")
		}
		return cfg.Trend, nil
	default:
		return trend.FitTrend(s, cfg.Filter, cfg.Period, 0)
	}
}

// searchInterval is an inclusive band of integer periods to score.
type searchInterval struct {
	low, high int
}

// candidateIntervals derives the period bands to search. With a
// periodogram threshold configured, the bands come from peak brackets
// (none at all means no detectable periodicity); otherwise the full
// admissible band is swept.
func candidateIntervals(resid *timeseries.Series, cfg *Config, n int) ([]searchInterval, bool, error) {
	if cfg.PeriodogramThresh <= 0 {
		return []searchInterval{{low: MinSearchPeriod, high: n / 2}}, false, nil
	}

	peaks, err := periodogram.Peaks(resid, 0, 0, cfg.PeriodogramThresh)
	if err != nil {
		if errors.Is(err, periodogram.ErrInsufficientData) {
			return nil, true, nil
		}
		return nil, false, err
	}
	if len(peaks) == 0 {
		return nil, true, nil
	}

	intervals := make([]searchInterval, len(peaks))
	for i, p := range peaks {
		intervals[i] = searchInterval{low: p.Low, high: p.High}
	}
	sort.Slice(intervals, func(i, j int) bool {
		if intervals[i].low != intervals[j].low {
			return intervals[i].low < intervals[j].low
		}
		return intervals[i].high < intervals[j].high
	})
	return intervals, false, nil
}

// gcv computes the generalized cross-validation error of deseasonalizing
// data with the given period choice: yhat(x_i) is the mean of
// same-phased observations.
//
// Observations are bucketed by phase (i mod period) in a single pass over
// three period-length accumulators. Each phase's sum of squared deviations
// from its mean is inflated by the closed-form leave-one-out factor
// (n/(n-1))² for a mean estimator (Hastie, Tibshirani & Friedman, eqn
// 7.52), so no refitting per held-out point is needed. Phases may hold
// different counts when the data length is not a multiple of the period;
// the normalization is by total sample count, so uneven buckets do not
// bias the result.
//
// Requires len(data) >= 2*period so every phase holds at least two
// observations.
func gcv(data []float64, period int) (float64, []float64) {
	counts := make([]float64, period)
	sumY := make([]float64, period)
	sumY2 := make([]float64, period)

	idx := 0
	for _, y := range data {
		sumY[idx] += y
		sumY2[idx] += y * y
		counts[idx]++
		idx++
		if idx == period {
			idx = 0
		}
	}

	offsets := make([]float64, period)
	total := 0.0
	for i := 0; i < period; i++ {
		offsets[i] = sumY[i] / counts[i]
		sse := sumY2[i] - sumY[i]*sumY[i]/counts[i]
		inflate := counts[i] / (counts[i] - 1)
		total += inflate * inflate * sse
	}

	mse := total / float64(len(data))
	if stats.NearZero(mse) {
		mse = 0 // float precision noise
	}
	return mse, offsets
}
