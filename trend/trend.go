package trend

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/sartorproj/goseasonal/periodogram"
	"github.com/sartorproj/goseasonal/stats"
	"github.com/sartorproj/goseasonal/timeseries"
)

// FilterKind selects the smoothing filter used by FitTrend.
type FilterKind int

const (
	// FilterNone removes only the level: the trend is the global mean.
	FilterNone FilterKind = iota
	// FilterMean applies a centered windowed mean filter.
	FilterMean
	// FilterMedian applies a centered windowed median filter.
	FilterMedian
	// FilterLine fits a robust line to median-filtered data.
	FilterLine
	// FilterSpline fits a coarse piecewise cubic smoothing spline.
	FilterSpline
)

// DefaultPTimes is the default multiple of the period used as the
// smoothing window size.
const DefaultPTimes = 2.0

// ErrUnknownFilter indicates an unrecognized trend filter identifier.
var ErrUnknownFilter = errors.New("trend: unknown filter kind")

// ErrInsufficientData indicates the series is shorter than the smoothing
// window the fit requires.
var ErrInsufficientData = errors.New("trend: series shorter than smoothing window")

var filterNames = map[FilterKind]string{
	FilterNone:   "none",
	FilterMean:   "mean",
	FilterMedian: "median",
	FilterLine:   "line",
	FilterSpline: "spline",
}

// String returns the filter's identifier.
func (k FilterKind) String() string {
	if name, ok := filterNames[k]; ok {
		return name
	}
	return fmt.Sprintf("FilterKind(%d)", int(k))
}

// ParseFilterKind maps a filter identifier to its FilterKind. Unknown
// identifiers return ErrUnknownFilter.
func ParseFilterKind(name string) (FilterKind, error) {
	for kind, n := range filterNames {
		if n == name {
			return kind, nil
		}
	}
	return FilterNone, fmt.Errorf("%w: %q", ErrUnknownFilter, name)
}

// FitTrend fits a trend for a possibly noisy, periodic timeseries.
//
// The trend may be modeled by a line, cubic spline, or mean or median
// filtered series, according to kind. period is the seasonal periodicity
// used to size the smoothing window; if <= 0 it is estimated from the
// data. ptimes is the multiple of the period used as the window size; if
// <= 0 it defaults to DefaultPTimes.
//
// The windowed filters (mean, median, spline) have degraded behavior at
// the series boundaries, and are corrected there by replacing half a
// window at each end with a robust line extrapolated from the interior.
func FitTrend(s *timeseries.Series, kind FilterKind, period int, ptimes float64) (*timeseries.Series, error) {
	n := s.Len()
	if kind == FilterNone {
		mean := s.Mean()
		values := make([]float64, n)
		for i := range values {
			values[i] = mean
		}
		return trendSeries(s, values), nil
	}

	if period <= 0 {
		period = GuessTrendedPeriod(s)
	}
	if ptimes <= 0 {
		ptimes = DefaultPTimes
	}
	window := int(float64(period)*ptimes)/2*2 - 1 // odd window
	if window < 3 {
		window = 3
	}
	if window > n {
		return nil, fmt.Errorf("%w: window %d exceeds %d samples", ErrInsufficientData, window, n)
	}

	var filtered []float64
	switch kind {
	case FilterMedian:
		filtered = aglet(medianFilter(s.Values, window), window)
	case FilterMean:
		filtered = aglet(meanFilter(s.Values, window), window)
	case FilterLine:
		filtered = lineFilter(s.Values, window)
	case FilterSpline:
		nsegs := n/(window*2) + 1
		fit, err := splineFilter(s.Values, nsegs)
		if err != nil {
			return nil, err
		}
		filtered = aglet(fit, window)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFilter, int(kind))
	}
	return trendSeries(s, filtered), nil
}

// GuessTrendedPeriod returns a rough estimate of the major period of
// trendful data.
//
// The periodogram wants detrended data to score periods reliably, so a
// broad median filter based on a reasonable maximum period is removed
// first. The result is a power-weighted average of the plausible
// periodicities, falling back to the broad window size when no peak is
// found. This estimate is for window sizing only, not a seasonality claim.
func GuessTrendedPeriod(s *timeseries.Series) int {
	maxPeriod := s.Len() / 3
	if maxPeriod > periodogram.MaxFFTPeriod {
		maxPeriod = periodogram.MaxFFTPeriod
	}
	if maxPeriod < 1 {
		maxPeriod = 1
	}

	broad, err := FitTrend(s, FilterMedian, maxPeriod, 0)
	if err != nil {
		return maxPeriod
	}
	resid, err := s.Detrend(broad)
	if err != nil {
		return maxPeriod
	}
	peaks, err := periodogram.Peaks(resid, 0, 0, 0)
	if err != nil || len(peaks) == 0 {
		return maxPeriod
	}

	var weighted, total float64
	for _, p := range peaks {
		weighted += float64(p.Period) * p.Power
		total += p.Power
	}
	return int(math.Round(weighted / total))
}

// aglet straightens the ends of a windowed filter output.
//
// The window/2 samples at each end are replaced with lines fit to the full
// window at each end, extrapolated outward from the nearest interior
// point. This boundary treatment is better behaved for detrending than
// shrinking the window at the ends.
func aglet(src []float64, window int) []float64 {
	n := len(src)
	dst := make([]float64, n)
	copy(dst, src)

	half := window / 2
	left := stats.TheilSenFit(src[:window])
	right := stats.TheilSenFit(src[n-window:])
	for i := 0; i < half; i++ {
		dst[i] = float64(i-half)*left.Slope + src[half]
		dst[n-half+i] = float64(i+1)*right.Slope + src[n-half-1]
	}
	return dst
}

// medianFilter applies a centered windowed median filter, leaving the
// partial windows at the ends untouched.
func medianFilter(data []float64, window int) []float64 {
	n := len(data)
	filtered := make([]float64, n)
	copy(filtered, data)

	half := window / 2
	for i := half; i < n-half; i++ {
		filtered[i] = stats.Median(data[i-half : i+half+1])
	}
	return filtered
}

// meanFilter applies a centered windowed mean filter via a cumulative sum,
// leaving the partial windows at the ends untouched.
func meanFilter(data []float64, window int) []float64 {
	n := len(data)
	filtered := make([]float64, n)
	copy(filtered, data)

	cum := make([]float64, n+1)
	floats.CumSum(cum[1:], data)
	half := window / 2
	for i := half; i < n-half; i++ {
		filtered[i] = (cum[i+half+1] - cum[i-half]) / float64(window)
	}
	return filtered
}

// lineFilter fits a robust line to median-filtered data. The median filter
// knocks down seasonal variation first; if the fitted slope is not
// significantly different from zero, the trend collapses to a flat line at
// the data median.
func lineFilter(data []float64, window int) []float64 {
	n := len(data)
	half := window / 2
	coarse := medianFilter(data, window)[half : n-half] // discard degraded ends
	fit := stats.TheilSenFit(coarse)

	filtered := make([]float64, n)
	med := stats.Median(data)
	if fit.SlopeStraddlesZero() {
		for i := range filtered {
			filtered[i] = med
		}
		return filtered
	}
	intercept := med - float64(n-1)/2*fit.Slope
	for i := range filtered {
		filtered[i] = fit.Slope*float64(i) + intercept
	}
	return filtered
}

func trendSeries(s *timeseries.Series, values []float64) *timeseries.Series {
	out := s.Copy()
	out.Values = values
	out.Name = "trend"
	return out
}
