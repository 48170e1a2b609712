package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"
)

// Tolerance is the policy constant for treating floating-point values as
// numerically zero (variances, cross-validated errors, spectral power).
const Tolerance = 1e-8

// NearZero reports whether x is numerically indistinguishable from zero.
func NearZero(x float64) bool {
	return math.Abs(x) <= Tolerance
}

// AllNearZero reports whether every value is numerically zero.
func AllNearZero(xs []float64) bool {
	for _, x := range xs {
		if !NearZero(x) {
			return false
		}
	}
	return true
}

// Median returns the median of the values. The input is not modified.
func Median(xs []float64) float64 {
	n := len(xs)
	if n == 0 {
		return math.NaN()
	}
	sorted := make([]float64, n)
	copy(sorted, xs)
	sort.Float64s(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// TheilSen holds a robust line fit: the median of pairwise slopes, an
// intercept through the medians, and a 95% confidence band on the slope.
type TheilSen struct {
	Slope     float64
	Intercept float64
	LowSlope  float64
	HighSlope float64
}

// SlopeStraddlesZero reports whether the slope confidence band contains
// zero, i.e. no significant linear trend.
func (t TheilSen) SlopeStraddlesZero() bool {
	return t.LowSlope <= 0 && t.HighSlope >= 0
}

// TheilSenFit fits a robust line to y observed at x = 0, 1, ..., n-1.
//
// The slope is the median of all pairwise slopes (Sen 1968), which
// tolerates impulsive outliers that would wreck a least-squares fit. The
// confidence band follows the normal approximation to the Kendall S
// statistic; sample indices are always distinct, so no tie correction is
// applied on x.
func TheilSenFit(y []float64) TheilSen {
	n := len(y)
	if n < 2 {
		return TheilSen{Intercept: Median(y)}
	}

	slopes := make([]float64, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			slopes = append(slopes, (y[j]-y[i])/float64(j-i))
		}
	}
	sort.Float64s(slopes)

	nt := len(slopes)
	var slope float64
	if nt%2 == 0 {
		slope = (slopes[nt/2-1] + slopes[nt/2]) / 2
	} else {
		slope = slopes[nt/2]
	}
	intercept := Median(y) - slope*float64(n-1)/2

	z := distuv.Normal{Mu: 0, Sigma: 1}.Quantile(0.975)
	sigma := math.Sqrt(float64(n) * float64(n-1) * float64(2*n+5) / 18)
	rl := int(math.Round((float64(nt)-z*sigma)/2)) - 1
	ru := int(math.Round((float64(nt) + z*sigma) / 2))
	if rl < 0 {
		rl = 0
	}
	if ru > nt-1 {
		ru = nt - 1
	}

	return TheilSen{
		Slope:     slope,
		Intercept: intercept,
		LowSlope:  slopes[rl],
		HighSlope: slopes[ru],
	}
}
