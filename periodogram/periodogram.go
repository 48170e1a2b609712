package periodogram

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/goseasonal/stats"
	"github.com/sartorproj/goseasonal/timeseries"
)

const (
	// MinFFTCycles is the number of cycles of data assumed present when
	// establishing the default FFT window size.
	MinFFTCycles = 3.0

	// MaxFFTPeriod caps the longest period considered when establishing
	// the default FFT window size.
	MaxFFTPeriod = 512

	// DefaultMinPeriod is the shortest period scored.
	DefaultMinPeriod = 4

	// DefaultThresh is the default peak retention threshold: peaks scoring
	// below DefaultThresh times the maximum power are discarded.
	DefaultThresh = 0.90
)

// ErrInsufficientData indicates the series is too short to window for a
// spectral estimate.
var ErrInsufficientData = errors.New("periodogram: series too short for spectral estimate")

// Peak is a candidate integer period with its spectral power and the two
// periodogram-grid periods bracketing it. Low bounds the period from below
// and High from above; the FFT grid is sparse at long periods, so the true
// periodicity may fall anywhere inside [Low, High].
type Peak struct {
	Period int
	Power  float64
	Low    int
	High   int
}

// Periodogram produces a robust spectral power estimate for each candidate
// integer periodicity of the (possibly noisy) series.
//
// minPeriod and maxPeriod bound the periods scored; values <= 0 select the
// defaults (DefaultMinPeriod, and the smaller of len/MinFFTCycles or
// MaxFFTPeriod). Returned periods are strictly decreasing distinct
// integers, with power aligned elementwise.
//
// This uses Welch's method of periodogram averaging, trading frequency
// precision for noise resistance. The FFT evaluates at periods N, N/2,
// N/3, ..., so longer periods are sparsely sampled; adjacent bins rounding
// to the same integer period are collapsed, keeping the maximum power.
func Periodogram(s *timeseries.Series, minPeriod, maxPeriod int) ([]int, []float64, error) {
	n := s.Len()
	if minPeriod <= 0 {
		minPeriod = DefaultMinPeriod
	}
	if maxPeriod <= 0 {
		maxPeriod = int(math.Min(float64(n)/MinFFTCycles, MaxFFTPeriod))
	}

	nperseg := maxPeriod * 2
	if half := n / 2; nperseg > half {
		nperseg = half
	}
	if nperseg < 2*minPeriod {
		return nil, nil, ErrInsufficientData
	}

	freqs, power := welch(s.Values, nperseg)

	// drop the DC bin, convert each frequency to its integer period
	periods := make([]int, 0, len(freqs)-1)
	pows := make([]float64, 0, len(freqs)-1)
	for k := 1; k < len(freqs); k++ {
		p := int(math.Round(1 / freqs[k]))
		if m := len(periods); m > 0 && periods[m-1] == p {
			// colliding bins: keep the strongest
			if power[k] > pows[m-1] {
				pows[m-1] = power[k]
			}
			continue
		}
		periods = append(periods, p)
		pows = append(pows, power[k])
	}

	// the transform leaves an artifact at exactly the window length
	for i, p := range periods {
		if p == nperseg {
			pows[i] = 0
		}
	}

	// trim to [minPeriod, maxPeriod], retaining one period above maxPeriod
	// so peak brackets can extend past it
	lo := 0
	for lo < len(periods) && periods[lo] >= maxPeriod {
		lo++
	}
	if lo > 0 {
		lo--
	}
	hi := len(periods)
	for hi > 0 && periods[hi-1] < minPeriod {
		hi--
	}
	if lo >= hi {
		return nil, nil, ErrInsufficientData
	}
	return periods[lo:hi], pows[lo:hi], nil
}

// Peaks returns candidate period intervals containing high-scoring
// periodicities, in decreasing order of power, or nil if the series shows
// no periodic power at all (a flat or DC signal).
//
// Peaks are extracted greedily: the strongest remaining period is recorded
// together with its bracketing grid periods, then consumed, until the next
// maximum falls below thresh times the overall maximum. Arguments <= 0
// select the defaults documented on Periodogram and DefaultThresh.
//
// The series should be detrended for sharpest results; trended data can be
// accommodated by lowering thresh, at the cost of more intervals.
func Peaks(s *timeseries.Series, minPeriod, maxPeriod int, thresh float64) ([]Peak, error) {
	if thresh <= 0 {
		thresh = DefaultThresh
	}
	periods, power, err := Periodogram(s, minPeriod, maxPeriod)
	if err != nil {
		return nil, err
	}
	if stats.AllNearZero(power) {
		return nil, nil // DC
	}

	var result []Peak
	keep := floats.Max(power) * thresh
	for {
		i := floats.MaxIdx(power)
		if power[i] < keep {
			break
		}
		low := periods[min(i+1, len(periods)-1)]
		high := periods[max(i-1, 0)]
		result = append(result, Peak{
			Period: periods[i],
			Power:  power[i],
			Low:    low,
			High:   high,
		})
		power[i] = 0
	}
	return result, nil
}

// welch computes an averaged one-sided power spectrum over half-overlapping
// Hann-windowed segments of length nperseg, with per-segment mean removal
// and spectrum scaling. Frequencies are in cycles per sample.
func welch(data []float64, nperseg int) (freqs, power []float64) {
	noverlap := nperseg / 2
	step := nperseg - noverlap

	win := make([]float64, nperseg)
	winSum := 0.0
	for i := range win {
		win[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(nperseg))
		winSum += win[i]
	}
	scale := 1 / (winSum * winSum)

	nfreq := nperseg/2 + 1
	power = make([]float64, nfreq)
	fft := fourier.NewFFT(nperseg)
	seg := make([]float64, nperseg)

	nseg := 0
	for start := 0; start+nperseg <= len(data); start += step {
		copy(seg, data[start:start+nperseg])
		mean := stat.Mean(seg, nil)
		for i := range seg {
			seg[i] = (seg[i] - mean) * win[i]
		}
		coeffs := fft.Coefficients(nil, seg)
		for k, c := range coeffs {
			power[k] += real(c)*real(c) + imag(c)*imag(c)
		}
		nseg++
	}

	freqs = make([]float64, nfreq)
	for k := range power {
		power[k] *= scale / float64(nseg)
		if k != 0 && !(nperseg%2 == 0 && k == nfreq-1) {
			power[k] *= 2 // fold negative frequencies, excluding DC and Nyquist
		}
		freqs[k] = float64(k) / float64(nperseg)
	}
	return freqs, power
}
