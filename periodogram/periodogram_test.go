package periodogram

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/goseasonal/timeseries"
	"github.com/sartorproj/goseasonal/waves"
)

func TestPeaksFlat(t *testing.T) {
	peaks, err := Peaks(timeseries.New(make([]float64, 1000)), 0, 0, 0)
	require.NoError(t, err)
	assert.Nil(t, peaks)
}

func TestPeaksConstant(t *testing.T) {
	values := make([]float64, 500)
	for i := range values {
		values[i] = 42.0
	}
	peaks, err := Peaks(timeseries.New(values), 0, 0, 0)
	require.NoError(t, err)
	assert.Nil(t, peaks)
}

func TestPeaksBracketPeriod(t *testing.T) {
	// the FFT grid is sparse at long periods, so a peak is only required
	// to bracket the true period, not to land on it
	for _, period := range []int{12, 52, 113} {
		shapes := map[string][]float64{
			"sine":     waves.Sine(1, period, 6, period/3),
			"impulses": waves.Impulses(period/6, period, 6, period/3),
			"sawtooth": waves.Sawtooth(1, period, 6, period/3),
		}
		for name, data := range shapes {
			t.Run(fmt.Sprintf("%s_%d", name, period), func(t *testing.T) {
				peaks, err := Peaks(timeseries.New(data), 0, 0, 0.5)
				require.NoError(t, err)
				require.NotEmpty(t, peaks)

				found := false
				for _, p := range peaks {
					if p.Low <= period && period <= p.High {
						found = true
					}
					assert.GreaterOrEqual(t, p.High, p.Period)
					assert.LessOrEqual(t, p.Low, p.Period)
				}
				assert.True(t, found, "no peak interval contains %d: %+v", period, peaks)
			})
		}
	}
}

func TestPeaksOrderedByPower(t *testing.T) {
	data := waves.AddNoise(waves.Sine(2, 25, 8, 0), 0.1, 1)
	peaks, err := Peaks(timeseries.New(data), 0, 0, 0.1)
	require.NoError(t, err)
	require.NotEmpty(t, peaks)
	for i := 1; i < len(peaks); i++ {
		assert.GreaterOrEqual(t, peaks[i-1].Power, peaks[i].Power)
	}
}

func TestPeriodogramGrid(t *testing.T) {
	data := waves.Sine(1, 12, 20, 0)
	periods, power, err := Periodogram(timeseries.New(data), 0, 0)
	require.NoError(t, err)
	require.Equal(t, len(periods), len(power))
	require.NotEmpty(t, periods)

	for i := 1; i < len(periods); i++ {
		assert.Less(t, periods[i], periods[i-1], "periods must be strictly decreasing")
	}
	for _, p := range power {
		assert.GreaterOrEqual(t, p, 0.0)
	}
}

func TestPeriodogramConcentratesPower(t *testing.T) {
	// an on-grid sine puts its strongest bin near the true period
	data := waves.Sine(1, 16, 16, 0)
	periods, power, err := Periodogram(timeseries.New(data), 0, 0)
	require.NoError(t, err)

	best, bestPow := 0, 0.0
	for i, p := range power {
		if p > bestPow {
			best, bestPow = periods[i], p
		}
	}
	assert.InDelta(t, 16, best, 3)
}

func TestPeriodogramTooShort(t *testing.T) {
	_, _, err := Periodogram(timeseries.New(waves.Sine(1, 5, 2, 0)), 0, 0)
	assert.ErrorIs(t, err, ErrInsufficientData)

	_, err = Peaks(timeseries.New(waves.Sine(1, 5, 2, 0)), 0, 0, 0)
	assert.ErrorIs(t, err, ErrInsufficientData)
}
