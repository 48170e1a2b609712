package timeseries

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}
	s := New(values)

	require.Equal(t, 5, s.Len())
	assert.Equal(t, values, s.Values)
	assert.Len(t, s.Timestamps, 5)
}

func TestMean(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{"simple", []float64{1, 2, 3, 4, 5}, 3.0},
		{"single", []float64{5}, 5.0},
		{"negative", []float64{-1, -2, -3}, -2.0},
		{"mixed", []float64{-1, 0, 1}, 0.0},
		{"empty", []float64{}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, New(tt.values).Mean(), 1e-10)
		})
	}
}

func TestVariance(t *testing.T) {
	s := New([]float64{2, 4, 4, 4, 5, 5, 7, 9})

	// population variance, the form the explained-variance gates use
	assert.InDelta(t, 4.0, s.Variance(), 1e-10)
	assert.InDelta(t, 32.0/7.0, s.SampleVariance(), 1e-10)
	assert.InDelta(t, 2.0, s.Std(), 1e-10)
}

func TestMedian(t *testing.T) {
	assert.Equal(t, 3.0, New([]float64{5, 1, 3, 2, 4}).Median())
	assert.Equal(t, 2.5, New([]float64{4, 1, 2, 3}).Median())
	assert.True(t, math.IsNaN(New(nil).Median()))
}

func TestMinMax(t *testing.T) {
	s := New([]float64{3, -1, 7, 2})
	assert.Equal(t, -1.0, s.Min())
	assert.Equal(t, 7.0, s.Max())
}

func TestSlice(t *testing.T) {
	s := New([]float64{0, 1, 2, 3, 4, 5})

	sub := s.Slice(2, 5)
	require.Equal(t, 3, sub.Len())
	assert.Equal(t, []float64{2, 3, 4}, sub.Values)

	// out-of-range bounds are clamped
	assert.Equal(t, 6, s.Slice(-3, 100).Len())
	assert.Equal(t, 0, s.Slice(4, 2).Len())

	// slices are copies
	sub.Values[0] = 99
	assert.Equal(t, 2.0, s.Values[2])
}

func TestCopy(t *testing.T) {
	s := NewNamed([]float64{1, 2, 3}, "original")
	c := s.Copy()
	c.Values[0] = 42

	assert.Equal(t, 1.0, s.Values[0])
	assert.Equal(t, "original", c.Name)
}

func TestDetrend(t *testing.T) {
	s := New([]float64{10, 21, 32, 43})
	tr := New([]float64{10, 20, 30, 40})

	resid, err := s.Detrend(tr)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2, 3}, resid.Values)

	// originals untouched
	assert.Equal(t, 10.0, s.Values[0])

	_, err = s.Detrend(New([]float64{1, 2}))
	assert.Error(t, err)
}
