package holtwinters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/goseasonal/timeseries"
	"github.com/sartorproj/goseasonal/waves"
)

func trendedSeasonal(n int) *timeseries.Series {
	seasons := waves.Sine(5, 12, n/12, n%12)
	data := make([]float64, n)
	for i := range data {
		data[i] = 100 + 0.5*float64(i) + seasons[i]
	}
	return timeseries.New(data)
}

func TestEstimateState(t *testing.T) {
	st, err := EstimateState(trendedSeasonal(120))
	require.NoError(t, err)

	assert.Equal(t, -1, st.T)
	assert.Len(t, st.Seasons, 12)
	assert.InDelta(t, 0.5, st.Trend, 0.1)
	assert.InDelta(t, 100, st.Level, 5)
}

func TestEstimateStateNoSeasonality(t *testing.T) {
	values := make([]float64, 100)
	for i := range values {
		values[i] = 50
	}
	st, err := EstimateState(timeseries.New(values))
	require.NoError(t, err)

	assert.Equal(t, []float64{0}, st.Seasons)
	assert.InDelta(t, 50, st.Level, 1e-6)
	assert.InDelta(t, 0, st.Trend, 1e-6)
}

func TestEstimateStateTooShort(t *testing.T) {
	_, err := EstimateState(timeseries.New([]float64{1, 2, 3, 4, 5}))
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestStateAdvance(t *testing.T) {
	st := &State{T: -1, Level: 10, Trend: 1, Seasons: []float64{1, -1}}

	assert.Equal(t, 12.0, st.Forecast(1))
	assert.Equal(t, 11.0, st.Forecast(2))

	p := Params{Alpha: 0.5, Beta: 0.5, Gamma: 0.5}
	e := st.Advance(14, p)

	assert.Equal(t, 2.0, e)
	assert.Equal(t, 0, st.T)
	assert.Equal(t, 12.0, st.Level)
	assert.Equal(t, 1.5, st.Trend)
	assert.Equal(t, 2.0, st.Seasons[0])
	assert.Equal(t, 12.5, st.Forecast(1))
}

func TestStateClone(t *testing.T) {
	st := &State{T: 3, Level: 1, Trend: 2, Seasons: []float64{1, 2, 3}}
	c := st.Clone()
	c.Seasons[0] = 99
	c.Level = 99

	assert.Equal(t, 1.0, st.Seasons[0])
	assert.Equal(t, 1.0, st.Level)
}

func TestModelFitPredict(t *testing.T) {
	s := trendedSeasonal(120)
	m := NewWithParams(Params{Alpha: 0.5, Beta: 0.1, Gamma: 0.1})
	require.NoError(t, m.Fit(s))

	// one-step errors on clean data stay well below the data's own spread
	assert.Less(t, m.RMSE(), 2.0)

	forecast, err := m.Predict(12)
	require.NoError(t, err)
	require.Len(t, forecast, 12)
	for h, f := range forecast {
		i := 120 + h
		truth := 100 + 0.5*float64(i) + 5*sineAt(i, 12)
		assert.InDelta(t, truth, f, 5, "horizon %d", h+1)
	}
}

func TestModelFittedResiduals(t *testing.T) {
	s := trendedSeasonal(96)
	m := NewWithParams(DefaultParams())
	require.NoError(t, m.Fit(s))

	fitted := m.Fitted()
	resid := m.Residuals()
	require.Len(t, fitted, 96)
	require.Len(t, resid, 96)
	for i := range fitted {
		assert.InDelta(t, s.Values[i], fitted[i]+resid[i], 1e-9)
	}
}

func TestModelFitTooShort(t *testing.T) {
	m := New()
	err := m.Fit(timeseries.New([]float64{1, 2, 3}))
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestPredictNotFitted(t *testing.T) {
	m := New()
	_, err := m.Predict(5)
	assert.ErrorIs(t, err, ErrNotFitted)
}

func TestPhase(t *testing.T) {
	assert.Equal(t, 0, phase(0, 12))
	assert.Equal(t, 11, phase(-1, 12))
	assert.Equal(t, 1, phase(25, 12))
	assert.Equal(t, 0, phase(-12, 12))
}

func sineAt(i, period int) float64 {
	cycle := waves.Sine(1, period, 1, 0)
	return cycle[i%period]
}
