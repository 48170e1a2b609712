package holtwinters

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/optimize"

	"github.com/sartorproj/goseasonal/seasonal"
	"github.com/sartorproj/goseasonal/timeseries"
)

// MinObservations is the fewest samples Fit accepts: two cycles of the
// shortest detectable period.
const MinObservations = 8

// ErrInsufficientData indicates too few observations to initialize the
// model state.
var ErrInsufficientData = errors.New("holtwinters: insufficient data points")

// ErrNotFitted indicates Predict was called before Fit.
var ErrNotFitted = errors.New("holtwinters: model is not fitted")

// Params holds the exponential smoothing rates for the level, trend, and
// seasonal components.
type Params struct {
	Alpha float64
	Beta  float64
	Gamma float64
}

// DefaultParams returns conventional starting smoothing rates.
func DefaultParams() Params {
	return Params{Alpha: 0.3, Beta: 0.1, Gamma: 0.1}
}

// State is the Holt-Winters model state after observing the sample at
// time T. A freshly estimated state is at T = -1, one step before the
// first observation.
type State struct {
	T       int
	Level   float64
	Trend   float64
	Seasons []float64
}

// Clone returns a deep copy of the state.
func (st *State) Clone() *State {
	seasons := make([]float64, len(st.Seasons))
	copy(seasons, st.Seasons)
	return &State{T: st.T, Level: st.Level, Trend: st.Trend, Seasons: seasons}
}

// Forecast returns a forecast the given number of steps past the state's
// current time.
func (st *State) Forecast(steps int) float64 {
	season := st.Seasons[phase(st.T+steps, len(st.Seasons))]
	return st.Level + st.Trend*float64(steps) + season
}

// Advance incorporates the next observation into the state using
// Hyndman's error-correction form of the additive method, returning the
// one-step forecast error for y. The state's seasonal array is updated in
// place.
func (st *State) Advance(y float64, p Params) float64 {
	e := y - st.Forecast(1)
	st.Level += st.Trend + p.Alpha*e
	st.Trend += p.Alpha * p.Beta * e
	st.Seasons[phase(st.T+1, len(st.Seasons))] += p.Gamma * e
	st.T++
	return e
}

// EstimateState estimates an initial Holt-Winters state from data. The
// seasonal component comes from a seasonal fit (a single zero season when
// no periodicity is detected); level and trend come from the first step of
// the fitted trend. Estimates are for T = -1, the step before the first
// observation.
func EstimateState(s *timeseries.Series) (*State, error) {
	if s.Len() < MinObservations {
		return nil, ErrInsufficientData
	}

	result, err := seasonal.FitSeasons(s, nil)
	if err != nil {
		return nil, err
	}

	seasons := []float64{0}
	if result.Detected() {
		seasons = make([]float64, result.Seasons.Period())
		copy(seasons, result.Seasons.Offsets)
	}

	tr := result.Trend.Values
	trendStep := tr[1] - tr[0]
	return &State{
		T:       -1,
		Level:   tr[0] - trendStep,
		Trend:   trendStep,
		Seasons: seasons,
	}, nil
}

// EstimateParams estimates smoothing parameters by minimizing the mean
// squared one-step forecast error over the data, starting from initial.
// Rates are constrained to [0, 1].
func EstimateParams(s *timeseries.Series, st *State, initial Params) (Params, error) {
	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			for _, v := range x {
				if v < 0 || v > 1 {
					return math.Inf(1)
				}
			}
			p := Params{Alpha: x[0], Beta: x[1], Gamma: x[2]}
			state := st.Clone()
			sse := 0.0
			for _, y := range s.Values {
				e := state.Advance(y, p)
				sse += e * e
			}
			return sse / float64(s.Len())
		},
	}

	x0 := []float64{initial.Alpha, initial.Beta, initial.Gamma}
	result, err := optimize.Minimize(problem, x0, nil, &optimize.NelderMead{})
	if err != nil || result == nil {
		return initial, err
	}
	return Params{Alpha: result.X[0], Beta: result.X[1], Gamma: result.X[2]}, nil
}

// Model wraps state and parameter estimation behind a fit/predict surface.
type Model struct {
	Params Params

	state      *State
	fitted     bool
	fittedVals []float64
	residuals  []float64
	estimate   bool
}

// New creates a model that estimates its smoothing parameters during Fit.
func New() *Model {
	return &Model{Params: DefaultParams(), estimate: true}
}

// NewWithParams creates a model that smooths with fixed parameters.
func NewWithParams(p Params) *Model {
	return &Model{Params: p}
}

// Fit initializes the model state from the series (seasonal fit for the
// seasons, trend fit for level and slope), optionally estimates the
// smoothing parameters, and runs the smoothing recurrence over the data.
func (m *Model) Fit(s *timeseries.Series) error {
	state, err := EstimateState(s)
	if err != nil {
		return err
	}

	if m.estimate {
		params, err := EstimateParams(s, state, m.Params)
		if err == nil {
			m.Params = params
		}
	}

	m.fittedVals = make([]float64, s.Len())
	m.residuals = make([]float64, s.Len())
	for i, y := range s.Values {
		m.fittedVals[i] = state.Forecast(1)
		m.residuals[i] = state.Advance(y, m.Params)
	}

	m.state = state
	m.fitted = true
	return nil
}

// Predict returns forecasts for the given horizon past the fitted data.
func (m *Model) Predict(horizon int) ([]float64, error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}
	out := make([]float64, horizon)
	for i := range out {
		out[i] = m.state.Forecast(i + 1)
	}
	return out, nil
}

// Fitted returns the in-sample one-step forecasts produced during Fit.
func (m *Model) Fitted() []float64 {
	return m.fittedVals
}

// Residuals returns the in-sample one-step forecast errors.
func (m *Model) Residuals() []float64 {
	return m.residuals
}

// RMSE returns the root mean squared one-step forecast error over the
// fitted data.
func (m *Model) RMSE() float64 {
	if len(m.residuals) == 0 {
		return math.NaN()
	}
	sse := 0.0
	for _, e := range m.residuals {
		sse += e * e
	}
	return math.Sqrt(sse / float64(len(m.residuals)))
}

// phase maps a possibly negative time index onto a seasonal position.
func phase(t, period int) int {
	p := t % period
	if p < 0 {
		p += period
	}
	return p
}
