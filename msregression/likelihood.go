package msregression

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/goregime/regime"
)

// ProbabilityKind selects the regime probabilities used by Predict.
type ProbabilityKind int

const (
	Predicted ProbabilityKind = iota // P(S_t | y_0..y_{t-1})
	Filtered                         // P(S_t | y_0..y_t)
	Smoothed                         // P(S_t | y_0..y_{T-1})
)

func (k ProbabilityKind) String() string {
	switch k {
	case Predicted:
		return "predicted"
	case Filtered:
		return "filtered"
	default:
		return "smoothed"
	}
}

// evaluation is the filter output for one parameter vector.
type evaluation struct {
	params  *Params
	initial []float64
	filter  *regime.FilterResult
}

// logDensities returns the T×k matrix of Normal log-densities of each
// observation under each regime. Missing observations have density one.
func (m *Model) logDensities(p *Params) [][]float64 {
	dists := make([]distuv.Normal, m.k)
	for s := range dists {
		dists[s].Sigma = math.Sqrt(p.Variances[s])
	}

	out := make([][]float64, len(m.endog))
	for t, y := range m.endog {
		row := make([]float64, m.k)
		if m.complete[t] {
			for s := range dists {
				dists[s].Mu = floats.Dot(m.design[t], p.Coefficients[s])
				row[s] = dists[s].LogProb(y)
			}
		}
		out[t] = row
	}
	return out
}

func (m *Model) evaluate(params []float64) (*evaluation, error) {
	p, err := m.Decode(params)
	if err != nil {
		return nil, err
	}
	initial := regime.SteadyState(p.Transition)
	fr, err := regime.Filter(m.logDensities(p), p.Transition, initial)
	if err != nil {
		return nil, err
	}
	return &evaluation{params: p, initial: initial, filter: fr}, nil
}

// Loglike returns the log-likelihood of params. Invalid parameters (wrong
// length, transition probabilities outside [0, 1], non-positive variances)
// and parameters under which some observation has zero likelihood give -Inf.
func (m *Model) Loglike(params []float64) float64 {
	ev, err := m.evaluate(params)
	if err != nil {
		return math.Inf(-1)
	}
	return ev.filter.LogLike
}

// Densities returns the T×k matrix of conditional densities f(y_t | S_t = s).
func (m *Model) Densities(params []float64) ([][]float64, error) {
	p, err := m.Decode(params)
	if err != nil {
		return nil, err
	}
	out := m.logDensities(p)
	for _, row := range out {
		for s, v := range row {
			row[s] = math.Exp(v)
		}
	}
	return out, nil
}

// Filter runs the Hamilton filter at params. The initial regime distribution
// is the stationary distribution of the transition matrix.
func (m *Model) Filter(params []float64) (*regime.FilterResult, error) {
	ev, err := m.evaluate(params)
	if err != nil {
		return nil, err
	}
	return ev.filter, nil
}

// Smooth runs the filter and the Kim smoother at params.
func (m *Model) Smooth(params []float64) (*regime.SmootherResult, error) {
	ev, err := m.evaluate(params)
	if err != nil {
		return nil, err
	}
	return regime.Smooth(ev.filter, ev.params.Transition, ev.initial)
}

// Predict returns in-sample fitted values, the regime means weighted by the
// chosen regime probabilities. Rows with missing regressors are NaN.
func (m *Model) Predict(params []float64, kind ProbabilityKind) ([]float64, error) {
	ev, err := m.evaluate(params)
	if err != nil {
		return nil, err
	}

	probs := ev.filter.Predicted
	switch kind {
	case Filtered:
		probs = ev.filter.Filtered
	case Smoothed:
		sr, err := regime.Smooth(ev.filter, ev.params.Transition, ev.initial)
		if err != nil {
			return nil, err
		}
		probs = sr.Smoothed
	}

	out := make([]float64, len(m.endog))
	for t, row := range m.design {
		if floats.HasNaN(row) {
			out[t] = math.NaN()
			continue
		}
		for s := 0; s < m.k; s++ {
			out[t] += probs[t][s] * floats.Dot(row, ev.params.Coefficients[s])
		}
	}
	return out, nil
}

// Residuals returns y - Predict(params, kind).
func (m *Model) Residuals(params []float64, kind ProbabilityKind) ([]float64, error) {
	fitted, err := m.Predict(params, kind)
	if err != nil {
		return nil, err
	}
	for t, y := range m.endog {
		fitted[t] = y - fitted[t]
	}
	return fitted, nil
}

// ExpectedDurations returns the expected number of periods spent in each
// regime, 1/(1-p_ii).
func (m *Model) ExpectedDurations(params []float64) ([]float64, error) {
	p, err := m.Decode(params)
	if err != nil {
		return nil, fmt.Errorf("expected durations: %w", err)
	}
	return regime.ExpectedDurations(p.Transition), nil
}
