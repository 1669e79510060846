package regime

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// FilterResult holds the output of the Hamilton filter for T observations and
// k regimes.
type FilterResult struct {
	// Predicted[t][i] is P(S_t = i | y_0..y_{t-1}).
	Predicted [][]float64
	// Filtered[t][i] is P(S_t = i | y_0..y_t).
	Filtered [][]float64
	// LogLikeObs[t] is the log of the marginal density of y_t.
	LogLikeObs []float64
	// LogLike is the sum of LogLikeObs, -Inf when the filter degenerated.
	LogLike float64

	// Degenerate is set when an observation had zero marginal likelihood.
	// DegenerateAt is the first such index, -1 otherwise.
	Degenerate   bool
	DegenerateAt int
}

// Filter runs the Hamilton filter. logDensity[t][i] is the log conditional
// density of observation t in regime i, transition is the column-stochastic
// transition matrix and initial the distribution of the regime before the
// first observation. The chain takes one step before the first observation,
// so Predicted[0] is transition·initial; for a stationary initial
// distribution this equals initial.
//
// Joint probabilities are formed in log space and normalized with a
// log-sum-exp, so observations far in the tails do not underflow. An
// observation whose marginal likelihood is still zero marks the result
// degenerate: its contribution and that of every later observation is -Inf
// and the remaining rows are uniform.
func Filter(logDensity [][]float64, transition mat.Matrix, initial []float64) (*FilterResult, error) {
	k, c := transition.Dims()
	if k != c || len(initial) != k {
		return nil, fmt.Errorf("%w: transition %dx%d, initial %d", ErrDimension, k, c, len(initial))
	}
	n := len(logDensity)
	if n == 0 {
		return nil, ErrEmpty
	}

	res := &FilterResult{
		Predicted:    make([][]float64, n),
		Filtered:     make([][]float64, n),
		LogLikeObs:   make([]float64, n),
		DegenerateAt: -1,
	}

	prev := mat.NewVecDense(k, append([]float64(nil), initial...))
	joint := make([]float64, k)

	for t := 0; t < n; t++ {
		if len(logDensity[t]) != k {
			return nil, fmt.Errorf("%w: row %d has %d densities, want %d", ErrDimension, t, len(logDensity[t]), k)
		}

		pred := mat.NewVecDense(k, nil)
		pred.MulVec(transition, prev)
		res.Predicted[t] = pred.RawVector().Data

		for i := 0; i < k; i++ {
			p := res.Predicted[t][i]
			if p <= 0 {
				joint[i] = math.Inf(-1)
				continue
			}
			joint[i] = math.Log(p) + logDensity[t][i]
		}

		marginal := floats.LogSumExp(joint)
		if math.IsNaN(marginal) || math.IsInf(marginal, 0) {
			res.degenerate(t, k)
			return res, nil
		}

		filtered := make([]float64, k)
		for i, v := range joint {
			filtered[i] = math.Exp(v - marginal)
		}
		res.Filtered[t] = filtered
		res.LogLikeObs[t] = marginal
		res.LogLike += marginal

		prev = mat.NewVecDense(k, filtered)
	}

	return res, nil
}

// degenerate fills the result from index t onwards.
func (r *FilterResult) degenerate(t, k int) {
	r.Degenerate = true
	r.DegenerateAt = t
	r.LogLike = math.Inf(-1)
	for s := t; s < len(r.Filtered); s++ {
		if s > t || r.Predicted[s] == nil {
			r.Predicted[s] = uniform(k)
		}
		r.Filtered[s] = uniform(k)
		r.LogLikeObs[s] = math.Inf(-1)
	}
}

func uniform(k int) []float64 {
	u := make([]float64, k)
	for i := range u {
		u[i] = 1 / float64(k)
	}
	return u
}
