// Package regime implements the model-independent parts of Markov switching
// estimation: the transition matrix of the hidden regime chain, the Hamilton
// filter and the Kim smoother.
//
// The transition matrix P is column stochastic: P.At(i, j) is the probability
// of moving to regime i from regime j, so every column sums to one.
//
// # Parameterization
//
// A k-regime chain has k*(k-1) free probabilities. They are grouped by origin
// regime: free[j*(k-1)+i] = P(S_t = i | S_{t-1} = j) for i < k-1, and the last
// destination of each column takes the remaining mass.
//
//	p, err := regime.TransitionMatrix([]float64{0.98, 0.05}, 2)
//	if err != nil {
//	    return err
//	}
//	pi := regime.SteadyState(p)
//
// # Filtering and Smoothing
//
// Filter consumes a T×k matrix of conditional log-densities and returns the
// predicted and filtered regime probabilities together with the
// log-likelihood. Smooth runs the backward pass over a filter result.
//
//	fr, err := regime.Filter(logDensity, p, pi)
//	sr, err := regime.Smooth(fr, p, pi)
//
// Both recursions are strictly sequential in time and hold no state between
// calls, so independent evaluations can run concurrently.
package regime
