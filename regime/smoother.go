package regime

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// SmootherResult holds the output of the Kim smoother.
type SmootherResult struct {
	// Smoothed[t][i] is P(S_t = i | y_0..y_{T-1}).
	Smoothed [][]float64
	// TransitionSums.At(i, j) is the expected number of moves from regime j to
	// regime i, sum_t P(S_t = i, S_{t-1} = j | y_0..y_{T-1}). The regime
	// before the first observation is distributed as the filter's initial
	// distribution, so the entries sum to T.
	TransitionSums *mat.Dense
}

// Smooth runs the Kim smoother backwards over a filter result. transition and
// initial must be the ones the filter was run with.
func Smooth(fr *FilterResult, transition mat.Matrix, initial []float64) (*SmootherResult, error) {
	if fr.Degenerate {
		return nil, fmt.Errorf("%w: zero likelihood at observation %d", ErrDegenerate, fr.DegenerateAt)
	}
	k, c := transition.Dims()
	if k != c || len(initial) != k {
		return nil, fmt.Errorf("%w: transition %dx%d, initial %d", ErrDimension, k, c, len(initial))
	}
	n := len(fr.Filtered)
	if n == 0 {
		return nil, ErrEmpty
	}

	smoothed := make([][]float64, n)
	smoothed[n-1] = append([]float64(nil), fr.Filtered[n-1]...)

	for t := n - 2; t >= 0; t-- {
		next := smoothed[t+1]
		pred := fr.Predicted[t+1]
		row := make([]float64, k)
		for i := 0; i < k; i++ {
			sum := 0.0
			for j := 0; j < k; j++ {
				if pred[j] <= 0 {
					continue
				}
				sum += transition.At(j, i) * next[j] / pred[j]
			}
			row[i] = fr.Filtered[t][i] * sum
		}
		if total := floats.Sum(row); total > 0 {
			floats.Scale(1/total, row)
		}
		smoothed[t] = row
	}

	sums := mat.NewDense(k, k, nil)
	for t := 0; t < n; t++ {
		prev := initial
		if t > 0 {
			prev = fr.Filtered[t-1]
		}
		for i := 0; i < k; i++ {
			pred := fr.Predicted[t][i]
			if pred <= 0 {
				continue
			}
			w := smoothed[t][i] / pred
			for j := 0; j < k; j++ {
				sums.Set(i, j, sums.At(i, j)+w*transition.At(i, j)*prev[j])
			}
		}
	}

	return &SmootherResult{Smoothed: smoothed, TransitionSums: sums}, nil
}
