package regime

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// roundingTolerance bounds the negative probabilities accepted as
// floating-point noise; they are clipped to zero.
const roundingTolerance = 1e-10

// NumFree returns the number of free transition probabilities of a k-regime
// chain.
func NumFree(k int) int {
	return k * (k - 1)
}

// TransitionMatrix builds the column-stochastic transition matrix of a
// k-regime chain from its k*(k-1) free probabilities.
func TransitionMatrix(free []float64, k int) (*mat.Dense, error) {
	if k < 2 {
		return nil, ErrRegimeCount
	}
	if len(free) != NumFree(k) {
		return nil, fmt.Errorf("%w: got %d free probabilities, want %d", ErrDimension, len(free), NumFree(k))
	}

	p := mat.NewDense(k, k, nil)
	for j := 0; j < k; j++ {
		col := free[j*(k-1) : (j+1)*(k-1)]
		rest := 1.0
		for i, v := range col {
			p.Set(i, j, v)
			rest -= v
		}
		p.Set(k-1, j, rest)
	}

	if err := CheckTransition(p); err != nil {
		return nil, err
	}
	return p, nil
}

// FreeTransition extracts the free probabilities of a transition matrix in the
// order expected by TransitionMatrix.
func FreeTransition(p mat.Matrix) []float64 {
	k, _ := p.Dims()
	free := make([]float64, 0, NumFree(k))
	for j := 0; j < k; j++ {
		for i := 0; i < k-1; i++ {
			free = append(free, p.At(i, j))
		}
	}
	return free
}

// CheckTransition verifies that p is square with non-negative columns summing
// to one. Negative entries within rounding tolerance are clipped to zero in
// place when p is a *mat.Dense.
func CheckTransition(p mat.Matrix) error {
	r, c := p.Dims()
	if r != c {
		return fmt.Errorf("%w: transition matrix is %dx%d", ErrDimension, r, c)
	}
	if r < 2 {
		return ErrRegimeCount
	}
	dense, mutable := p.(*mat.Dense)

	for j := 0; j < c; j++ {
		sum := 0.0
		for i := 0; i < r; i++ {
			v := p.At(i, j)
			switch {
			case math.IsNaN(v) || math.IsInf(v, 0):
				return fmt.Errorf("%w: column %d holds %v", ErrInvalidTransition, j, v)
			case v < -roundingTolerance || v > 1+roundingTolerance:
				return fmt.Errorf("%w: column %d entry %d is %g", ErrInvalidTransition, j, i, v)
			case v < 0:
				v = 0
				if mutable {
					dense.Set(i, j, 0)
				}
			}
			sum += v
		}
		if math.Abs(sum-1) > 1e-8 {
			return fmt.Errorf("%w: column %d sums to %g", ErrInvalidTransition, j, sum)
		}
	}
	return nil
}

// SteadyState returns the stationary distribution of the chain, the solution
// of (I-P)pi = 0 with the entries of pi summing to one. The overdetermined
// system is solved by least squares. When no valid distribution comes out of
// the solve, for example for a reducible chain, the uniform distribution is
// returned.
func SteadyState(p mat.Matrix) []float64 {
	k, _ := p.Dims()
	uniform := make([]float64, k)
	for i := range uniform {
		uniform[i] = 1 / float64(k)
	}

	a := mat.NewDense(k+1, k, nil)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			v := -p.At(i, j)
			if i == j {
				v++
			}
			a.Set(i, j, v)
		}
		a.Set(k, i, 1)
	}
	b := mat.NewDense(k+1, 1, nil)
	b.Set(k, 0, 1)

	var x mat.Dense
	if err := x.Solve(a, b); err != nil {
		return uniform
	}

	pi := mat.Col(nil, 0, &x)
	for i, v := range pi {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < -1e-8 {
			return uniform
		}
		if v < 0 {
			pi[i] = 0
		}
	}
	total := floats.Sum(pi)
	if total <= 0 {
		return uniform
	}
	floats.Scale(1/total, pi)
	return pi
}

// ExpectedDurations returns the expected number of periods spent in each
// regime once entered, 1/(1-p_ii). Absorbing regimes last forever.
func ExpectedDurations(p mat.Matrix) []float64 {
	k, _ := p.Dims()
	d := make([]float64, k)
	for i := range d {
		stay := p.At(i, i)
		if stay >= 1 {
			d[i] = math.Inf(1)
			continue
		}
		d[i] = 1 / (1 - stay)
	}
	return d
}
