package stats

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var (
	// ErrSingular is returned when the design matrix has no unique solution.
	ErrSingular = errors.New("stats: singular design matrix")
	// ErrInsufficientData is returned when fewer usable rows than regressors
	// remain.
	ErrInsufficientData = errors.New("stats: not enough observations")
	// ErrDimension is returned when input lengths disagree.
	ErrDimension = errors.New("stats: dimension mismatch")
)

// OLS estimates beta in y = X*beta + e by ordinary least squares.
func OLS(y []float64, x [][]float64) ([]float64, error) {
	return WLS(y, x, nil)
}

// WLS estimates beta minimizing sum_t w_t * (y_t - x_t*beta)^2. A nil weight
// slice means unit weights. Rows with a non-positive weight or a missing
// (NaN) value are left out.
func WLS(y []float64, x [][]float64, w []float64) ([]float64, error) {
	if len(x) != len(y) || (w != nil && len(w) != len(y)) {
		return nil, fmt.Errorf("%w: %d observations, %d design rows, %d weights", ErrDimension, len(y), len(x), len(w))
	}
	if len(y) == 0 {
		return nil, ErrInsufficientData
	}
	p := len(x[0])
	if p == 0 {
		return []float64{}, nil
	}

	rows := make([]int, 0, len(y))
	for t := range y {
		if usable(y, x, w, t, p) {
			rows = append(rows, t)
		}
	}
	if len(rows) < p {
		return nil, fmt.Errorf("%w: %d usable rows for %d regressors", ErrInsufficientData, len(rows), p)
	}

	// Scale each row by the square root of its weight.
	a := mat.NewDense(len(rows), p, nil)
	b := mat.NewDense(len(rows), 1, nil)
	for r, t := range rows {
		s := 1.0
		if w != nil {
			s = math.Sqrt(w[t])
		}
		for j := 0; j < p; j++ {
			a.Set(r, j, s*x[t][j])
		}
		b.Set(r, 0, s*y[t])
	}

	var beta mat.Dense
	if err := beta.Solve(a, b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingular, err)
	}

	coef := mat.Col(nil, 0, &beta)
	for _, v := range coef {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrSingular
		}
	}
	return coef, nil
}

// Residuals returns y - X*beta. Rows with missing values give NaN.
func Residuals(y []float64, x [][]float64, beta []float64) []float64 {
	res := make([]float64, len(y))
	for t := range y {
		res[t] = y[t] - floats.Dot(x[t], beta)
	}
	return res
}

// WeightedSSR returns sum_t w_t * (y_t - x_t*beta)^2 over the rows WLS would
// use, together with the total weight of those rows.
func WeightedSSR(y []float64, x [][]float64, beta []float64, w []float64) (ssr, weight float64) {
	p := len(beta)
	for t := range y {
		if !usable(y, x, w, t, p) {
			continue
		}
		wt := 1.0
		if w != nil {
			wt = w[t]
		}
		e := y[t] - floats.Dot(x[t], beta)
		ssr += wt * e * e
		weight += wt
	}
	return ssr, weight
}

func usable(y []float64, x [][]float64, w []float64, t, p int) bool {
	if w != nil && !(w[t] > 0) {
		return false
	}
	if math.IsNaN(y[t]) || len(x[t]) != p {
		return false
	}
	for _, v := range x[t] {
		if math.IsNaN(v) {
			return false
		}
	}
	return true
}
