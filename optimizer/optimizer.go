// Package optimizer provides the numerical minimizer used for direct maximum
// likelihood estimation.
//
// The estimators only depend on the Minimizer interface; Gonum implements it
// on top of gonum.org/v1/gonum/optimize with finite-difference gradients.
package optimizer

import (
	"errors"
	"fmt"
	"strings"
)

// Objective is a function to minimize. It may return +Inf for points outside
// its domain.
type Objective func(x []float64) float64

// Result is the outcome of a minimization. X is the best point found even when
// Converged is false.
type Result struct {
	X               []float64
	F               float64
	Converged       bool
	Iterations      int
	FuncEvaluations int
	Status          string
	Method          string
}

// Minimizer minimizes an objective from a starting point. Failing to converge
// is reported through Result.Converged, not as an error.
type Minimizer interface {
	Minimize(f Objective, start []float64) (*Result, error)
}

// Method names accepted by Options.Method.
const (
	MethodBFGS       = "bfgs"
	MethodLBFGS      = "lbfgs"
	MethodNelderMead = "nm"
)

var (
	// ErrUnknownMethod is returned for a method name that is not supported.
	ErrUnknownMethod = errors.New("optimizer: unknown method")
	// ErrEmptyStart is returned when the starting point has no coordinates.
	ErrEmptyStart = errors.New("optimizer: empty starting point")
)

// Options configures a Gonum minimizer.
type Options struct {
	Method string // "bfgs" (default), "lbfgs" or "nm"
	// MaxIter bounds the major iterations of the gradient methods. Nelder-Mead
	// gets MaxIter times the dimension.
	MaxIter int
	// GradientTol stops when the gradient norm falls below it.
	GradientTol float64
	// FunctionTol stops when the objective improves by less than this over
	// FunctionIters iterations.
	FunctionTol   float64
	FunctionIters int
	// Fallback runs Nelder-Mead from the best point when a gradient method
	// ends without converging.
	Fallback bool
	// Disp logs every major iteration at info level.
	Disp bool
}

// DefaultOptions returns BFGS with 100 iterations and Nelder-Mead fallback.
func DefaultOptions() *Options {
	return &Options{
		Method:        MethodBFGS,
		MaxIter:       100,
		GradientTol:   1e-6,
		FunctionTol:   1e-10,
		FunctionIters: 20,
		Fallback:      true,
	}
}

// ParseMethod normalizes a method name.
func ParseMethod(name string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", MethodBFGS:
		return MethodBFGS, nil
	case MethodLBFGS, "l-bfgs":
		return MethodLBFGS, nil
	case MethodNelderMead, "nelder-mead", "neldermead":
		return MethodNelderMead, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMethod, name)
	}
}
