package msregression

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/goregime/regime"
)

// Params is the structured form of a parameter vector.
//
// The flat layout is:
//
//	[transition (k*(k-1), by origin regime) | coefficients (k per regressor) | variances (k or 1)]
//
// Coefficients of one regressor are contiguous across regimes, and variances
// are stored as sigma^2.
type Params struct {
	// Transition.At(i, j) is P(S_t = i | S_{t-1} = j).
	Transition *mat.Dense
	// Coefficients[s] holds the regression coefficients of regime s.
	Coefficients [][]float64
	// Variances[s] is the error variance of regime s. All entries are equal
	// when the variance does not switch.
	Variances []float64
}

// Decode splits a flat parameter vector into its components and validates
// them.
func (m *Model) Decode(params []float64) (*Params, error) {
	if len(params) != m.KParams() {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrParamLength, len(params), m.KParams())
	}

	nf := regime.NumFree(m.k)
	p, err := regime.TransitionMatrix(params[:nf], m.k)
	if err != nil {
		return nil, err
	}

	kx := len(m.names)
	coefs := make([][]float64, m.k)
	for s := range coefs {
		coefs[s] = make([]float64, kx)
		for r := 0; r < kx; r++ {
			coefs[s][r] = params[nf+r*m.k+s]
		}
	}

	off := nf + kx*m.k
	variances := make([]float64, m.k)
	for s := range variances {
		v := params[off]
		if m.switchingVariance {
			v = params[off+s]
		}
		if !(v > 0) || math.IsInf(v, 1) {
			return nil, fmt.Errorf("%w: regime %d has %g", ErrNonPositiveVariance, s, v)
		}
		variances[s] = v
	}

	return &Params{Transition: p, Coefficients: coefs, Variances: variances}, nil
}

// Encode flattens structured parameters. With a shared variance only
// Variances[0] is used.
func (m *Model) Encode(p *Params) ([]float64, error) {
	if p == nil || p.Transition == nil {
		return nil, fmt.Errorf("%w: missing transition matrix", ErrParamLength)
	}
	if r, c := p.Transition.Dims(); r != m.k || c != m.k {
		return nil, fmt.Errorf("%w: transition matrix is %dx%d, want %dx%d", ErrParamLength, r, c, m.k, m.k)
	}
	if len(p.Coefficients) != m.k || len(p.Variances) != m.k {
		return nil, fmt.Errorf("%w: need %d regimes of coefficients and variances", ErrParamLength, m.k)
	}

	kx := len(m.names)
	out := regime.FreeTransition(p.Transition)
	for r := 0; r < kx; r++ {
		for s := 0; s < m.k; s++ {
			if len(p.Coefficients[s]) != kx {
				return nil, fmt.Errorf("%w: regime %d has %d coefficients, want %d", ErrParamLength, s, len(p.Coefficients[s]), kx)
			}
			out = append(out, p.Coefficients[s][r])
		}
	}
	if m.switchingVariance {
		out = append(out, p.Variances...)
	} else {
		out = append(out, p.Variances[0])
	}
	return out, nil
}

// TransformParams maps an unconstrained vector, as seen by the optimizer, to
// valid model parameters: transition probabilities through a multinomial
// logit per origin regime and variances as squares.
func (m *Model) TransformParams(unconstrained []float64) ([]float64, error) {
	if len(unconstrained) != m.KParams() {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrParamLength, len(unconstrained), m.KParams())
	}
	nf := regime.NumFree(m.k)
	off := nf + m.k*len(m.names)

	out := regime.ConstrainTransition(unconstrained[:nf], m.k)
	out = append(out, unconstrained[nf:off]...)
	for _, v := range unconstrained[off:] {
		out = append(out, v*v)
	}
	return out, nil
}

// UntransformParams is the inverse of TransformParams. Variance square roots
// are taken as positive.
func (m *Model) UntransformParams(constrained []float64) ([]float64, error) {
	if len(constrained) != m.KParams() {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrParamLength, len(constrained), m.KParams())
	}
	nf := regime.NumFree(m.k)
	off := nf + m.k*len(m.names)

	out := regime.UnconstrainTransition(constrained[:nf], m.k)
	out = append(out, constrained[nf:off]...)
	for _, v := range constrained[off:] {
		out = append(out, math.Sqrt(math.Max(v, 0)))
	}
	return out, nil
}
