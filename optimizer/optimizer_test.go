package optimizer

import (
	"bytes"
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quiet() zerolog.Logger {
	return zerolog.New(nil).Level(zerolog.Disabled)
}

func quadratic(x []float64) float64 {
	return (x[0]-1)*(x[0]-1) + 2*(x[1]+2)*(x[1]+2)
}

func rosenbrock(x []float64) float64 {
	a := 1 - x[0]
	b := x[1] - x[0]*x[0]
	return a*a + 100*b*b
}

func TestMinimizeMethods(t *testing.T) {
	for _, method := range []string{MethodBFGS, MethodLBFGS, MethodNelderMead} {
		t.Run(method, func(t *testing.T) {
			opts := DefaultOptions()
			opts.Method = method
			m, err := NewGonum(opts, quiet())
			require.NoError(t, err)

			res, err := m.Minimize(quadratic, []float64{4, 3})
			require.NoError(t, err)
			assert.InDelta(t, 1, res.X[0], 1e-3)
			assert.InDelta(t, -2, res.X[1], 1e-3)
			assert.Less(t, res.F, 1e-5)
			assert.Equal(t, method, res.Method)
			assert.Greater(t, res.FuncEvaluations, 0)
		})
	}
}

func TestMinimizeRosenbrock(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxIter = 500
	m, err := NewGonum(opts, quiet())
	require.NoError(t, err)

	res, err := m.Minimize(rosenbrock, []float64{-1.2, 1})
	require.NoError(t, err)
	assert.InDelta(t, 1, res.X[0], 1e-2)
	assert.InDelta(t, 1, res.X[1], 1e-2)
}

func TestMinimizeInfiniteRegion(t *testing.T) {
	// Points with x[0] < 0 lie outside the domain.
	f := func(x []float64) float64 {
		if x[0] < 0 {
			return math.Inf(1)
		}
		return quadratic(x)
	}
	m, err := NewGonum(nil, quiet())
	require.NoError(t, err)

	res, err := m.Minimize(f, []float64{3, 3})
	require.NoError(t, err)
	assert.LessOrEqual(t, res.F, f([]float64{3, 3}))
	assert.InDelta(t, 1, res.X[0], 1e-2)
	assert.InDelta(t, -2, res.X[1], 1e-2)
}

func TestMinimizeNeverWorseThanStart(t *testing.T) {
	f := func(x []float64) float64 {
		if x[0] == 0.5 && x[1] == 0.5 {
			return 0
		}
		return math.NaN()
	}
	m, err := NewGonum(nil, quiet())
	require.NoError(t, err)

	res, err := m.Minimize(f, []float64{0.5, 0.5})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0.5}, res.X)
	assert.Equal(t, 0.0, res.F)
}

func TestMinimizeIterationLimit(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxIter = 2
	opts.Fallback = false
	m, err := NewGonum(opts, quiet())
	require.NoError(t, err)

	res, err := m.Minimize(rosenbrock, []float64{-1.2, 1})
	require.NoError(t, err)
	assert.False(t, res.Converged)
	assert.LessOrEqual(t, res.F, rosenbrock([]float64{-1.2, 1}))
}

func TestMinimizeDisp(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Disp = true
	m, err := NewGonum(opts, zerolog.New(&buf))
	require.NoError(t, err)

	_, err = m.Minimize(quadratic, []float64{4, 3})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "optimizer iteration")
	assert.Contains(t, buf.String(), `"component":"optimizer"`)
}

func TestMinimizeErrors(t *testing.T) {
	_, err := NewGonum(&Options{Method: "simplex-ish"}, quiet())
	assert.ErrorIs(t, err, ErrUnknownMethod)

	m, err := NewGonum(nil, quiet())
	require.NoError(t, err)
	_, err = m.Minimize(quadratic, nil)
	assert.ErrorIs(t, err, ErrEmptyStart)
}

func TestParseMethod(t *testing.T) {
	tests := map[string]string{
		"":            MethodBFGS,
		"BFGS":        MethodBFGS,
		"l-bfgs":      MethodLBFGS,
		"nelder-mead": MethodNelderMead,
		" nm ":        MethodNelderMead,
	}
	for in, want := range tests {
		got, err := ParseMethod(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}
