package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func linearData(n int) ([]float64, [][]float64) {
	y := make([]float64, n)
	x := make([][]float64, n)
	for i := 0; i < n; i++ {
		xi := float64(i) / 10
		x[i] = []float64{1, xi}
		y[i] = 2 + 0.5*xi + float64(i%7-3)/30
	}
	return y, x
}

func TestOLS(t *testing.T) {
	y, x := linearData(200)

	beta, err := OLS(y, x)
	require.NoError(t, err)
	require.Len(t, beta, 2)
	assert.InDelta(t, 2, beta[0], 0.05)
	assert.InDelta(t, 0.5, beta[1], 0.01)

	// Residuals of an intercept model sum to zero.
	res := Residuals(y, x, beta)
	sum := 0.0
	for _, r := range res {
		sum += r
	}
	assert.InDelta(t, 0, sum, 1e-8)
}

func TestOLSExactFit(t *testing.T) {
	x := [][]float64{{1, 0}, {1, 1}, {1, 2}}
	y := []float64{1, 3, 5}

	beta, err := OLS(y, x)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 2}, beta, 1e-12)
}

func TestWLSMatchesSubsetOLS(t *testing.T) {
	y, x := linearData(50)
	w := make([]float64, len(y))
	for i := range w {
		if i%2 == 0 {
			w[i] = 1
		}
	}
	// Shift the zero-weight rows so that any leak would show.
	for i := 1; i < len(y); i += 2 {
		y[i] += 100
	}

	beta, err := WLS(y, x, w)
	require.NoError(t, err)

	var ys []float64
	var xs [][]float64
	for i := 0; i < len(y); i += 2 {
		ys = append(ys, y[i])
		xs = append(xs, x[i])
	}
	want, err := OLS(ys, xs)
	require.NoError(t, err)
	assert.InDeltaSlice(t, want, beta, 1e-10)
}

func TestWLSWeightedMean(t *testing.T) {
	x := [][]float64{{1}, {1}, {1}}
	y := []float64{1, 2, 4}
	w := []float64{0.5, 0.25, 0.25}

	beta, err := WLS(y, x, w)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, beta[0], 1e-12)

	ssr, weight := WeightedSSR(y, x, beta, w)
	assert.InDelta(t, 0.5*1+0.25*0+0.25*4, ssr, 1e-12)
	assert.InDelta(t, 1.0, weight, 1e-12)
}

func TestWLSSkipsMissing(t *testing.T) {
	x := [][]float64{{1, 0}, {1, 1}, {1, math.NaN()}, {1, 3}}
	y := []float64{1, 3, 100, 7}

	beta, err := OLS(y, x)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 2}, beta, 1e-12)

	y[3] = math.NaN()
	beta, err = OLS(y, x)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 2}, beta, 1e-12)
}

func TestWLSErrors(t *testing.T) {
	_, err := WLS([]float64{1, 2}, [][]float64{{1}}, nil)
	assert.ErrorIs(t, err, ErrDimension)

	_, err = WLS([]float64{1, 2}, [][]float64{{1, 1}, {1, 2}}, []float64{1, 0})
	assert.ErrorIs(t, err, ErrInsufficientData)

	_, err = OLS(nil, nil)
	assert.ErrorIs(t, err, ErrInsufficientData)

	// A regressor that is zero everywhere.
	_, err = OLS([]float64{1, 2, 3}, [][]float64{{1, 0}, {1, 0}, {1, 0}})
	assert.ErrorIs(t, err, ErrSingular)
}

func TestWLSNoRegressors(t *testing.T) {
	beta, err := OLS([]float64{1, 2}, [][]float64{{}, {}})
	require.NoError(t, err)
	assert.Empty(t, beta)

	ssr, weight := WeightedSSR([]float64{1, 2}, [][]float64{{}, {}}, beta, nil)
	assert.InDelta(t, 5.0, ssr, 1e-12)
	assert.InDelta(t, 2.0, weight, 1e-12)
}

func TestCalculateIC(t *testing.T) {
	logLik := -50.0
	nObs := 100
	nParams := 3

	ic := CalculateIC(logLik, nObs, nParams)

	assert.InDelta(t, 106.0, ic.AIC, 1e-10)
	assert.InDelta(t, 100+3*math.Log(100), ic.BIC, 1e-10)
	assert.InDelta(t, 100+6*math.Log(math.Log(100)), ic.HQIC, 1e-10)
	assert.GreaterOrEqual(t, ic.AICc, ic.AIC)

	assert.Equal(t, ic.BIC, ic.Criterion("bic"))
	assert.Equal(t, ic.HQIC, ic.Criterion("hqic"))
	assert.Equal(t, ic.AIC, ic.Criterion("unknown"))

	assert.True(t, math.IsInf(AICc(100.0, 5, 5), 1))
}

func TestACF(t *testing.T) {
	n := 100
	phi := 0.8
	values := make([]float64, n)
	for i := 1; i < n; i++ {
		values[i] = phi*values[i-1] + (float64(i%10)-5)/10
	}

	acf := ACF(values, 10)
	require.NotNil(t, acf)
	assert.InDelta(t, 1.0, acf[0], 1e-10)
	assert.Greater(t, acf[1], 0.5)

	assert.Nil(t, ACF([]float64{3, 3, 3}, 2))
}

func TestLjungBox(t *testing.T) {
	n := 100
	autocorrelated := make([]float64, n)
	for i := 1; i < n; i++ {
		autocorrelated[i] = 0.9*autocorrelated[i-1] + float64(i%7-3)/10
	}

	result := LjungBox(autocorrelated, 10, 0)
	require.NotNil(t, result)
	assert.Equal(t, 10, result.DOF)
	assert.Greater(t, result.Statistic, 0.0)
	assert.Less(t, result.PValue, 0.05)

	assert.Nil(t, LjungBox([]float64{1, 2, 3}, 10, 0))
}

func TestDurbinWatson(t *testing.T) {
	alternating := make([]float64, 50)
	for i := range alternating {
		alternating[i] = float64(1 - 2*(i%2))
	}
	dw := DurbinWatson(alternating)
	require.NotNil(t, dw)
	assert.Greater(t, dw.Statistic, 3.5)
	assert.Equal(t, "negative", dw.Interpretation)

	assert.Nil(t, DurbinWatson([]float64{0, 0, 0}))
}
