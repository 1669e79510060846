package msregression

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/sartorproj/goregime/datasets"
	"github.com/sartorproj/goregime/optimizer"
	"github.com/sartorproj/goregime/regime"
)

func TestLoglikeReference(t *testing.T) {
	for _, f := range allFixtures() {
		t.Run(f.name, func(t *testing.T) {
			m := f.model(t)
			require.Equal(t, len(f.params), m.KParams())

			assert.InDelta(t, f.llf, m.Loglike(f.params), f.tol)
		})
	}
}

func TestLoglikeMatchesFilter(t *testing.T) {
	f := fedfundsLag()
	m := f.model(t)

	fr, err := m.Filter(f.params)
	require.NoError(t, err)
	assert.Equal(t, m.Loglike(f.params), fr.LogLike)
	assert.Len(t, fr.Filtered, m.Len())

	sum := 0.0
	for _, v := range fr.LogLikeObs {
		sum += v
	}
	assert.InDelta(t, fr.LogLike, sum, 1e-9)
}

func TestLoglikeInvalidParams(t *testing.T) {
	f := fedfundsConst()
	m := f.model(t)

	tests := []struct {
		name   string
		params []float64
	}{
		{"too short", f.params[:4]},
		{"too long", append(append([]float64(nil), f.params...), 1)},
		{"negative probability", []float64{-0.2, .0503587, 3.70877, 9.556793, 4.4}},
		{"probability above one", []float64{1.2, .0503587, 3.70877, 9.556793, 4.4}},
		{"zero variance", []float64{.9820939, .0503587, 3.70877, 9.556793, 0}},
		{"negative variance", []float64{.9820939, .0503587, 3.70877, 9.556793, -1}},
		{"NaN variance", []float64{.9820939, .0503587, 3.70877, 9.556793, math.NaN()}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, math.IsInf(m.Loglike(tt.params), -1))
		})
	}
}

func TestLoglikeDegenerate(t *testing.T) {
	m := fedfundsConst().model(t)

	// Squared residuals overflow, so every observation has zero density in
	// both regimes.
	params := []float64{.9, .1, 1e200, 1e200, 1}
	assert.True(t, math.IsInf(m.Loglike(params), -1))

	fr, err := m.Filter(params)
	require.NoError(t, err)
	assert.True(t, fr.Degenerate)

	_, err = m.Smooth(params)
	assert.ErrorIs(t, err, regime.ErrDegenerate)
}

func TestLoglikeConcurrent(t *testing.T) {
	f := fedfundsExog()
	m := f.model(t)
	want := m.Loglike(f.params)

	got := make([]float64, 16)
	var g errgroup.Group
	for i := range got {
		g.Go(func() error {
			got[i] = m.Loglike(f.params)
			return nil
		})
	}
	require.NoError(t, g.Wait())
	for _, v := range got {
		assert.Equal(t, want, v)
	}
}

func TestMissingObservations(t *testing.T) {
	// A lag padded with NaN drops the first observation; the result must
	// equal the model on the shortened sample.
	ff := datasets.FedFunds()
	padded := make([][]float64, len(ff))
	padded[0] = []float64{math.NaN()}
	for t := 1; t < len(ff); t++ {
		padded[t] = []float64{ff[t-1]}
	}

	f := fedfundsLag()
	full, err := New(ff, padded, f.cfg)
	require.NoError(t, err)
	assert.Equal(t, len(ff)-1, full.NObs())
	assert.Equal(t, len(ff), full.Len())

	assert.InDelta(t, f.model(t).Loglike(f.params), full.Loglike(f.params), 1e-9)

	fitted, err := full.Predict(f.params, Filtered)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(fitted[0]))
	assert.False(t, math.IsNaN(fitted[1]))
}

func TestNewErrors(t *testing.T) {
	y := []float64{1, 2, 3, 4}
	tests := []struct {
		name string
		y    []float64
		exog [][]float64
		cfg  *Config
		want error
	}{
		{"empty", nil, nil, nil, ErrEmptySeries},
		{"one regime", y, nil, &Config{KRegimes: 1}, ErrRegimeCount},
		{"second order", y, nil, &Config{KRegimes: 2, Order: 2}, ErrUnsupportedOrder},
		{"bad trend", y, nil, &Config{KRegimes: 2, Trend: "quadratic"}, ErrInvalidTrend},
		{"short exog", y, [][]float64{{1}, {2}}, nil, ErrExogLength},
		{"ragged exog", y, [][]float64{{1}, {2}, {3, 4}, {5}}, nil, ErrExogShape},
		{"wrong names", y, column(y), &Config{KRegimes: 2, ExogNames: []string{"a", "b"}}, ErrExogShape},
		{"all missing", []float64{math.NaN(), math.NaN()}, nil, nil, ErrNoObservations},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.y, tt.exog, tt.cfg)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseTrend(t *testing.T) {
	tests := map[string]Trend{
		"n": TrendNone, "nc": TrendNone, "": TrendConstant, "c": TrendConstant,
		"t": TrendTime, "CT": TrendConstantTime,
	}
	for in, want := range tests {
		got, err := ParseTrend(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseTrend("x")
	assert.ErrorIs(t, err, ErrInvalidTrend)
}

func TestTrendDesign(t *testing.T) {
	y := []float64{1, 3, 2, 5, 4, 6}
	m, err := New(y, nil, &Config{KRegimes: 2, Trend: TrendConstantTime})
	require.NoError(t, err)

	assert.Equal(t, 2, m.KExog())
	assert.Equal(t, []float64{1, 1}, m.design[0])
	assert.Equal(t, []float64{1, 6}, m.design[5])
	assert.Equal(t, 2+4+1, m.KParams())
}

func TestParamNames(t *testing.T) {
	m := fedfundsLag().model(t)
	assert.Equal(t, []string{
		"p[0->0]", "p[1->0]",
		"const[0]", "const[1]",
		"x1[0]", "x1[1]",
		"sigma2",
	}, m.ParamNames())

	sw, err := New(datasets.MumpsPC(), nil, &Config{KRegimes: 3, Trend: TrendConstant, SwitchingVariance: true})
	require.NoError(t, err)
	names := sw.ParamNames()
	require.Len(t, names, sw.KParams())
	assert.Equal(t, "p[2->1]", names[5])
	assert.Equal(t, "sigma2[2]", names[len(names)-1])
}

func TestDecodeEncode(t *testing.T) {
	f := fedfundsExog3()
	m := f.model(t)

	p, err := m.Decode(f.params)
	require.NoError(t, err)
	assert.InDelta(t, .7253684, p.Transition.At(0, 0), 1e-15)
	assert.InDelta(t, .2564055, p.Transition.At(1, 0), 1e-15)
	assert.InDelta(t, 1-.7253684-.2564055, p.Transition.At(2, 0), 1e-15)
	// Coefficients are stored by regressor with the regimes adjacent.
	assert.Equal(t, []float64{.5261292, .8464551, .1201952, -.0425603}, p.Coefficients[0])
	assert.Equal(t, []float64{-.0034106, .9690088, .0464136, .1298906}, p.Coefficients[1])
	for _, v := range p.Variances {
		assert.Equal(t, .438375*.438375, v)
	}

	flat, err := m.Encode(p)
	require.NoError(t, err)
	assert.InDeltaSlice(t, f.params, flat, 1e-15)

	_, err = m.Decode(f.params[:3])
	assert.ErrorIs(t, err, ErrParamLength)
	_, err = m.Encode(&Params{})
	assert.ErrorIs(t, err, ErrParamLength)
}

func TestTransformRoundTrip(t *testing.T) {
	for _, f := range []fixture{fedfundsExog3(), areturnsSwitching()} {
		t.Run(f.name, func(t *testing.T) {
			m := f.model(t)
			u, err := m.UntransformParams(f.params)
			require.NoError(t, err)
			back, err := m.TransformParams(u)
			require.NoError(t, err)
			assert.InDeltaSlice(t, f.params, back, 1e-9)
		})
	}
}

func TestTransformAlwaysValid(t *testing.T) {
	m := fedfundsExog3().model(t)
	u := make([]float64, m.KParams())
	for i := range u {
		u[i] = float64(i%5) - 2.5
	}
	params, err := m.TransformParams(u)
	require.NoError(t, err)
	_, err = m.Decode(params)
	assert.NoError(t, err)
}

func TestStartParams(t *testing.T) {
	m := fedfundsLag().model(t)
	start := m.StartParams()
	require.Len(t, start, m.KParams())

	assert.Equal(t, 0.5, start[0])
	assert.Equal(t, 0.5, start[1])
	// Regime 0 starts at zero, regime 1 at half the OLS estimate.
	assert.Equal(t, 0.0, start[2])
	assert.Equal(t, 0.0, start[4])
	assert.Greater(t, start[5], 0.0)
	assert.Greater(t, start[6], 0.0)
	assert.False(t, math.IsInf(m.Loglike(start), -1))

	sw := areturnsSwitching().model(t)
	s := sw.StartParams()
	n := len(s)
	assert.InDelta(t, s[n-1]/10, s[n-2], 1e-12)
}

func TestPredict(t *testing.T) {
	f := fedfundsConst()
	m := f.model(t)

	for _, kind := range []ProbabilityKind{Predicted, Filtered, Smoothed} {
		t.Run(kind.String(), func(t *testing.T) {
			fitted, err := m.Predict(f.params, kind)
			require.NoError(t, err)
			require.Len(t, fitted, m.Len())
			for _, v := range fitted {
				assert.GreaterOrEqual(t, v, 3.70877-1e-9)
				assert.LessOrEqual(t, v, 9.556793+1e-9)
			}
		})
	}

	resid, err := m.Residuals(f.params, Smoothed)
	require.NoError(t, err)
	fitted, err := m.Predict(f.params, Smoothed)
	require.NoError(t, err)
	ff := datasets.FedFunds()
	assert.InDelta(t, ff[10], resid[10]+fitted[10], 1e-12)
}

func TestSmoothedProbabilities(t *testing.T) {
	f := fedfundsLag()
	m := f.model(t)

	sr, err := m.Smooth(f.params)
	require.NoError(t, err)
	require.Len(t, sr.Smoothed, m.Len())
	for _, row := range sr.Smoothed {
		assert.InDelta(t, 1, row[0]+row[1], 1e-12)
	}

	fr, err := m.Filter(f.params)
	require.NoError(t, err)
	last := len(fr.Filtered) - 1
	assert.InDeltaSlice(t, fr.Filtered[last], sr.Smoothed[last], 1e-15)
}

func TestDensities(t *testing.T) {
	f := fedfundsConst()
	m := f.model(t)
	d, err := m.Densities(f.params)
	require.NoError(t, err)

	ff := datasets.FedFunds()
	sigma := 2.107562
	z := (ff[0] - 3.70877) / sigma
	want := math.Exp(-z*z/2) / (sigma * math.Sqrt(2*math.Pi))
	assert.InDelta(t, want, d[0][0], 1e-12)
}

func TestExpectedDurations(t *testing.T) {
	f := fedfundsConst()
	m := f.model(t)
	d, err := m.ExpectedDurations(f.params)
	require.NoError(t, err)
	assert.InDelta(t, 1/(1-.9820939), d[0], 1e-9)
	assert.InDelta(t, 1/.0503587, d[1], 1e-9)

	_, err = m.ExpectedDurations(f.params[:2])
	assert.ErrorIs(t, err, ErrParamLength)
}

func TestFitEMReference(t *testing.T) {
	tests := []struct {
		fixture fixture
		llf     float64
	}{
		{fedfundsConst(), -508.65856},
		{fedfundsLag(), -264.71103},
		{fedfundsExog(), -229.25632},
	}
	for _, tt := range tests {
		t.Run(tt.fixture.name, func(t *testing.T) {
			m := tt.fixture.model(t)
			res, err := m.FitEM(nil)
			require.NoError(t, err)

			assert.Equal(t, "em", res.Method)
			assert.True(t, res.Converged)
			assert.InDelta(t, tt.llf, res.LLF, 1e-2)
			assert.Len(t, res.LLFHistory, res.NIter)
			assert.Len(t, res.Params, m.KParams())
		})
	}
}

func TestFitEMMonotone(t *testing.T) {
	m := areturnsSwitching().model(t)
	res, err := m.FitEM(&EMConfig{MaxIter: 30})
	require.NoError(t, err)

	h := res.LLFHistory
	for i := 1; i < len(h); i++ {
		assert.GreaterOrEqual(t, h[i], h[i-1]-1e-3, "iteration %d", i)
	}
	assert.GreaterOrEqual(t, res.LLF, h[len(h)-1]-1e-3)
}

func TestFitEMNeverWorseThanStart(t *testing.T) {
	for _, f := range allFixtures() {
		t.Run(f.name, func(t *testing.T) {
			m := f.model(t)
			start := m.Loglike(f.params)

			res, err := m.FitEM(&EMConfig{StartParams: f.params})
			require.NoError(t, err)
			assert.GreaterOrEqual(t, res.LLF, start-1e-6)
			assert.Len(t, res.LLFHistory, res.NIter)
		})
	}
}

func TestFitEMMinimumIterations(t *testing.T) {
	m := fedfundsConst().model(t)

	// A huge tolerance still runs two iterations.
	res, err := m.FitEM(&EMConfig{MaxIter: 50, Tolerance: 1e9})
	require.NoError(t, err)
	assert.Equal(t, 2, res.NIter)
	assert.True(t, res.Converged)

	res, err = m.FitEM(&EMConfig{MaxIter: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, res.NIter)
	assert.False(t, res.Converged)
}

func TestFitEMErrors(t *testing.T) {
	m := fedfundsConst().model(t)

	_, err := m.FitEM(&EMConfig{StartParams: []float64{0.5}})
	assert.ErrorIs(t, err, ErrParamLength)

	_, err = m.FitEM(&EMConfig{StartParams: []float64{.9, .1, 1, 1, -1}})
	assert.ErrorIs(t, err, ErrInvalidParams)
}

func TestFitReference(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping maximum likelihood fits in short mode")
	}

	tests := []struct {
		fixture fixture
		cfg     *FitConfig
		tol     float64
	}{
		{fedfundsConst(), nil, 1e-2},
		{fedfundsLag(), nil, 1e-2},
		{fedfundsExog(), &FitConfig{EMIter: 10, MaxIter: 100}, 1e-2},
		{areturnsSwitching(), &FitConfig{EMIter: 10, MaxIter: 100}, 4},
		{mumpsSwitching(), nil, 4},
	}
	for _, tt := range tests {
		t.Run(tt.fixture.name, func(t *testing.T) {
			m := tt.fixture.model(t)
			res, err := m.Fit(tt.cfg)
			require.NoError(t, err)

			assert.InDelta(t, tt.fixture.llf, res.LLF, tt.tol)
			assert.Len(t, res.Params, m.KParams())
			assert.Equal(t, m.NObs(), res.NObs)
			assert.InDelta(t, -2*res.LLF+2*float64(m.KParams()), res.AIC, 1e-9)
		})
	}
}

func TestFitThreeRegimes(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping maximum likelihood fits in short mode")
	}
	f := fedfundsExog3()
	m := f.model(t)

	res, err := m.Fit(nil)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, res.LLF, f.llf-5)

	// Without the start search the default start stalls far below.
	plain, err := m.Fit(&FitConfig{EMIter: 5, MaxIter: 100, SearchReps: -1})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, res.LLF, plain.LLF)
}

func TestFitImprovesOnEM(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping maximum likelihood fits in short mode")
	}
	m := fedfundsLag().model(t)

	warm, err := m.FitEM(&EMConfig{MaxIter: 5, Tolerance: 0})
	require.NoError(t, err)
	res, err := m.Fit(DefaultFitConfig())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, res.LLF, warm.LLF)
	assert.Contains(t, []string{optimizer.MethodBFGS, optimizer.MethodNelderMead}, res.Method)
}

// fixedMinimizer returns its starting point.
type fixedMinimizer struct {
	calls int
}

func (f *fixedMinimizer) Minimize(obj optimizer.Objective, start []float64) (*optimizer.Result, error) {
	f.calls++
	return &optimizer.Result{
		X:         append([]float64(nil), start...),
		F:         obj(start),
		Converged: true,
		Status:    "fixed",
		Method:    "fixed",
	}, nil
}

func TestFitCustomMinimizer(t *testing.T) {
	f := fedfundsConst()
	m := f.model(t)

	fixed := &fixedMinimizer{}
	res, err := m.Fit(&FitConfig{StartParams: f.params, Minimizer: fixed})
	require.NoError(t, err)

	assert.Equal(t, 1, fixed.calls)
	assert.Equal(t, "fixed", res.Method)
	assert.True(t, res.Converged)
	assert.InDeltaSlice(t, f.params, res.Params, 1e-9)
	assert.InDelta(t, f.llf, res.LLF, 1e-5)
}

func TestFitErrors(t *testing.T) {
	m := fedfundsConst().model(t)

	_, err := m.Fit(&FitConfig{StartParams: []float64{1, 2}})
	assert.ErrorIs(t, err, ErrParamLength)

	_, err = m.Fit(&FitConfig{StartParams: []float64{.9, .1, 1, 1, 0}})
	assert.ErrorIs(t, err, ErrInvalidParams)

	_, err = m.Fit(&FitConfig{Method: "newton", EMIter: 1})
	assert.ErrorIs(t, err, optimizer.ErrUnknownMethod)
}

func TestSearchStartParams(t *testing.T) {
	m := fedfundsConst().model(t)
	start := m.StartParams()
	cfg := SearchConfig{Reps: 4, Iter: 2, Seed: 7}

	a, err := m.SearchStartParams(start, cfg)
	require.NoError(t, err)
	cfg.Concurrency = 1
	b, err := m.SearchStartParams(start, cfg)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.GreaterOrEqual(t, m.Loglike(a), m.Loglike(start))

	same, err := m.SearchStartParams(start, SearchConfig{})
	require.NoError(t, err)
	assert.Equal(t, start, same)
}

func TestFitResultCriterion(t *testing.T) {
	res := &FitResult{AIC: 1, AICc: 2, BIC: 3, HQIC: 4}
	assert.Equal(t, 1.0, res.Criterion("aic"))
	assert.Equal(t, 2.0, res.Criterion("aicc"))
	assert.Equal(t, 3.0, res.Criterion("bic"))
	assert.Equal(t, 4.0, res.Criterion("hqic"))
}
