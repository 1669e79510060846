package msregression

import (
	"fmt"
	"math"

	"github.com/sartorproj/goregime/optimizer"
	"github.com/sartorproj/goregime/stats"
)

// FitConfig configures Fit.
type FitConfig struct {
	StartParams []float64 // Starting values (default: StartParams())
	EMIter      int       // EM iterations run before the optimizer (default: 5)
	MaxIter     int       // Maximum optimizer iterations (default: 100)
	Method      string    // Optimizer method: "bfgs", "lbfgs" or "nm" (default: "bfgs")
	Disp        bool      // Log every optimizer iteration

	// Random start search. SearchReps 0 searches only for more than two
	// regimes, with at least 20 candidates refined by 20 EM iterations;
	// a negative value disables the search.
	SearchReps  int
	SearchIter  int
	SearchScale float64
	Seed        uint64

	// Minimizer replaces the gonum minimizer built from Method, MaxIter and
	// Disp.
	Minimizer optimizer.Minimizer
}

// Start search run by Fit for more than two regimes.
const (
	multiRegimeSearchReps = 20
	multiRegimeSearchIter = 20
)

// DefaultFitConfig returns the default configuration: five EM iterations
// followed by BFGS for up to 100 iterations.
func DefaultFitConfig() *FitConfig {
	return &FitConfig{
		EMIter:      5,
		MaxIter:     100,
		Method:      optimizer.MethodBFGS,
		SearchIter:  5,
		SearchScale: 1,
	}
}

// FitResult holds estimated parameters and fit statistics.
type FitResult struct {
	Params    []float64
	LLF       float64
	Converged bool
	NIter     int
	Method    string // "em" or the optimizer method

	// LLFHistory holds the log-likelihood before each EM update.
	LLFHistory []float64

	NObs    int
	KParams int
	AIC     float64
	AICc    float64 // Corrected AIC for small sample sizes
	BIC     float64
	HQIC    float64
}

// Criterion returns the named information criterion ("aic", "aicc", "bic"
// or "hqic").
func (r *FitResult) Criterion(name string) float64 {
	ic := &stats.InformationCriteria{AIC: r.AIC, AICc: r.AICc, BIC: r.BIC, HQIC: r.HQIC, LogLik: r.LLF}
	return ic.Criterion(name)
}

func (m *Model) newResult(params []float64, method string, converged bool, nIter int) *FitResult {
	llf := m.Loglike(params)
	ic := stats.CalculateIC(llf, m.nobs, m.KParams())
	return &FitResult{
		Params:    params,
		LLF:       llf,
		Converged: converged,
		NIter:     nIter,
		Method:    method,
		NObs:      m.nobs,
		KParams:   m.KParams(),
		AIC:       ic.AIC,
		AICc:      ic.AICc,
		BIC:       ic.BIC,
		HQIC:      ic.HQIC,
	}
}

// Fit estimates the parameters by maximum likelihood. Starting values are
// optionally improved by a random search and a few EM iterations, then the
// log-likelihood is maximized numerically over unconstrained parameters.
//
// Failing to converge is not an error: the best parameters found are
// returned with Converged set to false.
func (m *Model) Fit(cfg *FitConfig) (*FitResult, error) {
	if cfg == nil {
		cfg = DefaultFitConfig()
	}

	start := cfg.StartParams
	if start == nil {
		start = m.StartParams()
	}
	if len(start) != m.KParams() {
		return nil, fmt.Errorf("%w: got %d start parameters, want %d", ErrParamLength, len(start), m.KParams())
	}
	if llf := m.Loglike(start); math.IsInf(llf, -1) || math.IsNaN(llf) {
		return nil, ErrInvalidParams
	}

	var err error
	reps, iter := cfg.SearchReps, cfg.SearchIter
	if reps == 0 && m.k > 2 {
		reps, iter = multiRegimeSearchReps, max(iter, multiRegimeSearchIter)
	}
	if reps > 0 {
		start, err = m.SearchStartParams(start, SearchConfig{
			Reps:  reps,
			Iter:  iter,
			Scale: cfg.SearchScale,
			Seed:  cfg.Seed,
		})
		if err != nil {
			return nil, fmt.Errorf("start search: %w", err)
		}
	}

	if cfg.EMIter > 0 {
		run, err := m.em(start, cfg.EMIter, 0)
		if err != nil {
			return nil, err
		}
		start = run.params
	}
	warmLLF := m.Loglike(start)

	minimizer := cfg.Minimizer
	if minimizer == nil {
		opts := optimizer.DefaultOptions()
		opts.Method = cfg.Method
		if cfg.MaxIter > 0 {
			opts.MaxIter = cfg.MaxIter
		}
		opts.Disp = cfg.Disp
		minimizer, err = optimizer.NewGonum(opts, m.log)
		if err != nil {
			return nil, err
		}
	}

	x0, err := m.UntransformParams(start)
	if err != nil {
		return nil, err
	}
	nobs := float64(m.nobs)
	objective := func(x []float64) float64 {
		params, err := m.TransformParams(x)
		if err != nil {
			return math.Inf(1)
		}
		llf := m.Loglike(params)
		if math.IsInf(llf, -1) || math.IsNaN(llf) {
			return math.Inf(1)
		}
		return -llf / nobs
	}

	res, err := minimizer.Minimize(objective, x0)
	if err != nil {
		return nil, fmt.Errorf("maximize likelihood: %w", err)
	}

	params, err := m.TransformParams(res.X)
	if err != nil {
		return nil, err
	}
	converged := res.Converged
	if llf := m.Loglike(params); !(llf >= warmLLF) {
		m.log.Warn().
			Float64("llf", llf).
			Float64("start_llf", warmLLF).
			Msg("optimizer did not improve on its starting point, keeping start values")
		params = start
		converged = false
	}
	if !converged {
		m.log.Warn().
			Str("method", res.Method).
			Str("status", res.Status).
			Int("iterations", res.Iterations).
			Msg("maximum likelihood optimization did not converge")
	}

	return m.newResult(params, res.Method, converged, res.Iterations), nil
}
