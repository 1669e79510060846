package msregression

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/goregime/regime"
	"github.com/sartorproj/goregime/stats"
)

// minVariance floors variance estimates so a regime that collapses onto a
// few observations keeps a finite likelihood.
const minVariance = 1e-12

// EMConfig configures FitEM.
type EMConfig struct {
	StartParams []float64 // Starting values (default: StartParams())
	MaxIter     int       // Maximum EM iterations (default: 50)
	// Tolerance on the relative log-likelihood improvement
	// 2*(l_i - l_{i-1}) / |l_i + l_{i-1}| (default: 1e-6).
	Tolerance float64
}

// DefaultEMConfig returns the default EM configuration.
func DefaultEMConfig() *EMConfig {
	return &EMConfig{
		MaxIter:   50,
		Tolerance: 1e-6,
	}
}

// FitEM estimates the parameters with the EM algorithm. Each iteration runs
// the filter and smoother at the current parameters, then re-estimates the
// transition matrix from the smoothed transition counts, each regime's
// coefficients by weighted least squares with the smoothed regime
// probabilities as weights, and the variances from the weighted residuals.
func (m *Model) FitEM(cfg *EMConfig) (*FitResult, error) {
	if cfg == nil {
		cfg = DefaultEMConfig()
	}
	maxIter := cfg.MaxIter
	if maxIter <= 0 {
		maxIter = DefaultEMConfig().MaxIter
	}

	start := cfg.StartParams
	if start == nil {
		start = m.StartParams()
	}
	if len(start) != m.KParams() {
		return nil, fmt.Errorf("%w: got %d start parameters, want %d", ErrParamLength, len(start), m.KParams())
	}

	run, err := m.em(start, maxIter, cfg.Tolerance)
	if err != nil {
		return nil, err
	}

	if run.decreased {
		m.log.Warn().
			Int("iteration", run.iterations).
			Msg("EM stopped at a log-likelihood decrease, keeping the previous parameters")
	}
	if !run.converged && !run.decreased {
		m.log.Warn().
			Int("iterations", run.iterations).
			Msg("EM reached the iteration limit before converging")
	}
	res := m.newResult(run.params, "em", run.converged, run.iterations)
	res.LLFHistory = run.history
	return res, nil
}

// emRun is the outcome of an EM loop.
type emRun struct {
	params     []float64 // best parameters evaluated
	llf        float64   // log-likelihood of params
	history    []float64 // log-likelihood of each evaluated iterate
	iterations int       // E-steps run
	converged  bool
	decreased  bool
}

// em iterates EM steps from start. The loop stops after maxIter steps or,
// after at least two steps, once the relative improvement is at most tol.
// An update that lowers the log-likelihood ends the loop and is discarded,
// so the returned parameters are never worse than start.
func (m *Model) em(start []float64, maxIter int, tol float64) (*emRun, error) {
	run := &emRun{params: append([]float64(nil), start...), llf: math.Inf(-1)}
	current := run.params
	delta := 0.0

	for run.iterations < maxIter && (run.iterations < 2 || delta > tol) {
		next, llf, err := m.emStep(current)
		if err != nil {
			if run.iterations == 0 {
				return nil, fmt.Errorf("%w: %w", ErrInvalidParams, err)
			}
			m.log.Warn().Err(err).Int("iteration", run.iterations).Msg("EM stopped early")
			return run, nil
		}

		run.history = append(run.history, llf)
		if n := len(run.history); n > 1 {
			prev := run.history[n-2]
			delta = 2 * (llf - prev) / math.Abs(llf+prev)
			if llf < prev {
				m.log.Debug().
					Int("iteration", run.iterations).
					Float64("previous", prev).
					Float64("llf", llf).
					Msg("EM log-likelihood decreased")
				run.iterations++
				run.decreased = true
				run.converged = math.Abs(delta) <= tol
				return run, nil
			}
		}
		run.params, run.llf = current, llf
		current = next
		run.iterations++

		m.log.Debug().
			Int("iteration", run.iterations).
			Float64("llf", llf).
			Msg("EM iteration")
	}

	// The last update has not been evaluated yet.
	if llf := m.Loglike(current); llf >= run.llf {
		run.params, run.llf = current, llf
	}
	run.converged = run.iterations >= 2 && math.Abs(delta) <= tol
	return run, nil
}

// emStep performs one EM update. It returns the new parameters and the
// log-likelihood of the parameters passed in.
func (m *Model) emStep(params []float64) ([]float64, float64, error) {
	ev, err := m.evaluate(params)
	if err != nil {
		return nil, math.Inf(-1), err
	}
	sr, err := regime.Smooth(ev.filter, ev.params.Transition, ev.initial)
	if err != nil {
		return nil, math.Inf(-1), err
	}

	old := ev.params
	next := &Params{
		Transition:   updateTransition(old.Transition, sr.TransitionSums),
		Coefficients: make([][]float64, m.k),
		Variances:    make([]float64, m.k),
	}

	weights := make([]float64, len(m.endog))
	pooled := 0.0
	for s := 0; s < m.k; s++ {
		for t := range weights {
			weights[t] = sr.Smoothed[t][s]
		}

		beta, err := stats.WLS(m.endog, m.design, weights)
		if err != nil {
			m.log.Debug().Err(err).Int("regime", s).Msg("keeping previous coefficients")
			beta = old.Coefficients[s]
		}
		next.Coefficients[s] = beta

		ssr, weight := stats.WeightedSSR(m.endog, m.design, beta, weights)
		pooled += ssr
		if weight > 0 {
			next.Variances[s] = math.Max(ssr/weight, minVariance)
		} else {
			next.Variances[s] = old.Variances[s]
		}
	}

	if !m.switchingVariance {
		v := math.Max(pooled/float64(m.nobs), minVariance)
		for s := range next.Variances {
			next.Variances[s] = v
		}
	}

	flat, err := m.Encode(next)
	if err != nil {
		return nil, math.Inf(-1), err
	}
	return flat, ev.filter.LogLike, nil
}

// updateTransition normalizes the smoothed transition counts column by
// column. A column whose origin regime is never visited keeps its previous
// probabilities.
func updateTransition(old, sums *mat.Dense) *mat.Dense {
	k, _ := old.Dims()
	next := mat.DenseCopyOf(old)
	for j := 0; j < k; j++ {
		col := mat.Col(nil, j, sums)
		total := floats.Sum(col)
		if !(total > 0) {
			continue
		}
		for i, v := range col {
			next.Set(i, j, v/total)
		}
	}
	return next
}
