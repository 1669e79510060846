package msregression

import (
	"math"
	"math/rand/v2"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/goregime/regime"
	"github.com/sartorproj/goregime/stats"
)

// StartParams returns default starting values. Coefficients come from an OLS
// regression on the complete observations, scaled by s/k for regime s so the
// regimes start apart; transition probabilities are all 1/k; the variance is
// that of the OLS residuals, spread from a tenth of it up to all of it when
// variances switch.
func (m *Model) StartParams() []float64 {
	kx := len(m.names)
	beta := make([]float64, kx)
	if kx > 0 {
		b, err := stats.OLS(m.endog, m.design)
		if err != nil {
			m.log.Debug().Err(err).Msg("OLS start values unavailable, using zeros")
		} else {
			beta = b
		}
	}

	resid := make([]float64, 0, m.nobs)
	for t, y := range m.endog {
		if m.complete[t] {
			resid = append(resid, y-floats.Dot(m.design[t], beta))
		}
	}
	_, variance := stat.PopMeanVariance(resid, nil)
	if !(variance > 0) || math.IsInf(variance, 0) {
		variance = 1
	}

	params := make([]float64, 0, m.KParams())
	for i := 0; i < regime.NumFree(m.k); i++ {
		params = append(params, 1/float64(m.k))
	}
	for r := 0; r < kx; r++ {
		for s := 0; s < m.k; s++ {
			params = append(params, beta[r]*float64(s)/float64(m.k))
		}
	}
	if m.switchingVariance {
		for s := 0; s < m.k; s++ {
			frac := 0.1 + 0.9*float64(s)/float64(m.k-1)
			params = append(params, variance*frac)
		}
	} else {
		params = append(params, variance)
	}
	return params
}

// SearchConfig configures the random start search.
type SearchConfig struct {
	Reps  int     // Number of random candidates
	Iter  int     // EM iterations applied to each candidate (default: 5)
	Scale float64 // Width of the uniform perturbation (default: 1)
	Seed  uint64  // Seed of the perturbation stream
	// Concurrency bounds the candidates evaluated at once
	// (default: GOMAXPROCS).
	Concurrency int
}

// SearchStartParams perturbs start in the unconstrained parameter space with
// uniform noise on [-Scale/2, Scale/2], refines each candidate with a few EM
// iterations and returns the candidate with the highest log-likelihood, or
// start itself when no candidate improves on it. Candidates are evaluated
// concurrently; the result only depends on the seed.
func (m *Model) SearchStartParams(start []float64, cfg SearchConfig) ([]float64, error) {
	if start == nil {
		start = m.StartParams()
	}
	base, err := m.UntransformParams(start)
	if err != nil {
		return nil, err
	}
	if cfg.Reps <= 0 {
		return append([]float64(nil), start...), nil
	}
	if cfg.Iter <= 0 {
		cfg.Iter = 5
	}
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = runtime.GOMAXPROCS(0)
	}

	noise := distuv.Uniform{
		Min: -cfg.Scale / 2,
		Max: cfg.Scale / 2,
		Src: rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15),
	}
	candidates := make([][]float64, cfg.Reps)
	for i := range candidates {
		c := make([]float64, len(base))
		for j, v := range base {
			c[j] = v + noise.Rand()
		}
		candidates[i] = c
	}

	params := make([][]float64, cfg.Reps)
	llfs := make([]float64, cfg.Reps)

	var g errgroup.Group
	g.SetLimit(cfg.Concurrency)
	for i, c := range candidates {
		g.Go(func() error {
			llfs[i] = math.Inf(-1)
			proposed, err := m.TransformParams(c)
			if err != nil {
				return nil
			}
			run, err := m.em(proposed, cfg.Iter, 0)
			if err != nil {
				return nil
			}
			params[i] = run.params
			llfs[i] = m.Loglike(run.params)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	best := append([]float64(nil), start...)
	bestLLF := m.Loglike(start)
	for i, llf := range llfs {
		if llf > bestLLF {
			best, bestLLF = params[i], llf
		}
	}
	m.log.Debug().
		Int("reps", cfg.Reps).
		Float64("llf", bestLLF).
		Msg("start parameter search finished")
	return best, nil
}
