package selection

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/sartorproj/goregime/msregression"
)

// Variance options for Config.Variance.
const (
	VarianceShared    = "shared"
	VarianceSwitching = "switching"
	VarianceBoth      = "both"
)

var (
	// ErrNoModel is returned when no candidate could be fitted.
	ErrNoModel = errors.New("selection: no candidate model could be fitted")
	// ErrInvalidConfig is returned for an inconsistent search configuration.
	ErrInvalidConfig = errors.New("selection: invalid configuration")
)

// Config holds configuration for the regime search.
type Config struct {
	MinRegimes int                // Smallest regime count (default: 2)
	MaxRegimes int                // Largest regime count (default: 3)
	Variance   string             // "shared", "switching" or "both" (default: "both")
	Trend      msregression.Trend // Deterministic terms (default: "c")
	Criterion  string             // "aic", "aicc", "bic" or "hqic" (default: "aic")
	EMIter     int                // EM iterations before the optimizer (default: 5)
	MaxIter    int                // Optimizer iterations (default: 100)
	Method     string             // Optimizer method (default: "bfgs")
	// Concurrency bounds the candidates fitted at once (default: GOMAXPROCS).
	Concurrency int
	ExogNames   []string
	Trace       bool            // Log every fitted candidate at info level
	Logger      *zerolog.Logger // Nil disables logging
}

// DefaultConfig returns the default search: two and three regimes, with and
// without switching variance, ranked by AIC.
func DefaultConfig() *Config {
	return &Config{
		MinRegimes: 2,
		MaxRegimes: 3,
		Variance:   VarianceBoth,
		Trend:      msregression.TrendConstant,
		Criterion:  "aic",
		EMIter:     5,
		MaxIter:    100,
	}
}

// Candidate is one fitted specification.
type Candidate struct {
	KRegimes          int
	SwitchingVariance bool
	Model             *msregression.Model
	Fit               *msregression.FitResult // nil when Err is set
	Criterion         float64
	Err               error
}

// Result represents the outcome of the search.
type Result struct {
	Best       *Candidate
	Candidates []*Candidate // in search order
	Criterion  string

	ModelsEvaluated int
}

// Select fits every candidate specification and returns the one with the
// lowest information criterion. Ties go to the earlier candidate, so the
// result does not depend on scheduling.
func Select(endog []float64, exog [][]float64, cfg *Config) (*Result, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	c := *cfg
	if c.MinRegimes == 0 {
		c.MinRegimes = 2
	}
	if c.MaxRegimes == 0 {
		c.MaxRegimes = c.MinRegimes
	}
	if c.MinRegimes < 2 || c.MaxRegimes < c.MinRegimes {
		return nil, fmt.Errorf("%w: regimes %d..%d", ErrInvalidConfig, c.MinRegimes, c.MaxRegimes)
	}
	variances, err := varianceOptions(c.Variance)
	if err != nil {
		return nil, err
	}
	c.Criterion = strings.ToLower(c.Criterion)
	switch c.Criterion {
	case "":
		c.Criterion = "aic"
	case "aic", "aicc", "bic", "hqic":
	default:
		return nil, fmt.Errorf("%w: unknown criterion %q", ErrInvalidConfig, cfg.Criterion)
	}
	if c.Concurrency <= 0 {
		c.Concurrency = runtime.GOMAXPROCS(0)
	}

	base := zerolog.Nop()
	if c.Logger != nil {
		base = *c.Logger
	}
	log := base.With().Str("component", "selection").Logger()

	var candidates []*Candidate
	for k := c.MinRegimes; k <= c.MaxRegimes; k++ {
		for _, sw := range variances {
			candidates = append(candidates, &Candidate{KRegimes: k, SwitchingVariance: sw, Criterion: math.Inf(1)})
		}
	}

	var g errgroup.Group
	g.SetLimit(c.Concurrency)
	for _, cand := range candidates {
		g.Go(func() error {
			fitCandidate(cand, endog, exog, &c)
			if c.Trace {
				ev := log.Info()
				if cand.Err != nil {
					ev = log.Warn().Err(cand.Err)
				}
				ev.Int("k_regimes", cand.KRegimes).
					Bool("switching_variance", cand.SwitchingVariance).
					Float64(c.Criterion, cand.Criterion).
					Msg("candidate fitted")
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &Result{Candidates: candidates, Criterion: c.Criterion}
	for _, cand := range candidates {
		if cand.Err != nil {
			continue
		}
		res.ModelsEvaluated++
		if res.Best == nil || cand.Criterion < res.Best.Criterion {
			res.Best = cand
		}
	}
	if res.Best == nil {
		return nil, ErrNoModel
	}

	log.Debug().
		Int("k_regimes", res.Best.KRegimes).
		Bool("switching_variance", res.Best.SwitchingVariance).
		Float64(c.Criterion, res.Best.Criterion).
		Int("models", res.ModelsEvaluated).
		Msg("selected model")
	return res, nil
}

func fitCandidate(cand *Candidate, endog []float64, exog [][]float64, c *Config) {
	model, err := msregression.New(endog, exog, &msregression.Config{
		KRegimes:          cand.KRegimes,
		Trend:             c.Trend,
		SwitchingVariance: cand.SwitchingVariance,
		ExogNames:         c.ExogNames,
		Logger:            c.Logger,
	})
	if err != nil {
		cand.Err = err
		return
	}
	cand.Model = model

	fitCfg := msregression.DefaultFitConfig()
	fitCfg.EMIter = c.EMIter
	if c.MaxIter > 0 {
		fitCfg.MaxIter = c.MaxIter
	}
	if c.Method != "" {
		fitCfg.Method = c.Method
	}
	fit, err := model.Fit(fitCfg)
	if err != nil {
		cand.Err = err
		return
	}
	if math.IsInf(fit.LLF, -1) || math.IsNaN(fit.LLF) {
		cand.Err = msregression.ErrInvalidParams
		return
	}
	cand.Fit = fit
	cand.Criterion = fit.Criterion(c.Criterion)
}

func varianceOptions(v string) ([]bool, error) {
	switch strings.ToLower(v) {
	case "", VarianceBoth:
		return []bool{false, true}, nil
	case VarianceShared:
		return []bool{false}, nil
	case VarianceSwitching:
		return []bool{true}, nil
	default:
		return nil, fmt.Errorf("%w: unknown variance option %q", ErrInvalidConfig, v)
	}
}
