package msregression

import (
	"fmt"
	"math"
	"strings"

	"github.com/rs/zerolog"

	"github.com/sartorproj/goregime/regime"
)

// Trend selects the deterministic regressors placed before exog.
type Trend string

const (
	TrendNone         Trend = "n"  // no deterministic terms
	TrendConstant     Trend = "c"  // intercept
	TrendTime         Trend = "t"  // linear time trend 1..T
	TrendConstantTime Trend = "ct" // intercept and time trend
)

// ParseTrend validates a trend name. "nc" is accepted for TrendNone and the
// empty string means TrendConstant.
func ParseTrend(s string) (Trend, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n", "nc":
		return TrendNone, nil
	case "", "c":
		return TrendConstant, nil
	case "t":
		return TrendTime, nil
	case "ct":
		return TrendConstantTime, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidTrend, s)
	}
}

// columns returns the names of the trend regressors.
func (t Trend) columns() []string {
	switch t {
	case TrendConstant:
		return []string{"const"}
	case TrendTime:
		return []string{"trend"}
	case TrendConstantTime:
		return []string{"const", "trend"}
	default:
		return nil
	}
}

// Config holds the model specification.
type Config struct {
	KRegimes          int   // Number of regimes (default: 2)
	Trend             Trend // Deterministic terms (default: "c")
	SwitchingVariance bool  // Whether each regime has its own variance
	Order             int   // Markov chain order, must be 1 (0 means 1)

	// ExogNames labels the exog columns in ParamNames. Defaults to x1, x2, ...
	ExogNames []string
	// Logger receives estimation progress. Nil disables logging.
	Logger *zerolog.Logger
}

// DefaultConfig returns a two-regime model with a switching intercept and a
// shared variance.
func DefaultConfig() *Config {
	return &Config{
		KRegimes: 2,
		Trend:    TrendConstant,
		Order:    1,
	}
}

// Model is a Markov switching linear regression
//
//	y_t = x_t * beta_{S_t} + e_t,  e_t ~ N(0, sigma2_{S_t})
//
// where S_t follows a first-order Markov chain with k regimes. Every
// regressor coefficient switches with the regime; the variance switches when
// configured to.
//
// A Model is immutable after New and safe for concurrent use.
type Model struct {
	endog             []float64
	design            [][]float64
	complete          []bool
	names             []string
	k                 int
	trend             Trend
	switchingVariance bool
	nobs              int
	log               zerolog.Logger
}

// New creates a model for endog with optional exogenous regressors, one row
// per observation. NaN in endog or exog marks an observation as missing.
func New(endog []float64, exog [][]float64, cfg *Config) (*Model, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	n := len(endog)
	if n == 0 {
		return nil, ErrEmptySeries
	}
	if cfg.KRegimes < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrRegimeCount, cfg.KRegimes)
	}
	if cfg.Order != 0 && cfg.Order != 1 {
		return nil, fmt.Errorf("%w: got order %d", ErrUnsupportedOrder, cfg.Order)
	}
	trend, err := ParseTrend(string(cfg.Trend))
	if err != nil {
		return nil, err
	}

	width := 0
	if len(exog) > 0 {
		if len(exog) != n {
			return nil, fmt.Errorf("%w: %d rows for %d observations", ErrExogLength, len(exog), n)
		}
		width = len(exog[0])
		for t, row := range exog {
			if len(row) != width {
				return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrExogShape, t, len(row), width)
			}
		}
	}

	names := trend.columns()
	switch {
	case len(cfg.ExogNames) == 0:
		for j := 0; j < width; j++ {
			names = append(names, fmt.Sprintf("x%d", j+1))
		}
	case len(cfg.ExogNames) == width:
		names = append(names, cfg.ExogNames...)
	default:
		return nil, fmt.Errorf("%w: %d names for %d columns", ErrExogShape, len(cfg.ExogNames), width)
	}

	m := &Model{
		endog:             append([]float64(nil), endog...),
		design:            make([][]float64, n),
		complete:          make([]bool, n),
		names:             names,
		k:                 cfg.KRegimes,
		trend:             trend,
		switchingVariance: cfg.SwitchingVariance,
	}

	for t := 0; t < n; t++ {
		row := make([]float64, 0, len(names))
		switch trend {
		case TrendConstant:
			row = append(row, 1)
		case TrendTime:
			row = append(row, float64(t+1))
		case TrendConstantTime:
			row = append(row, 1, float64(t+1))
		}
		if width > 0 {
			row = append(row, exog[t]...)
		}
		m.design[t] = row

		ok := !math.IsNaN(endog[t])
		for _, v := range row {
			if math.IsNaN(v) {
				ok = false
			}
		}
		m.complete[t] = ok
		if ok {
			m.nobs++
		}
	}
	if m.nobs == 0 {
		return nil, ErrNoObservations
	}

	base := zerolog.Nop()
	if cfg.Logger != nil {
		base = *cfg.Logger
	}
	m.log = base.With().
		Str("component", "msregression").
		Int("k_regimes", m.k).
		Logger()

	return m, nil
}

// KRegimes returns the number of regimes.
func (m *Model) KRegimes() int { return m.k }

// KExog returns the number of regressors, trend terms included.
func (m *Model) KExog() int { return len(m.names) }

// Regressors returns the regressor names, trend terms first.
func (m *Model) Regressors() []string { return append([]string(nil), m.names...) }

// NObs returns the number of complete observations.
func (m *Model) NObs() int { return m.nobs }

// Len returns the length of the sample, missing observations included.
func (m *Model) Len() int { return len(m.endog) }

// SwitchingVariance reports whether each regime has its own variance.
func (m *Model) SwitchingVariance() bool { return m.switchingVariance }

// Trend returns the deterministic terms of the model.
func (m *Model) Trend() Trend { return m.trend }

// KParams returns the length of the parameter vector.
func (m *Model) KParams() int {
	return regime.NumFree(m.k) + m.k*len(m.names) + m.kVariances()
}

func (m *Model) kVariances() int {
	if m.switchingVariance {
		return m.k
	}
	return 1
}

// ParamNames returns a label for each entry of the parameter vector:
// p[j->i] for transition probabilities, name[s] for regime coefficients and
// sigma2 or sigma2[s] for variances.
func (m *Model) ParamNames() []string {
	names := make([]string, 0, m.KParams())
	for j := 0; j < m.k; j++ {
		for i := 0; i < m.k-1; i++ {
			names = append(names, fmt.Sprintf("p[%d->%d]", j, i))
		}
	}
	for _, col := range m.names {
		for s := 0; s < m.k; s++ {
			names = append(names, fmt.Sprintf("%s[%d]", col, s))
		}
	}
	if m.switchingVariance {
		for s := 0; s < m.k; s++ {
			names = append(names, fmt.Sprintf("sigma2[%d]", s))
		}
	} else {
		names = append(names, "sigma2")
	}
	return names
}
