package msregression

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sartorproj/goregime/datasets"
)

// fixture is a model on one of the bundled datasets together with published
// parameter estimates and their log-likelihood.
type fixture struct {
	name   string
	endog  []float64
	exog   [][]float64
	cfg    *Config
	params []float64
	llf    float64
	tol    float64
}

func (f fixture) model(t *testing.T) *Model {
	t.Helper()
	m, err := New(f.endog, f.exog, f.cfg)
	require.NoError(t, err)
	return m
}

func column(v []float64) [][]float64 {
	out := make([][]float64, len(v))
	for i, x := range v {
		out[i] = []float64{x}
	}
	return out
}

func fedfundsConst() fixture {
	return fixture{
		name:   "fedfunds const",
		endog:  datasets.FedFunds(),
		cfg:    &Config{KRegimes: 2},
		params: []float64{.9820939, .0503587, 3.70877, 9.556793, 2.107562 * 2.107562},
		llf:    -508.63592,
		tol:    1e-5,
	}
}

func fedfundsLag() fixture {
	ff := datasets.FedFunds()
	return fixture{
		name:   "fedfunds const L1",
		endog:  ff[1:],
		exog:   column(ff[:len(ff)-1]),
		cfg:    &Config{KRegimes: 2},
		params: []float64{.6378175, .1306295, .724457, -.0988764, .7631424, 1.061174, .6915759 * .6915759},
		llf:    -264.71069,
		tol:    1e-5,
	}
}

func fedfundsExogRows() ([]float64, [][]float64) {
	ff := datasets.FedFunds()
	gap := datasets.OutputGap()
	inf := datasets.Inflation()
	exog := make([][]float64, 0, len(ff)-4)
	for t := 4; t < len(ff); t++ {
		exog = append(exog, []float64{ff[t-1], gap[t], inf[t]})
	}
	return ff[4:], exog
}

func fedfundsExog() fixture {
	endog, exog := fedfundsExogRows()
	return fixture{
		name:  "fedfunds L1 ogap inf",
		endog: endog,
		exog:  exog,
		cfg:   &Config{KRegimes: 2},
		params: []float64{
			.7279288, .2114578, .6554954, -.0944924, .8314458, .9292574,
			.1355425, .0343072, -.0273928, .2125275, .5764495 * .5764495,
		},
		llf: -229.25614,
		tol: 1e-5,
	}
}

func fedfundsExog3() fixture {
	endog, exog := fedfundsExogRows()
	return fixture{
		name:  "fedfunds L1 ogap inf 3 regimes",
		endog: endog,
		exog:  exog,
		cfg:   &Config{KRegimes: 3},
		params: []float64{
			.7253684, .2564055, .1641252, .7994204, .6178282, .3821718,
			.5261292, -.0034106, .6015991, .8464551, .9690088, .4178913,
			.1201952, .0464136, .1075357, -.0425603, .1298906, .9099168,
			.438375 * .438375,
		},
		llf: -189.89493,
		tol: 1e-5,
	}
}

func areturnsSwitching() fixture {
	ar := datasets.SP500AbsReturns()
	return fixture{
		name:  "areturns switching variance",
		endog: ar[2:],
		exog:  column(ar[1 : len(ar)-1]),
		cfg:   &Config{KRegimes: 2, SwitchingVariance: true},
		params: []float64{
			.7530865, .6825357, .7641424, 1.972771, .0790744, .527953,
			.5895792 * .5895792, 1.605333 * 1.605333,
		},
		llf: -745.7977,
		tol: 4,
	}
}

func mumpsSwitching() fixture {
	mp := datasets.MumpsPC()
	return fixture{
		name:  "mumpspc no trend switching variance",
		endog: mp[1:],
		exog:  column(mp[:len(mp)-1]),
		cfg:   &Config{KRegimes: 2, Trend: TrendNone, SwitchingVariance: true},
		params: []float64{
			.762733, .1473767, .420275, .9847369,
			.0562405 * .0562405, .2611362 * .2611362,
		},
		llf: 131.7225,
		tol: 4,
	}
}

func allFixtures() []fixture {
	return []fixture{
		fedfundsConst(),
		fedfundsLag(),
		fedfundsExog(),
		fedfundsExog3(),
		areturnsSwitching(),
		mumpsSwitching(),
	}
}
