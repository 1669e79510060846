// Package datasets bundles the macroeconomic and financial series used to
// validate the Markov switching estimators.
//
// The series come from the example datasets of the Stata 14 "mswitch"
// manual:
//
//   - usmacro: federal funds rate, output gap and inflation, 1954q3-2010q4
//   - snp500: absolute weekly S&P 500 returns
//   - mumps: monthly mumps cases per 10,000, seasonally differenced
//
// Every accessor returns a fresh copy.
package datasets

import (
	"fmt"
	"sort"
)

// FedFunds returns the quarterly effective federal funds rate (226 obs).
func FedFunds() []float64 { return clone(fedfunds) }

// OutputGap returns the quarterly output gap (226 obs).
func OutputGap() []float64 { return clone(ogap) }

// Inflation returns quarterly inflation (226 obs). The first four values are
// missing (NaN).
func Inflation() []float64 { return clone(inflation) }

// SP500AbsReturns returns absolute weekly S&P 500 returns (521 obs).
func SP500AbsReturns() []float64 { return clone(areturns) }

// MumpsPC returns seasonally differenced monthly mumps cases per capita
// (522 obs).
func MumpsPC() []float64 { return clone(mumpspc) }

var registry = map[string]func() []float64{
	"fedfunds": FedFunds,
	"ogap":     OutputGap,
	"inf":      Inflation,
	"areturns": SP500AbsReturns,
	"mumpspc":  MumpsPC,
}

// Names lists the names accepted by Lookup.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns a series by name.
func Lookup(name string) ([]float64, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown dataset %q (available: %v)", name, Names())
	}
	return fn(), nil
}

func clone(v []float64) []float64 {
	return append([]float64(nil), v...)
}
