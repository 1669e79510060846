// Command msreg estimates Markov switching regressions from CSV files or the
// bundled datasets.
//
//	msreg fit --dataset fedfunds --lags 1
//	msreg fit --data usmacro.csv --column fedfunds --exog ogap,inf --lags 1 --format yaml
//	msreg loglike --dataset fedfunds --params 0.982,0.050,3.709,9.557,4.442
//	msreg select --dataset areturns --lags 1 --max-regimes 3 --criterion bic
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
