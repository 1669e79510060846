// Package selection chooses the number of regimes and whether the variance
// switches for a Markov switching regression.
//
// Every combination of regime count in [MinRegimes, MaxRegimes] and variance
// option is fitted by maximum likelihood, concurrently, and ranked by an
// information criterion:
//
//	cfg := selection.DefaultConfig()
//	cfg.Criterion = "bic"
//	res, err := selection.Select(endog, exog, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("k=%d switching=%v BIC=%.2f\n",
//	    res.Best.KRegimes, res.Best.SwitchingVariance, res.Best.Criterion)
//
// Candidates that fail to fit stay in Result.Candidates with their error.
package selection
