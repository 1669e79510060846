// Package msregression implements Markov switching linear regression.
//
// The model is
//
//	y_t = x_t * beta_{S_t} + e_t,  e_t ~ N(0, sigma2_{S_t})
//
// where the regime S_t in {0, ..., k-1} follows a first-order Markov chain.
// All regression coefficients switch with the regime; the error variance
// switches when Config.SwitchingVariance is set.
//
// # Basic Usage
//
// Create a model and fit it by maximum likelihood:
//
//	model, err := msregression.New(endog, nil, &msregression.Config{
//	    KRegimes: 2,
//	    Trend:    msregression.TrendConstant,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := model.Fit(msregression.DefaultFitConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("llf: %.4f, AIC: %.2f\n", res.LLF, res.AIC)
//
// FitEM estimates the same parameters with the EM algorithm, and Loglike
// evaluates the log-likelihood of any parameter vector.
//
// # Parameters
//
// Parameters travel as a flat vector, in this order:
//
//   - transition probabilities, k-1 per origin regime: P(S_t = i | S_{t-1} = j)
//     at index j*(k-1)+i
//   - coefficients, k per regressor: regressor r in regime s at
//     k*(k-1) + r*k + s. Trend terms come before the exog columns.
//   - variances: k values when switching, one otherwise
//
// ParamNames labels each entry, and Decode and Encode convert between the
// flat vector and Params.
//
// # Missing Data
//
// NaN in endog or exog marks an observation as missing. Missing observations
// contribute nothing to the likelihood; the filter carries the regime
// probabilities across them.
package msregression
