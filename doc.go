// Package goregime estimates Markov switching regression models.
//
// A Markov switching regression lets the coefficients and, optionally, the
// error variance of a linear regression depend on an unobserved regime that
// follows a first-order Markov chain. The regime probabilities are inferred
// with the Hamilton filter and the Kim smoother.
//
// # Features
//
//   - Markov switching linear regression with k regimes, trend terms and
//     exogenous regressors
//   - Switching or shared error variance
//   - Maximum likelihood estimation with BFGS, L-BFGS or Nelder-Mead
//   - EM estimation with closed-form M-steps
//   - Random start search and selection of the number of regimes by
//     information criteria
//   - Filtered, predicted and smoothed regime probabilities, expected regime
//     durations and residual diagnostics
//   - Missing observations as NaN
//
// # Quick Start
//
// Fit a two-regime model with a switching intercept:
//
//	model, err := msregression.New(datasets.FedFunds(), nil, msregression.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := model.Fit(nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	durations, _ := model.ExpectedDurations(res.Params)
//
// Choose the number of regimes:
//
//	result, _ := selection.Select(endog, exog, selection.DefaultConfig())
//
// # Packages
//
//   - regime: transition matrix, Hamilton filter, Kim smoother
//   - msregression: the model, its likelihood and estimators
//   - optimizer: numerical minimization on gonum/optimize
//   - selection: regime count and variance selection
//   - stats: least squares, information criteria, residual diagnostics
//   - timeseries: series and CSV frames with missing values
//   - datasets: reference macroeconomic and financial series
//
// The msreg command in cmd/msreg exposes estimation on the command line.
package goregime
