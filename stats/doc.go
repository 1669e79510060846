// Package stats provides the regression and diagnostic helpers used by the
// Markov switching estimators.
//
// # Least Squares
//
// Ordinary and weighted least squares are solved with a QR factorization of
// the (weighted) design matrix. Rows with zero weight or missing values are
// skipped:
//
//	beta, err := stats.OLS(y, x)
//	beta, err := stats.WLS(y, x, weights)
//	ssr := stats.WeightedSSR(y, x, beta, weights)
//
// # Information Criteria
//
// Compare fitted models with AIC, AICc, BIC and HQIC (lower is better):
//
//	ic := stats.CalculateIC(logLik, nObs, nParams)
//	fmt.Printf("AIC: %.2f, BIC: %.2f\n", ic.AIC, ic.BIC)
//
// # Residual Diagnostics
//
// Test residuals for remaining autocorrelation:
//
//	// Ljung-Box test for autocorrelation
//	lb := stats.LjungBox(residuals, 10, 0)
//	if lb.PValue > 0.05 {
//	    // Residuals are white noise (good)
//	}
//
//	// Durbin-Watson test
//	dw := stats.DurbinWatson(residuals)
package stats
