package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// ACF calculates the autocorrelation function of x for lags 0 to maxLag.
// Missing (NaN) values are dropped from the sums. Returns nil for a constant
// or empty series.
func ACF(x []float64, maxLag int) []float64 {
	values := dropMissing(x)
	n := len(x)
	if maxLag >= n {
		maxLag = n - 1
	}
	if maxLag < 0 || len(values) < 2 {
		return nil
	}

	mean := stat.Mean(values, nil)
	variance := 0.0
	for _, v := range values {
		diff := v - mean
		variance += diff * diff
	}
	if variance == 0 {
		return nil
	}

	acf := make([]float64, maxLag+1)
	for k := 0; k <= maxLag; k++ {
		sum := 0.0
		for i := k; i < n; i++ {
			if math.IsNaN(x[i]) || math.IsNaN(x[i-k]) {
				continue
			}
			sum += (x[i] - mean) * (x[i-k] - mean)
		}
		acf[k] = sum / variance
	}
	return acf
}

// LjungBoxResult represents the result of a Ljung-Box test.
type LjungBoxResult struct {
	Statistic float64
	PValue    float64
	Lags      int
	DOF       int // Degrees of freedom
}

// LjungBox performs the Ljung-Box test for autocorrelation in residuals.
// The null hypothesis is that there is no autocorrelation up to the given lag.
// fitdf is the number of parameters estimated in the model and reduces the
// degrees of freedom. Returns nil when the series is too short.
func LjungBox(residuals []float64, lags, fitdf int) *LjungBoxResult {
	n := len(dropMissing(residuals))
	if n < 10 || lags < 1 {
		return nil
	}
	if lags >= n {
		lags = n - 1
	}

	acf := ACF(residuals, lags)
	if acf == nil {
		return nil
	}

	q := 0.0
	for k := 1; k <= lags; k++ {
		q += (acf[k] * acf[k]) / float64(n-k)
	}
	q *= float64(n * (n + 2))

	dof := lags - fitdf
	if dof < 1 {
		dof = 1
	}

	chi2 := distuv.ChiSquared{K: float64(dof)}
	return &LjungBoxResult{
		Statistic: q,
		PValue:    chi2.Survival(q),
		Lags:      lags,
		DOF:       dof,
	}
}

// DurbinWatsonResult represents the result of a Durbin-Watson test.
type DurbinWatsonResult struct {
	Statistic float64
	// Interpretation is "positive", "negative" or "none".
	Interpretation string
}

// DurbinWatson computes the Durbin-Watson statistic for first-order
// autocorrelation. Values near 2 indicate no autocorrelation.
func DurbinWatson(residuals []float64) *DurbinWatsonResult {
	values := dropMissing(residuals)
	if len(values) < 2 {
		return nil
	}

	num, den := 0.0, 0.0
	for i, v := range values {
		den += v * v
		if i > 0 {
			d := v - values[i-1]
			num += d * d
		}
	}
	if den == 0 {
		return nil
	}

	dw := num / den
	interp := "none"
	switch {
	case dw < 1.5:
		interp = "positive"
	case dw > 2.5:
		interp = "negative"
	}
	return &DurbinWatsonResult{Statistic: dw, Interpretation: interp}
}

func dropMissing(x []float64) []float64 {
	out := make([]float64, 0, len(x))
	for _, v := range x {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}
