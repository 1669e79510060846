package stats

import "math"

// InformationCriteria holds AIC, AICc, BIC and HQIC for a fitted model.
type InformationCriteria struct {
	AIC    float64
	AICc   float64 // Corrected AIC for small sample sizes
	BIC    float64
	HQIC   float64
	LogLik float64
}

// CalculateIC calculates all information criteria.
// logLik is the log-likelihood, nObs is the number of observations,
// nParams is the number of estimated parameters.
func CalculateIC(logLik float64, nObs int, nParams int) *InformationCriteria {
	k := float64(nParams)
	n := float64(nObs)

	// AIC = -2*loglik + 2*k
	aic := -2*logLik + 2*k
	// BIC = -2*loglik + k*log(n)
	bic := -2*logLik + k*math.Log(n)
	// HQIC = -2*loglik + 2*k*log(log(n))
	hqic := -2*logLik + 2*k*math.Log(math.Log(n))

	return &InformationCriteria{
		AIC:    aic,
		AICc:   AICc(aic, nObs, nParams),
		BIC:    bic,
		HQIC:   hqic,
		LogLik: logLik,
	}
}

// AICc calculates the corrected Akaike Information Criterion.
// AICc = AIC + 2(k)(k+1)/(n-k-1) where k is number of parameters.
func AICc(aic float64, nObs int, nParams int) float64 {
	k := float64(nParams)
	n := float64(nObs)

	if n-k-1 <= 0 {
		return math.Inf(1)
	}
	return aic + 2*k*(k+1)/(n-k-1)
}

// Criterion returns the named criterion ("aic", "aicc", "bic" or "hqic").
// Unknown names fall back to AIC.
func (ic *InformationCriteria) Criterion(name string) float64 {
	switch name {
	case "bic":
		return ic.BIC
	case "hqic":
		return ic.HQIC
	case "aicc":
		return ic.AICc
	default:
		return ic.AIC
	}
}
