package regime

import "math"

// minProbability floors probabilities before taking logarithms in
// UnconstrainTransition.
const minProbability = 1e-12

// ConstrainTransition maps unconstrained reals to valid free transition
// probabilities. Each origin column is a multinomial logit with the last
// destination as reference: p_i = exp(u_i) / (1 + sum_l exp(u_l)).
func ConstrainTransition(unconstrained []float64, k int) []float64 {
	out := make([]float64, len(unconstrained))
	m := k - 1
	for j := 0; j < k; j++ {
		u := unconstrained[j*m : (j+1)*m]

		// Shift by the largest exponent, the reference category included.
		shift := 0.0
		for _, v := range u {
			shift = math.Max(shift, v)
		}
		denom := math.Exp(-shift)
		for _, v := range u {
			denom += math.Exp(v - shift)
		}
		for i, v := range u {
			out[j*m+i] = math.Exp(v-shift) / denom
		}
	}
	return out
}

// UnconstrainTransition is the inverse of ConstrainTransition.
func UnconstrainTransition(constrained []float64, k int) []float64 {
	out := make([]float64, len(constrained))
	m := k - 1
	for j := 0; j < k; j++ {
		col := constrained[j*m : (j+1)*m]
		last := 1.0
		for _, v := range col {
			last -= v
		}
		last = math.Max(last, minProbability)
		for i, v := range col {
			out[j*m+i] = math.Log(math.Max(v, minProbability) / last)
		}
	}
	return out
}
