package msregression

import "errors"

var (
	// ErrEmptySeries is returned when the endogenous series has no values.
	ErrEmptySeries = errors.New("msregression: empty endogenous series")
	// ErrRegimeCount is returned when fewer than two regimes are requested.
	ErrRegimeCount = errors.New("msregression: at least two regimes are required")
	// ErrExogLength is returned when exog does not have one row per
	// observation.
	ErrExogLength = errors.New("msregression: exog rows do not match endog length")
	// ErrExogShape is returned when exog rows differ in width or names do not
	// match the number of columns.
	ErrExogShape = errors.New("msregression: inconsistent exog columns")
	// ErrInvalidTrend is returned for an unknown trend specification.
	ErrInvalidTrend = errors.New("msregression: invalid trend")
	// ErrUnsupportedOrder is returned for Markov chains of order other than 1.
	ErrUnsupportedOrder = errors.New("msregression: only first-order Markov chains are supported")
	// ErrNoObservations is returned when every observation has a missing value.
	ErrNoObservations = errors.New("msregression: no complete observations")

	// ErrParamLength is returned when a parameter vector has the wrong size.
	ErrParamLength = errors.New("msregression: wrong number of parameters")
	// ErrNonPositiveVariance is returned for a variance that is not a
	// positive finite number.
	ErrNonPositiveVariance = errors.New("msregression: variance must be positive")
	// ErrInvalidParams is returned when start parameters have no finite
	// log-likelihood.
	ErrInvalidParams = errors.New("msregression: parameters have zero likelihood")
)
