package regime

import "errors"

var (
	// ErrRegimeCount is returned when fewer than two regimes are requested.
	ErrRegimeCount = errors.New("regime: at least two regimes are required")
	// ErrInvalidTransition is returned when transition probabilities are
	// negative, exceed one or are not numbers.
	ErrInvalidTransition = errors.New("regime: invalid transition probabilities")
	// ErrDimension is returned when matrix or vector sizes disagree.
	ErrDimension = errors.New("regime: dimension mismatch")
	// ErrDegenerate is returned when a filter result has zero likelihood at
	// some observation and cannot be smoothed.
	ErrDegenerate = errors.New("regime: degenerate filter result")
	// ErrEmpty is returned when there are no observations to process.
	ErrEmpty = errors.New("regime: no observations")
)
