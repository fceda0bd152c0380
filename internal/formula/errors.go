package formula

import "errors"

// Domain errors for formula evaluation.
var (
	// ErrZeroTime indicates a division by a zero time interval.
	ErrZeroTime = errors.New("formula: time interval is zero")

	// ErrNonPositiveGravity indicates a gravitational acceleration <= 0.
	ErrNonPositiveGravity = errors.New("formula: gravity must be positive")

	// ErrLengthMismatch indicates time and position samples of different length.
	ErrLengthMismatch = errors.New("formula: time and position lengths differ")

	// ErrTooFewSamples indicates fewer than two samples for differentiation.
	ErrTooFewSamples = errors.New("formula: at least two samples required")

	// ErrEmptySample indicates statistics requested over no data.
	ErrEmptySample = errors.New("formula: empty sample")
)
