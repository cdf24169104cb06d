// Package gacore implements the genetic algorithm that searches for a
// high-quality initial truth assignment for a downstream CDCL SAT solver.
package gacore

import "errors"

// Sentinel errors returned at the package's public boundaries. Wrap with
// fmt.Errorf("...: %w", err) to attach context; compare with errors.Is.
var (
	// ErrMalformedFormula signals a structural problem with a Formula that
	// the GA cannot operate on (e.g. a fixed-variable contradiction, a
	// missing header or a non-numeric literal, all surfaced by the dimacs
	// package).
	ErrMalformedFormula = errors.New("gacore: malformed formula")

	// ErrConfigOutOfRange signals a Config field outside its documented
	// bounds (rates outside [0,1], non-positive sizes).
	ErrConfigOutOfRange = errors.New("gacore: configuration value out of range")

	// ErrInvariantViolation signals a fixed-variable bit flip or population
	// size drift. It should never trip in a correct build; debugAssert
	// panics on the same condition in debug builds so it is caught early
	// in development rather than surfacing only as this error in release.
	ErrInvariantViolation = errors.New("gacore: invariant violation")
)
