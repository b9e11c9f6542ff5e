package random

import "errors"

var (
	// ErrInvalidRange is returned when an integer draw is asked for min > max.
	ErrInvalidRange = errors.New("random: min must not exceed max")
	// ErrInvalidModulus is returned by NewCustom for a modulus <= 0.
	ErrInvalidModulus = errors.New("random: modulus must be positive")
	// ErrInvalidParams is returned by NewCustom for a negative multiplier or increment.
	ErrInvalidParams = errors.New("random: multiplier and increment must be non-negative")
	// ErrNoWeight is returned when a weighted pick has nothing to choose from.
	ErrNoWeight = errors.New("random: total weight must be positive")
	// ErrInvalidExpr is returned by ParseNumber for a malformed number expression.
	ErrInvalidExpr = errors.New("random: invalid number expression")
)
