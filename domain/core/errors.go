package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Validation errors
	ErrProbability    = errors.New("probability must sit between 0 and 1")
	ErrIntervalBounds = errors.New("interval lower bound exceeds upper bound")

	// Input errors
	ErrGroupCount = errors.New("at least two sample groups are required")

	// Distribution errors
	ErrDistribution = errors.New("distribution evaluation failed")
)

// Error constructors with context
func NewProbabilityError(value float64) error {
	return fmt.Errorf("%w: provided %v", ErrProbability, value)
}

func NewIntervalBoundsError(lo, hi float64) error {
	return fmt.Errorf("%w: [%v, %v]", ErrIntervalBounds, lo, hi)
}

func NewGroupCountError(count int) error {
	return fmt.Errorf("%w: got %d", ErrGroupCount, count)
}

func NewDistributionError(reason string) error {
	return fmt.Errorf("%w: %s", ErrDistribution, reason)
}

// Error checking helpers
func IsProbabilityError(err error) bool {
	return errors.Is(err, ErrProbability)
}

func IsGroupCountError(err error) bool {
	return errors.Is(err, ErrGroupCount)
}

func IsDistributionError(err error) bool {
	return errors.Is(err, ErrDistribution)
}
