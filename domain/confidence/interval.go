package confidence

import (
	"fmt"

	"github.com/cgubbin/confi/domain/core"
)

// Interval is an inclusive range of values expected to enclose the
// estimated parameter, together with the Level giving the probability that
// it does.
type Interval[T core.Float] struct {
	start T
	end   T
	level Level[T]
}

// NewInterval creates a confidence interval over the inclusive range
// [start, end]. Fails with core.ErrIntervalBounds when start > end.
func NewInterval[T core.Float](start, end T, level Level[T]) (Interval[T], error) {
	if start > end {
		return Interval[T]{}, core.NewIntervalBoundsError(float64(start), float64(end))
	}
	return Interval[T]{start: start, end: end, level: level}, nil
}

// Start returns the lower bound of the interval.
func (i Interval[T]) Start() T {
	return i.start
}

// End returns the upper bound of the interval.
func (i Interval[T]) End() T {
	return i.end
}

// Width is the distance between the interval bounds.
func (i Interval[T]) Width() T {
	return i.end - i.start
}

// HalfWidth is half the distance between the interval bounds, the
// symmetric uncertainty around the interval midpoint.
func (i Interval[T]) HalfWidth() T {
	return i.Width() / 2
}

// Contains reports whether val falls within the interval. Both bounds are
// inclusive.
func (i Interval[T]) Contains(val T) bool {
	return val >= i.start && val <= i.end
}

// Level returns the confidence level associated with the interval.
func (i Interval[T]) Level() Level[T] {
	return i.level
}

func (i Interval[T]) String() string {
	return fmt.Sprintf("Confidence Interval: %.3e -> %.3e (%s)", float64(i.start), float64(i.end), i.level)
}
