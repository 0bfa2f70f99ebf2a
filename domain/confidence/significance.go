package confidence

import (
	"fmt"

	"github.com/cgubbin/confi/domain/core"
	"github.com/cgubbin/confi/internal/distributions"
)

// Significance is the probability of a type I error: rejecting a null
// hypothesis which is in fact true. In a measurement model the null
// hypothesis is typically that a reading is indistinguishable from another,
// or from the system response at zero stimulus. It is the complement of a
// confidence Level.
type Significance[T core.Float] struct {
	probability T
}

// SignificanceFromFraction creates a significance level from a fractional
// probability. Fails with core.ErrProbability when the value is outside
// [0, 1] or NaN.
func SignificanceFromFraction[T core.Float](level T) (Significance[T], error) {
	if err := validateProbability(level); err != nil {
		return Significance[T]{}, err
	}
	return Significance[T]{probability: level}, nil
}

// SignificanceFromPercentage creates a significance level from a
// percentage, dividing by 100 before applying the same validation as
// SignificanceFromFraction.
func SignificanceFromPercentage[T core.Float](level T) (Significance[T], error) {
	return SignificanceFromFraction(level / 100)
}

// TenPercent is the conventional 10% significance level.
func TenPercent[T core.Float]() Significance[T] {
	return Significance[T]{probability: 0.1}
}

// FivePercent is the conventional 5% significance level.
func FivePercent[T core.Float]() Significance[T] {
	return Significance[T]{probability: 0.05}
}

// TwoPointFivePercent is the conventional 2.5% significance level.
func TwoPointFivePercent[T core.Float]() Significance[T] {
	return Significance[T]{probability: 0.025}
}

// OnePercent is the conventional 1% significance level.
func OnePercent[T core.Float]() Significance[T] {
	return Significance[T]{probability: 0.01}
}

// ZeroPointFivePercent is the conventional 0.5% significance level.
func ZeroPointFivePercent[T core.Float]() Significance[T] {
	return Significance[T]{probability: 0.005}
}

// ZeroPointOnePercent is the conventional 0.1% significance level.
func ZeroPointOnePercent[T core.Float]() Significance[T] {
	return Significance[T]{probability: 0.001}
}

// Probability returns the numerical value associated with the significance
// level.
func (s Significance[T]) Probability() T {
	return s.probability
}

// Confidence converts the significance level to its complementary
// confidence level. The two probabilities always sum to one.
func (s Significance[T]) Confidence() Level[T] {
	return Level[T]{probability: 1 - s.probability}
}

// NumStandardDeviations is the one-sided threshold on a standard normal
// distribution corresponding to the significance level: the value z at
// which the cumulative distribution equals 1 - significance, found by
// evaluating the inverse CDF there. A significance of exactly 0 or 1 puts
// the quantile outside its domain and surfaces core.ErrDistribution.
func (s Significance[T]) NumStandardDeviations() (T, error) {
	z, err := distributions.New().NormalQuantile(1 - float64(s.probability))
	if err != nil {
		return 0, err
	}
	return T(z), nil
}

func (s Significance[T]) String() string {
	return fmt.Sprintf("Significance Level: %.3f%%", float64(s.probability)*100)
}
