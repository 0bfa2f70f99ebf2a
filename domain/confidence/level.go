package confidence

import (
	"fmt"
	"math"

	"github.com/cgubbin/confi/domain/core"
)

// Level is the degree of confidence associated with a computed value: the
// probability, expressed as a fraction, that a stated range encloses the
// true value of the measurand.
type Level[T core.Float] struct {
	probability T
}

// LevelFromFraction creates a confidence level from a fractional
// probability. Fails with core.ErrProbability when the value is outside
// [0, 1] or NaN.
func LevelFromFraction[T core.Float](level T) (Level[T], error) {
	if err := validateProbability(level); err != nil {
		return Level[T]{}, err
	}
	return Level[T]{probability: level}, nil
}

// LevelFromPercentage creates a confidence level from a percentage,
// dividing by 100 before applying the same validation as
// LevelFromFraction.
func LevelFromPercentage[T core.Float](level T) (Level[T], error) {
	return LevelFromFraction(level / 100)
}

// NinetyPercent is the conventional 90% confidence level.
func NinetyPercent[T core.Float]() Level[T] {
	return Level[T]{probability: 0.9}
}

// NinetyFivePercent is the conventional 95% confidence level.
func NinetyFivePercent[T core.Float]() Level[T] {
	return Level[T]{probability: 0.95}
}

// NinetySevenPointFivePercent is the conventional 97.5% confidence level.
func NinetySevenPointFivePercent[T core.Float]() Level[T] {
	return Level[T]{probability: 0.975}
}

// NinetyNinePercent is the conventional 99% confidence level.
func NinetyNinePercent[T core.Float]() Level[T] {
	return Level[T]{probability: 0.99}
}

// NinetyNinePointFivePercent is the conventional 99.5% confidence level.
func NinetyNinePointFivePercent[T core.Float]() Level[T] {
	return Level[T]{probability: 0.995}
}

// NinetyNinePointNinePercent is the conventional 99.9% confidence level.
func NinetyNinePointNinePercent[T core.Float]() Level[T] {
	return Level[T]{probability: 0.999}
}

// Probability returns the numerical value associated with the confidence
// level.
func (l Level[T]) Probability() T {
	return l.probability
}

// Significance converts the confidence level to its complementary
// significance level. The two probabilities always sum to one.
func (l Level[T]) Significance() Significance[T] {
	return Significance[T]{probability: 1 - l.probability}
}

// ToFloat64 widens the confidence level to double precision.
func (l Level[T]) ToFloat64() Level[float64] {
	return Level[float64]{probability: float64(l.probability)}
}

func (l Level[T]) String() string {
	return fmt.Sprintf("Confidence Level: %.3f%%", float64(l.probability)*100)
}

// validateProbability guards the [0, 1] invariant shared by Level and
// Significance. NaN is rejected explicitly: it compares false against both
// bounds.
func validateProbability[T core.Float](level T) error {
	v := float64(level)
	if math.IsNaN(v) || v < 0 || v > 1 {
		return core.NewProbabilityError(v)
	}
	return nil
}
