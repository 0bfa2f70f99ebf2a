package variance

import (
	"math"

	"github.com/cgubbin/confi/domain/core"
	"github.com/cgubbin/confi/internal/distributions"
)

// BartlettResult holds the outcome of a Bartlett test: the test statistic,
// the p-value for the null hypothesis that every group shares the same
// population variance, and the degrees of freedom of the reference
// chi-squared distribution.
type BartlettResult[T core.Float] struct {
	Statistic T
	PValue    T
	DOF       int
}

// Bartlett tests the null hypothesis that the supplied sample groups are
// drawn from distributions with equal variance. A small p-value is evidence
// that at least one group's variance differs.
//
// At least two groups are required; fewer fail with core.ErrGroupCount.
// Every group should hold at least two samples: the test statistic is
// undefined for a group of one, and such input propagates as non-finite
// statistic and p-value rather than an error.
func Bartlett[T core.Float](groups ...[]T) (BartlettResult[T], error) {
	if len(groups) < 2 {
		return BartlettResult[T]{}, core.NewGroupCountError(len(groups))
	}

	groupCount := T(len(groups))

	var totalSamples T
	sizes := make([]T, len(groups))
	variances := make([]T, len(groups))
	for i, group := range groups {
		sizes[i] = T(len(group))
		totalSamples += sizes[i]
		variances[i] = sampleVariance(group)
	}

	var pooled T
	for i := range groups {
		pooled += (sizes[i] - 1) * variances[i]
	}
	pooled /= totalSamples - groupCount

	numer := (totalSamples - groupCount) * ln(pooled)
	for i := range groups {
		numer -= (sizes[i] - 1) * ln(variances[i])
	}

	var reciprocals T
	for i := range groups {
		reciprocals += 1 / (sizes[i] - 1)
	}
	denom := 1 + (reciprocals-1/(totalSamples-groupCount))/(3*(groupCount-1))

	statistic := numer / denom
	dof := len(groups) - 1

	// The survival function takes the statistic as-is: gonum's chi-squared
	// uses the textbook parameterization.
	pvalue, err := distributions.New().ChiSquaredSurvival(float64(statistic), float64(dof))
	if err != nil {
		return BartlettResult[T]{}, err
	}

	return BartlettResult[T]{
		Statistic: statistic,
		PValue:    T(pvalue),
		DOF:       dof,
	}, nil
}

// sampleVariance is the Bessel-corrected variance (denominator n-1),
// computed in the group's own precision.
func sampleVariance[T core.Float](values []T) T {
	n := T(len(values))

	var mean T
	for _, v := range values {
		mean += v
	}
	mean /= n

	var sum T
	for _, v := range values {
		dev := v - mean
		sum += dev * dev
	}
	return sum / (n - 1)
}

func ln[T core.Float](v T) T {
	return T(math.Log(float64(v)))
}
