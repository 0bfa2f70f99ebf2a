package distributions

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/cgubbin/confi/domain/core"
)

// Distributions provides unified access to the statistical distributions
// the library evaluates: the standard normal and the chi-squared family.
// Substituting a different numeric provider means reimplementing only this
// package.
type Distributions struct{}

// New creates a new distributions utility
func New() *Distributions {
	return &Distributions{}
}

// NormalQuantile computes the inverse CDF of the standard normal
// distribution (mean 0, standard deviation 1) at probability p.
// The quantile is only defined on the open interval (0, 1).
func (d *Distributions) NormalQuantile(p float64) (float64, error) {
	if math.IsNaN(p) || p <= 0 || p >= 1 {
		return 0, core.NewDistributionError(fmt.Sprintf("normal quantile undefined at %v", p))
	}
	return distuv.UnitNormal.Quantile(p), nil
}

// ChiSquaredSurvival computes the survival function (1 - CDF) of a
// chi-squared distribution with df degrees of freedom, evaluated at x.
func (d *Distributions) ChiSquaredSurvival(x, df float64) (float64, error) {
	if math.IsNaN(df) || df <= 0 {
		return 0, core.NewDistributionError(fmt.Sprintf("chi-squared requires positive degrees of freedom, got %v", df))
	}
	dist := distuv.ChiSquared{K: df}
	return dist.Survival(x), nil
}
